package seed

import "coffeesaf/internal/domain"

// Menu returns the default coffee-shop menu used when the catalog is empty.
func Menu() []domain.CoffeeItem {
	return []domain.CoffeeItem{
		// Эспрессо
		{
			Name:        "Эспрессо",
			Type:        "Классический",
			Description: "Насыщенный кофейный напиток объемом 30 мл, приготовленный под высоким давлением. Имеет густую золотистую пенку (крема) и интенсивный вкус с фруктовыми нотами.",
			Ingredients: "Кофе, вода",
			ImageURI:    "/images/espresso_classic.png",
			PriceS:      "90 ₽",
			PriceM:      "120 ₽",
			PriceL:      "150 ₽",
			Rating:      4.2,
			Category:    "Эспрессо",
		},
		{
			Name:        "Эспрессо",
			Type:        "Двойной",
			Description: "Две порции классического эспрессо (60 мл) для истинных ценителей крепкого кофе. Сохраняет все характеристики эспрессо, но с более выраженным вкусом и ароматом.",
			Ingredients: "Кофе, вода",
			ImageURI:    "/images/espresso_double.png",
			PriceS:      "130 ₽",
			PriceM:      "160 ₽",
			PriceL:      "190 ₽",
			Rating:      4.4,
			Category:    "Эспрессо",
		},
		{
			Name:        "Эспрессо",
			Type:        "Ристретто",
			Description: "Концентрированная версия эспрессо (15-20 мл) с меньшим количеством воды. Обладает более сладким и насыщенным вкусом без горечи. В переводе с итальянского означает 'ограниченный'.",
			Ingredients: "Кофе, вода",
			ImageURI:    "/images/espresso_ristretto.png",
			PriceS:      "120 ₽",
			PriceM:      "150 ₽",
			PriceL:      "180 ₽",
			Rating:      4.9,
			Category:    "Эспрессо",
		},
		{
			Name:        "Эспрессо",
			Type:        "Лунго",
			Description: "'Продолженный' эспрессо объемом 50-60 мл, где через кофе пропускают больше воды. Имеет менее интенсивный, но более продолжительный вкус с тонкими оттенками.",
			Ingredients: "Кофе, вода",
			ImageURI:    "/images/espresso_lungo.png",
			PriceS:      "140 ₽",
			PriceM:      "170 ₽",
			PriceL:      "200 ₽",
			Rating:      4.6,
			Category:    "Эспрессо",
		},
		{
			Name:        "Эспрессо",
			Type:        "Допио",
			Description: "Двойной эспрессо, приготовленный как одна порция (60 мл) с увеличенной дозой молотого кофе. Отличается особенно густой крема и насыщенным вкусом.",
			Ingredients: "Кофе, вода",
			ImageURI:    "/images/espresso_dopio.png",
			PriceS:      "150 ₽",
			PriceM:      "180 ₽",
			PriceL:      "210 ₽",
			Rating:      4.9,
			Category:    "Эспрессо",
		},
		{
			Name:        "Эспрессо",
			Type:        "Романо",
			Description: "Эспрессо с долькой лимона, которая подчеркивает фруктовые ноты кофе. Традиционный итальянский способ подачи, где кислинка лимона балансирует горчинку кофе.",
			Ingredients: "Кофе, вода, лимон",
			ImageURI:    "/images/espresso_romano.png",
			PriceS:      "150 ₽",
			PriceM:      "180 ₽",
			PriceL:      "210 ₽",
			Rating:      5.0,
			Category:    "Эспрессо",
		},

		// Капучино
		{
			Name:        "Капучино",
			Type:        "Стандарт",
			Description: "Классическое сочетание эспрессо, горячего молока и молочной пены в равных пропорциях (1:1:1). Имеет нежную текстуру и сбалансированный вкус. Идеальная температура подачи - 60-65°C.",
			Ingredients: "Кофе, молоко",
			ImageURI:    "/images/cappuccino_classic.png",
			PriceS:      "180 ₽",
			PriceM:      "210 ₽",
			PriceL:      "240 ₽",
			Rating:      4.5,
			Category:    "Капучино",
		},
		{
			Name:        "Капучино",
			Type:        "Чигаро",
			Description: "Капучино с особой техникой взбивания молока, создающей шелковистую микропену. Подается в прозрачном стакане для демонстрации идеальных слоев. Название происходит от испанского 'чигаро' - сигара.",
			Ingredients: "Кофе, молоко",
			ImageURI:    "/images/cappuccino_chicaro.png",
			PriceS:      "200 ₽",
			PriceM:      "230 ₽",
			PriceL:      "260 ₽",
			Rating:      4.2,
			Category:    "Капучино",
		},
		{
			Name:        "Капучино",
			Type:        "Скуро",
			Description: "'Темный' капучино с увеличенной порцией эспрессо. Имеет более выраженный кофейный вкус и менее сладкий, чем классический вариант. Для тех, кто любит ощущать настоящий вкус кофе.",
			Ingredients: "Кофе, молоко",
			ImageURI:    "/images/cappuccino_scuro.png",
			PriceS:      "190 ₽",
			PriceM:      "220 ₽",
			PriceL:      "250 ₽",
			Rating:      4.9,
			Category:    "Капучино",
		},
		{
			Name:        "Капучино",
			Type:        "Шоколадный",
			Description: "Гармоничное сочетание эспрессо, молока и шоколадного сиропа с декоративным рисунком на пене. Напоминает горячий шоколад с кофейными нотками.",
			Ingredients: "Кофе, молоко, шоколад",
			ImageURI:    "/images/cappuccino_chocolate.png",
			PriceS:      "210 ₽",
			PriceM:      "240 ₽",
			PriceL:      "270 ₽",
			Rating:      5.0,
			Category:    "Капучино",
		},
		{
			Name:        "Капучино",
			Type:        "Ванильный",
			Description: "Нежный вариант с натуральным ванильным сиропом. Сладковатый аромат ванили идеально сочетается с горьковатыми нотами эспрессо. Идеальный выбор для сладкоежек.",
			Ingredients: "Кофе, молоко, ваниль",
			ImageURI:    "/images/cappuccino_vanilla.png",
			PriceS:      "210 ₽",
			PriceM:      "240 ₽",
			PriceL:      "270 ₽",
			Rating:      4.8,
			Category:    "Капучино",
		},
		{
			Name:        "Капучино",
			Type:        "Карамельный",
			Description: "Сочетание эспрессо с карамельным сиропом и молочной пеной. Карамель добавляет напитку мягкую сладость и золотистый оттенок. Часто украшается карамельным сетчатым рисунком.",
			Ingredients: "Кофе, молоко, карамель",
			ImageURI:    "/images/cappuccino_caramel.png",
			PriceS:      "210 ₽",
			PriceM:      "240 ₽",
			PriceL:      "270 ₽",
			Rating:      4.7,
			Category:    "Капучино",
		},

		// Раф
		{
			Name:        "Раф",
			Type:        "Классический",
			Description: "Готовится из эспрессо, сливок и ванильного сахара, взбитых вместе паром. Имеет нежную воздушную текстуру и мягкий сливочный вкус. Был изобретен в Москве в 1990-х и назван в честь клиента Рафаэля.",
			Ingredients: "Кофе, сливки, ванильный сахар",
			ImageURI:    "/images/raf_classic.png",
			PriceS:      "220 ₽",
			PriceM:      "250 ₽",
			PriceL:      "280 ₽",
			Rating:      4.9,
			Category:    "Раф",
		},
		{
			Name:        "Раф",
			Type:        "Медовый",
			Description: "Вариация классического рафа с добавлением натурального меда вместо сахара. Мед придает напитку особую сладость, полезные свойства и неповторимый цветочный аромат.",
			Ingredients: "Кофе, сливки, мед",
			ImageURI:    "/images/raf_honey.png",
			PriceS:      "240 ₽",
			PriceM:      "270 ₽",
			PriceL:      "300 ₽",
			Rating:      4.4,
			Category:    "Раф",
		},
		{
			Name:        "Раф",
			Type:        "Ореховый",
			Description: "Десертный вариант с ореховым сиропом (обычно фундука). Создает впечатление десерта в чашке с богатым ореховым послевкусием. Часто посыпается дроблеными орехами.",
			Ingredients: "Кофе, сливки, ореховый сироп",
			ImageURI:    "/images/raf_nut.png",
			PriceS:      "230 ₽",
			PriceM:      "260 ₽",
			PriceL:      "290 ₽",
			Rating:      4.7,
			Category:    "Раф",
		},
		{
			Name:        "Раф",
			Type:        "Сникерс",
			Description: "Вдохновленный популярным батончиком, сочетает шоколадный и карамельный сиропы с дроблеными орехами. Настоящий десертный кофе с карамельно-ореховым вкусом.",
			Ingredients: "Кофе, сливки, шоколад, карамель",
			ImageURI:    "/images/raf_snickers.png",
			PriceS:      "290 ₽",
			PriceM:      "320 ₽",
			PriceL:      "350 ₽",
			Rating:      5.0,
			Category:    "Раф",
		},
		{
			Name:        "Раф",
			Type:        "Соленая карамель",
			Description: "Идеальный баланс сладкой карамели и морской соли. Контраст вкусов делает этот напиток особенно запоминающимся. Соль подчеркивает сладость карамели и смягчает горечь кофе.",
			Ingredients: "Кофе, сливки, соленая карамель",
			ImageURI:    "/images/raf_salted_caramel.png",
			PriceS:      "280 ₽",
			PriceM:      "310 ₽",
			PriceL:      "340 ₽",
			Rating:      5.0,
			Category:    "Раф",
		},

		// Авторские
		{
			Name:        "Фирменный кофе",
			Type:        "Авторская рецептура",
			Description: "Уникальная рецептура нашего шеф-бариста, включающая специально подобранную смесь зерен и секретные ингредиенты. Меняется сезонно в зависимости от доступности лучших сортов кофе.",
			Ingredients: "Кофе, секретные ингредиенты",
			ImageURI:    "/images/signature_coffee.png",
			PriceS:      "290 ₽",
			PriceM:      "320 ₽",
			PriceL:      "350 ₽",
			Rating:      4.9,
			Category:    "Авторские",
		},
		{
			Name:        "Сезонный напиток",
			Type:        "Специальный рецепт",
			Description: "Ограниченное предложение по сезону. Летом может содержать ягодные ноты, зимой - пряные специи. Всегда свежий и неожиданный вкусовой опыт.",
			Ingredients: "Кофе, сезонные ингредиенты",
			ImageURI:    "/images/seasonal_coffee.png",
			PriceS:      "300 ₽",
			PriceM:      "330 ₽",
			PriceL:      "360 ₽",
			Rating:      5.0,
			Category:    "Авторские",
		},
		{
			Name:        "Coffee SAF",
			Type:        "Авторская рецептура",
			Description: "Фирменный напиток кофейни SAF, сочетающий эспрессо, фирменный сироп на основе тропических фруктов и особый способ подачи с дымком. Настоящая визитная карточка нашего заведения.",
			Ingredients: "Кофе, фирменный сироп",
			ImageURI:    "/images/coffee_saf.png",
			PriceS:      "320 ₽",
			PriceM:      "350 ₽",
			PriceL:      "380 ₽",
			Rating:      5.0,
			Category:    "Авторские",
		},
		{
			Name:        "Хлопай и взлетай",
			Type:        "Авторская рецептура",
			Description: "Энергичный напиток для бодрости на основе двойного эспрессо с добавлением тонизирующих трав и натуральных энергетиков. Рекомендуем для утреннего пробуждения или перед важными делами.",
			Ingredients: "Кофе, энергетические компоненты",
			ImageURI:    "/images/clap_and_fly.png",
			PriceS:      "390 ₽",
			PriceM:      "420 ₽",
			PriceL:      "450 ₽",
			Rating:      4.8,
			Category:    "Авторские",
		},
	}
}
