// Package order turns a cart snapshot and delivery details into the message
// relayed to the shop's Telegram chat.
package order

import (
	"fmt"
	"strings"

	"coffeesaf/internal/domain"
)

// Assemble builds the order from a cart snapshot and the details collected
// at checkout. It is a pure transformation: completing the purchase on the
// loyalty board and clearing the cart are the caller's job.
func Assemble(lines []domain.CartLine, firstName, lastName, phone, address, deliveryType, deliveryTime string) domain.Order {
	total := 0
	for _, l := range lines {
		total += domain.ParsePrice(l.ChosenPrice)
	}
	o := domain.Order{
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
		DeliveryType: deliveryType,
		DeliveryTime: deliveryTime,
		Lines:        lines,
		Total:        total,
	}
	if deliveryType == domain.DeliveryCourier {
		o.Address = address
	}
	return o
}

// Message renders the Markdown summary sent to the notification chat.
// The address line appears only for courier delivery.
func Message(o domain.Order) string {
	var b strings.Builder

	b.WriteString("🚀 *Новый заказ!*\n\n")
	fmt.Fprintf(&b, "*Клиент:* %s %s\n", o.FirstName, o.LastName)
	fmt.Fprintf(&b, "*Телефон:* %s\n", o.Phone)

	method := "Самовывоз"
	if o.DeliveryType == domain.DeliveryCourier {
		method = "Доставка"
	}
	fmt.Fprintf(&b, "*Способ получения:* %s\n", method)
	if o.DeliveryType == domain.DeliveryCourier {
		fmt.Fprintf(&b, "*Адрес:* %s\n", o.Address)
	}
	fmt.Fprintf(&b, "*Время:* %s\n\n", o.DeliveryTime)

	b.WriteString("*Заказ:*\n")
	for _, l := range o.Lines {
		fmt.Fprintf(&b, "☕ %s (%s) - %s\n", l.Item.Name, l.Item.Type, l.ChosenPrice)
	}

	fmt.Fprintf(&b, "\n*Итого:* %d ₽", o.Total)
	return b.String()
}
