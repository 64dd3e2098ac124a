package domain

// Size is the selectable drink volume.
type Size string

const (
	SizeS Size = "S"
	SizeM Size = "M"
	SizeL Size = "L"
)

// CoffeeItem is one position of the coffee menu. Items are loaded from the
// catalog store and treated as read-only; identity is the ID.
type CoffeeItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description,omitempty"`
	Ingredients string  `json:"ingredients,omitempty"`
	ImageURI    string  `json:"imageUri,omitempty"`
	PriceS      string  `json:"priceS"`
	PriceM      string  `json:"priceM"`
	PriceL      string  `json:"priceL"`
	Rating      float32 `json:"rating"`
	Category    string  `json:"category"`
}

// PriceFor returns the localized price string for the given size.
// Anything other than S or L falls back to the medium price.
func (c CoffeeItem) PriceFor(size Size) string {
	switch size {
	case SizeS:
		return c.PriceS
	case SizeL:
		return c.PriceL
	default:
		return c.PriceM
	}
}
