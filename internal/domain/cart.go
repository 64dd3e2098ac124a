package domain

// CartLine is one purchased unit: a snapshot of the catalog item plus the
// price chosen for the selected size at add time. The price lives on the
// line, never written back into the catalog item.
type CartLine struct {
	Item        CoffeeItem `json:"item"`
	Size        Size       `json:"size"`
	ChosenPrice string     `json:"chosenPrice"`
}

// NewCartLine snapshots item with the price of the requested size.
func NewCartLine(item CoffeeItem, size Size) CartLine {
	return CartLine{Item: item, Size: size, ChosenPrice: item.PriceFor(size)}
}

// Equal reports the structural equality used by cart removal: same catalog
// item, same size, same captured price.
func (l CartLine) Equal(other CartLine) bool {
	return l.Item.ID == other.Item.ID && l.Size == other.Size && l.ChosenPrice == other.ChosenPrice
}
