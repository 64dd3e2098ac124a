package domain

// Delivery types accepted at checkout.
const (
	DeliveryCourier = "delivery"
	DeliveryPickup  = "pickup"
)

// Order is the assembled checkout result handed to the notifier.
type Order struct {
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address,omitempty"`
	DeliveryType string     `json:"deliveryType"`
	DeliveryTime string     `json:"deliveryTime"`
	Lines        []CartLine `json:"lines"`
	Total        int        `json:"total"`
}
