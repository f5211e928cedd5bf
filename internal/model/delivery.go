package model

// DeliveryPartner is one entry in the static delivery partner table.
// Partners are selected, never created, during checkout.
type DeliveryPartner struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	EstimatedDays string  `json:"estimatedDays"`
}
