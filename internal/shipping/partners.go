package shipping

import "velour/internal/model"

// partners is the static delivery partner table. Partners are selected,
// never created, during checkout.
var partners = []model.DeliveryPartner{
	{ID: "colissimo", Name: "Colissimo Premium", Price: 12.00, EstimatedDays: "2-3 days"},
	{ID: "dhl-express", Name: "DHL Express", Price: 18.50, EstimatedDays: "1-2 days"},
	{ID: "standard", Name: "Standard Courier", Price: 8.00, EstimatedDays: "4-6 days"},
}

// Partners returns the delivery partner table in display order.
func Partners() []model.DeliveryPartner {
	out := make([]model.DeliveryPartner, len(partners))
	copy(out, partners)
	return out
}

// Get retrieves a partner by ID.
func Get(id string) (model.DeliveryPartner, bool) {
	for _, p := range partners {
		if p.ID == id {
			return p, true
		}
	}
	return model.DeliveryPartner{}, false
}

// Default returns the cheapest partner. The selection rule is explicit
// rather than positional so reordering the table cannot change the
// default.
func Default() model.DeliveryPartner {
	cheapest := partners[0]
	for _, p := range partners[1:] {
		if p.Price < cheapest.Price {
			cheapest = p
		}
	}
	return cheapest
}
