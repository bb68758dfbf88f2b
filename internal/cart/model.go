package cart

// Product carries the fields the cart needs from a catalog product. The
// JSON tags follow the backend's wire naming so persisted carts stay
// readable by anything that already speaks that format.
type Product struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"prix"`
	ImagePath string  `json:"image"`
}

// Line is one product entry in the cart. Quantity is always >= 1 for a
// line returned by the store.
type Line struct {
	ProductID string  `json:"_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"prix"`
	ImagePath string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns the line's contribution to the cart total.
func (l Line) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
