package cart

// Item is one product-and-quantity pair inside a cart. UnitPrice is a
// snapshot taken when the product was added; it is not re-fetched from the
// catalog afterwards.
type Item struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	UnitPrice float64 `json:"unitPrice"`
	ImageURL  string  `json:"imageUrl"`
	Quantity  int     `json:"quantity"`
}
