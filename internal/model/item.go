package model

// LineItem is one menu item plus the quantity requested, as held by the
// cart or by an order at placement time.
type LineItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Subtotal returns price × quantity for this line.
func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

// FoodItem is a menu entry as served by the remote catalogue. While
// browsing, Quantity stays 0 until the user selects the item.
type FoodItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Amount `json:"price"`
	ImageURL    string `json:"image_url"`
	Available   Flag   `json:"available"`
}

// LineItem converts a menu entry into a cart-ready line with the given
// quantity.
func (f FoodItem) LineItem(quantity int) LineItem {
	return LineItem{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Price:       float64(f.Price),
		Quantity:    quantity,
	}
}

// Restaurant represents a restaurant listing. The remote schema misspells
// the restaurant keys; the tags match the wire, not the words.
type Restaurant struct {
	ID       int64  `json:"id"`
	Name     string `json:"restaraunt_name"`
	Location string `json:"location"`
	ImageURL string `json:"restaraunt_image"`
}
