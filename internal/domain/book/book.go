package book

// Book is a catalog entry listed by a seller. The id is supplied by the
// seller form and must be unique across the catalog.
type Book struct {
	ID          int64
	Title       string
	Author      string
	Course      string
	Condition   string
	Image       string
	Price       float64
	Quantity    int64
	OrderCount  int64
	SellerName  string
	Location    string
	Description string
	Category    string
}
