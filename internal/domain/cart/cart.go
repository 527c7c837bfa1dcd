package cart

// Line is one book entry in an owner's cart. There is at most one line
// per (email, book) pair; a repeated add overwrites the count.
type Line struct {
	ID     int64
	Email  string
	BookID int64
	Title  string
	Author string
	Price  float64
	Image  string
	Count  int64
}
