package billing

import "time"

// Record is an immutable snapshot of a completed purchase. The transaction
// id is unique across all records and doubles as the idempotency key for
// the gateway success callback.
type Record struct {
	ID            int64
	Email         string
	TransactionID string
	Items         []Item
	PurchasedAt   time.Time
}

// Item captures a cart line by value at purchase time, decoupled from any
// later change to the book catalog.
type Item struct {
	BookID   int64
	Title    string
	Author   string
	Price    float64
	Quantity int64
	Image    string
}
