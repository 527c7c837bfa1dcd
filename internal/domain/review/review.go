package review

import "time"

// Review is a buyer's rating of a purchased book.
type Review struct {
	ID        int64
	BookID    int64
	Email     string
	Name      string
	Avatar    string
	Title     string
	Message   string
	Rating    int64
	CreatedAt time.Time
}
