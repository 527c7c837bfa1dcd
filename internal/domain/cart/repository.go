package cart

import "context"

type Repository interface {
	// AddOrUpdate inserts the line, or overwrites the count of an existing
	// line for the same (email, book) pair. Returns the stored line.
	AddOrUpdate(ctx context.Context, line Line) (*Line, error)
	SetCount(ctx context.Context, email string, lineID int64, count int64) error
	Remove(ctx context.Context, email string, lineID int64) error
	ListFor(ctx context.Context, email string) ([]Line, error)
	ClearFor(ctx context.Context, email string) error
}
