package billing

import "context"

type Repository interface {
	// Append persists the record. Fails with ErrDuplicateTransaction when a
	// record with the same transaction id already exists.
	Append(ctx context.Context, record Record) (*Record, error)
	// ListFor returns the owner's records, newest purchase first.
	ListFor(ctx context.Context, email string) ([]Record, error)
}
