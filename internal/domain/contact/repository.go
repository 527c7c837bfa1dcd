package contact

import "context"

type Repository interface {
	Create(ctx context.Context, m Message) (*Message, error)
	// List returns all messages, newest first.
	List(ctx context.Context) ([]Message, error)
}
