package contact

import (
	"errors"
	"time"
)

// Message is a submission from the contact form.
type Message struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

var ErrMissingFields = errors.New("all fields are required")
