package billing

import "errors"

var (
	ErrDuplicateTransaction  = errors.New("transaction already settled")
	ErrEmptyCartAtSettlement = errors.New("no items in cart")
)
