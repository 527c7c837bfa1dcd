package payment

import "errors"

var (
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrInvalidDelivery    = errors.New("invalid delivery type")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCallback    = errors.New("missing tran_id or email")
)
