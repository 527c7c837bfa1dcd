package payment

import "context"

// DeliveryType selects the delivery option chosen at checkout. Each option
// maps to a fixed surcharge added to the cart total before the gateway is
// contacted; nothing about the selection is persisted.
type DeliveryType string

const (
	DeliveryNormal DeliveryType = "normal"
	DeliveryFast   DeliveryType = "fast"
)

func (d DeliveryType) IsValid() bool {
	switch d {
	case DeliveryNormal, DeliveryFast:
		return true
	default:
		return false
	}
}

// Surcharge is the fixed delivery fee in BDT.
func (d DeliveryType) Surcharge() float64 {
	switch d {
	case DeliveryFast:
		return 240
	default:
		return 120
	}
}

// Session carries everything the gateway needs to create a hosted payment
// page. The success URL embeds the transaction id and owner email so the
// callback is self-describing.
type Session struct {
	Amount        float64
	Currency      string
	TransactionID string

	SuccessURL string
	FailURL    string
	CancelURL  string
	IPNURL     string

	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	CustomerPhone   string

	ShipName     string
	ShipAddress  string
	ShipCity     string
	ShipPostcode string
	ShipCountry  string
}

// Gateway is the payment provider contract. CreateSession returns the URL
// the buyer's browser must be redirected to; any transport failure,
// non-success response or missing redirect URL surfaces as
// ErrGatewayUnavailable.
type Gateway interface {
	CreateSession(ctx context.Context, session Session) (string, error)
}
