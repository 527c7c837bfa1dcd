package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	dombilling "example.com/bookbarn/app/internal/domain/billing"
	domcart "example.com/bookbarn/app/internal/domain/cart"
	dompayment "example.com/bookbarn/app/internal/domain/payment"
)

type CartRepository interface {
	ListFor(ctx context.Context, email string) ([]domcart.Line, error)
	ClearFor(ctx context.Context, email string) error
}

type BillingRepository interface {
	Append(ctx context.Context, record dombilling.Record) (*dombilling.Record, error)
}

// Config holds the URLs woven into every gateway session. PublicBaseURL is
// this server as the gateway sees it; FrontendURL is where the buyer's
// browser lands after a failed or cancelled payment.
type Config struct {
	PublicBaseURL string
	FrontendURL   string
	Currency      string
}

type Service struct {
	cartRepo    CartRepository
	billingRepo BillingRepository
	gateway     dompayment.Gateway
	cfg         Config
}

func NewService(cartRepo CartRepository, billingRepo BillingRepository, gateway dompayment.Gateway, cfg Config) *Service {
	if cfg.Currency == "" {
		cfg.Currency = "BDT"
	}
	return &Service{
		cartRepo:    cartRepo,
		billingRepo: billingRepo,
		gateway:     gateway,
		cfg:         cfg,
	}
}

// Initiate quotes the current cart plus the delivery surcharge and asks the
// gateway for a hosted payment page. Nothing durable is written on this
// path: the cart and billing stores look exactly the same afterwards,
// whether the gateway call worked or not.
func (s *Service) Initiate(ctx context.Context, email string, delivery dompayment.DeliveryType) (string, error) {
	if !delivery.IsValid() {
		return "", dompayment.ErrInvalidDelivery
	}

	lines, err := s.cartRepo.ListFor(ctx, email)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", dompayment.ErrEmptyCart
	}

	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Count)
	}
	total += delivery.Surcharge()

	tranID := newTranID()
	session := dompayment.Session{
		Amount:        total,
		Currency:      s.cfg.Currency,
		TransactionID: tranID,

		SuccessURL: fmt.Sprintf("%s/payment-success?tran_id=%s&email=%s", s.cfg.PublicBaseURL, tranID, url.QueryEscape(email)),
		FailURL:    s.cfg.FrontendURL + "/payment-fail",
		CancelURL:  s.cfg.FrontendURL + "/payment-cancel",
		IPNURL:     s.cfg.PublicBaseURL + "/ipn",

		CustomerName:    email,
		CustomerEmail:   email,
		CustomerAddress: "Dhaka",
		CustomerPhone:   "01700000000",

		ShipName:     email,
		ShipAddress:  "Dhaka",
		ShipCity:     "Dhaka",
		ShipPostcode: "1200",
		ShipCountry:  "Bangladesh",
	}

	return s.gateway.CreateSession(ctx, session)
}

// Settle converts the owner's current cart into a billing record and clears
// the cart. The gateway delivers the success callback at least once; a
// replay for a known transaction id is absorbed as a no-op so exactly one
// record exists per settled checkout.
func (s *Service) Settle(ctx context.Context, tranID, email string) (*dombilling.Record, error) {
	if tranID == "" || email == "" {
		return nil, dompayment.ErrInvalidCallback
	}

	lines, err := s.cartRepo.ListFor(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		// In the intended flow the cart still holds the purchased lines
		// when the gateway confirms, so an empty cart here is an anomaly.
		log.Warn().Str("tran_id", tranID).Str("email", email).Msg("settlement callback with empty cart")
		return nil, dombilling.ErrEmptyCartAtSettlement
	}

	items := make([]dombilling.Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, dombilling.Item{
			BookID:   line.BookID,
			Title:    line.Title,
			Author:   line.Author,
			Price:    line.Price,
			Quantity: line.Count,
			Image:    line.Image,
		})
	}

	record, err := s.billingRepo.Append(ctx, dombilling.Record{
		Email:         email,
		TransactionID: tranID,
		Items:         items,
		PurchasedAt:   time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, dombilling.ErrDuplicateTransaction) {
			log.Info().Str("tran_id", tranID).Str("email", email).Msg("settlement replay ignored")
			return nil, nil
		}
		return nil, err
	}

	if err := s.cartRepo.ClearFor(ctx, email); err != nil {
		return nil, err
	}

	return record, nil
}

func newTranID() string {
	return "TID" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
