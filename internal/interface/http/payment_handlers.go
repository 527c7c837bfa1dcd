package http

import (
	"net/http"

	dompayment "example.com/bookbarn/app/internal/domain/payment"
)

// initiatePaymentRequest mirrors the cart page payload. Items and
// deliveryCharge are accepted for compatibility but never trusted: the
// server recomputes the total from the stored cart and its own surcharge
// table.
type initiatePaymentRequest struct {
	Email          string           `json:"email" validate:"required,email"`
	DeliveryType   string           `json:"deliveryType" validate:"required"`
	Items          []map[string]any `json:"items"`
	DeliveryCharge float64          `json:"deliveryCharge"`
}

func (a *API) handleInitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req initiatePaymentRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	redirectURL, err := a.checkoutSvc.Initiate(r.Context(), req.Email, dompayment.DeliveryType(req.DeliveryType))
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"GatewayPageURL": redirectURL})
}

// handlePaymentSuccess is invoked by the gateway, not the buyer. Delivery
// is at-least-once; a replayed transaction id settles to the same redirect
// with no new billing record.
//
// Two overlapping Initiate calls for the same owner can still both reach
// the gateway with the same cart; only the transaction id uniqueness
// guards the settlement side.
func (a *API) handlePaymentSuccess(w http.ResponseWriter, r *http.Request) {
	tranID := r.URL.Query().Get("tran_id")
	email := r.URL.Query().Get("email")

	if _, err := a.checkoutSvc.Settle(r.Context(), tranID, email); err != nil {
		handleDomainError(w, err)
		return
	}

	http.Redirect(w, r, a.frontendURL+"/dashboard/delivery-status", http.StatusSeeOther)
}

func (a *API) handlePaymentFail(w http.ResponseWriter, r *http.Request) {
	// Nothing durable was written at initiation, so there is nothing to
	// roll back.
	http.Redirect(w, r, a.frontendURL+"/payment-fail", http.StatusSeeOther)
}

func (a *API) handlePaymentCancel(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, a.frontendURL+"/payment-cancel", http.StatusSeeOther)
}
