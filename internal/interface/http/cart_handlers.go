package http

import (
	"errors"
	"net/http"

	domcart "example.com/bookbarn/app/internal/domain/cart"
)

var errEmailRequired = errors.New("email is required")

type addCartLineRequest struct {
	Email  string  `json:"email" validate:"required,email"`
	BookID int64   `json:"bookId" validate:"required,gt=0"`
	Count  int64   `json:"count" validate:"omitempty,gt=0"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price" validate:"gte=0"`
	Image  string  `json:"image"`
}

type updateCartCountRequest struct {
	Count int64 `json:"count" validate:"required"`
}

func (a *API) handleListCart(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, errEmailRequired)
		return
	}

	lines, err := a.cartSvc.List(r.Context(), email)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	payload := make([]map[string]any, 0, len(lines))
	for i := range lines {
		payload = append(payload, mapCartLine(&lines[i]))
	}
	writeJSON(w, http.StatusOK, payload)
}

func (a *API) handleAddCartLine(w http.ResponseWriter, r *http.Request) {
	var req addCartLineRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	line, err := a.cartSvc.Add(r.Context(), domcart.Line{
		Email:  req.Email,
		BookID: req.BookID,
		Title:  req.Title,
		Author: req.Author,
		Price:  req.Price,
		Image:  req.Image,
		Count:  req.Count,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mapCartLine(line))
}

// PUT stores an absolute count, not a delta: the cart page computes the
// incremented value client-side and sends the result.
func (a *API) handleUpdateCartCount(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, errEmailRequired)
		return
	}

	lineID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req updateCartCountRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.SetCount(r.Context(), email, lineID, req.Count); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "updatedCount": req.Count})
}

func (a *API) handleRemoveCartLine(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, errEmailRequired)
		return
	}

	lineID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.Remove(r.Context(), email, lineID); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted successfully"})
}
