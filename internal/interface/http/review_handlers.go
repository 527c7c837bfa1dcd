package http

import (
	"net/http"
	"time"

	domreview "example.com/bookbarn/app/internal/domain/review"
)

type createReviewRequest struct {
	BookID    int64     `json:"bookId" validate:"required,gt=0"`
	Email     string    `json:"email" validate:"required,email"`
	Name      string    `json:"name" validate:"required"`
	Avatar    string    `json:"avatar"`
	Title     string    `json:"title"`
	Message   string    `json:"message" validate:"required"`
	Rating    int64     `json:"rating" validate:"required,gte=1,lte=5"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *API) handleListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := a.reviewSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	payload := make([]map[string]any, 0, len(reviews))
	for i := range reviews {
		payload = append(payload, mapReview(&reviews[i]))
	}
	writeJSON(w, http.StatusOK, payload)
}

func (a *API) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	rev, err := a.reviewSvc.Submit(r.Context(), domreview.Review{
		BookID:    req.BookID,
		Email:     req.Email,
		Name:      req.Name,
		Avatar:    req.Avatar,
		Title:     req.Title,
		Message:   req.Message,
		Rating:    req.Rating,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"insertedId": rev.ID})
}
