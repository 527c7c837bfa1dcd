package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dombook "example.com/bookbarn/app/internal/domain/book"
)

type createBookRequest struct {
	ID          int64   `json:"id" validate:"required,gt=0"`
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Course      string  `json:"course" validate:"required"`
	Condition   string  `json:"condition" validate:"required"`
	Image       string  `json:"image" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int64   `json:"quantity" validate:"required,gt=0"`
	OrderCount  int64   `json:"orderCount" validate:"gte=0"`
	SellerName  string  `json:"sellerName" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Description string  `json:"bookDescription" validate:"required"`
	Category    string  `json:"category"`
}

func (a *API) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := a.bookSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeBooks(w, books)
}

func (a *API) handleListBooksByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	books, err := a.bookSvc.ListByCategory(r.Context(), category)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeBooks(w, books)
}

func (a *API) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	err := a.bookSvc.Create(r.Context(), dombook.Book{
		ID:          req.ID,
		Title:       req.Title,
		Author:      req.Author,
		Course:      req.Course,
		Condition:   req.Condition,
		Image:       req.Image,
		Price:       req.Price,
		Quantity:    req.Quantity,
		OrderCount:  req.OrderCount,
		SellerName:  req.SellerName,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": "Book added successfully", "insertedId": req.ID})
}

func (a *API) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.bookSvc.Delete(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Book deleted successfully"})
}

func writeBooks(w http.ResponseWriter, books []dombook.Book) {
	payload := make([]map[string]any, 0, len(books))
	for i := range books {
		payload = append(payload, mapBook(&books[i]))
	}
	writeJSON(w, http.StatusOK, payload)
}
