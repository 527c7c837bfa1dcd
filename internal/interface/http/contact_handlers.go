package http

import (
	"net/http"

	domcontact "example.com/bookbarn/app/internal/domain/contact"
)

type createContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func (a *API) handleListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := a.contactSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	payload := make([]map[string]any, 0, len(messages))
	for i := range messages {
		payload = append(payload, mapContactMessage(&messages[i]))
	}
	writeJSON(w, http.StatusOK, payload)
}

func (a *API) handleCreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	m, err := a.contactSvc.Submit(r.Context(), domcontact.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "insertedId": m.ID})
}
