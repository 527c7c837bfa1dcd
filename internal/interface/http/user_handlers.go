package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domuser "example.com/bookbarn/app/internal/domain/user"
)

type createUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.userSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	payload := make([]map[string]any, 0, len(users))
	for i := range users {
		payload = append(payload, mapUser(&users[i]))
	}
	writeJSON(w, http.StatusOK, payload)
}

func (a *API) handleGetUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	u, err := a.userSvc.GetByEmail(r.Context(), email)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapUser(u))
}

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	created, err := a.userSvc.Upsert(r.Context(), domuser.User{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	if !created {
		writeJSON(w, http.StatusOK, map[string]string{"message": "User already exists"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "User saved"})
}

func (a *API) handleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req updateRoleRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.userSvc.ChangeRole(r.Context(), email, req.Role); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User role updated successfully"})
}
