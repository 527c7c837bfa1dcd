package http

import "net/http"

func (a *API) handleListBillings(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, errEmailRequired)
		return
	}

	records, err := a.billingSvc.History(r.Context(), email)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	payload := make([]map[string]any, 0, len(records))
	for i := range records {
		payload = append(payload, mapBillingRecord(&records[i]))
	}
	writeJSON(w, http.StatusOK, payload)
}
