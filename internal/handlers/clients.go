package handlers

import (
	"encoding/json"
	"net/http"

	"draftzi-backend/internal/storage"
)

type createClientRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// CreateClient inserts a client stamped with the caller as owner. An owner
// supplied in the body is ignored.
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name required")
		return
	}

	client, err := h.store.CreateClient(r.Context(), identity.UserID, storage.NewClient{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.recordActivity(r, identity.UserID, "create_client", "client", client.ID)

	respondJSON(w, map[string]any{"success": true, "client": client})
}

// ListClients returns only rows owned by the caller.
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	clients, err := h.store.ListClients(r.Context(), identity.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, map[string]any{"success": true, "clients": clients})
}
