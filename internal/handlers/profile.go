package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"draftzi-backend/internal/storage"
)

// GetProfile returns the caller's profile, 404 when none has been saved yet.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	profile, err := h.store.GetProfile(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "profile not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, map[string]any{"success": true, "profile": profile})
}

type updateProfileRequest struct {
	AvatarURL  *string         `json:"avatar_url"`
	JobTitle   *string         `json:"job_title"`
	Department *string         `json:"department"`
	Settings   json.RawMessage `json:"settings"`
}

// UpdateProfile upserts the caller's profile row.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.store.UpsertProfile(r.Context(), identity.UserID, storage.ProfileUpdate{
		AvatarURL:  req.AvatarURL,
		JobTitle:   req.JobTitle,
		Department: req.Department,
		Settings:   req.Settings,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.recordActivity(r, identity.UserID, "update_profile", "profile", profile.ID)

	respondJSON(w, map[string]any{"success": true, "profile": profile})
}
