package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"draftzi-backend/internal/storage"
)

const upcomingDeadlineLimit = 10

type createDeadlineRequest struct {
	ClientID     int     `json:"client_id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	DeadlineDate string  `json:"deadline_date"`
	Priority     string  `json:"priority"`
}

// CreateDeadline inserts a compliance deadline assigned to the caller.
func (h *Handler) CreateDeadline(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req createDeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ClientID == 0 || req.Title == "" || req.DeadlineDate == "" {
		respondError(w, http.StatusBadRequest, "client_id, title and deadline_date required")
		return
	}

	date, err := parseDate(req.DeadlineDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "deadline_date must be YYYY-MM-DD")
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	deadline, err := h.store.CreateDeadline(r.Context(), identity.UserID, storage.NewDeadline{
		ClientID:     req.ClientID,
		Title:        req.Title,
		Description:  req.Description,
		DeadlineDate: date,
		Priority:     priority,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.recordActivity(r, identity.UserID, "create_deadline", "compliance_deadline", deadline.ID)

	respondJSON(w, map[string]any{"success": true, "deadline": deadline})
}

// UpcomingDeadlines lists the caller's next deadlines, soonest first.
func (h *Handler) UpcomingDeadlines(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	deadlines, err := h.store.UpcomingDeadlines(r.Context(), identity.UserID, upcomingDeadlineLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, map[string]any{"success": true, "deadlines": deadlines})
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
