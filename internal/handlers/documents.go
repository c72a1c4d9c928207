package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"draftzi-backend/internal/storage"
)

type createDocumentRequest struct {
	ClientID   int    `json:"client_id"`
	TemplateID *int   `json:"template_id"`
	Name       string `json:"name"`
	Content    string `json:"content"`
}

// CreateDocument stores a document together with its enhanced rendition.
func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req createDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ClientID == 0 || req.Name == "" {
		respondError(w, http.StatusBadRequest, "client_id and name required")
		return
	}

	enhanced, err := h.enhancer.Enhance(r.Context(), req.Content)
	if err != nil {
		log.Printf("content enhancement error: %v", err)
		enhanced = req.Content
	}

	doc, err := h.store.CreateDocument(r.Context(), identity.UserID, storage.NewDocument{
		ClientID:        req.ClientID,
		TemplateID:      req.TemplateID,
		Name:            req.Name,
		Content:         req.Content,
		EnhancedContent: enhanced,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.recordActivity(r, identity.UserID, "create_document", "document", doc.ID)

	respondJSON(w, map[string]any{"success": true, "document": doc})
}

// ListDocuments returns the caller's documents joined with client names.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	docs, err := h.store.ListDocuments(r.Context(), identity.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, map[string]any{"success": true, "documents": docs})
}

type predictRequest struct {
	Input string `json:"input"`
}

// Predict exposes the enhancement pipeline directly.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.identity(w, r); !ok {
		return
	}

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	output, err := h.enhancer.Enhance(r.Context(), req.Input)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, map[string]any{
		"success":   true,
		"output":    output,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type createTemplateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Category    *string `json:"category"`
}

func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req createTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name required")
		return
	}

	tpl, err := h.store.CreateTemplate(r.Context(), identity.UserID, storage.NewTemplate{
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.recordActivity(r, identity.UserID, "create_template", "document_template", tpl.ID)

	respondJSON(w, map[string]any{"success": true, "template": tpl})
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	templates, err := h.store.ListTemplates(r.Context(), identity.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, map[string]any{"success": true, "templates": templates})
}
