package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"draftzi-backend/internal/auth"
	"draftzi-backend/internal/cache"
	"draftzi-backend/internal/middleware"
	"draftzi-backend/internal/services"
	"draftzi-backend/internal/storage"
)

type Handler struct {
	store    *storage.Storage
	enhancer services.ContentEnhancer
}

func New(store *storage.Storage, enhancer services.ContentEnhancer) *Handler {
	return &Handler{store: store, enhancer: enhancer}
}

// RegisterRoutes mounts the full API surface. limiter may be nil, in which
// case the auth endpoints run unthrottled.
func (h *Handler) RegisterRoutes(r chi.Router, authHandler *auth.Handler, tokens *auth.TokenManager, limiter cache.Client) {
	r.Route("/api/auth", func(r chi.Router) {
		if limiter != nil {
			r.With(middleware.RateLimitRegister(limiter)).Post("/register", authHandler.Register)
			r.With(middleware.RateLimitLogin(limiter)).Post("/login", authHandler.Login)
		} else {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		}

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(tokens))
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})
	})

	// Everything below requires a valid bearer token.
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokens))

		r.Post("/api/clients", h.CreateClient)
		r.Get("/api/clients", h.ListClients)

		r.Post("/api/documents", h.CreateDocument)
		r.Get("/api/documents", h.ListDocuments)

		r.Post("/api/deadlines", h.CreateDeadline)
		r.Get("/api/deadlines/upcoming", h.UpcomingDeadlines)

		r.Get("/api/profile", h.GetProfile)
		r.Put("/api/profile", h.UpdateProfile)

		r.Post("/api/templates", h.CreateTemplate)
		r.Get("/api/templates", h.ListTemplates)

		r.Post("/api/predict", h.Predict)
	})

	r.Get("/api/health", h.Health)
}

// Health reports liveness and store reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "error",
			"database":  "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	respondJSON(w, map[string]any{
		"status":    "ok",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// identity pulls the guard's decoded caller; the 401 branch only fires if a
// route was mounted without the middleware.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization token required")
	}
	return identity, ok
}

func (h *Handler) recordActivity(r *http.Request, userID int, action, resourceType string, resourceID int) {
	err := h.store.RecordActivity(r.Context(), storage.Activity{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   &resourceID,
		IPAddress:    middleware.ClientIP(r),
		UserAgent:    r.UserAgent(),
	})
	if err != nil {
		log.Printf("activity log error (%s): %v", action, err)
	}
}

func respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
