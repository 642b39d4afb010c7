// Package api provides the HTTP surface of the consultation service.
//
// It exposes the lead-capture endpoint the chat hands off to, an admin view
// of captured leads, a health probe, and the WebSocket chat route. The API
// integrates with the store and engine modules.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ae-wizard/worldimmigration/internal/store"
	"github.com/ae-wizard/worldimmigration/internal/ws"
)

// Server wires the HTTP handlers to their collaborators.
type Server struct {
	store          store.Store
	chat           *ws.Handler
	allowedOrigins []string
}

// NewServer creates a server over the given store. chat may be nil when the
// WebSocket surface is not mounted (tests exercising only the lead API).
func NewServer(st store.Store, chat *ws.Handler, allowedOrigins []string) *Server {
	return &Server{store: st, chat: chat, allowedOrigins: allowedOrigins}
}

// Router builds the route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(corsMiddleware(s.allowedOrigins))

	r.Get("/health", s.healthHandler)
	r.Post("/lead", s.createLeadHandler)
	r.Get("/leads", s.listLeadsHandler)
	r.Get("/conversations", s.listConversationsHandler)
	if s.chat != nil {
		r.Get("/ws", s.chat.ServeHTTP)
	}
	return r
}

// corsMiddleware allows the browser frontend to call the API from its own
// origin. An empty allowlist permits any origin (local development).
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (len(allowed) == 0 || allowed[origin]) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
