// Package api - thin HTTP layer over the pricing engine.
// Handlers only parse input, call the engine, and serialize output; no
// pricing logic lives here.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"tierpricing/core/localized"
	"tierpricing/core/pricing"
	"tierpricing/internal/logging"
)

// Server serves resolution queries over a loaded catalog.
type Server struct {
	tree    *pricing.Pricing
	mux     *http.ServeMux
	version string
}

// NewServer creates a server over a pricing tree. The tree is treated as
// read-only for the server's lifetime.
func NewServer(tree *pricing.Pricing, version string) *Server {
	s := &Server{
		tree:    tree,
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /resolve", s.handleResolve)
	s.mux.HandleFunc("GET /tiers", s.handleTiers)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleResolve handles POST /resolve
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.TierID == "" {
		s.writeError(w, "VALIDATION_ERROR", "tier_id is required", http.StatusBadRequest)
		return
	}

	at := time.Now().UTC()
	if req.At != "" {
		parsed, err := time.Parse(time.RFC3339, req.At)
		if err != nil {
			s.writeError(w, "VALIDATION_ERROR", "at must be RFC 3339", http.StatusBadRequest)
			return
		}
		at = parsed
	}
	lang := req.Language
	if lang == "" {
		lang = localized.DefaultLanguage
	}

	tier := s.tree.Tier(req.TierID)
	if tier == nil {
		s.writeError(w, "TIER_NOT_FOUND", "catalog has no tiers", http.StatusNotFound)
		return
	}

	resp := ResolveResponse{
		TierID: tier.ID,
		At:     at.Format(time.RFC3339),
	}
	if price := tier.Price(at); price != nil {
		resp.Resolved = true
		resp.Amount = price.Amount.String()
		resp.Priority = price.Priority().String()
		if title := tier.ExceptionTitle(at); title != nil {
			resp.ExceptionTitle = title.In(lang)
		}
	}

	logging.Debug("resolved price",
		zap.String("tier", tier.ID),
		zap.Bool("resolved", resp.Resolved),
		zap.Time("at", at))
	s.writeJSON(w, resp, http.StatusOK)
}

// handleTiers handles GET /tiers
func (s *Server) handleTiers(w http.ResponseWriter, r *http.Request) {
	resp := TiersResponse{Tiers: make([]TierSummary, 0, len(s.tree.Tiers))}
	for _, t := range s.tree.Tiers {
		resp.Tiers = append(resp.Tiers, TierSummary{
			ID:        t.ID,
			Priority:  t.Priority().String(),
			Overrides: len(t.Overrides),
			Seasons:   len(t.Seasons),
			BaseItems: len(t.Items),
		})
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"version": s.version}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{Code: code, Message: message}, status)
}
