package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/rowexpand"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Table is the part of the expansion table served over HTTP.
type Table interface {
	ExpandedRowKeys() domain.KeySet
	View(side domain.FixedSide) []domain.RowView
	ToggleKey(key domain.RowKey, ev domain.InputEvent) (bool, error)
	ExpandKey(key domain.RowKey, ev domain.InputEvent) (bool, error)
	CollapseKey(key domain.RowKey, ev domain.InputEvent) (bool, error)
	SetExpandedRowKeys(keys domain.KeySet)
	Subscribe(fn func(domain.ViewState)) func()
}

var _ Table = (*rowexpand.Table)(nil)

// Server exposes a Table as a small JSON API.
type Server struct {
	Table   Table
	Streams *StreamManager

	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithGatherer mounts /metrics backed by g.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// ExpandedKeysResponse is the body of GET /rows/expanded and PUT /rows/expanded.
type ExpandedKeysResponse struct {
	ExpandedRowKeys domain.KeySet `json:"expanded_row_keys"`
}

// ToggleResponse is the body returned by the toggle endpoints.
// Expanded reflects the key set after the request; a controlled table
// leaves it unchanged.
type ToggleResponse struct {
	Key             domain.RowKey `json:"key"`
	Expanded        bool          `json:"expanded"`
	ExpandedRowKeys domain.KeySet `json:"expanded_row_keys"`
}

// NewHandler creates the HTTP handler for table.
// The returned function detaches the handler from the table.
func NewHandler(table Table, opts ...Option) (http.Handler, func()) {
	server := &Server{
		Table:  table,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}
	server.Streams = NewStreamManager(server.logger)

	unsubscribe := table.Subscribe(func(state domain.ViewState) {
		body, err := json.Marshal(ExpandedKeysResponse{ExpandedRowKeys: state.ExpandedRowKeys})
		if err != nil {
			server.logger.Error("Failed to encode state event", "error", err)
			return
		}
		server.Streams.Broadcast(string(body))
	})

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/rows", server.GetRows)
	r.Get("/rows/expanded", server.GetExpanded)
	r.Put("/rows/expanded", server.PutExpanded)
	r.Post("/rows/{key}/toggle", server.toggle(server.Table.ToggleKey))
	r.Post("/rows/{key}/expand", server.toggle(server.Table.ExpandKey))
	r.Post("/rows/{key}/collapse", server.toggle(server.Table.CollapseKey))
	r.Get("/events", server.SubscribeEvents)
	if server.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r), func() {
		unsubscribe()
		server.Streams.Close()
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "rowexpand-http",
		"version": strings.TrimSpace(rowexpand.Version),
	})
}

// GetRows handles GET /rows. The optional "side" query selects the
// left or right fixed section; "all=true" includes hidden rows.
func (s *Server) GetRows(w http.ResponseWriter, r *http.Request) {
	side, err := parseSide(r.URL.Query().Get("side"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows := s.Table.View(side)
	if r.URL.Query().Get("all") != "true" {
		visible := rows[:0:0]
		for _, row := range rows {
			if row.Visible {
				visible = append(visible, row)
			}
		}
		rows = visible
	}
	s.writeJSON(w, http.StatusOK, rows)
}

// GetExpanded handles GET /rows/expanded.
func (s *Server) GetExpanded(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, ExpandedKeysResponse{ExpandedRowKeys: s.Table.ExpandedRowKeys()})
}

// PutExpanded handles PUT /rows/expanded. The table behaves as if its
// controlling owner passed the new key set.
func (s *Server) PutExpanded(w http.ResponseWriter, r *http.Request) {
	var body ExpandedKeysResponse
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("PutExpanded: Invalid request body", "error", err)
		return
	}
	if body.ExpandedRowKeys == nil {
		http.Error(w, "expanded_row_keys is required", http.StatusBadRequest)
		return
	}

	s.Table.SetExpandedRowKeys(body.ExpandedRowKeys)
	s.writeJSON(w, http.StatusOK, ExpandedKeysResponse{ExpandedRowKeys: s.Table.ExpandedRowKeys()})
}

type toggleFunc func(key domain.RowKey, ev domain.InputEvent) (bool, error)

func (s *Server) toggle(fn toggleFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := domain.RowKey(chi.URLParam(r, "key"))
		if _, err := fn(key, domain.NewEvent("http")); err != nil {
			if errors.Is(err, domain.ErrRowNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, fmt.Sprintf("Toggle error: %v", err), http.StatusInternalServerError)
			s.logger.Error("Toggle failed", "key", key, "error", err)
			return
		}

		keys := s.Table.ExpandedRowKeys()
		s.writeJSON(w, http.StatusOK, ToggleResponse{
			Key:             key,
			Expanded:        keys.Contains(key),
			ExpandedRowKeys: keys,
		})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}

func parseSide(s string) (domain.FixedSide, error) {
	switch domain.FixedSide(s) {
	case domain.FixedNone, domain.FixedLeft, domain.FixedRight:
		return domain.FixedSide(s), nil
	}
	return domain.FixedNone, fmt.Errorf("invalid side %q", s)
}
