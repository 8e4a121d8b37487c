package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/exampaper/go-exampaper/internal/config"
)

// NewHTTPServer wires the paper service routes plus health and metrics.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, h *Handlers) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewRouter(h),
	}
}

// NewRouter builds the route table; split out so tests can mount it on an
// httptest server.
func NewRouter(h *Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("POST /v1/sessions", h.CreateSession)
	mux.HandleFunc("PUT /v1/sessions/{id}/template", h.UploadTemplate)
	mux.HandleFunc("POST /v1/sessions/{id}/questions", h.AddQuestion)
	mux.HandleFunc("GET /v1/sessions/{id}/questions", h.ListQuestions)
	mux.HandleFunc("DELETE /v1/sessions/{id}/questions", h.ClearQuestions)
	mux.HandleFunc("POST /v1/sessions/{id}/paper", h.GeneratePaper)

	return mux
}
