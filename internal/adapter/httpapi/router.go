// Package httpapi is the operational HTTP surface: health checks, Prometheus metrics
// and the printable report and CSV export for browsers.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/simaogato/zakatflow-backend/internal/usecase/report"
	"github.com/simaogato/zakatflow-backend/pkg/logger"
)

// HealthCheck reports whether a dependency is reachable
type HealthCheck func(ctx context.Context) error

// Deps are the collaborators of the router. Nil fields disable the routes that need them.
type Deps struct {
	Registry *prometheus.Registry
	Store    HealthCheck
	Reports  *report.ReportService
	Logger   *zap.Logger
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(deps Deps) http.Handler {
	log := logger.OrNop(deps.Logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(ZapLoggerMiddleware(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthzHandler(deps.Store, log))
	r.Get("/readyz", readyzHandler())
	if deps.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	if deps.Reports != nil {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/report", reportHandler(deps.Reports, log))
			r.Get("/distributions/export", exportHandler(deps.Reports, log))
		})
	}

	return r
}

func healthzHandler(store HealthCheck, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		code := http.StatusOK

		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := store(ctx); err != nil {
				log.Warn("store health check failed", zap.Error(err))
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, code, map[string]string{
			"status":  status,
			"checked": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func reportHandler(reports *report.ReportService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		final, err := reports.FinalReport(r.Context())
		if err != nil {
			handleServiceError(w, err, log)
			return
		}

		var buf bytes.Buffer
		if err := final.RenderHTML(&buf); err != nil {
			handleServiceError(w, err, log)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

func exportHandler(reports *report.ReportService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		name, err := reports.ExportCSV(r.Context(), &buf)
		if err != nil {
			handleServiceError(w, err, log)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

func handleServiceError(w http.ResponseWriter, err error, log *zap.Logger) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		log.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
