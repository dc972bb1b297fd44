package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kiep-data/analytics-cli/internal/analytics"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the analytic tools over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(newService()),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter builds the tool HTTP surface over the analytics service.
func newRouter(svc *analytics.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/tools", func(r chi.Router) {
		r.Get("/region-health/{code}", func(w http.ResponseWriter, r *http.Request) {
			report, err := svc.RegionHealth(r.Context(), chi.URLParam(r, "code"))
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, report)
		})

		r.Post("/compare", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				RegionCodes []string `json:"region_codes"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}
			comparison, err := svc.CompareRegions(r.Context(), req.RegionCodes)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, comparison)
		})

		r.Get("/clusters", func(w http.ResponseWriter, r *http.Request) {
			minCompanies, _ := strconv.Atoi(r.URL.Query().Get("min_companies"))
			topN, _ := strconv.Atoi(r.URL.Query().Get("top_n"))
			report, err := svc.FindClusters(r.Context(), r.URL.Query().Get("industry"), minCompanies, topN)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, report)
		})

		r.Get("/company/{bizNo}", func(w http.ResponseWriter, r *http.Request) {
			profile, err := svc.CompanyProfile(r.Context(), chi.URLParam(r, "bizNo"))
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, profile)
		})

		r.Get("/complex-risk", func(w http.ResponseWriter, r *http.Request) {
			report, err := svc.ComplexRisk(r.Context(),
				r.URL.Query().Get("complex"),
				r.URL.Query().Get("province"),
			)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, report)
		})

		r.Get("/regions", func(w http.ResponseWriter, r *http.Request) {
			regions, err := svc.ListRegions(r.Context(), r.URL.Query().Get("province"))
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, regions)
		})
	})

	return r
}

// requestID tags each request with a UUID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		zap.L().Debug("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a tool failure onto an HTTP status. Expected failure
// kinds get their own status; anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch analytics.KindOf(err) {
	case analytics.KindValidation:
		status = http.StatusBadRequest
	case analytics.KindNotFound, analytics.KindEmpty:
		status = http.StatusNotFound
	case analytics.KindUpstream:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
