package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	jwttoken "estate/internal/jwt_token"
	"estate/internal/platform/middleware"
	"estate/pkg/platform/httputil"
)

func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Latency(a.http))

	r.Get("/healthz", a.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))

	validator := jwttoken.NewJWTServiceAdapter(a.jwt)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(validator, a.log))
		a.handler.Register(r)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(a.log))
			a.handler.RegisterAdmin(r)
		})
	})
	return r
}

func (a *app) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := a.health(ctx); err != nil {
		a.log.WarnContext(ctx, "health check failed", "error", err)
		httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "storage": a.storage})
}
