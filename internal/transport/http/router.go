package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/application/alert"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/config"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/transport/http/handler"
	appmiddleware "github.com/sheisstarwithoutmoon/SafeLink/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.MethodNotAllowed(handler.NotAllowed)

	identityMw := appmiddleware.Identity(deps.Verifier)

	alertSvc := alert.NewService(deps.AlertRepo, deps.Sender)

	healthH := handler.NewHealthHandler()
	alertH := handler.NewAlertHandler(alertSvc)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)

		// Write path. Identity is attached when present, never required.
		r.With(identityMw).Post("/sms", alertH.Dispatch)

		// Read path. Any other method on /alerts gets the 405 handler.
		r.Get("/alerts", alertH.List)
	})

	return r
}
