package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unihub/campus-events-backend/internal/config"
	"github.com/unihub/campus-events-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health        *HealthHandler
	Events        *EventHandler
	Registrations *RegistrationHandler
	Scoring       *ScoringHandler
	Notifications *NotificationHandler
}

// NewRouter assembles the HTTP routing table with the standard
// middleware chain. Probes stay outside the chain so they are never
// logged or CORS-gated.
func NewRouter(h Handlers, logger *slog.Logger, cors config.CORSConfig) http.Handler {
	mux := chi.NewRouter()

	mux.Get("/health", h.Health.Health)
	mux.Get("/health/live", h.Health.Live)
	mux.Get("/health/ready", h.Health.Ready)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cors),
		middleware.Actor,
	)

	mux.Route("/api/v1", func(api chi.Router) {
		api.Use(chain)

		api.Route("/events", func(r chi.Router) {
			r.Get("/", h.Events.List)
			r.Post("/", h.Events.Create)

			r.Route("/{eventID}", func(r chi.Router) {
				r.Get("/", h.Events.Get)
				r.Put("/", h.Events.Update)
				r.Delete("/", h.Events.Delete)

				r.Post("/registrations", h.Registrations.Register)
				r.Delete("/registrations", h.Registrations.Unregister)
				r.Get("/registrations/me", h.Registrations.Status)
				r.Get("/capacity", h.Registrations.Capacity)
				r.Post("/feedback", h.Registrations.SubmitFeedback)
				r.Put("/attendance", h.Registrations.SetAttendance)

				r.Get("/feedback-summary", h.Scoring.FeedbackSummary)
				r.Get("/trend", h.Scoring.Trend)

				r.Post("/broadcast", h.Notifications.Broadcast)
			})
		})

		api.Get("/recommendations", h.Scoring.Recommendations)

		api.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.Notifications.List)
			r.Post("/{notificationID}/read", h.Notifications.MarkRead)
		})
	})

	return mux
}
