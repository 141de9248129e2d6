package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

type requestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// RouterDeps holds everything the HTTP surface needs.
type RouterDeps struct {
	Logger    *slog.Logger
	Admin     *AdminHandler
	Health    *HealthHandler
	Metrics   http.Handler
	Validator tokenValidator
	// Observer and Metrics are optional.
	Observer requestObserver
}

// NewRouter builds the chi router: probes and /metrics are public, the
// retention endpoints require an admin token.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
	)
	if deps.Observer != nil {
		r.Use(middleware.Metrics(deps.Observer))
	}

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/admin/photos", func(r chi.Router) {
		r.Use(middleware.Chain(middleware.Auth(deps.Validator), middleware.AdminOnly))

		r.Post("/duplicates/scan", deps.Admin.ScanDuplicates)
		r.Post("/duplicates/clean", deps.Admin.CleanDuplicates)
		r.Post("/limit", deps.Admin.LimitRecords)
	})

	return r
}
