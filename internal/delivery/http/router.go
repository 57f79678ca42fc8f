package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "eventmanagement/docs"
	"eventmanagement/internal/delivery/http/controllers"
	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/delivery/http/middleware"
	"eventmanagement/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// List and retrieve are public; every mutation requires a Bearer token.
func NewRouter(
	db *sql.DB,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Events
	mux.HandleFunc("GET /events/{$}", eventController.ListEvents)
	mux.HandleFunc("POST /events/{$}", requireAuth(eventController.CreateEvent))
	mux.HandleFunc("GET /events/{eventID}/{$}", eventController.GetEvent)
	mux.HandleFunc("PATCH /events/{eventID}/{$}", requireAuth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}/{$}", requireAuth(eventController.DeleteEvent))

	// Registrations
	mux.HandleFunc("POST /events/registration/{eventID}/{$}", requireAuth(registrationController.RegisterForEvent))

	// Auth
	mux.HandleFunc("POST /auth/login/{$}", authController.Login)
	mux.HandleFunc("POST /auth/register/{$}", authController.Register)
	mux.HandleFunc("POST /auth/refresh/{$}", authController.Refresh)

	// Ops
	mux.HandleFunc("GET /healthz", healthHandler(db))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "database unreachable")
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
