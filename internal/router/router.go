package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/trsv-dev/ts3-state-exporter/internal/api"
	"github.com/trsv-dev/ts3-state-exporter/internal/middleware"
)

// Router Роутер.
func Router(h *api.HandlersContainer) chi.Router {
	router := chi.NewRouter()

	// идентификатор запроса нужен логгеру, поэтому он первый
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LogMiddleware)
	router.Use(middleware.CorsMiddleware(h.AllowedOrigins))

	// публичные маршруты
	router.Get("/health", h.HealthHandler.GetHealth)

	// маршруты, требующие токен (если задан JWT_SECRET_KEY)
	router.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuthMiddleware(h.JWTSecretKey, h.TokenBuilder))

		r.Get("/state", h.StateHandler.GetState)

		r.Route("/clients", func(r chi.Router) {
			r.Get("/online", h.ClientsHandler.OnlineClients)
			r.Get("/known", h.ClientsHandler.KnownClients)

			// маршруты С ID параметром
			r.With(middleware.ParseClientIDMiddleware).Get("/online/{clientID}", h.ClientsHandler.OnlineClient)
			r.With(middleware.ParseClientIDMiddleware).Get("/known/{clientID}", h.ClientsHandler.KnownClient)
		})
	})

	return router
}
