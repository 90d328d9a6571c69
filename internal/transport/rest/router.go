package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/facility-management/internal/auth"
	"github.com/frahmantamala/facility-management/internal/spaces"
	"github.com/frahmantamala/facility-management/internal/transport/middleware"
	"github.com/frahmantamala/facility-management/internal/transport/swagger"
	"github.com/frahmantamala/facility-management/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, userHandler *user.Handler, spacesHandler *spaces.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec and Swagger UI live outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Public auth routes
		r.Post("/login", authHandler.Login)
		r.Post("/register", authHandler.Register)

		// Everything below requires a valid bearer token
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/verify-token", authHandler.VerifyToken)
			pr.Get("/profile", userHandler.Profile)

			// User administration is admin-only
			pr.Route("/users", func(ur chi.Router) {
				ur.Use(authHandler.RequireRoles(auth.RoleAdmin))
				ur.Get("/", userHandler.ListUsers)
				ur.Put("/{id}", userHandler.UpdateUser)
				ur.Delete("/{id}", userHandler.DeleteUser)
			})

			pr.Route("/spaces", func(sr chi.Router) {
				sr.Get("/statistics", spacesHandler.Statistics)

				// All authenticated roles may read
				sr.Get("/{kind}", spacesHandler.ListSpaces)
				sr.Get("/{kind}/{id}", spacesHandler.GetSpace)

				// Writes are limited to admin and manager
				sr.Group(func(wr chi.Router) {
					wr.Use(authHandler.RequireRoles(auth.WriterRoles()...))
					wr.Post("/{kind}", spacesHandler.CreateSpace)
					wr.Put("/{kind}/{id}", spacesHandler.UpdateSpace)
				})

				// Deletes are admin-only
				sr.Group(func(dr chi.Router) {
					dr.Use(authHandler.RequireRoles(auth.RoleAdmin))
					dr.Delete("/{kind}/{id}", spacesHandler.DeleteSpace)
				})
			})
		})
	})
}
