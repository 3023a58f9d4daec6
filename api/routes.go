package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface and the session-gated admin
// surface. Public views never mutate; every mutation lives under /admin
// behind the session guard.
func setupRoutes(r chi.Router, handlers *routeHandlers, guard sessionGuard) {
	// Public read-only routes
	r.Group(func(r chi.Router) {
		r.Get("/projects", handlers.projectHandler.list())
		r.Get("/project/{id}", handlers.projectHandler.get())

		r.Get("/experience", handlers.experienceHandler.list())
		r.Get("/experience/{id}", handlers.experienceHandler.get())

		r.Get("/education", handlers.educationHandler.list())
		r.Get("/education/{id}", handlers.educationHandler.get())

		r.Get("/certificates", handlers.certificateHandler.list())
		r.Get("/certificate/{id}", handlers.certificateHandler.get())

		r.Get("/skills", handlers.skillHandler.list())
		r.Get("/skill/{id}", handlers.skillHandler.get())

		r.Get("/contact-info", handlers.contactHandler.get())
	})

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", handlers.authHandler.login())

		r.Group(func(r chi.Router) {
			r.Use(guard.authenticate)

			r.Post("/logout", handlers.authHandler.logout())
			r.Get("/session", handlers.authHandler.session())

			r.Post("/project", handlers.projectHandler.create())
			r.Put("/project/{id}", handlers.projectHandler.update())
			r.Delete("/project/{id}", handlers.projectHandler.remove())

			r.Post("/experience", handlers.experienceHandler.create())
			r.Put("/experience/{id}", handlers.experienceHandler.update())
			r.Delete("/experience/{id}", handlers.experienceHandler.remove())

			r.Post("/education", handlers.educationHandler.create())
			r.Put("/education/{id}", handlers.educationHandler.update())
			r.Delete("/education/{id}", handlers.educationHandler.remove())

			r.Post("/certificate", handlers.certificateHandler.create())
			r.Put("/certificate/{id}", handlers.certificateHandler.update())
			r.Delete("/certificate/{id}", handlers.certificateHandler.remove())

			r.Post("/skill", handlers.skillHandler.create())
			r.Put("/skill/{id}", handlers.skillHandler.update())
			r.Delete("/skill/{id}", handlers.skillHandler.remove())

			r.Put("/contact-info", handlers.contactHandler.update())

			r.Post("/storage/reconcile", handlers.storageHandler.reconcile())
		})
	})
}
