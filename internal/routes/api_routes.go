package routes

import (
	"lumenstudio/darkroom/internal/api"
	"lumenstudio/darkroom/internal/metrics"
	"lumenstudio/darkroom/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes mounts the versioned API. Everything under /api/v1
// requires a valid JWT or API key; write access to studio configuration,
// role definitions and manual allocation runs is admin only, while
// reports and evaluation writes need at least staff standing.
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, h *api.Handlers, deps *api.Dependencies) {

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.MetricsMiddleware(metricsReg))
		r.Use(middleware.AuthMiddleware(deps.Repo.Keys))

		r.Route("/shows", func(r chi.Router) {
			r.Get("/", h.ListShows())
			r.Post("/", h.CreateShow())

			r.Route("/{show_id}", func(r chi.Router) {
				r.Get("/", h.GetShow())
				r.Put("/status", h.UpdateShowStatus())

				r.Post("/assignments", h.AssignToShow())
				r.Delete("/assignments/{assignment_id}", h.UnassignFromShow())

				r.Get("/allocations", h.ListAllocations())
				r.Group(func(r chi.Router) {
					r.Use(middleware.IsAdminMiddleware())
					r.Post("/allocations/trigger-calculation", h.TriggerAllocation())
				})

				r.Get("/payments", h.ListShowPayments())

				r.Get("/evaluations", h.ListShowEvaluations())
				r.Group(func(r chi.Router) {
					r.Use(middleware.IsStaffMiddleware())
					r.Post("/evaluations", h.CreateEvaluation())
				})
			})
		})

		r.Post("/payments", h.RecordPayment())

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.ListClients())
			r.Post("/", h.CreateClient())
			r.Get("/{client_id}", h.GetClient())
			r.Put("/{client_id}", h.UpdateClient())
			r.Get("/{client_id}/shows", h.ListClientShows())
		})

		r.Route("/roles", func(r chi.Router) {
			r.Get("/", h.ListShowRoles())
			r.Group(func(r chi.Router) {
				r.Use(middleware.IsAdminMiddleware())
				r.Post("/", h.CreateShowRole())
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.IsAdminMiddleware())
			r.Get("/", h.ListUsers())
			r.Get("/{user_id}", h.GetUser())
		})

		r.Route("/admin/configs", func(r chi.Router) {
			r.Use(middleware.IsAdminMiddleware())
			r.Get("/", h.GetConfigs())
			r.Put("/", h.SetConfig())
			r.Get("/keys", h.ListConfigKeys())
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(middleware.IsStaffMiddleware())
			r.Get("/revenue", h.RevenueReport())
		})
	})
}
