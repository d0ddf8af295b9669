package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.collector.ScrapeHandler())

		r.Mount("/api/birds", h.birdsRoutes())
		r.Mount("/api/seasons", h.seasonsRoutes())
	})

	// routes behind the token authenticator
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", h.getAllUsers)
			r.Get("/{id}", h.getUserDetails)
			r.Delete("/{id}", h.deleteUser)
		})

		r.Route("/api/posts", func(r chi.Router) {
			r.Get("/", h.getAllPosts)
			r.Post("/", h.createPost)
			r.Get("/{id}", h.getPostDetails)
			r.Put("/{id}", h.updatePost)
			r.Delete("/{id}", h.deletePost)
		})
	})

	return router
}
