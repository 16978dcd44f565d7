package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withRealIP,
		h.withTraceID,
		h.withLogging,
		h.withCORS,
		withGZip,
		h.withRateLimit,
	)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
			r.With(h.auth).Post("/logout", h.logout)
		})

		r.Route("/tweets", func(r chi.Router) {
			// routes without authorization
			r.Get("/", h.listTweets)
			r.Get("/search", h.searchTweets)
			r.Get("/{id}", h.getTweet)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createTweet)
				r.Patch("/{id}", h.updateTweet)
				r.Delete("/{id}", h.deleteTweet)
			})
		})
	})

	return router
}
