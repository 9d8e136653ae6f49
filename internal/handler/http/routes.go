package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the notes API. Every route lives under /api.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(withGZipRequest)

	// must be set before Route so that subrouters inherit them
	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	router.Route("/api/users", func(r chi.Router) {
		// routes without authorization
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/{uid}", h.listNotes)
			r.Post("/{uid}/notes", h.createNote)
			r.Get("/{uid}/notes/{nid}", h.getNote)
			r.Patch("/{uid}/notes/{nid}", h.editNote)
			r.Delete("/{uid}/notes/{nid}", h.deleteNote)
		})
	})

	return router
}
