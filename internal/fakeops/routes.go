package fakeops

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withTraceID, s.withLogging)

	router.Route(defaultAPIPrefix, func(r chi.Router) {
		// routes without authorization
		r.Post("/user/login", s.login)

		r.Group(func(r chi.Router) {
			r.Use(s.auth)
			r.Get("/cdns", s.getCDNs)
			r.Post("/cdns", s.createCDN)
			r.Delete("/cdns/{id}", s.deleteCDN)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "Resource not found.")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	return router
}
