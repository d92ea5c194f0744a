package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router serving the sign-up, sign-in and sign-out pages.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.home)

	router.Get("/signup", h.signUpForm)
	router.Post("/signup", h.signUp)

	router.Get("/signin", h.signInForm)
	router.Post("/signin", h.signIn)

	router.Get("/signout", h.signOut)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
