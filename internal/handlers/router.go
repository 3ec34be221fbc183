package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Alexmuzz/zezamii-test/internal/app"
)

// NewRouter builds the HTTP surface of the users API.
func NewRouter(a *app.App) http.Handler {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(a.Log))
	r.Use(middleware.Recoverer)

	InitHealthHandler(r, a)
	r.Route("/users", NewUserHandler(a).Routes)

	return r
}
