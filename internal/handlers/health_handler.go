package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexmuzz/zezamii-test/internal/app"
)

func Hello(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Users API is running. Try GET /users"))
}

// Health reports whether the user store answers, along with the user count.
func Health(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := a.ListUsers(r.Context())
		if err != nil {
			a.Log.Warn("health check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "users": len(users)})
	}
}

func InitHealthHandler(r chi.Router, a *app.App) {
	r.Get("/", Hello)
	r.Get("/healthz", Health(a))
}
