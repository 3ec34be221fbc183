package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Alexmuzz/zezamii-test/internal/app"
	"github.com/Alexmuzz/zezamii-test/internal/database"
	"github.com/Alexmuzz/zezamii-test/internal/models"
)

const (
	msgInvalidInput = "Invalid input"
	msgUserNotFound = "User not found"
	msgInternal     = "Internal server error"
)

type UserHandler struct {
	app *app.App
}

func NewUserHandler(app *app.App) *UserHandler {
	return &UserHandler{app: app}
}

// Routes mounts the user endpoints on r.
func (h *UserHandler) Routes(r chi.Router) {
	r.Get("/", h.ListUsers)
	r.Post("/", h.CreateUser)
	r.Get("/{id}", h.GetUser)
	r.Put("/{id}", h.UpdateUser)
	r.Delete("/{id}", h.DeleteUser)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.app.CreateUser(r.Context(), decodeUserInput(r))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.app.ListUsers(r.Context())
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.app.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.app.UpdateUser(r.Context(), chi.URLParam(r, "id"), decodeUserInput(r))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.app.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeUserInput reads the request body as a user payload. Only the exact
// "name" and "email" keys count; other casings are ignored. A body that is not
// a JSON object decodes to an empty payload, which fails validation later.
func decodeUserInput(r *http.Request) models.UserInput {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return models.UserInput{}
	}
	return models.UserInput{Name: body["name"], Email: body["email"]}
}

func (h *UserHandler) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		writeError(w, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, models.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, msgInvalidInput)
	default:
		h.app.Log.Error("user request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
