package app

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/Alexmuzz/zezamii-test/internal/database"
	"github.com/Alexmuzz/zezamii-test/internal/models"
)

// App wires the user store into the operations exposed over HTTP.
type App struct {
	Users database.UserStore
	Log   *zap.Logger
}

func New(users database.UserStore, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{Users: users, Log: logger}
}

// ParseID reads the id from a request path segment: leading whitespace is
// skipped, an optional sign is accepted, and the longest run of decimal digits
// after it is the id. Anything after the digits is ignored, so "1abc" and "1.0"
// both name user 1. A segment without leading digits, or one too large for
// int64, cannot match any user and reports ErrNotFound.
func ParseID(raw string) (int64, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, database.ErrNotFound
	}

	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, database.ErrNotFound
	}
	return id, nil
}

func (a *App) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	f, err := models.ValidateUserInput(in)
	if err != nil {
		return nil, err
	}
	return a.Users.Create(ctx, f)
}

func (a *App) ListUsers(ctx context.Context) ([]models.User, error) {
	return a.Users.List(ctx)
}

func (a *App) GetUser(ctx context.Context, rawID string) (*models.User, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return a.Users.GetByID(ctx, id)
}

// UpdateUser checks that the user exists before validating the payload, so a
// missing user is reported even when the fields are invalid too.
func (a *App) UpdateUser(ctx context.Context, rawID string, in models.UserInput) (*models.User, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	if _, err := a.Users.GetByID(ctx, id); err != nil {
		return nil, err
	}
	f, err := models.ValidateUserInput(in)
	if err != nil {
		return nil, err
	}
	return a.Users.Update(ctx, id, f)
}

func (a *App) DeleteUser(ctx context.Context, rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}
	return a.Users.Delete(ctx, id)
}
