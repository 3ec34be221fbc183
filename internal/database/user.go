package database

import (
	"context"
	"errors"

	"github.com/Alexmuzz/zezamii-test/internal/models"
)

// ErrNotFound is returned when no user matches the requested id.
var ErrNotFound = errors.New("user not found")

// UserStore owns the user records and their id allocation.
// Ids are assigned by the store, start at 1, and are never reused.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, f models.UserFields) (*models.User, error)
	Update(ctx context.Context, id int64, f models.UserFields) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
