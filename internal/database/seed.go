package database

import (
	"context"
	"fmt"

	"github.com/Alexmuzz/zezamii-test/internal/models"
)

// SeedUsers tops the store up to n demo users and returns how many it created.
func SeedUsers(ctx context.Context, store UserStore, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}

	users, err := store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	created := 0
	for i := len(users) + 1; i <= n; i++ {
		f := models.UserFields{
			Name:  fmt.Sprintf("Alice%v", i),
			Email: fmt.Sprintf("alice%v@example.com", i),
		}
		if _, err := store.Create(ctx, f); err != nil {
			return created, fmt.Errorf("seed user %d: %w", i, err)
		}
		created++
	}
	return created, nil
}
