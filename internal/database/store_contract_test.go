package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexmuzz/zezamii-test/internal/models"
)

func fields(name, email string) models.UserFields {
	return models.UserFields{Name: name, Email: email}
}

// testUserStore runs the behaviour every UserStore must share against fresh
// stores produced by newStore.
func testUserStore(t *testing.T, newStore func(t *testing.T) UserStore) {
	ctx := context.Background()

	t.Run("ids start at 1 and increase", func(t *testing.T) {
		s := newStore(t)
		for want := int64(1); want <= 3; want++ {
			u, err := s.Create(ctx, fields("same", "same@example.com"))
			require.NoError(t, err)
			assert.Equal(t, want, u.ID)
		}
	})

	t.Run("create echoes the record", func(t *testing.T) {
		s := newStore(t)
		u, err := s.Create(ctx, fields("Alex", "Alex@example.com"))
		require.NoError(t, err)
		assert.Equal(t, &models.User{ID: 1, Name: "Alex", Email: "Alex@example.com"}, u)
	})

	t.Run("get after create returns equal record", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Create(ctx, fields("Alex", "Alex@example.com"))
		require.NoError(t, err)

		got, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("get missing id", func(t *testing.T) {
		s := newStore(t)
		_, err := s.GetByID(ctx, 42)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list on empty store is empty, not nil", func(t *testing.T) {
		s := newStore(t)
		users, err := s.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("update changes fields but not id", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Create(ctx, fields("Alex", "Alex@example.com"))
		require.NoError(t, err)

		updated, err := s.Update(ctx, created.ID, fields("Muzz", "Muzz@example.com"))
		require.NoError(t, err)
		assert.Equal(t, &models.User{ID: created.ID, Name: "Muzz", Email: "Muzz@example.com"}, updated)

		got, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("update with unchanged values", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Create(ctx, fields("Alex", "Alex@example.com"))
		require.NoError(t, err)

		_, err = s.Update(ctx, created.ID, fields("Alex", "Alex@example.com"))
		require.NoError(t, err)
	})

	t.Run("update missing id", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Update(ctx, 7, fields("Muzz", "Muzz@example.com"))
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete then get fails and second delete fails", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Create(ctx, fields("Alex", "Alex@example.com"))
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, created.ID))

		_, err = s.GetByID(ctx, created.ID)
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, s.Delete(ctx, created.ID), ErrNotFound)
	})

	t.Run("list after create A, create B, delete A is [B]", func(t *testing.T) {
		s := newStore(t)
		a, err := s.Create(ctx, fields("A", "a@example.com"))
		require.NoError(t, err)
		b, err := s.Create(ctx, fields("B", "b@example.com"))
		require.NoError(t, err)
		require.NoError(t, s.Delete(ctx, a.ID))

		users, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.User{*b}, users)
	})

	t.Run("list preserves insertion order and is repeatable", func(t *testing.T) {
		s := newStore(t)
		for _, n := range []string{"c", "a", "b"} {
			_, err := s.Create(ctx, fields(n, n+"@example.com"))
			require.NoError(t, err)
		}

		first, err := s.List(ctx)
		require.NoError(t, err)
		second, err := s.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		require.Len(t, first, 3)
		assert.Equal(t, "c", first[0].Name)
		assert.Equal(t, "a", first[1].Name)
		assert.Equal(t, "b", first[2].Name)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Create(ctx, fields("A", "a@example.com"))
		require.NoError(t, err)
		b, err := s.Create(ctx, fields("B", "b@example.com"))
		require.NoError(t, err)
		require.NoError(t, s.Delete(ctx, b.ID))

		c, err := s.Create(ctx, fields("C", "c@example.com"))
		require.NoError(t, err)
		assert.Equal(t, int64(3), c.ID)
	})
}
