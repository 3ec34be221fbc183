package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Alexmuzz/zezamii-test/internal/models"
)

type PgUserStore struct {
	db *sqlx.DB
}

// NewPostgres connects to Postgres and makes sure the users table exists.
func NewPostgres(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := InitPgDB(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func NewPgUserStore(db *sqlx.DB) *PgUserStore {
	return &PgUserStore{db: db}
}

func (s *PgUserStore) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := s.db.SelectContext(ctx, &users, "SELECT id, name, email FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *PgUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, "SELECT id, name, email FROM users WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

func (s *PgUserStore) Create(ctx context.Context, f models.UserFields) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u,
		"INSERT INTO users(name, email) VALUES($1, $2) RETURNING id, name, email", f.Name, f.Email)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (s *PgUserStore) Update(ctx context.Context, id int64, f models.UserFields) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u,
		"UPDATE users SET name = $1, email = $2 WHERE id = $3 RETURNING id, name, email", f.Name, f.Email, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return &u, nil
}

func (s *PgUserStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return requireAffected(res)
}
