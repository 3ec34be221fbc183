package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open builds the UserStore for driver. The returned close function releases
// the underlying database handle, if any.
func Open(ctx context.Context, driver, dsn string, logger *zap.Logger) (UserStore, func() error, error) {
	noop := func() error { return nil }

	switch driver {
	case DriverMemory, "":
		return NewMemoryUserStore(logger), noop, nil
	case DriverSQLite:
		db, err := NewSQLite(ctx, dsn)
		if err != nil {
			return nil, noop, err
		}
		return NewSQLiteUserStore(db), db.Close, nil
	case DriverPostgres:
		db, err := NewPostgres(ctx, dsn)
		if err != nil {
			return nil, noop, err
		}
		return NewPgUserStore(db), db.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown database driver %q", driver)
	}
}
