package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	once    sync.Once
	loadErr error
)

// Config holds the runtime settings of the users API.
type Config struct {
	Addr            string        `env:"USERS_ADDR" envDefault:":3030"`
	DBDriver        string        `env:"USERS_DB_DRIVER" envDefault:"memory"`
	DBDSN           string        `env:"USERS_DB_DSN" envDefault:"file:users.db?cache=shared&mode=rwc"`
	SeedUsers       int           `env:"USERS_SEED_USERS" envDefault:"0"`
	LogLevel        string        `env:"USERS_LOG_LEVEL" envDefault:"info"`
	LogDevelopment  bool          `env:"USERS_LOG_DEVELOPMENT" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"USERS_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads a .env file once and loads its variables into the environment.
// The working directory is searched first, then the executable's directory.
// Variables already set in the environment win over the file.
func Load() error {
	once.Do(func() {
		loadErr = loadDotEnv(dotEnvCandidates())
	})
	return loadErr
}

func dotEnvCandidates() []string {
	paths := []string{".env"}
	if exePath, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exePath), ".env"))
	}
	return paths
}

// loadDotEnv loads the first existing file in paths. No file at all is fine.
func loadDotEnv(paths []string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
		return nil
	}
	return nil
}

// Parse builds a Config from environment variables.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
