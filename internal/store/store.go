// Package store implements the repository ports on a SQL database using
// sqlx. It supports sqlite (modernc, no cgo) for local development and
// postgres (pgx stdlib driver) for deployments.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Pool defaults shared by both drivers.
const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 5 * time.Minute
)

// Store owns the database handle and exposes one repository per entity.
// It is created once at process start and passed to the services that
// need it; there are no package-level handles.
type Store struct {
	db *sqlx.DB

	Quotes     *QuoteRepository
	Proverbs   *ProverbRepository
	Favorites  *FavoriteRepository
	Likes      *LikeRepository
	Profiles   *ProfileRepository
	Contact    *ContactRepository
	Newsletter *NewsletterRepository
}

// Options configures Open. Zero pool values fall back to the defaults.
type Options struct {
	// Driver is "sqlite" or "pgx".
	Driver string

	// DSN is a file path for sqlite or a connection string for pgx.
	DSN string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	Logger *slog.Logger
}

// Open connects to the database, configures the pool, and runs pending
// migrations.
func Open(opts Options) (*Store, error) {
	// SQLite: create the data directory if needed.
	if opts.Driver == "sqlite" {
		dir := filepath.Dir(opts.DSN)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating data directory: %w", err)
			}
		}
	}

	db, err := sqlx.Connect(opts.Driver, opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", opts.Driver, err)
	}

	db.SetMaxOpenConns(orDefault(opts.MaxOpenConns, defaultMaxOpenConns))
	db.SetMaxIdleConns(orDefault(opts.MaxIdleConns, defaultMaxIdleConns))

	lifetime := opts.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = defaultConnMaxLifetime
	}

	db.SetConnMaxLifetime(lifetime)

	if err := RunMigrations(db.DB, opts.Driver); err != nil {
		return nil, fmt.Errorf("migrating: %w", err)
	}

	if opts.Logger != nil {
		opts.Logger.Info("store connected", slog.String("driver", opts.Driver))
	}

	return New(db), nil
}

func orDefault(v, fallback int) int {
	if v <= 0 {
		return fallback
	}

	return v
}

// New wraps an existing database handle. Callers are responsible for
// running migrations; Open does both.
func New(db *sqlx.DB) *Store {
	return &Store{
		db:         db,
		Quotes:     &QuoteRepository{db: db},
		Proverbs:   &ProverbRepository{db: db},
		Favorites:  &FavoriteRepository{db: db},
		Likes:      &LikeRepository{db: db},
		Profiles:   &ProfileRepository{db: db},
		Contact:    &ContactRepository{db: db},
		Newsletter: &NewsletterRepository{db: db},
	}
}

// Name identifies the store in health check results.
func (s *Store) Name() string {
	return "store"
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
