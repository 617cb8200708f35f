package backend

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_manager_app/internal/platform/config"
	"github.com/SscSPs/workshop_manager_app/internal/repositories/database/gormdb"
	"github.com/SscSPs/workshop_manager_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/workshop_manager_app/pkg/database"
)

// CleanupFunc releases the connections a backend opened.
type CleanupFunc func()

// Result is a ready-to-use repository set plus its cleanup.
type Result struct {
	Repositories portsrepo.RepositoryProvider
	Cleanup      CleanupFunc
}

// New opens the storage backend named by cfg.StorageBackend, migrates its schema and wires repositories.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		return newPostgresBackend(ctx, cfg, logger)
	case config.BackendMySQL:
		return newGormBackend(database.DialectMySQL, cfg.MySQLDSN, logger)
	case config.BackendSQLite:
		return newGormBackend(database.DialectSQLite, cfg.SQLitePath, logger)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.StorageBackend)
	}
}

func newPostgresBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	logger.Info("Running database migrations...")
	if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Initialized PostgreSQL backend")
	return &Result{
		Repositories: pgsql.NewRepositoryProvider(pool),
		Cleanup:      func() { database.ClosePgxPool(pool) },
	}, nil
}

func newGormBackend(dialect, dsn string, logger *slog.Logger) (*Result, error) {
	db, err := database.NewGormDB(dialect, dsn)
	if err != nil {
		return nil, err
	}

	if err := gormdb.AutoMigrate(db); err != nil {
		database.CloseGormDB(db)
		return nil, fmt.Errorf("failed to migrate %s schema: %w", dialect, err)
	}

	logger.Info("Initialized gorm backend", slog.String("dialect", dialect))
	return &Result{
		Repositories: gormdb.NewRepositoryProvider(db),
		Cleanup:      func() { database.CloseGormDB(db) },
	}, nil
}
