package database

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Gorm dialects understood by NewGormDB.
const (
	DialectMySQL  = "mysql"
	DialectSQLite = "sqlite"
)

// NewGormDB opens a MySQL or SQLite database and installs the otelgorm tracing plugin.
// SQLite is limited to one open connection so in-memory databases survive and writers never contend.
func NewGormDB(dialect, dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%s DSN cannot be empty", dialect)
	}

	var dialector gorm.Dialector
	switch dialect {
	case DialectMySQL:
		dialector = mysql.Open(dsn)
	case DialectSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported gorm dialect %q", dialect)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  newGormLogger(log.New(os.Stderr, "\r\n", log.LstdFlags)),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access %s connection pool: %w", dialect, err)
	}
	if dialect == DialectSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	if pluginErr := db.Use(otelgorm.NewPlugin()); pluginErr != nil {
		slog.Warn("Database connected but failed to install otelgorm plugin", slog.String("error", pluginErr.Error()))
	}

	slog.Info("Connected to database.", slog.String("dialect", dialect))
	return db, nil
}

// newGormLogger logs slow queries and errors. Missing rows are an expected outcome of First, not an error.
func newGormLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// CloseGormDB closes the underlying connection pool.
func CloseGormDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
		slog.Info("Database connection closed.")
	}
}
