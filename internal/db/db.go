package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrUnsupportedDSN = errors.New("unsupported connection string")

// GormDB is a parameterized-statement handle to one database. Placeholders are
// written as "?" and translated to the dialect's bind variables by gorm.
type GormDB struct {
	db *gorm.DB
}

// NewGormDB wraps an already opened gorm connection.
func NewGormDB(db *gorm.DB) *GormDB {
	return &GormDB{
		db: db,
	}
}

// Open connects to the database described by dsn. Postgres URLs and key=value
// strings use the postgres driver; sqlite://<path>, file: URIs and :memory:
// use sqlite.
func Open(dsn string) (*GormDB, error) {
	dialector, err := dialectorFor(dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewGormDB(db), nil
}

func dialectorFor(dsn string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(dsn), nil
	case strings.Contains(dsn, "host=") || strings.Contains(dsn, "dbname="):
		return postgres.Open(dsn), nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite://")), nil
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return sqlite.Open(dsn), nil
	}

	scheme, _, found := strings.Cut(dsn, "://")
	if !found {
		scheme = "<none>"
	}
	return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedDSN, scheme)
}

// Exec runs a statement that returns no rows.
func (g *GormDB) Exec(ctx context.Context, query string, args ...any) error {
	if err := g.db.WithContext(ctx).Exec(query, args...).Error; err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

// Query runs a statement and returns every row as a column-name keyed map.
func (g *GormDB) Query(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
	rows := []map[string]any{}
	if err := g.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	return rows, nil
}

func (g *GormDB) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
