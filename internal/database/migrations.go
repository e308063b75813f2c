package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

var ErrMigrationsUnsupported = errors.New("migrations require a pgxpool connection")

// Migrate applies all pending embedded migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return db.withGoose(func(sqlDB *sql.DB) error {
		if err := goose.UpContext(ctx, sqlDB, migrationsDir); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		return nil
	})
}

// MigrationVersion returns the latest applied migration version.
func (db *DB) MigrationVersion(ctx context.Context) (int64, error) {
	var version int64
	err := db.withGoose(func(sqlDB *sql.DB) error {
		v, err := goose.GetDBVersionContext(ctx, sqlDB)
		if err != nil {
			return fmt.Errorf("failed to read migration version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

func (db *DB) withGoose(fn func(*sql.DB) error) error {
	pool, ok := db.Pool.(*pgxpool.Pool)
	if !ok {
		return ErrMigrationsUnsupported
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	return fn(sqlDB)
}
