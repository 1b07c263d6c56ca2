// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/coder/quartz"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/migrations"
)

// Dialect names the SQL backend a [DB] talks to.
type Dialect string

const (
	// DialectPostgres is PostgreSQL through the pgx stdlib driver.
	DialectPostgres Dialect = "postgres"
	// DialectSQLite is SQLite through mattn/go-sqlite3.
	DialectSQLite Dialect = "sqlite"
)

// defaultChunkSize is the number of rows sent in one multi-row INSERT when
// no explicit chunk size is configured.
const defaultChunkSize = 128

// ParseDialect maps a configured driver name onto a [Dialect].
func ParseDialect(driver string) (Dialect, error) {
	switch Dialect(driver) {
	case DialectPostgres, DialectSQLite:
		return Dialect(driver), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, driver)
	}
}

func (d Dialect) driverName() string {
	if d == DialectSQLite {
		return "sqlite3"
	}
	return "pgx"
}

func (d Dialect) placeholder() sq.PlaceholderFormat {
	if d == DialectSQLite {
		return sq.Question
	}
	return sq.Dollar
}

// maxBindParams is the number of bind parameters a single statement may
// carry on this backend.
func (d Dialect) maxBindParams() int {
	if d == DialectSQLite {
		return 32766
	}
	return 65535
}

// supportsRowLocks reports whether SELECT ... FOR UPDATE is available.
// SQLite serializes writers on the database file instead.
func (d Dialect) supportsRowLocks() bool {
	return d == DialectPostgres
}

// DB is the shared database handle of the store package. It embeds the
// connection pool and carries everything a batch needs: the dialect-aware
// statement builder, the driver error classifier and the revision clock.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	clock              quartz.Clock
	chunkSize          int
	logger             *logger.Logger
}

// Option customizes a [DB] built by [NewDB].
type Option func(*DB)

// WithClock replaces the wall clock used for revision stamps.
func WithClock(clock quartz.Clock) Option {
	return func(db *DB) {
		db.clock = clock
	}
}

// WithChunkSize sets the maximum number of rows per multi-row INSERT.
// Non-positive values keep the default.
func WithChunkSize(size int) Option {
	return func(db *DB) {
		if size > 0 {
			db.chunkSize = size
		}
	}
}

// WithLogger sets the fallback logger.
func WithLogger(log *logger.Logger) Option {
	return func(db *DB) {
		db.logger = log
	}
}

// NewDB wraps an already opened connection pool.
func NewDB(conn *sql.DB, dialect Dialect, opts ...Option) *DB {
	db := &DB{
		DB:        conn,
		dialect:   dialect,
		builder:   sq.StatementBuilder.PlaceholderFormat(dialect.placeholder()),
		clock:     quartz.NewReal(),
		chunkSize: defaultChunkSize,
		logger:    logger.Nop(),
	}

	switch dialect {
	case DialectSQLite:
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	for _, opt := range opts {
		opt(db)
	}

	return db
}

// Connect opens and pings the database described by cfg.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		log.Err(err).Str("func", "Connect").Msg("unsupported database driver")
		return nil, err
	}

	conn, err := sql.Open(dialect.driverName(), cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "Connect").Str("dialect", string(dialect)).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	switch {
	case dialect == DialectSQLite:
		// one writer at a time; avoids SQLITE_BUSY between pooled connections
		conn.SetMaxOpenConns(1)
	case cfg.MaxOpenConns > 0:
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	conn.SetConnMaxIdleTime(5 * time.Minute)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "Connect").Str("dialect", string(dialect)).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "Connect").Str("dialect", string(dialect)).Msg("connected to database successfully")

	return NewDB(conn, dialect, WithChunkSize(cfg.ChunkSize), WithLogger(log)), nil
}

// Migrate applies the embedded schema migrations of the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Dialect returns the SQL backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// rowsPerStatement caps a multi-row INSERT so that it stays within both the
// configured chunk size and the backend's bind-parameter limit.
func (db *DB) rowsPerStatement(columns int) int {
	if columns <= 0 {
		return db.chunkSize
	}
	limit := db.dialect.maxBindParams() / columns
	if limit < 1 {
		limit = 1
	}
	return min(db.chunkSize, limit)
}
