// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
)

// StagingBatch is a transaction-scoped relation holding the rows of one
// [Stage] call. It is write-once and merge-once; it never outlives its
// transaction.
type StagingBatch struct {
	tx       *Tx
	table    Table
	name     string
	rows     int
	consumed bool
}

// Name returns the staging relation name.
func (b *StagingBatch) Name() string {
	return b.name
}

// Table returns the live table the batch is shaped after.
func (b *StagingBatch) Table() Table {
	return b.table
}

// Len returns the number of staged rows.
func (b *StagingBatch) Len() int {
	return b.rows
}

// Stage creates a staging relation shaped like kind.Columns of the live table
// and bulk-appends every row to it. No live table is touched.
//
// An empty rows slice fails with [ErrEmptyBatch] before any statement is
// sent.
func Stage[T any](ctx context.Context, tx *Tx, kind Kind[T], rows []T) (*StagingBatch, error) {
	log := logger.FromContext(ctx)

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: nothing to stage for %s", ErrEmptyBatch, kind.Name)
	}
	if err := tx.advance(StateStaging); err != nil {
		return nil, err
	}

	batch := &StagingBatch{
		tx:    tx,
		table: kind.Table,
		name:  tx.nextStagingName(kind.Name),
	}

	// an empty copy of the live columns keeps types and affinities
	createQuery, createArgs, err := tx.db.builder.
		Select(kind.Columns...).
		From(kind.Name).
		Where("1 = 0").
		Prefix("CREATE TEMP TABLE " + batch.name + " AS").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "store.Stage").Str("table", kind.Name).Msg("failed to build staging table query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, createQuery, createArgs...); err != nil {
		log.Err(err).Str("func", "store.Stage").Str("table", kind.Name).Str("staging", batch.name).Msg("failed to create staging table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	tx.trackBatch(batch)

	if err = insertRows(ctx, tx, batch.name, kind, rows); err != nil {
		log.Err(err).Str("func", "store.Stage").Str("table", kind.Name).Int("rows", len(rows)).Msg("failed to stage rows")
		return nil, err
	}
	batch.rows = len(rows)

	log.Debug().Str("func", "store.Stage").Str("table", kind.Name).Str("staging", batch.name).Int("rows", batch.rows).Msg("rows staged")
	return batch, nil
}

// insertRows appends rows to relation with chunked multi-row INSERTs.
func insertRows[T any](ctx context.Context, tx *Tx, relation string, kind Kind[T], rows []T) error {
	perStatement := tx.db.rowsPerStatement(len(kind.Columns))

	for start := 0; start < len(rows); start += perStatement {
		end := min(start+perStatement, len(rows))

		insert := tx.db.builder.Insert(relation).Columns(kind.Columns...)
		for _, row := range rows[start:end] {
			values := kind.Values(row)
			if len(values) != len(kind.Columns) {
				return fmt.Errorf("%w: %s expects %d values, got %d", ErrBuildingSQLQuery, kind.Name, len(kind.Columns), len(values))
			}
			insert = insert.Values(values...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if tx.db.errorClassificator.Classify(err) == DuplicateKey {
				return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func dropStagingRelation(ctx context.Context, tx *Tx, batch *StagingBatch) error {
	if _, err := tx.ExecContext(ctx, "DROP TABLE "+batch.name); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "store.dropStagingRelation").
			Str("staging", batch.name).
			Msg("failed to drop staging table")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	tx.untrackBatch(batch)
	return nil
}
