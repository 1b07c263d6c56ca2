// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// stagedAlias is the alias of the staging relation inside the merge UPDATE.
const stagedAlias = "s"

// MergeInto copies the mutable columns of every staged row onto the live row
// with the same primary key, but only where the live row belongs to owner:
//
//	UPDATE live SET col = s.col, ...
//	FROM staging AS s
//	WHERE live.id = s.id AND live.<owner column> = owner.ID
//
// Staged rows without a matching live row, or whose live row has another
// owner, are left out silently. Nothing is ever inserted. The staging
// relation is dropped afterwards and the batch cannot be merged again.
//
// It returns the number of live rows updated.
func MergeInto(ctx context.Context, tx *Tx, batch *StagingBatch, owner models.Owner) (int64, error) {
	log := logger.FromContext(ctx)

	if batch == nil {
		return 0, fmt.Errorf("%w: nil batch", ErrEmptyBatch)
	}
	if batch.tx != tx {
		return 0, ErrForeignBatch
	}
	if batch.consumed {
		return 0, fmt.Errorf("%w: %s", ErrBatchConsumed, batch.name)
	}
	if owner != tx.Owner() {
		return 0, fmt.Errorf("%w: %s != %s", ErrOwnerMismatch, owner, tx.Owner())
	}

	table := batch.table
	if table.Key == "" || len(table.Mutable) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrMergeNotSupported, table.Name)
	}
	ownerColumn, err := table.ownerColumn(owner)
	if err != nil {
		return 0, err
	}

	if err = tx.advance(StateMerging); err != nil {
		return 0, err
	}

	update := tx.db.builder.Update(table.Name)
	for _, column := range table.Mutable {
		update = update.Set(column, sq.Expr(stagedAlias+"."+column))
	}
	query, args, err := update.
		From(batch.name + " AS " + stagedAlias).
		Where(sq.Expr(table.Name + "." + table.Key + " = " + stagedAlias + "." + table.Key)).
		Where(sq.Eq{table.Name + "." + ownerColumn: owner.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "store.MergeInto").Str("table", table.Name).Msg("failed to build merge query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "store.MergeInto").
			Str("table", table.Name).
			Str("owner", owner.String()).
			Int("staged", batch.rows).
			Msg("failed to merge staged rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	batch.consumed = true

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = dropStagingRelation(ctx, tx, batch); err != nil {
		return 0, err
	}

	log.Debug().
		Str("func", "store.MergeInto").
		Str("table", table.Name).
		Str("owner", owner.String()).
		Int("staged", batch.rows).
		Int64("updated", affected).
		Msg("staged rows merged")

	return affected, nil
}

// BulkInsert appends new rows to the live table of kind in chunked multi-row
// INSERTs. It is the import path: there is no existing row to protect, so
// no owner predicate applies. A unique-constraint violation is returned
// wrapped in [ErrDuplicateKey].
func BulkInsert[T any](ctx context.Context, tx *Tx, kind Kind[T], rows []T) (int64, error) {
	log := logger.FromContext(ctx)

	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: nothing to insert into %s", ErrEmptyBatch, kind.Name)
	}
	if err := tx.advance(StateMerging); err != nil {
		return 0, err
	}

	if err := insertRows(ctx, tx, kind.Name, kind, rows); err != nil {
		log.Err(err).
			Str("func", "store.BulkInsert").
			Str("table", kind.Name).
			Int("rows", len(rows)).
			Msg("failed to insert rows")
		return 0, err
	}

	log.Debug().Str("func", "store.BulkInsert").Str("table", kind.Name).Int("rows", len(rows)).Msg("rows inserted")
	return int64(len(rows)), nil
}
