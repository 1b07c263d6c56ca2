// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

type vaultIndexRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewVaultIndexRepository constructs a [VaultIndexRepository] backed by db.
func NewVaultIndexRepository(db *DB, logger *logger.Logger) VaultIndexRepository {
	return &vaultIndexRepository{
		db:     db,
		logger: logger,
	}
}

// ListIDs returns the ids of every item of kind owned by owner.
func (r *vaultIndexRepository) ListIDs(ctx context.Context, kind models.ItemKind, owner models.Owner) ([]uuid.UUID, error) {
	log := logger.FromContext(ctx)

	table, ok := itemTables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown item kind %q", ErrBuildingSQLQuery, kind)
	}
	ownerColumn, err := table.ownerColumn(owner)
	if err != nil {
		return nil, err
	}

	query, args, err := r.db.builder.
		Select(table.Key).
		From(table.Name).
		Where(sq.Eq{ownerColumn: owner.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultIndexRepository.ListIDs").
			Str("kind", string(kind)).
			Str("owner", owner.String()).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0, 50)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			log.Err(err).Str("func", "vaultIndexRepository.ListIDs").Msg("failed to scan id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
