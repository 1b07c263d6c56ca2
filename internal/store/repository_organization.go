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

type organizationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewOrganizationRepository constructs an [OrganizationRepository] backed by db.
func NewOrganizationRepository(db *DB, logger *logger.Logger) OrganizationRepository {
	return &organizationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *organizationRepository) IsAdmin(ctx context.Context, orgID, userID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From("organization_users").
		Where(sq.Eq{
			"organization_id": orgID,
			"user_id":         userID,
			"status":          int(models.OrganizationUserConfirmed),
			"type":            []int{int(models.OrganizationUserOwner), int(models.OrganizationUserAdmin)},
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "organizationRepository.IsAdmin").
			Str("organization_id", orgID.String()).
			Str("user_id", userID.String()).
			Msg("failed to check membership")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}
