// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db          *DB
	coordinator *Coordinator
	logger      *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:          db,
		coordinator: NewCoordinator(db),
		logger:      logger,
	}
}

var userColumns = []string{
	"id", "email", "name", "key", "private_key", "security_stamp",
	"creation_date", "revision_date", "account_revision_date", "last_key_rotation_date",
}

// GetByID loads one user.
//
// Error handling:
//   - no row → [ErrNoUserWasFound].
//   - query failure → wrapped [ErrExecutingQuery].
//   - scan failure → wrapped [ErrScanningRow].
func (r *userRepository) GetByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetByID").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Email, &user.Name, &user.Key, &user.PrivateKey, &user.SecurityStamp,
		&user.CreationDate, &user.RevisionDate, &user.AccountRevisionDate, &user.LastKeyRotationDate,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.GetByID").Str("user_id", userID.String()).Msg("failed to load user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UpdateUserKeyAndEncryptedData rotates the user's key material.
//
// One transaction owned by the user writes the key envelope, runs every
// action in the given order and bumps the user's account revision date.
// If any of it fails nothing is written.
func (r *userRepository) UpdateUserKeyAndEncryptedData(ctx context.Context, userID uuid.UUID, envelope models.KeyRotationEnvelope, actions ...MutationAction) error {
	log := logger.FromContext(ctx)

	writeEnvelope := DirectWrite(func(ctx context.Context, tx *Tx) error {
		rotatedAt := envelope.LastKeyRotationDate.UTC()

		query, args, err := tx.db.builder.
			Update(models.User{}.TableName()).
			Set("key", envelope.Key).
			Set("private_key", envelope.PrivateKey).
			Set("security_stamp", envelope.SecurityStamp).
			Set("revision_date", rotatedAt).
			Set("last_key_rotation_date", rotatedAt).
			Where(sq.Eq{"id": userID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return ErrNoUserWasFound
		}
		return nil
	})

	_, err := r.coordinator.Execute(ctx, Batch{
		Owner:   models.UserOwner(userID),
		Steps:   []Step{writeEnvelope},
		Actions: actions,
	})
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateUserKeyAndEncryptedData").
			Str("user_id", userID.String()).
			Int("actions", len(actions)).
			Msg("key rotation rolled back")
		return err
	}

	return nil
}
