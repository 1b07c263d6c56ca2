// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// cipherRepository is the SQL implementation of [CipherRepository]. Every
// method is one coordinated batch: the rows and the owner's revision stamp
// commit together or not at all.
type cipherRepository struct {
	coordinator *Coordinator
	logger      *logger.Logger
}

// NewCipherRepository constructs a [CipherRepository] backed by db.
func NewCipherRepository(db *DB, logger *logger.Logger) CipherRepository {
	return &cipherRepository{
		coordinator: NewCoordinator(db),
		logger:      logger,
	}
}

// UpdateCiphers stages ciphers and merges them into the user's ciphers.
// An empty slice fails with [ErrEmptyBatch].
func (r *cipherRepository) UpdateCiphers(ctx context.Context, userID uuid.UUID, ciphers []models.Cipher) error {
	log := logger.FromContext(ctx)

	_, err := r.coordinator.Execute(ctx, Batch{
		Owner: models.UserOwner(userID),
		Steps: []Step{StageAndMerge(CipherUpdateKind, ciphers)},
	})
	if err != nil {
		log.Err(err).
			Str("func", "cipherRepository.UpdateCiphers").
			Str("user_id", userID.String()).
			Int("ciphers", len(ciphers)).
			Msg("failed to update ciphers")
		return err
	}

	return nil
}

// CreateUserCiphers inserts folders first and then ciphers, so that ciphers
// may reference the new folders.
func (r *cipherRepository) CreateUserCiphers(ctx context.Context, userID uuid.UUID, folders []models.Folder, ciphers []models.Cipher) error {
	log := logger.FromContext(ctx)

	steps := make([]Step, 0, 2)
	if len(folders) > 0 {
		steps = append(steps, Insert(FolderInsertKind, folders))
	}
	if len(ciphers) > 0 {
		steps = append(steps, Insert(CipherInsertKind, ciphers))
	}

	_, err := r.coordinator.Execute(ctx, Batch{
		Owner: models.UserOwner(userID),
		Steps: steps,
	})
	if err != nil {
		log.Err(err).
			Str("func", "cipherRepository.CreateUserCiphers").
			Str("user_id", userID.String()).
			Int("folders", len(folders)).
			Int("ciphers", len(ciphers)).
			Msg("failed to import ciphers")
		return err
	}

	return nil
}

// CreateOrganizationCiphers inserts collections, ciphers and the links
// between them, then bumps the organization and all confirmed members.
func (r *cipherRepository) CreateOrganizationCiphers(ctx context.Context, orgID uuid.UUID, collections []models.Collection, ciphers []models.Cipher, collectionCiphers []models.CollectionCipher) error {
	log := logger.FromContext(ctx)

	steps := make([]Step, 0, 3)
	if len(collections) > 0 {
		steps = append(steps, Insert(CollectionInsertKind, collections))
	}
	if len(ciphers) > 0 {
		steps = append(steps, Insert(CipherInsertKind, ciphers))
	}
	if len(collectionCiphers) > 0 {
		steps = append(steps, Insert(CollectionCipherInsertKind, collectionCiphers))
	}

	_, err := r.coordinator.Execute(ctx, Batch{
		Owner: models.OrganizationOwner(orgID),
		Steps: steps,
	})
	if err != nil {
		log.Err(err).
			Str("func", "cipherRepository.CreateOrganizationCiphers").
			Str("organization_id", orgID.String()).
			Int("collections", len(collections)).
			Int("ciphers", len(ciphers)).
			Int("links", len(collectionCiphers)).
			Msg("failed to import organization ciphers")
		return err
	}

	return nil
}
