// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// ErrorClassificator maps a driver error onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository reads user records and writes the key rotation batch.
type UserRepository interface {
	// GetByID returns the user or [ErrNoUserWasFound].
	GetByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	// UpdateUserKeyAndEncryptedData writes the new key envelope and runs
	// actions in one transaction owned by the user, then bumps the user's
	// revision marker.
	UpdateUserKeyAndEncryptedData(ctx context.Context, userID uuid.UUID, envelope models.KeyRotationEnvelope, actions ...MutationAction) error
}

// CipherRepository holds the multi-row cipher batches.
type CipherRepository interface {
	// UpdateCiphers merges ciphers into the user's existing ciphers. Rows of
	// other owners and unknown ids are ignored.
	UpdateCiphers(ctx context.Context, userID uuid.UUID, ciphers []models.Cipher) error
	// CreateUserCiphers inserts imported folders and ciphers for the user.
	CreateUserCiphers(ctx context.Context, userID uuid.UUID, folders []models.Folder, ciphers []models.Cipher) error
	// CreateOrganizationCiphers inserts imported collections, ciphers and
	// their links for the organization.
	CreateOrganizationCiphers(ctx context.Context, orgID uuid.UUID, collections []models.Collection, ciphers []models.Cipher, collectionCiphers []models.CollectionCipher) error
}

// VaultIndexRepository lists item ids per owner.
type VaultIndexRepository interface {
	ListIDs(ctx context.Context, kind models.ItemKind, owner models.Owner) ([]uuid.UUID, error)
}

// OrganizationRepository answers membership questions.
type OrganizationRepository interface {
	// IsAdmin reports whether userID is a confirmed owner or admin of orgID.
	IsAdmin(ctx context.Context, orgID, userID uuid.UUID) (bool, error)
}
