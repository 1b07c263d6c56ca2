// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// KeyRotationService replaces a user's key material and every personal item
// encrypted under it in one atomic batch.
type KeyRotationService interface {
	RotateUserKey(ctx context.Context, userID uuid.UUID, req models.RotateUserKeyRequest) error
}

// ImportService creates folders, collections and ciphers from a vault export.
type ImportService interface {
	ImportCiphers(ctx context.Context, userID uuid.UUID, req models.ImportCiphersRequest) error
	ImportOrganizationCiphers(ctx context.Context, userID, orgID uuid.UUID, req models.ImportOrganizationCiphersRequest) error
}

// CipherService updates existing personal ciphers in bulk.
type CipherService interface {
	ResyncCiphers(ctx context.Context, userID uuid.UUID, req models.ResyncCiphersRequest) error
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SyncNotifier hands a notification over for delivery once the batch that
// caused it has committed. It must not block.
type SyncNotifier interface {
	Notify(ctx context.Context, notification models.PushNotification)
}
