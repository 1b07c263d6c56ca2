// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/validators"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// keyRotationValidationService rejects malformed rotation requests before
// any transaction is opened.
type keyRotationValidationService struct {
	inner     KeyRotationService
	validator validators.Validator
}

func NewKeyRotationValidationService() KeyRotationServiceWrapper {
	return &keyRotationValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *keyRotationValidationService) RotateUserKey(ctx context.Context, userID uuid.UUID, req models.RotateUserKeyRequest) error {
	if err := validate(ctx, v.validator, "keyRotationValidationService.RotateUserKey", userID, req); err != nil {
		return err
	}
	return v.inner.RotateUserKey(ctx, userID, req)
}

func (v *keyRotationValidationService) Wrap(inner KeyRotationService) KeyRotationService {
	v.inner = inner
	return v
}

type importValidationService struct {
	inner     ImportService
	validator validators.Validator
}

func NewImportValidationService() ImportServiceWrapper {
	return &importValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *importValidationService) ImportCiphers(ctx context.Context, userID uuid.UUID, req models.ImportCiphersRequest) error {
	if err := validate(ctx, v.validator, "importValidationService.ImportCiphers", userID, req); err != nil {
		return err
	}
	return v.inner.ImportCiphers(ctx, userID, req)
}

func (v *importValidationService) ImportOrganizationCiphers(ctx context.Context, userID, orgID uuid.UUID, req models.ImportOrganizationCiphersRequest) error {
	if orgID == uuid.Nil {
		return fmt.Errorf("%w: organization id is required", ErrInvalidDataProvided)
	}
	if err := validate(ctx, v.validator, "importValidationService.ImportOrganizationCiphers", userID, req); err != nil {
		return err
	}
	return v.inner.ImportOrganizationCiphers(ctx, userID, orgID, req)
}

func (v *importValidationService) Wrap(inner ImportService) ImportService {
	v.inner = inner
	return v
}

type cipherValidationService struct {
	inner     CipherService
	validator validators.Validator
}

func NewCipherValidationService() CipherServiceWrapper {
	return &cipherValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *cipherValidationService) ResyncCiphers(ctx context.Context, userID uuid.UUID, req models.ResyncCiphersRequest) error {
	if err := validate(ctx, v.validator, "cipherValidationService.ResyncCiphers", userID, req); err != nil {
		return err
	}
	return v.inner.ResyncCiphers(ctx, userID, req)
}

func (v *cipherValidationService) Wrap(inner CipherService) CipherService {
	v.inner = inner
	return v
}

// validate checks the caller id and the request. Every failure wraps
// ErrInvalidDataProvided together with the validator error.
func validate(ctx context.Context, validator validators.Validator, fn string, userID uuid.UUID, req any) error {
	if userID == uuid.Nil {
		return fmt.Errorf("%w: user id is required", ErrInvalidDataProvided)
	}
	if err := validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", fn).Str("user_id", userID.String()).Msg("request validation failed")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
