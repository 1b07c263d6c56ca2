// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// VaultValidator implements Validator for the bulk vault requests: key
// rotation, personal and organization import, and cipher re-sync.
// Only structural rules are checked here. Rules that need the database
// (completeness of a rotation, membership) belong to the services.
type VaultValidator struct {
}

// NewVaultValidator constructs a new VaultValidator.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// of every request are accepted. fields is only used for a bare
// models.Cipher.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Cipher:
		return validateCipher(value, fields...)
	case *models.Cipher:
		return validateCipher(*value, fields...)

	case models.RotateUserKeyRequest:
		return v.validateRotateUserKeyRequest(ctx, value)
	case *models.RotateUserKeyRequest:
		return v.validateRotateUserKeyRequest(ctx, *value)

	case models.ImportCiphersRequest:
		return v.validateImportCiphersRequest(ctx, value)
	case *models.ImportCiphersRequest:
		return v.validateImportCiphersRequest(ctx, *value)

	case models.ImportOrganizationCiphersRequest:
		return v.validateImportOrganizationCiphersRequest(ctx, value)
	case *models.ImportOrganizationCiphersRequest:
		return v.validateImportOrganizationCiphersRequest(ctx, *value)

	case models.ResyncCiphersRequest:
		return v.validateResyncCiphersRequest(ctx, value)
	case *models.ResyncCiphersRequest:
		return v.validateResyncCiphersRequest(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

// validateRotateUserKeyRequest checks the new key material and every
// re-encrypted item. Empty domains are allowed.
func (v *VaultValidator) validateRotateUserKeyRequest(_ context.Context, req models.RotateUserKeyRequest) error {
	if req.Key == "" {
		return ErrEmptyKey
	}
	if req.PrivateKey == "" {
		return ErrEmptyPrivateKey
	}

	seen := idSet{}
	for i, c := range req.Ciphers {
		if err := seen.add(c.ID); err != nil {
			return fmt.Errorf("cipher %d: %w", i, err)
		}
		if err := validateCipher(c); err != nil {
			return fmt.Errorf("cipher %d: %w", i, err)
		}
	}

	seen = idSet{}
	for i, f := range req.Folders {
		if err := seen.add(f.ID); err != nil {
			return fmt.Errorf("folder %d: %w", i, err)
		}
		if f.Name == "" {
			return fmt.Errorf("folder %d: %w", i, ErrEmptyName)
		}
	}

	seen = idSet{}
	for i, s := range req.Sends {
		if err := seen.add(s.ID); err != nil {
			return fmt.Errorf("send %d: %w", i, err)
		}
		if s.Key == "" {
			return fmt.Errorf("send %d: %w", i, ErrEmptySendKey)
		}
	}

	seen = idSet{}
	for i, g := range req.EmergencyAccess {
		if err := seen.add(g.ID); err != nil {
			return fmt.Errorf("emergency access %d: %w", i, err)
		}
		if g.KeyEncrypted == nil || *g.KeyEncrypted == "" {
			return fmt.Errorf("emergency access %d: %w", i, ErrEmptyGrantKey)
		}
	}

	return nil
}

// validateImportCiphersRequest checks a personal import. Ids are assigned by
// the server, so only payloads and relationship indexes are checked.
func (v *VaultValidator) validateImportCiphersRequest(_ context.Context, req models.ImportCiphersRequest) error {
	if len(req.Ciphers) == 0 {
		return ErrEmptyCiphers
	}

	for i, c := range req.Ciphers {
		if err := validateCipher(c, importedCipherFields...); err != nil {
			return fmt.Errorf("cipher %d: %w", i, err)
		}
	}
	for i, f := range req.Folders {
		if f.Name == "" {
			return fmt.Errorf("folder %d: %w", i, ErrEmptyName)
		}
	}

	if err := validateRelationships(req.FolderRelationships, len(req.Ciphers), len(req.Folders)); err != nil {
		return err
	}

	assigned := make(map[int]struct{}, len(req.FolderRelationships))
	for _, r := range req.FolderRelationships {
		if _, ok := assigned[r.Key]; ok {
			return fmt.Errorf("cipher %d: %w", r.Key, ErrCipherInMultipleFolders)
		}
		assigned[r.Key] = struct{}{}
	}

	return nil
}

// validateImportOrganizationCiphersRequest checks an organization import.
// A cipher may belong to several collections, but each pair only once.
func (v *VaultValidator) validateImportOrganizationCiphersRequest(_ context.Context, req models.ImportOrganizationCiphersRequest) error {
	if len(req.Ciphers) == 0 {
		return ErrEmptyCiphers
	}

	for i, c := range req.Ciphers {
		if err := validateCipher(c, importedCipherFields...); err != nil {
			return fmt.Errorf("cipher %d: %w", i, err)
		}
	}
	for i, c := range req.Collections {
		if c.Name == "" {
			return fmt.Errorf("collection %d: %w", i, ErrEmptyName)
		}
	}

	if err := validateRelationships(req.CollectionRelationships, len(req.Ciphers), len(req.Collections)); err != nil {
		return err
	}

	pairs := make(map[models.Relationship]struct{}, len(req.CollectionRelationships))
	for _, r := range req.CollectionRelationships {
		if _, ok := pairs[r]; ok {
			return fmt.Errorf("cipher %d, collection %d: %w", r.Key, r.Value, ErrDuplicateRelationship)
		}
		pairs[r] = struct{}{}
	}

	return nil
}

func (v *VaultValidator) validateResyncCiphersRequest(_ context.Context, req models.ResyncCiphersRequest) error {
	if len(req.Ciphers) == 0 {
		return ErrEmptyCiphers
	}

	seen := idSet{}
	for i, c := range req.Ciphers {
		if err := seen.add(c.ID); err != nil {
			return fmt.Errorf("cipher %d: %w", i, err)
		}
		if err := validateCipher(c, FieldType, FieldData); err != nil {
			return fmt.Errorf("cipher %d: %w", i, err)
		}
	}

	return nil
}
