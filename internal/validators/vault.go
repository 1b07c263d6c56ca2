// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/google/uuid"
)

// Field name constants used to restrict cipher validation to a subset of
// fields.
const (
	// FieldID targets the item identifier. Required for items that already
	// exist on the server.
	FieldID = "id"

	// FieldType targets the cipher type.
	FieldType = "type"

	// FieldData targets the encrypted cipher payload.
	FieldData = "data"

	// FieldPersonal requires the cipher to carry no organization id.
	FieldPersonal = "personal"
)

var (
	existingCipherFields = []string{FieldID, FieldType, FieldData, FieldPersonal}
	importedCipherFields = []string{FieldType, FieldData}
)

// idSet tracks ids already seen in one request.
type idSet map[uuid.UUID]struct{}

// add reports ErrInvalidID for a nil id and ErrDuplicateID for a repeated one.
func (s idSet) add(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidID
	}
	if _, ok := s[id]; ok {
		return ErrDuplicateID
	}
	s[id] = struct{}{}
	return nil
}

func validateCipher(c models.Cipher, fields ...string) error {
	if len(fields) == 0 {
		fields = existingCipherFields
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if c.ID == uuid.Nil {
				return ErrInvalidID
			}
		case FieldType:
			if !c.Type.Valid() {
				return ErrInvalidType
			}
		case FieldData:
			if c.Data == "" {
				return ErrEmptyData
			}
		case FieldPersonal:
			if c.OrganizationID != nil {
				return ErrOrganizationCipher
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateRelationships(relationships []models.Relationship, items, containers int) error {
	for _, r := range relationships {
		if r.Key < 0 || r.Key >= items || r.Value < 0 || r.Value >= containers {
			return ErrRelationshipOutOfRange
		}
	}
	return nil
}
