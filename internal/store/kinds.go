// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// Table describes how rows of one item kind are staged, merged and
// inserted.
type Table struct {
	// Name is the live relation.
	Name string
	// Key is the single-column primary key used to join staged rows to
	// live rows. Empty for tables without one; those can only be inserted.
	Key string
	// Columns are written by Stage and BulkInsert, in the order produced by
	// Kind.Values.
	Columns []string
	// Mutable are the columns MergeInto copies from staged to live rows.
	// Every entry must also appear in Columns.
	Mutable []string
	// UserColumn and OrganizationColumn hold the owner id for each owner
	// type. Empty means the table cannot be owned by that type.
	UserColumn         string
	OrganizationColumn string
}

// ownerColumn returns the column compared against owner.ID.
func (t Table) ownerColumn(owner models.Owner) (string, error) {
	var column string
	switch owner.Type {
	case models.OwnerUser:
		column = t.UserColumn
	case models.OwnerOrganization:
		column = t.OrganizationColumn
	}
	if column == "" {
		return "", fmt.Errorf("%w: %s is not owned by %s", ErrOwnerNotSupported, t.Name, owner.Type)
	}
	return column, nil
}

// Kind binds a [Table] to the Go type of its rows.
type Kind[T any] struct {
	Table
	// Values returns the column values of one row in Columns order.
	Values func(T) []any
}

var (
	cipherUserColumns = []string{
		"id", "type", "data", "key", "attachments", "folder_id",
		"favorite", "reprompt", "revision_date", "deleted_date",
	}

	// CipherUpdateKind is the bulk re-sync shape of a cipher: everything a
	// client may edit.
	CipherUpdateKind = Kind[models.Cipher]{
		Table: Table{
			Name:               "ciphers",
			Key:                "id",
			Columns:            cipherUserColumns,
			Mutable:            cipherUserColumns[1:],
			UserColumn:         "user_id",
			OrganizationColumn: "organization_id",
		},
		Values: func(c models.Cipher) []any {
			return []any{
				c.ID, int(c.Type), c.Data, c.Key, c.Attachments, c.FolderID,
				c.Favorite, c.Reprompt, c.RevisionDate.UTC(), nullableTime(c.DeletedDate),
			}
		},
	}

	// CipherRotationKind re-encrypts a cipher under a new user key.
	CipherRotationKind = Kind[models.Cipher]{
		Table: Table{
			Name:       "ciphers",
			Key:        "id",
			Columns:    []string{"id", "data", "key", "attachments", "revision_date"},
			Mutable:    []string{"data", "key", "attachments", "revision_date"},
			UserColumn: "user_id",
		},
		Values: func(c models.Cipher) []any {
			return []any{c.ID, c.Data, c.Key, c.Attachments, c.RevisionDate.UTC()}
		},
	}

	// CipherInsertKind is a complete cipher row for imports.
	CipherInsertKind = Kind[models.Cipher]{
		Table: Table{
			Name: "ciphers",
			Key:  "id",
			Columns: []string{
				"id", "user_id", "organization_id", "type", "data", "key", "attachments",
				"folder_id", "favorite", "reprompt", "creation_date", "revision_date", "deleted_date",
			},
			UserColumn:         "user_id",
			OrganizationColumn: "organization_id",
		},
		Values: func(c models.Cipher) []any {
			return []any{
				c.ID, c.UserID, c.OrganizationID, int(c.Type), c.Data, c.Key, c.Attachments,
				c.FolderID, c.Favorite, c.Reprompt, c.CreationDate.UTC(), c.RevisionDate.UTC(), nullableTime(c.DeletedDate),
			}
		},
	}

	// FolderInsertKind is a complete folder row for imports.
	FolderInsertKind = Kind[models.Folder]{
		Table: Table{
			Name:       "folders",
			Key:        "id",
			Columns:    []string{"id", "user_id", "name", "creation_date", "revision_date"},
			UserColumn: "user_id",
		},
		Values: func(f models.Folder) []any {
			return []any{f.ID, f.UserID, f.Name, f.CreationDate.UTC(), f.RevisionDate.UTC()}
		},
	}

	// FolderRotationKind re-encrypts a folder name.
	FolderRotationKind = Kind[models.Folder]{
		Table: Table{
			Name:       "folders",
			Key:        "id",
			Columns:    []string{"id", "name", "revision_date"},
			Mutable:    []string{"name", "revision_date"},
			UserColumn: "user_id",
		},
		Values: func(f models.Folder) []any {
			return []any{f.ID, f.Name, f.RevisionDate.UTC()}
		},
	}

	// SendRotationKind re-encrypts a send.
	SendRotationKind = Kind[models.Send]{
		Table: Table{
			Name:               "sends",
			Key:                "id",
			Columns:            []string{"id", "key", "data", "revision_date"},
			Mutable:            []string{"key", "data", "revision_date"},
			UserColumn:         "user_id",
			OrganizationColumn: "organization_id",
		},
		Values: func(s models.Send) []any {
			return []any{s.ID, s.Key, s.Data, s.RevisionDate.UTC()}
		},
	}

	// EmergencyAccessRotationKind re-wraps the user key for a grantee.
	// Grants belong to their grantor.
	EmergencyAccessRotationKind = Kind[models.EmergencyAccess]{
		Table: Table{
			Name:       "emergency_access",
			Key:        "id",
			Columns:    []string{"id", "key_encrypted", "revision_date"},
			Mutable:    []string{"key_encrypted", "revision_date"},
			UserColumn: "grantor_id",
		},
		Values: func(e models.EmergencyAccess) []any {
			return []any{e.ID, e.KeyEncrypted, e.RevisionDate.UTC()}
		},
	}

	// CollectionInsertKind is a complete collection row for organization
	// imports.
	CollectionInsertKind = Kind[models.Collection]{
		Table: Table{
			Name:               "collections",
			Key:                "id",
			Columns:            []string{"id", "organization_id", "name", "external_id", "creation_date", "revision_date"},
			OrganizationColumn: "organization_id",
		},
		Values: func(c models.Collection) []any {
			return []any{c.ID, c.OrganizationID, c.Name, c.ExternalID, c.CreationDate.UTC(), c.RevisionDate.UTC()}
		},
	}

	// CollectionCipherInsertKind links imported ciphers to collections.
	CollectionCipherInsertKind = Kind[models.CollectionCipher]{
		Table: Table{
			Name:    "collection_ciphers",
			Columns: []string{"collection_id", "cipher_id"},
		},
		Values: func(cc models.CollectionCipher) []any {
			return []any{cc.CollectionID, cc.CipherID}
		},
	}
)

// itemTables maps an item kind onto the table listed for rotation checks.
var itemTables = map[models.ItemKind]Table{
	models.ItemKindCipher:          CipherInsertKind.Table,
	models.ItemKindFolder:          FolderInsertKind.Table,
	models.ItemKindSend:            SendRotationKind.Table,
	models.ItemKindCollection:      CollectionInsertKind.Table,
	models.ItemKindEmergencyAccess: EmergencyAccessRotationKind.Table,
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
