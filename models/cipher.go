// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// CipherType is the kind of secret a cipher holds. The server never looks
// inside Data, the type is kept only so clients can render the item.
type CipherType int

const (
	CipherTypeLogin      CipherType = 1
	CipherTypeSecureNote CipherType = 2
	CipherTypeCard       CipherType = 3
	CipherTypeIdentity   CipherType = 4
	CipherTypeSSHKey     CipherType = 5
)

// Valid reports whether t is a known cipher type.
func (t CipherType) Valid() bool {
	return t >= CipherTypeLogin && t <= CipherTypeSSHKey
}

// Cipher is a single encrypted vault item.
//
// Exactly one of UserID and OrganizationID is set. Data, Key and Attachments
// are opaque encrypted blobs supplied by the client.
type Cipher struct {
	ID             uuid.UUID  `json:"id"`
	UserID         *uuid.UUID `json:"userId,omitempty"`
	OrganizationID *uuid.UUID `json:"organizationId,omitempty"`
	Type           CipherType `json:"type"`
	Data           string     `json:"data"`
	Key            *string    `json:"key,omitempty"`
	Attachments    *string    `json:"attachments,omitempty"`
	FolderID       *uuid.UUID `json:"folderId,omitempty"`
	Favorite       bool       `json:"favorite"`
	Reprompt       int        `json:"reprompt"`
	CreationDate   time.Time  `json:"creationDate"`
	RevisionDate   time.Time  `json:"revisionDate"`
	DeletedDate    *time.Time `json:"deletedDate,omitempty"`
}
