// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account and its encrypted key material.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	ID uuid.UUID `json:"id"`

	// Email is the login of the user.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Key is the user's symmetric key encrypted with the master key.
	Key *string `json:"-"`

	// PrivateKey is the user's asymmetric private key encrypted with Key.
	PrivateKey *string `json:"-"`

	// SecurityStamp changes whenever credentials or keys change and
	// invalidates existing sessions.
	SecurityStamp string `json:"-"`

	CreationDate time.Time `json:"creationDate"`
	RevisionDate time.Time `json:"revisionDate"`

	// AccountRevisionDate is the revision marker read by sync clients to
	// decide whether their cached vault is stale.
	AccountRevisionDate time.Time `json:"accountRevisionDate"`

	// LastKeyRotationDate is set by every successful key rotation.
	LastKeyRotationDate *time.Time `json:"lastKeyRotationDate,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// KeyRotationEnvelope is the new key material written to the user record by
// a key rotation, in the same transaction as every re-encrypted item.
type KeyRotationEnvelope struct {
	Key                 string
	PrivateKey          string
	SecurityStamp       string
	LastKeyRotationDate time.Time
}
