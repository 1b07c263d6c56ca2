// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Folder groups a user's personal ciphers. Name is encrypted by the client.
type Folder struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creationDate"`
	RevisionDate time.Time `json:"revisionDate"`
}
