// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Collection groups organization ciphers.
type Collection struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organizationId"`
	Name           string    `json:"name"`
	ExternalID     *string   `json:"externalId,omitempty"`
	CreationDate   time.Time `json:"creationDate"`
	RevisionDate   time.Time `json:"revisionDate"`
}

// CollectionCipher links an organization cipher to a collection.
type CollectionCipher struct {
	CollectionID uuid.UUID `json:"collectionId"`
	CipherID     uuid.UUID `json:"cipherId"`
}
