// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// SendType is the payload kind of a [Send].
type SendType int

const (
	SendTypeText SendType = 0
	SendTypeFile SendType = 1
)

// Send is an encrypted item shared through a public link.
type Send struct {
	ID             uuid.UUID  `json:"id"`
	UserID         *uuid.UUID `json:"userId,omitempty"`
	OrganizationID *uuid.UUID `json:"organizationId,omitempty"`
	Type           SendType   `json:"type"`
	Data           string     `json:"data"`
	Key            string     `json:"key"`
	Disabled       bool       `json:"disabled"`
	CreationDate   time.Time  `json:"creationDate"`
	RevisionDate   time.Time  `json:"revisionDate"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	DeletionDate   time.Time  `json:"deletionDate"`
}
