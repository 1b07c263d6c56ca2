// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyAccessType is the level of access granted to the grantee.
type EmergencyAccessType int

const (
	EmergencyAccessView     EmergencyAccessType = 0
	EmergencyAccessTakeover EmergencyAccessType = 1
)

// EmergencyAccess is a grant from GrantorID to a trusted contact.
// KeyEncrypted holds the grantor's user key encrypted for the grantee and
// must be re-encrypted on every key rotation of the grantor.
type EmergencyAccess struct {
	ID           uuid.UUID           `json:"id"`
	GrantorID    uuid.UUID           `json:"grantorId"`
	GranteeID    *uuid.UUID          `json:"granteeId,omitempty"`
	Email        *string             `json:"email,omitempty"`
	KeyEncrypted *string             `json:"keyEncrypted,omitempty"`
	Type         EmergencyAccessType `json:"type"`
	Status       int                 `json:"status"`
	WaitTimeDays int                 `json:"waitTimeDays"`
	CreationDate time.Time           `json:"creationDate"`
	RevisionDate time.Time           `json:"revisionDate"`
}
