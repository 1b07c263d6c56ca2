// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// PushType tells a client what to do after a vault change was committed.
type PushType int

const (
	PushTypeSyncCiphers PushType = 4
	PushTypeSyncVault   PushType = 5
	PushTypeSyncOrgKeys PushType = 6
	PushTypeLogOut      PushType = 11
)

// PushNotification is sent to the push relay after a batch committed.
// Exactly one of UserID and OrganizationID is set.
type PushNotification struct {
	Type           PushType   `json:"type"`
	UserID         *uuid.UUID `json:"userId,omitempty"`
	OrganizationID *uuid.UUID `json:"organizationId,omitempty"`
	Date           time.Time  `json:"date"`
}

// NewPushNotification builds a notification addressed to owner.
func NewPushNotification(pushType PushType, owner Owner, date time.Time) PushNotification {
	id := owner.ID
	n := PushNotification{Type: pushType, Date: date}
	if owner.IsOrganization() {
		n.OrganizationID = &id
	} else {
		n.UserID = &id
	}

	return n
}
