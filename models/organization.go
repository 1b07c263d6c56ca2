// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationUserType is the role of a member inside an organization.
type OrganizationUserType int

const (
	OrganizationUserOwner   OrganizationUserType = 0
	OrganizationUserAdmin   OrganizationUserType = 1
	OrganizationUserRegular OrganizationUserType = 2
)

// OrganizationUserStatus is the membership lifecycle state.
type OrganizationUserStatus int

const (
	OrganizationUserRevoked   OrganizationUserStatus = -1
	OrganizationUserInvited   OrganizationUserStatus = 0
	OrganizationUserAccepted  OrganizationUserStatus = 1
	OrganizationUserConfirmed OrganizationUserStatus = 2
)

// Organization is a shared vault owner. RevisionDate is its revision marker.
type Organization struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creationDate"`
	RevisionDate time.Time `json:"revisionDate"`
}

// OrganizationUser is a membership row.
type OrganizationUser struct {
	ID             uuid.UUID              `json:"id"`
	OrganizationID uuid.UUID              `json:"organizationId"`
	UserID         *uuid.UUID             `json:"userId,omitempty"`
	Type           OrganizationUserType   `json:"type"`
	Status         OrganizationUserStatus `json:"status"`
}
