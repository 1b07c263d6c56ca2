// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// OwnerType tells whether a vault item belongs to a user or to an organization.
type OwnerType int

const (
	OwnerUser OwnerType = iota + 1
	OwnerOrganization
)

// ErrInvalidOwner is returned by [Owner.Validate] for a zero or unknown owner.
var ErrInvalidOwner = errors.New("invalid owner")

// String implements [fmt.Stringer].
func (t OwnerType) String() string {
	switch t {
	case OwnerUser:
		return "user"
	case OwnerOrganization:
		return "organization"
	default:
		return fmt.Sprintf("owner_type(%d)", int(t))
	}
}

// Owner identifies the single user or organization that controls a batch of
// vault items. It is fixed for the whole lifetime of a batch operation.
type Owner struct {
	Type OwnerType
	ID   uuid.UUID
}

// UserOwner returns an Owner for the user with the given id.
func UserOwner(id uuid.UUID) Owner {
	return Owner{Type: OwnerUser, ID: id}
}

// OrganizationOwner returns an Owner for the organization with the given id.
func OrganizationOwner(id uuid.UUID) Owner {
	return Owner{Type: OwnerOrganization, ID: id}
}

// IsUser reports whether o is a user owner.
func (o Owner) IsUser() bool {
	return o.Type == OwnerUser
}

// IsOrganization reports whether o is an organization owner.
func (o Owner) IsOrganization() bool {
	return o.Type == OwnerOrganization
}

// Validate returns [ErrInvalidOwner] when the owner type is unknown or the id is nil.
func (o Owner) Validate() error {
	if o.Type != OwnerUser && o.Type != OwnerOrganization {
		return fmt.Errorf("%w: unknown owner type %d", ErrInvalidOwner, int(o.Type))
	}
	if o.ID == uuid.Nil {
		return fmt.Errorf("%w: empty %s id", ErrInvalidOwner, o.Type)
	}

	return nil
}

// String implements [fmt.Stringer], e.g. "user:6f1c...".
func (o Owner) String() string {
	return o.Type.String() + ":" + o.ID.String()
}
