// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	// ErrRotationIncomplete is returned when a key rotation leaves out an
	// item the user owns. Such an item would stay encrypted under the old key.
	ErrRotationIncomplete = errors.New("key rotation does not include every owned item")

	// ErrRotationForeignItem is returned when a key rotation names an item
	// the user does not own.
	ErrRotationForeignItem = errors.New("key rotation includes an item the user does not own")

	// ErrFolderNotOwned is returned when a cipher is moved into a folder
	// the user does not own.
	ErrFolderNotOwned = errors.New("folder does not belong to the user")

	ErrForbidden = errors.New("access to organization is forbidden")
)
