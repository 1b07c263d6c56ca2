// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyKey                = errors.New("key is required")
	ErrEmptyPrivateKey         = errors.New("private key is required")
	ErrInvalidID               = errors.New("invalid item id")
	ErrDuplicateID             = errors.New("item id appears more than once")
	ErrInvalidType             = errors.New("invalid cipher type")
	ErrEmptyData               = errors.New("data is required")
	ErrEmptyName               = errors.New("name is required")
	ErrEmptySendKey            = errors.New("send key is required")
	ErrEmptyGrantKey           = errors.New("emergency access key is required")
	ErrOrganizationCipher      = errors.New("organization cipher is not allowed here")
	ErrEmptyCiphers            = errors.New("ciphers list cannot be empty")
	ErrRelationshipOutOfRange  = errors.New("relationship index out of range")
	ErrDuplicateRelationship   = errors.New("relationship appears more than once")
	ErrCipherInMultipleFolders = errors.New("cipher is assigned to more than one folder")
)
