// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("relay rejected request")
	ErrUnauthorized        = errors.New("relay unauthorized")
	ErrForbidden           = errors.New("relay forbidden")
	ErrNotFound            = errors.New("relay endpoint not found")
	ErrConflict            = errors.New("relay conflict")
	ErrBadGateway          = errors.New("relay bad gateway")
	ErrInternalServerError = errors.New("relay internal error")

	// ErrInvalidRelayAddress is returned by NewHTTPPushRelay for a relay URL
	// without scheme or host.
	ErrInvalidRelayAddress = errors.New("invalid push relay address")
)
