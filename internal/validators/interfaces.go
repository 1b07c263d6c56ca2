// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault requests before they reach the store.
//
// [VaultValidator] covers single ciphers and the bulk request bodies:
// key rotation, personal and organization import, and cipher re-sync.
// It only inspects the request itself. Whether the listed items belong to
// the caller is decided by the service layer against the database.
package validators

import "context"

// Validator validates value. fields, when given, restricts the check to the
// named fields (see the Field* constants); unknown names fail with
// [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
