// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the vault server.
//
// The primary abstraction is [PushRelay], which delivers sync notifications
// to connected clients after a batch has committed. The package ships an
// HTTP implementation ([NewHTTPPushRelay]) built on resty and a no-op
// implementation used when no relay is configured.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/push_relay_mock.go -package=mock

// PushRelay forwards sync notifications to the clients of a user or an
// organization.
type PushRelay interface {
	// Send delivers one notification. It is called after commit only, so a
	// failure never affects stored data.
	Send(ctx context.Context, notification models.PushNotification) error
}
