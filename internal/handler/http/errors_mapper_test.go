// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid json", fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), http.StatusBadRequest},
		{"validation", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyKey), http.StatusBadRequest},
		{"incomplete rotation", fmt.Errorf("cipher: %w", service.ErrRotationIncomplete), http.StatusBadRequest},
		{"foreign item", service.ErrRotationForeignItem, http.StatusBadRequest},
		{"foreign folder", fmt.Errorf("%w: %s", service.ErrFolderNotOwned, "f1"), http.StatusBadRequest},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"unknown user", fmt.Errorf("user lookup failed: %w", store.ErrNoUserWasFound), http.StatusNotFound},
		{"duplicate key", fmt.Errorf("%w: %w", store.ErrDuplicateKey, errors.New("pk")), http.StatusConflict},
		{"raw unique violation", fmt.Errorf("%w: %w", store.ErrExecutingStatement, &pgconn.PgError{Code: pgerrcode.UniqueViolation}), http.StatusConflict},
		{"serialization failure", fmt.Errorf("%w: %w", store.ErrCommitingTransaction, &pgconn.PgError{Code: pgerrcode.SerializationFailure}), http.StatusServiceUnavailable},
		{"empty batch", store.ErrEmptyBatch, http.StatusBadRequest},
		{"commit failure", store.ErrCommitingTransaction, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
