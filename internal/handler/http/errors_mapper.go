// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
)

// errorStatusMap is checked in order; the first target matched by
// errors.Is wins.
var errorStatusMap = []struct {
	target error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidOrganizationID, http.StatusBadRequest},
	{ErrNoUserInContext, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrRotationIncomplete, http.StatusBadRequest},
	{service.ErrRotationForeignItem, http.StatusBadRequest},
	{service.ErrFolderNotOwned, http.StatusBadRequest},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},

	{store.ErrEmptyBatch, http.StatusBadRequest},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrOwnerNotFound, http.StatusNotFound},

	{store.ErrOwnerNotSupported, http.StatusInternalServerError},
	{store.ErrOwnerMismatch, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// statusFromError classifies driver errors first: a retryable backend
// failure is 503 so the client resends the whole batch, and a unique
// violation is 409 whether or not the store wrapped it.
func statusFromError(err error) int {
	switch {
	case store.IsDuplicateKey(err):
		return http.StatusConflict
	case store.IsRetryable(err):
		return http.StatusServiceUnavailable
	}

	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
