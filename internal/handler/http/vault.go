// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/models"
)

func (h *Handler) rotateUserKey(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.rotateUserKey"

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, fn, ErrNoUserInContext)
		return
	}

	var req models.RotateUserKeyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, fn, err)
		return
	}

	if err := h.services.KeyRotationService.RotateUserKey(r.Context(), userID, req); err != nil {
		writeError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) importCiphers(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.importCiphers"

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, fn, ErrNoUserInContext)
		return
	}

	var req models.ImportCiphersRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, fn, err)
		return
	}

	if err := h.services.ImportService.ImportCiphers(r.Context(), userID, req); err != nil {
		writeError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) importOrganizationCiphers(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.importOrganizationCiphers"

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, fn, ErrNoUserInContext)
		return
	}

	orgID, err := uuid.Parse(r.URL.Query().Get("organizationId"))
	if err != nil {
		writeError(w, r, fn, ErrInvalidOrganizationID)
		return
	}

	var req models.ImportOrganizationCiphersRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, fn, err)
		return
	}

	if err = h.services.ImportService.ImportOrganizationCiphers(r.Context(), userID, orgID, req); err != nil {
		writeError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) resyncCiphers(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.resyncCiphers"

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, fn, ErrNoUserInContext)
		return
	}

	var req models.ResyncCiphersRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, fn, err)
		return
	}

	if err := h.services.CipherService.ResyncCiphers(r.Context(), userID, req); err != nil {
		writeError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
