// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/mock"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/models"
)

const validToken = "valid-token"

type handlerMocks struct {
	auth     *mock.MockAuthService
	appInfo  *mock.MockAppInfoService
	rotation *mock.MockKeyRotationService
	imports  *mock.MockImportService
	ciphers  *mock.MockCipherService
}

func newTestRouter(t *testing.T) (*chi.Mux, *handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &handlerMocks{
		auth:     mock.NewMockAuthService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		rotation: mock.NewMockKeyRotationService(ctrl),
		imports:  mock.NewMockImportService(ctrl),
		ciphers:  mock.NewMockCipherService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:        m.auth,
		AppInfoService:     m.appInfo,
		KeyRotationService: m.rotation,
		ImportService:      m.imports,
		CipherService:      m.ciphers,
	}, logger.Nop())

	return h.Init(), m
}

// authorize makes validToken resolve to userID.
func (m *handlerMocks) authorize(userID uuid.UUID) {
	m.auth.EXPECT().ParseToken(gomock.Any(), validToken).Return(models.Token{UserID: userID}, nil)
}

func doRequest(router http.Handler, method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func authorized() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + validToken,
		"Content-Type":  "application/json",
	}
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
