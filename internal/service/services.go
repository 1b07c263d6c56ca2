// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/coder/quartz"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
)

type Services struct {
	AuthService        AuthService
	AppInfoService     AppInfoService
	KeyRotationService KeyRotationService
	ImportService      ImportService
	CipherService      CipherService
}

// NewServices wires every service to storages. Mutating services are wrapped
// with request validation.
func NewServices(storages *store.Storages, notifier SyncNotifier, cfg config.StructuredConfig, clock quartz.Clock, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService:        NewAuthService(cfg.App, logger),
		AppInfoService:     appInfoService,
		KeyRotationService: NewKeyRotationValidationService().Wrap(NewKeyRotationService(storages, notifier, ids, clock, logger)),
		ImportService:      NewImportValidationService().Wrap(NewImportService(storages, notifier, ids, clock, logger)),
		CipherService:      NewCipherValidationService().Wrap(NewCipherService(storages, notifier, clock, logger)),
	}, nil
}
