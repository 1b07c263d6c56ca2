// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-vault-keeper/internal/logger"

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository         UserRepository
	CipherRepository       CipherRepository
	VaultIndexRepository   VaultIndexRepository
	OrganizationRepository OrganizationRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, log),
		CipherRepository:       NewCipherRepository(db, log),
		VaultIndexRepository:   NewVaultIndexRepository(db, log),
		OrganizationRepository: NewOrganizationRepository(db, log),
	}
}
