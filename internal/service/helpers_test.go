// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/mock"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
)

var baseTime = time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

// sequentialIDs hands out predictable ids: 00000000-0000-0000-0000-000000000001, ...
type sequentialIDs struct {
	next byte
}

func (g *sequentialIDs) Generate() uuid.UUID {
	g.next++
	var id uuid.UUID
	id[15] = g.next
	return id
}

func (g *sequentialIDs) GenerateString() string {
	return g.Generate().String()
}

func seqID(n byte) uuid.UUID {
	var id uuid.UUID
	id[15] = n
	return id
}

type serviceMocks struct {
	users    *mock.MockUserRepository
	ciphers  *mock.MockCipherRepository
	index    *mock.MockVaultIndexRepository
	orgs     *mock.MockOrganizationRepository
	notifier *mock.MockSyncNotifier
	clock    *quartz.Mock
	ids      *sequentialIDs
}

func newServiceMocks(t *testing.T) (*serviceMocks, *store.Storages) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		users:    mock.NewMockUserRepository(ctrl),
		ciphers:  mock.NewMockCipherRepository(ctrl),
		index:    mock.NewMockVaultIndexRepository(ctrl),
		orgs:     mock.NewMockOrganizationRepository(ctrl),
		notifier: mock.NewMockSyncNotifier(ctrl),
		clock:    quartz.NewMock(t),
		ids:      &sequentialIDs{},
	}
	m.clock.Set(baseTime)

	storages := &store.Storages{
		UserRepository:         m.users,
		CipherRepository:       m.ciphers,
		VaultIndexRepository:   m.index,
		OrganizationRepository: m.orgs,
	}
	return m, storages
}

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func ptr[T any](v T) *T { return &v }
