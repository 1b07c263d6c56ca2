// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/models"
)

func TestImportService_ImportCiphers(t *testing.T) {
	m, storages := newServiceMocks(t)
	svc := NewImportService(storages, m.notifier, m.ids, m.clock, logger.Nop())
	ctx := testContext()
	userID := uuid.New()
	foreignOrg := uuid.New()

	req := models.ImportCiphersRequest{
		Folders: []models.Folder{{Name: "2.work"}, {Name: "2.home"}},
		Ciphers: []models.Cipher{
			{Type: models.CipherTypeLogin, Data: "2.a", OrganizationID: &foreignOrg},
			{Type: models.CipherTypeSecureNote, Data: "2.b"},
			{Type: models.CipherTypeCard, Data: "2.c", Favorite: true},
		},
		FolderRelationships: []models.Relationship{{Key: 0, Value: 1}, {Key: 2, Value: 0}},
	}

	var gotFolders []models.Folder
	var gotCiphers []models.Cipher
	m.ciphers.EXPECT().CreateUserCiphers(ctx, userID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ uuid.UUID, folders []models.Folder, ciphers []models.Cipher) error {
			gotFolders, gotCiphers = folders, ciphers
			return nil
		})
	m.notifier.EXPECT().Notify(ctx, models.NewPushNotification(models.PushTypeSyncVault, models.UserOwner(userID), baseTime))

	require.NoError(t, svc.ImportCiphers(ctx, userID, req))

	// folders are generated first: ids 1 and 2, then ciphers 3..5
	require.Len(t, gotFolders, 2)
	assert.Equal(t, models.Folder{ID: seqID(1), UserID: userID, Name: "2.work", CreationDate: baseTime, RevisionDate: baseTime}, gotFolders[0])
	assert.Equal(t, seqID(2), gotFolders[1].ID)

	require.Len(t, gotCiphers, 3)
	for i, c := range gotCiphers {
		assert.Equal(t, seqID(byte(3+i)), c.ID)
		require.NotNil(t, c.UserID)
		assert.Equal(t, userID, *c.UserID)
		assert.Nil(t, c.OrganizationID)
		assert.Equal(t, baseTime, c.CreationDate)
		assert.Equal(t, baseTime, c.RevisionDate)
	}
	require.NotNil(t, gotCiphers[0].FolderID)
	assert.Equal(t, seqID(2), *gotCiphers[0].FolderID)
	assert.Nil(t, gotCiphers[1].FolderID)
	require.NotNil(t, gotCiphers[2].FolderID)
	assert.Equal(t, seqID(1), *gotCiphers[2].FolderID)
	assert.True(t, gotCiphers[2].Favorite)

	assert.Equal(t, &foreignOrg, req.Ciphers[0].OrganizationID, "request must not be mutated")
}

func TestImportService_ImportCiphers_RepositoryFails(t *testing.T) {
	m, storages := newServiceMocks(t)
	svc := NewImportService(storages, m.notifier, m.ids, m.clock, logger.Nop())
	ctx := testContext()

	m.ciphers.EXPECT().CreateUserCiphers(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrDuplicateKey)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	err := svc.ImportCiphers(ctx, uuid.New(), models.ImportCiphersRequest{
		Ciphers: []models.Cipher{{Type: models.CipherTypeLogin, Data: "2.a"}},
	})
	assert.ErrorIs(t, err, store.ErrDuplicateKey)
}

func TestImportService_ImportOrganizationCiphers(t *testing.T) {
	m, storages := newServiceMocks(t)
	svc := NewImportService(storages, m.notifier, m.ids, m.clock, logger.Nop())
	ctx := testContext()
	userID, orgID := uuid.New(), uuid.New()

	req := models.ImportOrganizationCiphersRequest{
		Collections: []models.Collection{{Name: "2.shared", ExternalID: ptr("ext-1")}},
		Ciphers: []models.Cipher{
			{Type: models.CipherTypeLogin, Data: "2.a", UserID: &userID, Favorite: true},
			{Type: models.CipherTypeIdentity, Data: "2.b"},
		},
		CollectionRelationships: []models.Relationship{{Key: 1, Value: 0}},
	}

	m.orgs.EXPECT().IsAdmin(ctx, orgID, userID).Return(true, nil)

	var gotCollections []models.Collection
	var gotCiphers []models.Cipher
	var gotLinks []models.CollectionCipher
	m.ciphers.EXPECT().CreateOrganizationCiphers(ctx, orgID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ uuid.UUID, collections []models.Collection, ciphers []models.Cipher, links []models.CollectionCipher) error {
			gotCollections, gotCiphers, gotLinks = collections, ciphers, links
			return nil
		})
	m.notifier.EXPECT().Notify(ctx, models.NewPushNotification(models.PushTypeSyncVault, models.OrganizationOwner(orgID), baseTime))

	require.NoError(t, svc.ImportOrganizationCiphers(ctx, userID, orgID, req))

	require.Len(t, gotCollections, 1)
	assert.Equal(t, models.Collection{
		ID:             seqID(1),
		OrganizationID: orgID,
		Name:           "2.shared",
		ExternalID:     ptr("ext-1"),
		CreationDate:   baseTime,
		RevisionDate:   baseTime,
	}, gotCollections[0])

	require.Len(t, gotCiphers, 2)
	for _, c := range gotCiphers {
		assert.Nil(t, c.UserID)
		require.NotNil(t, c.OrganizationID)
		assert.Equal(t, orgID, *c.OrganizationID)
		assert.False(t, c.Favorite)
	}

	assert.Equal(t, []models.CollectionCipher{{CollectionID: seqID(1), CipherID: seqID(3)}}, gotLinks)
}

func TestImportService_ImportOrganizationCiphers_NotAdmin(t *testing.T) {
	m, storages := newServiceMocks(t)
	svc := NewImportService(storages, m.notifier, m.ids, m.clock, logger.Nop())
	ctx := testContext()
	userID, orgID := uuid.New(), uuid.New()

	m.orgs.EXPECT().IsAdmin(ctx, orgID, userID).Return(false, nil)

	err := svc.ImportOrganizationCiphers(ctx, userID, orgID, models.ImportOrganizationCiphersRequest{
		Ciphers: []models.Cipher{{Type: models.CipherTypeLogin, Data: "2.a"}},
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestImportService_ImportOrganizationCiphers_MembershipCheckFails(t *testing.T) {
	m, storages := newServiceMocks(t)
	svc := NewImportService(storages, m.notifier, m.ids, m.clock, logger.Nop())
	ctx := testContext()

	m.orgs.EXPECT().IsAdmin(ctx, gomock.Any(), gomock.Any()).Return(false, store.ErrExecutingQuery)

	err := svc.ImportOrganizationCiphers(ctx, uuid.New(), uuid.New(), models.ImportOrganizationCiphersRequest{})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrForbidden)
}
