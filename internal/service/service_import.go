// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/models"
)

type importService struct {
	ciphers       store.CipherRepository
	organizations store.OrganizationRepository
	notifier      SyncNotifier
	ids           idGenerator
	clock         quartz.Clock

	logger *logger.Logger
}

func NewImportService(storages *store.Storages, notifier SyncNotifier, ids idGenerator, clock quartz.Clock, logger *logger.Logger) ImportService {
	return &importService{
		ciphers:       storages.CipherRepository,
		organizations: storages.OrganizationRepository,
		notifier:      notifier,
		ids:           ids,
		clock:         clock,
		logger:        logger,
	}
}

// ImportCiphers creates every folder and cipher of a personal export. Ids
// and dates are assigned here; the folder of a cipher is taken from
// FolderRelationships by index.
func (s *importService) ImportCiphers(ctx context.Context, userID uuid.UUID, req models.ImportCiphersRequest) error {
	log := logger.FromContext(ctx)
	now := s.clock.Now().UTC()

	folders := make([]models.Folder, len(req.Folders))
	for i, f := range req.Folders {
		folders[i] = models.Folder{
			ID:           s.ids.Generate(),
			UserID:       userID,
			Name:         f.Name,
			CreationDate: now,
			RevisionDate: now,
		}
	}

	ciphers := make([]models.Cipher, len(req.Ciphers))
	for i, c := range req.Ciphers {
		c.ID = s.ids.Generate()
		c.UserID = &userID
		c.OrganizationID = nil
		c.FolderID = nil
		c.CreationDate = now
		c.RevisionDate = now
		ciphers[i] = c
	}
	for _, r := range req.FolderRelationships {
		folderID := folders[r.Value].ID
		ciphers[r.Key].FolderID = &folderID
	}

	if err := s.ciphers.CreateUserCiphers(ctx, userID, folders, ciphers); err != nil {
		log.Err(err).Str("func", "importService.ImportCiphers").Str("user_id", userID.String()).Msg("import failed")
		return fmt.Errorf("import failed: %w", err)
	}

	log.Info().Str("func", "importService.ImportCiphers").
		Str("user_id", userID.String()).
		Int("folders", len(folders)).
		Int("ciphers", len(ciphers)).
		Msg("vault imported")

	s.notifier.Notify(ctx, models.NewPushNotification(models.PushTypeSyncVault, models.UserOwner(userID), now))
	return nil
}

// ImportOrganizationCiphers creates every collection and cipher of an
// organization export. Only a confirmed owner or admin may import.
func (s *importService) ImportOrganizationCiphers(ctx context.Context, userID, orgID uuid.UUID, req models.ImportOrganizationCiphersRequest) error {
	log := logger.FromContext(ctx)

	isAdmin, err := s.organizations.IsAdmin(ctx, orgID, userID)
	if err != nil {
		log.Err(err).Str("func", "importService.ImportOrganizationCiphers").Str("organization_id", orgID.String()).Msg("membership check failed")
		return fmt.Errorf("membership check failed: %w", err)
	}
	if !isAdmin {
		log.Warn().Str("func", "importService.ImportOrganizationCiphers").
			Str("user_id", userID.String()).
			Str("organization_id", orgID.String()).
			Msg("user is not an organization admin")
		return ErrForbidden
	}

	now := s.clock.Now().UTC()

	collections := make([]models.Collection, len(req.Collections))
	for i, c := range req.Collections {
		collections[i] = models.Collection{
			ID:             s.ids.Generate(),
			OrganizationID: orgID,
			Name:           c.Name,
			ExternalID:     c.ExternalID,
			CreationDate:   now,
			RevisionDate:   now,
		}
	}

	ciphers := make([]models.Cipher, len(req.Ciphers))
	for i, c := range req.Ciphers {
		c.ID = s.ids.Generate()
		c.UserID = nil
		c.OrganizationID = &orgID
		c.FolderID = nil
		c.Favorite = false
		c.CreationDate = now
		c.RevisionDate = now
		ciphers[i] = c
	}

	links := make([]models.CollectionCipher, len(req.CollectionRelationships))
	for i, r := range req.CollectionRelationships {
		links[i] = models.CollectionCipher{
			CollectionID: collections[r.Value].ID,
			CipherID:     ciphers[r.Key].ID,
		}
	}

	if err = s.ciphers.CreateOrganizationCiphers(ctx, orgID, collections, ciphers, links); err != nil {
		log.Err(err).Str("func", "importService.ImportOrganizationCiphers").Str("organization_id", orgID.String()).Msg("import failed")
		return fmt.Errorf("organization import failed: %w", err)
	}

	log.Info().Str("func", "importService.ImportOrganizationCiphers").
		Str("organization_id", orgID.String()).
		Int("collections", len(collections)).
		Int("ciphers", len(ciphers)).
		Int("links", len(links)).
		Msg("organization vault imported")

	s.notifier.Notify(ctx, models.NewPushNotification(models.PushTypeSyncVault, models.OrganizationOwner(orgID), now))
	return nil
}
