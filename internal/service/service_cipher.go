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

type cipherService struct {
	ciphers  store.CipherRepository
	index    store.VaultIndexRepository
	notifier SyncNotifier
	clock    quartz.Clock

	logger *logger.Logger
}

func NewCipherService(storages *store.Storages, notifier SyncNotifier, clock quartz.Clock, logger *logger.Logger) CipherService {
	return &cipherService{
		ciphers:  storages.CipherRepository,
		index:    storages.VaultIndexRepository,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// ResyncCiphers overwrites the user's copies of req.Ciphers. Ciphers the user
// does not own are skipped by the repository. A folder id must name one of
// the user's folders.
func (s *cipherService) ResyncCiphers(ctx context.Context, userID uuid.UUID, req models.ResyncCiphersRequest) error {
	log := logger.FromContext(ctx)

	if err := s.checkFolders(ctx, userID, req.Ciphers); err != nil {
		log.Warn().Err(err).Str("func", "cipherService.ResyncCiphers").Str("user_id", userID.String()).Msg("cipher re-sync rejected")
		return err
	}

	now := s.clock.Now().UTC()

	ciphers := make([]models.Cipher, len(req.Ciphers))
	for i, c := range req.Ciphers {
		c.UserID = &userID
		c.OrganizationID = nil
		c.RevisionDate = now
		ciphers[i] = c
	}

	if err := s.ciphers.UpdateCiphers(ctx, userID, ciphers); err != nil {
		log.Err(err).Str("func", "cipherService.ResyncCiphers").Str("user_id", userID.String()).Msg("cipher re-sync failed")
		return fmt.Errorf("cipher re-sync failed: %w", err)
	}

	s.notifier.Notify(ctx, models.NewPushNotification(models.PushTypeSyncCiphers, models.UserOwner(userID), now))
	return nil
}

// checkFolders rejects a folder id that is not among the user's folders.
func (s *cipherService) checkFolders(ctx context.Context, userID uuid.UUID, ciphers []models.Cipher) error {
	var referenced []uuid.UUID
	for _, c := range ciphers {
		if c.FolderID != nil {
			referenced = append(referenced, *c.FolderID)
		}
	}
	if len(referenced) == 0 {
		return nil
	}

	owned, err := s.index.ListIDs(ctx, models.ItemKindFolder, models.UserOwner(userID))
	if err != nil {
		return fmt.Errorf("listing owned folders failed: %w", err)
	}

	ownedSet := toSet(owned)
	for _, id := range referenced {
		if _, ok := ownedSet[id]; !ok {
			return fmt.Errorf("%w: %s", ErrFolderNotOwned, id)
		}
	}
	return nil
}
