// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// idGenerator produces server-side ids and security stamps.
type idGenerator interface {
	Generate() uuid.UUID
	GenerateString() string
}

type keyRotationService struct {
	users    store.UserRepository
	index    store.VaultIndexRepository
	notifier SyncNotifier
	ids      idGenerator
	clock    quartz.Clock

	logger *logger.Logger
}

// NewKeyRotationService constructs a KeyRotationService. The request is
// expected to be structurally valid; wrap the result with
// NewKeyRotationValidationService to enforce that.
func NewKeyRotationService(storages *store.Storages, notifier SyncNotifier, ids idGenerator, clock quartz.Clock, logger *logger.Logger) KeyRotationService {
	return &keyRotationService{
		users:    storages.UserRepository,
		index:    storages.VaultIndexRepository,
		notifier: notifier,
		ids:      ids,
		clock:    clock,
		logger:   logger,
	}
}

// RotateUserKey checks that req covers exactly the personal items the user
// owns, then writes the new key envelope and every re-encrypted item in one
// batch. On success all sessions of the user are logged out.
func (s *keyRotationService) RotateUserKey(ctx context.Context, userID uuid.UUID, req models.RotateUserKeyRequest) error {
	log := logger.FromContext(ctx)

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		log.Err(err).Str("func", "keyRotationService.RotateUserKey").Str("user_id", userID.String()).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	owner := models.UserOwner(userID)
	domains := []struct {
		kind models.ItemKind
		ids  []uuid.UUID
	}{
		{models.ItemKindCipher, idsOf(req.Ciphers, func(c models.Cipher) uuid.UUID { return c.ID })},
		{models.ItemKindFolder, idsOf(req.Folders, func(f models.Folder) uuid.UUID { return f.ID })},
		{models.ItemKindSend, idsOf(req.Sends, func(sd models.Send) uuid.UUID { return sd.ID })},
		{models.ItemKindEmergencyAccess, idsOf(req.EmergencyAccess, func(g models.EmergencyAccess) uuid.UUID { return g.ID })},
	}
	for _, d := range domains {
		existing, err := s.index.ListIDs(ctx, d.kind, owner)
		if err != nil {
			log.Err(err).Str("func", "keyRotationService.RotateUserKey").Str("kind", string(d.kind)).Msg("listing owned items failed")
			return fmt.Errorf("listing owned %s items failed: %w", d.kind, err)
		}
		if err = compareIDs(existing, d.ids); err != nil {
			log.Warn().Err(err).Str("func", "keyRotationService.RotateUserKey").
				Str("kind", string(d.kind)).
				Int("owned", len(existing)).
				Int("provided", len(d.ids)).
				Msg("rotation does not match owned items")
			return fmt.Errorf("%s: %w", d.kind, err)
		}
	}

	now := s.clock.Now().UTC()
	envelope := models.KeyRotationEnvelope{
		Key:                 req.Key,
		PrivateKey:          req.PrivateKey,
		SecurityStamp:       s.ids.GenerateString(),
		LastKeyRotationDate: now,
	}

	actions := make([]store.MutationAction, 0, 4)
	if len(req.Ciphers) > 0 {
		actions = append(actions, store.RotateCiphers(revised(req.Ciphers, now, func(c *models.Cipher, t time.Time) { c.RevisionDate = t })))
	}
	if len(req.Folders) > 0 {
		actions = append(actions, store.RotateFolders(revised(req.Folders, now, func(f *models.Folder, t time.Time) { f.RevisionDate = t })))
	}
	if len(req.Sends) > 0 {
		actions = append(actions, store.RotateSends(revised(req.Sends, now, func(sd *models.Send, t time.Time) { sd.RevisionDate = t })))
	}
	if len(req.EmergencyAccess) > 0 {
		actions = append(actions, store.RotateEmergencyAccess(revised(req.EmergencyAccess, now, func(g *models.EmergencyAccess, t time.Time) { g.RevisionDate = t })))
	}

	if err := s.users.UpdateUserKeyAndEncryptedData(ctx, userID, envelope, actions...); err != nil {
		log.Err(err).Str("func", "keyRotationService.RotateUserKey").Str("user_id", userID.String()).Msg("key rotation failed")
		return fmt.Errorf("key rotation failed: %w", err)
	}

	log.Info().Str("func", "keyRotationService.RotateUserKey").
		Str("user_id", userID.String()).
		Int("ciphers", len(req.Ciphers)).
		Int("folders", len(req.Folders)).
		Int("sends", len(req.Sends)).
		Int("emergency_access", len(req.EmergencyAccess)).
		Msg("user key rotated")

	s.notifier.Notify(ctx, models.NewPushNotification(models.PushTypeLogOut, owner, now))
	return nil
}

func idsOf[T any](items []T, id func(T) uuid.UUID) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = id(item)
	}
	return ids
}

// compareIDs reports ErrRotationForeignItem when provided holds an id that is
// not owned and ErrRotationIncomplete when an owned id is missing from
// provided.
func compareIDs(owned, provided []uuid.UUID) error {
	ownedSet := toSet(owned)
	for _, id := range provided {
		if _, ok := ownedSet[id]; !ok {
			return fmt.Errorf("%w: %s", ErrRotationForeignItem, id)
		}
	}

	providedSet := toSet(provided)
	for _, id := range owned {
		if _, ok := providedSet[id]; !ok {
			return fmt.Errorf("%w: missing %s", ErrRotationIncomplete, id)
		}
	}

	return nil
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// revised returns a copy of items with the revision date set to t.
func revised[T any](items []T, t time.Time, set func(*T, time.Time)) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		set(&out[i], t)
	}
	return out
}
