// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// MutationAction is one unit of per-domain work executed inside a batch
// transaction, typically "re-encrypt domain X for the transaction owner".
// Actions run in the order given, after every step and before the revision
// stamp. The first failing action aborts the whole batch.
type MutationAction interface {
	Apply(ctx context.Context, tx *Tx) error
}

// ActionFunc adapts a plain function to [MutationAction].
type ActionFunc func(ctx context.Context, tx *Tx) error

// Apply calls f(ctx, tx).
func (f ActionFunc) Apply(ctx context.Context, tx *Tx) error {
	return f(ctx, tx)
}

// RotateCiphers stages the re-encrypted ciphers and merges them into the
// transaction owner's ciphers.
func RotateCiphers(ciphers []models.Cipher) MutationAction {
	return stageAndMergeAction(CipherRotationKind, ciphers)
}

// RotateFolders stages the re-encrypted folder names and merges them into the
// transaction owner's folders.
func RotateFolders(folders []models.Folder) MutationAction {
	return stageAndMergeAction(FolderRotationKind, folders)
}

// RotateSends stages the re-encrypted sends and merges them into the
// transaction owner's sends.
func RotateSends(sends []models.Send) MutationAction {
	return stageAndMergeAction(SendRotationKind, sends)
}

// RotateEmergencyAccess stages the re-wrapped grant keys and merges them into
// the grants given by the transaction owner.
func RotateEmergencyAccess(grants []models.EmergencyAccess) MutationAction {
	return stageAndMergeAction(EmergencyAccessRotationKind, grants)
}

func stageAndMergeAction[T any](kind Kind[T], rows []T) MutationAction {
	return ActionFunc(func(ctx context.Context, tx *Tx) error {
		batch, err := Stage(ctx, tx, kind, rows)
		if err != nil {
			return err
		}
		_, err = MergeInto(ctx, tx, batch, tx.Owner())
		return err
	})
}
