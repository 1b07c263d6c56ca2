// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-keeper/models"
)

func TestRunInTransaction_InvalidOwner(t *testing.T) {
	db := newSQLiteDB(t)

	err := db.RunInTransaction(testContext(), models.Owner{}, func(context.Context, *Tx) error {
		t.Fatal("work must not run")
		return nil
	})
	require.ErrorIs(t, err, models.ErrInvalidOwner)
}

func TestRunInTransaction_Nested(t *testing.T) {
	db := newSQLiteDB(t)
	owner := models.UserOwner(uuid.New())

	var nestedErr error
	err := db.RunInTransaction(testContext(), owner, func(ctx context.Context, _ *Tx) error {
		assert.True(t, InTransaction(ctx))
		nestedErr = db.RunInTransaction(ctx, owner, func(context.Context, *Tx) error { return nil })
		return nil
	})
	require.NoError(t, err)
	require.ErrorIs(t, nestedErr, ErrNestedTransaction)
	assert.False(t, InTransaction(testContext()))
}

func TestRunInTransaction_ClosedHandle(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := testContext()
	userID := uuid.New()

	var leaked *Tx
	err := db.RunInTransaction(ctx, models.UserOwner(userID), func(_ context.Context, tx *Tx) error {
		leaked = tx
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, leaked)
	assert.Equal(t, StateCommitted, leaked.State())

	_, err = leaked.ExecContext(ctx, "SELECT 1")
	require.ErrorIs(t, err, ErrTransactionClosed)

	_, err = Stage(ctx, leaked, FolderInsertKind, []models.Folder{newFolder(userID, "late")})
	require.ErrorIs(t, err, ErrTransactionClosed)

	_, err = BumpRevision(ctx, leaked, leaked.Owner())
	require.ErrorIs(t, err, ErrTransactionClosed)
}

func TestRunInTransaction_PanicRollsBack(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := testContext()
	userID := uuid.New()
	seedUser(t, db, userID, baseTime)

	var leaked *Tx
	assert.PanicsWithValue(t, "boom", func() {
		_ = db.RunInTransaction(ctx, models.UserOwner(userID), func(ctx context.Context, tx *Tx) error {
			leaked = tx
			if _, err := BulkInsert(ctx, tx, FolderInsertKind, []models.Folder{newFolder(userID, "f")}); err != nil {
				return err
			}
			panic("boom")
		})
	})

	assert.Equal(t, StateRolledBack, leaked.State())
	assert.Zero(t, countRows(t, db, "folders"))
}

func TestRunInTransaction_WorkErrorIsReturnedUnchanged(t *testing.T) {
	db := newSQLiteDB(t)
	want := assert.AnError

	err := db.RunInTransaction(testContext(), models.UserOwner(uuid.New()), func(context.Context, *Tx) error {
		return want
	})
	assert.Same(t, want, err)
}

func TestRunInTransaction_StatesOnlyMoveForward(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := testContext()
	userID := uuid.New()
	seedUser(t, db, userID, baseTime)

	err := db.RunInTransaction(ctx, models.UserOwner(userID), func(ctx context.Context, tx *Tx) error {
		assert.Equal(t, StateIdle, tx.State())

		_, err := BumpRevision(ctx, tx, tx.Owner())
		require.NoError(t, err)
		assert.Equal(t, StateStamping, tx.State())

		_, err = Stage(ctx, tx, FolderInsertKind, []models.Folder{newFolder(userID, "f")})
		assert.ErrorIs(t, err, ErrInvalidBatchState)

		_, err = BulkInsert(ctx, tx, FolderInsertKind, []models.Folder{newFolder(userID, "f")})
		assert.ErrorIs(t, err, ErrInvalidBatchState)
		return nil
	})
	require.NoError(t, err)
}

func TestRunInTransaction_UnmergedStagingIsDropped(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := testContext()
	userID := uuid.New()

	err := db.RunInTransaction(ctx, models.UserOwner(userID), func(ctx context.Context, tx *Tx) error {
		batch, err := Stage(ctx, tx, FolderRotationKind, []models.Folder{newFolder(userID, "f")})
		require.NoError(t, err)
		assert.Equal(t, 1, batch.Len())
		assert.Equal(t, "stage_folders_1", batch.Name())
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, countTempTables(t, db))
}

func TestMergeInto_Guards(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := testContext()
	userID := uuid.New()
	seedUser(t, db, userID, baseTime)
	owner := models.UserOwner(userID)
	folder := newFolder(userID, "f")
	seedRows(t, db, FolderInsertKind, folder)

	var foreign *StagingBatch
	err := db.RunInTransaction(ctx, owner, func(ctx context.Context, tx *Tx) error {
		var err error
		foreign, err = Stage(ctx, tx, FolderRotationKind, []models.Folder{folder})
		return err
	})
	require.NoError(t, err)

	err = db.RunInTransaction(ctx, owner, func(ctx context.Context, tx *Tx) error {
		// every stage precedes the first merge
		batch, err := Stage(ctx, tx, FolderRotationKind, []models.Folder{folder})
		require.NoError(t, err)
		links, err := Stage(ctx, tx, CollectionCipherInsertKind, []models.CollectionCipher{{CollectionID: uuid.New(), CipherID: uuid.New()}})
		require.NoError(t, err)
		collections, err := Stage(ctx, tx, collectionNameKind, []models.Collection{{ID: uuid.New()}})
		require.NoError(t, err)

		_, err = MergeInto(ctx, tx, nil, owner)
		assert.ErrorIs(t, err, ErrEmptyBatch)

		_, err = MergeInto(ctx, tx, foreign, owner)
		assert.ErrorIs(t, err, ErrForeignBatch)

		_, err = MergeInto(ctx, tx, batch, models.UserOwner(uuid.New()))
		assert.ErrorIs(t, err, ErrOwnerMismatch)

		_, err = MergeInto(ctx, tx, links, owner)
		assert.ErrorIs(t, err, ErrMergeNotSupported)

		_, err = MergeInto(ctx, tx, collections, owner)
		assert.ErrorIs(t, err, ErrOwnerNotSupported)

		updated, err := MergeInto(ctx, tx, batch, owner)
		require.NoError(t, err)
		assert.EqualValues(t, 1, updated)

		_, err = MergeInto(ctx, tx, batch, owner)
		assert.ErrorIs(t, err, ErrBatchConsumed)

		_, err = Stage(ctx, tx, FolderRotationKind, []models.Folder{folder})
		assert.ErrorIs(t, err, ErrInvalidBatchState)
		return nil
	})
	require.NoError(t, err)
}

// collectionNameKind is mergeable but only organization-owned.
var collectionNameKind = Kind[models.Collection]{
	Table: Table{
		Name:               "collections",
		Key:                "id",
		Columns:            []string{"id", "name"},
		Mutable:            []string{"name"},
		OrganizationColumn: "organization_id",
	},
	Values: func(c models.Collection) []any {
		return []any{c.ID, c.Name}
	},
}
