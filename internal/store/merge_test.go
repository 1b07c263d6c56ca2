// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-keeper/models"
)

func TestExecute_Postgres_StageMergeStamp(t *testing.T) {
	conn, mock := newTestDB(t)
	clock := quartz.NewMock(t)
	clock.Set(baseTime)
	db := newDBFromSQL(conn, WithClock(clock))

	userID := uuid.New()
	cipher := newUserCipher(userID, "rotated")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"CREATE TEMP TABLE stage_ciphers_1 AS SELECT id, data, key, attachments, revision_date FROM ciphers WHERE 1 = 0")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO stage_ciphers_1 (id,data,key,attachments,revision_date) VALUES ($1,$2,$3,$4,$5)")).
		WithArgs(cipher.ID, "rotated", nil, nil, baseTime).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE ciphers SET data = s.data, key = s.key, attachments = s.attachments, revision_date = s.revision_date " +
			"FROM stage_ciphers_1 AS s WHERE ciphers.id = s.id AND ciphers.user_id = $1")).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DROP TABLE stage_ciphers_1")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT account_revision_date FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"account_revision_date"}).AddRow(baseTime.Add(-time.Hour)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET account_revision_date = $1 WHERE id = $2")).
		WithArgs(baseTime, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	stamp, err := NewCoordinator(db).Execute(testContext(), Batch{
		Owner: models.UserOwner(userID),
		Steps: []Step{StageAndMerge(CipherRotationKind, []models.Cipher{cipher})},
	})
	require.NoError(t, err)
	assert.True(t, stamp.Equal(baseTime))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_Postgres_MergeFailureRollsBack(t *testing.T) {
	conn, mock := newTestDB(t)
	db := newDBFromSQL(conn)

	userID := uuid.New()
	folder := newFolder(userID, "f")

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TEMP TABLE stage_folders_1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO stage_folders_1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE folders SET").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := NewCoordinator(db).Execute(testContext(), Batch{
		Owner: models.UserOwner(userID),
		Steps: []Step{StageAndMerge(FolderRotationKind, []models.Folder{folder})},
	})
	require.ErrorIs(t, err, ErrExecutingStatement)
	require.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_Postgres_DuplicateKey(t *testing.T) {
	conn, mock := newTestDB(t)
	db := newDBFromSQL(conn)

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO folders").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mock.ExpectRollback()

	_, err := NewCoordinator(db).Execute(testContext(), Batch{
		Owner: models.UserOwner(userID),
		Steps: []Step{Insert(FolderInsertKind, []models.Folder{newFolder(userID, "f")})},
	})
	require.ErrorIs(t, err, ErrDuplicateKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_Postgres_BeginFailure(t *testing.T) {
	conn, mock := newTestDB(t)
	db := newDBFromSQL(conn)

	mock.ExpectBegin().WillReturnError(assert.AnError)

	_, err := NewCoordinator(db).Execute(testContext(), Batch{
		Owner: models.UserOwner(uuid.New()),
		Steps: []Step{Insert(FolderInsertKind, []models.Folder{newFolder(uuid.New(), "f")})},
	})
	require.ErrorIs(t, err, ErrBeginningTransaction)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_Postgres_CommitFailure(t *testing.T) {
	conn, mock := newTestDB(t)
	clock := quartz.NewMock(t)
	clock.Set(baseTime)
	db := newDBFromSQL(conn, WithClock(clock))

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO folders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT account_revision_date FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"account_revision_date"}).AddRow(baseTime))
	mock.ExpectExec("UPDATE users SET account_revision_date").
		WithArgs(baseTime.Add(time.Microsecond), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(assert.AnError)

	_, err := NewCoordinator(db).Execute(testContext(), Batch{
		Owner: models.UserOwner(userID),
		Steps: []Step{Insert(FolderInsertKind, []models.Folder{newFolder(userID, "f")})},
	})
	require.ErrorIs(t, err, ErrCommitingTransaction)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_Postgres_OrganizationMembersSubquery(t *testing.T) {
	conn, mock := newTestDB(t)
	clock := quartz.NewMock(t)
	clock.Set(baseTime)
	db := newDBFromSQL(conn, WithClock(clock))

	orgID := uuid.New()
	members := "id IN (SELECT user_id FROM organization_users WHERE organization_id = $1 AND status = $2 AND user_id IS NOT NULL)"

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO collections").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT revision_date FROM organizations WHERE id = $1 FOR UPDATE")).
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows([]string{"revision_date"}).AddRow(baseTime.Add(-time.Hour)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT account_revision_date FROM users WHERE "+members+" FOR UPDATE")).
		WithArgs(orgID, int(models.OrganizationUserConfirmed)).
		WillReturnRows(sqlmock.NewRows([]string{"account_revision_date"}).
			AddRow(baseTime.Add(-time.Minute)).
			AddRow(baseTime.Add(time.Minute)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE organizations SET revision_date = $1 WHERE id = $2")).
		WithArgs(baseTime.Add(time.Minute+time.Microsecond), orgID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET account_revision_date = $1 WHERE id IN (SELECT user_id FROM organization_users WHERE organization_id = $2 AND status = $3 AND user_id IS NOT NULL)")).
		WithArgs(baseTime.Add(time.Minute+time.Microsecond), orgID, int(models.OrganizationUserConfirmed)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	collection := models.Collection{ID: uuid.New(), OrganizationID: orgID, Name: "c", CreationDate: baseTime, RevisionDate: baseTime}
	stamp, err := NewCoordinator(db).Execute(testContext(), Batch{
		Owner: models.OrganizationOwner(orgID),
		Steps: []Step{Insert(CollectionInsertKind, []models.Collection{collection})},
	})
	require.NoError(t, err)
	assert.True(t, stamp.Equal(baseTime.Add(time.Minute+time.Microsecond)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRowsPerStatement(t *testing.T) {
	conn, _ := newTestDB(t)

	assert.Equal(t, 128, newDBFromSQL(conn).rowsPerStatement(13))
	assert.Equal(t, 65535/13, NewDB(conn, DialectPostgres, WithChunkSize(100000)).rowsPerStatement(13))
	assert.Equal(t, 32766/13, NewDB(conn, DialectSQLite, WithChunkSize(100000)).rowsPerStatement(13))
	assert.Equal(t, 2, NewDB(conn, DialectSQLite, WithChunkSize(2)).rowsPerStatement(13))
	assert.Equal(t, 128, NewDB(conn, DialectSQLite, WithChunkSize(-1)).rowsPerStatement(0))
}
