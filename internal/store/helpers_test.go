// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// baseTime is the wall clock most tests start from.
var baseTime = time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a sqlmock connection as a PostgreSQL store.
func newDBFromSQL(db *sql.DB, opts ...Option) *DB {
	return NewDB(db, DialectPostgres, append([]Option{WithLogger(logger.Nop())}, opts...)...)
}

// newSQLiteDB opens a migrated SQLite database in a temp directory.
func newSQLiteDB(t *testing.T, opts ...Option) *DB {
	t.Helper()
	conn, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	db := NewDB(conn, DialectSQLite, opts...)
	require.NoError(t, db.Migrate())
	return db
}

func seedUser(t *testing.T, db *DB, id uuid.UUID, revision time.Time) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO users (id, email, name, security_stamp, creation_date, revision_date, account_revision_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, id.String()+"@example.com", "user", "stamp", revision, revision, revision)
	require.NoError(t, err)
}

func seedOrganization(t *testing.T, db *DB, id uuid.UUID, revision time.Time) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO organizations (id, name, creation_date, revision_date) VALUES (?, ?, ?, ?)`,
		id, "org", revision, revision)
	require.NoError(t, err)
}

func seedMember(t *testing.T, db *DB, orgID, userID uuid.UUID, typ models.OrganizationUserType, status models.OrganizationUserStatus) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO organization_users (id, organization_id, user_id, type, status) VALUES (?, ?, ?, ?, ?)`,
		uuid.New(), orgID, userID, int(typ), int(status))
	require.NoError(t, err)
}

func seedRows[T any](t *testing.T, db *DB, kind Kind[T], rows ...T) {
	t.Helper()
	insert := db.builder.Insert(kind.Name).Columns(kind.Columns...)
	for _, row := range rows {
		insert = insert.Values(kind.Values(row)...)
	}
	query, args, err := insert.ToSql()
	require.NoError(t, err)
	_, err = db.Exec(query, args...)
	require.NoError(t, err)
}

func seedSend(t *testing.T, db *DB, s models.Send) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO sends (id, user_id, organization_id, type, data, key, disabled, creation_date, revision_date, deletion_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.OrganizationID, int(s.Type), s.Data, s.Key, s.Disabled, s.CreationDate, s.RevisionDate, s.DeletionDate)
	require.NoError(t, err)
}

func seedEmergencyAccess(t *testing.T, db *DB, e models.EmergencyAccess) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO emergency_access (id, grantor_id, key_encrypted, type, status, wait_time_days, creation_date, revision_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.GrantorID, e.KeyEncrypted, int(e.Type), e.Status, e.WaitTimeDays, e.CreationDate, e.RevisionDate)
	require.NoError(t, err)
}

func newUserCipher(userID uuid.UUID, data string) models.Cipher {
	return models.Cipher{
		ID:           uuid.New(),
		UserID:       &userID,
		Type:         models.CipherTypeLogin,
		Data:         data,
		CreationDate: baseTime,
		RevisionDate: baseTime,
	}
}

func newOrgCipher(orgID uuid.UUID, data string) models.Cipher {
	return models.Cipher{
		ID:             uuid.New(),
		OrganizationID: &orgID,
		Type:           models.CipherTypeSecureNote,
		Data:           data,
		CreationDate:   baseTime,
		RevisionDate:   baseTime,
	}
}

func newFolder(userID uuid.UUID, name string) models.Folder {
	return models.Folder{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		CreationDate: baseTime,
		RevisionDate: baseTime,
	}
}

func cipherData(t *testing.T, db *DB, id uuid.UUID) string {
	t.Helper()
	var data string
	require.NoError(t, db.QueryRow(`SELECT data FROM ciphers WHERE id = ?`, id).Scan(&data))
	return data
}

func folderName(t *testing.T, db *DB, id uuid.UUID) string {
	t.Helper()
	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM folders WHERE id = ?`, id).Scan(&name))
	return name
}

func accountRevision(t *testing.T, db *DB, userID uuid.UUID) time.Time {
	t.Helper()
	var stamp time.Time
	require.NoError(t, db.QueryRow(`SELECT account_revision_date FROM users WHERE id = ?`, userID).Scan(&stamp))
	return stamp
}

func countRows(t *testing.T, db *DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func countTempTables(t *testing.T, db *DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_temp_master WHERE type = 'table'`).Scan(&n))
	return n
}
