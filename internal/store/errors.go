// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors of the batch engine. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrEmptyBatch is returned when a batch with zero rows is staged or
	// inserted, or when a coordinated run has neither steps nor actions.
	// The backend is not touched.
	ErrEmptyBatch = errors.New("empty batch")

	// ErrDuplicateKey wraps a unique-constraint violation raised by a bulk
	// insert.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrOwnerNotSupported is returned when a table has no column for the
	// owner type of the batch (e.g. folders owned by an organization).
	ErrOwnerNotSupported = errors.New("owner type is not supported by table")

	// ErrOwnerMismatch is returned when a step names an owner different from
	// the owner the transaction was opened for.
	ErrOwnerMismatch = errors.New("owner does not match transaction owner")

	// ErrOwnerNotFound is returned when the revision marker of an owner
	// cannot be found.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrMergeNotSupported is returned when a merge targets a table without
	// a single-column primary key.
	ErrMergeNotSupported = errors.New("table does not support merge")

	// ErrBatchConsumed is returned when a staging batch is merged a second
	// time.
	ErrBatchConsumed = errors.New("staging batch already merged")

	// ErrForeignBatch is returned when a staging batch is merged through a
	// transaction other than the one that staged it.
	ErrForeignBatch = errors.New("staging batch belongs to another transaction")

	// ErrTransactionClosed is returned when a [Tx] is used after its
	// transaction has been committed or rolled back.
	ErrTransactionClosed = errors.New("transaction is closed")

	// ErrNestedTransaction is returned when RunInTransaction is called from
	// inside the work function of another RunInTransaction.
	ErrNestedTransaction = errors.New("nested transactions are not supported")

	// ErrInvalidBatchState is returned when a step would move a batch back
	// to an earlier state.
	ErrInvalidBatchState = errors.New("invalid batch state transition")

	// ErrUnsupportedDialect is returned for an unknown database driver.
	ErrUnsupportedDialect = errors.New("unsupported sql dialect")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) or DDL on a staging table fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
