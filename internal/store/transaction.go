// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// txMarker is stored in the context handed to the work function so that a
// nested RunInTransaction can be detected.
type txMarker struct{}

// Tx is the handle of one batch transaction. It is only valid inside the work
// function given to [DB.RunInTransaction]; every method fails with
// [ErrTransactionClosed] once the transaction has been committed or rolled
// back.
type Tx struct {
	sqlTx *sql.Tx
	db    *DB
	owner models.Owner

	mu      sync.Mutex
	state   BatchState
	closed  bool
	seq     int
	pending map[string]*StagingBatch
}

// Owner returns the owner the transaction was opened for.
func (t *Tx) Owner() models.Owner {
	return t.owner
}

// State returns the current batch state.
func (t *Tx) State() BatchState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// ExecContext executes a statement inside the transaction.
func (t *Tx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}
	return t.sqlTx.ExecContext(context.WithoutCancel(ctx), query, args...)
}

// QueryContext runs a query inside the transaction.
func (t *Tx) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}
	return t.sqlTx.QueryContext(context.WithoutCancel(ctx), query, args...)
}

func (t *Tx) checkOpen() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrTransactionClosed
	}
	return nil
}

// advance moves the batch to the state a step requires.
func (t *Tx) advance(want BatchState) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrTransactionClosed
	}

	next, ok := t.state.next(want)
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidBatchState, t.state, want)
	}
	t.state = next
	return nil
}

// nextStagingName returns a relation name unique within the transaction.
func (t *Tx) nextStagingName(table string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	return fmt.Sprintf("stage_%s_%d", table, t.seq)
}

func (t *Tx) trackBatch(batch *StagingBatch) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending == nil {
		t.pending = make(map[string]*StagingBatch)
	}
	t.pending[batch.name] = batch
}

func (t *Tx) untrackBatch(batch *StagingBatch) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, batch.name)
}

// dropPending drops staging relations that were staged but never merged so
// that none of them survives the transaction on a pooled connection.
func (t *Tx) dropPending(ctx context.Context) error {
	t.mu.Lock()
	batches := make([]*StagingBatch, 0, len(t.pending))
	for _, b := range t.pending {
		batches = append(batches, b)
	}
	t.mu.Unlock()

	for _, b := range batches {
		if err := dropStagingRelation(ctx, t, b); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tx) commit() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	if err := t.sqlTx.Commit(); err != nil {
		t.state = StateRolledBack
		return err
	}
	t.state = StateCommitted
	return nil
}

func (t *Tx) rollback(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	t.state = StateRolledBack

	if err := t.sqlTx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Err(err).
			Str("func", "Tx.rollback").
			Str("owner", t.owner.String()).
			Msg("failed to rollback transaction")
	}
}

// InTransaction reports whether ctx belongs to the work function of a
// running [DB.RunInTransaction].
func InTransaction(ctx context.Context) bool {
	return ctx.Value(txMarker{}) != nil
}

// RunInTransaction opens one transaction for owner and calls work with it.
//
// If work returns nil the transaction is committed; otherwise it is rolled
// back and the error of work is returned unchanged. A panic inside work rolls
// back and is re-raised. Calling RunInTransaction from inside work fails with
// [ErrNestedTransaction].
//
// ctx is honoured only until the transaction opens: a context cancelled
// earlier aborts with ctx.Err(), but once the transaction is open every
// statement runs to completion so the batch is never cut in half.
func (db *DB) RunInTransaction(ctx context.Context, owner models.Owner, work func(ctx context.Context, tx *Tx) error) error {
	log := logger.FromContext(ctx)

	if err := owner.Validate(); err != nil {
		return err
	}
	if InTransaction(ctx) {
		return ErrNestedTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	txCtx := context.WithValue(context.WithoutCancel(ctx), txMarker{}, struct{}{})

	sqlTx, err := db.BeginTx(txCtx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "DB.RunInTransaction").
			Str("owner", owner.String()).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	tx := &Tx{sqlTx: sqlTx, db: db, owner: owner}

	defer func() {
		if p := recover(); p != nil {
			tx.rollback(txCtx)
			panic(p)
		}
	}()

	if err = work(txCtx, tx); err != nil {
		log.Debug().
			Str("func", "DB.RunInTransaction").
			Str("owner", owner.String()).
			Str("state", tx.State().String()).
			Msg("batch failed, rolling back")
		tx.rollback(txCtx)
		return err
	}

	if err = tx.dropPending(txCtx); err != nil {
		tx.rollback(txCtx)
		return err
	}

	if err = tx.commit(); err != nil {
		log.Err(err).
			Str("func", "DB.RunInTransaction").
			Str("owner", owner.String()).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
