// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// Step is one row batch of a coordinated run. The coordinator calls Stage on
// every step before it calls Apply on any of them.
type Step interface {
	Stage(ctx context.Context, tx *Tx) error
	Apply(ctx context.Context, tx *Tx) error
}

type mergeStep[T any] struct {
	kind  Kind[T]
	rows  []T
	batch *StagingBatch
}

// StageAndMerge stages rows and later merges them into the live table,
// guarded by the batch owner.
func StageAndMerge[T any](kind Kind[T], rows []T) Step {
	return &mergeStep[T]{kind: kind, rows: rows}
}

func (s *mergeStep[T]) Stage(ctx context.Context, tx *Tx) error {
	batch, err := Stage(ctx, tx, s.kind, s.rows)
	if err != nil {
		return err
	}
	s.batch = batch
	return nil
}

func (s *mergeStep[T]) Apply(ctx context.Context, tx *Tx) error {
	_, err := MergeInto(ctx, tx, s.batch, tx.Owner())
	return err
}

type insertStep[T any] struct {
	kind Kind[T]
	rows []T
}

// Insert bulk-inserts rows as new live rows.
func Insert[T any](kind Kind[T], rows []T) Step {
	return &insertStep[T]{kind: kind, rows: rows}
}

func (s *insertStep[T]) Stage(_ context.Context, _ *Tx) error {
	if len(s.rows) == 0 {
		return fmt.Errorf("%w: nothing to insert into %s", ErrEmptyBatch, s.kind.Name)
	}
	return nil
}

func (s *insertStep[T]) Apply(ctx context.Context, tx *Tx) error {
	_, err := BulkInsert(ctx, tx, s.kind, s.rows)
	return err
}

type writeStep struct {
	write func(ctx context.Context, tx *Tx) error
}

// DirectWrite is a step without staging; write runs in the merge phase and
// issues its own parameterized statements (e.g. the user key envelope).
func DirectWrite(write func(ctx context.Context, tx *Tx) error) Step {
	return &writeStep{write: write}
}

func (s *writeStep) Stage(_ context.Context, _ *Tx) error {
	return nil
}

func (s *writeStep) Apply(ctx context.Context, tx *Tx) error {
	if err := tx.advance(StateMerging); err != nil {
		return err
	}
	return s.write(ctx, tx)
}

// Batch is everything one coordinated run writes for one owner.
type Batch struct {
	Owner   models.Owner
	Steps   []Step
	Actions []MutationAction
}

// Coordinator runs a [Batch] as one transaction: stage every step, apply
// every step, run the mutation actions in order, bump the owner's revision
// and commit. Any failure rolls the whole batch back.
type Coordinator struct {
	db *DB
}

// NewCoordinator returns a coordinator bound to db.
func NewCoordinator(db *DB) *Coordinator {
	return &Coordinator{db: db}
}

// Execute runs batch and returns the committed revision stamp.
func (c *Coordinator) Execute(ctx context.Context, batch Batch) (time.Time, error) {
	log := logger.FromContext(ctx)

	if len(batch.Steps) == 0 && len(batch.Actions) == 0 {
		return time.Time{}, fmt.Errorf("%w: batch for %s has no steps and no actions", ErrEmptyBatch, batch.Owner)
	}

	var stamp time.Time
	err := c.db.RunInTransaction(ctx, batch.Owner, func(ctx context.Context, tx *Tx) error {
		for i, step := range batch.Steps {
			if err := step.Stage(ctx, tx); err != nil {
				log.Err(err).Str("func", "Coordinator.Execute").Int("step", i).Msg("staging failed")
				return err
			}
		}

		for i, step := range batch.Steps {
			if err := step.Apply(ctx, tx); err != nil {
				log.Err(err).Str("func", "Coordinator.Execute").Int("step", i).Msg("applying step failed")
				return err
			}
		}

		if err := tx.advance(StateMutatingPlugins); err != nil {
			return err
		}
		for i, action := range batch.Actions {
			if err := action.Apply(ctx, tx); err != nil {
				log.Err(err).Str("func", "Coordinator.Execute").Int("action", i).Msg("mutation action failed")
				return err
			}
		}

		var err error
		stamp, err = BumpRevision(ctx, tx, tx.Owner())
		return err
	})
	if err != nil {
		return time.Time{}, err
	}

	log.Info().
		Str("func", "Coordinator.Execute").
		Str("owner", batch.Owner.String()).
		Int("steps", len(batch.Steps)).
		Int("actions", len(batch.Actions)).
		Time("revision", stamp).
		Msg("batch committed")

	return stamp, nil
}
