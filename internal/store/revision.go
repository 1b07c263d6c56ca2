// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// revisionResolution is the smallest step between two revision stamps; it
// matches the precision of a PostgreSQL timestamp.
const revisionResolution = time.Microsecond

// BumpRevision advances the revision marker of owner inside tx and returns
// the new stamp.
//
// For a user it is users.account_revision_date. For an organization it is
// organizations.revision_date together with the account_revision_date of
// every confirmed member, so that each member's next sync sees the change.
//
// The stamp is max(now, latest existing marker + 1µs), read after the
// affected rows are locked, so a marker never moves backward and every call
// strictly advances it.
func BumpRevision(ctx context.Context, tx *Tx, owner models.Owner) (time.Time, error) {
	if owner != tx.Owner() {
		return time.Time{}, fmt.Errorf("%w: %s != %s", ErrOwnerMismatch, owner, tx.Owner())
	}
	if err := tx.advance(StateStamping); err != nil {
		return time.Time{}, err
	}

	var (
		stamp time.Time
		err   error
	)
	switch owner.Type {
	case models.OwnerUser:
		stamp, err = bumpUserRevision(ctx, tx, owner.ID)
	case models.OwnerOrganization:
		stamp, err = bumpOrganizationRevision(ctx, tx, owner.ID)
	default:
		err = fmt.Errorf("%w: %s", ErrOwnerNotSupported, owner.Type)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "store.BumpRevision").
			Str("owner", owner.String()).
			Msg("failed to bump revision")
		return time.Time{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "store.BumpRevision").
		Str("owner", owner.String()).
		Time("revision", stamp).
		Msg("revision bumped")

	return stamp, nil
}

func bumpUserRevision(ctx context.Context, tx *Tx, userID uuid.UUID) (time.Time, error) {
	current, found, err := latestStamp(ctx, tx, tx.db.builder.
		Select("account_revision_date").
		From("users").
		Where(sq.Eq{"id": userID}))
	if err != nil {
		return time.Time{}, err
	}
	if !found {
		return time.Time{}, fmt.Errorf("%w: user %v", ErrOwnerNotFound, userID)
	}

	stamp := nextStamp(tx.db.clock.Now(), current)

	if err = execBuilder(ctx, tx, tx.db.builder.
		Update("users").
		Set("account_revision_date", stamp).
		Where(sq.Eq{"id": userID})); err != nil {
		return time.Time{}, err
	}

	return stamp, nil
}

func bumpOrganizationRevision(ctx context.Context, tx *Tx, orgID uuid.UUID) (time.Time, error) {
	orgStamp, found, err := latestStamp(ctx, tx, tx.db.builder.
		Select("revision_date").
		From("organizations").
		Where(sq.Eq{"id": orgID}))
	if err != nil {
		return time.Time{}, err
	}
	if !found {
		return time.Time{}, fmt.Errorf("%w: organization %v", ErrOwnerNotFound, orgID)
	}

	// built with the default "?" format; the outer builder rewrites it
	membersSQL, membersArgs, err := sq.
		Select("user_id").
		From("organization_users").
		Where(sq.Eq{"organization_id": orgID, "status": int(models.OrganizationUserConfirmed)}).
		Where(sq.NotEq{"user_id": nil}).
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	inMembers := sq.Expr("id IN ("+membersSQL+")", membersArgs...)

	memberStamp, _, err := latestStamp(ctx, tx, tx.db.builder.
		Select("account_revision_date").
		From("users").
		Where(inMembers))
	if err != nil {
		return time.Time{}, err
	}

	stamp := nextStamp(tx.db.clock.Now(), maxTime(orgStamp, memberStamp))

	if err = execBuilder(ctx, tx, tx.db.builder.
		Update("organizations").
		Set("revision_date", stamp).
		Where(sq.Eq{"id": orgID})); err != nil {
		return time.Time{}, err
	}

	if err = execBuilder(ctx, tx, tx.db.builder.
		Update("users").
		Set("account_revision_date", stamp).
		Where(inMembers)); err != nil {
		return time.Time{}, err
	}

	return stamp, nil
}

// latestStamp locks the selected rows where the dialect allows it and
// returns the latest timestamp among them.
func latestStamp(ctx context.Context, tx *Tx, query sq.SelectBuilder) (time.Time, bool, error) {
	if tx.db.dialect.supportsRowLocks() {
		query = query.Suffix("FOR UPDATE")
	}

	q, args, err := query.ToSql()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, q, args...)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var (
		latest time.Time
		found  bool
	)
	for rows.Next() {
		var stamp time.Time
		if err = rows.Scan(&stamp); err != nil {
			return time.Time{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		latest = maxTime(latest, stamp)
		found = true
	}
	if err = rows.Err(); err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return latest, found, nil
}

func execBuilder(ctx context.Context, tx *Tx, stmt sq.Sqlizer) error {
	q, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// nextStamp returns a stamp strictly after previous and no earlier than now.
func nextStamp(now, previous time.Time) time.Time {
	now = now.UTC().Truncate(revisionResolution)
	floor := previous.UTC().Truncate(revisionResolution).Add(revisionResolution)
	if previous.IsZero() || !now.Before(floor) {
		return now
	}
	return floor
}

func maxTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
