package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/p-aks/EventManagement/internal/domain"
)

// ReservationRepository owns every mutation of the (ticket_pools,
// reservations) pair. Reserve and Cancel run as single transactions that
// take a row lock on the event's pool, so concurrent operations on one
// event serialize on that lock while different events proceed in parallel.
type ReservationRepository struct {
	db          *dbpg.DB
	strategy    retry.Strategy
	lockTimeout time.Duration
}

func NewReservationRepo(db *dbpg.DB, lockTimeout time.Duration) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		lockTimeout: lockTimeout,
	}
}

// Reserve atomically takes one unit of the event's pool for r.UserID and
// persists r as confirmed. On success r.PoolID is filled in. Exactly one of
// the concurrent callers racing for the last unit wins; the rest observe
// ErrSoldOut or ErrAlreadyReserved, never a negative remaining count.
func (r *ReservationRepository) Reserve(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin reserve tx", err)
	}
	defer tx.Rollback()

	if err = r.setLockTimeout(ctx, tx); err != nil {
		return err
	}

	var poolID string
	var remaining int
	lockQuery := `SELECT id, remaining FROM ticket_pools WHERE event_id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, res.EventID).Scan(&poolID, &remaining); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return classify("lock ticket pool", err)
	}

	var held bool
	heldQuery := `SELECT EXISTS (
					SELECT 1 FROM reservations
					WHERE event_id = $1 AND user_id = $2 AND status = $3)`
	if err = tx.QueryRowContext(
		ctx, heldQuery, res.EventID, res.UserID, domain.ReservationStatusConfirmed,
	).Scan(&held); err != nil {
		return classify("check active reservation", err)
	}
	if held {
		return domain.ErrAlreadyReserved
	}

	if remaining <= 0 {
		return domain.ErrSoldOut
	}

	decQuery := `UPDATE ticket_pools SET remaining = remaining - 1 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, decQuery, poolID); err != nil {
		return classify("decrement remaining", err)
	}

	res.PoolID = poolID
	insQuery := `INSERT INTO reservations (id, event_id, user_id, pool_id, status, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.ExecContext(
		ctx, insQuery,
		res.ID, res.EventID, res.UserID, res.PoolID,
		res.Status, res.CreatedAt, res.UpdatedAt,
	); err != nil {
		// A racing transaction committed a confirmed row for the same pair
		// between our check and insert; the partial unique index catches it.
		if isUniqueViolation(err) {
			return domain.ErrAlreadyReserved
		}
		return classify("insert reservation", err)
	}

	if err = tx.Commit(); err != nil {
		return classify("commit reserve tx", err)
	}

	return nil
}

// Cancel flips the pair's confirmed reservation to cancelled and returns
// the unit to the pool. The replenish is guarded by remaining < total; a
// zero-row update there means the accounting is corrupt, not a user error.
func (r *ReservationRepository) Cancel(ctx context.Context, eventID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin cancel tx", err)
	}
	defer tx.Rollback()

	if err = r.setLockTimeout(ctx, tx); err != nil {
		return err
	}

	var poolID string
	lockQuery := `SELECT id FROM ticket_pools WHERE event_id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, eventID).Scan(&poolID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return classify("lock ticket pool", err)
	}

	cancelQuery := `UPDATE reservations
					SET status = $4, updated_at = now()
					WHERE event_id = $1 AND user_id = $2 AND status = $3`
	result, err := tx.ExecContext(
		ctx, cancelQuery, eventID, userID,
		domain.ReservationStatusConfirmed, domain.ReservationStatusCancelled,
	)
	if err != nil {
		return classify("cancel reservation", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return classify("cancel rows affected", err)
	}
	if rows == 0 {
		return domain.ErrNoActiveReservation
	}

	incQuery := `UPDATE ticket_pools SET remaining = remaining + 1
				 WHERE id = $1 AND remaining < total`
	result, err = tx.ExecContext(ctx, incQuery, poolID)
	if err != nil {
		return classify("replenish remaining", err)
	}
	rows, err = result.RowsAffected()
	if err != nil {
		return classify("replenish rows affected", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: pool %s full while cancelling a confirmed reservation",
			domain.ErrInvariantViolation, poolID)
	}

	if err = tx.Commit(); err != nil {
		return classify("commit cancel tx", err)
	}

	return nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	query := `SELECT id, event_id, user_id, pool_id, status, created_at, updated_at, reminded_at
			  FROM reservations
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, classify("list reservations by user", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		if err = rows.Scan(
			&rv.ID, &rv.EventID, &rv.UserID, &rv.PoolID,
			&rv.Status, &rv.CreatedAt, &rv.UpdatedAt, &rv.RemindedAt,
		); err != nil {
			return nil, classify("scan reservation", err)
		}
		res = append(res, &rv)
	}

	return res, rows.Err()
}

// ClaimDueReminders atomically marks confirmed reservations whose event
// starts within the window and that have not been reminded, and returns
// them. Marking and returning in one statement keeps reminders at-most-once
// even with several scheduler instances.
func (r *ReservationRepository) ClaimDueReminders(ctx context.Context, window time.Duration) ([]*domain.Reservation, error) {
	query := `
		UPDATE reservations r
		SET reminded_at = now(), updated_at = now()
		FROM events e
		WHERE r.event_id = e.id
		  AND r.status = $1
		  AND r.reminded_at IS NULL
		  AND e.starts_at > now()
		  AND e.starts_at <= now() + make_interval(secs => $2)
		RETURNING r.id, r.event_id, r.user_id, r.pool_id,
				  r.status, r.created_at, r.updated_at, r.reminded_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.ReservationStatusConfirmed, window.Seconds(),
	)
	if err != nil {
		return nil, classify("claim due reminders", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		if err = rows.Scan(
			&rv.ID, &rv.EventID, &rv.UserID, &rv.PoolID,
			&rv.Status, &rv.CreatedAt, &rv.UpdatedAt, &rv.RemindedAt,
		); err != nil {
			return nil, classify("scan due reminder", err)
		}
		res = append(res, &rv)
	}

	return res, rows.Err()
}

// setLockTimeout bounds the FOR UPDATE wait for the current transaction so
// no caller blocks indefinitely behind a stuck lock holder.
func (r *ReservationRepository) setLockTimeout(ctx context.Context, tx *sql.Tx) error {
	query := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return classify("set lock timeout", err)
	}
	return nil
}
