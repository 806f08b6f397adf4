package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/p-aks/EventManagement/internal/domain"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the event and its ticket pool in one transaction. An event
// without a pool must never be observable, so a failure on either insert
// rolls back both.
func (r *EventRepository) Create(ctx context.Context, e *domain.Event, p *domain.TicketPool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin create event tx", err)
	}
	defer tx.Rollback()

	eventQuery := `INSERT INTO events (id, title, description, starts_at, location, ticket_type, organizer_id, created_at, updated_at)
				   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err = tx.ExecContext(
		ctx, eventQuery,
		e.ID, e.Title, e.Description, e.StartsAt,
		e.Location, e.TicketType, e.OrganizerID, e.CreatedAt, e.UpdatedAt,
	); err != nil {
		return classify("insert event", err)
	}

	poolQuery := `INSERT INTO ticket_pools (id, event_id, unit_price, remaining, total, created_at)
				  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(
		ctx, poolQuery,
		p.ID, p.EventID, p.UnitPrice, p.Remaining, p.Total, p.CreatedAt,
	); err != nil {
		return classify("insert ticket pool", err)
	}

	if err = tx.Commit(); err != nil {
		return classify("commit create event tx", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, description, starts_at, location, ticket_type, organizer_id, created_at, updated_at
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, classify("get event", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.StartsAt,
		&e.Location, &e.TicketType, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, classify("scan event", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, title, description, starts_at, location, ticket_type, organizer_id, created_at, updated_at
			  FROM events
			  ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, classify("list events", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.StartsAt,
			&e.Location, &e.TicketType, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, classify("scan event", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// GetDetails reads the event together with its pool counters and the number
// of confirmed reservations. The remaining count is a snapshot; it can be
// stale by the time the caller acts on it.
func (r *EventRepository) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	query := `
		SELECT e.id, e.title, e.description, e.starts_at, e.location, e.ticket_type,
			   e.organizer_id, e.created_at, e.updated_at,
			   p.unit_price, p.total, p.remaining,
			   COUNT(rv.id) AS confirmed
		FROM events e
		JOIN ticket_pools p ON p.event_id = e.id
		LEFT JOIN reservations rv
			ON rv.event_id = e.id AND rv.status = $2
		WHERE e.id = $1
		GROUP BY e.id, p.unit_price, p.total, p.remaining`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, domain.ReservationStatusConfirmed)
	if err != nil {
		return nil, classify("get event details", err)
	}

	var d domain.EventDetails
	if err = row.Scan(
		&d.Event.ID, &d.Event.Title, &d.Event.Description, &d.Event.StartsAt,
		&d.Event.Location, &d.Event.TicketType, &d.Event.OrganizerID,
		&d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.UnitPrice, &d.Total, &d.Remaining, &d.Confirmed,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, classify("scan event details", err)
	}

	return &d, nil
}
