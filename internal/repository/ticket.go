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

// TicketPoolRepository is read-only. All writes to ticket_pools go through
// ReservationRepository (and the pool insert inside EventRepository.Create).
type TicketPoolRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketPoolRepo(db *dbpg.DB) *TicketPoolRepository {
	return &TicketPoolRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Availability returns the remaining count without any locking. The value
// is advisory: concurrent reservations may invalidate it immediately.
func (r *TicketPoolRepository) Availability(ctx context.Context, eventID string) (int, error) {
	query := `SELECT remaining FROM ticket_pools WHERE event_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return 0, classify("get availability", err)
	}

	var remaining int
	if err = row.Scan(&remaining); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrEventNotFound
		}
		return 0, classify("scan availability", err)
	}

	return remaining, nil
}
