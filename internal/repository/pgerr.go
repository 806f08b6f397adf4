package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/p-aks/EventManagement/internal/domain"
)

const uniqueViolation = "23505"

// Postgres error codes that mean the transaction applied nothing and the
// identical call may be retried: lock_not_available (bounded lock wait
// expired), serialization_failure, deadlock_detected, admin shutdown and
// the connection-exception class.
var transientCodes = map[string]struct{}{
	"55P03": {},
	"40001": {},
	"40P01": {},
	"57P01": {},
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && string(pgErr.Code) == uniqueViolation
}

func isTransient(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		code := string(pgErr.Code)
		if _, ok := transientCodes[code]; ok {
			return true
		}
		return strings.HasPrefix(code, "08")
	}
	return false
}

// classify wraps storage failures so callers can distinguish retry-safe
// outages from everything else via errors.Is(err, ErrStorageUnavailable).
func classify(op string, err error) error {
	if isTransient(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
