package ports

import "context"

// AvailabilityCache holds short-lived remaining counts per event. A miss is
// (0, false, nil); errors are expected to be tolerated by callers, the
// database stays the source of truth.
type AvailabilityCache interface {
	Get(ctx context.Context, eventID string) (int, bool, error)
	Set(ctx context.Context, eventID string, remaining int) error
	Invalidate(ctx context.Context, eventID string) error
}
