// Package idempotency remembers the result of a request keyed by a client supplied
// Idempotency-Key so retries replay the first response instead of repeating side effects.
package idempotency

import (
	"context"
	"fmt"
	"time"
)

const (
	// KeyBookingCreate maps idem:booking:create:{key} to the stored booking JSON.
	KeyBookingCreate = "idem:booking:create:%s"

	DefaultTTL = 24 * time.Hour
)

type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put stores value unless key already holds one. It reports whether value was written.
	Put(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
}

func BookingKey(clientKey string) string {
	return fmt.Sprintf(KeyBookingCreate, clientKey)
}
