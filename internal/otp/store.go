package otp

import (
	"context"
	"errors"
	"time"
)

// Record is a one-time code awaiting verification. ExpiresAt is the logical
// validity bound; the store keeps the record around for longer so a stale
// lookup can still be told apart from a missing one.
type Record struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store persists at most one live Record per identifier. Put replaces any
// prior record and the store purges entries on its own after ttl.
type Store interface {
	Put(ctx context.Context, identifier string, record Record, ttl time.Duration) error

	Get(ctx context.Context, identifier string) (Record, error)

	Delete(ctx context.Context, identifier string) error
}

var ErrRecordNotFound = errors.New("otp record not found")
