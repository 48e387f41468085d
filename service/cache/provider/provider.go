package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
)

// ErrNotFound is a miss, expired entries included.
var ErrNotFound = errors.New("cache miss")

// Provider stores raw bytes with a ttl. A zero ttl keeps the value until it
// is evicted or deleted.
type Provider interface {
	// Get returns the value and what is left of its ttl, zero for no expiry
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	// Del of a missing key is not an error
	Del(c ctx.Ctx, key string) error
}
