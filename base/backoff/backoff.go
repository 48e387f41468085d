package backoff

import (
	"context"
	"time"
)

// Backoff sleeps for a doubling duration between failed attempts, capped at
// limit. It is not safe for concurrent use.
type Backoff struct {
	start    time.Duration
	limit    time.Duration
	attempts int
	next     time.Duration
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	if start <= 0 {
		start = time.Second
	}
	b := &Backoff{start: start, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.attempts = 0
	b.next = b.start
}

// Attempts is the number of completed sleeps since the last Reset
func (b *Backoff) Attempts() int {
	return b.attempts
}

// Next is the duration the following Backoff call sleeps for
func (b *Backoff) Next() time.Duration {
	return b.next
}

// Backoff sleeps for Next. It returns ctx.Err() if ctx ends first, in which
// case the attempt is not counted.
func (b *Backoff) Backoff(ctx context.Context) error {
	t := time.NewTimer(b.next)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}

	b.attempts++
	b.next = b.grow(b.next)
	return nil
}

func (b *Backoff) grow(d time.Duration) time.Duration {
	if b.limit > 0 && d >= b.limit/2 {
		return b.limit
	}
	// stop doubling before the duration wraps around
	if d >= time.Duration(1<<62) {
		return d
	}
	return d * 2
}
