package ethereum

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThrottleSlots(t *testing.T) {
	c := NewThrottledClient(nil, 2)
	ctx := context.Background()

	assert.NoError(t, c.acquire(ctx))
	assert.NoError(t, c.acquire(ctx))
	assert.Equal(t, 2, c.InFlight())

	// full, a canceled caller gives up without a slot
	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, c.acquire(canceled), context.Canceled)
	assert.Equal(t, 2, c.InFlight())

	c.release()
	assert.Equal(t, 1, c.InFlight())
	assert.NoError(t, c.acquire(ctx))
}
