package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/x-xyz/goauction/base/log"
)

// ThrottledClient bounds the number of in-flight rpc calls to n. A call whose
// context ends while waiting for a slot returns the context error without
// reaching the node.
type ThrottledClient struct {
	*ethclient.Client
	slots chan struct{}
}

func NewThrottledClient(client *ethclient.Client, n int) *ThrottledClient {
	if n <= 0 {
		n = 1
	}
	return &ThrottledClient{
		Client: client,
		slots:  make(chan struct{}, n),
	}
}

func (c *ThrottledClient) CodeAt(ctx context.Context, address common.Address, number *big.Int) ([]byte, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()
	return c.Client.CodeAt(ctx, address, number)
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()
	return c.Client.CallContract(ctx, msg, number)
}

// InFlight is the number of calls currently holding a slot
func (c *ThrottledClient) InFlight() int {
	return len(c.slots)
}

func (c *ThrottledClient) acquire(ctx context.Context) error {
	start := time.Now()
	select {
	case <-ctx.Done():
		log.Log().WithField("wait", time.Since(start)).Debug("throttle ctx done")
		return ctx.Err()
	case c.slots <- struct{}{}:
		if wait := time.Since(start); wait > 100*time.Millisecond {
			log.Log().WithFields(log.Fields{"wait": wait, "inflight": len(c.slots)}).Debug("throttle acquired")
		}
		return nil
	}
}

func (c *ThrottledClient) release() {
	<-c.slots
}
