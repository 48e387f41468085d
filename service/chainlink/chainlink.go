package chainlink

import (
	"time"

	"github.com/x-xyz/goauction/domain/pricefeed"
	"github.com/x-xyz/goauction/service/cache/provider"
)

// Chainlink reads AggregatorV3 feeds on one chain
type Chainlink interface {
	pricefeed.Source
}

type Config struct {
	ChainId int32
	// RoundTtl bounds how long a round answer is served from cache.
	RoundTtl time.Duration
	// Cache stores rounds and decimals. Nil uses an in-process cache.
	Cache provider.Provider
}
