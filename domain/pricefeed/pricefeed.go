package pricefeed

import (
	"errors"
	"math/big"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

// UsdDecimals is the precision of every USD value the adapter returns.
const UsdDecimals = 18

const (
	EventPriceFeedUpdated    = "PriceFeedUpdated"
	EventETHPriceFeedUpdated = "ETHPriceFeedUpdated"
)

var (
	ErrNoPriceFeed     = errors.New("No price feed for token")
	ErrNotOwner        = errors.New("caller is not the owner")
	ErrInvalidFeed     = errors.New("invalid price feed")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrStalePrice      = errors.New("stale price")
	ErrOverflow        = errors.New("usd value overflow")
	ErrNotBootstrapped = errors.New("oracle not bootstrapped")
)

// Oracle is the persisted adapter instance.
type Oracle struct {
	Address    domain.Address `json:"address" bson:"address"`
	Owner      domain.Address `json:"owner" bson:"owner"`
	NativeFeed domain.Address `json:"nativeFeed" bson:"nativeFeed"`
	// MaxAge rejects rounds older than this when positive.
	MaxAge    time.Duration `json:"maxAge" bson:"maxAge"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}

// Feed registers an external price source for a token. The native currency
// feed is registered under domain.NativeToken.
type Feed struct {
	Oracle    domain.Address `json:"oracle" bson:"oracle"`
	Token     domain.Address `json:"token" bson:"token"`
	Feed      domain.Address `json:"feed" bson:"feed"`
	Decimals  uint8          `json:"decimals" bson:"decimals"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type FeedId struct {
	Oracle domain.Address `json:"oracle" bson:"oracle"`
	Token  domain.Address `json:"token" bson:"token"`
}

// Price is a raw quote: Mantissa / 10^Decimals USD.
type Price struct {
	Mantissa  *big.Int  `json:"mantissa"`
	Decimals  uint8     `json:"decimals"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Round is the answer of an aggregator's latestRoundData.
type Round struct {
	RoundId   *big.Int
	Answer    *big.Int
	StartedAt time.Time
	UpdatedAt time.Time
}

type OracleRepo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Oracle, error)
	Upsert(c ctx.Ctx, o *Oracle) error
}

type FeedRepo interface {
	FindOne(c ctx.Ctx, id FeedId) (*Feed, error)
	FindAll(c ctx.Ctx, oracle domain.Address) ([]*Feed, error)
	Upsert(c ctx.Ctx, f *Feed) error
}

// Source reads aggregator rounds from the chain.
type Source interface {
	LatestRoundData(c ctx.Ctx, feed domain.Address) (*Round, error)
	Decimals(c ctx.Ctx, feed domain.Address) (uint8, error)
}

type UseCase interface {
	Address() domain.Address
	// Bootstrap persists the oracle and registers its native feed. It is a no-op
	// when the oracle already exists.
	Bootstrap(c ctx.Ctx, owner, nativeFeed domain.Address, maxAge time.Duration) (*Oracle, error)
	Get(c ctx.Ctx) (*Oracle, error)
	GetFeeds(c ctx.Ctx) ([]*Feed, error)

	GetLatestPrice(c ctx.Ctx, token domain.Address) (*Price, error)
	GetUSDValue(c ctx.Ctx, token domain.Address, amount domain.Amount) (domain.Amount, error)
	GetETHPrice(c ctx.Ctx) (*Price, error)
	GetTokenPrice(c ctx.Ctx, token domain.Address) (*Price, error)
	GetTokenDecimals(c ctx.Ctx, token domain.Address) (uint8, error)

	SetTokenPriceFeed(c ctx.Ctx, caller, token, feed domain.Address) error
	SetNativePriceFeed(c ctx.Ctx, caller, feed domain.Address) error
}
