package chainlink

import (
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/abi"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/domain/pricefeed"
	"github.com/x-xyz/goauction/service/cache"
	"github.com/x-xyz/goauction/service/cache/provider/primitive"
	"github.com/x-xyz/goauction/service/chain"
)

const (
	defaultRoundTtl = 30 * time.Second
	decimalsTtl     = 24 * time.Hour
)

type impl struct {
	chainClient chain.Client
	chainId     int32
	rounds      cache.Service
	decimals    cache.Service
}

func New(chainClient chain.Client, cfg Config) Chainlink {
	if cfg.RoundTtl <= 0 {
		cfg.RoundTtl = defaultRoundTtl
	}
	if cfg.Cache == nil {
		cfg.Cache = primitive.NewPrimitive("chainlink_cache", 8)
	}
	pfx := keys.RedisKey(keys.PfxChainlink, strconv.Itoa(int(cfg.ChainId)))
	return &impl{
		chainClient: chainClient,
		chainId:     cfg.ChainId,
		rounds: cache.New(cache.Config{
			Provider: cfg.Cache,
			Prefix:   keys.RedisKey(pfx, "round"),
			Ttl:      cfg.RoundTtl,
		}),
		decimals: cache.New(cache.Config{
			Provider: cfg.Cache,
			Prefix:   keys.RedisKey(pfx, "decimals"),
			Ttl:      decimalsTtl,
		}),
	}
}

func (im *impl) LatestRoundData(c ctx.Ctx, feed domain.Address) (*pricefeed.Round, error) {
	res := pricefeed.Round{}
	if err := im.rounds.GetOrLoad(c, feed.ToLowerStr(), &res, func() (interface{}, error) {
		return im.latestRoundData(c, feed)
	}); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": im.chainId,
			"feed":    feed,
		}).Error("rounds.GetOrLoad failed")
		return nil, err
	}
	return &res, nil
}

func (im *impl) Decimals(c ctx.Ctx, feed domain.Address) (uint8, error) {
	var res uint8
	if err := im.decimals.GetOrLoad(c, feed.ToLowerStr(), &res, func() (interface{}, error) {
		d, err := im.readDecimals(c, feed)
		if err != nil {
			return nil, err
		}
		return &d, nil
	}); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": im.chainId,
			"feed":    feed,
		}).Error("decimals.GetOrLoad failed")
		return 0, err
	}
	return res, nil
}

func (im *impl) latestRoundData(c ctx.Ctx, feed domain.Address) (*pricefeed.Round, error) {
	res, err := im.chainClient.Call(c, im.chainId, common.HexToAddress(string(feed)), nil, abi.ChainlinkFeedABI, "latestRoundData")
	if err != nil {
		return nil, err
	}
	if len(res) != 5 {
		return nil, xerrors.Errorf("latestRoundData returned %d values", len(res))
	}

	roundId, ok0 := res[0].(*big.Int)
	answer, ok1 := res[1].(*big.Int)
	startedAt, ok2 := res[2].(*big.Int)
	updatedAt, ok3 := res[3].(*big.Int)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return nil, xerrors.Errorf("unexpected latestRoundData types %T %T %T %T", res[0], res[1], res[2], res[3])
	}

	return &pricefeed.Round{
		RoundId:   roundId,
		Answer:    answer,
		StartedAt: time.Unix(startedAt.Int64(), 0).UTC(),
		UpdatedAt: time.Unix(updatedAt.Int64(), 0).UTC(),
	}, nil
}

func (im *impl) readDecimals(c ctx.Ctx, feed domain.Address) (uint8, error) {
	res, err := im.chainClient.Call(c, im.chainId, common.HexToAddress(string(feed)), nil, abi.ChainlinkFeedABI, "decimals")
	if err != nil {
		return 0, err
	}
	d, ok := res[0].(uint8)
	if !ok {
		return 0, xerrors.Errorf("unexpected decimals type %T", res[0])
	}
	return d, nil
}
