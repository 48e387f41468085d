package usecase

import (
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/event"
	"github.com/x-xyz/goauction/domain/pricefeed"
)

type PriceFeedUseCaseCfg struct {
	// Address identifies this adapter instance
	Address    domain.Address
	Tx         domain.Transactor
	OracleRepo pricefeed.OracleRepo
	FeedRepo   pricefeed.FeedRepo
	Source     pricefeed.Source
	Emitter    event.Emitter
}

type impl struct {
	address domain.Address
	tx      domain.Transactor
	oracles pricefeed.OracleRepo
	feeds   pricefeed.FeedRepo
	source  pricefeed.Source
	emitter event.Emitter
	now     func() time.Time
}

func New(cfg *PriceFeedUseCaseCfg) pricefeed.UseCase {
	return &impl{
		address: cfg.Address.ToLower(),
		tx:      cfg.Tx,
		oracles: cfg.OracleRepo,
		feeds:   cfg.FeedRepo,
		source:  cfg.Source,
		emitter: cfg.Emitter,
		now:     time.Now,
	}
}

func (im *impl) Address() domain.Address {
	return im.address
}

func (im *impl) Bootstrap(c ctx.Ctx, owner, nativeFeed domain.Address, maxAge time.Duration) (*pricefeed.Oracle, error) {
	if o, err := im.oracles.FindOne(c, im.address); err == nil {
		return o, nil
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	if owner.IsZero() {
		return nil, domain.ErrInvalidAddress
	}
	decimals, err := im.feedDecimals(c, nativeFeed)
	if err != nil {
		return nil, err
	}

	now := im.now().UTC()
	o := &pricefeed.Oracle{
		Address:    im.address,
		Owner:      owner,
		NativeFeed: nativeFeed,
		MaxAge:     maxAge,
		CreatedAt:  now,
	}
	if err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.oracles.Upsert(c, o); err != nil {
			return err
		}
		return im.feeds.Upsert(c, &pricefeed.Feed{
			Oracle:    im.address,
			Token:     domain.NativeToken,
			Feed:      nativeFeed,
			Decimals:  decimals,
			UpdatedAt: now,
		})
	}); err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"nativeFeed": nativeFeed,
		}).Error("bootstrap oracle failed")
		return nil, err
	}

	c.WithFields(log.Fields{
		"oracle":     im.address,
		"owner":      owner,
		"nativeFeed": nativeFeed,
	}).Info("oracle bootstrapped")
	return o, nil
}

func (im *impl) Get(c ctx.Ctx) (*pricefeed.Oracle, error) {
	o, err := im.oracles.FindOne(c, im.address)
	if err == domain.ErrNotFound {
		return nil, pricefeed.ErrNotBootstrapped
	} else if err != nil {
		return nil, err
	}
	return o, nil
}

func (im *impl) GetFeeds(c ctx.Ctx) ([]*pricefeed.Feed, error) {
	return im.feeds.FindAll(c, im.address)
}

func (im *impl) feed(c ctx.Ctx, token domain.Address) (*pricefeed.Feed, error) {
	if token.IsZero() {
		token = domain.NativeToken
	}
	f, err := im.feeds.FindOne(c, pricefeed.FeedId{Oracle: im.address, Token: token})
	if err == domain.ErrNotFound {
		return nil, pricefeed.ErrNoPriceFeed
	} else if err != nil {
		return nil, err
	}
	return f, nil
}

func (im *impl) GetLatestPrice(c ctx.Ctx, token domain.Address) (*pricefeed.Price, error) {
	o, err := im.Get(c)
	if err != nil {
		return nil, err
	}
	f, err := im.feed(c, token)
	if err != nil {
		return nil, err
	}

	round, err := im.source.LatestRoundData(c, f.Feed)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"feed": f.Feed,
		}).Error("source.LatestRoundData failed")
		return nil, err
	}
	if round.Answer == nil || round.Answer.Sign() <= 0 {
		return nil, pricefeed.ErrInvalidPrice
	}
	if o.MaxAge > 0 && im.now().Sub(round.UpdatedAt) > o.MaxAge {
		c.WithFields(log.Fields{
			"feed":      f.Feed,
			"updatedAt": round.UpdatedAt,
			"maxAge":    o.MaxAge,
		}).Warn("stale price")
		return nil, pricefeed.ErrStalePrice
	}

	return &pricefeed.Price{
		Mantissa:  round.Answer,
		Decimals:  f.Decimals,
		UpdatedAt: round.UpdatedAt,
	}, nil
}

func (im *impl) GetUSDValue(c ctx.Ctx, token domain.Address, amount domain.Amount) (domain.Amount, error) {
	if !amount.IsValid() {
		return domain.ZeroAmount, domain.ErrBadParamInput
	}
	if amount.IsZero() {
		return domain.ZeroAmount, nil
	}

	p, err := im.GetLatestPrice(c, token)
	if err != nil {
		return domain.ZeroAmount, err
	}
	v, err := usdValue(amount.BigInt(), p.Mantissa, p.Decimals)
	if err != nil {
		return domain.ZeroAmount, err
	}
	return domain.NewAmount(v), nil
}

func (im *impl) GetETHPrice(c ctx.Ctx) (*pricefeed.Price, error) {
	return im.GetLatestPrice(c, domain.NativeToken)
}

func (im *impl) GetTokenPrice(c ctx.Ctx, token domain.Address) (*pricefeed.Price, error) {
	return im.GetLatestPrice(c, token)
}

func (im *impl) GetTokenDecimals(c ctx.Ctx, token domain.Address) (uint8, error) {
	f, err := im.feed(c, token)
	if err != nil {
		return 0, err
	}
	return f.Decimals, nil
}

func (im *impl) SetTokenPriceFeed(c ctx.Ctx, caller, token, feed domain.Address) error {
	if token.IsZero() {
		return im.SetNativePriceFeed(c, caller, feed)
	}
	return im.setFeed(c, caller, token, feed)
}

func (im *impl) SetNativePriceFeed(c ctx.Ctx, caller, feed domain.Address) error {
	return im.setFeed(c, caller, domain.NativeToken, feed)
}

func (im *impl) setFeed(c ctx.Ctx, caller, token, feed domain.Address) error {
	o, err := im.Get(c)
	if err != nil {
		return err
	}
	if !o.Owner.Equals(caller) {
		return pricefeed.ErrNotOwner
	}
	decimals, err := im.feedDecimals(c, feed)
	if err != nil {
		return err
	}

	native := token == domain.NativeToken
	err = im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		oldFeed := domain.EmptyAddress
		if f, err := im.feeds.FindOne(c, pricefeed.FeedId{Oracle: im.address, Token: token}); err == nil {
			oldFeed = f.Feed
		} else if err != domain.ErrNotFound {
			return err
		}

		if err := im.feeds.Upsert(c, &pricefeed.Feed{
			Oracle:    im.address,
			Token:     token,
			Feed:      feed,
			Decimals:  decimals,
			UpdatedAt: im.now().UTC(),
		}); err != nil {
			return err
		}

		if native {
			o.NativeFeed = feed
			if err := im.oracles.Upsert(c, o); err != nil {
				return err
			}
			return im.emitter.Emit(c, im.address, pricefeed.EventETHPriceFeedUpdated, event.Args{
				"oldFeed": oldFeed,
				"newFeed": feed.ToLower(),
			})
		}
		return im.emitter.Emit(c, im.address, pricefeed.EventPriceFeedUpdated, event.Args{
			"token":   token.ToLower(),
			"oldFeed": oldFeed,
			"newFeed": feed.ToLower(),
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"token": token,
			"feed":  feed,
		}).Error("set price feed failed")
		return err
	}
	return nil
}

// feedDecimals queries feed, rejecting addresses that do not answer decimals()
func (im *impl) feedDecimals(c ctx.Ctx, feed domain.Address) (uint8, error) {
	if feed.IsZero() {
		return 0, pricefeed.ErrInvalidFeed
	}
	decimals, err := im.source.Decimals(c, feed)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"feed": feed,
		}).Warn("source.Decimals failed")
		return 0, pricefeed.ErrInvalidFeed
	}
	return decimals, nil
}
