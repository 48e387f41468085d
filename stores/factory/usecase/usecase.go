package usecase

import (
	"math/big"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/base/ptr"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/bank"
	"github.com/x-xyz/goauction/domain/event"
	"github.com/x-xyz/goauction/domain/factory"
	"github.com/x-xyz/goauction/domain/keys"
)

const defaultLockTtl = 30 * time.Second

var met = metrics.New("factory")

type FactoryUseCaseCfg struct {
	Address      domain.Address
	Tx           domain.Transactor
	ConfigRepo   factory.ConfigRepo
	ListingRepo  factory.ListingRepo
	RegistryRepo factory.RegistryRepo
	Locker       factory.Locker
	Auction      auction.UseCase
	BankLedger   bank.Ledger
	Emitter      event.Emitter
	LockTtl      time.Duration
}

type impl struct {
	address  domain.Address
	tx       domain.Transactor
	configs  factory.ConfigRepo
	listings factory.ListingRepo
	registry factory.RegistryRepo
	locker   factory.Locker
	auction  auction.UseCase
	bank     bank.Ledger
	emitter  event.Emitter
	lockTtl  time.Duration
	now      func() time.Time
}

func New(cfg *FactoryUseCaseCfg) factory.UseCase {
	lockTtl := cfg.LockTtl
	if lockTtl <= 0 {
		lockTtl = defaultLockTtl
	}
	return &impl{
		address:  cfg.Address.ToLower(),
		tx:       cfg.Tx,
		configs:  cfg.ConfigRepo,
		listings: cfg.ListingRepo,
		registry: cfg.RegistryRepo,
		locker:   cfg.Locker,
		auction:  cfg.Auction,
		bank:     cfg.BankLedger,
		emitter:  cfg.Emitter,
		lockTtl:  lockTtl,
		now:      time.Now,
	}
}

func (im *impl) Address() domain.Address {
	return im.address
}

func (im *impl) Bootstrap(c ctx.Ctx, owner domain.Address) (*factory.Config, error) {
	if cfg, err := im.configs.FindOne(c, im.address); err == nil {
		return cfg, nil
	} else if err != domain.ErrNotFound {
		return nil, err
	}
	if owner.IsZero() {
		return nil, factory.ErrInvalidAddress
	}

	cfg := &factory.Config{
		Address:     im.address,
		Owner:       owner,
		PlatformFee: auction.DefaultPlatformFee,
		CreationFee: factory.DefaultCreationFee,
		UpdatedAt:   im.now().UTC(),
	}
	if err := im.configs.Upsert(c, cfg); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"factory": im.address,
		}).Error("configs.Upsert failed")
		return nil, err
	}
	return cfg, nil
}

func (im *impl) find(c ctx.Ctx) (*factory.Config, error) {
	cfg, err := im.configs.FindOne(c, im.address)
	if err == domain.ErrNotFound {
		return nil, factory.ErrNotInitialized
	} else if err != nil {
		return nil, err
	}
	return cfg, nil
}

// load returns the config of an initialized factory
func (im *impl) load(c ctx.Ctx) (*factory.Config, error) {
	cfg, err := im.find(c)
	if err != nil {
		return nil, err
	}
	if !cfg.Initialized {
		return nil, factory.ErrNotInitialized
	}
	return cfg, nil
}

func (im *impl) Initialize(c ctx.Ctx, caller domain.Address, params factory.InitParams) (*factory.Config, error) {
	if params.Implementation.IsZero() || params.PriceFeed.IsZero() || params.FeeCollector.IsZero() || params.Owner.IsZero() {
		return nil, factory.ErrInvalidAddress
	}

	var res *factory.Config
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		cfg, err := im.find(c)
		if err != nil {
			return err
		}
		if cfg.Initialized {
			return factory.ErrAlreadyInitialized
		}
		if !cfg.Owner.Equals(caller) {
			return factory.ErrNotOwner
		}

		cfg.Implementation = params.Implementation
		cfg.PriceFeed = params.PriceFeed
		cfg.FeeCollector = params.FeeCollector
		cfg.Owner = params.Owner
		cfg.PlatformFee = auction.DefaultPlatformFee
		cfg.CreationFee = factory.DefaultCreationFee
		cfg.Initialized = true
		cfg.UpdatedAt = im.now().UTC()
		if err := im.configs.Upsert(c, cfg); err != nil {
			return err
		}
		res = cfg

		return im.emitter.Emit(c, im.address, factory.EventInitialized, event.Args{
			"implementation": cfg.Implementation,
			"priceFeed":      cfg.PriceFeed,
			"feeCollector":   cfg.FeeCollector,
			"owner":          cfg.Owner,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"caller": caller,
			"params": params,
		}).Error("Initialize failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Get(c ctx.Ctx) (*factory.Config, error) {
	return im.find(c)
}

// liveEntry returns the registry entry of an asset whose auction has not
// reached a terminal state, or nil.
func (im *impl) liveEntry(c ctx.Ctx, nftContract domain.Address, tokenId domain.TokenId) (*factory.RegistryEntry, error) {
	e, err := im.registry.FindOne(c, factory.RegistryId{Factory: im.address, NftContract: nftContract, TokenId: tokenId})
	if err == domain.ErrNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	a, err := im.auction.GetAuction(c, auction.Id{Engine: e.Auction, AuctionId: e.AuctionId})
	if err == auction.ErrAuctionNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	if a.State.IsTerminal() {
		return nil, nil
	}
	return e, nil
}

func (im *impl) CreateAuction(c ctx.Ctx, caller domain.Address, value domain.Amount, params auction.CreateParams) (*factory.Listing, error) {
	defer met.BumpTime("time", "func", "createAuction").End()

	caller = caller.ToLower()
	nftContract := params.NftContract.ToLower()
	if nftContract.IsZero() {
		return nil, auction.ErrInvalidNftContract
	}
	if len(value) == 0 {
		value = domain.ZeroAmount
	}
	if !value.IsValid() {
		return nil, domain.ErrBadParamInput
	}

	key := keys.RedisKey(keys.PfxFactoryCreate, string(im.address), string(nftContract), params.TokenId.String())
	if err := im.locker.Lock(c, key, im.lockTtl); err != nil {
		return nil, err
	}
	defer func() {
		if err := im.locker.Unlock(c, key); err != nil {
			c.WithFields(log.Fields{
				"err": err,
				"key": key,
			}).Warn("locker.Unlock failed")
		}
	}()

	var res *factory.Listing
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		cfg, err := im.load(c)
		if err != nil {
			return err
		}
		if e, err := im.liveEntry(c, nftContract, params.TokenId); err != nil {
			return err
		} else if e != nil {
			return factory.ErrAuctionExists
		}
		if value.Cmp(cfg.CreationFee) < 0 {
			return factory.ErrInsufficientCreationFee
		}

		// value in, fee out, excess back
		if err := im.bank.Transfer(c, domain.NativeToken, caller, im.address, value); err != nil {
			return err
		}
		if !cfg.CreationFee.IsZero() {
			if err := im.bank.Transfer(c, domain.NativeToken, im.address, cfg.FeeCollector, cfg.CreationFee); err != nil {
				return err
			}
		}
		if excess := new(big.Int).Sub(value.BigInt(), cfg.CreationFee.BigInt()); excess.Sign() > 0 {
			if err := im.bank.Transfer(c, domain.NativeToken, im.address, caller, domain.NewAmount(excess)); err != nil {
				return err
			}
		}

		engine, err := im.auction.Deploy(c, cfg.Implementation, im.address)
		if err != nil {
			return err
		}
		if _, err := im.auction.Initialize(c, engine.Address, auction.InitParams{
			Oracle:       cfg.PriceFeed,
			Owner:        cfg.Owner,
			FeeCollector: cfg.FeeCollector,
			PlatformFee:  ptr.Int32(cfg.PlatformFee),
			Factory:      im.address,
		}); err != nil {
			return err
		}
		params.NftContract = nftContract
		a, err := im.auction.CreateAuctionFor(c, engine.Address, im.address, caller, params)
		if err != nil {
			return err
		}

		n, err := im.listings.Count(c, im.address)
		if err != nil {
			return err
		}
		now := im.now().UTC()
		listing := &factory.Listing{
			Index:       int64(n),
			Factory:     im.address,
			Auction:     engine.Address,
			NftContract: nftContract,
			TokenId:     params.TokenId,
			Creator:     caller,
			AuctionId:   a.AuctionId,
			CreatedAt:   now,
		}
		if err := im.listings.Insert(c, listing); err != nil {
			return err
		}
		if err := im.registry.Upsert(c, &factory.RegistryEntry{
			Factory:     im.address,
			NftContract: nftContract,
			TokenId:     params.TokenId,
			Auction:     engine.Address,
			AuctionId:   a.AuctionId,
			UpdatedAt:   now,
		}); err != nil {
			return err
		}
		cfg.AuctionCount++
		cfg.UpdatedAt = now
		if err := im.configs.Upsert(c, cfg); err != nil {
			return err
		}
		res = listing

		return im.emitter.Emit(c, im.address, factory.EventAuctionCreated, event.Args{
			"auction":     engine.Address,
			"nftContract": nftContract,
			"tokenId":     params.TokenId,
			"creator":     caller,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"caller": caller,
			"value":  value,
			"params": params,
		}).Info("CreateAuction rejected")
		return nil, err
	}

	met.BumpSum("create", 1)
	return res, nil
}

func toAddresses(listings []*factory.Listing) []domain.Address {
	res := make([]domain.Address, 0, len(listings))
	for _, l := range listings {
		res = append(res, l.Auction)
	}
	return res
}

func (im *impl) GetAllAuctions(c ctx.Ctx) ([]domain.Address, error) {
	listings, err := im.listings.FindAll(c, im.address, 0, 0)
	if err != nil {
		return nil, err
	}
	return toAddresses(listings), nil
}

// GetAuctionsByPage returns an empty page for an out of range offset or a
// non-positive limit.
func (im *impl) GetAuctionsByPage(c ctx.Ctx, offset, limit int) ([]domain.Address, error) {
	if offset < 0 || limit <= 0 {
		return []domain.Address{}, nil
	}
	listings, err := im.listings.FindAll(c, im.address, offset, limit)
	if err != nil {
		return nil, err
	}
	return toAddresses(listings), nil
}

func (im *impl) GetUserAuctions(c ctx.Ctx, user domain.Address) ([]domain.Address, error) {
	listings, err := im.listings.FindByCreator(c, im.address, user)
	if err != nil {
		return nil, err
	}
	return toAddresses(listings), nil
}

func (im *impl) AuctionExists(c ctx.Ctx, nftContract domain.Address, tokenId domain.TokenId) (bool, error) {
	e, err := im.liveEntry(c, nftContract, tokenId)
	if err != nil {
		return false, err
	}
	return e != nil, nil
}

func (im *impl) GetAuctionAddress(c ctx.Ctx, nftContract domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	e, err := im.registry.FindOne(c, factory.RegistryId{Factory: im.address, NftContract: nftContract, TokenId: tokenId})
	if err == domain.ErrNotFound {
		return domain.EmptyAddress, nil
	} else if err != nil {
		return "", err
	}
	return e.Auction, nil
}

func (im *impl) GetAuctionInfo(c ctx.Ctx, address domain.Address) (*factory.AuctionInfo, error) {
	l, err := im.listings.FindOne(c, im.address, address)
	if err != nil {
		return nil, err
	}
	a, err := im.auction.GetAuction(c, auction.Id{Engine: l.Auction, AuctionId: l.AuctionId})
	if err != nil {
		return nil, err
	}
	return &factory.AuctionInfo{
		NftContract: l.NftContract,
		TokenId:     l.TokenId,
		Creator:     l.Creator,
		IsActive:    a.State == auction.StateActive,
	}, nil
}

func (im *impl) AllAuctionsLength(c ctx.Ctx) (int, error) {
	return im.listings.Count(c, im.address)
}

// update runs apply on the config as the owner and records the change
func (im *impl) update(c ctx.Ctx, caller domain.Address, name string, apply func(cfg *factory.Config) (old, new interface{}, err error)) error {
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		cfg, err := im.load(c)
		if err != nil {
			return err
		}
		if !cfg.Owner.Equals(caller) {
			return factory.ErrNotOwner
		}
		oldValue, newValue, err := apply(cfg)
		if err != nil {
			return err
		}
		cfg.UpdatedAt = im.now().UTC()
		if err := im.configs.Upsert(c, cfg); err != nil {
			return err
		}
		return im.emitter.Emit(c, im.address, name, event.Args{
			"old": oldValue,
			"new": newValue,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"caller": caller,
			"event":  name,
		}).Info("factory update rejected")
	}
	return err
}

func (im *impl) UpdateImplementation(c ctx.Ctx, caller, implementation domain.Address) error {
	return im.update(c, caller, factory.EventImplementationUpdated, func(cfg *factory.Config) (interface{}, interface{}, error) {
		if implementation.IsZero() {
			return nil, nil, factory.ErrInvalidAddress
		}
		old := cfg.Implementation
		cfg.Implementation = implementation.ToLower()
		return old, cfg.Implementation, nil
	})
}

func (im *impl) UpdatePriceFeed(c ctx.Ctx, caller, priceFeed domain.Address) error {
	return im.update(c, caller, factory.EventPriceFeedUpdated, func(cfg *factory.Config) (interface{}, interface{}, error) {
		if priceFeed.IsZero() {
			return nil, nil, factory.ErrInvalidAddress
		}
		old := cfg.PriceFeed
		cfg.PriceFeed = priceFeed.ToLower()
		return old, cfg.PriceFeed, nil
	})
}

func (im *impl) UpdatePlatformFee(c ctx.Ctx, caller domain.Address, fee int32) error {
	return im.update(c, caller, factory.EventPlatformFeeUpdated, func(cfg *factory.Config) (interface{}, interface{}, error) {
		if fee < 0 {
			return nil, nil, domain.ErrBadParamInput
		}
		if fee > auction.MaxPlatformFee {
			return nil, nil, factory.ErrFeeTooHigh
		}
		old := cfg.PlatformFee
		cfg.PlatformFee = fee
		return old, fee, nil
	})
}

func (im *impl) UpdateCreationFee(c ctx.Ctx, caller domain.Address, fee domain.Amount) error {
	return im.update(c, caller, factory.EventCreationFeeUpdated, func(cfg *factory.Config) (interface{}, interface{}, error) {
		if !fee.IsValid() {
			return nil, nil, domain.ErrBadParamInput
		}
		old := cfg.CreationFee
		cfg.CreationFee = fee
		return old, fee, nil
	})
}

func (im *impl) UpdateFeeCollector(c ctx.Ctx, caller, feeCollector domain.Address) error {
	return im.update(c, caller, factory.EventFeeCollectorUpdated, func(cfg *factory.Config) (interface{}, interface{}, error) {
		if feeCollector.IsZero() {
			return nil, nil, factory.ErrInvalidAddress
		}
		old := cfg.FeeCollector
		cfg.FeeCollector = feeCollector.ToLower()
		return old, cfg.FeeCollector, nil
	})
}

// EmergencyWithdraw sweeps the factory's own native balance to the owner.
// Auction escrow lives on the engines and is never touched.
func (im *impl) EmergencyWithdraw(c ctx.Ctx, caller domain.Address) (domain.Amount, error) {
	var amount domain.Amount
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		cfg, err := im.load(c)
		if err != nil {
			return err
		}
		if !cfg.Owner.Equals(caller) {
			return factory.ErrNotOwner
		}
		bal, err := im.bank.BalanceOf(c, domain.NativeToken, im.address)
		if err != nil {
			return err
		}
		if bal.IsZero() {
			return factory.ErrNothingToWithdraw
		}
		if err := im.bank.Transfer(c, domain.NativeToken, im.address, cfg.Owner, bal); err != nil {
			return err
		}
		amount = bal

		return im.emitter.Emit(c, im.address, factory.EventEmergencyWithdrawn, event.Args{
			"to":     cfg.Owner,
			"amount": bal,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"caller": caller,
		}).Info("EmergencyWithdraw rejected")
		return domain.ZeroAmount, err
	}
	return amount, nil
}
