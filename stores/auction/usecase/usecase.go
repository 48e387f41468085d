package usecase

import (
	"math/big"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/ethereum"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/bank"
	"github.com/x-xyz/goauction/domain/event"
	"github.com/x-xyz/goauction/domain/nft"
	"github.com/x-xyz/goauction/domain/pricefeed"
)

var met = metrics.New("auction")

type AuctionUseCaseCfg struct {
	Tx                domain.Transactor
	EngineRepo        auction.EngineRepo
	AuctionRepo       auction.Repo
	BidRepo           auction.BidRepo
	PendingReturnRepo auction.PendingReturnRepo
	NftLedger         nft.Ledger
	BankLedger        bank.Ledger
	Emitter           event.Emitter
	// Oracles are the price adapters engines may be initialized with
	Oracles []pricefeed.UseCase
	// AssetVerifier is optional
	AssetVerifier auction.AssetVerifier
}

type impl struct {
	tx       domain.Transactor
	engines  auction.EngineRepo
	auctions auction.Repo
	bids     auction.BidRepo
	pendings auction.PendingReturnRepo
	nft      nft.Ledger
	bank     bank.Ledger
	emitter  event.Emitter
	oracles  map[domain.Address]pricefeed.UseCase
	verifier auction.AssetVerifier
	now      func() time.Time
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	oracles := make(map[domain.Address]pricefeed.UseCase, len(cfg.Oracles))
	for _, o := range cfg.Oracles {
		oracles[o.Address().ToLower()] = o
	}
	return &impl{
		tx:       cfg.Tx,
		engines:  cfg.EngineRepo,
		auctions: cfg.AuctionRepo,
		bids:     cfg.BidRepo,
		pendings: cfg.PendingReturnRepo,
		nft:      cfg.NftLedger,
		bank:     cfg.BankLedger,
		emitter:  cfg.Emitter,
		oracles:  oracles,
		verifier: cfg.AssetVerifier,
		now:      time.Now,
	}
}

func (im *impl) Deploy(c ctx.Ctx, implementation, deployer domain.Address) (*auction.Engine, error) {
	if implementation.IsZero() || deployer.IsZero() {
		return nil, domain.ErrInvalidAddress
	}

	var res *auction.Engine
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		// concurrent deploys by one deployer conflict on its nonce document
		// and the transaction retries with the next nonce
		nonce, err := im.engines.NextNonce(c, deployer)
		if err != nil {
			return err
		}
		address := ethereum.CloneAddress(string(deployer), string(implementation), nonce)
		res = &auction.Engine{
			Address:        domain.Address(address).ToLower(),
			Implementation: implementation,
			Deployer:       deployer,
			CreatedAt:      im.now().UTC(),
		}
		return im.engines.Insert(c, res)
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":            err,
			"implementation": implementation,
			"deployer":       deployer,
		}).Error("Deploy failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Initialize(c ctx.Ctx, engine domain.Address, params auction.InitParams) (*auction.Engine, error) {
	if params.Owner.IsZero() {
		return nil, auction.ErrInvalidOwner
	}
	if params.Oracle.IsZero() {
		return nil, domain.ErrInvalidAddress
	}
	fee := auction.DefaultPlatformFee
	if params.PlatformFee != nil {
		fee = *params.PlatformFee
	}
	if fee < 0 {
		return nil, domain.ErrBadParamInput
	}
	if fee > auction.MaxPlatformFee {
		return nil, auction.ErrFeeTooHigh
	}
	feeCollector := params.FeeCollector
	if feeCollector.IsZero() {
		feeCollector = params.Owner
	}

	var res *auction.Engine
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		e, err := im.findEngine(c, engine)
		if err != nil {
			return err
		}
		if e.Initialized {
			return auction.ErrAlreadyInitialized
		}

		e.Oracle = params.Oracle
		e.Owner = params.Owner
		e.FeeCollector = feeCollector
		e.PlatformFee = fee
		e.Factory = params.Factory
		e.Initialized = true
		if err := im.engines.Upsert(c, e); err != nil {
			return err
		}
		res = e

		return im.emitter.Emit(c, e.Address, auction.EventInitialized, event.Args{
			"oracle":       e.Oracle,
			"owner":        e.Owner,
			"feeCollector": e.FeeCollector,
			"platformFee":  e.PlatformFee,
			"factory":      e.Factory,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"engine": engine,
		}).Error("Initialize failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetEngine(c ctx.Ctx, engine domain.Address) (*auction.Engine, error) {
	return im.findEngine(c, engine)
}

func (im *impl) findEngine(c ctx.Ctx, engine domain.Address) (*auction.Engine, error) {
	e, err := im.engines.FindOne(c, engine)
	if err == domain.ErrNotFound {
		return nil, auction.ErrEngineNotFound
	} else if err != nil {
		return nil, err
	}
	return e, nil
}

// loadEngine returns an engine ready for business operations
func (im *impl) loadEngine(c ctx.Ctx, engine domain.Address) (*auction.Engine, error) {
	e, err := im.findEngine(c, engine)
	if err != nil {
		return nil, err
	}
	if !e.Initialized {
		return nil, auction.ErrNotInitialized
	}
	return e, nil
}

func (im *impl) findAuction(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	a, err := im.auctions.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, auction.ErrAuctionNotFound
	} else if err != nil {
		return nil, err
	}
	return a, nil
}

func validateCreateParams(p auction.CreateParams) error {
	if p.NftContract.IsZero() {
		return auction.ErrInvalidNftContract
	}
	if !p.StartingPrice.IsValid() || p.StartingPrice.IsZero() {
		return auction.ErrInvalidStartingPrice
	}
	if !p.ReservePrice.IsValid() || p.ReservePrice.Cmp(p.StartingPrice) < 0 {
		return auction.ErrReserveBelowStarting
	}
	if p.Duration < auction.MinDuration {
		return auction.ErrDurationTooShort
	}
	if p.Duration > auction.MaxDuration {
		return auction.ErrDurationTooLong
	}
	return nil
}

func (im *impl) CreateAuction(c ctx.Ctx, engine, caller domain.Address, params auction.CreateParams) (*auction.Auction, error) {
	return im.createAuction(c, engine, caller, caller, params, false)
}

func (im *impl) CreateAuctionFor(c ctx.Ctx, engine, operator, seller domain.Address, params auction.CreateParams) (*auction.Auction, error) {
	return im.createAuction(c, engine, operator, seller, params, true)
}

func (im *impl) createAuction(c ctx.Ctx, engine, operator, seller domain.Address, params auction.CreateParams, delegated bool) (*auction.Auction, error) {
	if err := validateCreateParams(params); err != nil {
		return nil, err
	}
	if im.verifier != nil {
		if ok, err := im.verifier.IsERC721(c, params.NftContract); err != nil {
			c.WithFields(log.Fields{
				"err":         err,
				"nftContract": params.NftContract,
			}).Error("verifier.IsERC721 failed")
			return nil, err
		} else if !ok {
			return nil, auction.ErrInvalidNftContract
		}
	}
	paymentToken := params.PaymentToken.ToLower()
	if paymentToken.IsZero() {
		paymentToken = domain.NativeToken
	}

	var res *auction.Auction
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		e, err := im.loadEngine(c, engine)
		if err != nil {
			return err
		}
		// escrow pulls go through the engine unless a factory delegates
		escrowOperator := e.Address
		if delegated {
			if e.Factory.IsZero() || !e.Factory.Equals(operator) {
				return auction.ErrNotFactory
			}
			escrowOperator = e.Factory
		}

		now := im.now().UTC()
		e.AuctionCount++
		a := &auction.Auction{
			Engine:        e.Address,
			AuctionId:     e.AuctionCount,
			Seller:        seller.ToLower(),
			NftContract:   params.NftContract.ToLower(),
			TokenId:       params.TokenId,
			StartingPrice: params.StartingPrice,
			ReservePrice:  params.ReservePrice,
			EndTime:       now.Add(params.Duration),
			PaymentToken:  paymentToken,
			HighestBid:    domain.ZeroAmount,
			State:         auction.StateActive,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := im.nft.TransferFrom(c, escrowOperator, a.Seller, e.Address, nft.Id{Contract: a.NftContract, TokenId: a.TokenId}); err != nil {
			return err
		}
		if err := im.engines.Upsert(c, e); err != nil {
			return err
		}
		if err := im.auctions.Insert(c, a); err != nil {
			return err
		}
		res = a

		return im.emitter.Emit(c, e.Address, auction.EventAuctionCreated, event.Args{
			"auctionId":     a.AuctionId,
			"seller":        a.Seller,
			"nftContract":   a.NftContract,
			"tokenId":       a.TokenId,
			"startingPrice": a.StartingPrice,
			"reservePrice":  a.ReservePrice,
			"endTime":       a.EndTime.Unix(),
			"paymentToken":  a.PaymentToken,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"engine":   engine,
			"operator": operator,
			"seller":   seller,
			"params":   params,
		}).Error("CreateAuction failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) PlaceBid(c ctx.Ctx, id auction.Id, bidder domain.Address, amount domain.Amount, paymentToken domain.Address, value domain.Amount) (*auction.Auction, error) {
	if !amount.IsValid() || amount.IsZero() {
		return nil, auction.ErrInvalidAmount
	}
	if value != "" && !value.IsValid() {
		return nil, auction.ErrInvalidAmount
	}
	paymentToken = paymentToken.ToLower()
	if paymentToken.IsZero() {
		paymentToken = domain.NativeToken
	}
	bidder = bidder.ToLower()

	// valuation is informative, it never blocks a bid
	usdValue := im.usdValueOrZero(c, id.Engine, paymentToken, amount)

	var (
		res       *auction.Auction
		displaced []auction.PendingReturnId
	)
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		displaced = nil

		a, err := im.findAuction(c, id)
		if err != nil {
			return err
		}
		now := im.now()
		if a.State != auction.StateActive || a.IsExpired(now) {
			return auction.ErrAuctionEnded
		}
		if !a.PaymentToken.Equals(paymentToken) {
			return auction.ErrPaymentTokenMismatch
		}
		if a.PaymentToken.IsNative() {
			if value.Cmp(amount) != 0 {
				return auction.ErrETHAmountMismatch
			}
		} else if !value.IsZero() {
			return auction.ErrETHAmountMismatch
		}
		if a.Seller.Equals(bidder) {
			return auction.ErrSellerCannotBid
		}
		if !a.HasBid() {
			if amount.Cmp(a.StartingPrice) < 0 {
				return auction.ErrBelowStartingPrice
			}
		} else if amount.Cmp(a.HighestBid) <= 0 {
			return auction.ErrBidTooLow
		}

		if err := im.bank.Transfer(c, a.PaymentToken, bidder, a.Engine, amount); err != nil {
			return err
		}
		if a.HasBid() {
			pid, err := im.credit(c, a.Engine, a.PaymentToken, a.HighestBidder, a.HighestBid)
			if err != nil {
				return err
			}
			displaced = append(displaced, pid)
		}

		a.HighestBid = amount
		a.HighestBidder = bidder
		a.TotalBids++
		a.UpdatedAt = now.UTC()
		if err := im.auctions.Upsert(c, a); err != nil {
			return err
		}
		if err := im.bids.Upsert(c, &auction.Bid{
			Engine:       a.Engine,
			AuctionId:    a.AuctionId,
			Bidder:       bidder,
			Amount:       amount,
			PaymentToken: a.PaymentToken,
			UsdValue:     usdValue,
			PlacedAt:     now.UTC(),
		}); err != nil {
			return err
		}
		res = a

		return im.emitter.Emit(c, a.Engine, auction.EventBidPlaced, event.Args{
			"auctionId":    a.AuctionId,
			"bidder":       bidder,
			"amount":       amount,
			"paymentToken": a.PaymentToken,
			"usdValue":     usdValue,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"id":     id,
			"bidder": bidder,
			"amount": amount,
		}).Info("PlaceBid rejected")
		return nil, err
	}

	met.BumpSum("bid", 1, "token", string(res.PaymentToken))
	im.pushAll(c, displaced)
	return res, nil
}

func (im *impl) usdValueOrZero(c ctx.Ctx, engine, token domain.Address, amount domain.Amount) domain.Amount {
	v, err := im.GetUSDValue(c, engine, token, amount)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"engine": engine,
			"token":  token,
		}).Warn("bid valuation unavailable")
		return domain.ZeroAmount
	}
	return v
}

func (im *impl) EndAuction(c ctx.Ctx, id auction.Id, caller domain.Address) (*auction.Auction, error) {
	var (
		res      *auction.Auction
		credited []auction.PendingReturnId
		outcome  string
	)
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		credited = nil

		a, err := im.findAuction(c, id)
		if err != nil {
			return err
		}
		// before endTime the answer is always "not ended", whatever the state
		now := im.now()
		if !a.IsExpired(now) {
			return auction.ErrAuctionNotEnded
		}
		if a.State != auction.StateActive {
			return auction.ErrAuctionAlreadyFinalized
		}
		e, err := im.loadEngine(c, a.Engine)
		if err != nil {
			return err
		}

		// state first, then the ledgers
		a.State = auction.StateEnded
		a.UpdatedAt = now.UTC()
		if err := im.auctions.Upsert(c, a); err != nil {
			return err
		}

		asset := nft.Id{Contract: a.NftContract, TokenId: a.TokenId}
		winner, paid := domain.EmptyAddress, domain.ZeroAmount
		switch {
		case a.HasBid() && a.HighestBid.Cmp(a.ReservePrice) >= 0:
			outcome = "sold"
			winner, paid = a.HighestBidder, a.HighestBid
			if err := im.nft.TransferFrom(c, e.Address, e.Address, winner, asset); err != nil {
				return err
			}
			fee, proceeds := splitFee(a.HighestBid, e.PlatformFee)
			for _, p := range []struct {
				to     domain.Address
				amount domain.Amount
			}{{e.FeeCollector, fee}, {a.Seller, proceeds}} {
				if p.amount.IsZero() {
					continue
				}
				pid, err := im.credit(c, e.Address, a.PaymentToken, p.to, p.amount)
				if err != nil {
					return err
				}
				credited = append(credited, pid)
			}
		case a.HasBid():
			outcome = "reserveNotMet"
			if err := im.nft.TransferFrom(c, e.Address, e.Address, a.Seller, asset); err != nil {
				return err
			}
			pid, err := im.credit(c, e.Address, a.PaymentToken, a.HighestBidder, a.HighestBid)
			if err != nil {
				return err
			}
			credited = append(credited, pid)
		default:
			outcome = "noBids"
			if err := im.nft.TransferFrom(c, e.Address, e.Address, a.Seller, asset); err != nil {
				return err
			}
		}
		res = a

		return im.emitter.Emit(c, a.Engine, auction.EventAuctionEnded, event.Args{
			"auctionId":    a.AuctionId,
			"winner":       winner,
			"amount":       paid,
			"paymentToken": a.PaymentToken,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"id":     id,
			"caller": caller,
		}).Info("EndAuction rejected")
		return nil, err
	}

	met.BumpSum("settle", 1, "outcome", outcome)
	im.pushAll(c, credited)
	return res, nil
}

// splitFee returns fee = amount*bps/10000 and the remainder. Both sum to amount.
func splitFee(amount domain.Amount, bps int32) (domain.Amount, domain.Amount) {
	b := amount.BigInt()
	fee := new(big.Int).Mul(b, big.NewInt(int64(bps)))
	fee.Quo(fee, big.NewInt(auction.FeeDenominator))
	return domain.NewAmount(fee), domain.NewAmount(new(big.Int).Sub(b, fee))
}

func (im *impl) CancelAuction(c ctx.Ctx, id auction.Id, caller domain.Address) (*auction.Auction, error) {
	var (
		res      *auction.Auction
		credited []auction.PendingReturnId
	)
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		credited = nil

		a, err := im.findAuction(c, id)
		if err != nil {
			return err
		}
		if !a.Seller.Equals(caller) {
			return auction.ErrNotSeller
		}
		now := im.now()
		if a.State != auction.StateActive || a.IsExpired(now) {
			return auction.ErrAuctionEnded
		}

		a.State = auction.StateCanceled
		a.UpdatedAt = now.UTC()
		if err := im.auctions.Upsert(c, a); err != nil {
			return err
		}
		if err := im.nft.TransferFrom(c, a.Engine, a.Engine, a.Seller, nft.Id{Contract: a.NftContract, TokenId: a.TokenId}); err != nil {
			return err
		}
		if a.HasBid() {
			pid, err := im.credit(c, a.Engine, a.PaymentToken, a.HighestBidder, a.HighestBid)
			if err != nil {
				return err
			}
			credited = append(credited, pid)
		}
		res = a

		return im.emitter.Emit(c, a.Engine, auction.EventAuctionCanceled, event.Args{
			"auctionId": a.AuctionId,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"id":     id,
			"caller": caller,
		}).Info("CancelAuction rejected")
		return nil, err
	}

	im.pushAll(c, credited)
	return res, nil
}

func (im *impl) SetPlatformFee(c ctx.Ctx, engine, caller domain.Address, fee int32) error {
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		e, err := im.loadEngine(c, engine)
		if err != nil {
			return err
		}
		if !e.Owner.Equals(caller) {
			return auction.ErrNotOwner
		}
		if fee < 0 {
			return domain.ErrBadParamInput
		}
		if fee > auction.MaxPlatformFee {
			return auction.ErrFeeTooHigh
		}

		old := e.PlatformFee
		e.PlatformFee = fee
		if err := im.engines.Upsert(c, e); err != nil {
			return err
		}
		return im.emitter.Emit(c, e.Address, auction.EventPlatformFeeUpdated, event.Args{
			"oldFee": old,
			"newFee": fee,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"engine": engine,
			"caller": caller,
			"fee":    fee,
		}).Info("SetPlatformFee rejected")
	}
	return err
}

func (im *impl) GetAuction(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	return im.findAuction(c, id)
}

func (im *impl) GetUserBid(c ctx.Ctx, id auction.Id, bidder domain.Address) (domain.Amount, error) {
	b, err := im.bids.FindOne(c, auction.BidId{Engine: id.Engine, AuctionId: id.AuctionId, Bidder: bidder})
	if err == domain.ErrNotFound {
		return domain.ZeroAmount, nil
	} else if err != nil {
		return domain.ZeroAmount, err
	}
	return b.Amount, nil
}

func (im *impl) GetUSDValue(c ctx.Ctx, engine, token domain.Address, amount domain.Amount) (domain.Amount, error) {
	e, err := im.loadEngine(c, engine)
	if err != nil {
		return domain.ZeroAmount, err
	}
	oracle, ok := im.oracles[e.Oracle.ToLower()]
	if !ok {
		return domain.ZeroAmount, auction.ErrOracleUnavailable
	}
	return oracle.GetUSDValue(c, token, amount)
}

func (im *impl) FindAuctions(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	return im.auctions.FindAll(c, opts...)
}
