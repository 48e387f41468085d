package auction

import (
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

const (
	MinDuration = time.Hour
	MaxDuration = 30 * 24 * time.Hour

	DefaultPlatformFee = int32(250)
	MaxPlatformFee     = int32(1000)
	FeeDenominator     = int64(10000)
)

type State int

const (
	StateActive State = iota
	StateEnded
	StateCanceled
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateEnded:
		return "ended"
	case StateCanceled:
		return "canceled"
	}
	return "unknown"
}

func (s State) IsTerminal() bool {
	return s == StateEnded || s == StateCanceled
}

// Engine is one auction engine instance. Instances share nothing: each holds
// its own escrow account (its address), fee settings and auction counter.
type Engine struct {
	Address        domain.Address `json:"address" bson:"address"`
	Implementation domain.Address `json:"implementation" bson:"implementation"`
	Deployer       domain.Address `json:"deployer" bson:"deployer"`
	// Factory may create auctions on behalf of sellers.
	Factory      domain.Address `json:"factory" bson:"factory"`
	Oracle       domain.Address `json:"oracle" bson:"oracle"`
	Owner        domain.Address `json:"owner" bson:"owner"`
	FeeCollector domain.Address `json:"feeCollector" bson:"feeCollector"`
	PlatformFee  int32          `json:"platformFee" bson:"platformFee"`
	Initialized  bool           `json:"initialized" bson:"initialized"`
	AuctionCount int64          `json:"auctionCount" bson:"auctionCount"`
	CreatedAt    time.Time      `json:"createdAt" bson:"createdAt"`
}

type InitParams struct {
	Oracle       domain.Address
	Owner        domain.Address
	FeeCollector domain.Address
	PlatformFee  *int32
	Factory      domain.Address
}

type Id struct {
	Engine    domain.Address `json:"engine" bson:"engine"`
	AuctionId int64          `json:"auctionId" bson:"auctionId"`
}

type Auction struct {
	Engine        domain.Address `json:"engine" bson:"engine"`
	AuctionId     int64          `json:"auctionId" bson:"auctionId"`
	Seller        domain.Address `json:"seller" bson:"seller"`
	NftContract   domain.Address `json:"nftContract" bson:"nftContract"`
	TokenId       domain.TokenId `json:"tokenId" bson:"tokenId"`
	StartingPrice domain.Amount  `json:"startingPrice" bson:"startingPrice"`
	ReservePrice  domain.Amount  `json:"reservePrice" bson:"reservePrice"`
	EndTime       time.Time      `json:"endTime" bson:"endTime"`
	PaymentToken  domain.Address `json:"paymentToken" bson:"paymentToken"`
	HighestBid    domain.Amount  `json:"highestBid" bson:"highestBid"`
	HighestBidder domain.Address `json:"highestBidder" bson:"highestBidder"`
	TotalBids     int64          `json:"totalBids" bson:"totalBids"`
	State         State          `json:"state" bson:"state"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (a *Auction) ToId() Id {
	return Id{Engine: a.Engine, AuctionId: a.AuctionId}
}

func (a *Auction) HasBid() bool {
	return !a.HighestBidder.IsZero()
}

// IsExpired reports whether bidding has closed at now.
func (a *Auction) IsExpired(now time.Time) bool {
	return !now.Before(a.EndTime)
}

type CreateParams struct {
	NftContract   domain.Address `json:"nftContract"`
	TokenId       domain.TokenId `json:"tokenId"`
	StartingPrice domain.Amount  `json:"startingPrice"`
	ReservePrice  domain.Amount  `json:"reservePrice"`
	Duration      time.Duration  `json:"duration"`
	PaymentToken  domain.Address `json:"paymentToken"`
}

// Bid is the per-bidder ledger entry: the bidder's last recorded amount.
type Bid struct {
	Engine       domain.Address `json:"engine" bson:"engine"`
	AuctionId    int64          `json:"auctionId" bson:"auctionId"`
	Bidder       domain.Address `json:"bidder" bson:"bidder"`
	Amount       domain.Amount  `json:"amount" bson:"amount"`
	PaymentToken domain.Address `json:"paymentToken" bson:"paymentToken"`
	// UsdValue is the 18 decimals USD valuation taken when the bid was placed.
	UsdValue domain.Amount `json:"usdValue" bson:"usdValue"`
	PlacedAt time.Time     `json:"placedAt" bson:"placedAt"`
}

type BidId struct {
	Engine    domain.Address `json:"engine" bson:"engine"`
	AuctionId int64          `json:"auctionId" bson:"auctionId"`
	Bidder    domain.Address `json:"bidder" bson:"bidder"`
}

// PendingReturn is value the engine's escrow owes a beneficiary. It is
// credited in the same transaction as the state change that created the debt
// and cleared when the payment goes through, by push or by Withdraw.
type PendingReturn struct {
	Engine      domain.Address `json:"engine" bson:"engine"`
	Token       domain.Address `json:"token" bson:"token"`
	Beneficiary domain.Address `json:"beneficiary" bson:"beneficiary"`
	Amount      domain.Amount  `json:"amount" bson:"amount"`
	Attempts    int            `json:"attempts" bson:"attempts"`
	LastError   string         `json:"lastError" bson:"lastError"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type PendingReturnId struct {
	Engine      domain.Address `json:"engine" bson:"engine"`
	Token       domain.Address `json:"token" bson:"token"`
	Beneficiary domain.Address `json:"beneficiary" bson:"beneficiary"`
}

func (p *PendingReturn) ToId() PendingReturnId {
	return PendingReturnId{Engine: p.Engine, Token: p.Token, Beneficiary: p.Beneficiary}
}

type FindAllOptions struct {
	Engine    *domain.Address
	Seller    *domain.Address
	State     *State
	EndTimeLT *time.Time
	Offset    *int32
	Limit     *int32
	Sort      *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithEngine(engine domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		e := engine.ToLower()
		options.Engine = &e
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		s := seller.ToLower()
		options.Seller = &s
		return nil
	}
}

func WithState(state State) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.State = &state
		return nil
	}
}

func WithEndTimeLT(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.EndTimeLT = &t
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

type EngineRepo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Engine, error)
	Insert(c ctx.Ctx, e *Engine) error
	Upsert(c ctx.Ctx, e *Engine) error
	// NextNonce hands out the clone nonces of deployer in order, from 0.
	NextNonce(c ctx.Ctx, deployer domain.Address) (uint64, error)
}

type Repo interface {
	FindOne(c ctx.Ctx, id Id) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	Insert(c ctx.Ctx, a *Auction) error
	Upsert(c ctx.Ctx, a *Auction) error
}

type BidRepo interface {
	FindOne(c ctx.Ctx, id BidId) (*Bid, error)
	FindAll(c ctx.Ctx, id Id) ([]*Bid, error)
	Upsert(c ctx.Ctx, b *Bid) error
}

type PendingReturnRepo interface {
	FindOne(c ctx.Ctx, id PendingReturnId) (*PendingReturn, error)
	FindAll(c ctx.Ctx, offset, limit int) ([]*PendingReturn, error)
	Upsert(c ctx.Ctx, p *PendingReturn) error
	Remove(c ctx.Ctx, id PendingReturnId) error
}

// AssetVerifier checks a contract for the ERC-721 interface
type AssetVerifier interface {
	IsERC721(c ctx.Ctx, contract domain.Address) (bool, error)
}

type UseCase interface {
	// Deploy spawns an uninitialized engine from implementation.
	Deploy(c ctx.Ctx, implementation, deployer domain.Address) (*Engine, error)
	Initialize(c ctx.Ctx, engine domain.Address, params InitParams) (*Engine, error)
	GetEngine(c ctx.Ctx, engine domain.Address) (*Engine, error)

	CreateAuction(c ctx.Ctx, engine, caller domain.Address, params CreateParams) (*Auction, error)
	CreateAuctionFor(c ctx.Ctx, engine, operator, seller domain.Address, params CreateParams) (*Auction, error)
	PlaceBid(c ctx.Ctx, id Id, bidder domain.Address, amount domain.Amount, paymentToken domain.Address, value domain.Amount) (*Auction, error)
	EndAuction(c ctx.Ctx, id Id, caller domain.Address) (*Auction, error)
	CancelAuction(c ctx.Ctx, id Id, caller domain.Address) (*Auction, error)
	SetPlatformFee(c ctx.Ctx, engine, caller domain.Address, fee int32) error

	GetAuction(c ctx.Ctx, id Id) (*Auction, error)
	GetUserBid(c ctx.Ctx, id Id, bidder domain.Address) (domain.Amount, error)
	GetUSDValue(c ctx.Ctx, engine, token domain.Address, amount domain.Amount) (domain.Amount, error)
	FindAuctions(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)

	GetPendingReturn(c ctx.Ctx, id PendingReturnId) (domain.Amount, error)
	FindPendingReturns(c ctx.Ctx, offset, limit int) ([]*PendingReturn, error)
	Withdraw(c ctx.Ctx, engine, caller, token domain.Address) (domain.Amount, error)
	// PushPendingReturn tries to pay one outstanding return. A failed payment
	// is recorded on the return and reported as not paid, not as an error.
	PushPendingReturn(c ctx.Ctx, id PendingReturnId) (bool, error)
	// RetryPendingReturns pushes up to limit outstanding returns and reports how
	// many were paid.
	RetryPendingReturns(c ctx.Ctx, limit int) (int, error)
}
