package factory

import (
	"errors"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

// DefaultCreationFee is 0.01 of the native currency.
const DefaultCreationFee = domain.Amount("10000000000000000")

const (
	EventAuctionCreated        = "AuctionCreated"
	EventImplementationUpdated = "ImplementationUpdated"
	EventPriceFeedUpdated      = "PriceFeedUpdated"
	EventPlatformFeeUpdated    = "PlatformFeeUpdated"
	EventCreationFeeUpdated    = "CreationFeeUpdated"
	EventFeeCollectorUpdated   = "FeeCollectorUpdated"
	EventEmergencyWithdrawn    = "EmergencyWithdrawn"
	EventInitialized           = "Initialized"
)

var (
	ErrAuctionExists           = errors.New("Auction exists")
	ErrInsufficientCreationFee = errors.New("Insufficient creation fee")
	ErrCreationInProgress      = errors.New("Auction creation in progress")
	ErrNotOwner                = errors.New("Not owner")
	ErrInvalidAddress          = errors.New("Invalid address")
	ErrFeeTooHigh              = errors.New("Fee too high")
	ErrAlreadyInitialized      = errors.New("Already initialized")
	ErrNotInitialized          = errors.New("Not initialized")
	ErrNothingToWithdraw       = errors.New("Nothing to withdraw")
)

// Config is the factory's mutable configuration. Engines copy the relevant
// fields at creation time and never see later changes.
type Config struct {
	Address        domain.Address `json:"address" bson:"address"`
	Owner          domain.Address `json:"owner" bson:"owner"`
	Implementation domain.Address `json:"implementation" bson:"implementation"`
	PriceFeed      domain.Address `json:"priceFeed" bson:"priceFeed"`
	FeeCollector   domain.Address `json:"feeCollector" bson:"feeCollector"`
	PlatformFee    int32          `json:"platformFee" bson:"platformFee"`
	CreationFee    domain.Amount  `json:"creationFee" bson:"creationFee"`
	Initialized    bool           `json:"initialized" bson:"initialized"`
	AuctionCount   int64          `json:"auctionCount" bson:"auctionCount"`
	UpdatedAt      time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type InitParams struct {
	Implementation domain.Address `json:"implementation"`
	PriceFeed      domain.Address `json:"priceFeed"`
	FeeCollector   domain.Address `json:"feeCollector"`
	Owner          domain.Address `json:"owner"`
}

// Listing is one entry of the append-only list of created auctions.
type Listing struct {
	Index       int64          `json:"index" bson:"index"`
	Factory     domain.Address `json:"factory" bson:"factory"`
	Auction     domain.Address `json:"auction" bson:"auction"`
	NftContract domain.Address `json:"nftContract" bson:"nftContract"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
	Creator     domain.Address `json:"creator" bson:"creator"`
	AuctionId   int64          `json:"auctionId" bson:"auctionId"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
}

// RegistryEntry maps an asset to the engine auctioning it.
type RegistryEntry struct {
	Factory     domain.Address `json:"factory" bson:"factory"`
	NftContract domain.Address `json:"nftContract" bson:"nftContract"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
	Auction     domain.Address `json:"auction" bson:"auction"`
	AuctionId   int64          `json:"auctionId" bson:"auctionId"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type RegistryId struct {
	Factory     domain.Address `json:"factory" bson:"factory"`
	NftContract domain.Address `json:"nftContract" bson:"nftContract"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
}

type AuctionInfo struct {
	NftContract domain.Address `json:"nftContract"`
	TokenId     domain.TokenId `json:"tokenId"`
	Creator     domain.Address `json:"creator"`
	IsActive    bool           `json:"isActive"`
}

type ConfigRepo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Config, error)
	Upsert(c ctx.Ctx, cfg *Config) error
}

type ListingRepo interface {
	FindOne(c ctx.Ctx, factory, auction domain.Address) (*Listing, error)
	FindAll(c ctx.Ctx, factory domain.Address, offset, limit int) ([]*Listing, error)
	FindByCreator(c ctx.Ctx, factory, creator domain.Address) ([]*Listing, error)
	Count(c ctx.Ctx, factory domain.Address) (int, error)
	Insert(c ctx.Ctx, l *Listing) error
}

type RegistryRepo interface {
	FindOne(c ctx.Ctx, id RegistryId) (*RegistryEntry, error)
	Upsert(c ctx.Ctx, e *RegistryEntry) error
}

// Locker guards one asset against concurrent creation attempts.
type Locker interface {
	Lock(c ctx.Ctx, key string, ttl time.Duration) error
	Unlock(c ctx.Ctx, key string) error
}

type UseCase interface {
	Address() domain.Address
	// Bootstrap persists the factory record if it does not exist yet.
	Bootstrap(c ctx.Ctx, owner domain.Address) (*Config, error)
	Initialize(c ctx.Ctx, caller domain.Address, params InitParams) (*Config, error)
	Get(c ctx.Ctx) (*Config, error)

	CreateAuction(c ctx.Ctx, caller domain.Address, value domain.Amount, params auction.CreateParams) (*Listing, error)

	GetAllAuctions(c ctx.Ctx) ([]domain.Address, error)
	GetAuctionsByPage(c ctx.Ctx, offset, limit int) ([]domain.Address, error)
	GetUserAuctions(c ctx.Ctx, user domain.Address) ([]domain.Address, error)
	AuctionExists(c ctx.Ctx, nftContract domain.Address, tokenId domain.TokenId) (bool, error)
	GetAuctionAddress(c ctx.Ctx, nftContract domain.Address, tokenId domain.TokenId) (domain.Address, error)
	GetAuctionInfo(c ctx.Ctx, auction domain.Address) (*AuctionInfo, error)
	AllAuctionsLength(c ctx.Ctx) (int, error)

	UpdateImplementation(c ctx.Ctx, caller, implementation domain.Address) error
	UpdatePriceFeed(c ctx.Ctx, caller, priceFeed domain.Address) error
	UpdatePlatformFee(c ctx.Ctx, caller domain.Address, fee int32) error
	UpdateCreationFee(c ctx.Ctx, caller domain.Address, fee domain.Amount) error
	UpdateFeeCollector(c ctx.Ctx, caller, feeCollector domain.Address) error
	EmergencyWithdraw(c ctx.Ctx, caller domain.Address) (domain.Amount, error)
}
