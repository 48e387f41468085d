package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	mAuction "github.com/x-xyz/goauction/domain/auction/mocks"
	mBank "github.com/x-xyz/goauction/domain/bank/mocks"
	"github.com/x-xyz/goauction/domain/event"
	mEvent "github.com/x-xyz/goauction/domain/event/mocks"
	"github.com/x-xyz/goauction/domain/factory"
	mFactory "github.com/x-xyz/goauction/domain/factory/mocks"
	"github.com/x-xyz/goauction/domain/keys"
	mDomain "github.com/x-xyz/goauction/domain/mocks"
)

var (
	mockCtx = ctx.Background()

	factoryAddr    = domain.Address("0xfac7000000000000000000000000000000000001")
	owner          = domain.Address("0x0a4e200000000000000000000000000000000001")
	implementation = domain.Address("0x1111111111111111111111111111111111111111")
	priceFeed      = domain.Address("0x0ac1e00000000000000000000000000000000001")
	collector      = domain.Address("0xc011ec7000000000000000000000000000000001")
	seller         = domain.Address("0x5e11e20000000000000000000000000000000001")
	nftContract    = domain.Address("0x7f70000000000000000000000000000000000001")
	engineAddr     = domain.Address("0xe2e0000000000000000000000000000000000001")

	hundredth  = domain.Amount("10000000000000000")
	fiftieth   = domain.Amount("20000000000000000")
	twoHundred = domain.Amount("5000000000000000")
)

type factorySuite struct {
	suite.Suite

	tx       *mDomain.Transactor
	configs  *mFactory.ConfigRepo
	listings *mFactory.ListingRepo
	registry *mFactory.RegistryRepo
	locker   *mFactory.Locker
	auction  *mAuction.UseCase
	bank     *mBank.Ledger
	emitter  *mEvent.Emitter

	im  *impl
	now time.Time
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(factorySuite))
}

func (s *factorySuite) SetupTest() {
	s.tx = &mDomain.Transactor{}
	s.tx.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, run func(ctx.Ctx) error) error { return run(c) },
	).Maybe()
	s.configs = &mFactory.ConfigRepo{}
	s.listings = &mFactory.ListingRepo{}
	s.registry = &mFactory.RegistryRepo{}
	s.locker = &mFactory.Locker{}
	s.auction = &mAuction.UseCase{}
	s.bank = &mBank.Ledger{}
	s.emitter = &mEvent.Emitter{}

	s.now = time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)
	s.im = New(&FactoryUseCaseCfg{
		Address:      factoryAddr,
		Tx:           s.tx,
		ConfigRepo:   s.configs,
		ListingRepo:  s.listings,
		RegistryRepo: s.registry,
		Locker:       s.locker,
		Auction:      s.auction,
		BankLedger:   s.bank,
		Emitter:      s.emitter,
	}).(*impl)
	s.im.now = func() time.Time { return s.now }
}

func (s *factorySuite) TearDownTest() {
	s.configs.AssertExpectations(s.T())
	s.listings.AssertExpectations(s.T())
	s.registry.AssertExpectations(s.T())
	s.locker.AssertExpectations(s.T())
	s.auction.AssertExpectations(s.T())
	s.bank.AssertExpectations(s.T())
	s.emitter.AssertExpectations(s.T())
}

func (s *factorySuite) initialized() *factory.Config {
	return &factory.Config{
		Address:        factoryAddr,
		Owner:          owner,
		Implementation: implementation,
		PriceFeed:      priceFeed,
		FeeCollector:   collector,
		PlatformFee:    auction.DefaultPlatformFee,
		CreationFee:    factory.DefaultCreationFee,
		Initialized:    true,
	}
}

func (s *factorySuite) assetKey(tokenId string) string {
	return keys.RedisKey(keys.PfxFactoryCreate, string(factoryAddr), string(nftContract), tokenId)
}

func (s *factorySuite) params(tokenId string) auction.CreateParams {
	return auction.CreateParams{
		NftContract:   nftContract,
		TokenId:       domain.TokenId(tokenId),
		StartingPrice: "1000000000000000000",
		ReservePrice:  "2000000000000000000",
		Duration:      24 * time.Hour,
	}
}

func (s *factorySuite) TestBootstrap() {
	s.configs.On("FindOne", mockCtx, factoryAddr).Return(nil, domain.ErrNotFound).Once()
	s.configs.On("Upsert", mockCtx, &factory.Config{
		Address:     factoryAddr,
		Owner:       owner,
		PlatformFee: auction.DefaultPlatformFee,
		CreationFee: factory.DefaultCreationFee,
		UpdatedAt:   s.now,
	}).Return(nil).Once()

	cfg, err := s.im.Bootstrap(mockCtx, owner)
	s.Require().NoError(err)
	s.False(cfg.Initialized)

	// existing record is kept
	s.configs.On("FindOne", mockCtx, factoryAddr).Return(s.initialized(), nil).Once()
	cfg, err = s.im.Bootstrap(mockCtx, seller)
	s.Require().NoError(err)
	s.Equal(owner, cfg.Owner)
}

func (s *factorySuite) TestInitialize() {
	params := factory.InitParams{
		Implementation: implementation,
		PriceFeed:      priceFeed,
		FeeCollector:   collector,
		Owner:          owner,
	}
	deployer := domain.Address("0xd0d0000000000000000000000000000000000001")

	_, err := s.im.Initialize(mockCtx, deployer, factory.InitParams{Implementation: implementation})
	s.Equal(factory.ErrInvalidAddress, err)

	s.configs.On("FindOne", mockCtx, factoryAddr).Return(&factory.Config{Address: factoryAddr, Owner: deployer}, nil).Twice()
	_, err = s.im.Initialize(mockCtx, seller, params)
	s.Equal(factory.ErrNotOwner, err)

	s.configs.On("Upsert", mockCtx, mock.MatchedBy(func(cfg *factory.Config) bool {
		return cfg.Initialized && cfg.Owner == owner && cfg.CreationFee == factory.DefaultCreationFee && cfg.PlatformFee == 250
	})).Return(nil).Once()
	s.emitter.On("Emit", mockCtx, factoryAddr, factory.EventInitialized, mock.Anything).Return(nil).Once()
	cfg, err := s.im.Initialize(mockCtx, deployer, params)
	s.Require().NoError(err)
	s.Equal(collector, cfg.FeeCollector)

	s.configs.On("FindOne", mockCtx, factoryAddr).Return(s.initialized(), nil).Once()
	_, err = s.im.Initialize(mockCtx, owner, params)
	s.Equal(factory.ErrAlreadyInitialized, err)
}

func (s *factorySuite) TestCreateAuction() {
	key := s.assetKey("7")
	params := s.params("7")
	regId := factory.RegistryId{Factory: factoryAddr, NftContract: nftContract, TokenId: "7"}

	s.locker.On("Lock", mockCtx, key, defaultLockTtl).Return(nil).Once()
	s.locker.On("Unlock", mockCtx, key).Return(nil).Once()
	s.configs.On("FindOne", mockCtx, factoryAddr).Return(s.initialized(), nil).Once()
	s.registry.On("FindOne", mockCtx, regId).Return(nil, domain.ErrNotFound).Once()

	// 0.02 attached, 0.01 fee to the collector, 0.01 back to the seller
	s.bank.On("Transfer", mockCtx, domain.NativeToken, seller, factoryAddr, fiftieth).Return(nil).Once()
	s.bank.On("Transfer", mockCtx, domain.NativeToken, factoryAddr, collector, hundredth).Return(nil).Once()
	s.bank.On("Transfer", mockCtx, domain.NativeToken, factoryAddr, seller, hundredth).Return(nil).Once()

	s.auction.On("Deploy", mockCtx, implementation, factoryAddr).Return(&auction.Engine{Address: engineAddr}, nil).Once()
	s.auction.On("Initialize", mockCtx, engineAddr, mock.MatchedBy(func(p auction.InitParams) bool {
		return p.Oracle == priceFeed && p.Owner == owner && p.FeeCollector == collector &&
			p.Factory == factoryAddr && p.PlatformFee != nil && *p.PlatformFee == 250
	})).Return(&auction.Engine{Address: engineAddr, Initialized: true}, nil).Once()
	s.auction.On("CreateAuctionFor", mockCtx, engineAddr, factoryAddr, seller, params).
		Return(&auction.Auction{Engine: engineAddr, AuctionId: 1}, nil).Once()

	s.listings.On("Count", mockCtx, factoryAddr).Return(4, nil).Once()
	s.listings.On("Insert", mockCtx, &factory.Listing{
		Index:       4,
		Factory:     factoryAddr,
		Auction:     engineAddr,
		NftContract: nftContract,
		TokenId:     "7",
		Creator:     seller,
		AuctionId:   1,
		CreatedAt:   s.now,
	}).Return(nil).Once()
	s.registry.On("Upsert", mockCtx, &factory.RegistryEntry{
		Factory:     factoryAddr,
		NftContract: nftContract,
		TokenId:     "7",
		Auction:     engineAddr,
		AuctionId:   1,
		UpdatedAt:   s.now,
	}).Return(nil).Once()
	s.configs.On("Upsert", mockCtx, mock.MatchedBy(func(cfg *factory.Config) bool {
		return cfg.AuctionCount == 1
	})).Return(nil).Once()
	s.emitter.On("Emit", mockCtx, factoryAddr, factory.EventAuctionCreated, event.Args{
		"auction":     engineAddr,
		"nftContract": nftContract,
		"tokenId":     domain.TokenId("7"),
		"creator":     seller,
	}).Return(nil).Once()

	l, err := s.im.CreateAuction(mockCtx, seller, fiftieth, params)
	s.Require().NoError(err)
	s.Equal(engineAddr, l.Auction)
	s.Equal(int64(4), l.Index)
}

func (s *factorySuite) TestCreateAuctionExists() {
	key := s.assetKey("7")
	regId := factory.RegistryId{Factory: factoryAddr, NftContract: nftContract, TokenId: "7"}
	id := auction.Id{Engine: engineAddr, AuctionId: 1}

	s.locker.On("Lock", mockCtx, key, defaultLockTtl).Return(nil).Once()
	s.locker.On("Unlock", mockCtx, key).Return(nil).Once()
	s.configs.On("FindOne", mockCtx, factoryAddr).Return(s.initialized(), nil).Once()
	s.registry.On("FindOne", mockCtx, regId).Return(&factory.RegistryEntry{Auction: engineAddr, AuctionId: 1}, nil).Once()
	s.auction.On("GetAuction", mockCtx, id).Return(&auction.Auction{State: auction.StateActive}, nil).Once()

	_, err := s.im.CreateAuction(mockCtx, seller, fiftieth, s.params("7"))
	s.Equal(factory.ErrAuctionExists, err)
}

func (s *factorySuite) TestCreateAuctionReplacesEndedEntry() {
	key := s.assetKey("7")
	params := s.params("7")
	regId := factory.RegistryId{Factory: factoryAddr, NftContract: nftContract, TokenId: "7"}
	oldEngine := domain.Address("0xe2e0000000000000000000000000000000000002")
	oldId := auction.Id{Engine: oldEngine, AuctionId: 1}

	s.locker.On("Lock", mockCtx, key, defaultLockTtl).Return(nil).Once()
	s.locker.On("Unlock", mockCtx, key).Return(nil).Once()
	s.configs.On("FindOne", mockCtx, factoryAddr).Return(s.initialized(), nil).Once()
	s.registry.On("FindOne", mockCtx, regId).Return(&factory.RegistryEntry{
		Factory:     factoryAddr,
		NftContract: nftContract,
		TokenId:     "7",
		Auction:     oldEngine,
		AuctionId:   1,
	}, nil).Once()
	s.auction.On("GetAuction", mockCtx, oldId).Return(&auction.Auction{Engine: oldEngine, AuctionId: 1, State: auction.StateEnded}, nil).Once()

	s.bank.On("Transfer", mockCtx, domain.NativeToken, seller, factoryAddr, hundredth).Return(nil).Once()
	s.bank.On("Transfer", mockCtx, domain.NativeToken, factoryAddr, collector, hundredth).Return(nil).Once()

	s.auction.On("Deploy", mockCtx, implementation, factoryAddr).Return(&auction.Engine{Address: engineAddr}, nil).Once()
	s.auction.On("Initialize", mockCtx, engineAddr, mock.Anything).Return(&auction.Engine{Address: engineAddr, Initialized: true}, nil).Once()
	s.auction.On("CreateAuctionFor", mockCtx, engineAddr, factoryAddr, seller, params).
		Return(&auction.Auction{Engine: engineAddr, AuctionId: 1}, nil).Once()

	s.listings.On("Count", mockCtx, factoryAddr).Return(1, nil).Once()
	s.listings.On("Insert", mockCtx, mock.MatchedBy(func(l *factory.Listing) bool {
		return l.Index == 1 && l.Auction == engineAddr
	})).Return(nil).Once()
	// the finished auction's entry is overwritten by the new one
	s.registry.On("Upsert", mockCtx, &factory.RegistryEntry{
		Factory:     factoryAddr,
		NftContract: nftContract,
		TokenId:     "7",
		Auction:     engineAddr,
		AuctionId:   1,
		UpdatedAt:   s.now,
	}).Return(nil).Once()
	s.configs.On("Upsert", mockCtx, mock.AnythingOfType("*factory.Config")).Return(nil).Once()
	s.emitter.On("Emit", mockCtx, factoryAddr, factory.EventAuctionCreated, mock.Anything).Return(nil).Once()

	l, err := s.im.CreateAuction(mockCtx, seller, hundredth, params)
	s.Require().NoError(err)
	s.Equal(engineAddr, l.Auction)
	s.Equal(int64(1), l.Index)
}

func (s *factorySuite) TestCreateAuctionInsufficientFee() {
	key := s.assetKey("8")
	regId := factory.RegistryId{Factory: factoryAddr, NftContract: nftContract, TokenId: "8"}

	s.locker.On("Lock", mockCtx, key, defaultLockTtl).Return(nil).Once()
	s.locker.On("Unlock", mockCtx, key).Return(nil).Once()
	s.configs.On("FindOne", mockCtx, factoryAddr).Return(s.initialized(), nil).Once()
	s.registry.On("FindOne", mockCtx, regId).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.CreateAuction(mockCtx, seller, twoHundred, s.params("8"))
	s.Equal(factory.ErrInsufficientCreationFee, err)
}

func (s *factorySuite) TestCreateAuctionInProgress() {
	s.locker.On("Lock", mockCtx, s.assetKey("9"), defaultLockTtl).Return(factory.ErrCreationInProgress).Once()

	_, err := s.im.CreateAuction(mockCtx, seller, hundredth, s.params("9"))
	s.Equal(factory.ErrCreationInProgress, err)
}

func (s *factorySuite) TestCreateAuctionNotInitialized() {
	s.locker.On("Lock", mockCtx, s.assetKey("9"), defaultLockTtl).Return(nil).Once()
	s.locker.On("Unlock", mockCtx, s.assetKey("9")).Return(nil).Once()
	s.configs.On("FindOne", mockCtx, factoryAddr).Return(&factory.Config{Address: factoryAddr, Owner: owner}, nil).Once()

	_, err := s.im.CreateAuction(mockCtx, seller, hundredth, s.params("9"))
	s.Equal(factory.ErrNotInitialized, err)

	_, err = s.im.CreateAuction(mockCtx, seller, hundredth, auction.CreateParams{TokenId: "9"})
	s.Equal(auction.ErrInvalidNftContract, err)
}

func (s *factorySuite) TestAuctionExists() {
	regId := factory.RegistryId{Factory: factoryAddr, NftContract: nftContract, TokenId: "7"}
	id := auction.Id{Engine: engineAddr, AuctionId: 1}
	entry := &factory.RegistryEntry{Auction: engineAddr, AuctionId: 1}

	s.registry.On("FindOne", mockCtx, regId).Return(entry, nil).Times(3)
	s.auction.On("GetAuction", mockCtx, id).Return(&auction.Auction{State: auction.StateActive}, nil).Once()
	s.auction.On("GetAuction", mockCtx, id).Return(&auction.Auction{State: auction.StateEnded}, nil).Once()

	ok, err := s.im.AuctionExists(mockCtx, nftContract, "7")
	s.Require().NoError(err)
	s.True(ok)

	// a finished auction frees the asset
	ok, err = s.im.AuctionExists(mockCtx, nftContract, "7")
	s.Require().NoError(err)
	s.False(ok)

	addr, err := s.im.GetAuctionAddress(mockCtx, nftContract, "7")
	s.Require().NoError(err)
	s.Equal(engineAddr, addr)

	s.registry.On("FindOne", mockCtx, factory.RegistryId{Factory: factoryAddr, NftContract: nftContract, TokenId: "1"}).Return(nil, domain.ErrNotFound).Once()
	addr, err = s.im.GetAuctionAddress(mockCtx, nftContract, "1")
	s.Require().NoError(err)
	s.Equal(domain.EmptyAddress, addr)
}

func (s *factorySuite) TestEnumeration() {
	listings := []*factory.Listing{
		{Index: 0, Auction: "0xa1"},
		{Index: 1, Auction: "0xa2"},
	}
	s.listings.On("FindAll", mockCtx, factoryAddr, 0, 0).Return(listings, nil).Once()
	s.listings.On("FindAll", mockCtx, factoryAddr, 1, 1).Return(listings[1:], nil).Once()
	s.listings.On("FindAll", mockCtx, factoryAddr, 5, 1).Return([]*factory.Listing{}, nil).Once()
	s.listings.On("FindByCreator", mockCtx, factoryAddr, seller).Return(listings[:1], nil).Once()
	s.listings.On("Count", mockCtx, factoryAddr).Return(2, nil).Once()

	all, err := s.im.GetAllAuctions(mockCtx)
	s.Require().NoError(err)
	s.Equal([]domain.Address{"0xa1", "0xa2"}, all)

	page, err := s.im.GetAuctionsByPage(mockCtx, 1, 1)
	s.Require().NoError(err)
	s.Equal([]domain.Address{"0xa2"}, page)

	page, err = s.im.GetAuctionsByPage(mockCtx, 5, 1)
	s.Require().NoError(err)
	s.Empty(page)

	page, err = s.im.GetAuctionsByPage(mockCtx, 0, 0)
	s.Require().NoError(err)
	s.Empty(page)

	mine, err := s.im.GetUserAuctions(mockCtx, seller)
	s.Require().NoError(err)
	s.Equal([]domain.Address{"0xa1"}, mine)

	n, err := s.im.AllAuctionsLength(mockCtx)
	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *factorySuite) TestGetAuctionInfo() {
	s.listings.On("FindOne", mockCtx, factoryAddr, engineAddr).Return(&factory.Listing{
		Auction:     engineAddr,
		AuctionId:   1,
		NftContract: nftContract,
		TokenId:     "7",
		Creator:     seller,
	}, nil).Once()
	s.auction.On("GetAuction", mockCtx, auction.Id{Engine: engineAddr, AuctionId: 1}).Return(&auction.Auction{State: auction.StateActive}, nil).Once()

	info, err := s.im.GetAuctionInfo(mockCtx, engineAddr)
	s.Require().NoError(err)
	s.Equal(&factory.AuctionInfo{NftContract: nftContract, TokenId: "7", Creator: seller, IsActive: true}, info)

	s.listings.On("FindOne", mockCtx, factoryAddr, domain.Address("0xa9")).Return(nil, domain.ErrNotFound).Once()
	_, err = s.im.GetAuctionInfo(mockCtx, "0xa9")
	s.Equal(domain.ErrNotFound, err)
}

func (s *factorySuite) TestUpdates() {
	newImpl := domain.Address("0x2222222222222222222222222222222222222222")
	s.configs.On("FindOne", mockCtx, factoryAddr).Return(s.initialized(), nil)

	s.Equal(factory.ErrNotOwner, s.im.UpdateImplementation(mockCtx, seller, newImpl))
	s.Equal(factory.ErrInvalidAddress, s.im.UpdateImplementation(mockCtx, owner, domain.EmptyAddress))
	s.Equal(factory.ErrFeeTooHigh, s.im.UpdatePlatformFee(mockCtx, owner, 1001))
	s.Equal(domain.ErrBadParamInput, s.im.UpdateCreationFee(mockCtx, owner, "-1"))
	s.Equal(factory.ErrInvalidAddress, s.im.UpdateFeeCollector(mockCtx, owner, ""))

	s.configs.On("Upsert", mockCtx, mock.MatchedBy(func(cfg *factory.Config) bool {
		return cfg.Implementation == newImpl
	})).Return(nil).Once()
	s.emitter.On("Emit", mockCtx, factoryAddr, factory.EventImplementationUpdated, event.Args{
		"old": implementation,
		"new": newImpl,
	}).Return(nil).Once()
	s.Require().NoError(s.im.UpdateImplementation(mockCtx, owner, newImpl))

	s.configs.On("Upsert", mockCtx, mock.MatchedBy(func(cfg *factory.Config) bool {
		return cfg.PlatformFee == 500
	})).Return(nil).Once()
	s.emitter.On("Emit", mockCtx, factoryAddr, factory.EventPlatformFeeUpdated, event.Args{
		"old": int32(250),
		"new": int32(500),
	}).Return(nil).Once()
	s.Require().NoError(s.im.UpdatePlatformFee(mockCtx, owner, 500))

	s.configs.On("Upsert", mockCtx, mock.MatchedBy(func(cfg *factory.Config) bool {
		return cfg.CreationFee == fiftieth
	})).Return(nil).Once()
	s.emitter.On("Emit", mockCtx, factoryAddr, factory.EventCreationFeeUpdated, event.Args{
		"old": factory.DefaultCreationFee,
		"new": fiftieth,
	}).Return(nil).Once()
	s.Require().NoError(s.im.UpdateCreationFee(mockCtx, owner, fiftieth))
}

func (s *factorySuite) TestEmergencyWithdraw() {
	s.configs.On("FindOne", mockCtx, factoryAddr).Return(s.initialized(), nil)

	_, err := s.im.EmergencyWithdraw(mockCtx, seller)
	s.Equal(factory.ErrNotOwner, err)

	s.bank.On("BalanceOf", mockCtx, domain.NativeToken, factoryAddr).Return(domain.ZeroAmount, nil).Once()
	_, err = s.im.EmergencyWithdraw(mockCtx, owner)
	s.Equal(factory.ErrNothingToWithdraw, err)

	s.bank.On("BalanceOf", mockCtx, domain.NativeToken, factoryAddr).Return(hundredth, nil).Once()
	s.bank.On("Transfer", mockCtx, domain.NativeToken, factoryAddr, owner, hundredth).Return(nil).Once()
	s.emitter.On("Emit", mockCtx, factoryAddr, factory.EventEmergencyWithdrawn, event.Args{
		"to":     owner,
		"amount": hundredth,
	}).Return(nil).Once()
	amount, err := s.im.EmergencyWithdraw(mockCtx, owner)
	s.Require().NoError(err)
	s.Equal(hundredth, amount)
}
