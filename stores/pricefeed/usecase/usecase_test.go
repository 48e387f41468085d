package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/event"
	mEvent "github.com/x-xyz/goauction/domain/event/mocks"
	mDomain "github.com/x-xyz/goauction/domain/mocks"
	"github.com/x-xyz/goauction/domain/pricefeed"
	mPricefeed "github.com/x-xyz/goauction/domain/pricefeed/mocks"
)

var (
	mockCtx = ctx.Background()

	oracleAddr = domain.Address("0x0ac1e00000000000000000000000000000000001")
	owner      = domain.Address("0x0000000000000000000000000000000000000a11")
	stranger   = domain.Address("0x0000000000000000000000000000000000000b0b")
	ethFeed    = domain.Address("0xfeed000000000000000000000000000000000001")
	tokenFeed  = domain.Address("0xfeed000000000000000000000000000000000002")
	token      = domain.Address("0x70c0000000000000000000000000000000000003")
)

func ether(n int64) domain.Amount {
	return domain.NewAmount(new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)))
}

func price8(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(100000000))
}

type usecaseSuite struct {
	suite.Suite
	tx      *mDomain.Transactor
	oracles *mPricefeed.OracleRepo
	feeds   *mPricefeed.FeedRepo
	source  *mPricefeed.Source
	emitter *mEvent.Emitter
	im      *impl
	now     time.Time
	oracle  *pricefeed.Oracle
}

func (s *usecaseSuite) SetupTest() {
	s.tx = &mDomain.Transactor{}
	s.oracles = &mPricefeed.OracleRepo{}
	s.feeds = &mPricefeed.FeedRepo{}
	s.source = &mPricefeed.Source{}
	s.emitter = &mEvent.Emitter{}
	s.im = New(&PriceFeedUseCaseCfg{
		Address:    oracleAddr,
		Tx:         s.tx,
		OracleRepo: s.oracles,
		FeedRepo:   s.feeds,
		Source:     s.source,
		Emitter:    s.emitter,
	}).(*impl)
	s.now = time.Date(2022, 8, 1, 12, 0, 0, 0, time.UTC)
	s.im.now = func() time.Time { return s.now }
	s.oracle = &pricefeed.Oracle{Address: oracleAddr, Owner: owner, NativeFeed: ethFeed, MaxAge: time.Hour}

	s.tx.On("RunWithTransaction", mockCtx, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	}).Maybe()
}

func (s *usecaseSuite) TearDownTest() {
	s.oracles.AssertExpectations(s.T())
	s.feeds.AssertExpectations(s.T())
	s.source.AssertExpectations(s.T())
	s.emitter.AssertExpectations(s.T())
}

func TestUsecaseSuite(t *testing.T) {
	suite.Run(t, new(usecaseSuite))
}

func (s *usecaseSuite) registered(tokenAddr, feed domain.Address, answer *big.Int, updatedAt time.Time) {
	s.registeredWithDecimals(tokenAddr, feed, 8, answer, updatedAt)
}

func (s *usecaseSuite) registeredWithDecimals(tokenAddr, feed domain.Address, decimals uint8, answer *big.Int, updatedAt time.Time) {
	s.oracles.On("FindOne", mockCtx, oracleAddr).Return(s.oracle, nil).Once()
	s.feeds.On("FindOne", mockCtx, pricefeed.FeedId{Oracle: oracleAddr, Token: tokenAddr}).Return(&pricefeed.Feed{
		Oracle:   oracleAddr,
		Token:    tokenAddr,
		Feed:     feed,
		Decimals: decimals,
	}, nil).Once()
	s.source.On("LatestRoundData", mockCtx, feed).Return(&pricefeed.Round{
		RoundId:   big.NewInt(1),
		Answer:    answer,
		UpdatedAt: updatedAt,
	}, nil).Once()
}

func (s *usecaseSuite) TestUsdValueOfOneEther() {
	s.registered(domain.NativeToken, ethFeed, price8(2000), s.now)

	res, err := s.im.GetUSDValue(mockCtx, domain.NativeToken, ether(1))
	s.NoError(err)
	s.Equal(ether(2000), res)
}

func (s *usecaseSuite) TestUsdValueOfToken() {
	s.registered(token, tokenFeed, price8(1), s.now)

	res, err := s.im.GetUSDValue(mockCtx, token, ether(100))
	s.NoError(err)
	s.Equal(ether(100), res)
}

func (s *usecaseSuite) TestUsdValueScalesByFeedDecimals() {
	tests := []struct {
		desc     string
		decimals uint8
		answer   *big.Int
	}{
		{"6 decimals", 6, new(big.Int).Mul(big.NewInt(2000), big.NewInt(1000000))},
		{"8 decimals", 8, price8(2000)},
		{"18 decimals", 18, new(big.Int).Mul(big.NewInt(2000), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))},
	}
	for _, t := range tests {
		s.registeredWithDecimals(domain.NativeToken, ethFeed, t.decimals, t.answer, s.now)

		res, err := s.im.GetUSDValue(mockCtx, domain.NativeToken, ether(1))
		s.NoError(err, t.desc)
		s.Equal(ether(2000), res, t.desc)
	}
}

func (s *usecaseSuite) TestLatestPriceKeepsFeedDecimals() {
	answer := new(big.Int).Mul(big.NewInt(2000), big.NewInt(1000000))
	s.registeredWithDecimals(token, tokenFeed, 6, answer, s.now)

	res, err := s.im.GetLatestPrice(mockCtx, token)
	s.NoError(err)
	s.Equal(answer, res.Mantissa)
	s.Equal(uint8(6), res.Decimals)
}

func (s *usecaseSuite) TestUsdValueOfZeroSkipsFeed() {
	res, err := s.im.GetUSDValue(mockCtx, token, domain.ZeroAmount)
	s.NoError(err)
	s.Equal(domain.ZeroAmount, res)
}

func (s *usecaseSuite) TestUsdValueOverflow() {
	s.registered(domain.NativeToken, ethFeed, price8(2000), s.now)

	_, err := s.im.GetUSDValue(mockCtx, domain.NativeToken, domain.NewAmount(domain.MaxUint256))
	s.Equal(pricefeed.ErrOverflow, err)
}

func (s *usecaseSuite) TestStalePrice() {
	s.registered(domain.NativeToken, ethFeed, price8(2000), s.now.Add(-2*time.Hour))

	_, err := s.im.GetETHPrice(mockCtx)
	s.Equal(pricefeed.ErrStalePrice, err)
}

func (s *usecaseSuite) TestNonPositiveAnswer() {
	s.registered(domain.NativeToken, ethFeed, big.NewInt(0), s.now)

	_, err := s.im.GetLatestPrice(mockCtx, domain.NativeToken)
	s.Equal(pricefeed.ErrInvalidPrice, err)
}

func (s *usecaseSuite) TestNoPriceFeed() {
	s.oracles.On("FindOne", mockCtx, oracleAddr).Return(s.oracle, nil).Once()
	s.feeds.On("FindOne", mockCtx, pricefeed.FeedId{Oracle: oracleAddr, Token: token}).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.GetTokenPrice(mockCtx, token)
	s.Equal(pricefeed.ErrNoPriceFeed, err)
}

func (s *usecaseSuite) TestLatestPrice() {
	s.registered(domain.NativeToken, ethFeed, price8(2000), s.now)

	res, err := s.im.GetLatestPrice(mockCtx, domain.EmptyAddress)
	s.NoError(err)
	s.Equal(price8(2000), res.Mantissa)
	s.Equal(uint8(8), res.Decimals)
}

func (s *usecaseSuite) TestSetTokenPriceFeedNotOwner() {
	s.oracles.On("FindOne", mockCtx, oracleAddr).Return(s.oracle, nil).Once()

	s.Equal(pricefeed.ErrNotOwner, s.im.SetTokenPriceFeed(mockCtx, stranger, token, tokenFeed))
}

func (s *usecaseSuite) TestSetTokenPriceFeedInvalidFeed() {
	s.oracles.On("FindOne", mockCtx, oracleAddr).Return(s.oracle, nil).Twice()
	s.source.On("Decimals", mockCtx, tokenFeed).Return(uint8(0), errors.New("execution reverted")).Once()

	s.Equal(pricefeed.ErrInvalidFeed, s.im.SetTokenPriceFeed(mockCtx, owner, token, domain.EmptyAddress))
	s.Equal(pricefeed.ErrInvalidFeed, s.im.SetTokenPriceFeed(mockCtx, owner, token, tokenFeed))
}

func (s *usecaseSuite) TestSetTokenPriceFeed() {
	oldFeed := domain.Address("0xfeed000000000000000000000000000000000009")
	s.oracles.On("FindOne", mockCtx, oracleAddr).Return(s.oracle, nil).Once()
	s.source.On("Decimals", mockCtx, tokenFeed).Return(uint8(8), nil).Once()
	s.feeds.On("FindOne", mockCtx, pricefeed.FeedId{Oracle: oracleAddr, Token: token}).Return(&pricefeed.Feed{Feed: oldFeed}, nil).Once()
	s.feeds.On("Upsert", mockCtx, &pricefeed.Feed{
		Oracle:    oracleAddr,
		Token:     token,
		Feed:      tokenFeed,
		Decimals:  8,
		UpdatedAt: s.now,
	}).Return(nil).Once()
	s.emitter.On("Emit", mockCtx, oracleAddr, pricefeed.EventPriceFeedUpdated, event.Args{
		"token":   token,
		"oldFeed": oldFeed,
		"newFeed": tokenFeed,
	}).Return(nil).Once()

	s.NoError(s.im.SetTokenPriceFeed(mockCtx, owner, token, tokenFeed))
}

func (s *usecaseSuite) TestSetNativePriceFeed() {
	newFeed := domain.Address("0xfeed000000000000000000000000000000000005")
	s.oracles.On("FindOne", mockCtx, oracleAddr).Return(s.oracle, nil).Once()
	s.source.On("Decimals", mockCtx, newFeed).Return(uint8(8), nil).Once()
	s.feeds.On("FindOne", mockCtx, pricefeed.FeedId{Oracle: oracleAddr, Token: domain.NativeToken}).Return(&pricefeed.Feed{Feed: ethFeed}, nil).Once()
	s.feeds.On("Upsert", mockCtx, mock.AnythingOfType("*pricefeed.Feed")).Return(nil).Once()
	s.oracles.On("Upsert", mockCtx, mock.MatchedBy(func(o *pricefeed.Oracle) bool {
		return o.NativeFeed == newFeed
	})).Return(nil).Once()
	s.emitter.On("Emit", mockCtx, oracleAddr, pricefeed.EventETHPriceFeedUpdated, event.Args{
		"oldFeed": ethFeed,
		"newFeed": newFeed,
	}).Return(nil).Once()

	s.NoError(s.im.SetNativePriceFeed(mockCtx, owner, newFeed))
}

func (s *usecaseSuite) TestBootstrap() {
	s.oracles.On("FindOne", mockCtx, oracleAddr).Return(nil, domain.ErrNotFound).Once()
	s.source.On("Decimals", mockCtx, ethFeed).Return(uint8(8), nil).Once()
	s.oracles.On("Upsert", mockCtx, &pricefeed.Oracle{
		Address:    oracleAddr,
		Owner:      owner,
		NativeFeed: ethFeed,
		MaxAge:     time.Hour,
		CreatedAt:  s.now,
	}).Return(nil).Once()
	s.feeds.On("Upsert", mockCtx, &pricefeed.Feed{
		Oracle:    oracleAddr,
		Token:     domain.NativeToken,
		Feed:      ethFeed,
		Decimals:  8,
		UpdatedAt: s.now,
	}).Return(nil).Once()

	o, err := s.im.Bootstrap(mockCtx, owner, ethFeed, time.Hour)
	s.NoError(err)
	s.Equal(ethFeed, o.NativeFeed)
}

func (s *usecaseSuite) TestBootstrapExisting() {
	s.oracles.On("FindOne", mockCtx, oracleAddr).Return(s.oracle, nil).Once()

	o, err := s.im.Bootstrap(mockCtx, stranger, tokenFeed, 0)
	s.NoError(err)
	s.Equal(owner, o.Owner)
}
