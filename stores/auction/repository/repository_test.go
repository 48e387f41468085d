package repository

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

const (
	engine = domain.Address("0xE2E0000000000000000000000000000000000001")
	seller = domain.Address("0x5E11E20000000000000000000000000000000001")
	bidder = domain.Address("0xB1DDE20000000000000000000000000000000001")
)

type repoSuite struct {
	suite.Suite
	db       *mongoclient.Client
	q        query.Mongo
	engines  auction.EngineRepo
	auctions auction.Repo
	bids     auction.BidRepo
	pendings auction.PendingReturnRepo
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(repoSuite))
}

func (s *repoSuite) SetupSuite() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		s.T().Skip("MONGO_URI not set")
	}
	s.db = mongoclient.MustConnectMongoClient(uri, "admin", "test_auction", false, true, 2)
	s.q = query.New(s.db, false)
	s.engines = NewEngineRepo(s.q)
	s.auctions = New(s.q)
	s.bids = NewBidRepo(s.q)
	s.pendings = NewPendingReturnRepo(s.q)
}

func (s *repoSuite) SetupTest() {
	c := ctx.Background()
	s.Require().NoError(s.db.Database(s.db.DbName).Drop(c))
	s.Require().NoError(EnsureIndexes(c, s.q))
}

func (s *repoSuite) TestEngine() {
	c := ctx.Background()

	_, err := s.engines.FindOne(c, engine)
	s.Equal(domain.ErrNotFound, err)

	s.Require().NoError(s.engines.Insert(c, &auction.Engine{Address: engine, Deployer: seller}))
	s.Equal(domain.ErrConflict, s.engines.Insert(c, &auction.Engine{Address: engine}))

	e, err := s.engines.FindOne(c, engine)
	s.Require().NoError(err)
	s.Equal(engine.ToLower(), e.Address)

	e.AuctionCount = 3
	s.Require().NoError(s.engines.Upsert(c, e))
	e, err = s.engines.FindOne(c, engine)
	s.Require().NoError(err)
	s.Equal(int64(3), e.AuctionCount)

}

func (s *repoSuite) TestNextNonce() {
	c := ctx.Background()

	for want := uint64(0); want < 3; want++ {
		n, err := s.engines.NextNonce(c, seller)
		s.Require().NoError(err)
		s.Equal(want, n)
	}
	// nonces are per deployer, whatever the case of the address
	n, err := s.engines.NextNonce(c, bidder)
	s.Require().NoError(err)
	s.Equal(uint64(0), n)
	n, err = s.engines.NextNonce(c, domain.Address(seller.ToLower()))
	s.Require().NoError(err)
	s.Equal(uint64(3), n)
}

func (s *repoSuite) TestAuctions() {
	c := ctx.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	for i := int64(1); i <= 3; i++ {
		s.Require().NoError(s.auctions.Insert(c, &auction.Auction{
			Engine:     engine,
			AuctionId:  i,
			Seller:     seller,
			EndTime:    now.Add(time.Duration(i) * time.Hour),
			HighestBid: domain.ZeroAmount,
			State:      auction.StateActive,
			CreatedAt:  now.Add(time.Duration(i) * time.Second),
		}))
	}
	s.Equal(domain.ErrConflict, s.auctions.Insert(c, &auction.Auction{Engine: engine, AuctionId: 1}))

	a, err := s.auctions.FindOne(c, auction.Id{Engine: engine, AuctionId: 2})
	s.Require().NoError(err)
	s.Equal(seller.ToLower(), a.Seller)

	a.State = auction.StateEnded
	s.Require().NoError(s.auctions.Upsert(c, a))

	res, err := s.auctions.FindAll(c, auction.WithEngine(engine), auction.WithState(auction.StateActive))
	s.Require().NoError(err)
	s.Len(res, 2)
	// newest first
	s.Equal(int64(3), res[0].AuctionId)

	res, err = s.auctions.FindAll(c, auction.WithState(auction.StateActive), auction.WithEndTimeLT(now.Add(90*time.Minute)))
	s.Require().NoError(err)
	s.Len(res, 1)
	s.Equal(int64(1), res[0].AuctionId)

	res, err = s.auctions.FindAll(c, auction.WithSeller(seller), auction.WithPagination(1, 1))
	s.Require().NoError(err)
	s.Len(res, 1)
	s.Equal(int64(2), res[0].AuctionId)

	_, err = s.auctions.FindOne(c, auction.Id{Engine: engine, AuctionId: 9})
	s.Equal(domain.ErrNotFound, err)
}

func (s *repoSuite) TestBids() {
	c := ctx.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	id := auction.BidId{Engine: engine, AuctionId: 1, Bidder: bidder}

	s.Require().NoError(s.bids.Upsert(c, &auction.Bid{Engine: engine, AuctionId: 1, Bidder: bidder, Amount: "10", PlacedAt: now}))
	s.Require().NoError(s.bids.Upsert(c, &auction.Bid{Engine: engine, AuctionId: 1, Bidder: bidder, Amount: "20", PlacedAt: now.Add(time.Second)}))

	b, err := s.bids.FindOne(c, id)
	s.Require().NoError(err)
	s.Equal(domain.Amount("20"), b.Amount)

	res, err := s.bids.FindAll(c, auction.Id{Engine: engine, AuctionId: 1})
	s.Require().NoError(err)
	s.Len(res, 1)
}

func (s *repoSuite) TestPendingReturns() {
	c := ctx.Background()
	id := auction.PendingReturnId{Engine: engine, Token: domain.NativeToken, Beneficiary: bidder}

	_, err := s.pendings.FindOne(c, id)
	s.Equal(domain.ErrNotFound, err)
	s.Equal(domain.ErrNotFound, s.pendings.Remove(c, id))

	s.Require().NoError(s.pendings.Upsert(c, &auction.PendingReturn{
		Engine:      engine,
		Token:       domain.NativeToken,
		Beneficiary: bidder,
		Amount:      "5",
		UpdatedAt:   time.Now().UTC(),
	}))
	p, err := s.pendings.FindOne(c, id)
	s.Require().NoError(err)
	s.Equal(domain.Amount("5"), p.Amount)

	res, err := s.pendings.FindAll(c, 0, 0)
	s.Require().NoError(err)
	s.Len(res, 1)

	s.Require().NoError(s.pendings.Remove(c, id))
	_, err = s.pendings.FindOne(c, id)
	s.Equal(domain.ErrNotFound, err)
}

func (s *repoSuite) TestPendingReturnsKeepCreationOrder() {
	c := ctx.Background()
	created := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)
	first := &auction.PendingReturn{
		Engine:      engine,
		Token:       domain.NativeToken,
		Beneficiary: "0xb1dde20000000000000000000000000000000002",
		Amount:      "1",
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	second := &auction.PendingReturn{
		Engine:      engine,
		Token:       domain.NativeToken,
		Beneficiary: "0xb1dde20000000000000000000000000000000001",
		Amount:      "2",
		CreatedAt:   created.Add(time.Minute),
		UpdatedAt:   created.Add(time.Minute),
	}
	s.Require().NoError(s.pendings.Upsert(c, first))
	s.Require().NoError(s.pendings.Upsert(c, second))

	// a failed attempt bumps updatedAt only
	first.Attempts++
	first.UpdatedAt = created.Add(time.Hour)
	s.Require().NoError(s.pendings.Upsert(c, first))

	res, err := s.pendings.FindAll(c, 0, 1)
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal(first.Beneficiary, res[0].Beneficiary)
	s.Equal(1, res[0].Attempts)

	res, err = s.pendings.FindAll(c, 1, 1)
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal(second.Beneficiary, res[0].Beneficiary)
}
