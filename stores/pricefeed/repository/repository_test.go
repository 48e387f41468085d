package repository

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/pricefeed"
	"github.com/x-xyz/goauction/service/query"
)

type repoSuite struct {
	suite.Suite
	db      *mongoclient.Client
	q       query.Mongo
	oracles pricefeed.OracleRepo
	feeds   pricefeed.FeedRepo
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(repoSuite))
}

func (s *repoSuite) SetupSuite() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		s.T().Skip("MONGO_URI not set")
	}
	s.db = mongoclient.MustConnectMongoClient(uri, "admin", "test_pricefeed", false, true, 2)
	s.q = query.New(s.db, false)
	s.oracles = NewOracleRepo(s.q)
	s.feeds = NewFeedRepo(s.q)
}

func (s *repoSuite) SetupTest() {
	c := ctx.Background()
	s.Require().NoError(s.db.Database(s.db.DbName).Drop(c))
	s.Require().NoError(EnsureIndexes(c, s.q))
}

func (s *repoSuite) TestOracle() {
	c := ctx.Background()
	addr := domain.Address("0x0AC1E00000000000000000000000000000000001")

	_, err := s.oracles.FindOne(c, addr)
	s.Equal(domain.ErrNotFound, err)

	s.Require().NoError(s.oracles.Upsert(c, &pricefeed.Oracle{Address: addr, Owner: "0xAA00000000000000000000000000000000000001", MaxAge: time.Hour}))
	o, err := s.oracles.FindOne(c, addr)
	s.Require().NoError(err)
	s.Equal(time.Hour, o.MaxAge)
	s.Equal(domain.Address("0xaa00000000000000000000000000000000000001"), o.Owner)
}

func (s *repoSuite) TestFeeds() {
	c := ctx.Background()
	oracle := domain.Address("0x0ac1e00000000000000000000000000000000001")
	tokenB := domain.Address("0xbb00000000000000000000000000000000000002")

	s.Require().NoError(s.feeds.Upsert(c, &pricefeed.Feed{Oracle: oracle, Token: tokenB, Feed: "0xfeed000000000000000000000000000000000002", Decimals: 8}))
	s.Require().NoError(s.feeds.Upsert(c, &pricefeed.Feed{Oracle: oracle, Token: domain.NativeToken, Feed: "0xfeed000000000000000000000000000000000001", Decimals: 8}))
	s.Require().NoError(s.feeds.Upsert(c, &pricefeed.Feed{Oracle: oracle, Token: tokenB, Feed: "0xfeed000000000000000000000000000000000003", Decimals: 18}))

	f, err := s.feeds.FindOne(c, pricefeed.FeedId{Oracle: oracle, Token: tokenB})
	s.Require().NoError(err)
	s.Equal(uint8(18), f.Decimals)

	all, err := s.feeds.FindAll(c, oracle)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(domain.NativeToken, all[0].Token)
}
