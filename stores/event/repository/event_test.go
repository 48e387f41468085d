package repository

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/event"
	"github.com/x-xyz/goauction/service/query"
)

type eventSuite struct {
	suite.Suite
	db   *mongoclient.Client
	q    query.Mongo
	impl *eventRepoImpl
}

func TestEventSuite(t *testing.T) {
	suite.Run(t, new(eventSuite))
}

func (s *eventSuite) SetupSuite() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		s.T().Skip("MONGO_URI not set")
	}
	mongoClient := mongoclient.MustConnectMongoClient(uri, "admin", "test_event", false, true, 2)
	s.db = mongoClient
	s.q = query.New(mongoClient, false)
	s.impl = New(s.q).(*eventRepoImpl)
}

func (s *eventSuite) SetupTest() {
	c := ctx.Background()
	s.Require().NoError(s.db.Database(s.db.DbName).Drop(c))
	s.Require().NoError(EnsureIndexes(c, s.q))
}

func (s *eventSuite) TestFindAll() {
	c := ctx.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	engine := domain.Address("0xAbC0000000000000000000000000000000000001")
	other := domain.Address("0xabc0000000000000000000000000000000000002")

	data := []*event.Event{
		{Id: "1", Contract: engine, Name: "AuctionCreated", Args: event.Args{"auctionId": "0"}, CreatedAt: now},
		{Id: "2", Contract: engine, Name: "BidPlaced", Args: event.Args{"auctionId": "0"}, CreatedAt: now},
		{Id: "3", Contract: other, Name: "BidPlaced", Args: event.Args{"auctionId": "0"}, CreatedAt: now.Add(time.Second)},
	}
	for _, d := range data {
		s.Require().NoError(s.impl.Insert(c, d))
	}

	res, err := s.impl.FindAll(c, event.WithContract(engine))
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal("1", res[0].Id)
	s.Equal("2", res[1].Id)
	s.Equal(engine.ToLower(), res[0].Contract)

	res, err = s.impl.FindAll(c, event.WithName("BidPlaced"))
	s.Require().NoError(err)
	s.Len(res, 2)

	res, err = s.impl.FindAll(c, event.WithPagination(1, 1))
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal("2", res[0].Id)
}

func (s *eventSuite) TestInsertDuplicateId() {
	c := ctx.Background()
	e := &event.Event{Id: "dup", Contract: "0x1", Name: "x", CreatedAt: time.Now()}
	s.Require().NoError(s.impl.Insert(c, e))
	s.Equal(query.ErrDuplicateKey, s.impl.Insert(c, &event.Event{Id: "dup", Contract: "0x1", Name: "x", CreatedAt: time.Now()}))
}
