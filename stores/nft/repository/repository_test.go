package repository

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/nft"
	"github.com/x-xyz/goauction/service/query"
)

type repoSuite struct {
	suite.Suite
	db        *mongoclient.Client
	q         query.Mongo
	holdings  nft.HoldingRepo
	operators nft.OperatorRepo
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(repoSuite))
}

func (s *repoSuite) SetupSuite() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		s.T().Skip("MONGO_URI not set")
	}
	s.db = mongoclient.MustConnectMongoClient(uri, "admin", "test_nft", false, true, 2)
	s.q = query.New(s.db, false)
	s.holdings = NewHoldingRepo(s.q)
	s.operators = NewOperatorRepo(s.q)
}

func (s *repoSuite) SetupTest() {
	c := ctx.Background()
	s.Require().NoError(s.db.Database(s.db.DbName).Drop(c))
	s.Require().NoError(EnsureIndexes(c, s.q))
}

func (s *repoSuite) TestHolding() {
	c := ctx.Background()
	id := nft.Id{Contract: "0xCC00000000000000000000000000000000000001", TokenId: "7"}

	_, err := s.holdings.FindOne(c, id)
	s.Equal(domain.ErrNotFound, err)

	h := &nft.Holding{Contract: id.Contract, TokenId: id.TokenId, Owner: "0xAA00000000000000000000000000000000000001"}
	s.Require().NoError(s.holdings.Insert(c, h))
	s.Equal(domain.ErrConflict, s.holdings.Insert(c, &nft.Holding{Contract: id.Contract, TokenId: id.TokenId}))

	h.Owner = "0xBB00000000000000000000000000000000000002"
	s.Require().NoError(s.holdings.Upsert(c, h))

	res, err := s.holdings.FindOne(c, id)
	s.Require().NoError(err)
	s.Equal(domain.Address("0xbb00000000000000000000000000000000000002"), res.Owner)
}

func (s *repoSuite) TestOperator() {
	c := ctx.Background()
	id := nft.OperatorId{
		Contract: "0xcc00000000000000000000000000000000000001",
		Owner:    "0xaa00000000000000000000000000000000000001",
		Operator: "0xbb00000000000000000000000000000000000002",
	}

	_, err := s.operators.FindOne(c, id)
	s.Equal(domain.ErrNotFound, err)

	s.Require().NoError(s.operators.Upsert(c, &nft.Operator{Contract: id.Contract, Owner: id.Owner, Operator: id.Operator, Approved: true}))
	res, err := s.operators.FindOne(c, id)
	s.Require().NoError(err)
	s.True(res.Approved)
}
