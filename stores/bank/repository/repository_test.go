package repository

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/bank"
	"github.com/x-xyz/goauction/service/query"
)

type repoSuite struct {
	suite.Suite
	db       *mongoclient.Client
	q        query.Mongo
	balances bank.BalanceRepo
	accounts bank.AccountRepo
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(repoSuite))
}

func (s *repoSuite) SetupSuite() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		s.T().Skip("MONGO_URI not set")
	}
	s.db = mongoclient.MustConnectMongoClient(uri, "admin", "test_bank", false, true, 2)
	s.q = query.New(s.db, false)
	s.balances = NewBalanceRepo(s.q)
	s.accounts = NewAccountRepo(s.q)
}

func (s *repoSuite) SetupTest() {
	c := ctx.Background()
	s.Require().NoError(s.db.Database(s.db.DbName).Drop(c))
	s.Require().NoError(EnsureIndexes(c, s.q))
}

func (s *repoSuite) TestBalance() {
	c := ctx.Background()
	id := bank.BalanceId{Token: domain.NativeToken, Account: "0xAA00000000000000000000000000000000000001"}

	_, err := s.balances.FindOne(c, id)
	s.Equal(domain.ErrNotFound, err)

	now := time.Now().UTC().Truncate(time.Millisecond)
	s.Require().NoError(s.balances.Upsert(c, &bank.Balance{Token: id.Token, Account: id.Account, Amount: "10", UpdatedAt: now}))
	s.Require().NoError(s.balances.Upsert(c, &bank.Balance{Token: id.Token, Account: id.Account, Amount: "25", UpdatedAt: now}))

	b, err := s.balances.FindOne(c, id)
	s.Require().NoError(err)
	s.Equal(domain.Amount("25"), b.Amount)
	s.Equal(id.Account.ToLower(), b.Account)
}

func (s *repoSuite) TestAccount() {
	c := ctx.Background()
	addr := domain.Address("0xAA00000000000000000000000000000000000002")

	_, err := s.accounts.FindOne(c, addr)
	s.Equal(domain.ErrNotFound, err)

	s.Require().NoError(s.accounts.Upsert(c, &bank.Account{Address: addr, Frozen: true}))
	a, err := s.accounts.FindOne(c, addr)
	s.Require().NoError(err)
	s.True(a.Frozen)
}
