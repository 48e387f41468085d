package repository

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/factory"
	"github.com/x-xyz/goauction/service/query"
)

const (
	factoryAddr = domain.Address("0xFAC7000000000000000000000000000000000001")
	creator     = domain.Address("0x5E11E20000000000000000000000000000000001")
	nftContract = domain.Address("0x7F70000000000000000000000000000000000001")
)

type repoSuite struct {
	suite.Suite
	db       *mongoclient.Client
	q        query.Mongo
	configs  factory.ConfigRepo
	listings factory.ListingRepo
	registry factory.RegistryRepo
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(repoSuite))
}

func (s *repoSuite) SetupSuite() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		s.T().Skip("MONGO_URI not set")
	}
	s.db = mongoclient.MustConnectMongoClient(uri, "admin", "test_factory", false, true, 2)
	s.q = query.New(s.db, false)
	s.configs = NewConfigRepo(s.q)
	s.listings = NewListingRepo(s.q)
	s.registry = NewRegistryRepo(s.q)
}

func (s *repoSuite) SetupTest() {
	c := ctx.Background()
	s.Require().NoError(s.db.Database(s.db.DbName).Drop(c))
	s.Require().NoError(EnsureIndexes(c, s.q))
}

func (s *repoSuite) TestConfig() {
	c := ctx.Background()

	_, err := s.configs.FindOne(c, factoryAddr)
	s.Equal(domain.ErrNotFound, err)

	s.Require().NoError(s.configs.Upsert(c, &factory.Config{
		Address:     factoryAddr,
		Owner:       creator,
		CreationFee: factory.DefaultCreationFee,
	}))
	cfg, err := s.configs.FindOne(c, factoryAddr)
	s.Require().NoError(err)
	s.Equal(creator.ToLower(), cfg.Owner)
	s.Equal(factory.DefaultCreationFee, cfg.CreationFee)

	cfg.AuctionCount = 2
	s.Require().NoError(s.configs.Upsert(c, cfg))
	cfg, err = s.configs.FindOne(c, factoryAddr)
	s.Require().NoError(err)
	s.Equal(int64(2), cfg.AuctionCount)
}

func (s *repoSuite) TestListings() {
	c := ctx.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	for i := int64(0); i < 3; i++ {
		by := creator
		if i == 1 {
			by = "0x0000000000000000000000000000000000000abc"
		}
		s.Require().NoError(s.listings.Insert(c, &factory.Listing{
			Index:       i,
			Factory:     factoryAddr,
			Auction:     domain.Address("0xa00000000000000000000000000000000000000" + string(rune('1'+i))),
			NftContract: nftContract,
			TokenId:     domain.TokenId(string(rune('1' + i))),
			Creator:     by,
			AuctionId:   1,
			CreatedAt:   now,
		}))
	}
	s.Equal(domain.ErrConflict, s.listings.Insert(c, &factory.Listing{Index: 0, Factory: factoryAddr, Auction: "0xb1"}))

	n, err := s.listings.Count(c, factoryAddr)
	s.Require().NoError(err)
	s.Equal(3, n)

	all, err := s.listings.FindAll(c, factoryAddr, 0, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(int64(0), all[0].Index)

	page, err := s.listings.FindAll(c, factoryAddr, 1, 5)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal(int64(1), page[0].Index)

	mine, err := s.listings.FindByCreator(c, factoryAddr, creator)
	s.Require().NoError(err)
	s.Len(mine, 2)

	l, err := s.listings.FindOne(c, factoryAddr, "0xa000000000000000000000000000000000000002")
	s.Require().NoError(err)
	s.Equal(int64(1), l.Index)
}

func (s *repoSuite) TestRegistry() {
	c := ctx.Background()
	id := factory.RegistryId{Factory: factoryAddr, NftContract: nftContract, TokenId: "7"}

	_, err := s.registry.FindOne(c, id)
	s.Equal(domain.ErrNotFound, err)

	s.Require().NoError(s.registry.Upsert(c, &factory.RegistryEntry{
		Factory:     factoryAddr,
		NftContract: nftContract,
		TokenId:     "7",
		Auction:     "0xa000000000000000000000000000000000000001",
		AuctionId:   1,
	}))
	// reuse after the first auction finished
	s.Require().NoError(s.registry.Upsert(c, &factory.RegistryEntry{
		Factory:     factoryAddr,
		NftContract: nftContract,
		TokenId:     "7",
		Auction:     "0xa000000000000000000000000000000000000002",
		AuctionId:   1,
	}))

	e, err := s.registry.FindOne(c, id)
	s.Require().NoError(err)
	s.Equal(domain.Address("0xa000000000000000000000000000000000000002"), e.Auction)
}
