package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/factory"
	"github.com/x-xyz/goauction/service/query"
)

type listingRepoImpl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) factory.ListingRepo {
	return &listingRepoImpl{q}
}

func (r *listingRepoImpl) FindOne(c ctx.Ctx, factoryAddr, auction domain.Address) (*factory.Listing, error) {
	res := &factory.Listing{}
	qry := bson.M{"factory": factoryAddr.ToLower(), "auction": auction.ToLower()}
	if err := r.q.FindOne(c, domain.TableFactoryListings, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"auction": auction,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

// FindAll returns listings in creation order. limit 0 means all.
func (r *listingRepoImpl) FindAll(c ctx.Ctx, factoryAddr domain.Address, offset, limit int) ([]*factory.Listing, error) {
	res := []*factory.Listing{}
	qry := bson.M{"factory": factoryAddr.ToLower()}
	if err := r.q.Search(c, domain.TableFactoryListings, offset, limit, "index", qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"offset": offset,
			"limit":  limit,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *listingRepoImpl) FindByCreator(c ctx.Ctx, factoryAddr, creator domain.Address) ([]*factory.Listing, error) {
	res := []*factory.Listing{}
	qry := bson.M{"factory": factoryAddr.ToLower(), "creator": creator.ToLower()}
	if err := r.q.Search(c, domain.TableFactoryListings, 0, 0, "index", qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"creator": creator,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *listingRepoImpl) Count(c ctx.Ctx, factoryAddr domain.Address) (int, error) {
	n, err := r.q.Count(c, domain.TableFactoryListings, bson.M{"factory": factoryAddr.ToLower()})
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}

func (r *listingRepoImpl) Insert(c ctx.Ctx, l *factory.Listing) error {
	l.Factory = l.Factory.ToLower()
	l.Auction = l.Auction.ToLower()
	l.NftContract = l.NftContract.ToLower()
	l.Creator = l.Creator.ToLower()
	if err := r.q.Insert(c, domain.TableFactoryListings, l); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"listing": l,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}
