package repository

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

type bidRepoImpl struct {
	q query.Mongo
}

func NewBidRepo(q query.Mongo) auction.BidRepo {
	return &bidRepoImpl{q}
}

func (r *bidRepoImpl) FindOne(c ctx.Ctx, id auction.BidId) (*auction.Bid, error) {
	id = auction.BidId{Engine: id.Engine.ToLower(), AuctionId: id.AuctionId, Bidder: id.Bidder.ToLower()}
	res := &auction.Bid{}
	if err := r.q.FindOne(c, domain.TableBids, id, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *bidRepoImpl) FindAll(c ctx.Ctx, id auction.Id) ([]*auction.Bid, error) {
	res := []*auction.Bid{}
	if err := r.q.Search(c, domain.TableBids, 0, 0, "-placedAt", toId(id), &res); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *bidRepoImpl) Upsert(c ctx.Ctx, b *auction.Bid) error {
	b.Engine = b.Engine.ToLower()
	b.Bidder = b.Bidder.ToLower()
	b.PaymentToken = b.PaymentToken.ToLower()
	id := auction.BidId{Engine: b.Engine, AuctionId: b.AuctionId, Bidder: b.Bidder}
	if err := r.q.Upsert(c, domain.TableBids, id, b); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"bid": b,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
