package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

type auctionRepoImpl struct {
	q query.Mongo
}

func New(q query.Mongo) auction.Repo {
	return &auctionRepoImpl{q}
}

func toId(id auction.Id) auction.Id {
	return auction.Id{Engine: id.Engine.ToLower(), AuctionId: id.AuctionId}
}

func (r *auctionRepoImpl) FindOne(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	res := &auction.Auction{}
	if err := r.q.FindOne(c, domain.TableAuctions, toId(id), res); err == query.ErrNotFound {
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

func (r *auctionRepoImpl) FindAll(c ctx.Ctx, optFns ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetFindAllOptions failed")
		return nil, err
	}

	qry := bson.M{}
	if opts.Engine != nil {
		qry["engine"] = *opts.Engine
	}
	if opts.Seller != nil {
		qry["seller"] = *opts.Seller
	}
	if opts.State != nil {
		qry["state"] = *opts.State
	}
	if opts.EndTimeLT != nil {
		qry["endTime"] = bson.M{"$lt": *opts.EndTimeLT}
	}

	offset, limit := 0, 0
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	sorts := []string{"-createdAt", "engine", "auctionId"}
	if opts.Sort != nil {
		sorts = []string{*opts.Sort}
	}

	res := []*auction.Auction{}
	if err := r.q.SearchNSorts(c, domain.TableAuctions, offset, limit, sorts, qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"opts": opts,
		}).Error("q.SearchNSorts failed")
		return nil, err
	}
	return res, nil
}

func (r *auctionRepoImpl) Insert(c ctx.Ctx, a *auction.Auction) error {
	normalizeAuction(a)
	if err := r.q.Insert(c, domain.TableAuctions, a); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"auction": a,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *auctionRepoImpl) Upsert(c ctx.Ctx, a *auction.Auction) error {
	normalizeAuction(a)
	if err := r.q.Upsert(c, domain.TableAuctions, a.ToId(), a); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"auction": a,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func normalizeAuction(a *auction.Auction) {
	a.Engine = a.Engine.ToLower()
	a.Seller = a.Seller.ToLower()
	a.NftContract = a.NftContract.ToLower()
	a.PaymentToken = a.PaymentToken.ToLower()
	a.HighestBidder = a.HighestBidder.ToLower()
}
