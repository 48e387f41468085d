package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/pricefeed"
	"github.com/x-xyz/goauction/service/query"
)

type feedRepoImpl struct {
	q query.Mongo
}

func NewFeedRepo(q query.Mongo) pricefeed.FeedRepo {
	return &feedRepoImpl{q}
}

func toFeedId(id pricefeed.FeedId) pricefeed.FeedId {
	return pricefeed.FeedId{Oracle: id.Oracle.ToLower(), Token: id.Token.ToLower()}
}

func (r *feedRepoImpl) FindOne(c ctx.Ctx, id pricefeed.FeedId) (*pricefeed.Feed, error) {
	res := &pricefeed.Feed{}
	if err := r.q.FindOne(c, domain.TablePriceFeeds, toFeedId(id), res); err == query.ErrNotFound {
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

func (r *feedRepoImpl) FindAll(c ctx.Ctx, oracle domain.Address) ([]*pricefeed.Feed, error) {
	res := []*pricefeed.Feed{}
	if err := r.q.Search(c, domain.TablePriceFeeds, 0, 0, "token", bson.M{"oracle": oracle.ToLower()}, &res); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"oracle": oracle,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *feedRepoImpl) Upsert(c ctx.Ctx, f *pricefeed.Feed) error {
	f.Oracle = f.Oracle.ToLower()
	f.Token = f.Token.ToLower()
	f.Feed = f.Feed.ToLower()
	if err := r.q.Upsert(c, domain.TablePriceFeeds, pricefeed.FeedId{Oracle: f.Oracle, Token: f.Token}, f); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"feed": f,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
