package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/pricefeed"
	"github.com/x-xyz/goauction/service/query"
)

type oracleRepoImpl struct {
	q query.Mongo
}

func NewOracleRepo(q query.Mongo) pricefeed.OracleRepo {
	return &oracleRepoImpl{q}
}

// EnsureIndexes creates the oracle tables and their indexes
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	if err := q.EnsureIndexes(c, domain.TableOracles, query.Index{Keys: []string{"address"}, Unique: true}); err != nil {
		return err
	}
	return q.EnsureIndexes(c, domain.TablePriceFeeds, query.Index{Keys: []string{"oracle", "token"}, Unique: true})
}

func (r *oracleRepoImpl) FindOne(c ctx.Ctx, address domain.Address) (*pricefeed.Oracle, error) {
	res := &pricefeed.Oracle{}
	if err := r.q.FindOne(c, domain.TableOracles, bson.M{"address": address.ToLower()}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *oracleRepoImpl) Upsert(c ctx.Ctx, o *pricefeed.Oracle) error {
	o.Address = o.Address.ToLower()
	o.Owner = o.Owner.ToLower()
	o.NativeFeed = o.NativeFeed.ToLower()
	if err := r.q.Upsert(c, domain.TableOracles, bson.M{"address": o.Address}, o); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"oracle": o,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
