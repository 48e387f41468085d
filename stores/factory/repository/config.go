package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/factory"
	"github.com/x-xyz/goauction/service/query"
)

type configRepoImpl struct {
	q query.Mongo
}

func NewConfigRepo(q query.Mongo) factory.ConfigRepo {
	return &configRepoImpl{q}
}

// EnsureIndexes creates the factory tables and their indexes. The registry
// key index keeps one entry per asset.
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	if err := q.EnsureIndexes(c, domain.TableFactories, query.Index{Keys: []string{"address"}, Unique: true}); err != nil {
		return err
	}
	if err := q.EnsureIndexes(c, domain.TableFactoryListings,
		query.Index{Keys: []string{"factory", "index"}, Unique: true},
		query.Index{Keys: []string{"factory", "auction"}, Unique: true},
		query.Index{Keys: []string{"factory", "creator", "index"}},
	); err != nil {
		return err
	}
	return q.EnsureIndexes(c, domain.TableRegistryEntries, query.Index{Keys: []string{"factory", "nftContract", "tokenId"}, Unique: true})
}

func (r *configRepoImpl) FindOne(c ctx.Ctx, address domain.Address) (*factory.Config, error) {
	res := &factory.Config{}
	if err := r.q.FindOne(c, domain.TableFactories, bson.M{"address": address.ToLower()}, res); err == query.ErrNotFound {
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

func (r *configRepoImpl) Upsert(c ctx.Ctx, cfg *factory.Config) error {
	cfg.Address = cfg.Address.ToLower()
	cfg.Owner = cfg.Owner.ToLower()
	cfg.Implementation = cfg.Implementation.ToLower()
	cfg.PriceFeed = cfg.PriceFeed.ToLower()
	cfg.FeeCollector = cfg.FeeCollector.ToLower()
	if err := r.q.Upsert(c, domain.TableFactories, bson.M{"address": cfg.Address}, cfg); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"config": cfg,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
