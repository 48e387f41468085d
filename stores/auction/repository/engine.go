package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

type engineRepoImpl struct {
	q query.Mongo
}

func NewEngineRepo(q query.Mongo) auction.EngineRepo {
	return &engineRepoImpl{q}
}

// EnsureIndexes creates the engine tables and their indexes
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	indexes := map[domain.Table][]query.Index{
		domain.TableEngines: {
			{Keys: []string{"address"}, Unique: true},
		},
		domain.TableDeployerNonces: {
			{Keys: []string{"deployer"}, Unique: true},
		},
		domain.TableAuctions: {
			{Keys: []string{"engine", "auctionId"}, Unique: true},
			{Keys: []string{"seller", "-createdAt"}},
			{Keys: []string{"state", "endTime"}},
			{Keys: []string{"-createdAt"}},
		},
		domain.TableBids: {
			{Keys: []string{"engine", "auctionId", "bidder"}, Unique: true},
		},
		domain.TablePendingReturns: {
			{Keys: []string{"engine", "token", "beneficiary"}, Unique: true},
			{Keys: []string{"createdAt", "_id"}},
		},
	}
	for _, table := range []domain.Table{domain.TableEngines, domain.TableDeployerNonces, domain.TableAuctions, domain.TableBids, domain.TablePendingReturns} {
		if err := q.EnsureIndexes(c, table, indexes[table]...); err != nil {
			return err
		}
	}
	return nil
}

func (r *engineRepoImpl) FindOne(c ctx.Ctx, address domain.Address) (*auction.Engine, error) {
	res := &auction.Engine{}
	if err := r.q.FindOne(c, domain.TableEngines, bson.M{"address": address.ToLower()}, res); err == query.ErrNotFound {
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

func (r *engineRepoImpl) Insert(c ctx.Ctx, e *auction.Engine) error {
	normalizeEngine(e)
	if err := r.q.Insert(c, domain.TableEngines, e); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"engine": e,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *engineRepoImpl) Upsert(c ctx.Ctx, e *auction.Engine) error {
	normalizeEngine(e)
	if err := r.q.Upsert(c, domain.TableEngines, bson.M{"address": e.Address}, e); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"engine": e,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *engineRepoImpl) NextNonce(c ctx.Ctx, deployer domain.Address) (uint64, error) {
	n, err := r.q.Increment(c, domain.TableDeployerNonces, bson.M{"deployer": deployer.ToLower()}, "nonce")
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"deployer": deployer,
		}).Error("q.Increment failed")
		return 0, err
	}
	return uint64(n - 1), nil
}

func normalizeEngine(e *auction.Engine) {
	e.Address = e.Address.ToLower()
	e.Implementation = e.Implementation.ToLower()
	e.Deployer = e.Deployer.ToLower()
	e.Factory = e.Factory.ToLower()
	e.Oracle = e.Oracle.ToLower()
	e.Owner = e.Owner.ToLower()
	e.FeeCollector = e.FeeCollector.ToLower()
}
