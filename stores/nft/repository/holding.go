package repository

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/nft"
	"github.com/x-xyz/goauction/service/query"
)

type holdingRepoImpl struct {
	q query.Mongo
}

func NewHoldingRepo(q query.Mongo) nft.HoldingRepo {
	return &holdingRepoImpl{q}
}

// EnsureIndexes creates the custody tables and their indexes
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	if err := q.EnsureIndexes(c, domain.TableNftHoldings,
		query.Index{Keys: []string{"contract", "tokenId"}, Unique: true},
		query.Index{Keys: []string{"owner"}},
	); err != nil {
		return err
	}
	return q.EnsureIndexes(c, domain.TableNftOperators, query.Index{Keys: []string{"contract", "owner", "operator"}, Unique: true})
}

func toId(id nft.Id) nft.Id {
	return nft.Id{Contract: id.Contract.ToLower(), TokenId: id.TokenId}
}

func (r *holdingRepoImpl) FindOne(c ctx.Ctx, id nft.Id) (*nft.Holding, error) {
	res := &nft.Holding{}
	if err := r.q.FindOne(c, domain.TableNftHoldings, toId(id), res); err == query.ErrNotFound {
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

func (r *holdingRepoImpl) Insert(c ctx.Ctx, h *nft.Holding) error {
	normalizeHolding(h)
	if err := r.q.Insert(c, domain.TableNftHoldings, h); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"holding": h,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *holdingRepoImpl) Upsert(c ctx.Ctx, h *nft.Holding) error {
	normalizeHolding(h)
	if err := r.q.Upsert(c, domain.TableNftHoldings, h.ToId(), h); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"holding": h,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func normalizeHolding(h *nft.Holding) {
	h.Contract = h.Contract.ToLower()
	h.Owner = h.Owner.ToLower()
	h.Approved = h.Approved.ToLower()
}
