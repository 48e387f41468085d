package repository

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/nft"
	"github.com/x-xyz/goauction/service/query"
)

type operatorRepoImpl struct {
	q query.Mongo
}

func NewOperatorRepo(q query.Mongo) nft.OperatorRepo {
	return &operatorRepoImpl{q}
}

func (r *operatorRepoImpl) FindOne(c ctx.Ctx, id nft.OperatorId) (*nft.Operator, error) {
	id = nft.OperatorId{
		Contract: id.Contract.ToLower(),
		Owner:    id.Owner.ToLower(),
		Operator: id.Operator.ToLower(),
	}
	res := &nft.Operator{}
	if err := r.q.FindOne(c, domain.TableNftOperators, id, res); err == query.ErrNotFound {
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

func (r *operatorRepoImpl) Upsert(c ctx.Ctx, o *nft.Operator) error {
	o.Contract = o.Contract.ToLower()
	o.Owner = o.Owner.ToLower()
	o.Operator = o.Operator.ToLower()
	id := nft.OperatorId{Contract: o.Contract, Owner: o.Owner, Operator: o.Operator}
	if err := r.q.Upsert(c, domain.TableNftOperators, id, o); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"operator": o,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
