package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

type pendingReturnRepoImpl struct {
	q query.Mongo
}

func NewPendingReturnRepo(q query.Mongo) auction.PendingReturnRepo {
	return &pendingReturnRepoImpl{q}
}

func toPendingReturnId(id auction.PendingReturnId) auction.PendingReturnId {
	return auction.PendingReturnId{
		Engine:      id.Engine.ToLower(),
		Token:       id.Token.ToLower(),
		Beneficiary: id.Beneficiary.ToLower(),
	}
}

func (r *pendingReturnRepoImpl) FindOne(c ctx.Ctx, id auction.PendingReturnId) (*auction.PendingReturn, error) {
	res := &auction.PendingReturn{}
	if err := r.q.FindOne(c, domain.TablePendingReturns, toPendingReturnId(id), res); err == query.ErrNotFound {
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

// FindAll lists outstanding returns, oldest first. The order survives failed
// attempts so an offset walk never skips a record.
func (r *pendingReturnRepoImpl) FindAll(c ctx.Ctx, offset, limit int) ([]*auction.PendingReturn, error) {
	res := []*auction.PendingReturn{}
	if err := r.q.SearchNSorts(c, domain.TablePendingReturns, offset, limit, []string{"createdAt", "_id"}, bson.M{}, &res); err != nil {
		c.WithField("err", err).Error("q.SearchNSorts failed")
		return nil, err
	}
	return res, nil
}

func (r *pendingReturnRepoImpl) Upsert(c ctx.Ctx, p *auction.PendingReturn) error {
	p.Engine = p.Engine.ToLower()
	p.Token = p.Token.ToLower()
	p.Beneficiary = p.Beneficiary.ToLower()
	if err := r.q.Upsert(c, domain.TablePendingReturns, p.ToId(), p); err != nil {
		c.WithFields(log.Fields{
			"err":           err,
			"pendingReturn": p,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *pendingReturnRepoImpl) Remove(c ctx.Ctx, id auction.PendingReturnId) error {
	if err := r.q.Remove(c, domain.TablePendingReturns, toPendingReturnId(id)); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}
