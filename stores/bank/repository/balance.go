package repository

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/bank"
	"github.com/x-xyz/goauction/service/query"
)

type balanceRepoImpl struct {
	q query.Mongo
}

func NewBalanceRepo(q query.Mongo) bank.BalanceRepo {
	return &balanceRepoImpl{q}
}

func toBalanceId(id bank.BalanceId) bank.BalanceId {
	return bank.BalanceId{Token: id.Token.ToLower(), Account: id.Account.ToLower()}
}

func (r *balanceRepoImpl) FindOne(c ctx.Ctx, id bank.BalanceId) (*bank.Balance, error) {
	res := &bank.Balance{}
	if err := r.q.FindOne(c, domain.TableBalances, toBalanceId(id), res); err == query.ErrNotFound {
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

func (r *balanceRepoImpl) Upsert(c ctx.Ctx, b *bank.Balance) error {
	b.Token = b.Token.ToLower()
	b.Account = b.Account.ToLower()
	if err := r.q.Upsert(c, domain.TableBalances, bank.BalanceId{Token: b.Token, Account: b.Account}, b); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"balance": b,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
