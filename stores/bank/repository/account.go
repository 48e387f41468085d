package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/bank"
	"github.com/x-xyz/goauction/service/query"
)

type accountRepoImpl struct {
	q query.Mongo
}

func NewAccountRepo(q query.Mongo) bank.AccountRepo {
	return &accountRepoImpl{q}
}

// EnsureIndexes creates the ledger tables and their indexes
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	if err := q.EnsureIndexes(c, domain.TableBalances, query.Index{Keys: []string{"token", "account"}, Unique: true}); err != nil {
		return err
	}
	return q.EnsureIndexes(c, domain.TableBankAccounts, query.Index{Keys: []string{"address"}, Unique: true})
}

func (r *accountRepoImpl) FindOne(c ctx.Ctx, address domain.Address) (*bank.Account, error) {
	res := &bank.Account{}
	if err := r.q.FindOne(c, domain.TableBankAccounts, bson.M{"address": address.ToLower()}, res); err == query.ErrNotFound {
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

func (r *accountRepoImpl) Upsert(c ctx.Ctx, a *bank.Account) error {
	a.Address = a.Address.ToLower()
	if err := r.q.Upsert(c, domain.TableBankAccounts, bson.M{"address": a.Address}, a); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": a,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
