package repository

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/factory"
	"github.com/x-xyz/goauction/service/query"
)

type registryRepoImpl struct {
	q query.Mongo
}

func NewRegistryRepo(q query.Mongo) factory.RegistryRepo {
	return &registryRepoImpl{q}
}

func toRegistryId(id factory.RegistryId) factory.RegistryId {
	return factory.RegistryId{
		Factory:     id.Factory.ToLower(),
		NftContract: id.NftContract.ToLower(),
		TokenId:     id.TokenId,
	}
}

func (r *registryRepoImpl) FindOne(c ctx.Ctx, id factory.RegistryId) (*factory.RegistryEntry, error) {
	res := &factory.RegistryEntry{}
	if err := r.q.FindOne(c, domain.TableRegistryEntries, toRegistryId(id), res); err == query.ErrNotFound {
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

func (r *registryRepoImpl) Upsert(c ctx.Ctx, e *factory.RegistryEntry) error {
	e.Factory = e.Factory.ToLower()
	e.NftContract = e.NftContract.ToLower()
	e.Auction = e.Auction.ToLower()
	id := factory.RegistryId{Factory: e.Factory, NftContract: e.NftContract, TokenId: e.TokenId}
	if err := r.q.Upsert(c, domain.TableRegistryEntries, id, e); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"entry": e,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
