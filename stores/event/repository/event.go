package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/event"
	"github.com/x-xyz/goauction/service/query"
)

type eventRepoImpl struct {
	q query.Mongo
}

func New(q query.Mongo) event.Repo {
	return &eventRepoImpl{q}
}

// EnsureIndexes creates the events table and its indexes
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	return q.EnsureIndexes(c, domain.TableEvents,
		query.Index{Keys: []string{"id"}, Unique: true},
		query.Index{Keys: []string{"contract", "name", "createdAt"}},
		query.Index{Keys: []string{"createdAt"}},
	)
}

func (r *eventRepoImpl) Insert(c ctx.Ctx, e *event.Event) error {
	e.Contract = e.Contract.ToLower()
	if err := r.q.Insert(c, domain.TableEvents, e); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"event": e,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *eventRepoImpl) FindAll(c ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	options, err := event.GetFindAllOptions(opts...)
	if err != nil {
		c.WithField("err", err).Error("failed to GetFindAllOptions")
		return nil, err
	}

	query := bson.M{}
	if options.Contract != nil {
		query["contract"] = *options.Contract
	}
	if options.Name != nil {
		query["name"] = *options.Name
	}

	offset, limit := 0, 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []*event.Event{}
	// _id breaks ties between events written in the same transaction
	if err := r.q.SearchNSorts(c, domain.TableEvents, offset, limit, []string{"createdAt", "_id"}, query, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("q.SearchNSorts failed")
		return nil, err
	}
	return res, nil
}
