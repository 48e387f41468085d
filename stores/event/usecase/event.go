package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/event"
)

type impl struct {
	repo event.Repo
	now  func() time.Time
}

func New(repo event.Repo) event.UseCase {
	return &impl{
		repo: repo,
		now:  time.Now,
	}
}

// Emit records an event. Inside a transaction the event shares its fate.
func (im *impl) Emit(c ctx.Ctx, contract domain.Address, name string, args event.Args) error {
	e := &event.Event{
		Id:        uuid.NewString(),
		Contract:  contract.ToLower(),
		Name:      name,
		Args:      args,
		CreatedAt: im.now().UTC(),
	}
	if err := im.repo.Insert(c, e); err != nil {
		return err
	}
	c.WithFields(log.Fields{
		"contract": e.Contract,
		"event":    name,
		"args":     args,
	}).Debug("event emitted")
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	res, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return res, nil
}
