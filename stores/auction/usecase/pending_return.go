package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/event"
)

// credit adds amount to what engine owes beneficiary in token. Call inside a
// transaction.
func (im *impl) credit(c ctx.Ctx, engine, token, beneficiary domain.Address, amount domain.Amount) (auction.PendingReturnId, error) {
	id := auction.PendingReturnId{
		Engine:      engine.ToLower(),
		Token:       token.ToLower(),
		Beneficiary: beneficiary.ToLower(),
	}
	p, err := im.pendings.FindOne(c, id)
	if err == domain.ErrNotFound {
		p = &auction.PendingReturn{
			Engine:      id.Engine,
			Token:       id.Token,
			Beneficiary: id.Beneficiary,
			Amount:      domain.ZeroAmount,
			CreatedAt:   im.now().UTC(),
		}
	} else if err != nil {
		return id, err
	}
	p.Amount = p.Amount.Add(amount)
	p.UpdatedAt = im.now().UTC()
	if err := im.pendings.Upsert(c, p); err != nil {
		return id, err
	}
	return id, nil
}

// pushAll makes one delivery attempt per id. Failures stay on the books.
// The credits are committed, so the attempts run even if c is canceled.
func (im *impl) pushAll(c ctx.Ctx, ids []auction.PendingReturnId) {
	c = ctx.Detach(c)
	for _, id := range ids {
		if _, err := im.PushPendingReturn(c, id); err != nil {
			c.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("PushPendingReturn failed")
		}
	}
}

func (im *impl) PushPendingReturn(c ctx.Ctx, id auction.PendingReturnId) (bool, error) {
	var (
		paid        bool
		transferErr error
	)
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		paid, transferErr = false, nil

		p, err := im.pendings.FindOne(c, id)
		if err == domain.ErrNotFound {
			return nil
		} else if err != nil {
			return err
		}
		if p.Amount.IsZero() {
			return im.pendings.Remove(c, id)
		}
		if err := im.bank.Transfer(c, p.Token, p.Engine, p.Beneficiary, p.Amount); err != nil {
			transferErr = err
			return err
		}
		if err := im.pendings.Remove(c, id); err != nil {
			return err
		}
		paid = true

		return im.emitter.Emit(c, p.Engine, auction.EventPaymentReleased, event.Args{
			"beneficiary": p.Beneficiary,
			"token":       p.Token,
			"amount":      p.Amount,
		})
	})
	if transferErr != nil {
		return false, im.deferPendingReturn(c, id, transferErr)
	} else if err != nil {
		return false, err
	}
	return paid, nil
}

func (im *impl) deferPendingReturn(c ctx.Ctx, id auction.PendingReturnId, reason error) error {
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		p, err := im.pendings.FindOne(c, id)
		if err != nil {
			return err
		}
		p.Attempts++
		p.LastError = reason.Error()
		p.UpdatedAt = im.now().UTC()
		if err := im.pendings.Upsert(c, p); err != nil {
			return err
		}
		return im.emitter.Emit(c, p.Engine, auction.EventPaymentDeferred, event.Args{
			"beneficiary": p.Beneficiary,
			"token":       p.Token,
			"amount":      p.Amount,
			"reason":      p.LastError,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"id":     id,
			"reason": reason,
		}).Error("deferPendingReturn failed")
		return err
	}

	c.WithFields(log.Fields{
		"id":     id,
		"reason": reason,
	}).Warn("payment deferred")
	met.BumpSum("refund.deferred", 1, "token", string(id.Token))
	return nil
}

func (im *impl) GetPendingReturn(c ctx.Ctx, id auction.PendingReturnId) (domain.Amount, error) {
	p, err := im.pendings.FindOne(c, id)
	if err == domain.ErrNotFound {
		return domain.ZeroAmount, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("pendings.FindOne failed")
		return domain.ZeroAmount, err
	}
	return p.Amount, nil
}

func (im *impl) FindPendingReturns(c ctx.Ctx, offset, limit int) ([]*auction.PendingReturn, error) {
	return im.pendings.FindAll(c, offset, limit)
}

func (im *impl) Withdraw(c ctx.Ctx, engine, caller, token domain.Address) (domain.Amount, error) {
	if token.IsZero() {
		token = domain.NativeToken
	}
	id := auction.PendingReturnId{
		Engine:      engine.ToLower(),
		Token:       token.ToLower(),
		Beneficiary: caller.ToLower(),
	}

	var amount domain.Amount
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		p, err := im.pendings.FindOne(c, id)
		if err == domain.ErrNotFound {
			return auction.ErrNothingToWithdraw
		} else if err != nil {
			return err
		}
		if p.Amount.IsZero() {
			return auction.ErrNothingToWithdraw
		}
		if err := im.bank.Transfer(c, p.Token, p.Engine, p.Beneficiary, p.Amount); err != nil {
			return err
		}
		if err := im.pendings.Remove(c, id); err != nil {
			return err
		}
		amount = p.Amount

		return im.emitter.Emit(c, p.Engine, auction.EventPaymentReleased, event.Args{
			"beneficiary": p.Beneficiary,
			"token":       p.Token,
			"amount":      p.Amount,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Info("Withdraw rejected")
		return domain.ZeroAmount, err
	}
	return amount, nil
}

func (im *impl) RetryPendingReturns(c ctx.Ctx, limit int) (int, error) {
	pendings, err := im.pendings.FindAll(c, 0, limit)
	if err != nil {
		c.WithField("err", err).Error("pendings.FindAll failed")
		return 0, err
	}

	paid := 0
	for _, p := range pendings {
		ok, err := im.PushPendingReturn(c, p.ToId())
		if err != nil {
			return paid, err
		}
		if ok {
			paid++
		}
	}
	return paid, nil
}
