package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/bank"
)

type impl struct {
	tx     domain.Transactor
	ledger bank.Ledger
}

// New exposes the ledger's admin surface. Deposits credit value observed
// outside the service.
func New(tx domain.Transactor, ledger bank.Ledger) bank.UseCase {
	return &impl{
		tx:     tx,
		ledger: ledger,
	}
}

func (im *impl) BalanceOf(c ctx.Ctx, token, account domain.Address) (domain.Amount, error) {
	res, err := im.ledger.BalanceOf(c, token, account)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"token":   token,
			"account": account,
		}).Error("ledger.BalanceOf failed")
		return domain.ZeroAmount, err
	}
	return res, nil
}

func (im *impl) Deposit(c ctx.Ctx, token, to domain.Address, amount domain.Amount) error {
	if !amount.IsValid() || amount.IsZero() {
		return bank.ErrInvalidAmount
	}
	if err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		return im.ledger.Mint(c, token, to, amount)
	}); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"token":  token,
			"to":     to,
			"amount": amount,
		}).Error("Deposit failed")
		return err
	}
	return nil
}

func (im *impl) SetFrozen(c ctx.Ctx, account domain.Address, frozen bool) error {
	if err := im.ledger.SetFrozen(c, account, frozen); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("ledger.SetFrozen failed")
		return err
	}
	return nil
}
