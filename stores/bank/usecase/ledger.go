package usecase

import (
	"math/big"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/bank"
)

type ledgerImpl struct {
	balances bank.BalanceRepo
	accounts bank.AccountRepo
	now      func() time.Time
}

// NewLedger creates the mongo backed value ledger. Its writes join the
// transaction carried by the ctx they are called with.
func NewLedger(balances bank.BalanceRepo, accounts bank.AccountRepo) bank.Ledger {
	return &ledgerImpl{
		balances: balances,
		accounts: accounts,
		now:      time.Now,
	}
}

func (l *ledgerImpl) BalanceOf(c ctx.Ctx, token, account domain.Address) (domain.Amount, error) {
	b, err := l.balances.FindOne(c, bank.BalanceId{Token: token, Account: account})
	if err == domain.ErrNotFound {
		return domain.ZeroAmount, nil
	} else if err != nil {
		return domain.ZeroAmount, err
	}
	return b.Amount, nil
}

func (l *ledgerImpl) Transfer(c ctx.Ctx, token, from, to domain.Address, amount domain.Amount) error {
	if !amount.IsValid() {
		return bank.ErrInvalidAmount
	}
	if frozen, err := l.IsFrozen(c, to); err != nil {
		return err
	} else if frozen {
		return bank.ErrTransferRejected
	}

	fromBal, err := l.BalanceOf(c, token, from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		c.WithFields(log.Fields{
			"token":   token,
			"from":    from,
			"balance": fromBal,
			"amount":  amount,
		}).Info("insufficient balance")
		return bank.ErrInsufficientBalance
	}
	if amount.IsZero() || from.Equals(to) {
		return nil
	}

	if err := l.set(c, token, from, domain.NewAmount(new(big.Int).Sub(fromBal.BigInt(), amount.BigInt()))); err != nil {
		return err
	}
	return l.credit(c, token, to, amount)
}

func (l *ledgerImpl) Mint(c ctx.Ctx, token, to domain.Address, amount domain.Amount) error {
	if !amount.IsValid() {
		return bank.ErrInvalidAmount
	}
	return l.credit(c, token, to, amount)
}

func (l *ledgerImpl) SetFrozen(c ctx.Ctx, account domain.Address, frozen bool) error {
	return l.accounts.Upsert(c, &bank.Account{
		Address:   account,
		Frozen:    frozen,
		UpdatedAt: l.now().UTC(),
	})
}

func (l *ledgerImpl) IsFrozen(c ctx.Ctx, account domain.Address) (bool, error) {
	a, err := l.accounts.FindOne(c, account)
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return a.Frozen, nil
}

func (l *ledgerImpl) credit(c ctx.Ctx, token, to domain.Address, amount domain.Amount) error {
	bal, err := l.BalanceOf(c, token, to)
	if err != nil {
		return err
	}
	sum := bal.Add(amount)
	if !sum.IsValid() {
		return bank.ErrInvalidAmount
	}
	return l.set(c, token, to, sum)
}

func (l *ledgerImpl) set(c ctx.Ctx, token, account domain.Address, amount domain.Amount) error {
	return l.balances.Upsert(c, &bank.Balance{
		Token:     token,
		Account:   account,
		Amount:    amount,
		UpdatedAt: l.now().UTC(),
	})
}
