package bank

import (
	"errors"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTransferRejected    = errors.New("recipient rejected transfer")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// Balance is the holding of one token by one account. The native currency is
// stored under domain.NativeToken.
type Balance struct {
	Token     domain.Address `json:"token" bson:"token"`
	Account   domain.Address `json:"account" bson:"account"`
	Amount    domain.Amount  `json:"amount" bson:"amount"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type BalanceId struct {
	Token   domain.Address `json:"token" bson:"token"`
	Account domain.Address `json:"account" bson:"account"`
}

// Account carries per-account flags. A frozen account refuses incoming
// transfers, the way a contract without a payable fallback would.
type Account struct {
	Address   domain.Address `json:"address" bson:"address"`
	Frozen    bool           `json:"frozen" bson:"frozen"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type BalanceRepo interface {
	FindOne(c ctx.Ctx, id BalanceId) (*Balance, error)
	Upsert(c ctx.Ctx, b *Balance) error
}

type AccountRepo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Account, error)
	Upsert(c ctx.Ctx, a *Account) error
}

// Ledger is the fungible value ledger. Calls are not transactional on their
// own, run them inside the caller's RunWithTransaction.
type Ledger interface {
	BalanceOf(c ctx.Ctx, token, account domain.Address) (domain.Amount, error)
	Transfer(c ctx.Ctx, token, from, to domain.Address, amount domain.Amount) error
	Mint(c ctx.Ctx, token, to domain.Address, amount domain.Amount) error
	SetFrozen(c ctx.Ctx, account domain.Address, frozen bool) error
	IsFrozen(c ctx.Ctx, account domain.Address) (bool, error)
}

type UseCase interface {
	BalanceOf(c ctx.Ctx, token, account domain.Address) (domain.Amount, error)
	Deposit(c ctx.Ctx, token, to domain.Address, amount domain.Amount) error
	SetFrozen(c ctx.Ctx, account domain.Address, frozen bool) error
}
