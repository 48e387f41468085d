package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/bank"
	mBank "github.com/x-xyz/goauction/domain/bank/mocks"
	mDomain "github.com/x-xyz/goauction/domain/mocks"
)

var (
	mockCtx = ctx.Background()

	token = domain.NativeToken
	alice = domain.Address("0xa11ce00000000000000000000000000000000001")
	bob   = domain.Address("0xb0b0000000000000000000000000000000000002")
)

type ledgerSuite struct {
	suite.Suite
	balances *mBank.BalanceRepo
	accounts *mBank.AccountRepo
	im       *ledgerImpl
	now      time.Time
}

func (s *ledgerSuite) SetupTest() {
	s.balances = &mBank.BalanceRepo{}
	s.accounts = &mBank.AccountRepo{}
	s.im = NewLedger(s.balances, s.accounts).(*ledgerImpl)
	s.now = time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)
	s.im.now = func() time.Time { return s.now }
}

func (s *ledgerSuite) TearDownTest() {
	s.balances.AssertExpectations(s.T())
	s.accounts.AssertExpectations(s.T())
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(ledgerSuite))
}

func (s *ledgerSuite) balance(account domain.Address, amount domain.Amount) {
	id := bank.BalanceId{Token: token, Account: account}
	if amount == "" {
		s.balances.On("FindOne", mockCtx, id).Return(nil, domain.ErrNotFound).Once()
		return
	}
	s.balances.On("FindOne", mockCtx, id).Return(&bank.Balance{Token: token, Account: account, Amount: amount}, nil).Once()
}

func (s *ledgerSuite) TestBalanceOfMissingIsZero() {
	s.balance(alice, "")

	res, err := s.im.BalanceOf(mockCtx, token, alice)
	s.NoError(err)
	s.Equal(domain.ZeroAmount, res)
}

func (s *ledgerSuite) TestTransfer() {
	s.accounts.On("FindOne", mockCtx, bob).Return(nil, domain.ErrNotFound).Once()
	s.balance(alice, "100")
	s.balance(bob, "5")
	s.balances.On("Upsert", mockCtx, &bank.Balance{Token: token, Account: alice, Amount: "60", UpdatedAt: s.now}).Return(nil).Once()
	s.balances.On("Upsert", mockCtx, &bank.Balance{Token: token, Account: bob, Amount: "45", UpdatedAt: s.now}).Return(nil).Once()

	s.NoError(s.im.Transfer(mockCtx, token, alice, bob, "40"))
}

func (s *ledgerSuite) TestTransferInsufficientBalance() {
	s.accounts.On("FindOne", mockCtx, bob).Return(nil, domain.ErrNotFound).Once()
	s.balance(alice, "10")

	s.Equal(bank.ErrInsufficientBalance, s.im.Transfer(mockCtx, token, alice, bob, "11"))
}

func (s *ledgerSuite) TestTransferToFrozenAccount() {
	s.accounts.On("FindOne", mockCtx, bob).Return(&bank.Account{Address: bob, Frozen: true}, nil).Once()

	s.Equal(bank.ErrTransferRejected, s.im.Transfer(mockCtx, token, alice, bob, "1"))
}

func (s *ledgerSuite) TestTransferInvalidAmount() {
	s.Equal(bank.ErrInvalidAmount, s.im.Transfer(mockCtx, token, alice, bob, "-1"))
	s.Equal(bank.ErrInvalidAmount, s.im.Transfer(mockCtx, token, alice, bob, "abc"))
}

func (s *ledgerSuite) TestTransferZeroWritesNothing() {
	s.accounts.On("FindOne", mockCtx, bob).Return(nil, domain.ErrNotFound).Once()
	s.balance(alice, "")

	s.NoError(s.im.Transfer(mockCtx, token, alice, bob, "0"))
}

func (s *ledgerSuite) TestMintOverflow() {
	s.balance(alice, domain.NewAmount(domain.MaxUint256))

	s.Equal(bank.ErrInvalidAmount, s.im.Mint(mockCtx, token, alice, "1"))
}

func (s *ledgerSuite) TestMint() {
	s.balance(alice, "1")
	s.balances.On("Upsert", mockCtx, &bank.Balance{Token: token, Account: alice, Amount: "3", UpdatedAt: s.now}).Return(nil).Once()

	s.NoError(s.im.Mint(mockCtx, token, alice, "2"))
}

func (s *ledgerSuite) TestStoreError() {
	errDB := errors.New("db down")
	s.accounts.On("FindOne", mockCtx, bob).Return(nil, errDB).Once()

	s.Equal(errDB, s.im.Transfer(mockCtx, token, alice, bob, "1"))
}

type usecaseSuite struct {
	suite.Suite
	tx     *mDomain.Transactor
	ledger *mBank.Ledger
	im     bank.UseCase
}

func (s *usecaseSuite) SetupTest() {
	s.tx = &mDomain.Transactor{}
	s.ledger = &mBank.Ledger{}
	s.im = New(s.tx, s.ledger)
	s.tx.On("RunWithTransaction", mockCtx, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	}).Maybe()
}

func (s *usecaseSuite) TearDownTest() {
	s.ledger.AssertExpectations(s.T())
}

func TestUsecaseSuite(t *testing.T) {
	suite.Run(t, new(usecaseSuite))
}

func (s *usecaseSuite) TestDeposit() {
	s.ledger.On("Mint", mockCtx, token, alice, domain.Amount("7")).Return(nil).Once()

	s.NoError(s.im.Deposit(mockCtx, token, alice, "7"))
}

func (s *usecaseSuite) TestDepositInvalidAmount() {
	s.Equal(bank.ErrInvalidAmount, s.im.Deposit(mockCtx, token, alice, "0"))
	s.Equal(bank.ErrInvalidAmount, s.im.Deposit(mockCtx, token, alice, "x"))
}
