package usecase

import (
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/nft"
)

type ledgerImpl struct {
	holdings  nft.HoldingRepo
	operators nft.OperatorRepo
	now       func() time.Time
}

// NewLedger creates the mongo backed custody ledger. Transfers follow ERC-721:
// the operator has to be the owner, the approved address or an approved
// operator of the owner.
func NewLedger(holdings nft.HoldingRepo, operators nft.OperatorRepo) nft.Ledger {
	return &ledgerImpl{
		holdings:  holdings,
		operators: operators,
		now:       time.Now,
	}
}

func (l *ledgerImpl) find(c ctx.Ctx, id nft.Id) (*nft.Holding, error) {
	h, err := l.holdings.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, nft.ErrTokenNotFound
	} else if err != nil {
		return nil, err
	}
	return h, nil
}

func (l *ledgerImpl) OwnerOf(c ctx.Ctx, id nft.Id) (domain.Address, error) {
	h, err := l.find(c, id)
	if err != nil {
		return "", err
	}
	return h.Owner, nil
}

func (l *ledgerImpl) GetApproved(c ctx.Ctx, id nft.Id) (domain.Address, error) {
	h, err := l.find(c, id)
	if err != nil {
		return "", err
	}
	if h.Approved.IsEmpty() {
		return domain.EmptyAddress, nil
	}
	return h.Approved, nil
}

func (l *ledgerImpl) IsApprovedForAll(c ctx.Ctx, contract, owner, operator domain.Address) (bool, error) {
	o, err := l.operators.FindOne(c, nft.OperatorId{Contract: contract, Owner: owner, Operator: operator})
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return o.Approved, nil
}

func (l *ledgerImpl) Approve(c ctx.Ctx, caller domain.Address, id nft.Id, spender domain.Address) error {
	h, err := l.find(c, id)
	if err != nil {
		return err
	}
	if !h.Owner.Equals(caller) {
		if ok, err := l.IsApprovedForAll(c, id.Contract, h.Owner, caller); err != nil {
			return err
		} else if !ok {
			return nft.ErrNotOwnerNorApproved
		}
	}
	h.Approved = spender
	h.UpdatedAt = l.now().UTC()
	return l.holdings.Upsert(c, h)
}

func (l *ledgerImpl) SetApprovalForAll(c ctx.Ctx, caller, contract, operator domain.Address, approved bool) error {
	return l.operators.Upsert(c, &nft.Operator{
		Contract: contract,
		Owner:    caller,
		Operator: operator,
		Approved: approved,
	})
}

func (l *ledgerImpl) TransferFrom(c ctx.Ctx, operator, from, to domain.Address, id nft.Id) error {
	if to.IsZero() {
		return nft.ErrInvalidRecipient
	}
	h, err := l.find(c, id)
	if err != nil {
		return err
	}
	if !h.Owner.Equals(from) {
		return nft.ErrWrongFrom
	}
	if ok, err := l.isAuthorized(c, h, operator); err != nil {
		return err
	} else if !ok {
		return nft.ErrNotOwnerNorApproved
	}

	h.Owner = to
	h.Approved = ""
	h.UpdatedAt = l.now().UTC()
	return l.holdings.Upsert(c, h)
}

func (l *ledgerImpl) Mint(c ctx.Ctx, to domain.Address, id nft.Id) error {
	if to.IsZero() {
		return nft.ErrInvalidRecipient
	}
	err := l.holdings.Insert(c, &nft.Holding{
		Contract:  id.Contract,
		TokenId:   id.TokenId,
		Owner:     to,
		UpdatedAt: l.now().UTC(),
	})
	if err == domain.ErrConflict {
		return nft.ErrTokenExists
	}
	return err
}

func (l *ledgerImpl) isAuthorized(c ctx.Ctx, h *nft.Holding, operator domain.Address) (bool, error) {
	if h.Owner.Equals(operator) || (!h.Approved.IsZero() && h.Approved.Equals(operator)) {
		return true, nil
	}
	return l.IsApprovedForAll(c, h.Contract, h.Owner, operator)
}
