package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/event"
	"github.com/x-xyz/goauction/domain/nft"
)

type impl struct {
	tx      domain.Transactor
	ledger  nft.Ledger
	emitter event.Emitter
}

func New(tx domain.Transactor, ledger nft.Ledger, emitter event.Emitter) nft.UseCase {
	return &impl{
		tx:      tx,
		ledger:  ledger,
		emitter: emitter,
	}
}

func (im *impl) Get(c ctx.Ctx, id nft.Id) (*nft.Holding, error) {
	owner, err := im.ledger.OwnerOf(c, id)
	if err != nil {
		return nil, err
	}
	approved, err := im.ledger.GetApproved(c, id)
	if err != nil {
		return nil, err
	}
	return &nft.Holding{
		Contract: id.Contract.ToLower(),
		TokenId:  id.TokenId,
		Owner:    owner,
		Approved: approved,
	}, nil
}

func (im *impl) Approve(c ctx.Ctx, caller domain.Address, id nft.Id, spender domain.Address) error {
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.ledger.Approve(c, caller, id, spender); err != nil {
			return err
		}
		return im.emitter.Emit(c, id.Contract, nft.EventApproval, event.Args{
			"owner":    caller,
			"approved": spender.ToLower(),
			"tokenId":  id.TokenId,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"caller":  caller,
			"id":      id,
			"spender": spender,
		}).Error("Approve failed")
	}
	return err
}

func (im *impl) SetApprovalForAll(c ctx.Ctx, caller, contract, operator domain.Address, approved bool) error {
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.ledger.SetApprovalForAll(c, caller, contract, operator, approved); err != nil {
			return err
		}
		return im.emitter.Emit(c, contract, nft.EventApprovalForAll, event.Args{
			"owner":    caller,
			"operator": operator.ToLower(),
			"approved": approved,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"caller":   caller,
			"contract": contract,
			"operator": operator,
		}).Error("SetApprovalForAll failed")
	}
	return err
}

func (im *impl) Mint(c ctx.Ctx, to domain.Address, id nft.Id) error {
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.ledger.Mint(c, to, id); err != nil {
			return err
		}
		return im.emitter.Emit(c, id.Contract, nft.EventTransfer, event.Args{
			"from":    domain.EmptyAddress,
			"to":      to.ToLower(),
			"tokenId": id.TokenId,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"to":  to,
			"id":  id,
		}).Error("Mint failed")
	}
	return err
}
