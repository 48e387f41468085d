package nft

import (
	"errors"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

const (
	EventTransfer       = "Transfer"
	EventApproval       = "Approval"
	EventApprovalForAll = "ApprovalForAll"
)

var (
	ErrTokenNotFound       = errors.New("token not found")
	ErrTokenExists         = errors.New("token already minted")
	ErrNotOwnerNorApproved = errors.New("caller is not owner nor approved")
	ErrWrongFrom           = errors.New("transfer from incorrect owner")
	ErrInvalidRecipient    = errors.New("transfer to the zero address")
)

type Id struct {
	Contract domain.Address `json:"contract" bson:"contract"`
	TokenId  domain.TokenId `json:"tokenId" bson:"tokenId"`
}

// Holding is the custody record of one non-fungible token.
type Holding struct {
	Contract  domain.Address `json:"contract" bson:"contract"`
	TokenId   domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner     domain.Address `json:"owner" bson:"owner"`
	Approved  domain.Address `json:"approved" bson:"approved"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (h *Holding) ToId() Id {
	return Id{Contract: h.Contract, TokenId: h.TokenId}
}

// Operator is an approval-for-all grant.
type Operator struct {
	Contract domain.Address `json:"contract" bson:"contract"`
	Owner    domain.Address `json:"owner" bson:"owner"`
	Operator domain.Address `json:"operator" bson:"operator"`
	Approved bool           `json:"approved" bson:"approved"`
}

type OperatorId struct {
	Contract domain.Address `json:"contract" bson:"contract"`
	Owner    domain.Address `json:"owner" bson:"owner"`
	Operator domain.Address `json:"operator" bson:"operator"`
}

type HoldingRepo interface {
	FindOne(c ctx.Ctx, id Id) (*Holding, error)
	Insert(c ctx.Ctx, h *Holding) error
	Upsert(c ctx.Ctx, h *Holding) error
}

type OperatorRepo interface {
	FindOne(c ctx.Ctx, id OperatorId) (*Operator, error)
	Upsert(c ctx.Ctx, o *Operator) error
}

// Ledger is the asset-ownership ledger the auction engine escrows against.
// Calls are not transactional on their own.
type Ledger interface {
	OwnerOf(c ctx.Ctx, id Id) (domain.Address, error)
	GetApproved(c ctx.Ctx, id Id) (domain.Address, error)
	IsApprovedForAll(c ctx.Ctx, contract, owner, operator domain.Address) (bool, error)
	Approve(c ctx.Ctx, caller domain.Address, id Id, spender domain.Address) error
	SetApprovalForAll(c ctx.Ctx, caller, contract, operator domain.Address, approved bool) error
	TransferFrom(c ctx.Ctx, operator, from, to domain.Address, id Id) error
	Mint(c ctx.Ctx, to domain.Address, id Id) error
}

type UseCase interface {
	Get(c ctx.Ctx, id Id) (*Holding, error)
	Approve(c ctx.Ctx, caller domain.Address, id Id, spender domain.Address) error
	SetApprovalForAll(c ctx.Ctx, caller, contract, operator domain.Address, approved bool) error
	Mint(c ctx.Ctx, to domain.Address, id Id) error
}
