package contract

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/x-xyz/goauction/base/abi"
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/chain"
)

// Erc1271Contract validates signatures of contract wallets
type Erc1271Contract interface {
	IsValidSignature(ctx bCtx.Ctx, wallet domain.Address, hash common.Hash, signature []byte) (bool, error)
}

type Erc1271 struct {
	chainService chain.Client
	chainId      int32
	abi          ethabi.ABI
	magicValue   [4]byte
}

func NewErc1271(chainService chain.Client, chainId int32) Erc1271Contract {
	var magicValue [4]byte
	copy(magicValue[:], common.Hex2Bytes("1626ba7e"))
	return &Erc1271{
		abi:          baseabi.ERC1271ABI,
		chainService: chainService,
		chainId:      chainId,
		magicValue:   magicValue,
	}
}

func (e *Erc1271) IsValidSignature(ctx bCtx.Ctx, wallet domain.Address, hash common.Hash, signature []byte) (bool, error) {
	unpacked, err := e.chainService.Call(ctx, e.chainId, common.HexToAddress(string(wallet)), nil, e.abi, "isValidSignature", hash, signature)
	if err != nil {
		return false, err
	}
	res, ok := unpacked[0].([4]byte)
	return ok && res == e.magicValue, nil
}
