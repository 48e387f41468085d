package contract

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/x-xyz/goauction/base/abi"
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/chain"
)

// Erc721 checks asset contracts on one chain through ERC-165
type Erc721 struct {
	chainService      chain.Client
	chainId           int32
	abi               ethabi.ABI
	erc721InterfaceId [4]byte
}

func NewErc721(chainService chain.Client, chainId int32) *Erc721 {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("80ac58cd"))
	return &Erc721{
		abi:               baseabi.ERC721TokenABI,
		chainService:      chainService,
		chainId:           chainId,
		erc721InterfaceId: interfaceId,
	}
}

// IsERC721 reports false for accounts without code and for contracts that
// revert on supportsInterface. Rpc failures are returned as errors.
func (e *Erc721) IsERC721(ctx bCtx.Ctx, contract domain.Address) (bool, error) {
	addr := common.HexToAddress(string(contract))

	if ok, err := e.chainService.IsContract(ctx, e.chainId, addr); err != nil {
		ctx.WithFields(log.Fields{"err": err, "contract": contract}).Error("chainService.IsContract failed")
		return false, err
	} else if !ok {
		return false, nil
	}

	unpacked, err := e.chainService.Call(ctx, e.chainId, addr, nil, e.abi, "supportsInterface", e.erc721InterfaceId)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "contract": contract}).Warn("supportsInterface reverted")
		return false, nil
	}
	res, ok := unpacked[0].(bool)
	return ok && res, nil
}
