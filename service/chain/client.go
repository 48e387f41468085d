package chain

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/goauction/base/ctx"
	bEth "github.com/x-xyz/goauction/base/ethereum"
	"github.com/x-xyz/goauction/base/log"
)

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	ErrNotContract      = errors.New("no contract code at address")
)

const defaultMaxInflight = 16

type ClientCfg struct {
	RpcUrls        map[int32]string
	ArchiveRpcUrls map[int32]string
	// MaxInflight bounds concurrent rpc calls per endpoint.
	MaxInflight int
}

type Client interface {
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	IsContract(bCtx.Ctx, int32, common.Address) (bool, error)
}

type clientImpl struct {
	clients        map[int32]*bEth.ThrottledClient
	archiveClients map[int32]*bEth.ThrottledClient
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	n := cfg.MaxInflight
	if n <= 0 {
		n = defaultMaxInflight
	}
	dial := func(urls map[int32]string) map[int32]*bEth.ThrottledClient {
		clients := make(map[int32]*bEth.ThrottledClient)
		for chainId, url := range urls {
			client, err := ethclient.DialContext(ctx, url)
			if err != nil {
				anyerr = err
				ctx.WithFields(log.Fields{
					"err":     err,
					"chainId": chainId,
					"url":     url,
				}).Warn("failed to dial rpc")
				// soft warning, still let the server start
				continue
			}
			clients[chainId] = bEth.NewThrottledClient(client, n)
		}
		return clients
	}
	return &clientImpl{
		clients:        dial(cfg.RpcUrls),
		archiveClients: dial(cfg.ArchiveRpcUrls),
	}, anyerr
}

func (c *clientImpl) client(chainId int32, blk *big.Int) (*bEth.ThrottledClient, bool) {
	if blk == nil {
		client, ok := c.clients[chainId]
		return client, ok
	}
	client, ok := c.archiveClients[chainId]
	return client, ok
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.client(chainId, blk)
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) IsContract(ctx bCtx.Ctx, chainId int32, addr common.Address) (bool, error) {
	client, ok := c.client(chainId, nil)
	if !ok {
		return false, ErrUnsupportedChain
	}
	code, err := client.CodeAt(ctx, addr, nil)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "addr": addr.Hex()}).Error("client.CodeAt failed")
		return false, err
	}
	return len(code) > 0, nil
}
