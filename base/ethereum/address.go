package ethereum

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func GenerateKey() (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	if privateKey, err := crypto.GenerateKey(); err != nil {
		return nil, nil, err
	} else {
		publicKey := privateKey.Public().(*ecdsa.PublicKey)
		return privateKey, publicKey, nil
	}
}

// CloneAddress derives the address of the nonce-th instance deployed by
// deployer from implementation: keccak256(deployer ‖ implementation ‖ nonce)[12:].
// The nonce is left padded to 32 bytes.
func CloneAddress(deployer, implementation string, nonce uint64) string {
	n := common.LeftPadBytes(new(big.Int).SetUint64(nonce).Bytes(), 32)
	hash := crypto.Keccak256(
		common.HexToAddress(deployer).Bytes(),
		common.HexToAddress(implementation).Bytes(),
		n,
	)
	return common.BytesToAddress(hash[12:]).Hex()
}

func IsHexAddress(s string) bool {
	return common.IsHexAddress(s)
}
