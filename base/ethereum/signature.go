package ethereum

import (
	"errors"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrSignatureLength = errors.New("signature must be 65 bytes long")
	ErrSignatureV      = errors.New("invalid signature recovery id")
)

// ValidateMsgSignature reports whether signature is signer's personal-sign of message
func ValidateMsgSignature(message []byte, signature, signer string) (bool, error) {
	return validateSignature(accounts.TextHash(message), signature, signer)
}

// ValidateHashSignature reports whether signature is signer's signature of a 32 bytes hash
func ValidateHashSignature(hash []byte, signature, signer string) (bool, error) {
	return validateSignature(hash, signature, signer)
}

func validateSignature(hash []byte, signature, signer string) (bool, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return false, err
	}
	recovered, err := RecoverSigner(hash, sig)
	if err != nil {
		return false, err
	}
	return recovered == common.HexToAddress(signer), nil
}

// RecoverSigner returns the account that signed hash. V may be given as 0/1
// or as 27/28, wallets produce both. sig is left untouched.
func RecoverSigner(hash []byte, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, ErrSignatureLength
	}

	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	v := normalized[crypto.RecoveryIDOffset]
	if v >= 27 {
		v -= 27
	}
	if v != 0 && v != 1 {
		return common.Address{}, ErrSignatureV
	}
	normalized[crypto.RecoveryIDOffset] = v

	pub, err := crypto.SigToPub(hash, normalized)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}
