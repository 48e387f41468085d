package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

var (
	Big0  = big.NewInt(0)
	Big10 = big.NewInt(10)

	// MaxUint256 is the largest amount a ledger can hold.
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// NativeToken is the payment token sentinel for the chain's native currency.
const NativeToken = EmptyAddress

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsZero reports whether a is unset or the zero address.
func (a Address) IsZero() bool {
	return a.IsEmpty() || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) IsNative() bool {
	return a.IsZero()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) BigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok || id.Sign() < 0 {
		return nil, xerrors.Errorf("invalid id %s", i)
	}
	return id, nil
}

func (i TokenId) ToHexString() (string, error) {
	id, err := i.BigInt()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%064x", id), nil
}

// Amount is an unsigned integer quantity in a token's smallest unit. It is kept
// as a decimal string so it survives json and bson without precision loss.
type Amount string

const ZeroAmount = Amount("0")

func NewAmount(v *big.Int) Amount {
	if v == nil {
		return ZeroAmount
	}
	return Amount(v.String())
}

func NewAmountFromInt(v int64) Amount {
	return NewAmount(big.NewInt(v))
}

// BigInt returns the amount as a fresh big.Int. Empty or malformed amounts are zero.
func (a Amount) BigInt() *big.Int {
	v, ok := new(big.Int).SetString(string(a), 10)
	if !ok {
		return new(big.Int)
	}
	return v
}

func (a Amount) IsValid() bool {
	v, ok := new(big.Int).SetString(string(a), 10)
	return ok && v.Sign() >= 0 && v.Cmp(MaxUint256) <= 0
}

func (a Amount) IsZero() bool {
	return a.BigInt().Sign() == 0
}

func (a Amount) Cmp(b Amount) int {
	return a.BigInt().Cmp(b.BigInt())
}

func (a Amount) Add(b Amount) Amount {
	return NewAmount(new(big.Int).Add(a.BigInt(), b.BigInt()))
}

func (a Amount) String() string {
	if len(a) == 0 {
		return string(ZeroAmount)
	}
	return string(a)
}

// Decimal scales the amount down by the given number of decimals for display.
func (a Amount) Decimal(decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(a.BigInt(), -decimals)
}
