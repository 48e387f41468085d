package usecase

import (
	"math/big"

	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/pricefeed"
)

// usdValue returns amount * mantissa / 10^decimals. Amounts carry 18
// fractional digits, so the result is a USD value with 18 decimals whatever
// the precision of the feed.
func usdValue(amount, mantissa *big.Int, decimals uint8) (*big.Int, error) {
	if mantissa == nil || mantissa.Sign() <= 0 {
		return nil, pricefeed.ErrInvalidPrice
	}
	v := new(big.Int).Mul(amount, mantissa)
	if v.Cmp(domain.MaxUint256) > 0 {
		return nil, pricefeed.ErrOverflow
	}
	return v.Quo(v, pow10(decimals)), nil
}

func pow10(n uint8) *big.Int {
	return new(big.Int).Exp(domain.Big10, big.NewInt(int64(n)), nil)
}
