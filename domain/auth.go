package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/x-xyz/goauction/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// GetNonce issues a one-time nonce the address has to sign to log in.
	GetNonce(ctx ctx.Ctx, address Address) (string, error)
	// SignToken verifies the signed login message and returns a jwt for address.
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
