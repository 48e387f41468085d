package usecase

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/ethereum"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/chain/contract"
	"github.com/x-xyz/goauction/service/redis"
)

const (
	defaultTokenTtl = 24 * time.Hour
	defaultNonceTtl = 10 * time.Minute
)

// takeNonceScript reads and deletes a nonce in one step so it is used once
var takeNonceScript = redis.NewScript("takeNonce", 1, `
local v = redis.call('GET', KEYS[1])
if v then
	redis.call('DEL', KEYS[1])
end
return v
`)

type AuthUseCaseCfg struct {
	JwtSecret    string
	SignatureMsg string
	TokenTtl     time.Duration
	NonceTtl     time.Duration
	Redis        redis.Service
	// Erc1271 verifies contract wallet signatures, optional
	Erc1271 contract.Erc1271Contract
}

type impl struct {
	jwtSecret    []byte
	signatureMsg string
	tokenTtl     time.Duration
	nonceTtl     time.Duration
	redis        redis.Service
	erc1271      contract.Erc1271Contract
	now          func() time.Time
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	im := &impl{
		jwtSecret:    []byte(cfg.JwtSecret),
		signatureMsg: cfg.SignatureMsg,
		tokenTtl:     cfg.TokenTtl,
		nonceTtl:     cfg.NonceTtl,
		redis:        cfg.Redis,
		erc1271:      cfg.Erc1271,
		now:          time.Now,
	}
	if im.tokenTtl <= 0 {
		im.tokenTtl = defaultTokenTtl
	}
	if im.nonceTtl <= 0 {
		im.nonceTtl = defaultNonceTtl
	}
	return im
}

func nonceKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxNonce, address.ToLowerStr())
}

func (im *impl) makeMessageWithNonce(nonce string) []byte {
	return []byte(fmt.Sprintf(im.signatureMsg, nonce))
}

func (im *impl) GetNonce(c ctx.Ctx, address domain.Address) (string, error) {
	nonce := uuid.NewString()
	if err := im.redis.Set(c, nonceKey(address), []byte(nonce), im.nonceTtl); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("redis.Set failed")
		return "", err
	}
	return nonce, nil
}

func (im *impl) SignToken(c ctx.Ctx, address domain.Address, signature string) (string, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"address":   address,
		"signature": signature,
	})

	reply, err := im.redis.ScriptDo(c, takeNonceScript, nonceKey(address))
	if err == redis.ErrNotFound {
		return "", domain.ErrUnauthorized
	} else if err != nil {
		c.WithField("err", err).Error("redis.ScriptDo failed")
		return "", err
	}
	nonce, ok := reply.([]byte)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	if err := im.verify(c, address, im.makeMessageWithNonce(string(nonce)), signature); err != nil {
		return "", err
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: im.now().Add(im.tokenTtl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

// verify accepts a personal-sign signature from the address itself, or one
// its contract wallet approves
func (im *impl) verify(c ctx.Ctx, address domain.Address, msg []byte, signature string) error {
	valid, err := ethereum.ValidateMsgSignature(msg, signature, string(address))
	if err == nil && valid {
		return nil
	}
	if im.erc1271 == nil {
		return domain.ErrInvalidSignature
	}

	sig, decodeErr := hexutil.Decode(signature)
	if decodeErr != nil {
		return domain.ErrInvalidSignature
	}
	valid, err = im.erc1271.IsValidSignature(c, address, common.BytesToHash(accounts.TextHash(msg)), sig)
	if err != nil {
		c.WithField("err", err).Warn("erc1271.IsValidSignature failed")
		return domain.ErrInvalidSignature
	}
	if !valid {
		return domain.ErrInvalidSignature
	}
	return nil
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}
	return "", domain.ErrUnauthorized
}
