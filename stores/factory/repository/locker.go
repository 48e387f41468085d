package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain/factory"
	"github.com/x-xyz/goauction/service/redis"
)

// unlockScript deletes the key only while it still holds our token, so an
// expired lock taken over by another process is left alone.
var unlockScript = redis.NewScript("factoryUnlock", 1, `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type lockerImpl struct {
	redis  redis.Service
	tokens sync.Map
}

func NewLocker(r redis.Service) factory.Locker {
	return &lockerImpl{redis: r}
}

func (l *lockerImpl) Lock(c ctx.Ctx, key string, ttl time.Duration) error {
	token := uuid.NewString()
	if err := l.redis.SetNX(c, key, []byte(token), ttl); err == redis.ErrNotFound {
		return factory.ErrCreationInProgress
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("redis.SetNX failed")
		return err
	}
	l.tokens.Store(key, token)
	return nil
}

func (l *lockerImpl) Unlock(c ctx.Ctx, key string) error {
	token, ok := l.tokens.LoadAndDelete(key)
	if !ok {
		return nil
	}
	if _, err := l.redis.ScriptDo(c, unlockScript, key, token); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("redis.ScriptDo failed")
		return err
	}
	return nil
}
