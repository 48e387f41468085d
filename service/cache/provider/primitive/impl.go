package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive creates an in-process cache of size MB
func NewPrimitive(name string, size int) provider.Provider {
	return &impl{name, freecache.NewCache(size * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, exp, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).WithField("cache", im.name).Error("cache.GetWithExpiration failed")
		return nil, 0, err
	}

	if exp == 0 {
		return val, 0, nil
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl <= 0 {
		return nil, 0, provider.ErrNotFound
	}
	return val, ttl, nil
}

// Set stores value for ttl rounded up to whole seconds. Zero ttl never expires.
func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	secs := int((ttl + time.Second - 1) / time.Second)
	if err := im.cache.Set([]byte(key), value, secs); err != nil {
		c.WithField("err", err).WithField("key", key).WithField("cache", im.name).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
