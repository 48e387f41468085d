package cache

import (
	"reflect"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/cache/provider"
)

var met = metrics.New("cache")

type impl struct {
	provider provider.Provider
	prefix   string
	ttl      time.Duration
	codec    Codec
	loads    singleflight.Group
}

func New(cfg Config) Service {
	if cfg.Codec == nil {
		cfg.Codec = JSON
	}
	return &impl{
		provider: cfg.Provider,
		prefix:   cfg.Prefix,
		ttl:      cfg.Ttl,
		codec:    cfg.Codec,
	}
}

func (im *impl) key(key string) string {
	return keys.RedisKey(im.prefix, key)
}

func (im *impl) GetOrLoad(c ctx.Ctx, key string, container interface{}, load Loader) error {
	err := im.Get(c, key, container)
	if err == nil {
		met.BumpSum("hit", 1, "pfx", im.prefix)
		return nil
	} else if err != ErrNotFound {
		// the source still answers when the cache is down
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Warn("cache get failed, loading")
	}
	met.BumpSum("miss", 1, "pfx", im.prefix)

	val, err, shared := im.loads.Do(key, func() (interface{}, error) {
		val, err := load()
		if err != nil {
			return nil, err
		}
		if err := im.Set(c, key, val); err != nil {
			c.WithFields(log.Fields{
				"err": err,
				"key": key,
			}).Warn("cache set failed")
		}
		return val, nil
	})
	if err != nil {
		return err
	}
	if shared {
		met.BumpSum("shared", 1, "pfx", im.prefix)
	}

	rv := reflect.ValueOf(val)
	cv := reflect.ValueOf(container)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Type() != cv.Type() {
		return xerrors.Errorf("loader returned %T, want %T", val, container)
	}
	cv.Elem().Set(rv.Elem())
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = im.key(key)

	data, _, err := im.provider.Get(c, key)
	if err == ErrNotFound {
		return err
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("provider.Get failed")
		return err
	}
	if err := im.codec.Unmarshal(data, container); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("codec.Unmarshal failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = im.key(key)

	data, err := im.codec.Marshal(value)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("codec.Marshal failed")
		return err
	}
	if err := im.provider.Set(c, key, data, im.ttl); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("provider.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = im.key(key)

	if err := im.provider.Del(c, key); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("provider.Del failed")
		return err
	}
	return nil
}
