// Package cache stores decoded values, such as oracle rounds and http
// responses, in a byte Provider under a fixed key prefix.
package cache

import (
	"encoding/json"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/service/cache/provider"
)

// ErrNotFound is a miss. It is the provider's sentinel, so either can be
// compared against.
var ErrNotFound = provider.ErrNotFound

// Loader produces the value of a missed key. It returns a pointer of the
// container's type.
type Loader func() (interface{}, error)

// Codec turns values into provider bytes and back.
type Codec interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

// JSON is the codec used when Config leaves it empty.
var JSON Codec = jsonCodec{}

type Service interface {
	// GetOrLoad fills container from the cache. On a miss it calls load and
	// stores the result. Concurrent misses on one key share a single load.
	GetOrLoad(c ctx.Ctx, key string, container interface{}, load Loader) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type Config struct {
	Provider provider.Provider
	Prefix   string
	Ttl      time.Duration
	Codec    Codec
}
