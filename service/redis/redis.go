package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain/keys"
)

// Forever marks a key without expiration
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist, or when a
	// conditional write such as SetNX did not take place.
	ErrNotFound = redis.ErrNil
	// ErrGapTime is returned when no pool is available
	ErrGapTime = errors.New("redis pool unavailable")
	// ErrNoTTL is returned by TTL when the key exists without expiration
	ErrNoTTL = errors.New("key has no ttl")
)

// Service is the redis command surface used by this service
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX sets key only if it does not exist. ErrNotFound means the key exists.
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	// TTL returns the remaining seconds of key
	TTL(context ctx.Ctx, key string) (int, error)
	// ScriptDo runs a lua script. A nil reply is returned as ErrNotFound.
	ScriptDo(context ctx.Ctx, hdl *ScriptHdl, keysAndArgs ...interface{}) (interface{}, error)
}

// ScriptHdl is a lua script registered by its sha
type ScriptHdl struct {
	name     string
	keyCount int
	script   *redis.Script
}

// NewScript creates a script handle. keyCount is the number of leading
// arguments that are keys.
func NewScript(name string, keyCount int, src string) *ScriptHdl {
	return &ScriptHdl{
		name:     name,
		keyCount: keyCount,
		script:   redis.NewScript(keyCount, src),
	}
}

// Do runs EVALSHA and falls back to EVAL when the script is not loaded yet.
func (h *ScriptHdl) Do(conn redis.Conn, keysAndArgs ...interface{}) (interface{}, error) {
	reply, err := h.script.Do(conn, keysAndArgs...)
	if err == nil && reply == nil {
		return nil, ErrNotFound
	}
	return reply, err
}

func (h *ScriptHdl) prefix(keysAndArgs ...interface{}) string {
	if h.keyCount == 0 || len(keysAndArgs) == 0 {
		return h.name
	}
	if key, ok := keysAndArgs[0].(string); ok {
		return keys.GetPrefix(key)
	}
	return h.name
}
