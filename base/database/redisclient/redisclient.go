package redisclient

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/goauction/base/backoff"
	"github.com/x-xyz/goauction/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second

	defaultMaxActive = 1024
	// dial attempts after the first one when Retry is set
	dialRetries = 3
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	// PoolMultiplier sizes the pool as NumCPU * PoolMultiplier
	PoolMultiplier float64
	Retry          bool
}

// MustConnectRedis connects to one redis uri
// NOTE This function panics if the connection fails.
func MustConnectRedis(uri, password string, param ...RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param...)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// ConnectRedis builds a pool for uri, either host:port or a redis:// url, and
// checks a connection can be borrowed from it
func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	maxActive, retry := defaultMaxActive, false
	if len(param) > 0 {
		maxActive = poolSize(runtime.NumCPU(), param[0].PoolMultiplier)
		retry = param[0].Retry
	}

	p := &redis.Pool{
		// allowing 25% idle connection
		MaxIdle:      maxActive/4 + 1,
		MaxActive:    maxActive,
		Wait:         true,
		IdleTimeout:  idleTimeout,
		Dial:         dialer(uri, password),
		TestOnBorrow: testOnBorrow,
	}

	logger := log.Log().WithField("redisURI", uri)
	bo := backoff.NewExponential(time.Second, 8*time.Second)
	var err error
	for attempt := 0; ; attempt++ {
		if err = ping(p); err == nil {
			break
		}
		logger.WithFields(log.Fields{"err": err, "attempt": attempt}).Error("fail to dial Redis")
		// NOTE retry is only false when running unit tests.
		if !retry || attempt >= dialRetries {
			return nil, err
		}
		if err := bo.Backoff(context.Background()); err != nil {
			return nil, err
		}
	}

	logger.WithField("maxActive", maxActive).Info("redis connected")
	return p, nil
}

func poolSize(cpus int, multiplier float64) int {
	if n := int(float64(cpus) * multiplier); n > 0 {
		return n
	}
	return 1
}

func dialer(uri, password string) func() (redis.Conn, error) {
	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	if strings.HasPrefix(uri, "redis://") || strings.HasPrefix(uri, "rediss://") {
		return func() (redis.Conn, error) {
			return redis.DialURL(uri, opts...)
		}
	}
	return func() (redis.Conn, error) {
		return redis.Dial("tcp", uri, opts...)
	}
}

func testOnBorrow(c redis.Conn, t time.Time) error {
	// No need to test if it's been recycled less than 1 sec.
	if time.Since(t) < time.Second {
		return nil
	}
	_, err := c.Do("PING")
	return err
}

func ping(p *redis.Pool) error {
	c, err := p.Dial()
	if err != nil {
		return err
	}
	defer c.Close()
	return testOnBorrow(c, time.Time{})
}
