package cache

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/service/cache/provider"
	"github.com/x-xyz/goauction/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(Config{
		Provider: ts.cache,
		Prefix:   "testing",
		Ttl:      time.Minute,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.Require().NoError(err)
	ts.Require().NoError(ts.cache.Set(mockCtx, ts.im.key(k), sv, time.Minute))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, ttl, err := ts.cache.Get(mockCtx, ts.im.key(k))
	ts.Require().NoError(err)
	ts.True(ttl > 0 && ttl <= time.Minute)

	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	ts.NoError(ts.im.Del(mockCtx, k))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))
}

func (ts *testsuite) TestGetOrLoad() {
	var (
		k     = "key"
		v     = value{"value"}
		calls = 0
	)
	load := func() (interface{}, error) {
		calls++
		return &v, nil
	}

	c := &value{}
	ts.NoError(ts.im.GetOrLoad(mockCtx, k, c, load))
	ts.Equal(v, *c)

	c = &value{}
	ts.NoError(ts.im.GetOrLoad(mockCtx, k, c, load))
	ts.Equal(v, *c)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetOrLoadSharesConcurrentMisses() {
	const n = 5
	var (
		mu      sync.Mutex
		calls   = 0
		release = make(chan struct{})
		wg      sync.WaitGroup
	)
	load := func() (interface{}, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		<-release
		return &value{"round"}, nil
	}

	results := make([]value, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = ts.im.GetOrLoad(mockCtx, "feed", &results[i], load)
		}(i)
	}
	// let every caller reach the load before it returns
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < n; i++ {
		ts.NoError(errs[i])
		ts.Equal(value{"round"}, results[i])
	}
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetOrLoadFailed() {
	errLoad := errors.New("load failed")

	err := ts.im.GetOrLoad(mockCtx, "key", &value{}, func() (interface{}, error) {
		return nil, errLoad
	})
	ts.Equal(errLoad, err)
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "key", &value{}))
}

func (ts *testsuite) TestGetOrLoadTypeMismatch() {
	err := ts.im.GetOrLoad(mockCtx, "key", &value{}, func() (interface{}, error) {
		return value{"not a pointer"}, nil
	})
	ts.Error(err)
}

type upperCodec struct{}

func (upperCodec) Marshal(v interface{}) ([]byte, error) {
	return []byte(v.(*value).Value), nil
}

func (upperCodec) Unmarshal(data []byte, v interface{}) error {
	v.(*value).Value = string(data) + "!"
	return nil
}

func (ts *testsuite) TestCustomCodec() {
	im := New(Config{Provider: ts.cache, Prefix: "codec", Ttl: time.Minute, Codec: upperCodec{}})
	ts.Require().NoError(im.Set(mockCtx, "k", &value{"raw"}))

	raw, _, err := ts.cache.Get(mockCtx, "codec:k")
	ts.Require().NoError(err)
	ts.Equal("raw", string(raw))

	c := &value{}
	ts.Require().NoError(im.Get(mockCtx, "k", c))
	ts.Equal("raw!", c.Value)
}
