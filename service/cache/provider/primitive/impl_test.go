package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("test", 1)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGetMissing() {
	_, _, err := ts.im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestSetAndExpire() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), time.Second))

	val, ttl, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal([]byte("value"), val)
	ts.True(ttl > 0 && ttl <= time.Second, ttl)

	time.Sleep(1100 * time.Millisecond)

	_, _, err = ts.im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestSubSecondTtlIsNotForever() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), 100*time.Millisecond))

	_, ttl, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.NotZero(ttl)
}

func (ts *testsuite) TestZeroTtl() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), 0))

	val, ttl, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal([]byte("value"), val)
	ts.Zero(ttl)
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "key"))

	_, _, err := ts.im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)

	ts.NoError(ts.im.Del(mockCtx, "key"))
}
