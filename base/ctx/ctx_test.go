package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/log"
)

type ctxSuite struct {
	suite.Suite
}

func TestCtxSuite(t *testing.T) {
	suite.Run(t, new(ctxSuite))
}

func (s *ctxSuite) TestValuesReachContext() {
	c := WithValue(Background(), "requestID", "abc")
	c = WithValues(c, log.Fields{
		"table": "auctions",
		"op":    "findone",
	})
	s.Equal("abc", c.Value("requestID"))
	s.Equal("auctions", c.Value("table"))
	s.Equal("findone", c.Value("op"))
	s.Nil(c.Value("missing"))
}

func (s *ctxSuite) TestCancelAndTimeout() {
	tests := []struct {
		desc string
		open func(Ctx) (Ctx, func())
		want error
	}{
		{
			desc: "cancel",
			open: func(p Ctx) (Ctx, func()) {
				c, cancel := WithCancel(p)
				cancel()
				return c, cancel
			},
			want: context.Canceled,
		},
		{
			desc: "timeout",
			open: func(p Ctx) (Ctx, func()) {
				c, cancel := WithTimeout(p, 10*time.Millisecond)
				return c, cancel
			},
			want: context.DeadlineExceeded,
		},
	}
	for _, t := range tests {
		parent := WithValue(Background(), "requestID", t.desc)
		c, cancel := t.open(parent)
		select {
		case <-c.Done():
		case <-time.After(time.Second):
			s.Fail("not done", t.desc)
		}
		s.Equal(t.want, c.Err(), t.desc)
		s.Equal(t.desc, c.Value("requestID"), t.desc)
		s.Equal(parent.Logger, c.Logger, t.desc)
		cancel()
	}
}

func (s *ctxSuite) TestWrap() {
	parent := WithValue(Background(), "requestID", "abc")
	inner := context.WithValue(context.Background(), "session", 1)
	c := Wrap(parent, inner)
	s.Equal(1, c.Value("session"))
	s.Nil(c.Value("requestID"))
	s.Equal(parent.Logger, c.Logger)
}

func (s *ctxSuite) TestDetachOutlivesParent() {
	parent, cancel := WithTimeout(WithValue(Background(), "requestID", "abc"), time.Hour)
	c := Detach(parent)
	cancel()

	s.Error(parent.Err())
	s.NoError(c.Err())
	s.Nil(c.Done())
	_, ok := c.Deadline()
	s.False(ok)
	s.Equal("abc", c.Value("requestID"))
	s.Equal(parent.Logger, c.Logger)

	// it can still be bounded again
	child, cancelChild := WithCancel(c)
	cancelChild()
	s.Equal(context.Canceled, child.Err())
}
