package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (s *testsuite) TestExponential() {
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	expected := []time.Duration{1, 2, 4, 4}
	for _, d := range expected {
		s.Equal(d*time.Millisecond, b.Next())
		s.NoError(b.Backoff(context.Background()))
	}
	s.Equal(4, b.Attempts())

	b.Reset()
	s.Equal(time.Millisecond, b.Next())
	s.Equal(0, b.Attempts())
}

func (s *testsuite) TestUnlimitedDoesNotWrap() {
	b := NewExponential(time.Duration(1<<62), 0)
	s.Equal(time.Duration(1<<62), b.grow(b.Next()))
	s.Equal(time.Duration(1<<62)+1, b.grow(time.Duration(1<<62)+1))
}

func (s *testsuite) TestCanceled() {
	b := NewExponential(time.Hour, 0)
	c, cancel := context.WithCancel(context.Background())
	cancel()
	s.ErrorIs(b.Backoff(c), context.Canceled)
	s.Equal(time.Hour, b.Next())
	s.Equal(0, b.Attempts())
}
