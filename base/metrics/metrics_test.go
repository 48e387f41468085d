package metrics

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
	met Service
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (s *testsuite) SetupTest() {
	// datadog_host is unset in tests so bumps land on LogClient
	s.met = New("test", WithoutPodName())
}

func (s *testsuite) TestBumps() {
	s.NotPanics(func() {
		s.met.BumpSum("counter", 1, "k", "v")
		s.met.BumpAvg("avg", 2.5)
		s.met.BumpHistogram("hist", 10, "a", "b")
		s.met.BumpTime("time", "func", "TestBumps").End()
	})
	for _, c := range ddClients {
		s.IsType(&LogClient{}, c)
	}
}

func (s *testsuite) TestParseTag() {
	s.Nil(parseTag(nil))
	s.Equal([]string{"a:b", "c:d"}, parseTag([]string{"a", "b", "c", "d"}))
	s.Panics(func() { parseTag([]string{"odd"}) })
}

func (s *testsuite) TestTagsDoNotShareBacking() {
	dm := &DDMetrics{ddTags: make([]string, 1, 8)}
	dm.ddTags[0] = "env:test"

	a := dm.tags([]string{"k", "a"})
	b := dm.tags([]string{"k", "b"})
	s.Equal([]string{"env:test", "k:a"}, a)
	s.Equal([]string{"env:test", "k:b"}, b)
}
