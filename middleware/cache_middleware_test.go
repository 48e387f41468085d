package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/service/cache/provider/primitive"
)

type cacheMiddlewareSuite struct {
	suite.Suite
	cache *HttpCache
}

func (s *cacheMiddlewareSuite) SetupTest() {
	s.cache = NewHttpCache(primitive.NewPrimitive("test", 1))
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) serve(h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	return s.serveMethod(h, http.MethodGet, target)
}

func (s *cacheMiddlewareSuite) serveMethod(h echo.HandlerFunc, method, target string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())

	s.Require().NoError(s.cache.Cache(time.Minute)(h)(c))
	return rec
}

func (s *cacheMiddlewareSuite) TestCacheMiddleware() {
	calls := 0
	h := func(c echo.Context) error {
		calls++
		return c.String(http.StatusOK, "Hello, World")
	}

	rec := s.serve(h, "/?b=2&a=1")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Hello, World", rec.Body.String())
	s.Equal("MISS", rec.Header().Get(cacheStatusHeader))

	// same params in another order hit the cache
	rec = s.serve(h, "/?a=1&b=2")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Hello, World", rec.Body.String())
	s.Equal("HIT", rec.Header().Get(cacheStatusHeader))
	s.Equal(1, calls)

	// another path is another entry
	s.serve(h, "/other?a=1&b=2")
	s.Equal(2, calls)
}

func (s *cacheMiddlewareSuite) TestPostIsNotCached() {
	calls := 0
	h := func(c echo.Context) error {
		calls++
		return c.String(http.StatusOK, "created")
	}

	s.serveMethod(h, http.MethodPost, "/bid")
	s.serveMethod(h, http.MethodPost, "/bid")
	s.Equal(2, calls)
}

func (s *cacheMiddlewareSuite) TestErrorIsNotCached() {
	calls := 0
	h := func(c echo.Context) error {
		calls++
		return c.String(http.StatusInternalServerError, "boom")
	}

	s.Equal(http.StatusInternalServerError, s.serve(h, "/fail").Code)
	s.Equal(http.StatusInternalServerError, s.serve(h, "/fail").Code)
	s.Equal(2, calls)
}
