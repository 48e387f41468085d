package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
)

type middlewareSuite struct {
	suite.Suite
	m *GoMiddleware
	e *echo.Echo
}

func (s *middlewareSuite) SetupTest() {
	s.m = InitMiddleware()
	s.e = echo.New()
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}

func (s *middlewareSuite) TestAddContext() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

	err := s.m.AddContext()(func(c echo.Context) error {
		cont, ok := c.Get("ctx").(ctx.Ctx)
		s.True(ok)
		s.Equal("req-1", cont.Value("requestID"))
		return nil
	})(c)
	s.NoError(err)
}

func (s *middlewareSuite) TestAddContextFollowsRequest() {
	reqCtx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(reqCtx)
	c := s.e.NewContext(req, httptest.NewRecorder())

	err := s.m.AddContext()(func(c echo.Context) error {
		cont := c.Get("ctx").(ctx.Ctx)
		cancel()
		<-cont.Done()
		s.ErrorIs(cont.Err(), context.Canceled)
		return nil
	})(c)
	s.NoError(err)
}

func (s *middlewareSuite) TestResponseLogger() {
	tests := []struct {
		desc    string
		handler echo.HandlerFunc
		code    int
	}{
		{"ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, http.StatusOK},
		{"handler error", func(c echo.Context) error { return errors.New("boom") }, http.StatusInternalServerError},
	}

	for _, t := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		// runs without a ctx set by AddContext
		err := s.m.ResponseLogger()(t.handler)(c)
		s.NoError(err, t.desc)
		s.Equal(t.code, rec.Code, t.desc)
	}
}

func (s *middlewareSuite) TestIsValidAddress() {
	tests := []struct {
		desc    string
		address string
		code    int
	}{
		{"valid", "0x939ae6a4c8dfdbb1f7085189574f0a938013952b", http.StatusOK},
		{"invalid", "0x1234", http.StatusBadRequest},
	}

	for _, t := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)
		c.SetParamNames("address")
		c.SetParamValues(t.address)

		err := IsValidAddress("address")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c)
		s.NoError(err, t.desc)
		s.Equal(t.code, rec.Code, t.desc)
	}
}
