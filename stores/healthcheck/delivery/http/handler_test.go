package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	hcdomain "github.com/x-xyz/goauction/domain/healthcheck"
	"github.com/x-xyz/goauction/domain/healthcheck/mocks"
	"github.com/x-xyz/goauction/middleware"
)

func TestCheck(t *testing.T) {
	uc := &mocks.HealthCheckUsecase{}
	uc.On("Check", mock.Anything).Return(hcdomain.Status{Mongo: true, Redis: true}, nil).Once()
	uc.On("Check", mock.Anything).Return(hcdomain.Status{Mongo: true}, errors.New("redis down")).Once()

	e := echo.New()
	e.Use(middleware.InitMiddleware().AddContext())
	New(e, uc)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "redis down")

	uc.AssertExpectations(t)
}
