package delivery

import (
	"errors"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

type errStatus struct {
	err    error
	status int
}

var (
	errStatusesMu sync.RWMutex
	errStatuses   = []errStatus{
		{domain.ErrNotFound, http.StatusNotFound},
		{query.ErrNotFound, http.StatusNotFound},
		{domain.ErrBadParamInput, http.StatusBadRequest},
		{domain.ErrInvalidAddress, http.StatusBadRequest},
		{domain.ErrInvalidSignature, http.StatusUnauthorized},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrConflict, http.StatusConflict},
	}
)

// RegisterErrorStatus makes MakeJsonResp answer errs, and errors wrapping
// them, with status.
func RegisterErrorStatus(status int, errs ...error) {
	errStatusesMu.Lock()
	defer errStatusesMu.Unlock()
	for _, err := range errs {
		errStatuses = append(errStatuses, errStatus{err, status})
	}
}

// ErrorStatus returns the registered status of err, or fallback.
func ErrorStatus(err error, fallback int) int {
	errStatusesMu.RLock()
	defer errStatusesMu.RUnlock()
	for _, es := range errStatuses {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = ErrorStatus(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
