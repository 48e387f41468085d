package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/base/validator"
)

// GoMiddleware holds the request scoped middlewares
type GoMiddleware struct {
	met metrics.Service
}

func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{
		met: metrics.New("http", metrics.WithoutPodName()),
	}
}

// AddContext stores a ctx.Ctx bound to the request's context under "ctx", so
// a client that goes away cancels the store calls made for it
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			cont := ctx.Wrap(ctx.Background(), c.Request().Context())
			cont = ctx.WithValue(cont, "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs and times every request. It has to run outside
// AddContext to see the request scoped logger.
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			m.met.BumpTime("request.time", "method", req.Method, "path", c.Path(), "status", strconv.Itoa(res.Status/100)+"xx").End()

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"route":      c.Path(),
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
				"caller":     c.Get("address"),
			}
			if res.Status >= 400 {
				fields["nextErr"] = err
			}

			logger := log.Log()
			if cont, ok := c.Get("ctx").(ctx.Ctx); ok {
				logger = cont.Logger
			}
			logger = logger.WithFields(fields)
			if res.Status >= 500 {
				logger.Warn("response")
			} else {
				logger.Info("response")
			}
			return nil
		}
	}
}

// IsValidAddress rejects requests whose path param is not a hex address
func IsValidAddress(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if !validator.IsValidAddress(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
			}
			return next(c)
		}
	}
}
