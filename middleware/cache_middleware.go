package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/service/cache"
	"github.com/x-xyz/goauction/service/cache/provider"
)

const (
	cacheMiddlewarePfx = "httpcache"
	cacheStatusHeader  = "X-Cache"
)

// cachedResponse is what gets stored per url
type cachedResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// recorder tees the body into buf while writing it through
type recorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	w      io.Writer
}

func newRecorder(w http.ResponseWriter) *recorder {
	r := &recorder{ResponseWriter: w, status: http.StatusOK}
	r.w = io.MultiWriter(w, &r.buf)
	return r
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	return r.w.Write(b)
}

func (r *recorder) Flush() {
	r.ResponseWriter.(http.Flusher).Flush()
}

func (r *recorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return r.ResponseWriter.(http.Hijacker).Hijack()
}

// cacheKey hashes the path and the query with keys and values sorted, so the
// same filter in another order shares an entry.
func cacheKey(u *url.URL) string {
	params := u.Query()
	for _, vs := range params {
		sort.Strings(vs)
	}
	hash := fnv.New64a()
	hash.Write([]byte(u.Path))
	hash.Write([]byte{'?'})
	hash.Write([]byte(params.Encode()))
	return strconv.FormatUint(hash.Sum64(), 36)
}

// HttpCache caches successful GET responses by url
type HttpCache struct {
	provider provider.Provider
}

func NewHttpCache(p provider.Provider) *HttpCache {
	return &HttpCache{p}
}

// Cache serves a stored response for ttl after the first successful one.
// Requests other than GET pass through.
func (h *HttpCache) Cache(ttl time.Duration) echo.MiddlewareFunc {
	svc := cache.New(cache.Config{
		Provider: h.provider,
		Prefix:   cacheMiddlewarePfx,
		Ttl:      ttl,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Get("ctx").(ctx.Ctx)
			key := cacheKey(c.Request().URL)

			cached := cachedResponse{}
			err := svc.Get(ctx, key, &cached)
			if err == nil {
				header := c.Response().Header()
				for k, vs := range cached.Header {
					header[k] = vs
				}
				header.Set(cacheStatusHeader, "HIT")
				return c.Blob(cached.Status, header.Get(echo.HeaderContentType), cached.Body)
			} else if err != cache.ErrNotFound {
				ctx.WithFields(log.Fields{"err": err, "key": key}).Error("httpcache get failed")
			}

			c.Response().Header().Set(cacheStatusHeader, "MISS")
			rec := newRecorder(c.Response().Writer)
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}
			if rec.status >= http.StatusBadRequest {
				return nil
			}

			// outer middlewares such as gzip set these again on replay
			header := rec.Header().Clone()
			header.Del(cacheStatusHeader)
			header.Del(echo.HeaderContentEncoding)
			header.Del(echo.HeaderContentLength)
			cached = cachedResponse{Status: rec.status, Header: header, Body: rec.buf.Bytes()}
			if err := svc.Set(ctx, key, cached); err != nil {
				ctx.WithFields(log.Fields{"err": err, "key": key}).Error("httpcache set failed")
			}
			return nil
		}
	}
}
