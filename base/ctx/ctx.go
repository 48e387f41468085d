// Package ctx carries a context.Context together with the logger that every
// store and service logs through. Values set with WithValue also become log
// fields, so a request id or a table name shows up on each line below it.
package ctx

import (
	"context"
	"sort"
	"time"

	log "github.com/x-xyz/goauction/base/log"
)

type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

func Todo() Ctx {
	return Ctx{
		Context: context.TODO(),
		Logger:  log.Log(),
	}
}

// Wrap binds a plain context, such as a driver session context, to parent's
// logger.
func Wrap(parent Ctx, c context.Context) Ctx {
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}
}

// WithValue sets key on both the context and the logger.
func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent.Context, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

// WithValues is WithValue for each field, in key order.
func WithValues(parent Ctx, fields log.Fields) Ctx {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	c := parent
	for _, k := range keys {
		c = WithValue(c, k, fields[k])
	}
	return c
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	c, cancel := context.WithCancel(parent.Context)
	return Wrap(parent, c), cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	c, cancel := context.WithTimeout(parent.Context, timeout)
	return Wrap(parent, c), cancel
}

// Detach keeps parent's values and logger but drops its deadline and
// cancellation. Work that has to finish after a request returns runs on it.
func Detach(parent Ctx) Ctx {
	return Wrap(parent, detached{parent.Context})
}

type detached struct {
	parent context.Context
}

func (detached) Deadline() (time.Time, bool) { return time.Time{}, false }
func (detached) Done() <-chan struct{}       { return nil }
func (detached) Err() error                  { return nil }

func (d detached) Value(key interface{}) interface{} {
	return d.parent.Value(key)
}
