// Package query is a thin layer over the mongo driver. Every call is timed,
// slow calls are logged, and driver errors are folded into ErrNotFound and
// ErrDuplicateKey so repositories can branch on them.
package query

import (
	"errors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrCollScan is error for unindexed query
	ErrCollScan = errors.New("COLLSCAN is not allowed")
)

// Index describes one index of a table. Keys use the same "-field" convention
// as sort strings.
type Index struct {
	Keys   []string
	Unique bool
}

// Mongo abstracts the mongo layer.
type Mongo interface {
	// Insert returns ErrDuplicateKey if a unique index is violated
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne decodes the first match into result, or returns ErrNotFound
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert replaces the document matched by selector, inserting it if missing.
	// Return ErrDuplicateKey if a unique index is violated
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sorts by `sort` ("timestamp" ascending, "-timestamp" descending).
	// An empty sort leaves the order up to the server.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// SearchNSorts sorts by several fields in order. Keep the order of a
	// compound index. https://docs.mongodb.com/manual/tutorial/sort-results-with-indexes/
	SearchNSorts(context ctx.Ctx, table domain.Table, offset, limit int, sortFields []string, query, results interface{}) error

	// Increment atomically adds one to field of the document matched by
	// selector and returns the new value. A missing document starts at 0.
	Increment(context ctx.Ctx, table domain.Table, selector interface{}, field string) (int64, error)

	// Remove deletes one document, or returns ErrNotFound
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// EnsureIndexes creates the indexes if they do not exist. It also creates
	// the collection, which has to exist before it is written in a transaction.
	EnsureIndexes(context ctx.Ctx, table domain.Table, indexes ...Index) error

	// RunWithTransaction runs `run` in a multi-document transaction. `run` may be
	// called more than once when the transaction hits a transient error, so it
	// must not have side effects outside the database. Errors of the driver have
	// to be returned from `run` unwrapped, otherwise transient ones are not retried.
	// A call made with a ctx that is already inside a transaction joins it.
	RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error

	Ping(context ctx.Ctx) error
}
