package domain

import (
	"github.com/x-xyz/goauction/base/ctx"
)

// Transactor runs run inside one store transaction. Every write made through
// the ctx passed to run commits or rolls back together. Nested calls join the
// outer transaction.
type Transactor interface {
	RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error
}
