package domain

import "github.com/openmint/marketapi/base/ctx"

// TxRunner wraps each settlement operation in an all-or-nothing
// transaction: every record write and transfer inside `run` commits
// together or not at all, which is what keeps partial payments and
// double releases unobservable.
type TxRunner interface {
	RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error
}
