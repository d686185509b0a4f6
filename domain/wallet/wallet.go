package wallet

import (
	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/domain"
)

// Wallet is the payment balance of one account
type Wallet struct {
	Address domain.Address `json:"address" bson:"_id"`
	Amount  uint64         `json:"amount" bson:"amount"`
}

type Repo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Wallet, error)
	// Credit adds amount, creating the wallet when absent
	Credit(c ctx.Ctx, address domain.Address, amount uint64) error
	// Debit subtracts amount and fails with ErrInsufficientBalance when the
	// balance cannot cover it. The guard and the decrement are one atomic
	// conditional update.
	Debit(c ctx.Ctx, address domain.Address, amount uint64) error
}

// Ledger is the balance-transfer collaborator contract required by the
// settlement engine. The engine never touches balances except through it.
type Ledger interface {
	// Transfer debits `from` and credits `to`. A failed debit aborts with
	// no credit applied.
	Transfer(c ctx.Ctx, from, to domain.Address, amount uint64) error
	// Deposit mints spendable balance onto an account
	Deposit(c ctx.Ctx, to domain.Address, amount uint64) error
	Balance(c ctx.Ctx, address domain.Address) (uint64, error)
}
