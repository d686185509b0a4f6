package escrow

import (
	"time"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/domain"
)

// Escrow is the custodial record holding one unit of an item (and, for
// auctions, the highest bid) between creation and terminal settlement. Its
// storage key is the derived holder address, so it is addressable only
// through the listing/auction that owns it.
type Escrow struct {
	Holder     domain.Address          `json:"holder" bson:"_id"`
	ItemId     domain.ItemId           `json:"itemId" bson:"itemId"`
	OwnerKind  domain.EscrowHolderKind `json:"ownerKind" bson:"ownerKind"`
	FundsHeld  uint64                  `json:"fundsHeld" bson:"fundsHeld"`
	Released   bool                    `json:"released" bson:"released"`
	OpenedAt   time.Time               `json:"openedAt" bson:"openedAt"`
	ReleasedAt *time.Time              `json:"releasedAt" bson:"releasedAt,omitempty"`
}

type Patchable struct {
	FundsHeld  *uint64    `bson:"fundsHeld,omitempty"`
	Released   *bool      `bson:"released,omitempty"`
	ReleasedAt *time.Time `bson:"releasedAt,omitempty"`
}

type Repo interface {
	FindOne(c ctx.Ctx, holder domain.Address) (*Escrow, error)
	Create(c ctx.Ctx, value *Escrow) error
	Patch(c ctx.Ctx, holder domain.Address, patchable Patchable) error
	Delete(c ctx.Ctx, holder domain.Address) error
}

// Custodian moves items and bid funds in and out of derived escrow
// holders. Only the usecase owning the listing/auction record may call the
// releasing operations, and only after the owning record has transitioned
// to a terminal state within the same transaction.
type Custodian interface {
	// Open moves exactly one unit of the item from `from` into the holder
	// derived from (kind, itemId). It fails with ErrInsufficientItemBalance
	// unless the source holds exactly one unit.
	Open(c ctx.Ctx, kind domain.EscrowHolderKind, itemId domain.ItemId, from domain.Address) (*Escrow, error)

	// ReleaseItem moves the held unit to dest. At most one release ever
	// succeeds per escrow; later calls fail with ErrEscrowReleased.
	ReleaseItem(c ctx.Ctx, kind domain.EscrowHolderKind, itemId domain.ItemId, dest domain.Address, transfer domain.ItemTransferKind) error

	// DepositFunds debits `from` and parks the amount under the holder
	DepositFunds(c ctx.Ctx, kind domain.EscrowHolderKind, itemId domain.ItemId, from domain.Address, amount uint64) error

	// WithdrawFunds pays `amount` from the held funds out to `to`. Used for
	// both displaced-bidder refunds and settlement payouts.
	WithdrawFunds(c ctx.Ctx, kind domain.EscrowHolderKind, itemId domain.ItemId, to domain.Address, amount uint64) error

	// HeldFunds reports the funds currently parked under the holder
	HeldFunds(c ctx.Ctx, kind domain.EscrowHolderKind, itemId domain.ItemId) (uint64, error)
}
