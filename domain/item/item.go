package item

import (
	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/domain"
)

// Holding is one holder's balance of one item. Unique items keep the
// total supply at one unit, so a holding amount is zero or one.
type Holding struct {
	Key    string                  `json:"-" bson:"_id"`
	ItemId domain.ItemId           `json:"itemId" bson:"itemId"`
	Holder domain.Address          `json:"holder" bson:"holder"`
	Amount uint64                  `json:"amount" bson:"amount"`
	Kind   domain.ItemTransferKind `json:"kind" bson:"kind"`
}

// HoldingKey derives the storage key of a holding
func HoldingKey(itemId domain.ItemId, holder domain.Address) string {
	return string(itemId) + ":" + string(holder)
}

type HoldingRepo interface {
	FindOne(c ctx.Ctx, itemId domain.ItemId, holder domain.Address) (*Holding, error)
	Upsert(c ctx.Ctx, value *Holding) error
	// DebitExact removes `qty` units from the holding if and only if it
	// holds exactly `qty` units; otherwise ErrInsufficientItemBalance.
	DebitExact(c ctx.Ctx, itemId domain.ItemId, holder domain.Address, qty uint64) error
	CreditN(c ctx.Ctx, itemId domain.ItemId, holder domain.Address, kind domain.ItemTransferKind, qty uint64) error
}

// Service is the item-transfer collaborator contract. Two registry
// variants exist behind one interface; the caller always names the variant
// explicitly.
type Service interface {
	// Transfer moves qty units from one holder to another. It fails when
	// the source balance differs from qty or the holder does not own the
	// item under the named registry kind.
	Transfer(c ctx.Ctx, kind domain.ItemTransferKind, itemId domain.ItemId, from, to domain.Address, qty uint64) error
	// Mint registers a fresh item unit under `to` in the named registry
	Mint(c ctx.Ctx, kind domain.ItemTransferKind, itemId domain.ItemId, to domain.Address) error
	BalanceOf(c ctx.Ctx, itemId domain.ItemId, holder domain.Address) (uint64, error)
}
