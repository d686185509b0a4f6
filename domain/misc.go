package domain

import "strings"

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Address is a ledger account identifier. Addresses are opaque base58
// strings and compared verbatim.
type Address string

const EmptyAddress = Address("")

func (a Address) String() string {
	return string(a)
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return string(a) == string(b)
}

// ItemId identifies one unique item. Marketplace records derive their
// storage keys from it, so at most one listing and one auction exist per
// item at any instant.
type ItemId string

func (i ItemId) String() string {
	return string(i)
}

// Table is a logical collection name
type Table string

// EscrowHolderKind tells which record kind owns an escrow holder
type EscrowHolderKind string

const (
	EscrowHolderKindListing EscrowHolderKind = "listing"
	EscrowHolderKindAuction EscrowHolderKind = "auction"
)

// ItemTransferKind selects which item-registry variant a transfer targets.
// It is always an explicit discriminant on the calling operation, never
// inferred, and the two variants are mutually exclusive.
type ItemTransferKind string

const (
	ItemTransferStandard   ItemTransferKind = "standard"
	ItemTransferCompressed ItemTransferKind = "compressed"
)

// DeriveEscrowHolder derives the custodial holder address for an item owned
// by the given record kind. The holder is a pure function of (kind, item),
// which is what makes the escrow addressable by its owning record only.
func DeriveEscrowHolder(kind EscrowHolderKind, item ItemId) Address {
	return Address(strings.Join([]string{"escrow", string(kind), string(item)}, ":"))
}
