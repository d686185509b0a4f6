package marketplace

import (
	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/domain"
)

// SingletonKey is the storage key of the one marketplace record
const SingletonKey = "marketplace"

// Marketplace is the singleton registry record. It is created once,
// mutated only by completed settlements incrementing the stats, and never
// destroyed.
type Marketplace struct {
	Key            string         `json:"-" bson:"_id"`
	Authority      domain.Address `json:"authority" bson:"authority"`
	Treasury       domain.Address `json:"treasury" bson:"treasury"`
	FeeBasisPoints uint16         `json:"feeBasisPoints" bson:"feeBasisPoints"`
	TotalSales     uint64         `json:"totalSales" bson:"totalSales"`
	TotalVolume    uint64         `json:"totalVolume" bson:"totalVolume"`
}

// Stats is the running sale statistics slice of the registry
type Stats struct {
	TotalSales  uint64 `json:"totalSales"`
	TotalVolume uint64 `json:"totalVolume"`
}

type Repo interface {
	FindOne(c ctx.Ctx) (*Marketplace, error)
	Create(c ctx.Ctx, value *Marketplace) error
	// IncrementSales bumps totalSales by one and totalVolume by price
	IncrementSales(c ctx.Ctx, price uint64) error
}

type UseCase interface {
	// Initialize creates the singleton registry. A second call fails with
	// ErrConflict and changes nothing.
	Initialize(c ctx.Ctx, authority, treasury domain.Address, feeBps uint16) (*Marketplace, error)
	Get(c ctx.Ctx) (*Marketplace, error)
	GetStats(c ctx.Ctx) (*Stats, error)
	// RecordSale is called only from a completed buy or a settled auction,
	// inside the settlement's transaction.
	RecordSale(c ctx.Ctx, price uint64) error
}
