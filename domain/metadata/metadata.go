package metadata

import (
	"time"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/domain"
)

// field limits of the cross-marketplace metadata standard
const (
	MaxNameLen   = 32
	MaxSymbolLen = 10
	MaxUriLen    = 200

	// MaxSellerFeeBasisPoints caps the creator royalty carried by a
	// record at 100%
	MaxSellerFeeBasisPoints = 10000
)

// Metadata is the standard-compliant description record of one item
type Metadata struct {
	ItemId               domain.ItemId  `json:"itemId" bson:"_id"`
	Name                 string         `json:"name" bson:"name"`
	Symbol               string         `json:"symbol" bson:"symbol"`
	Uri                  string         `json:"uri" bson:"uri"`
	SellerFeeBasisPoints uint16         `json:"sellerFeeBasisPoints" bson:"sellerFeeBasisPoints"`
	UpdateAuthority      domain.Address `json:"updateAuthority" bson:"updateAuthority"`
	CreatedAt            time.Time      `json:"createdAt" bson:"createdAt"`
}

type RegisterParams struct {
	ItemId               domain.ItemId  `json:"itemId" validate:"required"`
	Name                 string         `json:"name" validate:"required,max=32"`
	Symbol               string         `json:"symbol" validate:"required,max=10"`
	Uri                  string         `json:"uri" validate:"required,max=200"`
	SellerFeeBasisPoints uint16         `json:"sellerFeeBasisPoints"`
	UpdateAuthority      domain.Address `json:"updateAuthority" validate:"required"`
}

type Repo interface {
	FindOne(c ctx.Ctx, itemId domain.ItemId) (*Metadata, error)
	Create(c ctx.Ctx, value *Metadata) error
}

// Verifier is the metadata-standard collaborator contract. Buy calls it
// once before moving any funds; a false result aborts the sale with no
// side effects.
type Verifier interface {
	Verify(c ctx.Ctx, itemId domain.ItemId) (bool, error)
}

type UseCase interface {
	Register(c ctx.Ctx, params RegisterParams) (*Metadata, error)
	Get(c ctx.Ctx, itemId domain.ItemId) (*Metadata, error)
}
