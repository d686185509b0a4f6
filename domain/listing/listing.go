package listing

import (
	"encoding/json"
	"time"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/domain"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSold      Status = "sold"
	StatusCancelled Status = "cancelled"
)

// Listing is a fixed-price sale for one item. Its storage key is the item
// id itself, so a second create for the same item collides. Once IsActive
// flips to false the record is terminal and no further mutation happens.
type Listing struct {
	ItemId             domain.ItemId  `json:"itemId" bson:"_id"`
	Seller             domain.Address `json:"seller" bson:"seller"`
	Price              uint64         `json:"price" bson:"price"`
	RoyaltyBasisPoints uint16         `json:"royaltyBasisPoints" bson:"royaltyBasisPoints"`
	RoyaltyRecipient   domain.Address `json:"royaltyRecipient" bson:"royaltyRecipient"`
	IsActive           bool           `json:"isActive" bson:"isActive"`
	Status             Status         `json:"status" bson:"status"`
	ListedAt           time.Time      `json:"listedAt" bson:"listedAt"`
}

type Patchable struct {
	IsActive *bool   `bson:"isActive,omitempty"`
	Status   *Status `bson:"status,omitempty"`
}

type findAllOptions struct {
	Seller   *domain.Address `json:"seller,omitempty"`
	IsActive *bool           `json:"isActive,omitempty"`
	Status   *Status         `json:"status,omitempty"`
	Offset   *int            `json:"-"`
	Limit    *int            `json:"-"`
	Cursor   *string         `json:"-"`
	Size     *int            `json:"-"`
}

// OptionsToKey serializes the filter part of the options into a paging
// snapshot key. Pagination fields stay out of the key so every page of one
// search shares a snapshot.
func OptionsToKey(options findAllOptions) string {
	key, _ := json.Marshal(options)
	return string(key)
}

func ParseKeyToOptions(key string) ([]FindAllOptions, error) {
	parsed := findAllOptions{}
	if err := json.Unmarshal([]byte(key), &parsed); err != nil {
		return nil, err
	}
	res := []FindAllOptions{}
	if parsed.Seller != nil {
		res = append(res, WithSeller(*parsed.Seller))
	}
	if parsed.IsActive != nil {
		res = append(res, WithIsActive(*parsed.IsActive))
	}
	if parsed.Status != nil {
		res = append(res, WithStatus(*parsed.Status))
	}
	return res, nil
}

type FindAllOptions func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptions) (findAllOptions, error) {
	res := findAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithSeller(seller domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Seller = &seller
		return nil
	}
}

func WithIsActive(isActive bool) FindAllOptions {
	return func(options *findAllOptions) error {
		options.IsActive = &isActive
		return nil
	}
}

func WithStatus(status Status) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithPagination(offset, limit int) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithCursor(cursor string, size int) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Cursor = &cursor
		options.Size = &size
		return nil
	}
}

// SearchResult is one page of listings
type SearchResult struct {
	Items      []*Listing `json:"items"`
	Count      int        `json:"count"`
	NextCursor string     `json:"nextCursor"`
}

type CreateParams struct {
	Seller           domain.Address `json:"seller" validate:"required"`
	ItemId           domain.ItemId  `json:"itemId" validate:"required"`
	Price            uint64         `json:"price" validate:"required"`
	RoyaltyBps       uint16         `json:"royaltyBps"`
	RoyaltyRecipient domain.Address `json:"royaltyRecipient"`
}

type BuyParams struct {
	Buyer domain.Address `json:"buyer" validate:"required"`
	// Compressed selects the compressed-registry transfer variant. The two
	// variants are mutually exclusive and never inferred.
	Compressed bool `json:"compressed"`

	ItemId domain.ItemId `json:"-"`
}

// Receipt reports how a completed buy distributed the price
type Receipt struct {
	ItemId       domain.ItemId  `json:"itemId"`
	Buyer        domain.Address `json:"buyer"`
	Seller       domain.Address `json:"seller"`
	Price        uint64         `json:"price"`
	Fee          uint64         `json:"fee"`
	Royalty      uint64         `json:"royalty"`
	SellerAmount uint64         `json:"sellerAmount"`
}

type Repo interface {
	FindOne(c ctx.Ctx, itemId domain.ItemId) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Listing, error)
	Count(c ctx.Ctx, opts ...FindAllOptions) (int, error)
	// Create inserts the listing keyed by its item id and returns
	// ErrAlreadyListed when the key collides.
	Create(c ctx.Ctx, value *Listing) error
	Patch(c ctx.Ctx, itemId domain.ItemId, patchable Patchable) error
	// Replace swaps a terminal listing for a fresh one under the same key
	Replace(c ctx.Ctx, value *Listing) error
}

type UseCase interface {
	Create(c ctx.Ctx, params CreateParams) (*Listing, error)
	Buy(c ctx.Ctx, params BuyParams) (*Receipt, error)
	Cancel(c ctx.Ctx, seller domain.Address, itemId domain.ItemId) error
	Get(c ctx.Ctx, itemId domain.ItemId) (*Listing, error)
	Search(c ctx.Ctx, opts ...FindAllOptions) (*SearchResult, error)
}
