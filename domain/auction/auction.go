package auction

import (
	"time"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/domain"
)

// Auction is an English auction for one item. Its storage key is the item
// id. While active, CurrentBid is monotonically non-decreasing and the
// escrow holds exactly CurrentBid payment units earmarked for refund
// whenever HighestBidder is set. Settle finalizes the record once,
// irreversibly.
type Auction struct {
	ItemId        domain.ItemId   `json:"itemId" bson:"_id"`
	Seller        domain.Address  `json:"seller" bson:"seller"`
	StartingPrice uint64          `json:"startingPrice" bson:"startingPrice"`
	CurrentBid    uint64          `json:"currentBid" bson:"currentBid"`
	ReservePrice  uint64          `json:"reservePrice" bson:"reservePrice"`
	HighestBidder *domain.Address `json:"highestBidder" bson:"highestBidder,omitempty"`
	StartTime     time.Time       `json:"startTime" bson:"startTime"`
	EndTime       time.Time       `json:"endTime" bson:"endTime"`
	IsActive      bool            `json:"isActive" bson:"isActive"`
}

type Patchable struct {
	CurrentBid    *uint64         `bson:"currentBid,omitempty"`
	HighestBidder *domain.Address `bson:"highestBidder,omitempty"`
	IsActive      *bool           `bson:"isActive,omitempty"`
}

type findAllOptions struct {
	Seller   *domain.Address
	IsActive *bool
	Offset   *int
	Limit    *int
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

func WithPagination(offset, limit int) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type CreateParams struct {
	Seller        domain.Address `json:"seller" validate:"required"`
	ItemId        domain.ItemId  `json:"itemId" validate:"required"`
	StartingPrice uint64         `json:"startingPrice" validate:"required"`
	ReservePrice  uint64         `json:"reservePrice" validate:"required"`
	// Duration in seconds
	Duration int64 `json:"duration" validate:"required"`
}

type BidParams struct {
	Bidder domain.Address `json:"bidder" validate:"required"`
	Amount uint64         `json:"amount" validate:"required"`

	ItemId domain.ItemId `json:"-"`
}

type SettleOutcome string

const (
	// OutcomeSold means the reserve was met and the item went to the winner
	OutcomeSold SettleOutcome = "sold"
	// OutcomeReturned means the reserve was not met (or nobody bid) and the
	// item went back to the seller
	OutcomeReturned SettleOutcome = "returned"
)

// Settlement reports how an auction concluded. Fee and SellerProceeds are
// zero for OutcomeReturned; Refunded is zero for OutcomeSold.
type Settlement struct {
	ItemId         domain.ItemId   `json:"itemId"`
	Outcome        SettleOutcome   `json:"outcome"`
	Price          uint64          `json:"price"`
	Winner         *domain.Address `json:"winner,omitempty"`
	Fee            uint64          `json:"fee"`
	SellerProceeds uint64          `json:"sellerProceeds"`
	Refunded       uint64          `json:"refunded"`
}

type Repo interface {
	FindOne(c ctx.Ctx, itemId domain.ItemId) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Auction, error)
	Count(c ctx.Ctx, opts ...FindAllOptions) (int, error)
	// Create inserts the auction keyed by its item id and returns
	// ErrAlreadyOnAuction when the key collides.
	Create(c ctx.Ctx, value *Auction) error
	Patch(c ctx.Ctx, itemId domain.ItemId, patchable Patchable) error
	// Replace swaps a terminal auction for a fresh one under the same key
	Replace(c ctx.Ctx, value *Auction) error
}

type UseCase interface {
	Create(c ctx.Ctx, params CreateParams) (*Auction, error)
	PlaceBid(c ctx.Ctx, params BidParams) (*Auction, error)
	Settle(c ctx.Ctx, itemId domain.ItemId) (*Settlement, error)
	Get(c ctx.Ctx, itemId domain.ItemId) (*Auction, error)
	Search(c ctx.Ctx, opts ...FindAllOptions) ([]*Auction, error)
}
