package account

import (
	"time"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/domain"
)

type ActivityHistoryType string

const (
	ActivityHistoryTypeList          ActivityHistoryType = "list"
	ActivityHistoryTypeCancelListing ActivityHistoryType = "cancelListing"
	ActivityHistoryTypeBuy           ActivityHistoryType = "buy"
	ActivityHistoryTypeSold          ActivityHistoryType = "sold"
	ActivityHistoryTypeCreateAuction ActivityHistoryType = "createAuction"
	ActivityHistoryTypePlaceBid      ActivityHistoryType = "placeBid"
	ActivityHistoryTypeSettle        ActivityHistoryType = "settle"
	ActivityHistoryTypeMint          ActivityHistoryType = "mint"
)

// ActivityHistory is one marketplace event on one item, recorded inside
// the transaction of the operation that produced it.
type ActivityHistory struct {
	Id       string              `json:"id" bson:"_id"`
	ItemId   domain.ItemId       `json:"itemId" bson:"itemId"`
	Type     ActivityHistoryType `json:"type" bson:"type"`
	Account  domain.Address      `json:"account" bson:"account"`
	To       domain.Address      `json:"to" bson:"to"`
	Quantity uint64              `json:"quantity" bson:"quantity"`
	Price    uint64              `json:"price" bson:"price"`
	Time     time.Time           `json:"time" bson:"time"`
}

type findActivityHistoryOptions struct {
	ItemId  *domain.ItemId
	Account *domain.Address
	Types   []ActivityHistoryType
	Offset  *int
	Limit   *int
}

type FindActivityHistoryOptions func(*findActivityHistoryOptions) error

func GetFindActivityHistoryOptions(opts ...FindActivityHistoryOptions) (findActivityHistoryOptions, error) {
	res := findActivityHistoryOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithItemId(itemId domain.ItemId) FindActivityHistoryOptions {
	return func(options *findActivityHistoryOptions) error {
		options.ItemId = &itemId
		return nil
	}
}

func WithAccount(account domain.Address) FindActivityHistoryOptions {
	return func(options *findActivityHistoryOptions) error {
		options.Account = &account
		return nil
	}
}

func WithTypes(types ...ActivityHistoryType) FindActivityHistoryOptions {
	return func(options *findActivityHistoryOptions) error {
		options.Types = types
		return nil
	}
}

func WithPagination(offset, limit int) FindActivityHistoryOptions {
	return func(options *findActivityHistoryOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type ActivityHistoryRepo interface {
	Insert(c ctx.Ctx, value *ActivityHistory) error
	FindAll(c ctx.Ctx, opts ...FindActivityHistoryOptions) ([]*ActivityHistory, error)
	Count(c ctx.Ctx, opts ...FindActivityHistoryOptions) (int, error)
}
