package usecase

import (
	"time"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/account"
	"github.com/openmint/marketapi/domain/escrow"
	"github.com/openmint/marketapi/domain/feesplit"
	"github.com/openmint/marketapi/domain/keys"
	"github.com/openmint/marketapi/domain/listing"
	"github.com/openmint/marketapi/domain/marketplace"
	"github.com/openmint/marketapi/domain/metadata"
	"github.com/openmint/marketapi/domain/wallet"
	"github.com/openmint/marketapi/service/paging"
	"github.com/openmint/marketapi/service/redis"
)

var timeNow = time.Now

type ListingUseCaseCfg struct {
	ListingRepo   listing.Repo
	MarketplaceUC marketplace.UseCase
	Custodian     escrow.Custodian
	Ledger        wallet.Ledger
	Verifier      metadata.Verifier
	ActivityRepo  account.ActivityHistoryRepo
	TxRunner      domain.TxRunner
	Redis         redis.Service
}

type impl struct {
	listingRepo   listing.Repo
	marketplaceUC marketplace.UseCase
	custodian     escrow.Custodian
	ledger        wallet.Ledger
	verifier      metadata.Verifier
	activity      account.ActivityHistoryRepo
	txRunner      domain.TxRunner

	searchPaging paging.Service
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	im := &impl{
		listingRepo:   cfg.ListingRepo,
		marketplaceUC: cfg.MarketplaceUC,
		custodian:     cfg.Custodian,
		ledger:        cfg.Ledger,
		verifier:      cfg.Verifier,
		activity:      cfg.ActivityRepo,
		txRunner:      cfg.TxRunner,
	}

	if cfg.Redis != nil {
		im.searchPaging = paging.New(&paging.PagingConfig{
			RedisCache:    cfg.Redis,
			KeyPfx:        keys.PfxListingPaging,
			RenewDuration: 10 * time.Second,
			CacheDuration: 10 * time.Minute,
			Getter:        im.searchGetter,
			ShardSize:     100,
		})
	}

	return im
}

func (im *impl) Create(c ctx.Ctx, params listing.CreateParams) (*listing.Listing, error) {
	if params.Price == 0 {
		return nil, domain.ErrInvalidPrice
	}
	if params.RoyaltyBps > feesplit.MaxRoyaltyBps {
		return nil, domain.ErrInvalidRoyalty
	}

	royaltyRecipient := params.RoyaltyRecipient
	if len(royaltyRecipient) == 0 {
		royaltyRecipient = params.Seller
	}

	value := &listing.Listing{
		ItemId:             params.ItemId,
		Seller:             params.Seller,
		Price:              params.Price,
		RoyaltyBasisPoints: params.RoyaltyBps,
		RoyaltyRecipient:   royaltyRecipient,
		IsActive:           true,
		Status:             listing.StatusActive,
		ListedAt:           timeNow(),
	}

	err := im.txRunner.RunWithTransaction(c, func(c ctx.Ctx) error {
		existing, err := im.listingRepo.FindOne(c, params.ItemId)
		if err != nil && err != domain.ErrNotFound {
			return err
		}
		if existing != nil && existing.IsActive {
			return domain.ErrAlreadyListed
		}

		if _, err := im.custodian.Open(c, domain.EscrowHolderKindListing, params.ItemId, params.Seller); err != nil {
			return err
		}

		// a terminal listing under the same item id gets replaced in place
		if existing != nil {
			if err := im.listingRepo.Replace(c, value); err != nil {
				return err
			}
		} else if err := im.listingRepo.Create(c, value); err != nil {
			return err
		}

		return im.activity.Insert(c, &account.ActivityHistory{
			ItemId:   params.ItemId,
			Type:     account.ActivityHistoryTypeList,
			Account:  params.Seller,
			Quantity: 1,
			Price:    params.Price,
			Time:     value.ListedAt,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": params.ItemId,
			"seller": params.Seller,
		}).Error("create listing failed")
		return nil, err
	}

	return value, nil
}

func (im *impl) Buy(c ctx.Ctx, params listing.BuyParams) (*listing.Receipt, error) {
	transfer := domain.ItemTransferStandard
	if params.Compressed {
		transfer = domain.ItemTransferCompressed
	}

	receipt := &listing.Receipt{}

	err := im.txRunner.RunWithTransaction(c, func(c ctx.Ctx) error {
		value, err := im.listingRepo.FindOne(c, params.ItemId)
		if err != nil {
			return err
		}
		if !value.IsActive {
			return domain.ErrListingNotActive
		}

		// metadata must verify before any funds move
		ok, err := im.verifier.Verify(c, params.ItemId)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInvalidMetadata
		}

		mp, err := im.marketplaceUC.Get(c)
		if err != nil {
			return err
		}

		split, err := feesplit.Calculate(value.Price, mp.FeeBasisPoints, value.RoyaltyBasisPoints)
		if err != nil {
			return err
		}

		isActive := false
		status := listing.StatusSold
		if err := im.listingRepo.Patch(c, params.ItemId, listing.Patchable{
			IsActive: &isActive,
			Status:   &status,
		}); err != nil {
			return err
		}

		if err := im.ledger.Transfer(c, params.Buyer, mp.Treasury, split.Fee); err != nil {
			return err
		}
		if err := im.ledger.Transfer(c, params.Buyer, value.RoyaltyRecipient, split.Royalty); err != nil {
			return err
		}
		if err := im.ledger.Transfer(c, params.Buyer, value.Seller, split.SellerAmount); err != nil {
			return err
		}

		if err := im.custodian.ReleaseItem(c, domain.EscrowHolderKindListing, params.ItemId, params.Buyer, transfer); err != nil {
			return err
		}

		if err := im.marketplaceUC.RecordSale(c, value.Price); err != nil {
			return err
		}

		now := timeNow()
		if err := im.activity.Insert(c, &account.ActivityHistory{
			ItemId:   params.ItemId,
			Type:     account.ActivityHistoryTypeBuy,
			Account:  params.Buyer,
			To:       value.Seller,
			Quantity: 1,
			Price:    value.Price,
			Time:     now,
		}); err != nil {
			return err
		}
		if err := im.activity.Insert(c, &account.ActivityHistory{
			ItemId:   params.ItemId,
			Type:     account.ActivityHistoryTypeSold,
			Account:  value.Seller,
			To:       params.Buyer,
			Quantity: 1,
			Price:    value.Price,
			Time:     now,
		}); err != nil {
			return err
		}

		*receipt = listing.Receipt{
			ItemId:       params.ItemId,
			Buyer:        params.Buyer,
			Seller:       value.Seller,
			Price:        value.Price,
			Fee:          split.Fee,
			Royalty:      split.Royalty,
			SellerAmount: split.SellerAmount,
		}
		return nil
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": params.ItemId,
			"buyer":  params.Buyer,
		}).Error("buy listing failed")
		return nil, err
	}

	return receipt, nil
}

func (im *impl) Cancel(c ctx.Ctx, seller domain.Address, itemId domain.ItemId) error {
	err := im.txRunner.RunWithTransaction(c, func(c ctx.Ctx) error {
		value, err := im.listingRepo.FindOne(c, itemId)
		if err != nil {
			return err
		}
		if !value.IsActive {
			return domain.ErrListingNotActive
		}
		if value.Seller != seller {
			return domain.ErrNotOwner
		}

		isActive := false
		status := listing.StatusCancelled
		if err := im.listingRepo.Patch(c, itemId, listing.Patchable{
			IsActive: &isActive,
			Status:   &status,
		}); err != nil {
			return err
		}

		if err := im.custodian.ReleaseItem(c, domain.EscrowHolderKindListing, itemId, seller, domain.ItemTransferStandard); err != nil {
			return err
		}

		return im.activity.Insert(c, &account.ActivityHistory{
			ItemId:   itemId,
			Type:     account.ActivityHistoryTypeCancelListing,
			Account:  seller,
			Quantity: 1,
			Price:    value.Price,
			Time:     timeNow(),
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
			"seller": seller,
		}).Error("cancel listing failed")
		return err
	}

	return nil
}

func (im *impl) Get(c ctx.Ctx, itemId domain.ItemId) (*listing.Listing, error) {
	return im.listingRepo.FindOne(c, itemId)
}

func (im *impl) Search(c ctx.Ctx, opts ...listing.FindAllOptions) (*listing.SearchResult, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return nil, err
	}

	if im.searchPaging != nil && options.Cursor != nil {
		key := listing.OptionsToKey(options)
		size := 10
		if options.Size != nil {
			size = *options.Size
		}

		items := []*listing.Listing{}
		nextCursor, cnt, err := im.searchPaging.Get(c, key, *options.Cursor, size, &items)
		if err != nil {
			c.WithFields(log.Fields{
				"err": err,
				"key": key,
			}).Error("failed to searchPaging.Get")
			return nil, err
		}

		return &listing.SearchResult{Items: items, Count: cnt, NextCursor: nextCursor}, nil
	}

	items, err := im.listingRepo.FindAll(c, opts...)
	if err != nil {
		return nil, err
	}

	cnt, err := im.listingRepo.Count(c, opts...)
	if err != nil {
		return nil, err
	}

	return &listing.SearchResult{Items: items, Count: cnt}, nil
}

func (im *impl) searchGetter(c ctx.Ctx, key string) (interface{}, error) {
	opts, err := listing.ParseKeyToOptions(key)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("failed to listing.ParseKeyToOptions")
		return nil, err
	}

	items, err := im.listingRepo.FindAll(c, opts...)
	if err != nil {
		return nil, err
	}

	return items, nil
}
