package usecase

import (
	"time"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/account"
	"github.com/openmint/marketapi/domain/auction"
	"github.com/openmint/marketapi/domain/escrow"
	"github.com/openmint/marketapi/domain/feesplit"
	"github.com/openmint/marketapi/domain/marketplace"
)

var timeNow = time.Now

// maxAuctionDuration caps Duration at one year, keeping the nanosecond
// EndTime arithmetic far from int64 overflow
const maxAuctionDuration = int64(365 * 24 * time.Hour / time.Second)

type AuctionUseCaseCfg struct {
	AuctionRepo   auction.Repo
	MarketplaceUC marketplace.UseCase
	Custodian     escrow.Custodian
	ActivityRepo  account.ActivityHistoryRepo
	TxRunner      domain.TxRunner
}

type impl struct {
	auctionRepo   auction.Repo
	marketplaceUC marketplace.UseCase
	custodian     escrow.Custodian
	activity      account.ActivityHistoryRepo
	txRunner      domain.TxRunner
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	return &impl{
		auctionRepo:   cfg.AuctionRepo,
		marketplaceUC: cfg.MarketplaceUC,
		custodian:     cfg.Custodian,
		activity:      cfg.ActivityRepo,
		txRunner:      cfg.TxRunner,
	}
}

func (im *impl) Create(c ctx.Ctx, params auction.CreateParams) (*auction.Auction, error) {
	if params.StartingPrice == 0 {
		return nil, domain.ErrInvalidPrice
	}
	if params.ReservePrice < params.StartingPrice {
		return nil, domain.ErrInvalidReservePrice
	}
	if params.Duration <= 0 || params.Duration > maxAuctionDuration {
		return nil, domain.ErrInvalidDuration
	}

	now := timeNow()
	value := &auction.Auction{
		ItemId:        params.ItemId,
		Seller:        params.Seller,
		StartingPrice: params.StartingPrice,
		CurrentBid:    0,
		ReservePrice:  params.ReservePrice,
		HighestBidder: nil,
		StartTime:     now,
		EndTime:       now.Add(time.Duration(params.Duration) * time.Second),
		IsActive:      true,
	}

	err := im.txRunner.RunWithTransaction(c, func(c ctx.Ctx) error {
		existing, err := im.auctionRepo.FindOne(c, params.ItemId)
		if err != nil && err != domain.ErrNotFound {
			return err
		}
		if existing != nil && existing.IsActive {
			return domain.ErrAlreadyOnAuction
		}

		if _, err := im.custodian.Open(c, domain.EscrowHolderKindAuction, params.ItemId, params.Seller); err != nil {
			return err
		}

		if existing != nil {
			if err := im.auctionRepo.Replace(c, value); err != nil {
				return err
			}
		} else if err := im.auctionRepo.Create(c, value); err != nil {
			return err
		}

		return im.activity.Insert(c, &account.ActivityHistory{
			ItemId:   params.ItemId,
			Type:     account.ActivityHistoryTypeCreateAuction,
			Account:  params.Seller,
			Quantity: 1,
			Price:    params.StartingPrice,
			Time:     now,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": params.ItemId,
			"seller": params.Seller,
		}).Error("create auction failed")
		return nil, err
	}

	return value, nil
}

func (im *impl) PlaceBid(c ctx.Ctx, params auction.BidParams) (*auction.Auction, error) {
	res := &auction.Auction{}

	err := im.txRunner.RunWithTransaction(c, func(c ctx.Ctx) error {
		value, err := im.auctionRepo.FindOne(c, params.ItemId)
		if err != nil {
			return err
		}
		if !value.IsActive {
			return domain.ErrAuctionNotActive
		}
		// the instant at end time is excluded from the bidding window
		if !timeNow().Before(value.EndTime) {
			return domain.ErrAuctionEnded
		}
		if params.Amount <= value.CurrentBid {
			return domain.ErrBidTooLow
		}
		if params.Amount < value.StartingPrice {
			return domain.ErrBidBelowStarting
		}

		// refund the displaced bidder before escrowing the new bid so the
		// escrow never holds two bids at once
		if value.HighestBidder != nil {
			if err := im.custodian.WithdrawFunds(c, domain.EscrowHolderKindAuction, params.ItemId, *value.HighestBidder, value.CurrentBid); err != nil {
				return err
			}
		}

		if err := im.custodian.DepositFunds(c, domain.EscrowHolderKindAuction, params.ItemId, params.Bidder, params.Amount); err != nil {
			return err
		}

		bidder := params.Bidder
		if err := im.auctionRepo.Patch(c, params.ItemId, auction.Patchable{
			CurrentBid:    &params.Amount,
			HighestBidder: &bidder,
		}); err != nil {
			return err
		}

		if err := im.activity.Insert(c, &account.ActivityHistory{
			ItemId:   params.ItemId,
			Type:     account.ActivityHistoryTypePlaceBid,
			Account:  params.Bidder,
			Quantity: 1,
			Price:    params.Amount,
			Time:     timeNow(),
		}); err != nil {
			return err
		}

		*res = *value
		res.CurrentBid = params.Amount
		res.HighestBidder = &bidder
		return nil
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": params.ItemId,
			"bidder": params.Bidder,
			"amount": params.Amount,
		}).Error("place bid failed")
		return nil, err
	}

	return res, nil
}

func (im *impl) Settle(c ctx.Ctx, itemId domain.ItemId) (*auction.Settlement, error) {
	res := &auction.Settlement{}

	err := im.txRunner.RunWithTransaction(c, func(c ctx.Ctx) error {
		value, err := im.auctionRepo.FindOne(c, itemId)
		if err != nil {
			return err
		}
		if !value.IsActive {
			return domain.ErrAuctionNotActive
		}
		if timeNow().Before(value.EndTime) {
			return domain.ErrAuctionNotEnded
		}

		// terminal first; the escrow refuses release before that
		isActive := false
		if err := im.auctionRepo.Patch(c, itemId, auction.Patchable{IsActive: &isActive}); err != nil {
			return err
		}

		reserveMet := value.HighestBidder != nil && value.CurrentBid >= value.ReservePrice
		if reserveMet {
			mp, err := im.marketplaceUC.Get(c)
			if err != nil {
				return err
			}

			split, err := feesplit.Calculate(value.CurrentBid, mp.FeeBasisPoints, 0)
			if err != nil {
				return err
			}

			if err := im.custodian.WithdrawFunds(c, domain.EscrowHolderKindAuction, itemId, mp.Treasury, split.Fee); err != nil {
				return err
			}
			if err := im.custodian.WithdrawFunds(c, domain.EscrowHolderKindAuction, itemId, value.Seller, split.SellerAmount); err != nil {
				return err
			}
			if err := im.custodian.ReleaseItem(c, domain.EscrowHolderKindAuction, itemId, *value.HighestBidder, domain.ItemTransferStandard); err != nil {
				return err
			}
			if err := im.marketplaceUC.RecordSale(c, value.CurrentBid); err != nil {
				return err
			}

			*res = auction.Settlement{
				ItemId:         itemId,
				Outcome:        auction.OutcomeSold,
				Price:          value.CurrentBid,
				Winner:         value.HighestBidder,
				Fee:            split.Fee,
				SellerProceeds: split.SellerAmount,
			}
		} else {
			if err := im.custodian.ReleaseItem(c, domain.EscrowHolderKindAuction, itemId, value.Seller, domain.ItemTransferStandard); err != nil {
				return err
			}
			// a failed auction charges no fee, the bid goes back whole
			if value.HighestBidder != nil {
				if err := im.custodian.WithdrawFunds(c, domain.EscrowHolderKindAuction, itemId, *value.HighestBidder, value.CurrentBid); err != nil {
					return err
				}
			}

			*res = auction.Settlement{
				ItemId:   itemId,
				Outcome:  auction.OutcomeReturned,
				Price:    value.CurrentBid,
				Refunded: value.CurrentBid,
			}
			if value.HighestBidder == nil {
				res.Refunded = 0
			}
		}

		return im.activity.Insert(c, &account.ActivityHistory{
			ItemId:   itemId,
			Type:     account.ActivityHistoryTypeSettle,
			Account:  value.Seller,
			Quantity: 1,
			Price:    value.CurrentBid,
			Time:     timeNow(),
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
		}).Error("settle auction failed")
		return nil, err
	}

	return res, nil
}

func (im *impl) Get(c ctx.Ctx, itemId domain.ItemId) (*auction.Auction, error) {
	return im.auctionRepo.FindOne(c, itemId)
}

func (im *impl) Search(c ctx.Ctx, opts ...auction.FindAllOptions) ([]*auction.Auction, error) {
	return im.auctionRepo.FindAll(c, opts...)
}
