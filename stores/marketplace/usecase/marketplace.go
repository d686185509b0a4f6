package usecase

import (
	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/feesplit"
	"github.com/openmint/marketapi/domain/marketplace"
)

type MarketplaceUseCaseCfg struct {
	MarketplaceRepo marketplace.Repo
}

type impl struct {
	marketplaceRepo marketplace.Repo
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &impl{
		marketplaceRepo: cfg.MarketplaceRepo,
	}
}

func (im *impl) Initialize(c ctx.Ctx, authority, treasury domain.Address, feeBps uint16) (*marketplace.Marketplace, error) {
	if feeBps > feesplit.MaxFeeBps {
		return nil, domain.ErrInvalidFee
	}
	if len(authority) == 0 || len(treasury) == 0 {
		return nil, domain.ErrInvalidAddress
	}

	value := &marketplace.Marketplace{
		Key:            marketplace.SingletonKey,
		Authority:      authority,
		Treasury:       treasury,
		FeeBasisPoints: feeBps,
		TotalSales:     0,
		TotalVolume:    0,
	}
	if err := im.marketplaceRepo.Create(c, value); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"authority": authority,
		}).Error("marketplaceRepo.Create failed")
		return nil, err
	}

	return value, nil
}

func (im *impl) Get(c ctx.Ctx) (*marketplace.Marketplace, error) {
	value, err := im.marketplaceRepo.FindOne(c)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err": err,
			}).Error("marketplaceRepo.FindOne failed")
		}
		return nil, err
	}
	return value, nil
}

func (im *impl) GetStats(c ctx.Ctx) (*marketplace.Stats, error) {
	value, err := im.Get(c)
	if err != nil {
		return nil, err
	}
	return &marketplace.Stats{
		TotalSales:  value.TotalSales,
		TotalVolume: value.TotalVolume,
	}, nil
}

func (im *impl) RecordSale(c ctx.Ctx, price uint64) error {
	if err := im.marketplaceRepo.IncrementSales(c, price); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"price": price,
		}).Error("marketplaceRepo.IncrementSales failed")
		return err
	}
	return nil
}
