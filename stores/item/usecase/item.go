package usecase

import (
	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/item"
)

type ServiceCfg struct {
	HoldingRepo item.HoldingRepo
}

type impl struct {
	holdingRepo item.HoldingRepo
}

func New(cfg *ServiceCfg) item.Service {
	return &impl{
		holdingRepo: cfg.HoldingRepo,
	}
}

func (im *impl) Transfer(c ctx.Ctx, kind domain.ItemTransferKind, itemId domain.ItemId, from, to domain.Address, qty uint64) error {
	holding, err := im.holdingRepo.FindOne(c, itemId, from)
	if err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrInsufficientItemBalance
		}
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
			"from":   from,
		}).Error("holdingRepo.FindOne failed")
		return err
	}

	// the registry variant is named by the caller, never inferred from the
	// holding
	if holding.Kind != kind {
		return domain.ErrBadParamInput
	}

	if err := im.holdingRepo.DebitExact(c, itemId, from, qty); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
			"from":   from,
			"qty":    qty,
		}).Error("holdingRepo.DebitExact failed")
		return err
	}

	if err := im.holdingRepo.CreditN(c, itemId, to, kind, qty); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
			"to":     to,
			"qty":    qty,
		}).Error("holdingRepo.CreditN failed")
		return err
	}

	return nil
}

func (im *impl) Mint(c ctx.Ctx, kind domain.ItemTransferKind, itemId domain.ItemId, to domain.Address) error {
	if _, err := im.holdingRepo.FindOne(c, itemId, to); err == nil {
		return domain.ErrConflict
	} else if err != domain.ErrNotFound {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
			"to":     to,
		}).Error("holdingRepo.FindOne failed")
		return err
	}

	if err := im.holdingRepo.CreditN(c, itemId, to, kind, 1); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
			"to":     to,
		}).Error("holdingRepo.CreditN failed")
		return err
	}

	return nil
}

func (im *impl) BalanceOf(c ctx.Ctx, itemId domain.ItemId, holder domain.Address) (uint64, error) {
	holding, err := im.holdingRepo.FindOne(c, itemId, holder)
	if err != nil {
		if err == domain.ErrNotFound {
			return 0, nil
		}
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
			"holder": holder,
		}).Error("holdingRepo.FindOne failed")
		return 0, err
	}
	return holding.Amount, nil
}
