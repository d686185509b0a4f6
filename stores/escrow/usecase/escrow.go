package usecase

import (
	"math/bits"
	"time"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/escrow"
	"github.com/openmint/marketapi/domain/item"
	"github.com/openmint/marketapi/domain/wallet"
)

var timeNow = time.Now

type CustodianCfg struct {
	EscrowRepo  escrow.Repo
	ItemService item.Service
	Ledger      wallet.Ledger
}

type impl struct {
	escrowRepo  escrow.Repo
	itemService item.Service
	ledger      wallet.Ledger
}

// New builds the escrow custodian. The custodian itself never opens a
// transaction; it always runs inside the owning operation's.
func New(cfg *CustodianCfg) escrow.Custodian {
	return &impl{
		escrowRepo:  cfg.EscrowRepo,
		itemService: cfg.ItemService,
		ledger:      cfg.Ledger,
	}
}

func (im *impl) Open(c ctx.Ctx, kind domain.EscrowHolderKind, itemId domain.ItemId, from domain.Address) (*escrow.Escrow, error) {
	holder := domain.DeriveEscrowHolder(kind, itemId)

	existing, err := im.escrowRepo.FindOne(c, holder)
	if err != nil && err != domain.ErrNotFound {
		c.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
		}).Error("escrowRepo.FindOne failed")
		return nil, err
	}
	if existing != nil && !existing.Released {
		return nil, domain.ErrConflict
	}

	// escrow intake always targets the standard registry, mirroring that
	// custody accounts live there; the compressed variant only appears on
	// release, named explicitly by the buyer.
	if err := im.itemService.Transfer(c, domain.ItemTransferStandard, itemId, from, holder, 1); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
			"from":   from,
		}).Error("itemService.Transfer failed")
		return nil, err
	}

	value := &escrow.Escrow{
		Holder:    holder,
		ItemId:    itemId,
		OwnerKind: kind,
		FundsHeld: 0,
		Released:  false,
		OpenedAt:  timeNow(),
	}

	if existing != nil {
		// previous terminal escrow under the same derived holder, reuse the key
		if err := im.escrowRepo.Delete(c, holder); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"holder": holder,
			}).Error("escrowRepo.Delete failed")
			return nil, err
		}
	}
	if err := im.escrowRepo.Create(c, value); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
		}).Error("escrowRepo.Create failed")
		return nil, err
	}

	return value, nil
}

func (im *impl) ReleaseItem(c ctx.Ctx, kind domain.EscrowHolderKind, itemId domain.ItemId, dest domain.Address, transfer domain.ItemTransferKind) error {
	holder := domain.DeriveEscrowHolder(kind, itemId)

	value, err := im.escrowRepo.FindOne(c, holder)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
		}).Error("escrowRepo.FindOne failed")
		return err
	}
	if value.Released {
		return domain.ErrEscrowReleased
	}

	// mark released before moving the unit so a second release inside the
	// same operation can never succeed
	released := true
	releasedAt := timeNow()
	if err := im.escrowRepo.Patch(c, holder, escrow.Patchable{
		Released:   &released,
		ReleasedAt: &releasedAt,
	}); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
		}).Error("escrowRepo.Patch failed")
		return err
	}

	if err := im.itemService.Transfer(c, transfer, itemId, holder, dest, 1); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
			"dest":   dest,
		}).Error("itemService.Transfer failed")
		return err
	}

	return nil
}

func (im *impl) DepositFunds(c ctx.Ctx, kind domain.EscrowHolderKind, itemId domain.ItemId, from domain.Address, amount uint64) error {
	holder := domain.DeriveEscrowHolder(kind, itemId)

	value, err := im.escrowRepo.FindOne(c, holder)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
		}).Error("escrowRepo.FindOne failed")
		return err
	}
	if value.Released {
		return domain.ErrEscrowReleased
	}

	held, carry := bits.Add64(value.FundsHeld, amount, 0)
	if carry != 0 {
		return domain.ErrAmountOverflow
	}

	if err := im.ledger.Transfer(c, from, holder, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"from":   from,
			"amount": amount,
		}).Error("ledger.Transfer failed")
		return err
	}

	if err := im.escrowRepo.Patch(c, holder, escrow.Patchable{FundsHeld: &held}); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
		}).Error("escrowRepo.Patch failed")
		return err
	}

	return nil
}

func (im *impl) WithdrawFunds(c ctx.Ctx, kind domain.EscrowHolderKind, itemId domain.ItemId, to domain.Address, amount uint64) error {
	holder := domain.DeriveEscrowHolder(kind, itemId)

	value, err := im.escrowRepo.FindOne(c, holder)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
		}).Error("escrowRepo.FindOne failed")
		return err
	}
	if amount > value.FundsHeld {
		return domain.ErrInsufficientBalance
	}

	if err := im.ledger.Transfer(c, holder, to, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"to":     to,
			"amount": amount,
		}).Error("ledger.Transfer failed")
		return err
	}

	held := value.FundsHeld - amount
	if err := im.escrowRepo.Patch(c, holder, escrow.Patchable{FundsHeld: &held}); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
		}).Error("escrowRepo.Patch failed")
		return err
	}

	return nil
}

func (im *impl) HeldFunds(c ctx.Ctx, kind domain.EscrowHolderKind, itemId domain.ItemId) (uint64, error) {
	holder := domain.DeriveEscrowHolder(kind, itemId)

	value, err := im.escrowRepo.FindOne(c, holder)
	if err != nil {
		if err == domain.ErrNotFound {
			return 0, nil
		}
		c.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
		}).Error("escrowRepo.FindOne failed")
		return 0, err
	}

	return value.FundsHeld, nil
}
