package usecase

import (
	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/wallet"
)

type LedgerCfg struct {
	WalletRepo wallet.Repo
}

type impl struct {
	walletRepo wallet.Repo
}

func New(cfg *LedgerCfg) wallet.Ledger {
	return &impl{
		walletRepo: cfg.WalletRepo,
	}
}

func (im *impl) Transfer(c ctx.Ctx, from, to domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}

	if err := im.walletRepo.Debit(c, from, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"from":   from,
			"amount": amount,
		}).Error("walletRepo.Debit failed")
		return err
	}

	if err := im.walletRepo.Credit(c, to, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"to":     to,
			"amount": amount,
		}).Error("walletRepo.Credit failed")
		return err
	}

	return nil
}

func (im *impl) Deposit(c ctx.Ctx, to domain.Address, amount uint64) error {
	if err := im.walletRepo.Credit(c, to, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"to":     to,
			"amount": amount,
		}).Error("walletRepo.Credit failed")
		return err
	}
	return nil
}

func (im *impl) Balance(c ctx.Ctx, address domain.Address) (uint64, error) {
	value, err := im.walletRepo.FindOne(c, address)
	if err != nil {
		if err == domain.ErrNotFound {
			return 0, nil
		}
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("walletRepo.FindOne failed")
		return 0, err
	}
	return value.Amount, nil
}
