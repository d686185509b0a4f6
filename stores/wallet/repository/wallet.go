package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/wallet"
	"github.com/openmint/marketapi/service/query"
)

type walletRepoImpl struct {
	q query.Mongo
}

func NewWalletRepo(q query.Mongo) wallet.Repo {
	return &walletRepoImpl{q}
}

func (im *walletRepoImpl) FindOne(c ctx.Ctx, address domain.Address) (*wallet.Wallet, error) {
	res := &wallet.Wallet{}
	if err := im.q.FindOne(c, domain.TableWallets, bson.M{"_id": address}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *walletRepoImpl) Credit(c ctx.Ctx, address domain.Address, amount uint64) error {
	res := &wallet.Wallet{}
	if err := im.q.Increment(c, domain.TableWallets, bson.M{"_id": address}, res, "amount", int64(amount)); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
			"amount":  amount,
		}).Error("failed to q.Increment")
		return err
	}
	return nil
}

func (im *walletRepoImpl) Debit(c ctx.Ctx, address domain.Address, amount uint64) error {
	// guard and decrement in one conditional update so a concurrent debit
	// can never drive the balance negative
	selector := bson.M{"_id": address, "amount": bson.M{"$gte": amount}}
	update := bson.M{"$inc": bson.M{"amount": -int64(amount)}}
	if err := im.q.CustomPatch(c, domain.TableWallets, selector, update, false); err == query.ErrNotFound {
		return domain.ErrInsufficientBalance
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
			"amount":  amount,
		}).Error("failed to q.CustomPatch")
		return err
	}
	return nil
}
