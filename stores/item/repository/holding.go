package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/item"
	"github.com/openmint/marketapi/service/query"
)

type holdingRepoImpl struct {
	q query.Mongo
}

func NewHoldingRepo(q query.Mongo) item.HoldingRepo {
	return &holdingRepoImpl{q}
}

func (im *holdingRepoImpl) FindOne(c ctx.Ctx, itemId domain.ItemId, holder domain.Address) (*item.Holding, error) {
	res := &item.Holding{}
	key := item.HoldingKey(itemId, holder)
	if err := im.q.FindOne(c, domain.TableItemHoldings, bson.M{"_id": key}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
			"holder": holder,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *holdingRepoImpl) Upsert(c ctx.Ctx, value *item.Holding) error {
	value.Key = item.HoldingKey(value.ItemId, value.Holder)
	if err := im.q.Upsert(c, domain.TableItemHoldings, bson.M{"_id": value.Key}, value); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": value.Key,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *holdingRepoImpl) DebitExact(c ctx.Ctx, itemId domain.ItemId, holder domain.Address, qty uint64) error {
	// exact-balance guard and decrement in one conditional update
	key := item.HoldingKey(itemId, holder)
	selector := bson.M{"_id": key, "amount": qty}
	update := bson.M{"$inc": bson.M{"amount": -int64(qty)}}
	if err := im.q.CustomPatch(c, domain.TableItemHoldings, selector, update, false); err == query.ErrNotFound {
		return domain.ErrInsufficientItemBalance
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
			"qty": qty,
		}).Error("failed to q.CustomPatch")
		return err
	}
	return nil
}

func (im *holdingRepoImpl) CreditN(c ctx.Ctx, itemId domain.ItemId, holder domain.Address, kind domain.ItemTransferKind, qty uint64) error {
	key := item.HoldingKey(itemId, holder)
	res := &item.Holding{}
	fieldAndValues := bson.M{"amount": int64(qty)}
	set := bson.M{
		"itemId": itemId,
		"holder": holder,
		"kind":   kind,
	}
	if err := im.q.IncrementMany(c, domain.TableItemHoldings, bson.M{"_id": key}, fieldAndValues, set, res); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
			"qty": qty,
		}).Error("failed to q.IncrementMany")
		return err
	}
	return nil
}
