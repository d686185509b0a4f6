package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/marketplace"
	"github.com/openmint/marketapi/service/query"
)

type marketplaceRepoImpl struct {
	q query.Mongo
}

func NewMarketplaceRepo(q query.Mongo) marketplace.Repo {
	return &marketplaceRepoImpl{q}
}

func (im *marketplaceRepoImpl) FindOne(c ctx.Ctx) (*marketplace.Marketplace, error) {
	res := &marketplace.Marketplace{}
	if err := im.q.FindOne(c, domain.TableMarketplaces, bson.M{"_id": marketplace.SingletonKey}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *marketplaceRepoImpl) Create(c ctx.Ctx, value *marketplace.Marketplace) error {
	value.Key = marketplace.SingletonKey
	if err := im.q.Insert(c, domain.TableMarketplaces, value); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *marketplaceRepoImpl) IncrementSales(c ctx.Ctx, price uint64) error {
	selector := bson.M{"_id": marketplace.SingletonKey}
	update := bson.M{"$inc": bson.M{"totalSales": 1, "totalVolume": int64(price)}}
	if err := im.q.CustomPatch(c, domain.TableMarketplaces, selector, update, false); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"price": price,
		}).Error("failed to q.CustomPatch")
		return err
	}
	return nil
}
