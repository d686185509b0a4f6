package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/database/mongoclient"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/escrow"
	"github.com/openmint/marketapi/service/query"
)

type escrowRepoImpl struct {
	q query.Mongo
}

func NewEscrowRepo(q query.Mongo) escrow.Repo {
	return &escrowRepoImpl{q}
}

func (im *escrowRepoImpl) FindOne(c ctx.Ctx, holder domain.Address) (*escrow.Escrow, error) {
	res := &escrow.Escrow{}
	if err := im.q.FindOne(c, domain.TableEscrows, bson.M{"_id": holder}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *escrowRepoImpl) Create(c ctx.Ctx, value *escrow.Escrow) error {
	if err := im.q.Insert(c, domain.TableEscrows, value); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"holder": value.Holder,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *escrowRepoImpl) Patch(c ctx.Ctx, holder domain.Address, patchable escrow.Patchable) error {
	val, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Patch(c, domain.TableEscrows, bson.M{"_id": holder}, val); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
		}).Error("failed to q.Patch")
		return err
	}
	return nil
}

func (im *escrowRepoImpl) Delete(c ctx.Ctx, holder domain.Address) error {
	if err := im.q.Remove(c, domain.TableEscrows, bson.M{"_id": holder}); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"holder": holder,
		}).Error("failed to q.Remove")
		return err
	}
	return nil
}
