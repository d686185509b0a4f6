package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/database/mongoclient"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/auction"
	"github.com/openmint/marketapi/service/query"
)

type auctionRepoImpl struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionRepoImpl{q}
}

func (im *auctionRepoImpl) makeQuery(opts ...auction.FindAllOptions) (bson.M, error) {
	options, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.Seller != nil {
		query["seller"] = *options.Seller
	}

	if options.IsActive != nil {
		query["isActive"] = *options.IsActive
	}

	return query, nil
}

func (im *auctionRepoImpl) FindOne(c ctx.Ctx, itemId domain.ItemId) (*auction.Auction, error) {
	res := &auction.Auction{}
	if err := im.q.FindOne(c, domain.TableAuctions, bson.M{"_id": itemId}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *auctionRepoImpl) FindAll(c ctx.Ctx, opts ...auction.FindAllOptions) ([]*auction.Auction, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := auction.GetFindAllOptions(opts...)
	offset, limit := 0, 0
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}

	res := []*auction.Auction{}
	if err := im.q.Search(c, domain.TableAuctions, offset, limit, "-startTime", query, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *auctionRepoImpl) Count(c ctx.Ctx, opts ...auction.FindAllOptions) (int, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(c, domain.TableAuctions, query)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

func (im *auctionRepoImpl) Create(c ctx.Ctx, value *auction.Auction) error {
	if err := im.q.Insert(c, domain.TableAuctions, value); err == query.ErrDuplicateKey {
		return domain.ErrAlreadyOnAuction
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": value.ItemId,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Patch(c ctx.Ctx, itemId domain.ItemId, patchable auction.Patchable) error {
	val, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Patch(c, domain.TableAuctions, bson.M{"_id": itemId}, val); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
		}).Error("failed to q.Patch")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Replace(c ctx.Ctx, value *auction.Auction) error {
	if err := im.q.Upsert(c, domain.TableAuctions, bson.M{"_id": value.ItemId}, value); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": value.ItemId,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
