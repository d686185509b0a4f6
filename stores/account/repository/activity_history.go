package repository

import (
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/account"
	"github.com/openmint/marketapi/service/query"
)

type activityHistoryRepoImpl struct {
	q query.Mongo
}

func NewActivityHistoryRepo(q query.Mongo) account.ActivityHistoryRepo {
	return &activityHistoryRepoImpl{q}
}

func (im *activityHistoryRepoImpl) makeQuery(opts ...account.FindActivityHistoryOptions) (bson.M, error) {
	options, err := account.GetFindActivityHistoryOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.ItemId != nil {
		query["itemId"] = *options.ItemId
	}

	if options.Account != nil {
		query["account"] = *options.Account
	}

	if len(options.Types) > 0 {
		query["type"] = bson.M{"$in": options.Types}
	}

	return query, nil
}

func (im *activityHistoryRepoImpl) Insert(c ctx.Ctx, value *account.ActivityHistory) error {
	if value.Id == "" {
		value.Id = uuid.New().String()
	}
	if err := im.q.Insert(c, domain.TableActivities, value); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": value.ItemId,
			"type":   value.Type,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *activityHistoryRepoImpl) FindAll(c ctx.Ctx, opts ...account.FindActivityHistoryOptions) ([]*account.ActivityHistory, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := account.GetFindActivityHistoryOptions(opts...)
	offset, limit := 0, 0
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}

	res := []*account.ActivityHistory{}
	if err := im.q.Search(c, domain.TableActivities, offset, limit, "-time", query, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *activityHistoryRepoImpl) Count(c ctx.Ctx, opts ...account.FindActivityHistoryOptions) (int, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(c, domain.TableActivities, query)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}
