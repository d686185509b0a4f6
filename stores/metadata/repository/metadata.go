package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/keys"
	"github.com/openmint/marketapi/domain/metadata"
	"github.com/openmint/marketapi/service/cache"
	compoundcache "github.com/openmint/marketapi/service/cache/compoundCache"
	"github.com/openmint/marketapi/service/cache/provider/primitive"
	redisCache "github.com/openmint/marketapi/service/cache/provider/redis"
	"github.com/openmint/marketapi/service/query"
	"github.com/openmint/marketapi/service/redis"
)

type metadataRepoImpl struct {
	q             query.Mongo
	metadataCache cache.Service
}

// NewMetadataRepo builds the metadata store. Records are immutable once
// created, so cached reads never need invalidation. Pass a nil redis to
// fall back to the in-process cache alone.
func NewMetadataRepo(q query.Mongo, redis redis.Service) metadata.Repo {
	cacheServices := []cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   10 * time.Second,
			Pfx:   "metadata",
			Cache: primitive.NewPrimitive("metadata", 512),
		}),
	}

	if redis != nil {
		cacheServices = append(cacheServices, cache.New(cache.ServiceConfig{
			Ttl:   10 * time.Minute,
			Pfx:   "metadata",
			Cache: redisCache.NewRedis(redis),
		}))
	}

	return &metadataRepoImpl{
		q:             q,
		metadataCache: compoundcache.NewCompoundCache(cacheServices),
	}
}

func (im *metadataRepoImpl) FindOne(c ctx.Ctx, itemId domain.ItemId) (*metadata.Metadata, error) {
	key := keys.RedisKey(string(itemId))

	res := &metadata.Metadata{}
	if err := im.metadataCache.GetByFunc(c, key, res, func() (interface{}, error) {
		return im.findOne(c, itemId)
	}); err != nil {
		return nil, err
	}

	return res, nil
}

func (im *metadataRepoImpl) findOne(c ctx.Ctx, itemId domain.ItemId) (*metadata.Metadata, error) {
	res := &metadata.Metadata{}
	if err := im.q.FindOne(c, domain.TableItemMetadata, bson.M{"_id": itemId}, res); err == query.ErrNotFound {
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

func (im *metadataRepoImpl) Create(c ctx.Ctx, value *metadata.Metadata) error {
	if err := im.q.Insert(c, domain.TableItemMetadata, value); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": value.ItemId,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}
