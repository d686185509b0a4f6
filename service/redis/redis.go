package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/openmint/marketapi/base/ctx"
)

// Forever marks a key without expire
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil

	// ErrNoTTL is returned when the key exists but has no associated expire
	ErrNoTTL = errors.New("redis key has no ttl")

	// ErrGapTime is returned when no pool is available
	ErrGapTime = errors.New("redis pool unavailable")
)

// Service provides the redis manipulation interface used across the app
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	TTL(context ctx.Ctx, key string) (int, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	GetConn() (redis.Conn, error)
}
