package redisimpls

import (
	"context"
	"errors"
	"slices"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libtabulated/store"
)

// NewRedisStorage keeps every function as a field of one redis hash named
// "<preKey>:functions".
func NewRedisStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) store.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisStorageImpl"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisStorageImpl{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type redisStorageImpl struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *redisStorageImpl) functionsKey() string {
	return impl.preKey + ":functions"
}

func (impl *redisStorageImpl) Load(key string) (string, error) {
	data, err := impl.redisCli.HGet(context.Background(), impl.functionsKey(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", commerr.ErrNotFound
	}

	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("hget failed")

		return "", err
	}

	return data, nil
}

func (impl *redisStorageImpl) Save(key, data string) error {
	return impl.redisCli.HSet(context.Background(), impl.functionsKey(), key, data).Err()
}

func (impl *redisStorageImpl) Delete(key string) error {
	n, err := impl.redisCli.HDel(context.Background(), impl.functionsKey(), key).Result()
	if err != nil {
		return err
	}

	if n == 0 {
		return commerr.ErrNotFound
	}

	return nil
}

func (impl *redisStorageImpl) Keys() ([]string, error) {
	keys, err := impl.redisCli.HKeys(context.Background(), impl.functionsKey()).Result()
	if err != nil {
		return nil, err
	}

	slices.Sort(keys)

	return keys, nil
}
