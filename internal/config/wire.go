package config

import (
	"context"

	"github.com/kintreeapp/kintree/pkg/cache"
	"github.com/kintreeapp/kintree/pkg/errors"
	"github.com/kintreeapp/kintree/pkg/provider"
	"github.com/kintreeapp/kintree/pkg/provider/file"
	"github.com/kintreeapp/kintree/pkg/provider/memory"
	"github.com/kintreeapp/kintree/pkg/provider/mongo"
)

// OpenProvider builds the configured relationship provider. The returned
// cleanup function releases any connection it opened and is safe to call
// on a nil error path only.
func (c Config) OpenProvider(ctx context.Context) (provider.Provider, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch c.Provider.Kind {
	case "", ProviderDemo:
		store := memory.New()
		memory.SeedDemo(store)
		return store, noop, nil

	case ProviderFile:
		store, err := file.Load(c.Provider.File)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil

	case ProviderMongo:
		coll := c.Provider.Mongo.Collection
		if coll == "" {
			coll = mongo.DefaultCollection
		}
		store, disconnect, err := mongo.Connect(ctx, c.Provider.Mongo.URI, c.Provider.Mongo.Database, coll)
		if err != nil {
			return nil, nil, err
		}
		return store, disconnect, nil

	default:
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "invalid provider kind %q", c.Provider.Kind)
	}
}

// OpenCache builds the configured artifact cache. Callers own Close.
func (c Config) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Kind {
	case "", CacheNone:
		return cache.NewNullCache(), nil
	case CacheFile:
		return cache.NewFileCache(c.Cache.Dir)
	case CacheRedis:
		return cache.NewRedisCache(ctx, c.Cache.Redis.Addr)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid cache kind %q", c.Cache.Kind)
	}
}
