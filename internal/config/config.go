// Package config loads the kintree.toml configuration file and builds
// the provider and cache it describes. All entry points (CLI, server,
// TUI) read the same file so a configured data source behaves the same
// everywhere.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/kintreeapp/kintree/pkg/errors"
	"github.com/kintreeapp/kintree/pkg/pipeline"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "kintree.toml"

// Provider kinds accepted in [provider].
const (
	ProviderDemo  = "demo"
	ProviderFile  = "file"
	ProviderMongo = "mongo"
)

// Cache kinds accepted in [cache].
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config is the top-level kintree.toml document.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Provider ProviderConfig `toml:"provider"`
	Cache    CacheConfig    `toml:"cache"`
	Render   RenderConfig   `toml:"render"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// ProviderConfig selects and configures the relationship data source.
type ProviderConfig struct {
	Kind  string      `toml:"kind"`
	File  string      `toml:"file"`
	Mongo MongoConfig `toml:"mongo"`
}

// MongoConfig configures the MongoDB provider.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// CacheConfig selects and configures the artifact cache.
type CacheConfig struct {
	Kind  string      `toml:"kind"`
	Dir   string      `toml:"dir"`
	Redis RedisConfig `toml:"redis"`
}

// RedisConfig configures the Redis artifact cache.
type RedisConfig struct {
	Addr string `toml:"addr"`
}

// RenderConfig sets render defaults for all entry points.
type RenderConfig struct {
	FrameWidth float64 `toml:"frame_width"`
	Style      string  `toml:"style"`
}

// Default returns the configuration used when no file is present: demo
// data, no cache, standard frame.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080"},
		Provider: ProviderConfig{Kind: ProviderDemo},
		Cache:    CacheConfig{Kind: CacheNone},
		Render: RenderConfig{
			FrameWidth: pipeline.DefaultFrameWidth,
			Style:      pipeline.DefaultStyle,
		},
	}
}

// Load reads a configuration file and merges it over the defaults.
// An empty path means DefaultPath; a missing file at DefaultPath is not
// an error, but a missing file at an explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %q", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the enumerated fields. Zero values pass so a partial
// file only overrides what it mentions.
func (c Config) Validate() error {
	switch c.Provider.Kind {
	case "", ProviderDemo, ProviderFile, ProviderMongo:
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid provider kind %q (must be one of: demo, file, mongo)", c.Provider.Kind)
	}
	if c.Provider.Kind == ProviderFile && c.Provider.File == "" {
		return errors.New(errors.ErrCodeInvalidInput, "provider kind %q requires provider.file", ProviderFile)
	}
	if c.Provider.Kind == ProviderMongo && c.Provider.Mongo.URI == "" {
		return errors.New(errors.ErrCodeInvalidInput, "provider kind %q requires provider.mongo.uri", ProviderMongo)
	}

	switch c.Cache.Kind {
	case "", CacheNone, CacheFile, CacheRedis:
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid cache kind %q (must be one of: none, file, redis)", c.Cache.Kind)
	}
	if c.Cache.Kind == CacheFile && c.Cache.Dir == "" {
		return errors.New(errors.ErrCodeInvalidInput, "cache kind %q requires cache.dir", CacheFile)
	}
	if c.Cache.Kind == CacheRedis && c.Cache.Redis.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "cache kind %q requires cache.redis.addr", CacheRedis)
	}

	if c.Render.Style != "" {
		if err := pipeline.ValidateStyle(c.Render.Style); err != nil {
			return err
		}
	}
	return nil
}
