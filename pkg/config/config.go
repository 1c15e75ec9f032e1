// Package config loads application configuration from TOML files.
//
// Configuration is only needed for server deployments; the CLI works
// without a config file using [Default]. Example:
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	backend = "file"   # "null", "file", or "redis"
//	dir = ""           # file backend, "" for default
//	redis_url = ""     # redis backend
//
//	[store]
//	backend = "memory" # "memory" or "mongo"
//	mongo_uri = ""
//	database = "conclusiv"
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/conclusiv/conclusiv/pkg/errors"
)

// Config is the top-level application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
}

// StoreConfig selects and configures the narrative store.
type StoreConfig struct {
	Backend  string `toml:"backend"`
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// Default returns the configuration used when no file is given:
// in-memory store, file cache, port 8080.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache:  CacheConfig{Backend: "file"},
		Store:  StoreConfig{Backend: "memory", Database: "conclusiv"},
	}
}

// Load reads a TOML config file, filling unset fields from [Default].
// An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid config file: %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks backend names and required backend fields.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case "", "null", "file":
	case "redis":
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidInput, "cache.redis_url is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend: %s", c.Cache.Backend)
	}

	switch c.Store.Backend {
	case "", "memory":
	case "mongo":
		if c.Store.MongoURI == "" {
			return errors.New(errors.ErrCodeInvalidInput, "store.mongo_uri is required for the mongo backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown store backend: %s", c.Store.Backend)
	}
	return nil
}
