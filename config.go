package sniffkit

import (
	"strings"
	"time"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Allowed MIME type patterns (comma-separated globs, e.g. "image/*,application/pdf")
	AllowedTypes string `env:"SNIFFKIT_ALLOWED_TYPES"`

	// Blocked MIME type patterns (comma-separated globs)
	BlockedTypes string `env:"SNIFFKIT_BLOCKED_TYPES"`

	// Detection result caching
	CacheEnabled    bool   `env:"SNIFFKIT_CACHE_ENABLED,default:false"`
	CacheTTLSeconds int    `env:"SNIFFKIT_CACHE_TTL_SECONDS,default:0"`
	CacheKeyPrefix  string `env:"SNIFFKIT_CACHE_KEY_PREFIX,default:sniffkit:"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, WrapSniffError(ErrorTypeConfig, "failed to load config", err)
	}
	return cfg, nil
}

// NewInspectorFromConfig builds an Inspector from the given configuration.
// When cfg is nil the configuration is loaded from the environment.
func NewInspectorFromConfig(cfg *Config) (*Inspector, error) {
	if cfg == nil {
		loaded, err := GetConfig()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var opts []InspectorOption

	allowed := splitTypeList(cfg.AllowedTypes)
	blocked := splitTypeList(cfg.BlockedTypes)
	if len(allowed) > 0 || len(blocked) > 0 {
		filter, err := NewFilter(allowed, blocked)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithFilter(filter))
	}

	if cfg.CacheEnabled {
		cacheOpts := []DetectorCacheOption{
			WithCacheKeyPrefix(cfg.CacheKeyPrefix),
		}
		if cfg.CacheTTLSeconds > 0 {
			cacheOpts = append(cacheOpts,
				WithCacheTTL(time.Duration(cfg.CacheTTLSeconds)*time.Second))
		}
		detector := NewCachingDetector(NewMemoryCache(), cacheOpts...)
		opts = append(opts, WithCachingDetector(detector))
	}

	return NewInspector(opts...), nil
}

// splitTypeList parses a comma-separated list, dropping empty elements.
func splitTypeList(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
