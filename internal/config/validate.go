package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.SearchKeySecret == "" {
		return fmt.Errorf("auth.search_key_secret must not be empty")
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Discussion.validate(); err != nil {
		return fmt.Errorf("discussion: %w", err)
	}
	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := c.Projection.validate(); err != nil {
		return fmt.Errorf("projection: %w", err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSec <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: requests_per_sec and burst must be > 0 when enabled")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (d *DiscussionConfig) validate() error {
	if strings.TrimSpace(d.IndexName) == "" {
		return fmt.Errorf("index_name must not be empty")
	}
	if d.StoreTimeout <= 0 {
		return fmt.Errorf("store_timeout must be > 0 (got %s)", d.StoreTimeout)
	}
	if d.MaxVoteAttempts < 1 {
		return fmt.Errorf("max_vote_attempts must be >= 1 (got %d)", d.MaxVoteAttempts)
	}
	return nil
}

func (c *CacheConfig) validate() error {
	if c.DocumentCapacity <= 0 {
		return fmt.Errorf("document_capacity must be > 0 (got %d)", c.DocumentCapacity)
	}
	if c.SearchCapacity <= 0 {
		return fmt.Errorf("search_capacity must be > 0 (got %d)", c.SearchCapacity)
	}
	if c.SearchTTL <= 0 {
		return fmt.Errorf("search_ttl must be > 0 (got %s)", c.SearchTTL)
	}
	return nil
}

func (p *ProjectionConfig) validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", p.Workers)
	}
	if p.QueueSize < 1 {
		return fmt.Errorf("queue_size must be >= 1 (got %d)", p.QueueSize)
	}
	if p.TaskTimeout <= 0 {
		return fmt.Errorf("task_timeout must be > 0 (got %s)", p.TaskTimeout)
	}
	return nil
}
