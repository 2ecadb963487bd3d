package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Feed.Channel == "" {
		return fmt.Errorf("feed.channel must not be empty")
	}
	if c.Feed.ReconnectMinDelay <= 0 || c.Feed.ReconnectMaxDelay < c.Feed.ReconnectMinDelay {
		return fmt.Errorf("feed reconnect delays invalid (min %v, max %v)",
			c.Feed.ReconnectMinDelay, c.Feed.ReconnectMaxDelay)
	}

	if err := c.Recommend.validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	return nil
}

func (r *RecommendConfig) validate() error {
	weights := map[string]float64{
		"category_weight":   r.CategoryWeight,
		"society_weight":    r.SocietyWeight,
		"popularity_weight": r.PopularityWeight,
		"novelty_weight":    r.NoveltyWeight,
	}
	for name, w := range weights {
		if w < 0 || w > 1 {
			return fmt.Errorf("%s must be in [0, 1] (got %v)", name, w)
		}
	}
	if r.MinScore < 0 {
		return fmt.Errorf("min_score must be >= 0 (got %v)", r.MinScore)
	}
	if r.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be >= 1 (got %d)", r.DefaultLimit)
	}
	if r.MaxLimit < r.DefaultLimit {
		return fmt.Errorf("max_limit (%d) must be >= default_limit (%d)", r.MaxLimit, r.DefaultLimit)
	}
	return nil
}
