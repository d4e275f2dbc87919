package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
)

// Load parses environment variables into the provided struct using `env`
// and `envDefault` tags. When several fields fail, every failure is
// reported in a single error.
func Load(cfg any) error {
	return LoadWithPrefix(cfg, "")
}

// LoadWithPrefix is Load with every variable name prefixed, which lets tests
// and side-by-side deployments use isolated variable sets.
func LoadWithPrefix(cfg any, prefix string) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix})
	if err == nil {
		return nil
	}

	var agg env.AggregateError
	if errors.As(err, &agg) && len(agg.Errors) > 1 {
		msgs := make([]string, 0, len(agg.Errors))
		for _, e := range agg.Errors {
			msgs = append(msgs, e.Error())
		}
		return fmt.Errorf("parse config: %s", strings.Join(msgs, "; "))
	}
	return fmt.Errorf("parse config: %w", err)
}
