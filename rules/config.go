package rules

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Output formats.
const (
	FormatStylish = "stylish"
	FormatJSON    = "json"
)

// Config is the fully resolved configuration of a run.
type Config struct {
	Rules            map[string]RuleSetting
	PriorYearFile    string
	Format           string
	WarningsAsErrors bool
}

// RuleSetting overrides a rule's severity and passes it parameters.
type RuleSetting struct {
	Severity Severity
	Params   map[string]any
}

// NewConfig returns the defaults: every rule at its built-in severity,
// stylish output.
func NewConfig() *Config {
	return &Config{
		Rules:  map[string]RuleSetting{},
		Format: FormatStylish,
	}
}

// EffectiveSeverity is the configured severity of r, else its default.
func (c *Config) EffectiveSeverity(r Rule) Severity {
	if s, ok := c.Rules[r.ID]; ok && s.Severity != "" {
		return s.Severity
	}
	return r.Severity
}

// Decimal reads a numeric parameter. Missing or non-numeric values yield
// def.
func (s RuleSetting) Decimal(name string, def decimal.Decimal) decimal.Decimal {
	switch v := s.Params[name].(type) {
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	case json.Number:
		if d, err := decimal.NewFromString(v.String()); err == nil {
			return d
		}
	case string:
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return def
}

func (s RuleSetting) String() string {
	if len(s.Params) == 0 {
		return string(s.Severity)
	}
	return fmt.Sprintf("[%s, %v]", s.Severity, s.Params)
}

type contextKey struct{}

// WithContext returns a new context with the Config attached.
func (c *Config) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// ConfigFromContext retrieves the Config from context, or the defaults.
func ConfigFromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(contextKey{}).(*Config); ok {
		return cfg
	}
	return NewConfig()
}
