// Package rules holds the validation rules and the runner that applies
// them to a normalized tax return.
//
// Rules are plain values collected in an explicit Registry. Each rule is
// pure: it reads the return (and optionally the prior year) and reports
// diagnostics, never an error. A rule whose inputs are absent reports
// nothing.
package rules

import (
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/zeicheck/model"
)

// Rule is a single consistency check.
type Rule struct {
	ID          string
	Name        string
	Description string
	Severity    Severity

	// AppliesTo restricts the rule to these archetypes. Empty means all.
	AppliesTo []model.ReturnType

	Check func(*Context) []Diagnostic
}

// Applies reports whether the rule runs for the given archetype.
func (r Rule) Applies(t model.ReturnType) bool {
	return len(r.AppliesTo) == 0 || slices.Contains(r.AppliesTo, t)
}

// Diagnostic is a single finding.
type Diagnostic struct {
	RuleID   string   `json:"ruleId"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Details  string   `json:"details,omitempty"`
	Expected string   `json:"expected,omitempty"`
}

// Context is what a rule sees.
type Context struct {
	TaxReturn model.TaxReturn

	// PriorYear is the previous period's return, nil when none was given.
	PriorYear model.TaxReturn

	Config *Config
}

// Setting returns the configured setting for a rule.
func (c *Context) Setting(ruleID string) RuleSetting {
	if c.Config == nil {
		return RuleSetting{}
	}
	return c.Config.Rules[ruleID]
}
