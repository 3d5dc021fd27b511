package rules

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/zeicheck/telemetry"
)

// Runner applies the rules of a registry to a return.
type Runner struct {
	registry *Registry
}

// NewRunner creates a runner over registry.
func NewRunner(registry *Registry) *Runner {
	return &Runner{registry: registry}
}

// Run checks rc.TaxReturn against every applicable, enabled rule. The
// result is ordered by severity rank, keeping registration order within a
// rank. A nil rc.Config falls back to the context's config; rc itself is
// never modified.
func (r *Runner) Run(ctx context.Context, rc *Context) []Diagnostic {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("run rules (%d rules)", r.registry.Len()))
	defer timer.End()

	if rc.Config == nil {
		resolved := *rc
		resolved.Config = ConfigFromContext(ctx)
		rc = &resolved
	}
	returnType := rc.TaxReturn.ReturnType()

	diagnostics := []Diagnostic{}
	for _, rule := range r.registry.rules {
		severity := rc.Config.EffectiveSeverity(rule)
		if severity == Off {
			slog.Debug("rule disabled", "rule", rule.ID)
			continue
		}
		if !rule.Applies(returnType) {
			continue
		}

		for _, d := range rule.Check(rc) {
			d.RuleID = rule.ID
			d.Severity = severity
			diagnostics = append(diagnostics, d)
		}
	}

	slices.SortStableFunc(diagnostics, func(a, b Diagnostic) int {
		return a.Severity.Rank() - b.Severity.Rank()
	})
	return diagnostics
}
