package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/zeicheck/config"
	"github.com/robinvdvleuten/zeicheck/loader"
	"github.com/robinvdvleuten/zeicheck/parser"
	"github.com/robinvdvleuten/zeicheck/report"
	"github.com/robinvdvleuten/zeicheck/rules"
	"github.com/robinvdvleuten/zeicheck/telemetry"
)

type CheckCmd struct {
	File         FileOrStdin `help:"e-Tax xtx filename (use '-' for stdin)." arg:""`
	Format       string      `help:"Output format (stylish, json)." short:"f"`
	Config       string      `help:"Config file (default: .zeicheckrc.* in the current directory)." short:"c" type:"existingfile"`
	CSV          string      `help:"HOT010 ledger export, required for corporate returns." name:"csv" type:"existingfile"`
	PriorYear    string      `help:"Prior-year xtx filename for continuity checks." type:"existingfile"`
	PriorYearCSV string      `help:"HOT010 ledger export of the prior year." name:"prior-year-csv" type:"existingfile"`
	Severity     string      `help:"Minimum severity to show (error, warning, info)."`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, reportTelemetry := startTelemetry(ctx, globals, fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))
	defer reportTelemetry()

	reg := rules.Default()

	cfg, err := cmd.resolveConfig(reg)
	if err != nil {
		return fatal(ctx.Stderr, err)
	}

	minSeverity, err := parseMinSeverity(cmd.Severity)
	if err != nil {
		return fatal(ctx.Stderr, err)
	}

	formatter, err := report.New(cfg.Format, globals.Styles(ctx.Stdout))
	if err != nil {
		return fatal(ctx.Stderr, err)
	}

	runCtx = cfg.WithContext(runCtx)

	ldr := loader.New(
		loader.WithLedgerExport(cmd.CSV),
		loader.WithPriorYear(cfg.PriorYearFile, cmd.PriorYearCSV),
	)
	result, err := cmd.File.Load(runCtx, ldr)
	if err != nil {
		return cmd.loadFailed(ctx, cfg, err)
	}

	diags := rules.NewRunner(reg).Run(runCtx, &rules.Context{
		TaxReturn: result.Return,
		PriorYear: result.PriorYear,
		Config:    cfg,
	})
	shown := report.Filter(diags, minSeverity)

	timer := telemetry.StartTimer(runCtx, "report")
	err = formatter.Format(ctx.Stdout, cmd.File.Filename, shown)
	timer.End()
	if err != nil {
		return fatal(ctx.Stderr, fmt.Errorf("failed to write report: %w", err))
	}

	if len(shown) == 0 && cfg.Format != rules.FormatJSON {
		printSuccess(ctx.Stdout, "問題は見つかりませんでした")
	}

	if report.Summarize(shown).Failed(cfg.WarningsAsErrors) {
		return NewCommandError(ExitFailed)
	}
	return nil
}

// resolveConfig layers the flags over the file and environment config.
func (cmd *CheckCmd) resolveConfig(reg *rules.Registry) (*rules.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, _, err := config.Resolve(cmd.Config, dir, reg)
	if err != nil {
		return nil, err
	}

	if cmd.Format != "" {
		cfg.Format = cmd.Format
	}
	if cmd.PriorYear != "" {
		cfg.PriorYearFile = cmd.PriorYear
	}
	return cfg, nil
}

// loadFailed reports a filing that could not be decoded or normalized.
// Syntax errors are shown with the surrounding source lines.
func (cmd *CheckCmd) loadFailed(ctx *kong.Context, cfg *rules.Config, err error) error {
	if cfg.Format == rules.FormatJSON {
		enc := json.NewEncoder(ctx.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		_ = enc.Encode(struct {
			Error report.ErrorJSON `json:"error"`
		}{report.NewErrorJSON(err)})
		return NewCommandError(ExitFatal)
	}

	var syntaxErr *parser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return fatal(ctx.Stderr, err)
	}

	source, readErr := cmd.sourceFor(syntaxErr.Pos.Filename)
	if readErr != nil {
		return fatal(ctx.Stderr, err)
	}

	_, _ = fmt.Fprintln(ctx.Stderr, NewErrorRenderer(source).Render(err))
	printError(ctx.Stderr, "xtx の構文が不正です")
	return NewCommandError(ExitFatal)
}

// sourceFor returns the contents of the file a syntax error points at. It
// may be the prior-year filing rather than the checked one.
func (cmd *CheckCmd) sourceFor(filename string) ([]byte, error) {
	if filename == cmd.File.Filename {
		return cmd.File.GetSourceContent()
	}
	return os.ReadFile(filename)
}

func parseMinSeverity(s string) (rules.Severity, error) {
	if s == "" {
		return "", nil
	}
	sev, err := rules.ParseSeverity(s)
	if err != nil || sev == rules.Off {
		return "", fmt.Errorf("invalid severity %q, expected one of error, warning, info", s)
	}
	return sev, nil
}
