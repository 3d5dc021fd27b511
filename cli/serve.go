package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/zeicheck/loader"
	"github.com/robinvdvleuten/zeicheck/rules"
	"github.com/robinvdvleuten/zeicheck/web"
)

type ServeCmd struct {
	File         string `help:"e-Tax xtx file to serve." arg:"" type:"existingfile"`
	Port         int    `help:"Port to listen on." default:"8080"`
	Config       string `help:"Config file (default: .zeicheckrc.* in the current directory)." short:"c" type:"existingfile"`
	CSV          string `help:"HOT010 ledger export, required for corporate returns." name:"csv" type:"existingfile"`
	PriorYear    string `help:"Prior-year xtx filename for continuity checks." type:"existingfile"`
	PriorYearCSV string `help:"HOT010 ledger export of the prior year." name:"prior-year-csv" type:"existingfile"`
	Watch        bool   `help:"Re-check when the filing changes." default:"true" negatable:""`
}

func (cmd *ServeCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, reportTelemetry := startTelemetry(ctx, globals, "serve "+filepath.Base(cmd.File))
	defer reportTelemetry()

	runCtx, stop := signal.NotifyContext(runCtx, os.Interrupt)
	defer stop()

	xtxFile, err := filepath.Abs(cmd.File)
	if err != nil {
		return fatal(ctx.Stderr, fmt.Errorf("failed to resolve absolute path: %w", err))
	}

	reg := rules.Default()
	check := CheckCmd{Config: cmd.Config, PriorYear: cmd.PriorYear}
	cfg, err := check.resolveConfig(reg)
	if err != nil {
		return fatal(ctx.Stderr, err)
	}

	version := Version
	if version == "" {
		version = "dev"
	}
	commitSHA := CommitSHA
	if commitSHA == "" {
		commitSHA = "local"
	}

	opts := []web.Option{
		web.WithRegistry(reg),
		web.WithConfig(cfg),
		web.WithLoader(loader.New(
			loader.WithLedgerExport(cmd.CSV),
			loader.WithPriorYear(cfg.PriorYearFile, cmd.PriorYearCSV),
		)),
		web.WithVersion(version, commitSHA),
	}
	if cmd.Watch {
		opts = append(opts, web.WithWatch())
	}
	server := web.New(cmd.Port, xtxFile, opts...)

	printInfof(ctx.Stdout, "Starting server on %s:%d", server.Host, cmd.Port)
	printInfof(ctx.Stdout, "Serving filing: %s", pathStyle.Render(xtxFile))

	if err := server.Start(runCtx); err != nil && runCtx.Err() == nil {
		return fatal(ctx.Stderr, err)
	}
	return nil
}
