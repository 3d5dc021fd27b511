package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/zeicheck/loader"
	"github.com/robinvdvleuten/zeicheck/mapping"
	"github.com/robinvdvleuten/zeicheck/model"
	"github.com/robinvdvleuten/zeicheck/parser"
	"github.com/robinvdvleuten/zeicheck/telemetry"
)

// DoctorCmd provides doctor utilities for debugging xtx files.
type DoctorCmd struct {
	Forms FormsCmd `cmd:"" help:"Show the decoded forms and fields of an xtx file."`
	Dump  DumpCmd  `cmd:"" help:"Show the normalized return of an xtx file."`
}

// FormsCmd lists the decoded forms with Japanese field labels.
type FormsCmd struct {
	File FileOrStdin `help:"e-Tax xtx filename (use '-' for stdin)." arg:""`
}

// Run executes the forms command.
func (cmd *FormsCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, reportTelemetry := startTelemetry(ctx, globals, "doctor forms "+cmd.File.Filename)
	defer reportTelemetry()

	content, err := cmd.File.GetSourceContent()
	if err != nil {
		return fatal(ctx.Stderr, fmt.Errorf("failed to read file: %w", err))
	}

	timer := telemetry.StartTimer(runCtx, "decode xtx")
	doc, err := parser.DecodeXML(string(content))
	timer.End()
	if err != nil {
		err = parser.WithFilename(err, cmd.File.Filename)
		_, _ = fmt.Fprintln(ctx.Stderr, NewErrorRenderer(content).Render(err))
		return NewCommandError(ExitFatal)
	}

	styles := globals.Styles(ctx.Stdout)
	printInfof(ctx.Stdout, "%s: %s", pathStyle.Render(cmd.File.Filename), parser.DetectArchetype(doc).Label())

	var buf strings.Builder
	for _, form := range doc.Forms {
		tag := model.FormType(form.FormType)
		fmt.Fprintf(&buf, "\n%s  %s\n", styles.Keyword(form.FormType), styles.Dim(tag.Description()))

		codes := maps.Keys(form.Fields)
		slices.Sort(codes)

		codeWidth, labelWidth := 0, 0
		for _, code := range codes {
			codeWidth = max(codeWidth, runewidth.StringWidth(code))
			labelWidth = max(labelWidth, runewidth.StringWidth(mapping.FieldLabel(tag, code)))
		}

		for _, code := range codes {
			fmt.Fprintf(&buf, "  %s  %s  %s\n",
				styles.RuleID(runewidth.FillRight(code, codeWidth)),
				runewidth.FillRight(mapping.FieldLabel(tag, code), labelWidth),
				form.Fields[code],
			)
		}
	}

	_, err = fmt.Fprint(ctx.Stdout, buf.String())
	return err
}

// DumpCmd prints the normalized aggregate of a filing.
type DumpCmd struct {
	File FileOrStdin `help:"e-Tax xtx filename (use '-' for stdin)." arg:""`
	CSV  string      `help:"HOT010 ledger export, required for corporate returns." name:"csv" type:"existingfile"`
}

// Run executes the dump command.
func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, reportTelemetry := startTelemetry(ctx, globals, "doctor dump "+cmd.File.Filename)
	defer reportTelemetry()

	result, err := cmd.File.Load(runCtx, loader.New(loader.WithLedgerExport(cmd.CSV)))
	if err != nil {
		return fatal(ctx.Stderr, err)
	}

	printInfof(ctx.Stdout, "%s: %s", pathStyle.Render(cmd.File.Filename), result.Return.ReturnType().Label())
	repr.New(ctx.Stdout, repr.Indent("  ")).Println(result.Return)
	return nil
}
