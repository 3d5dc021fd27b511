// Package loader runs the decode and normalize stages for a filing and,
// optionally, for the prior-year filing it is compared against.
//
// A filing is an xtx document plus, for corporate returns, the HOT010
// ledger export. Both periods go through the same stages independently:
//
//	ldr := loader.New(
//		loader.WithLedgerExport("ledger.csv"),
//		loader.WithPriorYear("2023.xtx", "2023.csv"),
//	)
//	result, err := ldr.Load(ctx, "2024.xtx")
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding"

	"github.com/robinvdvleuten/zeicheck/model"
	"github.com/robinvdvleuten/zeicheck/normalizer"
	"github.com/robinvdvleuten/zeicheck/parser"
	"github.com/robinvdvleuten/zeicheck/telemetry"
)

// FilingMethod is recorded on every return read from an xtx document.
const FilingMethod = "e-Tax"

// Loader reads and normalizes filings.
//
// Configure the loader using functional options passed to New:
//
//	loader := New(WithLedgerExport("ledger.csv"))
type Loader struct {
	// LedgerExport is the HOT010 CSV of the current period. Empty means
	// none was supplied.
	LedgerExport string

	// PriorYear is the xtx document of the previous period, and
	// PriorYearLedgerExport its HOT010 CSV.
	PriorYear             string
	PriorYearLedgerExport string

	// Encoding of the ledger exports. Defaults to Shift_JIS.
	Encoding encoding.Encoding
}

// Option configures how filings are loaded.
type Option func(*Loader)

// WithLedgerExport sets the HOT010 CSV read alongside the current filing.
func WithLedgerExport(path string) Option {
	return func(l *Loader) {
		l.LedgerExport = path
	}
}

// WithPriorYear sets the prior-year filing. ledgerExport may be empty.
func WithPriorYear(path, ledgerExport string) Option {
	return func(l *Loader) {
		l.PriorYear = path
		l.PriorYearLedgerExport = ledgerExport
	}
}

// WithEncoding overrides the character encoding of the ledger exports.
func WithEncoding(enc encoding.Encoding) Option {
	return func(l *Loader) {
		l.Encoding = enc
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		Encoding: parser.ShiftJIS,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Result is a loaded filing.
type Result struct {
	// Return is the normalized current filing.
	Return model.TaxReturn

	// PriorYear is the normalized prior-year filing, or nil.
	PriorYear model.TaxReturn

	// Document is the decoded xtx of the current filing.
	Document *parser.DecodedDocument

	// Files lists the absolute paths of every file read, current filing
	// first.
	Files []string
}

// Load reads the filing at filename together with the configured ledger
// export and prior year.
func (l *Loader) Load(ctx context.Context, filename string) (*Result, error) {
	xtx, err := readFile(filename)
	if err != nil {
		return nil, err
	}
	return l.LoadContents(ctx, filename, xtx)
}

// LoadContents is Load for an xtx that was already read, such as one piped
// through stdin. The ledger export and prior year are still read from disk.
func (l *Loader) LoadContents(ctx context.Context, filename string, xtx []byte) (*Result, error) {
	var (
		csv []byte
		err error
	)
	if l.LedgerExport != "" {
		if csv, err = readFile(l.LedgerExport); err != nil {
			return nil, err
		}
	}

	result, err := l.LoadBytes(ctx, filename, xtx, csv)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(filename); err == nil {
		result.Files = append(result.Files, absPath(filename))
	}
	if l.LedgerExport != "" {
		result.Files = append(result.Files, absPath(l.LedgerExport))
	}

	if l.PriorYear != "" {
		prior, files, err := l.loadPriorYear(ctx)
		if err != nil {
			return nil, err
		}
		result.PriorYear = prior
		result.Files = append(result.Files, files...)
	}

	return result, nil
}

// LoadBytes decodes and normalizes an in-memory filing. csv holds the
// ledger export; nil means none was supplied. filename is only used for
// error messages and metadata. The prior year is not loaded.
func (l *Loader) LoadBytes(ctx context.Context, filename string, xtx, csv []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timer := telemetry.StartTimer(ctx, "decode xtx")
	doc, err := parser.DecodeXML(string(xtx))
	timer.End()
	if err != nil {
		return nil, parser.WithFilename(err, filename)
	}
	slog.Debug("decoded xtx", "file", filename, "forms", len(doc.Forms))

	var rows []parser.LedgerRow
	if csv != nil {
		timer := telemetry.StartTimer(ctx, "decode ledger export")
		rows, err = parser.DecodeLedgerExport(csv, l.Encoding)
		timer.End()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		slog.Debug("decoded ledger export", "file", filename, "rows", len(rows))
	}

	timer = telemetry.StartTimer(ctx, "normalize")
	r, err := normalizer.Normalize(doc, rows,
		normalizer.WithFilePath(filename),
		normalizer.WithFilingMethod(FilingMethod),
	)
	timer.End()
	if err != nil {
		return nil, err
	}
	slog.Debug("normalized return", "file", filename, "type", r.ReturnType())

	return &Result{Return: r, Document: doc}, nil
}

func (l *Loader) loadPriorYear(ctx context.Context) (model.TaxReturn, []string, error) {
	timer := telemetry.StartTimer(ctx, "prior-year load")
	defer timer.End()

	prior := &Loader{LedgerExport: l.PriorYearLedgerExport, Encoding: l.Encoding}
	result, err := prior.Load(ctx, l.PriorYear)
	if err != nil {
		return nil, nil, fmt.Errorf("prior year: %w", err)
	}
	slog.Info("loaded prior year", "file", l.PriorYear, "type", result.Return.ReturnType())
	return result.Return, result.Files, nil
}

func readFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return data, nil
}

func absPath(filename string) string {
	if abs, err := filepath.Abs(filename); err == nil {
		return abs
	}
	return filename
}
