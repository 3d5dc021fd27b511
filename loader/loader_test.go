package loader

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"golang.org/x/text/encoding/japanese"

	"github.com/robinvdvleuten/zeicheck/model"
	"github.com/robinvdvleuten/zeicheck/normalizer"
	"github.com/robinvdvleuten/zeicheck/output"
	"github.com/robinvdvleuten/zeicheck/parser"
	"github.com/robinvdvleuten/zeicheck/rules"
	"github.com/robinvdvleuten/zeicheck/telemetry"
)

const blueReturn = `<?xml version="1.0" encoding="UTF-8"?>
<DataRoot>
  <FormData id="ABA">
    <Field id="ITA_ABA0010">10000000</Field>
  </FormData>
  <FormData id="VCA">
    <Field id="ITA_VCA0010">10000000</Field>
    <Field id="ITA_VCA1010">300000</Field>
    <Field id="ITA_VCA1210">400000</Field>
  </FormData>
</DataRoot>
`

const corporateReturn = `<?xml version="1.0" encoding="UTF-8"?>
<DataRoot>
  <FormData id="HOA110">
    <Field id="AAB00010">5300000</Field>
  </FormData>
</DataRoot>
`

const ledgerExport = "011000001,現金,200000,500000,\r\n013000001,資本金,3000000,3000000,\r\n"

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func shiftJIS(t *testing.T, s string) []byte {
	t.Helper()
	b, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
	assert.NoError(t, err)
	return b
}

func TestLoadSoleProprietor(t *testing.T) {
	tmpDir := t.TempDir()
	mainFile := writeFile(t, tmpDir, "return.xtx", []byte(blueReturn))

	absMainFile, err := filepath.Abs(mainFile)
	assert.NoError(t, err)

	result, err := New().Load(context.Background(), mainFile)
	assert.NoError(t, err)

	r, ok := result.Return.(*model.SoleProprietorReturn)
	assert.True(t, ok)
	assert.Equal(t, model.NewAccountBalance(300_000, 400_000), r.BalanceSheet.Cash)
	assert.Equal(t, mainFile, r.Metadata.FilePath)
	assert.Equal(t, FilingMethod, r.Metadata.FilingMethod)
	assert.Equal(t, []string{absMainFile}, result.Files)
	assert.Equal(t, 2, len(result.Document.Forms))
	assert.Zero(t, result.PriorYear)
}

func TestLoadCorporateWithLedgerExport(t *testing.T) {
	tmpDir := t.TempDir()
	mainFile := writeFile(t, tmpDir, "corp.xtx", []byte(corporateReturn))
	csvFile := writeFile(t, tmpDir, "corp.csv", shiftJIS(t, ledgerExport))

	result, err := New(WithLedgerExport(csvFile)).Load(context.Background(), mainFile)
	assert.NoError(t, err)

	r, ok := result.Return.(*model.CorporateReturn)
	assert.True(t, ok)
	assert.Equal(t, model.NewAccountBalance(200_000, 500_000), r.BalanceSheet.Cash)
	assert.Equal(t, model.Yen(3_000_000), r.CorporateInfo.CapitalAmount)
	assert.Equal(t, model.Yen(5_300_000), r.CorporateTaxForm.TaxableIncome)
	assert.Equal(t, 2, len(result.Files))
}

func TestLoadCorporateShortFiscalYear(t *testing.T) {
	const shortYear = `<?xml version="1.0" encoding="UTF-8"?>
<DataRoot>
  <FormData id="HOA110">
    <Field id="AAB00010">0</Field>
  </FormData>
  <FormData id="HOK">
    <Field id="ITA_HOK9010">6</Field>
    <Field id="ITA_HOK9020">2</Field>
  </FormData>
</DataRoot>
`
	tmpDir := t.TempDir()
	mainFile := writeFile(t, tmpDir, "corp.xtx", []byte(shortYear))
	csvFile := writeFile(t, tmpDir, "corp.csv", shiftJIS(t, "013000001,資本金,3000000,3000000,\r\n015000015,交際費,0,5000000,\r\n"))

	result, err := New(WithLedgerExport(csvFile)).Load(context.Background(), mainFile)
	assert.NoError(t, err)

	r, ok := result.Return.(*model.CorporateReturn)
	assert.True(t, ok)
	assert.Equal(t, 6, r.CorporateInfo.FiscalYearMonths)
	assert.Equal(t, 2, r.CorporateInfo.OfficerCount)
	assert.Equal(t, model.Yen(5_000_000), r.IncomeStatement.Expenses.Entertainment)

	diags := rules.NewRunner(rules.NewRegistry(rules.EntertainmentLimit)).Run(context.Background(), &rules.Context{
		TaxReturn: result.Return,
		Config:    rules.NewConfig(),
	})
	assert.Equal(t, 1, len(diags))
	assert.Equal(t, "交際費(5,000,000)が損金算入限度額(4,000,000)を超えています", diags[0].Message)
}

func TestLoadCorporateWithoutLedgerExport(t *testing.T) {
	mainFile := writeFile(t, t.TempDir(), "corp.xtx", []byte(corporateReturn))

	_, err := New().Load(context.Background(), mainFile)
	assert.Error(t, err)

	var missing *normalizer.MissingInputError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, mainFile, missing.Filename)
}

func TestLoadWithPriorYear(t *testing.T) {
	tmpDir := t.TempDir()
	mainFile := writeFile(t, tmpDir, "2024.xtx", []byte(blueReturn))
	priorFile := writeFile(t, tmpDir, "2023.xtx", []byte(blueReturn))

	result, err := New(WithPriorYear(priorFile, "")).Load(context.Background(), mainFile)
	assert.NoError(t, err)

	assert.NotZero(t, result.PriorYear)
	assert.Equal(t, model.SoleProprietor, result.PriorYear.ReturnType())
	assert.Equal(t, priorFile, result.PriorYear.Meta().FilePath)
	assert.Equal(t, 2, len(result.Files))
}

func TestLoadPriorYearErrors(t *testing.T) {
	tmpDir := t.TempDir()
	mainFile := writeFile(t, tmpDir, "2024.xtx", []byte(blueReturn))

	_, err := New(WithPriorYear(filepath.Join(tmpDir, "missing.xtx"), "")).Load(context.Background(), mainFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "prior year: failed to read")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadNonExistentFile(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "xtx"},
		{name: "ledger export", opts: []Option{WithLedgerExport("/nonexistent/ledger.csv")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mainFile := "/nonexistent/return.xtx"
			if tt.opts != nil {
				mainFile = writeFile(t, t.TempDir(), "return.xtx", []byte(blueReturn))
			}

			_, err := New(tt.opts...).Load(context.Background(), mainFile)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "failed to read")
			assert.True(t, errors.Is(err, os.ErrNotExist))
		})
	}
}

func TestLoadBytesSyntaxError(t *testing.T) {
	_, err := New().LoadBytes(context.Background(), "broken.xtx", []byte("<DataRoot>\n<FormData>\n"), nil)
	assert.Error(t, err)

	var syntaxErr *parser.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "broken.xtx", syntaxErr.Pos.Filename)
}

func TestLoadBytesUTF8LedgerExport(t *testing.T) {
	ldr := New(WithEncoding(nil))

	result, err := ldr.LoadBytes(context.Background(), "corp.xtx", []byte(corporateReturn), []byte(ledgerExport))
	assert.NoError(t, err)

	r := result.Return.(*model.CorporateReturn)
	assert.Equal(t, model.NewAccountBalance(200_000, 500_000), r.BalanceSheet.Cash)
	assert.Equal(t, 0, len(result.Files))
}

func TestLoadBytesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().LoadBytes(ctx, "return.xtx", []byte(blueReturn), nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoadRecordsStages(t *testing.T) {
	tmpDir := t.TempDir()
	mainFile := writeFile(t, tmpDir, "corp.xtx", []byte(corporateReturn))
	csvFile := writeFile(t, tmpDir, "corp.csv", shiftJIS(t, ledgerExport))
	priorFile := writeFile(t, tmpDir, "prior.xtx", []byte(corporateReturn))

	collector := telemetry.NewTimingCollector()
	ctx := telemetry.WithCollector(context.Background(), collector)
	root := collector.Start("check corp.xtx")
	ctx = telemetry.WithRootTimer(ctx, root)

	_, err := New(WithLedgerExport(csvFile), WithPriorYear(priorFile, csvFile)).Load(ctx, mainFile)
	assert.NoError(t, err)
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, output.NewPlainStyles(&buf))
	report := buf.String()

	for _, stage := range []string{"decode xtx", "decode ledger export", "normalize", "prior-year load"} {
		assert.Contains(t, report, stage)
	}
}

func TestLoadContents(t *testing.T) {
	tmpDir := t.TempDir()
	csv := writeFile(t, tmpDir, "corp.csv", shiftJIS(t, ledgerExport))

	result, err := New(WithLedgerExport(csv)).LoadContents(context.Background(), "<stdin>", []byte(corporateReturn))
	assert.NoError(t, err)
	assert.Equal(t, model.Corporate, result.Return.ReturnType())
	assert.Equal(t, "<stdin>", result.Return.Meta().FilePath)
	assert.Equal(t, []string{csv}, result.Files)
}
