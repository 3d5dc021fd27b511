package parser

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"

	"github.com/robinvdvleuten/zeicheck/model"
)

// ShiftJIS is the encoding of HOT010 exports.
var ShiftJIS encoding.Encoding = japanese.ShiftJIS

const (
	ledgerColCode    = 0
	ledgerColName    = 1
	ledgerColOpening = 2
	ledgerColClosing = 3
	ledgerMinFields  = 4
	ledgerCodeLength = 9
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// DecodeLedgerExport decodes a HOT010 general-ledger CSV. Columns are
// 勘定科目コード, 科目名, 期首残高, 期末残高, 備考. Lines that do not look like
// account rows are skipped, and amounts that are not numeric read as 0.
// A nil enc reads the bytes as UTF-8.
func DecodeLedgerExport(raw []byte, enc encoding.Encoding) ([]LedgerRow, error) {
	if enc == nil {
		enc = encoding.Nop
	}

	content, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ledger export: %w", err)
	}

	lines := lineBreak.Split(string(content), -1)
	rows := make([]LedgerRow, 0, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if row, ok := parseLedgerLine(line); ok {
			row.Line = i + 1
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func parseLedgerLine(line string) (LedgerRow, bool) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rec, err := cr.Read()
	if err != nil || len(rec) < ledgerMinFields {
		return LedgerRow{}, false
	}

	code := strings.TrimSpace(rec[ledgerColCode])
	if utf8.RuneCountInString(code) != ledgerCodeLength {
		return LedgerRow{}, false
	}

	return LedgerRow{
		Code:    code,
		Name:    strings.TrimSpace(rec[ledgerColName]),
		Opening: model.ParseYen(rec[ledgerColOpening]),
		Closing: model.ParseYen(rec[ledgerColClosing]),
	}, true
}
