package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/zeicheck/output"
	"github.com/robinvdvleuten/zeicheck/rules"
)

// severityWidth is the display width of the longest severity, "warning".
const severityWidth = 7

// StylishFormatter lists diagnostics under the file path with aligned
// rule-ID and severity columns, followed by a summary line.
type StylishFormatter struct {
	styles *output.Styles
}

// NewStylishFormatter creates a stylish formatter. A nil styles writes
// plain text.
func NewStylishFormatter(styles *output.Styles) *StylishFormatter {
	return &StylishFormatter{styles: styles}
}

// Format writes nothing when there are no diagnostics.
func (f *StylishFormatter) Format(w io.Writer, filePath string, diags []rules.Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}

	styles := f.styles
	if styles == nil {
		styles = output.NewPlainStyles(w)
	}

	idWidth := 0
	for _, d := range diags {
		idWidth = max(idWidth, runewidth.StringWidth(d.RuleID))
	}
	indent := strings.Repeat(" ", 2+idWidth+2+severityWidth+2)

	var buf strings.Builder
	buf.WriteString("\n")
	buf.WriteString(styles.FilePath(filePath))
	buf.WriteString("\n\n")

	for _, d := range diags {
		sev := string(d.Severity)
		fmt.Fprintf(&buf, "  %s  %s  %s\n",
			styles.RuleID(runewidth.FillRight(d.RuleID, idWidth)),
			styles.Severity(sev, sev)+strings.Repeat(" ", max(0, severityWidth-runewidth.StringWidth(sev))),
			d.Message,
		)
		if d.Details != "" {
			buf.WriteString(indent)
			buf.WriteString(styles.Dim(d.Details))
			buf.WriteString("\n")
		}
		if d.Expected != "" {
			buf.WriteString(indent)
			buf.WriteString(styles.Dim("期待値: " + d.Expected))
			buf.WriteString("\n")
		}
	}

	s := Summarize(diags)
	headline := fmt.Sprintf("✖ %d 件の問題", s.Total)
	if s.Errors > 0 {
		headline = styles.Error(headline)
	} else {
		headline = styles.Keyword(headline)
	}
	fmt.Fprintf(&buf, "\n%s (%d errors, %d warnings, %d info)\n", headline, s.Errors, s.Warnings, s.Info)

	_, err := io.WriteString(w, buf.String())
	return err
}
