// Package report renders diagnostics for people and for programs.
//
// Two formats are provided:
//   - StylishFormatter: a grouped, column-aligned listing for terminals
//   - JSONFormatter: the report as indented JSON for scripts and editors
//
// Decode failures are not diagnostics; ErrorJSON gives them a structured
// form for API consumers.
package report

import (
	"fmt"
	"io"

	"github.com/robinvdvleuten/zeicheck/output"
	"github.com/robinvdvleuten/zeicheck/rules"
)

// Formatter writes the diagnostics of one file.
type Formatter interface {
	Format(w io.Writer, filePath string, diags []rules.Diagnostic) error
}

// New returns the formatter for a config format name.
func New(format string, styles *output.Styles) (Formatter, error) {
	switch format {
	case rules.FormatStylish, "":
		return NewStylishFormatter(styles), nil
	case rules.FormatJSON:
		return NewJSONFormatter(), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// Summary counts diagnostics by severity.
type Summary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Summarize counts diags.
func Summarize(diags []rules.Diagnostic) Summary {
	s := Summary{Total: len(diags)}
	for _, d := range diags {
		switch d.Severity {
		case rules.Error:
			s.Errors++
		case rules.Warning:
			s.Warnings++
		case rules.Info:
			s.Info++
		}
	}
	return s
}

// Failed reports whether the summary should fail a run.
func (s Summary) Failed(warningsAsErrors bool) bool {
	return s.Errors > 0 || (warningsAsErrors && s.Warnings > 0)
}

// Filter keeps the diagnostics at or above min. An empty min keeps all.
func Filter(diags []rules.Diagnostic, min rules.Severity) []rules.Diagnostic {
	if min == "" {
		return diags
	}
	out := make([]rules.Diagnostic, 0, len(diags))
	for _, d := range diags {
		if d.Severity.AtLeast(min) {
			out = append(out, d)
		}
	}
	return out
}

// Report is the JSON document of a run.
type Report struct {
	FilePath    string             `json:"filePath"`
	Diagnostics []rules.Diagnostic `json:"diagnostics"`
	Summary     Summary            `json:"summary"`
}

// NewReport assembles a report. A nil diags slice encodes as [].
func NewReport(filePath string, diags []rules.Diagnostic) Report {
	if diags == nil {
		diags = []rules.Diagnostic{}
	}
	return Report{
		FilePath:    filePath,
		Diagnostics: diags,
		Summary:     Summarize(diags),
	}
}
