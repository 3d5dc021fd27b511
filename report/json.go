package report

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/robinvdvleuten/zeicheck/config"
	"github.com/robinvdvleuten/zeicheck/normalizer"
	"github.com/robinvdvleuten/zeicheck/parser"
	"github.com/robinvdvleuten/zeicheck/rules"
)

// JSONFormatter writes a Report as JSON indented by two spaces.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format always writes a document, even for zero diagnostics.
func (f *JSONFormatter) Format(w io.Writer, filePath string, diags []rules.Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(NewReport(filePath, diags))
}

// ErrorJSON represents a fatal error in JSON format.
type ErrorJSON struct {
	Type     string        `json:"type"`
	Message  string        `json:"message"`
	Position *PositionJSON `json:"position,omitempty"`
}

// PositionJSON represents a file position in JSON format.
type PositionJSON struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// NewErrorJSON classifies err by the kind of failure it wraps.
func NewErrorJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    errorType(err),
		Message: err.Error(),
	}

	var positioned interface{ GetPosition() parser.Position }
	if errors.As(err, &positioned) {
		pos := positioned.GetPosition()
		errJSON.Position = &PositionJSON{
			Filename: pos.Filename,
			Line:     pos.Line,
			Column:   pos.Column,
		}
	}

	return errJSON
}

func errorType(err error) string {
	var (
		syntaxErr  *parser.SyntaxError
		structErr  *parser.StructuralError
		missingErr *normalizer.MissingInputError
		configErr  *config.ConfigError
	)
	switch {
	case errors.As(err, &syntaxErr):
		return "syntax"
	case errors.As(err, &structErr):
		return "structure"
	case errors.As(err, &missingErr):
		return "missing-input"
	case errors.As(err, &configErr):
		return "config"
	}
	return "error"
}
