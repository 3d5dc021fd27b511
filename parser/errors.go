package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// SyntaxError reports markup that is not well-formed.
type SyntaxError struct {
	Pos        Position
	Message    string
	Underlying error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// GetPosition returns where the error occurred.
func (e *SyntaxError) GetPosition() Position {
	return e.Pos
}

func (e *SyntaxError) Unwrap() error {
	return e.Underlying
}

// StructuralError reports a well-formed document that is not an xtx filing.
type StructuralError struct {
	Filename string
	Message  string
}

func (e *StructuralError) Error() string {
	if e.Filename == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Filename, e.Message)
}

// WithFilename fills in the file name on decode errors that carry a
// location. Other errors are returned unchanged.
func WithFilename(err error, filename string) error {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		syntaxErr.Pos.Filename = filename
		return err
	}
	var structErr *StructuralError
	if errors.As(err, &structErr) {
		structErr.Filename = filename
	}
	return err
}

// newSyntaxError extracts the position from an encoding/xml error. The
// decoder offset is used when the error carries no line of its own.
func newSyntaxError(dec *xml.Decoder, err error) *SyntaxError {
	line, col := dec.InputPos()

	var xmlErr *xml.SyntaxError
	if errors.As(err, &xmlErr) {
		if xmlErr.Line != line {
			col = 0
		}
		return &SyntaxError{
			Pos:        Position{Line: xmlErr.Line, Column: col},
			Message:    xmlErr.Msg,
			Underlying: err,
		}
	}

	return &SyntaxError{
		Pos:        Position{Line: line, Column: col},
		Message:    err.Error(),
		Underlying: err,
	}
}
