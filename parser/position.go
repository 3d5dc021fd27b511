package parser

import "fmt"

// Position represents a location in a source document.
type Position struct {
	Filename string
	Line     int // 1-indexed
	Column   int // 1-indexed, 0 when unknown
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	switch {
	case p.Filename != "" && p.Column > 0:
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	case p.Filename != "":
		return fmt.Sprintf("%s:%d", p.Filename, p.Line)
	case p.Column > 0:
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("line %d", p.Line)
}
