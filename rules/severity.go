package rules

import "fmt"

// Severity is how seriously a diagnostic is reported. Off disables a rule.
type Severity string

const (
	Error   Severity = "error"
	Warning Severity = "warning"
	Info    Severity = "info"
	Off     Severity = "off"
)

// Severities lists the valid severities, most severe first.
var Severities = []Severity{Error, Warning, Info, Off}

// ParseSeverity parses a severity name.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.Valid() {
		return "", fmt.Errorf("invalid severity %q, expected one of error, warning, info, off", s)
	}
	return sev, nil
}

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case Error, Warning, Info, Off:
		return true
	}
	return false
}

// Rank orders severities for sorting: error 0, warning 1, info 2.
func (s Severity) Rank() int {
	switch s {
	case Error:
		return 0
	case Warning:
		return 1
	case Info:
		return 2
	}
	return 3
}

// AtLeast reports whether s is as severe as min.
func (s Severity) AtLeast(min Severity) bool {
	return s.Rank() <= min.Rank()
}

func (s Severity) String() string {
	return string(s)
}
