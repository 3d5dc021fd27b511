package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)
	assert.NotZero(t, styles)
	assert.NotZero(t, styles.Output())
}

func TestStylesContainText(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	tests := []struct {
		name string
		fn   func(string) string
		text string
	}{
		{"Success", styles.Success, "問題は見つかりませんでした"},
		{"Error", styles.Error, "error"},
		{"Warning", styles.Warning, "warning"},
		{"Info", styles.Info, "info"},
		{"FilePath", styles.FilePath, "/path/to/return.xtx"},
		{"RuleID", styles.RuleID, "balance-sheet/equation"},
		{"Amount", styles.Amount, "1,234,567"},
		{"Keyword", styles.Keyword, "check"},
		{"Dim", styles.Dim, "期待値"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.fn(tt.text), tt.text)
		})
	}
}

func TestStylesTiming(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	assert.Contains(t, styles.Timing("5ms", false), "5ms")
	assert.Contains(t, styles.Timing("500ms", true), "500ms")
}

func TestPlainStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewPlainStyles(&buf)

	tests := []struct {
		severity string
		text     string
	}{
		{"error", "error"},
		{"warning", "warning"},
		{"info", "info"},
		{"off", "off"},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			got := styles.Severity(tt.severity, tt.text)
			assert.Equal(t, tt.text, got)
			assert.False(t, strings.Contains(got, "\x1b["))
		})
	}

	assert.Equal(t, "return.xtx", styles.FilePath("return.xtx"))
}
