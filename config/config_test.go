package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/zeicheck/rules"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFind(t *testing.T) {
	tmpDir := t.TempDir()

	_, ok := Find(tmpDir)
	assert.False(t, ok)

	yml := writeConfig(t, tmpDir, FileYML, "format: json\n")
	path, ok := Find(tmpDir)
	assert.True(t, ok)
	assert.Equal(t, yml, path)

	jsonPath := writeConfig(t, tmpDir, FileJSON, "{}")
	path, ok = Find(tmpDir)
	assert.True(t, ok)
	assert.Equal(t, jsonPath, path)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		ratio   any
	}{
		{
			name: "json",
			file: FileJSON,
			content: `{
  "rules": {
    "balance-sheet/equation": "warning",
    "home-office/reasonable-ratio": ["error", {"maxRatio": 0.8}]
  },
  "priorYearFile": "2023.xtx",
  "format": "json",
  "warningsAsErrors": true
}`,
			ratio: json.Number("0.8"),
		},
		{
			name: "yaml",
			file: FileYAML,
			content: `rules:
  balance-sheet/equation: warning
  home-office/reasonable-ratio: [error, {maxRatio: 0.8}]
priorYearFile: 2023.xtx
format: json
warningsAsErrors: true
`,
			ratio: 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.file, tt.content)

			f, err := Load(path, rules.Default())
			assert.NoError(t, err)
			assert.Equal(t, "warning", f.Rules["balance-sheet/equation"].Severity)
			assert.Equal(t, 0, len(f.Rules["balance-sheet/equation"].Params))
			assert.Equal(t, "error", f.Rules["home-office/reasonable-ratio"].Severity)
			assert.Equal(t, tt.ratio, f.Rules["home-office/reasonable-ratio"].Params["maxRatio"])

			cfg := rules.NewConfig()
			f.Apply(cfg)
			assert.Equal(t, "2023.xtx", cfg.PriorYearFile)
			assert.Equal(t, rules.FormatJSON, cfg.Format)
			assert.True(t, cfg.WarningsAsErrors)
			assert.Equal(t, rules.Warning, cfg.Rules["balance-sheet/equation"].Severity)

			ratio := cfg.Rules["home-office/reasonable-ratio"].Decimal("maxRatio", decimal.Zero)
			assert.True(t, ratio.Equal(decimal.RequireFromString("0.8")))
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{
			name:    "invalid severity",
			file:    FileJSON,
			content: `{"rules": {"balance-sheet/equation": "fatal"}}`,
			want:    `設定が不正です: rules.balance-sheet/equation: "fatal" は error, warning, info, off のいずれかを指定してください`,
		},
		{
			name:    "invalid format",
			file:    FileYAML,
			content: "format: xml\n",
			want:    `設定が不正です: format: "xml" は stylish, json のいずれかを指定してください`,
		},
		{
			name:    "unknown rule",
			file:    FileJSON,
			content: `{"rules": {"no/such-rule": "off"}}`,
			want:    "設定が不正です: rules.no/such-rule: 不明なルールです",
		},
		{
			name:    "several issues",
			file:    FileJSON,
			content: `{"format": "xml", "rules": {"no/such-rule": "off"}}`,
			want:    `設定が不正です: format: "xml" は stylish, json のいずれかを指定してください; rules.no/such-rule: 不明なルールです`,
		},
		{
			name:    "malformed json",
			file:    FileJSON,
			content: `{"rules": `,
			want:    "failed to parse JSON",
		},
		{
			name:    "unknown key",
			file:    FileJSON,
			content: `{"format": "json", "colour": true}`,
			want:    "failed to parse JSON",
		},
		{
			name:    "rule entry with too many elements",
			file:    FileYAML,
			content: "rules:\n  balance-sheet/equation: [error, {}, extra]\n",
			want:    "rule entry must have one or two elements, got 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.file, tt.content)

			_, err := Load(path, rules.Default())
			assert.Error(t, err)

			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, path, cfgErr.Path)
			assert.Contains(t, err.Error(), path+": ")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileJSON), rules.Default())

	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestResolvePrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, FileJSON, `{"format": "json", "priorYearFile": "file.xtx", "rules": {"continuity/year-over-year-change": "off"}}`)

	cfg, path, err := Resolve("", tmpDir, rules.Default())
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, FileJSON), path)
	assert.Equal(t, rules.FormatJSON, cfg.Format)
	assert.Equal(t, "file.xtx", cfg.PriorYearFile)
	assert.False(t, cfg.WarningsAsErrors)
	assert.Equal(t, rules.Off, cfg.Rules["continuity/year-over-year-change"].Severity)

	t.Setenv("ZEICHECK_FORMAT", "stylish")
	t.Setenv("ZEICHECK_WARNINGS_AS_ERRORS", "true")
	t.Setenv("ZEICHECK_PRIOR_YEAR_FILE", "env.xtx")

	cfg, _, err = Resolve("", tmpDir, rules.Default())
	assert.NoError(t, err)
	assert.Equal(t, rules.FormatStylish, cfg.Format)
	assert.Equal(t, "env.xtx", cfg.PriorYearFile)
	assert.True(t, cfg.WarningsAsErrors)
}

func TestResolveDefaults(t *testing.T) {
	cfg, path, err := Resolve("", t.TempDir(), rules.Default())
	assert.NoError(t, err)
	assert.Equal(t, "", path)
	assert.Equal(t, rules.NewConfig(), cfg)
}

func TestResolveInvalidEnv(t *testing.T) {
	t.Setenv("ZEICHECK_FORMAT", "xml")

	_, _, err := Resolve("", t.TempDir(), rules.Default())
	assert.Error(t, err)
	assert.Equal(t, `設定が不正です: ZEICHECK_FORMAT: "xml" は stylish, json のいずれかを指定してください`, err.Error())

	t.Setenv("ZEICHECK_FORMAT", "")
	t.Setenv("ZEICHECK_WARNINGS_AS_ERRORS", "maybe")
	_, _, err = Resolve("", t.TempDir(), rules.Default())
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestStarter(t *testing.T) {
	reg := rules.Default()
	f := Starter(reg)
	assert.Equal(t, reg.Len(), len(f.Rules))
	assert.Equal(t, "error", f.Rules["balance-sheet/equation"].Severity)
	assert.Equal(t, "info", f.Rules["corporate/small-corp-tax-rate"].Severity)

	for _, asYAML := range []bool{false, true} {
		data, err := f.Marshal(asYAML)
		assert.NoError(t, err)

		parsed, err := Parse(data, asYAML)
		assert.NoError(t, err)
		assert.NoError(t, parsed.Validate(reg))
		assert.Equal(t, f.Format, parsed.Format)
		assert.Equal(t, len(f.Rules), len(parsed.Rules))
	}
}

func TestRuleEntryMarshal(t *testing.T) {
	data, err := json.Marshal(map[string]RuleEntry{
		"a": {Severity: "warning"},
		"b": {Severity: "error", Params: map[string]any{"maxRatio": 0.8}},
	})
	assert.NoError(t, err)
	assert.Equal(t, `{"a":"warning","b":["error",{"maxRatio":0.8}]}`, string(data))
}
