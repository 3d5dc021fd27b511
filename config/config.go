// Package config reads .zeicheckrc files and resolves them, together with
// ZEICHECK_* environment variables, into a rules.Config.
//
// Precedence, lowest first: built-in defaults, the config file, the
// environment. Command-line flags are applied on top by the caller.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/robinvdvleuten/zeicheck/rules"
)

// Config file names, in lookup order.
const (
	FileJSON = ".zeicheckrc.json"
	FileYAML = ".zeicheckrc.yaml"
	FileYML  = ".zeicheckrc.yml"
)

// Filenames lists the file names Find looks for.
var Filenames = []string{FileJSON, FileYAML, FileYML}

// EnvPrefix is the prefix of the environment overrides.
const EnvPrefix = "ZEICHECK"

// File is the on-disk shape of a config file.
type File struct {
	Rules            map[string]RuleEntry `json:"rules,omitempty" yaml:"rules,omitempty" validate:"dive"`
	PriorYearFile    string               `json:"priorYearFile,omitempty" yaml:"priorYearFile,omitempty"`
	Format           string               `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,oneof=stylish json"`
	WarningsAsErrors bool                 `json:"warningsAsErrors,omitempty" yaml:"warningsAsErrors,omitempty"`
}

// Env holds the environment overrides. Unset variables leave the file
// values untouched.
type Env struct {
	Format           string `envconfig:"FORMAT" validate:"omitempty,oneof=stylish json"`
	WarningsAsErrors *bool  `envconfig:"WARNINGS_AS_ERRORS"`
	PriorYearFile    string `envconfig:"PRIOR_YEAR_FILE"`
}

// ConfigError reports a config that could not be read, parsed or
// validated.
type ConfigError struct {
	Path   string
	Issues []string
	Err    error
}

func (e *ConfigError) Error() string {
	var msg string
	switch {
	case len(e.Issues) > 0:
		msg = "設定が不正です: " + strings.Join(e.Issues, "; ")
	case e.Err != nil:
		msg = e.Err.Error()
	default:
		msg = "設定が不正です"
	}
	if e.Path == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Path, msg)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

var validate = validator.New()

// Find returns the first config file present in dir.
func Find(dir string) (string, bool) {
	for _, name := range Filenames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			slog.Debug("found config file", "path", path)
			return path, true
		}
	}
	return "", false
}

// Load reads and validates the config file at path. The format follows
// the file extension; anything other than .yaml or .yml is read as JSON.
func Load(path string, reg *rules.Registry) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}

	f, err := Parse(data, isYAML(path))
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if err := f.Validate(reg); err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Path = path
		}
		return nil, err
	}
	return f, nil
}

// Parse decodes a config document.
func Parse(data []byte, asYAML bool) (*File, error) {
	f := &File{}
	if asYAML {
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		return f, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return f, nil
}

// Validate checks the schema and that every configured rule exists in reg.
func (f *File) Validate(reg *rules.Registry) error {
	var issues []string

	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return &ConfigError{Err: err}
		}
		for _, fe := range verrs {
			issues = append(issues, describe(fileKey(fe), fe))
		}
	}

	if reg != nil {
		ids := maps.Keys(f.Rules)
		slices.Sort(ids)
		for _, id := range ids {
			if _, ok := reg.Get(id); !ok {
				issues = append(issues, fmt.Sprintf("rules.%s: 不明なルールです", id))
			}
		}
	}

	if len(issues) > 0 {
		return &ConfigError{Issues: issues}
	}
	return nil
}

// fileKey maps a validation namespace such as
// File.Rules[balance-sheet/equation].Severity back to the config key.
func fileKey(fe validator.FieldError) string {
	key := strings.TrimPrefix(fe.Namespace(), "File.")
	if rest, ok := strings.CutPrefix(key, "Rules["); ok {
		return "rules." + strings.TrimSuffix(rest, "].Severity")
	}
	return strings.ToLower(key[:1]) + key[1:]
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s: %q は %s のいずれかを指定してください", field, fmt.Sprint(fe.Value()), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "required":
		return fmt.Sprintf("%s: 値が必要です", field)
	}
	return fmt.Sprintf("%s: %s", field, fe.Error())
}

// Apply merges the file into cfg.
func (f *File) Apply(cfg *rules.Config) {
	for id, entry := range f.Rules {
		cfg.Rules[id] = entry.Setting()
	}
	if f.PriorYearFile != "" {
		cfg.PriorYearFile = f.PriorYearFile
	}
	if f.Format != "" {
		cfg.Format = f.Format
	}
	if f.WarningsAsErrors {
		cfg.WarningsAsErrors = true
	}
}

// LoadEnv reads the ZEICHECK_* overrides.
func LoadEnv() (*Env, error) {
	env := &Env{}
	if err := envconfig.Process(EnvPrefix, env); err != nil {
		return nil, &ConfigError{Err: err}
	}
	if err := validate.Struct(env); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, &ConfigError{Err: err}
		}
		issues := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, describe(EnvPrefix+"_"+strings.ToUpper(fe.Field()), fe))
		}
		return nil, &ConfigError{Issues: issues}
	}
	return env, nil
}

// Apply merges the environment overrides into cfg.
func (e *Env) Apply(cfg *rules.Config) {
	if e.Format != "" {
		cfg.Format = e.Format
	}
	if e.WarningsAsErrors != nil {
		cfg.WarningsAsErrors = *e.WarningsAsErrors
	}
	if e.PriorYearFile != "" {
		cfg.PriorYearFile = e.PriorYearFile
	}
}

// Resolve builds the configuration of a run. path names an explicit config
// file; when empty the first file found in dir is used, if any. It returns
// the path that was read, or "".
func Resolve(path, dir string, reg *rules.Registry) (*rules.Config, string, error) {
	cfg := rules.NewConfig()

	if path == "" {
		path, _ = Find(dir)
	}
	if path != "" {
		f, err := Load(path, reg)
		if err != nil {
			return nil, "", err
		}
		f.Apply(cfg)
		slog.Info("loaded config", "path", path, "rules", len(f.Rules))
	}

	env, err := LoadEnv()
	if err != nil {
		return nil, "", err
	}
	env.Apply(cfg)

	return cfg, path, nil
}

// Starter is the config written by init: every rule at its default
// severity.
func Starter(reg *rules.Registry) *File {
	f := &File{
		Rules:  make(map[string]RuleEntry, reg.Len()),
		Format: rules.FormatStylish,
	}
	for _, r := range reg.All() {
		f.Rules[r.ID] = RuleEntry{Severity: string(r.Severity)}
	}
	return f
}

// Marshal encodes f as YAML or as two-space indented JSON.
func (f *File) Marshal(asYAML bool) ([]byte, error) {
	if asYAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
