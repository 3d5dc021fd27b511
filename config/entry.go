package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/robinvdvleuten/zeicheck/rules"
)

// RuleEntry is a rule setting as written in a config file, either a bare
// severity or a [severity, params] pair:
//
//	"rules": {
//	  "balance-sheet/equation": "warning",
//	  "home-office/reasonable-ratio": ["warning", {"maxRatio": 0.8}]
//	}
type RuleEntry struct {
	Severity string `validate:"required,oneof=error warning info off"`
	Params   map[string]any
}

// Setting converts the entry for the rule engine.
func (e RuleEntry) Setting() rules.RuleSetting {
	return rules.RuleSetting{Severity: rules.Severity(e.Severity), Params: e.Params}
}

func (e *RuleEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &e.Severity)
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("rule entry must be a severity or [severity, params]: %w", err)
	}
	if len(pair) == 0 || len(pair) > 2 {
		return fmt.Errorf("rule entry must have one or two elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.Severity); err != nil {
		return fmt.Errorf("rule severity: %w", err)
	}
	if len(pair) == 2 {
		dec := json.NewDecoder(bytes.NewReader(pair[1]))
		dec.UseNumber()
		if err := dec.Decode(&e.Params); err != nil {
			return fmt.Errorf("rule params: %w", err)
		}
	}
	return nil
}

func (e RuleEntry) MarshalJSON() ([]byte, error) {
	if len(e.Params) == 0 {
		return json.Marshal(e.Severity)
	}
	return json.Marshal([]any{e.Severity, e.Params})
}

func (e *RuleEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&e.Severity)
	case yaml.SequenceNode:
		if len(node.Content) == 0 || len(node.Content) > 2 {
			return fmt.Errorf("line %d: rule entry must have one or two elements, got %d", node.Line, len(node.Content))
		}
		if err := node.Content[0].Decode(&e.Severity); err != nil {
			return err
		}
		if len(node.Content) == 2 {
			return node.Content[1].Decode(&e.Params)
		}
		return nil
	}
	return fmt.Errorf("line %d: rule entry must be a severity or [severity, params]", node.Line)
}

func (e RuleEntry) MarshalYAML() (any, error) {
	if len(e.Params) == 0 {
		return e.Severity, nil
	}
	return []any{e.Severity, e.Params}, nil
}
