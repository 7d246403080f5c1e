package ruleset

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/reactform/pkg/validator"
)

type document struct {
	Fields map[string]ruleList `yaml:"fields"`
}

type ruleDoc struct {
	Validator string `yaml:"validator"`
	Pattern   string `yaml:"pattern"`
	Msg       string `yaml:"msg"`
}

// UnmarshalYAML accepts a bare scalar as a rule name.
func (d *ruleDoc) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		d.Validator = n.Value
		return nil
	}
	type plain ruleDoc
	return n.Decode((*plain)(d))
}

type ruleList []ruleDoc

// UnmarshalYAML accepts a single rule in place of a list.
func (l *ruleList) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		var docs []ruleDoc
		if err := n.Decode(&docs); err != nil {
			return err
		}
		*l = docs
		return nil
	}

	var d ruleDoc
	if err := n.Decode(&d); err != nil {
		return err
	}
	*l = ruleList{d}
	return nil
}

func (d ruleDoc) rule() (validator.Rule, error) {
	switch {
	case d.Validator != "" && d.Pattern != "":
		return validator.Rule{}, ErrAmbiguousRule
	case d.Validator != "":
		return validator.Use(d.Validator, d.Msg), nil
	case d.Pattern != "":
		re, err := regexp.Compile(d.Pattern)
		if err != nil {
			return validator.Rule{}, errors.Join(ErrInvalidPattern, err)
		}
		return validator.Match(re, d.Msg), nil
	default:
		return validator.Rule{}, ErrEmptyRule
	}
}

// Load reads a rule configuration. An empty document yields an empty config.
// Rule names are not resolved here; unknown names fail when first evaluated.
func Load(r io.Reader) (validator.Config, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	cfg := make(validator.Config, len(doc.Fields))
	for _, field := range slices.Sorted(maps.Keys(doc.Fields)) {
		list := doc.Fields[field]
		rs := make([]validator.Rule, 0, len(list))
		for i, d := range list {
			rule, err := d.rule()
			if err != nil {
				return nil, fmt.Errorf("field %q rule %d: %w", field, i, err)
			}
			rs = append(rs, rule)
		}
		cfg[field] = rs
	}
	return cfg, nil
}

// LoadFile reads a rule configuration from path.
func LoadFile(path string) (validator.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules: %w", err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
