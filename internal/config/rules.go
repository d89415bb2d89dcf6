package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/duel/internal/domain/duel"
	duelerr "github.com/KirkDiggler/duel/internal/errors"
)

// LoadRules reads a YAML ruleset. Keys that are absent keep their default value.
//
//	small_attack: {low: 18, high: 25}
//	large_attack: {low: 10, high: 35}
//	heal: {low: 18, high: 25}
//	urgent_heal: {threshold_percent: 35, multiplier: 2}
func LoadRules(path string) (*duel.Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, duelerr.WrapWithCode(err, duelerr.CodeValidation, "failed to open rules").
			WithMeta("path", path)
	}
	defer f.Close()

	return DecodeRules(f)
}

// DecodeRules decodes a YAML ruleset on top of the defaults and validates it
func DecodeRules(r io.Reader) (*duel.Rules, error) {
	rules := duel.DefaultRules()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(rules); err != nil && !errors.Is(err, io.EOF) {
		return nil, duelerr.WrapWithCode(err, duelerr.CodeValidation, "failed to parse rules")
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return rules, nil
}
