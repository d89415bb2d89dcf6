package config

import (
	"flag"
	"fmt"
	"io"

	"golang.org/x/text/language"

	"github.com/KirkDiggler/duel/internal/domain/duel"
	duelerr "github.com/KirkDiggler/duel/internal/errors"
)

// Config holds all configuration for a run
type Config struct {
	// MaxHP is the starting hit points of both combatants
	MaxHP int
	// Seed fixes the dice sequence, 0 picks a random seed
	Seed int64
	// RulesPath points at an optional YAML ruleset
	RulesPath string
	// Verbose sends diagnostic logs to stderr
	Verbose bool
	// Language formats numbers for a locale, language.Und prints plain digits
	Language language.Tag

	// Rules is loaded from RulesPath, or the defaults
	Rules *duel.Rules
}

// Parse reads command line flags.
// Usage is written to output whenever parsing or validation fails;
// -h yields flag.ErrHelp.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.MaxHP, "max-hp", duel.DefaultMaxHP, "Maximum health of both combatants")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Seed for a reproducible match (0 = random)")
	fs.StringVar(&cfg.RulesPath, "rules", "", "Path to a YAML ruleset overriding damage and heal ranges")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log diagnostics to stderr")
	lang := fs.String("lang", "", "Language tag for number formatting, e.g. en (empty prints plain digits)")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, duelerr.WrapWithCode(err, duelerr.CodeValidation, "invalid arguments")
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(output, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return nil, duelerr.Validationf("unexpected arguments: %v", fs.Args())
	}

	if cfg.MaxHP < 1 || cfg.MaxHP > duel.MaxHPLimit {
		fmt.Fprintf(output, "invalid value %d for flag -max-hp: must be within [1,%d]\n", cfg.MaxHP, duel.MaxHPLimit)
		fs.Usage()
		return nil, duelerr.Validationf("max hp must be within [1,%d], got %d", duel.MaxHPLimit, cfg.MaxHP).
			WithMeta("max_hp", cfg.MaxHP)
	}

	if *lang != "" {
		tag, err := language.Parse(*lang)
		if err != nil {
			fmt.Fprintf(output, "invalid value %q for flag -lang: %v\n", *lang, err)
			fs.Usage()
			return nil, duelerr.WrapWithCode(err, duelerr.CodeValidation, "invalid language").
				WithMeta("lang", *lang)
		}
		cfg.Language = tag
	}

	cfg.Rules = duel.DefaultRules()
	if cfg.RulesPath != "" {
		rules, err := LoadRules(cfg.RulesPath)
		if err != nil {
			fmt.Fprintf(output, "invalid rules file %s: %v\n", cfg.RulesPath, err)
			fs.Usage()
			return nil, err
		}
		cfg.Rules = rules
	}

	return cfg, nil
}
