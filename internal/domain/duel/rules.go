package duel

import (
	"math"

	duelerr "github.com/KirkDiggler/duel/internal/errors"
)

const (
	DefaultMaxHP = 100
	// MaxHPLimit keeps hp percentage math within an int
	MaxHPLimit = math.MaxInt / 100

	smallAttackLow  = 18
	smallAttackHigh = 25
	largeAttackLow  = 10
	largeAttackHigh = 35

	// Healing deliberately shares the small attack range.
	healLow  = smallAttackLow
	healHigh = smallAttackHigh

	urgentHealThreshold  = 35
	urgentHealMultiplier = 2
)

// Range is an inclusive interval of amounts a draw may produce
type Range struct {
	Low  int `yaml:"low"`
	High int `yaml:"high"`
}

func (r Range) Contains(v int) bool {
	return v >= r.Low && v <= r.High
}

func (r Range) validate(field string) error {
	if r.Low < 1 {
		return duelerr.Validationf("%s low must be at least 1, got %d", field, r.Low).
			WithMeta("field", field)
	}
	if r.High < r.Low {
		return duelerr.Validationf("%s high (%d) must not be below low (%d)", field, r.High, r.Low).
			WithMeta("field", field)
	}
	return nil
}

// UrgentHeal controls the computer's low health healing boost
type UrgentHeal struct {
	// ThresholdPercent is the hp percentage below which the boost applies
	ThresholdPercent int `yaml:"threshold_percent"`
	// Multiplier scales the upper bound of the heal range
	Multiplier int `yaml:"multiplier"`
}

// Rules holds the tunable numbers of a match
type Rules struct {
	SmallAttack Range      `yaml:"small_attack"`
	LargeAttack Range      `yaml:"large_attack"`
	Heal        Range      `yaml:"heal"`
	UrgentHeal  UrgentHeal `yaml:"urgent_heal"`
}

// DefaultRules returns the standard ruleset
func DefaultRules() *Rules {
	return &Rules{
		SmallAttack: Range{Low: smallAttackLow, High: smallAttackHigh},
		LargeAttack: Range{Low: largeAttackLow, High: largeAttackHigh},
		Heal:        Range{Low: healLow, High: healHigh},
		UrgentHeal: UrgentHeal{
			ThresholdPercent: urgentHealThreshold,
			Multiplier:       urgentHealMultiplier,
		},
	}
}

// Validate checks every range and the urgent heal settings
func (r *Rules) Validate() error {
	if r == nil {
		return duelerr.Validation("rules are required")
	}

	if err := r.SmallAttack.validate("small_attack"); err != nil {
		return err
	}
	if err := r.LargeAttack.validate("large_attack"); err != nil {
		return err
	}
	if err := r.Heal.validate("heal"); err != nil {
		return err
	}

	if r.UrgentHeal.ThresholdPercent < 0 || r.UrgentHeal.ThresholdPercent > 100 {
		return duelerr.Validationf("urgent_heal threshold_percent must be within [0,100], got %d",
			r.UrgentHeal.ThresholdPercent)
	}
	if r.UrgentHeal.Multiplier < 1 {
		return duelerr.Validationf("urgent_heal multiplier must be at least 1, got %d", r.UrgentHeal.Multiplier)
	}
	if r.Heal.High > math.MaxInt/r.UrgentHeal.Multiplier {
		return duelerr.Validationf("heal high %d overflows when multiplied by %d",
			r.Heal.High, r.UrgentHeal.Multiplier).WithMeta("field", "urgent_heal")
	}

	return nil
}
