package duel

import (
	"github.com/KirkDiggler/duel/internal/dice"
	duelerr "github.com/KirkDiggler/duel/internal/errors"
)

// CombatantType represents who controls a combatant
type CombatantType string

const (
	CombatantTypePlayer   CombatantType = "player"
	CombatantTypeComputer CombatantType = "computer"
)

// HealStrategy adjusts a heal range before the amount is drawn.
// It reports whether the range was boosted.
type HealStrategy func(c *Combatant, r Range) (Range, bool)

// StandardHeal leaves the range untouched
func StandardHeal(_ *Combatant, r Range) (Range, bool) {
	return r, false
}

// UrgentHealStrategy multiplies the upper bound while the combatant's
// hp percentage is below the threshold.
func UrgentHealStrategy(cfg UrgentHeal) HealStrategy {
	return func(c *Combatant, r Range) (Range, bool) {
		if c.HPPercent() >= cfg.ThresholdPercent {
			return r, false
		}
		r.High *= cfg.Multiplier
		return r, true
	}
}

// Combatant is one side of a match
type Combatant struct {
	Name  string        `json:"name"`
	Type  CombatantType `json:"type"`
	HP    int           `json:"hp"`
	MaxHP int           `json:"max_hp"`

	rules        *Rules
	roller       dice.Roller
	healStrategy HealStrategy
}

// CombatantConfig holds everything needed to create a combatant
type CombatantConfig struct {
	Name         string
	Type         CombatantType
	MaxHP        int
	Rules        *Rules
	Roller       dice.Roller
	HealStrategy HealStrategy
}

// HealResult describes a completed heal
type HealResult struct {
	Amount int
	// Range is the interval the amount was drawn from, after any boost
	Range   Range
	Boosted bool
}

// NewCombatant creates a combatant at full health
func NewCombatant(cfg *CombatantConfig) (*Combatant, error) {
	if cfg == nil {
		return nil, duelerr.InvalidArgument("combatant config is required")
	}
	if cfg.Name == "" {
		return nil, duelerr.InvalidArgument("combatant name is required")
	}
	if cfg.MaxHP < 1 || cfg.MaxHP > MaxHPLimit {
		return nil, duelerr.Validationf("max hp must be within [1,%d], got %d", MaxHPLimit, cfg.MaxHP).
			WithMeta("combatant", cfg.Name)
	}
	if cfg.Roller == nil {
		return nil, duelerr.InvalidArgument("roller is required")
	}

	rules := cfg.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	strategy := cfg.HealStrategy
	if strategy == nil {
		strategy = StandardHeal
	}

	return &Combatant{
		Name:         cfg.Name,
		Type:         cfg.Type,
		HP:           cfg.MaxHP,
		MaxHP:        cfg.MaxHP,
		rules:        rules,
		roller:       cfg.Roller,
		healStrategy: strategy,
	}, nil
}

// NewPlayer creates the human controlled combatant
func NewPlayer(name string, maxHP int, rules *Rules, roller dice.Roller) (*Combatant, error) {
	return NewCombatant(&CombatantConfig{
		Name:   name,
		Type:   CombatantTypePlayer,
		MaxHP:  maxHP,
		Rules:  rules,
		Roller: roller,
	})
}

// NewComputer creates the computer controlled combatant, which heals harder at low health
func NewComputer(name string, maxHP int, rules *Rules, roller dice.Roller) (*Combatant, error) {
	if rules == nil {
		rules = DefaultRules()
	}

	return NewCombatant(&CombatantConfig{
		Name:         name,
		Type:         CombatantTypeComputer,
		MaxHP:        maxHP,
		Rules:        rules,
		Roller:       roller,
		HealStrategy: UrgentHealStrategy(rules.UrgentHeal),
	})
}

// IsAlive returns true if the combatant has more than 0 HP
func (c *Combatant) IsAlive() bool {
	return c.HP > 0
}

// HPPercent is floor(hp / max_hp * 100)
func (c *Combatant) HPPercent() int {
	return c.HP * 100 / c.MaxHP
}

// AttackSmall deals damage from the small attack range to target
func (c *Combatant) AttackSmall(target *Combatant) (int, error) {
	return c.attack(target, c.rules.SmallAttack)
}

// AttackLarge deals damage from the large attack range to target
func (c *Combatant) AttackLarge(target *Combatant) (int, error) {
	return c.attack(target, c.rules.LargeAttack)
}

// Heal restores hp using the ruleset's heal range
func (c *Combatant) Heal() (*HealResult, error) {
	return c.HealWithin(c.rules.Heal)
}

// HealWithin restores hp drawn from r, after the heal strategy has adjusted it.
// The returned amount is the drawn value even when hp is clamped at MaxHP.
func (c *Combatant) HealWithin(r Range) (*HealResult, error) {
	adjusted, boosted := c.healStrategy(c, r)

	amount, err := dice.Between(c.roller, adjusted.Low, adjusted.High)
	if err != nil {
		return nil, duelerr.WrapWithCode(err, duelerr.CodeInternal, "failed to roll heal").
			WithMeta("combatant", c.Name)
	}

	c.restore(amount)

	return &HealResult{
		Amount:  amount,
		Range:   adjusted,
		Boosted: boosted,
	}, nil
}

// attack draws from r and applies it to target.
// The returned amount is the drawn value even when target hp is clamped at 0.
func (c *Combatant) attack(target *Combatant, r Range) (int, error) {
	if target == nil {
		return 0, duelerr.InvalidArgument("attack target is required")
	}

	amount, err := dice.Between(c.roller, r.Low, r.High)
	if err != nil {
		return 0, duelerr.WrapWithCode(err, duelerr.CodeInternal, "failed to roll attack").
			WithMeta("combatant", c.Name)
	}

	target.takeDamage(amount)
	return amount, nil
}

func (c *Combatant) takeDamage(amount int) {
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
}

// restore saturates at MaxHP without computing hp+amount
func (c *Combatant) restore(amount int) {
	if amount >= c.MaxHP-c.HP {
		c.HP = c.MaxHP
		return
	}
	c.HP += amount
}
