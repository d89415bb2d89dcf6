package dice

import (
	"errors"
	"fmt"
	"strings"
)

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int   // Bonus applied
	Count    int   // Number of dice rolled
	Sides    int   // Number of sides on each die
	RawTotal int   // Sum of dice without bonus
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	if r.Bonus == 0 {
		return fmt.Sprintf("%dd%d %s = %d", r.Count, r.Sides, compact, r.Total)
	}
	return fmt.Sprintf("%dd%d%+d %s = %d", r.Count, r.Sides, r.Bonus, compact, r.Total)
}

// Between draws a uniform integer in [low, high] using a single die of
// high-low+1 sides offset by low-1.
func Between(roller Roller, low, high int) (int, error) {
	if low > high {
		return 0, fmt.Errorf("invalid range [%d,%d]", low, high)
	}

	result, err := roller.Roll(1, high-low+1, low-1)
	if err != nil {
		return 0, err
	}

	return result.Total, nil
}

// Pick returns a uniform index in [0, n).
func Pick(roller Roller, n int) (int, error) {
	if n < 1 {
		return 0, errors.New("nothing to pick from")
	}

	result, err := roller.Roll(1, n, -1)
	if err != nil {
		return 0, err
	}

	return result.Total, nil
}

func validate(count, sides int) error {
	if count < 1 {
		return errors.New("invalid dice count")
	}

	if sides < 1 {
		return errors.New("invalid dice size")
	}

	return nil
}
