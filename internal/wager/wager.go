// Package wager computes game outcomes from configured odds and payout
// tables. Everything here is pure so a play is reconstructable from the
// fields recorded on its PlayRecord.
package wager

import (
	"errors"
	"math"
)

var ErrConfigInconsistent = errors.New("config_inconsistent")

// house edge gap tolerance when summing odds
const oddsSumEpsilon = 1e-9

// Fee is the platform's cut of a wager, floored.
func Fee(cost, feePercent int64) int64 {
	return cost * feePercent / 100
}

// Award is the payout for an effective stake at a given multiplier, floored.
func Award(stake int64, multiplier float64) int64 {
	return int64(math.Floor(float64(stake) * multiplier))
}

// ValidateConfig checks that odds and multipliers are index-aligned and that
// the odds form a (possibly deficient) probability distribution. A deficient
// sum is legal: the remainder is the house edge gap, not an error.
func ValidateConfig(odds, multipliers []float64) error {
	if len(odds) != len(multipliers) {
		return ErrConfigInconsistent
	}
	sum := 0.0
	for _, p := range odds {
		if p < 0 || p > 1 {
			return ErrConfigInconsistent
		}
		sum += p
	}
	if sum > 1+oddsSumEpsilon {
		return ErrConfigInconsistent
	}
	for _, m := range multipliers {
		if m < 0 {
			return ErrConfigInconsistent
		}
	}
	return nil
}

// Pick walks the odds accumulating a running sum and returns the first index
// whose cumulative probability reaches r, along with its multiplier. When r
// lands beyond the accumulated sum no outcome fires: index -1, multiplier 0,
// a total loss.
func Pick(odds, multipliers []float64, r float64) (int, float64) {
	acc := 0.0
	for i, p := range odds {
		acc += p
		if acc >= r {
			return i, multipliers[i]
		}
	}
	return -1, 0
}

// Outcome is the full resolution of one wager before it touches a balance.
type Outcome struct {
	Cost         int64
	Fee          int64
	Stake        int64
	OutcomeIndex int
	Multiplier   float64
	Award        int64
}

// Resolve computes the outcome of a single play from the config and a
// uniform sample r in [0,1).
func Resolve(cost, feePercent int64, odds, multipliers []float64, r float64) (Outcome, error) {
	if err := ValidateConfig(odds, multipliers); err != nil {
		return Outcome{}, err
	}
	fee := Fee(cost, feePercent)
	stake := cost - fee
	idx, mult := Pick(odds, multipliers, r)
	return Outcome{
		Cost:         cost,
		Fee:          fee,
		Stake:        stake,
		OutcomeIndex: idx,
		Multiplier:   mult,
		Award:        Award(stake, mult),
	}, nil
}
