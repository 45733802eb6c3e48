// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// DefaultBias is the probability of landing on the favored team
const DefaultBias = 0.5

var ErrInvalidBias = errors.New("bias must be between 0 and 1")

// Selector draws a team in two stages: the favored team with probability
// bias, otherwise a uniform pick among the rest.
// A Selector is not safe for concurrent use.
type Selector struct {
	favored string
	others  []string
	bias    float64
	rng     *rand.Rand
}

// NewSelector builds a selector over w. A nil rng uses a randomly seeded source.
func NewSelector(w Wheel, favored string, bias float64, rng *rand.Rand) (*Selector, error) {
	if math.IsNaN(bias) || bias < 0 || bias > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBias, bias)
	}
	if _, err := w.IndexOf(favored); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	others := make([]string, 0, len(w.teams)-1)
	for _, t := range w.teams {
		if t != favored {
			others = append(others, t)
		}
	}

	return &Selector{favored: favored, others: others, bias: bias, rng: rng}, nil
}

func (s *Selector) Bias() float64 {
	return s.bias
}

// Pick draws one team
func (s *Selector) Pick() string {
	if len(s.others) == 0 || s.rng.Float64() < s.bias {
		return s.favored
	}
	return s.others[s.rng.IntN(len(s.others))]
}
