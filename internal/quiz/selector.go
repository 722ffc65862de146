package quiz

import (
	"math/rand"

	"apnidisha/internal/model"
)

// Selector picks the next static question, balancing coverage across all six
// traits. The random source is injected so tests can seed it.
type Selector struct {
	bank Bank
	rng  *rand.Rand
}

// NewSelector creates a selector over a loaded bank.
func NewSelector(bank Bank, rng *rand.Rand) *Selector {
	return &Selector{bank: bank, rng: rng}
}

// Next chooses a trait among those with the fewest questions asked so far,
// then a question not yet asked for that trait. When a trait's fresh
// questions run out the pool resets to the full bank, so repetition happens
// only when there is genuinely no new content. Returns ok=false only when
// the chosen trait has no questions configured at all, which forces early
// termination of the static phase.
func (s *Selector) Next(asked map[model.Trait][]string) (model.Trait, string, bool) {
	minCount := -1
	for _, t := range model.Traits {
		c := len(asked[t])
		if minCount == -1 || c < minCount {
			minCount = c
		}
	}

	candidates := make([]model.Trait, 0, len(model.Traits))
	for _, t := range model.Traits {
		if len(asked[t]) == minCount {
			candidates = append(candidates, t)
		}
	}

	trait := candidates[s.rng.Intn(len(candidates))]

	alreadyAsked := make(map[string]bool, len(asked[trait]))
	for _, q := range asked[trait] {
		alreadyAsked[q] = true
	}

	available := make([]string, 0, len(s.bank.Questions(trait)))
	for _, q := range s.bank.Questions(trait) {
		if !alreadyAsked[q] {
			available = append(available, q)
		}
	}
	if len(available) == 0 {
		available = s.bank.Questions(trait)
	}
	if len(available) == 0 {
		return "", "", false
	}

	return trait, available[s.rng.Intn(len(available))], true
}
