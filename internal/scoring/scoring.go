// Package scoring turns rated answers into normalized RIASEC trait scores.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"apnidisha/internal/model"
)

// ratingScale maps keypad ratings 1-5 onto [0,1].
var ratingScale = map[int]float64{
	1: 0.0,
	2: 0.25,
	3: 0.5,
	4: 0.75,
	5: 1.0,
}

// Accumulate sums scaled ratings and answer counts per real trait.
// Refinement answers carry the REFINE tag and are skipped here; they reach
// the final recommendation only through the prompt's answer log.
func Accumulate(answers []model.Answer) (map[model.Trait]float64, map[model.Trait]int) {
	raw := make(map[model.Trait]float64, len(model.Traits))
	counts := make(map[model.Trait]int, len(model.Traits))
	for _, t := range model.Traits {
		raw[t] = 0
		counts[t] = 0
	}

	for _, a := range answers {
		if !a.Trait.IsReal() {
			continue
		}
		v, ok := ratingScale[a.Rating]
		if !ok {
			continue
		}
		raw[a.Trait] += v
		counts[a.Trait]++
	}
	return raw, counts
}

// Normalize averages raw sums into [0,1] per trait. A trait with no answers
// normalizes to 0.5: no data, not lowest interest.
func Normalize(raw map[model.Trait]float64, counts map[model.Trait]int) map[model.Trait]float64 {
	normalized := make(map[model.Trait]float64, len(model.Traits))
	for _, t := range model.Traits {
		n := counts[t]
		if n == 0 {
			normalized[t] = 0.5
			continue
		}
		normalized[t] = round4(raw[t] / float64(n))
	}
	return normalized
}

// TopTraits ranks traits by normalized score, descending, ties broken by
// enumeration order, truncated to k.
func TopTraits(normalized map[model.Trait]float64, k int) []model.TraitScore {
	ranked := make([]model.TraitScore, 0, len(model.Traits))
	for _, t := range model.Traits {
		ranked = append(ranked, model.TraitScore{Trait: t, Score: normalized[t]})
	}
	// Stable sort keeps enumeration order among equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// Summary renders the spoken trait-summary sentence.
func Summary(top []model.TraitScore) string {
	parts := make([]string, 0, len(top))
	for _, ts := range top {
		parts = append(parts, fmt.Sprintf("%s (%.2f)", ts.Trait.Name(), ts.Score))
	}
	return "Your top traits: " + strings.Join(parts, ", ")
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
