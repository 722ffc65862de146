package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apnidisha/internal/model"
)

func TestAccumulate(t *testing.T) {
	answers := []model.Answer{
		{Trait: model.TraitRealistic, Question: "q1", Rating: 5},
		{Trait: model.TraitRealistic, Question: "q2", Rating: 1},
		{Trait: model.TraitArtistic, Question: "q3", Rating: 3},
		{Trait: model.TraitRefine, Question: "q4", Rating: 5},
	}

	raw, counts := Accumulate(answers)

	assert.Equal(t, 1.0, raw[model.TraitRealistic])
	assert.Equal(t, 2, counts[model.TraitRealistic])
	assert.Equal(t, 0.5, raw[model.TraitArtistic])
	assert.Equal(t, 1, counts[model.TraitArtistic])

	// Refinement answers never touch trait totals.
	for _, tr := range model.Traits {
		assert.LessOrEqual(t, counts[tr], 2)
	}
	assert.Equal(t, 0, counts[model.TraitSocial])
}

func TestAccumulateIgnoresBadRatings(t *testing.T) {
	answers := []model.Answer{
		{Trait: model.TraitInvestigative, Question: "q1", Rating: 0},
		{Trait: model.TraitInvestigative, Question: "q2", Rating: 6},
		{Trait: model.TraitInvestigative, Question: "q3", Rating: 4},
	}

	raw, counts := Accumulate(answers)

	assert.Equal(t, 1, counts[model.TraitInvestigative])
	assert.Equal(t, 0.75, raw[model.TraitInvestigative])
}

func TestNormalize(t *testing.T) {
	answers := []model.Answer{
		{Trait: model.TraitRealistic, Rating: 5},
		{Trait: model.TraitRealistic, Rating: 2},
		{Trait: model.TraitEnterprising, Rating: 1},
	}

	raw, counts := Accumulate(answers)
	normalized := Normalize(raw, counts)

	assert.Equal(t, 0.625, normalized[model.TraitRealistic])
	assert.Equal(t, 0.0, normalized[model.TraitEnterprising])

	// Unanswered traits sit at the neutral midpoint.
	assert.Equal(t, 0.5, normalized[model.TraitInvestigative])
	assert.Equal(t, 0.5, normalized[model.TraitArtistic])
	assert.Equal(t, 0.5, normalized[model.TraitSocial])
	assert.Equal(t, 0.5, normalized[model.TraitConventional])

	for _, tr := range model.Traits {
		assert.GreaterOrEqual(t, normalized[tr], 0.0)
		assert.LessOrEqual(t, normalized[tr], 1.0)
	}
}

func TestTopTraitsOrdering(t *testing.T) {
	normalized := map[model.Trait]float64{
		model.TraitRealistic:     0.5,
		model.TraitInvestigative: 1.0,
		model.TraitArtistic:      0.25,
		model.TraitSocial:        1.0,
		model.TraitEnterprising:  0.5,
		model.TraitConventional:  0.75,
	}

	top := TopTraits(normalized, 3)
	require.Len(t, top, 3)

	// Ties break by enumeration order: I before S at 1.0.
	assert.Equal(t, model.TraitInvestigative, top[0].Trait)
	assert.Equal(t, model.TraitSocial, top[1].Trait)
	assert.Equal(t, model.TraitConventional, top[2].Trait)
}

func TestTopTraitsAllEqual(t *testing.T) {
	normalized := map[model.Trait]float64{}
	for _, tr := range model.Traits {
		normalized[tr] = 0.5
	}

	top := TopTraits(normalized, 3)
	require.Len(t, top, 3)
	assert.Equal(t, model.Traits[0], top[0].Trait)
	assert.Equal(t, model.Traits[1], top[1].Trait)
	assert.Equal(t, model.Traits[2], top[2].Trait)
}

func TestSummary(t *testing.T) {
	top := []model.TraitScore{
		{Trait: model.TraitRealistic, Score: 0.875},
		{Trait: model.TraitSocial, Score: 0.5},
	}

	assert.Equal(t, "Your top traits: Realistic (0.88), Social (0.50)", Summary(top))
}
