package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"apnidisha/internal/model"
)

func sampleScores() map[model.Trait]float64 {
	return map[model.Trait]float64{
		model.TraitRealistic:     0.875,
		model.TraitInvestigative: 0.75,
		model.TraitArtistic:      0.25,
		model.TraitSocial:        0.5,
		model.TraitEnterprising:  0.5,
		model.TraitConventional:  0.5,
	}
}

func TestRecommendationNoAnswers(t *testing.T) {
	svc := NewRecommendationService(nil)

	got := svc.Generate(context.Background(), nil, sampleScores())
	assert.Equal(t, "No answers recorded. Please try again.", got)
}

func TestRecommendationNilReasoner(t *testing.T) {
	svc := NewRecommendationService(nil)

	got := svc.Generate(context.Background(), sampleAnswers(), sampleScores())
	assert.Equal(t, "Your top traits: Realistic (0.88), Investigative (0.75), Social (0.50). Visit apnidisha.com for suggestions.", got)
}

func TestRecommendationReasonerError(t *testing.T) {
	svc := NewRecommendationService(&fakeReasoner{err: errors.New("unavailable")})

	got := svc.Generate(context.Background(), sampleAnswers(), sampleScores())
	assert.Contains(t, got, "Your top traits: Realistic (0.88)")
	assert.Contains(t, got, "Explore careers at apnidisha.com.")
}

func TestRecommendationUnparseableOutput(t *testing.T) {
	svc := NewRecommendationService(&fakeReasoner{response: "sorry, I had trouble with that"})

	got := svc.Generate(context.Background(), sampleAnswers(), sampleScores())
	assert.Contains(t, got, "Explore careers at apnidisha.com.")
}

func TestRecommendationSuccess(t *testing.T) {
	reasoner := &fakeReasoner{response: `Here is the result:
{
  "recommendations": [
    {
      "career": "Mechanical Engineer",
      "reason": "strong Realistic interest",
      "stream": "science",
      "degrees": [
        {"degree": "B.Tech", "specializations": ["Mechanical", "Automobile"]}
      ]
    },
    {
      "career": "Lab Technician",
      "reason": "high Investigative score",
      "stream": "science",
      "degrees": []
    }
  ]
}`}
	svc := NewRecommendationService(reasoner)

	got := svc.Generate(context.Background(), sampleAnswers(), sampleScores())

	assert.Contains(t, got, "Your top traits: Realistic (0.88)")
	assert.Contains(t, got, "Here are your best career matches:")
	assert.Contains(t, got, "Option 1: Mechanical Engineer in science stream because strong Realistic interest.")
	assert.Contains(t, got, "Pursue B.Tech in Mechanical, Automobile.")
	assert.Contains(t, got, "Option 2: Lab Technician")
}

func TestRecommendationSkipsEmptyCareers(t *testing.T) {
	svc := NewRecommendationService(&fakeReasoner{
		response: `{"recommendations": [{"career": "", "reason": "x"}, {"career": "Teacher", "reason": "high Social score", "stream": "arts"}]}`,
	})

	got := svc.Generate(context.Background(), sampleAnswers(), sampleScores())
	assert.Contains(t, got, "Option 1: Teacher")
	assert.NotContains(t, got, "Option 2:")
}

func TestRecommendationAllEntriesEmpty(t *testing.T) {
	svc := NewRecommendationService(&fakeReasoner{
		response: `{"recommendations": [{"career": "", "reason": "x"}]}`,
	})

	got := svc.Generate(context.Background(), sampleAnswers(), sampleScores())
	assert.Contains(t, got, "Explore careers at apnidisha.com.")
}

func TestRenderRecommendationsCaps(t *testing.T) {
	recs := []model.Recommendation{
		{Career: "A", Reason: "r", Stream: "science"},
		{Career: "B", Reason: "r", Stream: "science"},
		{Career: "C", Reason: "r", Stream: "science"},
		{Career: "D", Reason: "r", Stream: "science"},
	}

	spoken := renderRecommendations(recs)
	assert.Contains(t, spoken, "Option 3: C")
	assert.NotContains(t, spoken, "Option 4")
	assert.NotContains(t, spoken, " D ")
}
