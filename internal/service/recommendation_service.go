package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"apnidisha/internal/model"
	"apnidisha/internal/scoring"
)

const (
	maxRecommendations = 3
	maxDegrees         = 2
	maxSpecializations = 3
)

// RecommendationService renders the final spoken career summary.
type RecommendationService struct {
	reasoner Reasoner
}

// NewRecommendationService creates a recommendation service. reasoner may
// be nil (service disabled).
func NewRecommendationService(reasoner Reasoner) *RecommendationService {
	return &RecommendationService{reasoner: reasoner}
}

// Generate returns the spoken result text. The trait summary is always
// computed locally; the personalized suggestions come from the reasoning
// service when available and degrade to a generic call-to-action on any
// failure. It never returns an error.
func (s *RecommendationService) Generate(ctx context.Context, answers []model.Answer, scores map[model.Trait]float64) string {
	if len(answers) == 0 {
		return "No answers recorded. Please try again."
	}

	top := scoring.TopTraits(scores, 3)
	summary := scoring.Summary(top)

	if s.reasoner == nil {
		return summary + ". Visit apnidisha.com for suggestions."
	}

	raw, err := s.reasoner.Generate(ctx, buildRecommendationPrompt(answers, scores))
	if err != nil {
		log.Printf("Final recommendation failed: %v", err)
		return summary + ". Explore careers at apnidisha.com."
	}

	var set model.RecommendationSet
	if !decodeFirstObject(raw, &set) || len(set.Recommendations) == 0 {
		log.Println("Recommendation: no valid recommendations in model output")
		return summary + ". Explore careers at apnidisha.com."
	}

	spoken := renderRecommendations(set.Recommendations)
	if spoken == "" {
		return summary + ". Explore careers at apnidisha.com."
	}
	return summary + ". " + spoken
}

// renderRecommendations turns validated entries into flowing spoken text.
// Entries without a career name are dropped rather than spoken half-empty.
func renderRecommendations(recs []model.Recommendation) string {
	var b strings.Builder
	n := 0
	for _, rec := range recs {
		if rec.Career == "" {
			continue
		}
		if n == maxRecommendations {
			break
		}
		n++
		if n == 1 {
			b.WriteString("Here are your best career matches: ")
		}
		fmt.Fprintf(&b, "Option %d: %s in %s stream because %s. ", n, rec.Career, rec.Stream, rec.Reason)

		degrees := rec.Degrees
		if len(degrees) > maxDegrees {
			degrees = degrees[:maxDegrees]
		}
		for _, deg := range degrees {
			specs := deg.Specializations
			if len(specs) > maxSpecializations {
				specs = specs[:maxSpecializations]
			}
			fmt.Fprintf(&b, "Pursue %s in %s. ", deg.Degree, strings.Join(specs, ", "))
		}
	}
	return strings.TrimSpace(b.String())
}

func buildRecommendationPrompt(answers []model.Answer, scores map[model.Trait]float64) string {
	answersJSON, _ := json.MarshalIndent(answers, "", "  ")
	scoresJSON, _ := json.MarshalIndent(scores, "", "  ")

	return fmt.Sprintf(`You are India's #1 career counselor.

The user completed a RIASEC interest quiz plus %d refinement questions.

Give 2-3 career suggestions with Indian education paths.

RULES:
- Only real, established professions recognized in standard career databases (O*NET, India's National Career Service). No fabricated, fictional, or speculative roles.
- Use canonical career names.
- Each "reason" must follow from the RIASEC scores below; do not reuse vague templates.
- Stream must be one of: science, commerce, arts, vocational.
- Degrees must be recognized undergraduate or diploma programs.
- If the traits match no specific profession, use broad clusters like "Engineering" or "Healthcare".

Return ONLY valid JSON:

{
  "recommendations": [
    {
      "career": "Data Scientist",
      "reason": "Strong Investigative and Realistic traits with a passion for analytics",
      "stream": "science",
      "degrees": [
        {"degree": "B.Tech", "specializations": ["CSE", "Data Science", "AI"]},
        {"degree": "B.Sc", "specializations": ["Statistics", "Mathematics"]}
      ]
    }
  ]
}

User answers:
%s

RIASEC scores: %s

Generate now.
`, RefinementCount, answersJSON, scoresJSON)
}
