package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"apnidisha/internal/model"
)

// RefinementCount is how many personalized statements the second phase asks.
const RefinementCount = 5

// minAnswersForRefinement is the least context worth sending to the model.
const minAnswersForRefinement = 3

// promptAnswerWindow bounds how many recent answers the prompt embeds.
const promptAnswerWindow = 12

var refinementFallback = []string{
	"You enjoy working with computers and technology.",
	"You love helping and teaching others.",
	"You prefer hands-on practical work.",
	"You enjoy creative arts and design.",
	"You want to start your own business.",
}

// RefinementService produces the five refinement statements from the
// caller's answers so far.
type RefinementService struct {
	reasoner Reasoner
}

// NewRefinementService creates a refinement service. reasoner may be nil
// (service disabled); generation then always uses the fallback list.
func NewRefinementService(reasoner Reasoner) *RefinementService {
	return &RefinementService{reasoner: reasoner}
}

// Generate returns exactly RefinementCount statements. It never fails: the
// reasoning service being down, slow, or incoherent degrades to the fixed
// fallback list, so a turn is never left waiting on this step.
func (s *RefinementService) Generate(ctx context.Context, answers []model.Answer) []string {
	if s.reasoner == nil || len(answers) < minAnswersForRefinement {
		log.Println("Refinement: using fallback (no reasoner or too few answers)")
		return append([]string(nil), refinementFallback...)
	}

	raw, err := s.reasoner.Generate(ctx, buildRefinementPrompt(answers))
	if err != nil {
		log.Printf("Refinement generation failed: %v", err)
		return append([]string(nil), refinementFallback...)
	}

	if items, ok := decodeFirstArray(raw); ok {
		if len(items) >= RefinementCount {
			return items[:RefinementCount]
		}
		// Short list: keep what the model gave and pad from the fallback.
		return append(append([]string(nil), items...), refinementFallback[len(items):RefinementCount]...)
	}

	if lines := statementLines(raw); len(lines) >= RefinementCount {
		return lines[:RefinementCount]
	}

	log.Println("Refinement: no usable statements in model output, using fallback")
	return append([]string(nil), refinementFallback...)
}

func buildRefinementPrompt(answers []model.Answer) string {
	recent := answers
	if len(recent) > promptAnswerWindow {
		recent = recent[len(recent)-promptAnswerWindow:]
	}
	answersJSON, _ := json.MarshalIndent(recent, "", "  ")

	return fmt.Sprintf(`You are an expert Indian career psychologist.

Generate exactly %d short, powerful statements to refine the user's career interests.
Make them highly discriminating and personalized.

User's RIASEC answers so far:
%s

RULES:
- Return ONLY a valid JSON array of %d strings
- No explanation, no markdown, no code blocks
- Example: ["You love solving complex algorithms", "You enjoy public speaking in front of thousands"]

Generate now:
`, RefinementCount, answersJSON, RefinementCount)
}
