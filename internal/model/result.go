package model

import "time"

// QuizResult is the archived outcome of a completed call.
type QuizResult struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	CallSID     string            `json:"callSid" bson:"callSid"`
	Answers     []Answer          `json:"answers" bson:"answers"`
	Scores      map[Trait]float64 `json:"scores" bson:"scores"`
	TopTraits   []TraitScore      `json:"topTraits" bson:"topTraits"`
	Summary     string            `json:"summary" bson:"summary"`
	CompletedAt time.Time         `json:"completedAt" bson:"completedAt"`
}
