package model

// QuizPhase is the stage a call is in.
type QuizPhase string

const (
	PhaseStatic     QuizPhase = "static"
	PhaseRefinement QuizPhase = "refinement"
)

// Answer records one rated statement. Ratings are 1 (strongly disagree)
// to 5 (strongly agree). Answers are append-only for the life of a session.
type Answer struct {
	Trait    Trait  `json:"trait" bson:"trait"`
	Question string `json:"question" bson:"question"`
	Rating   int    `json:"rating" bson:"rating"`
}

// CurrentQuestion is the single question awaiting a rating, if any.
type CurrentQuestion struct {
	Trait    Trait  `json:"trait"`
	Question string `json:"question"`
}

// QuizSession is the per-call quiz state, keyed by Twilio call SID.
// Telephony turns share no memory, so every turn loads the session from the
// cache, mutates it, and writes it back (or deletes it on completion).
type QuizSession struct {
	CallSID string    `json:"callSid"`
	Phase   QuizPhase `json:"phase"`

	// Asked maps each trait to the static questions already asked for it,
	// in order. It drives coverage balancing and prevents repeats.
	Asked   map[Trait][]string `json:"asked"`
	Answers []Answer           `json:"answers"`
	Current *CurrentQuestion   `json:"current,omitempty"`

	// RefinementQuestions is populated exactly once when the phase switches.
	RefinementQuestions []string `json:"refinementQuestions,omitempty"`
	RefinementIndex     int      `json:"refinementIndex"`
}

// NewQuizSession returns a fresh static-phase session for a call.
func NewQuizSession(callSID string) *QuizSession {
	asked := make(map[Trait][]string, len(Traits))
	for _, t := range Traits {
		asked[t] = nil
	}
	return &QuizSession{
		CallSID: callSID,
		Phase:   PhaseStatic,
		Asked:   asked,
	}
}

// StaticAnswerCount is the number of static-phase answers recorded so far.
func (s *QuizSession) StaticAnswerCount() int {
	total := 0
	for _, qs := range s.Asked {
		total += len(qs)
	}
	return total
}
