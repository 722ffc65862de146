package ivr

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"apnidisha/internal/cache"
	"apnidisha/internal/model"
	"apnidisha/internal/quiz"
	"apnidisha/internal/repository"
	"apnidisha/internal/scoring"
	"apnidisha/internal/service"
)

// TurnPath is the webhook Twilio posts every turn to. Gathers and redirects
// must point back here so the state machine sees each keypress.
const TurnPath = "/api/voice/question"

const repeatDigit = "9"

// Monitor receives turn events for live admin dashboards. Implementations
// must not block.
type Monitor interface {
	TurnEvent(event MonitorEvent)
}

// MonitorEvent describes one observable step of a call.
type MonitorEvent struct {
	CallSID   string          `json:"callSid"`
	Phase     model.QuizPhase `json:"phase"`
	Question  string          `json:"question,omitempty"`
	Rating    int             `json:"rating,omitempty"`
	Answers   int             `json:"answers"`
	Completed bool            `json:"completed"`
}

// Controller is the per-turn state machine. Telephony turns are independent
// request/response cycles, so the controller holds no per-call state itself:
// everything lives in the session cache between turns.
type Controller struct {
	sessions    cache.SessionCache
	selector    *quiz.Selector
	refiner     *service.RefinementService
	recommender *service.RecommendationService
	results     repository.ResultRepo // optional
	monitor     Monitor               // optional

	staticThreshold int
	gatherTimeout   int
}

// NewController creates the turn controller. results and monitor may be nil.
func NewController(
	sessions cache.SessionCache,
	selector *quiz.Selector,
	refiner *service.RefinementService,
	recommender *service.RecommendationService,
	staticThreshold int,
	gatherTimeout int,
) *Controller {
	return &Controller{
		sessions:        sessions,
		selector:        selector,
		refiner:         refiner,
		recommender:     recommender,
		staticThreshold: staticThreshold,
		gatherTimeout:   gatherTimeout,
	}
}

// SetResultRepo enables best-effort archiving of completed quizzes.
func (c *Controller) SetResultRepo(repo repository.ResultRepo) {
	c.results = repo
}

// SetMonitor enables turn-event broadcasting.
func (c *Controller) SetMonitor(m Monitor) {
	c.monitor = m
}

// StartCall initializes a session and chains into the first turn.
func (c *Controller) StartCall(ctx context.Context, callSID string) *Response {
	session := model.NewQuizSession(callSID)
	if err := c.sessions.Set(ctx, session); err != nil {
		// The turn handler re-initializes unknown sessions, so keep going.
		log.Printf("call %s: failed to store fresh session: %v", callSID, err)
	}

	resp := &Response{}
	resp.Say("Welcome to Apni Disha career quiz!")
	resp.Say("Rate each statement from 1 strongly disagree to 5 strongly agree.")
	resp.Say("To repeat a question, press 9.")
	resp.Redirect(TurnPath)
	return resp
}

// HandleTurn runs one request/response turn of the quiz. It always returns
// a renderable response: input errors re-prompt, reasoning-service failures
// were already absorbed by the generators, and store errors degrade to a
// fresh session rather than a dead call.
func (c *Controller) HandleTurn(ctx context.Context, callSID, digits string) *Response {
	session, err := c.sessions.Get(ctx, callSID)
	if err != nil {
		log.Printf("call %s: session load failed: %v", callSID, err)
	}
	if session == nil {
		session = model.NewQuizSession(callSID)
	}

	digits = strings.TrimSpace(digits)
	resp := &Response{}

	// Repeat request: re-render the outstanding question verbatim. With no
	// outstanding question there is nothing to repeat; continue normally.
	if digits == repeatDigit {
		if session.Current != nil {
			resp.Say("Repeating the question.")
			resp.Gather(TurnPath, c.gatherTimeout,
				session.Current.Question,
				"Press 1 to 5 to rate, or 9 to repeat again.")
			resp.Redirect(TurnPath)
			return resp
		}
		resp.Say("No question to repeat. Continuing.")
	}

	// Invalid input: announce and re-ask the same question unchanged.
	if digits != "" && digits != repeatDigit && !isRatingDigit(digits) {
		resp.Say("Invalid input. Please press 1 to 5 to answer, or 9 to repeat the question.")
		if session.Current != nil {
			resp.Gather(TurnPath, c.gatherTimeout,
				session.Current.Question,
				"Press 1 to 5 to rate.")
			resp.Redirect(TurnPath)
			return resp
		}
	}

	// Valid rating for an outstanding question: record the answer.
	if isRatingDigit(digits) && session.Current != nil {
		answer := model.Answer{
			Trait:    session.Current.Trait,
			Question: session.Current.Question,
			Rating:   int(digits[0] - '0'),
		}
		session.Answers = append(session.Answers, answer)
		if session.Phase == model.PhaseStatic {
			session.Asked[answer.Trait] = append(session.Asked[answer.Trait], answer.Question)
		}
		session.Current = nil
		if session.Phase == model.PhaseRefinement {
			session.RefinementIndex++
		}
		c.emit(MonitorEvent{
			CallSID:  callSID,
			Phase:    session.Phase,
			Question: answer.Question,
			Rating:   answer.Rating,
			Answers:  len(session.Answers),
		})
	}

	// Static coverage reached: switch to refinement, exactly once.
	if session.Phase == model.PhaseStatic && session.StaticAnswerCount() >= c.staticThreshold {
		session.Phase = model.PhaseRefinement
		session.RefinementQuestions = c.refiner.Generate(ctx, session.Answers)
		session.RefinementIndex = 0
		log.Printf("call %s: switching to refinement after %d static answers", callSID, session.StaticAnswerCount())
		resp.Say("Great! Now five final personalized questions for the best accuracy.")
	}

	if session.Phase == model.PhaseRefinement {
		if session.RefinementIndex < len(session.RefinementQuestions) {
			return c.askRefinement(ctx, session, resp)
		}
		return c.finish(ctx, session, resp, "Thank you! Your quiz is complete.")
	}

	// Static phase: pick the next question, or end early if the bank is out.
	trait, question, ok := c.selector.Next(session.Asked)
	if !ok {
		return c.finish(ctx, session, resp, "Quiz complete!")
	}
	session.Current = &model.CurrentQuestion{Trait: trait, Question: question}
	resp.Gather(TurnPath, c.gatherTimeout,
		question,
		"Press 1 strongly disagree, 5 strongly agree, or 9 to repeat.")
	resp.Redirect(TurnPath)
	c.persist(ctx, session)
	return resp
}

func (c *Controller) askRefinement(ctx context.Context, session *model.QuizSession, resp *Response) *Response {
	question := session.RefinementQuestions[session.RefinementIndex]
	session.Current = &model.CurrentQuestion{Trait: model.TraitRefine, Question: question}
	resp.Gather(TurnPath, c.gatherTimeout,
		sprintfQuestion(session.RefinementIndex+1, len(session.RefinementQuestions), question),
		"Press 1 to 5 to rate how much you agree, or 9 to repeat.")
	resp.Redirect(TurnPath)
	c.persist(ctx, session)
	return resp
}

func (c *Controller) finish(ctx context.Context, session *model.QuizSession, resp *Response, closing string) *Response {
	raw, counts := scoring.Accumulate(session.Answers)
	scores := scoring.Normalize(raw, counts)
	result := c.recommender.Generate(ctx, session.Answers, scores)

	resp.Say(closing)
	resp.Say(result)
	resp.Say("Visit apnidisha.com for more. Goodbye!")

	c.archive(ctx, session, scores, result)
	if err := c.sessions.Delete(ctx, session.CallSID); err != nil {
		log.Printf("call %s: session delete failed: %v", session.CallSID, err)
	}
	c.emit(MonitorEvent{
		CallSID:   session.CallSID,
		Phase:     session.Phase,
		Answers:   len(session.Answers),
		Completed: true,
	})
	return resp
}

// archive stores the completed quiz best-effort; a result we cannot save is
// logged, never spoken.
func (c *Controller) archive(ctx context.Context, session *model.QuizSession, scores map[model.Trait]float64, summary string) {
	if c.results == nil {
		return
	}
	result := &model.QuizResult{
		ID:          uuid.New().String(),
		CallSID:     session.CallSID,
		Answers:     session.Answers,
		Scores:      scores,
		TopTraits:   scoring.TopTraits(scores, 3),
		Summary:     summary,
		CompletedAt: time.Now(),
	}
	if _, err := c.results.Save(ctx, result); err != nil {
		log.Printf("call %s: failed to archive quiz result: %v", session.CallSID, err)
	}
}

func (c *Controller) persist(ctx context.Context, session *model.QuizSession) {
	if err := c.sessions.Set(ctx, session); err != nil {
		log.Printf("call %s: session store failed: %v", session.CallSID, err)
	}
	if session.Current != nil {
		c.emit(MonitorEvent{
			CallSID:  session.CallSID,
			Phase:    session.Phase,
			Question: session.Current.Question,
			Answers:  len(session.Answers),
		})
	}
}

func (c *Controller) emit(event MonitorEvent) {
	if c.monitor != nil {
		c.monitor.TurnEvent(event)
	}
}

func sprintfQuestion(n, total int, text string) string {
	return fmt.Sprintf("Question %d of %d: %s", n, total, text)
}

func isRatingDigit(digits string) bool {
	return len(digits) == 1 && digits[0] >= '1' && digits[0] <= '5'
}
