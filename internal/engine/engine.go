package engine

import (
	"github.com/amahdy/quizdrill/internal/bank"
)

// Phase is the lifecycle phase of a test session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseInProgress:
		return "in progress"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// Mode is the per-question sub-mode while a session is in progress.
type Mode int

const (
	// ModeAwaitingAnswer means the current question has not been
	// answered yet.
	ModeAwaitingAnswer Mode = iota

	// ModeAnswered means the current question carries a recorded
	// selection and feedback is being shown.
	ModeAnswered
)

// AnswerRecord is the immutable outcome of answering one question.
// Once recorded it is never rewritten; revisiting a question only
// replays it.
type AnswerRecord struct {
	// Selected is the option key the learner chose.
	Selected bank.OptionKey

	// Correct reports whether Selected matched the question's key.
	Correct bool
}

// Engine drives a single test session over a fixed question list.
// It holds no persistence and no UI concerns; callers read state via
// Snapshot and persist results after PhaseCompleted.
type Engine struct {
	questions []bank.Question
	phase     Phase
	index     int
	mode      Mode

	// answers maps question index to its recorded outcome.
	answers map[int]AnswerRecord

	correctCount int
}

// New builds an engine over the given questions. The list may be empty;
// Start reports that as ErrNoQuestions so the caller can show a
// distinct empty-bank state.
func New(questions []bank.Question) *Engine {
	return &Engine{
		questions: questions,
		phase:     PhaseNotStarted,
		answers:   make(map[int]AnswerRecord),
	}
}

// Start moves the session from NotStarted to InProgress at the first
// question, awaiting an answer.
func (e *Engine) Start() error {
	if e.phase != PhaseNotStarted {
		return invalidTransition("start", e.phase, "session already started")
	}
	if len(e.questions) == 0 {
		return ErrNoQuestions
	}
	e.phase = PhaseInProgress
	e.index = 0
	e.mode = ModeAwaitingAnswer
	return nil
}

// SubmitAnswer records the learner's selection for the current
// question and scores it exactly once. Submitting again on the same
// question is a contract violation and never changes the score.
func (e *Engine) SubmitAnswer(key bank.OptionKey) (bool, error) {
	if e.phase != PhaseInProgress {
		return false, invalidTransition("submit answer", e.phase, "no question is active")
	}
	if e.mode == ModeAnswered {
		return false, invalidTransition("submit answer", e.phase, "current question already answered")
	}

	q := e.questions[e.index]
	if q.OptionIndex(key) < 0 {
		return false, invalidTransition("submit answer", e.phase, "selection is not an option of the current question")
	}

	correct := key == q.CorrectKey
	e.answers[e.index] = AnswerRecord{Selected: key, Correct: correct}
	if correct {
		e.correctCount++
	}
	e.mode = ModeAnswered
	return correct, nil
}

// Advance moves to the next question, or to PhaseCompleted when the
// current question is the last one. The current question must have
// been answered. Landing on a question answered earlier restores its
// recorded selection with sub-mode answered.
func (e *Engine) Advance() error {
	if e.phase != PhaseInProgress {
		return invalidTransition("advance", e.phase, "no session in progress")
	}
	if e.mode != ModeAnswered {
		return invalidTransition("advance", e.phase, "current question not answered")
	}

	if e.index == len(e.questions)-1 {
		e.phase = PhaseCompleted
		return nil
	}

	e.index++
	if _, ok := e.answers[e.index]; ok {
		e.mode = ModeAnswered
	} else {
		e.mode = ModeAwaitingAnswer
	}
	return nil
}

// Retreat moves back to the previous question, restoring its recorded
// selection and sub-mode without re-scoring anything.
func (e *Engine) Retreat() error {
	if e.phase != PhaseInProgress {
		return invalidTransition("retreat", e.phase, "no session in progress")
	}
	if e.index == 0 {
		return invalidTransition("retreat", e.phase, "already at the first question")
	}

	e.index--
	// A question behind the cursor has always been answered.
	e.mode = ModeAnswered
	return nil
}

// Restart discards all recorded answers and begins the same question
// list again from the first question. Valid once a session has been
// started, including after completion.
func (e *Engine) Restart() error {
	if e.phase == PhaseNotStarted {
		return invalidTransition("restart", e.phase, "session never started")
	}
	e.phase = PhaseInProgress
	e.index = 0
	e.mode = ModeAwaitingAnswer
	e.answers = make(map[int]AnswerRecord)
	e.correctCount = 0
	return nil
}

// Snapshot is a read-only view of the engine for rendering and for
// building the end-of-session report.
type Snapshot struct {
	Phase          Phase
	Mode           Mode
	QuestionIndex  int
	TotalQuestions int
	CorrectCount   int

	// Question is the current question. Zero-valued when the session
	// has not started or the list is empty.
	Question bank.Question

	// Selection is the recorded answer for the current question;
	// Answered reports whether one exists.
	Selection bank.OptionKey
	Answered  bool
}

// Snapshot returns the current view of the session. It never mutates
// engine state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Phase:          e.phase,
		Mode:           e.mode,
		QuestionIndex:  e.index,
		TotalQuestions: len(e.questions),
		CorrectCount:   e.correctCount,
	}
	if len(e.questions) > 0 && e.index < len(e.questions) {
		s.Question = e.questions[e.index]
	}
	if rec, ok := e.answers[e.index]; ok {
		s.Selection = rec.Selected
		s.Answered = true
	}
	return s
}

// Questions returns the session's question list in order.
func (e *Engine) Questions() []bank.Question {
	return e.questions
}

// Record returns the recorded outcome for the question at index i.
func (e *Engine) Record(i int) (AnswerRecord, bool) {
	rec, ok := e.answers[i]
	return rec, ok
}
