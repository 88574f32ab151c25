package game

import "jersey-quiz-service/internal/domain"

// EventKind identifies what changed in a game.
type EventKind int

const (
	EventQuestion EventKind = iota + 1
	EventTick
	EventRevealed
	EventLevelComplete
	EventGameComplete
	EventNameRequired
	EventScoreSaved
	EventSaveFailed
)

func (k EventKind) String() string {
	switch k {
	case EventQuestion:
		return "question"
	case EventTick:
		return "tick"
	case EventRevealed:
		return "revealed"
	case EventLevelComplete:
		return "level_complete"
	case EventGameComplete:
		return "game_complete"
	case EventNameRequired:
		return "name_required"
	case EventScoreSaved:
		return "score_saved"
	case EventSaveFailed:
		return "save_failed"
	}
	return "unknown"
}

// Outcome is how a question was resolved.
type Outcome int

const (
	OutcomeCorrect Outcome = iota + 1
	OutcomeWrong
	OutcomeSkipped
	OutcomeTimeout
)

// Message is the notice shown to the player when the answer is revealed.
func (o Outcome) Message(correctAnswer string) string {
	switch o {
	case OutcomeCorrect:
		return "Correct! Great job!"
	case OutcomeWrong:
		return "Wrong! Correct answer: " + correctAnswer
	case OutcomeSkipped:
		return "Skipped! Correct answer: " + correctAnswer
	case OutcomeTimeout:
		return "Time up! Correct answer: " + correctAnswer
	}
	return ""
}

// Event is delivered to the observer after each transition.
type Event struct {
	Kind          EventKind
	State         State
	Question      Question
	Outcome       Outcome
	CorrectAnswer string
	Record        *domain.ScoreRecord
	Err           error
}
