package game

// Phase is the state machine position of a game.
type Phase int

const (
	PhaseAwaitingQuestion Phase = iota
	PhaseQuestionActive
	PhaseAnswered
	PhaseLevelComplete
	PhaseGameComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingQuestion:
		return "awaiting_question"
	case PhaseQuestionActive:
		return "question_active"
	case PhaseAnswered:
		return "answered"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameComplete:
		return "game_complete"
	}
	return "unknown"
}

// State is a copy of the session counters at a point in time.
// Correct+Wrong+Skipped equals TotalAnswered once the answered question has advanced.
type State struct {
	Phase           Phase
	Level           int
	QuestionInLevel int
	TotalAnswered   int
	Correct         int
	Wrong           int
	Skipped         int
	TimeRemaining   int
	Answered        bool
	Saving          bool
	Saved           bool
}

func initialState(questionSeconds int) State {
	return State{
		Phase:           PhaseAwaitingQuestion,
		Level:           1,
		QuestionInLevel: 1,
		TimeRemaining:   questionSeconds,
	}
}

// ProgressPercent is how far through the 100-question run the current question is.
func (s State) ProgressPercent() int {
	return ((s.Level-1)*QuestionsPerLevel + s.QuestionInLevel) * 100 / QuestionsPerGame
}

// Accuracy is the share of the full game answered correctly, in percent.
func (s State) Accuracy() int {
	return s.Correct * 100 / QuestionsPerGame
}
