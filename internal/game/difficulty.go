package game

import "jersey-quiz-service/internal/domain"

const (
	// QuestionsPerLevel is the number of questions asked before a level completes.
	QuestionsPerLevel = 5
	// MaxLevel is the last level; finishing it completes the game.
	MaxLevel = 20
	// QuestionsPerGame is the length of a full playthrough.
	QuestionsPerGame = QuestionsPerLevel * MaxLevel
	// DefaultQuestionSeconds is the per-question countdown budget.
	DefaultQuestionSeconds = 15
)

// TierForLevel maps a level to the tier its questions are drawn from.
// Levels below 1 are treated as easy and anything past 18 as expert.
func TierForLevel(level int) domain.Tier {
	switch {
	case level <= 5:
		return domain.TierEasy
	case level <= 12:
		return domain.TierMedium
	case level <= 18:
		return domain.TierHard
	default:
		return domain.TierExpert
	}
}
