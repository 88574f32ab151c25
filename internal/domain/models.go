package domain

import (
	"sort"
	"time"
)

// Tier groups players by how recognisable they are.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
	TierExpert Tier = "expert"
)

// Tiers lists every tier in ascending difficulty.
var Tiers = []Tier{TierEasy, TierMedium, TierHard, TierExpert}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierEasy, TierMedium, TierHard, TierExpert:
		return true
	}
	return false
}

// Player is a guessable cricketer in the catalog.
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Jersey     int    `json:"jersey"`
	Hint       string `json:"hint"`
	Team       string `json:"team"`
	Difficulty Tier   `json:"difficulty"`
}

// ScoreSubmission is the body of POST /api/game-scores. Pointer fields
// distinguish omitted values from explicit zeroes.
type ScoreSubmission struct {
	PlayerName     *string `json:"playerName,omitempty"`
	Level          *int    `json:"level"`
	CorrectAnswers *int    `json:"correctAnswers,omitempty"`
	WrongAnswers   *int    `json:"wrongAnswers,omitempty"`
	SkippedAnswers *int    `json:"skippedAnswers,omitempty"`
}

// ScoreRecord is a persisted, immutable result of a finished game.
type ScoreRecord struct {
	ID             string    `json:"id"`
	PlayerName     *string   `json:"playerName"`
	Level          int       `json:"level"`
	CorrectAnswers int       `json:"correctAnswers"`
	WrongAnswers   int       `json:"wrongAnswers"`
	SkippedAnswers int       `json:"skippedAnswers"`
	CompletedAt    time.Time `json:"completedAt"`
}

// Leaderboard is a ranked snapshot of the best score records.
type Leaderboard struct {
	Entries   []ScoreRecord `json:"entries"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// RankScores orders records by correct answers descending. Ties go to the
// earlier finisher, then to the lower id so ordering is stable across stores.
func RankScores(records []ScoreRecord) {
	sort.Slice(records, func(i, j int) bool {
		return Ranks(records[i], records[j])
	})
}

// Ranks reports whether a ranks ahead of b.
func Ranks(a, b ScoreRecord) bool {
	if a.CorrectAnswers != b.CorrectAnswers {
		return a.CorrectAnswers > b.CorrectAnswers
	}
	if !a.CompletedAt.Equal(b.CompletedAt) {
		return a.CompletedAt.Before(b.CompletedAt)
	}
	return a.ID < b.ID
}
