package memory

import (
	"context"
	"sync"

	"jersey-quiz-service/internal/domain"
)

// ScoreStore is an in-memory implementation of app.ScoreStore.
type ScoreStore struct {
	mu     sync.RWMutex
	scores map[string]domain.ScoreRecord
}

func NewScoreStore() *ScoreStore {
	return &ScoreStore{
		scores: make(map[string]domain.ScoreRecord),
	}
}

func (s *ScoreStore) Create(_ context.Context, record domain.ScoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[record.ID] = record
	return nil
}

func (s *ScoreStore) Get(_ context.Context, id string) (domain.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.scores[id]
	if !ok {
		return domain.ScoreRecord{}, domain.ErrScoreNotFound
	}
	return record, nil
}

func (s *ScoreStore) Top(_ context.Context, limit int) ([]domain.ScoreRecord, error) {
	s.mu.RLock()
	records := make([]domain.ScoreRecord, 0, len(s.scores))
	for _, record := range s.scores {
		records = append(records, record)
	}
	s.mu.RUnlock()

	domain.RankScores(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
