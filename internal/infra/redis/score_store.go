package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"jersey-quiz-service/internal/domain"
)

// ScoreStore keeps score records in Redis.
// Records are stored as:  HSET scores:records {id} {json}
// Ranking is stored as:   ZADD scores:ranking {correctAnswers} {id}
type ScoreStore struct {
	client *redis.Client
}

const (
	recordsKey = "scores:records"
	rankingKey = "scores:ranking"
)

func NewScoreStore(client *redis.Client) *ScoreStore {
	return &ScoreStore{client: client}
}

func (s *ScoreStore) Create(ctx context.Context, record domain.ScoreRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode score: %w", err)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, recordsKey, record.ID, raw)
		pipe.ZAdd(ctx, rankingKey, redis.Z{Score: float64(record.CorrectAnswers), Member: record.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("store score: %w", err)
	}
	return nil
}

func (s *ScoreStore) Get(ctx context.Context, id string) (domain.ScoreRecord, error) {
	raw, err := s.client.HGet(ctx, recordsKey, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ScoreRecord{}, domain.ErrScoreNotFound
	}
	if err != nil {
		return domain.ScoreRecord{}, fmt.Errorf("get score: %w", err)
	}
	var record domain.ScoreRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return domain.ScoreRecord{}, fmt.Errorf("decode score: %w", err)
	}
	return record, nil
}

// Top returns the best records. Redis orders equal scores by member, so every
// record tied with the cut-off score is fetched and ranked here.
func (s *ScoreStore) Top(ctx context.Context, limit int) ([]domain.ScoreRecord, error) {
	if limit <= 0 {
		return []domain.ScoreRecord{}, nil
	}
	head, err := s.client.ZRevRangeWithScores(ctx, rankingKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("rank scores: %w", err)
	}
	if len(head) == 0 {
		return []domain.ScoreRecord{}, nil
	}

	cutoff := head[len(head)-1].Score
	ids, err := s.client.ZRangeByScore(ctx, rankingKey, &redis.ZRangeBy{
		Min: strconv.FormatFloat(cutoff, 'f', -1, 64),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("rank scores: %w", err)
	}

	values, err := s.client.HMGet(ctx, recordsKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	records := make([]domain.ScoreRecord, 0, len(values))
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		var record domain.ScoreRecord
		if err := json.Unmarshal([]byte(str), &record); err != nil {
			return nil, fmt.Errorf("decode score: %w", err)
		}
		records = append(records, record)
	}

	domain.RankScores(records)
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
