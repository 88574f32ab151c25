package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"jersey-quiz-service/internal/domain"
)

// DefaultTopLimit is how many records the leaderboard returns.
const DefaultTopLimit = 10

// CatalogRepository loads the player catalog (from cache/backing store).
type CatalogRepository interface {
	AllPlayers(ctx context.Context) ([]domain.Player, error)
}

// ScoreStore persists finished games (in-memory, Redis, SQL).
type ScoreStore interface {
	Create(ctx context.Context, record domain.ScoreRecord) error
	Get(ctx context.Context, id string) (domain.ScoreRecord, error)
	Top(ctx context.Context, limit int) ([]domain.ScoreRecord, error)
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

func WithTopLimit(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.topLimit = n
		}
	}
}

// WithClock is used by tests for deterministic timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// Service contains the server-side use cases: catalog listing, score saving
// and the ranked leaderboard. It never enforces game rules; the client's
// tallies are stored as submitted.
type Service struct {
	catalog  CatalogRepository
	scores   ScoreStore
	topLimit int
	now      func() time.Time
	logger   *slog.Logger
	board    *leaderboardHub
}

func NewService(catalog CatalogRepository, scores ScoreStore, opts ...ServiceOption) *Service {
	s := &Service{
		catalog:  catalog,
		scores:   scores,
		topLimit: DefaultTopLimit,
		now:      time.Now,
		logger:   slog.Default(),
		board:    newLeaderboardHub(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Players returns every player in the catalog.
func (s *Service) Players(ctx context.Context) ([]domain.Player, error) {
	players, err := s.catalog.AllPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load players: %v", domain.ErrStoreUnavailable, err)
	}
	return players, nil
}

// Player looks a single catalog entry up by id.
func (s *Service) Player(ctx context.Context, id string) (domain.Player, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return domain.Player{}, err
	}
	for _, p := range players {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Player{}, domain.ErrPlayerNotFound
}

// SaveScore validates and stores a finished game, then pushes the new
// leaderboard to subscribers.
func (s *Service) SaveScore(ctx context.Context, submission domain.ScoreSubmission) (domain.ScoreRecord, error) {
	record, err := newScoreRecord(submission)
	if err != nil {
		return domain.ScoreRecord{}, err
	}
	record.ID = uuid.NewString()
	record.CompletedAt = s.now().UTC()

	if err := s.scores.Create(ctx, record); err != nil {
		return domain.ScoreRecord{}, fmt.Errorf("save score: %w", err)
	}

	if top, err := s.scores.Top(ctx, s.topLimit); err != nil {
		s.logger.Error("refresh leaderboard failed", "error", err)
	} else {
		s.board.broadcast(domain.Leaderboard{Entries: top, UpdatedAt: s.now().UTC()})
	}
	return record, nil
}

// TopScores returns the best records, most correct answers first.
func (s *Service) TopScores(ctx context.Context) ([]domain.ScoreRecord, error) {
	top, err := s.scores.Top(ctx, s.topLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: load top scores: %v", domain.ErrStoreUnavailable, err)
	}
	return top, nil
}

// Subscribe returns a channel that receives leaderboard snapshots, starting
// with the current one. The caller must invoke the returned cancel function to avoid leaks.
func (s *Service) Subscribe(ctx context.Context) (<-chan domain.Leaderboard, func(), error) {
	top, err := s.TopScores(ctx)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := s.board.subscribe(domain.Leaderboard{Entries: top, UpdatedAt: s.now().UTC()})
	return ch, cancel, nil
}

// newScoreRecord applies the submission schema: level is required and
// positive, tallies default to zero and may not be negative, and a blank
// player name is stored as null.
func newScoreRecord(sub domain.ScoreSubmission) (domain.ScoreRecord, error) {
	if sub.Level == nil {
		return domain.ScoreRecord{}, fmt.Errorf("%w: level is required", domain.ErrInvalidScore)
	}
	if *sub.Level < 1 {
		return domain.ScoreRecord{}, fmt.Errorf("%w: level must be at least 1", domain.ErrInvalidScore)
	}

	record := domain.ScoreRecord{Level: *sub.Level}
	counts := []struct {
		name string
		in   *int
		out  *int
	}{
		{"correctAnswers", sub.CorrectAnswers, &record.CorrectAnswers},
		{"wrongAnswers", sub.WrongAnswers, &record.WrongAnswers},
		{"skippedAnswers", sub.SkippedAnswers, &record.SkippedAnswers},
	}
	for _, c := range counts {
		if c.in == nil {
			continue
		}
		if *c.in < 0 {
			return domain.ScoreRecord{}, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidScore, c.name)
		}
		*c.out = *c.in
	}

	if sub.PlayerName != nil {
		if name := strings.TrimSpace(*sub.PlayerName); name != "" {
			record.PlayerName = &name
		}
	}
	return record, nil
}
