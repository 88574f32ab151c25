package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jersey-quiz-service/internal/app"
	"jersey-quiz-service/internal/catalog"
	"jersey-quiz-service/internal/domain"
	"jersey-quiz-service/internal/infra/memory"
)

func newService(t *testing.T, opts ...app.ServiceOption) *app.Service {
	t.Helper()
	repo := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(catalog.Seed()), time.Minute)
	return app.NewService(repo, memory.NewScoreStore(), opts...)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestPlayersReturnsCatalog(t *testing.T) {
	svc := newService(t)
	players, err := svc.Players(context.Background())
	if err != nil {
		t.Fatalf("players: %v", err)
	}
	if len(players) != 110 {
		t.Fatalf("expected 110 players, got %d", len(players))
	}
}

func TestPlayersStoreUnavailable(t *testing.T) {
	svc := app.NewService(failingCatalog{}, memory.NewScoreStore())
	if _, err := svc.Players(context.Background()); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestSaveScoreAndTopScoresOrdering(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, correct := range []int{10, 55, 30} {
		_, err := svc.SaveScore(ctx, domain.ScoreSubmission{
			PlayerName:     strPtr("Ana"),
			Level:          intPtr(20),
			CorrectAnswers: intPtr(correct),
		})
		if err != nil {
			t.Fatalf("save score: %v", err)
		}
	}

	top, err := svc.TopScores(ctx)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(top) != 3 || top[0].CorrectAnswers != 55 || top[1].CorrectAnswers != 30 || top[2].CorrectAnswers != 10 {
		t.Fatalf("unexpected order: %+v", top)
	}
}

func TestSaveScoreAssignsIDAndTimestamp(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	svc := newService(t, app.WithClock(func() time.Time { return now }))

	rec, err := svc.SaveScore(context.Background(), domain.ScoreSubmission{
		PlayerName:     strPtr("  Ana  "),
		Level:          intPtr(20),
		CorrectAnswers: intPtr(55),
		WrongAnswers:   intPtr(30),
		SkippedAnswers: intPtr(15),
	})
	if err != nil {
		t.Fatalf("save score: %v", err)
	}
	if rec.ID == "" {
		t.Fatalf("expected id")
	}
	if !rec.CompletedAt.Equal(now) {
		t.Fatalf("expected completedAt %v, got %v", now, rec.CompletedAt)
	}
	if rec.PlayerName == nil || *rec.PlayerName != "Ana" {
		t.Fatalf("expected trimmed name, got %v", rec.PlayerName)
	}
	if rec.Level != 20 || rec.CorrectAnswers != 55 || rec.WrongAnswers != 30 || rec.SkippedAnswers != 15 {
		t.Fatalf("unexpected tallies: %+v", rec)
	}
}

func TestSaveScoreDefaults(t *testing.T) {
	svc := newService(t)
	rec, err := svc.SaveScore(context.Background(), domain.ScoreSubmission{
		PlayerName: strPtr("   "),
		Level:      intPtr(3),
	})
	if err != nil {
		t.Fatalf("save score: %v", err)
	}
	if rec.PlayerName != nil {
		t.Fatalf("expected blank name stored as null, got %q", *rec.PlayerName)
	}
	if rec.CorrectAnswers != 0 || rec.WrongAnswers != 0 || rec.SkippedAnswers != 0 {
		t.Fatalf("expected zero defaults, got %+v", rec)
	}
}

func TestSaveScoreValidation(t *testing.T) {
	cases := []struct {
		name string
		sub  domain.ScoreSubmission
	}{
		{"missing level", domain.ScoreSubmission{CorrectAnswers: intPtr(3)}},
		{"zero level", domain.ScoreSubmission{Level: intPtr(0)}},
		{"negative correct", domain.ScoreSubmission{Level: intPtr(1), CorrectAnswers: intPtr(-1)}},
		{"negative wrong", domain.ScoreSubmission{Level: intPtr(1), WrongAnswers: intPtr(-2)}},
		{"negative skipped", domain.ScoreSubmission{Level: intPtr(1), SkippedAnswers: intPtr(-3)}},
	}

	svc := newService(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SaveScore(context.Background(), tc.sub); !errors.Is(err, domain.ErrInvalidScore) {
				t.Fatalf("expected ErrInvalidScore, got %v", err)
			}
		})
	}

	top, err := svc.TopScores(context.Background())
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(top) != 0 {
		t.Fatalf("invalid submissions must not be stored, got %d", len(top))
	}
}

func TestTopScoresLimit(t *testing.T) {
	svc := newService(t, app.WithTopLimit(3))
	for i := 0; i < 5; i++ {
		if _, err := svc.SaveScore(context.Background(), domain.ScoreSubmission{Level: intPtr(1), CorrectAnswers: intPtr(i)}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	top, err := svc.TopScores(context.Background())
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(top) != 3 || top[0].CorrectAnswers != 4 {
		t.Fatalf("unexpected top: %+v", top)
	}
}

func TestSubscribeReceivesUpdates(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	ch, cancel, err := svc.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer cancel()

	initial := <-ch
	if len(initial.Entries) != 0 {
		t.Fatalf("expected empty initial board, got %d", len(initial.Entries))
	}

	if _, err := svc.SaveScore(ctx, domain.ScoreSubmission{PlayerName: strPtr("Ana"), Level: intPtr(20), CorrectAnswers: intPtr(42)}); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case lb := <-ch:
		if len(lb.Entries) != 1 || lb.Entries[0].CorrectAnswers != 42 {
			t.Fatalf("unexpected board: %+v", lb)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for leaderboard update")
	}

	cancel()
	if _, ok := <-ch; ok {
		t.Fatalf("expected channel closed after cancel")
	}
}

type failingCatalog struct{}

func (failingCatalog) AllPlayers(context.Context) ([]domain.Player, error) {
	return nil, errors.New("connection refused")
}

func TestPlayerLookup(t *testing.T) {
	svc := newService(t)
	want := catalog.Seed()[0]

	got, err := svc.Player(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if _, err := svc.Player(context.Background(), "unknown"); !errors.Is(err, domain.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}
