package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"jersey-quiz-service/internal/app"
	"jersey-quiz-service/internal/catalog"
	"jersey-quiz-service/internal/client"
	"jersey-quiz-service/internal/config"
	"jersey-quiz-service/internal/game"
	"jersey-quiz-service/internal/infra/memory"
	transport "jersey-quiz-service/internal/transport/http"
)

func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(catalog.Seed()), time.Minute)
	svc := app.NewService(repo, memory.NewScoreStore(), app.WithLogger(logger))
	server := httptest.NewServer(transport.NewRouter(svc, logger, transport.RouterConfig{}))
	t.Cleanup(server.Close)
	return server
}

func testConfig(apiURL string) config.Config {
	cfg := config.Default()
	cfg.Game.APIURL = apiURL
	cfg.Game.RevealDelay = "1ms"
	cfg.Game.QuestionSeconds = 60
	return cfg
}

// syncBuffer lets the observer goroutines and the test share one buffer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitForPhase(t *testing.T, g *game.Game, want ...game.Phase) game.State {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		st := g.Snapshot()
		for _, p := range want {
			if st.Phase == p {
				return st
			}
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for phase %v, at %s", want, g.Snapshot().Phase)
	return game.State{}
}

func TestSessionPlaysAndSavesScore(t *testing.T) {
	server := newTestAPI(t)
	api := client.New(server.URL, nil)
	ctx := context.Background()

	players, err := api.Players(ctx)
	if err != nil {
		t.Fatalf("players: %v", err)
	}
	out := &syncBuffer{}
	s := newSession(testConfig(server.URL), game.NewCatalog(players), api, out)
	defer s.game.Close()
	s.game.Start()

	for {
		st := waitForPhase(t, s.game, game.PhaseQuestionActive, game.PhaseLevelComplete, game.PhaseGameComplete)
		if st.Phase == game.PhaseGameComplete {
			break
		}
		if st.Phase == game.PhaseLevelComplete {
			s.handle(ctx, "")
			continue
		}
		if st.Level == 1 && st.QuestionInLevel == 1 {
			// non-numeric input is rejected without answering
			s.handle(ctx, "banana")
			if s.game.Snapshot().Answered {
				t.Fatalf("invalid input must not answer")
			}
		}
		s.handle(ctx, "s")
		waitForPhase(t, s.game, game.PhaseQuestionActive, game.PhaseLevelComplete, game.PhaseGameComplete)
	}

	st := s.game.Snapshot()
	if st.Skipped != game.QuestionsPerGame || st.Level != game.MaxLevel {
		t.Fatalf("unexpected final state: %+v", st)
	}

	s.handle(ctx, "   ")
	if s.game.Snapshot().Saved {
		t.Fatalf("blank name must not save")
	}
	if !strings.Contains(out.String(), "Please enter your name") {
		t.Fatalf("expected name prompt, got:\n%s", out.String())
	}

	s.handle(ctx, "Ana")
	if !s.game.Snapshot().Saved {
		t.Fatalf("expected score saved")
	}
	output := out.String()
	for _, want := range []string{"Skipped!", "Game complete!", "Score saved!", "Top scores", "Ana"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q", want)
		}
	}

	top, err := api.TopScores(ctx)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(top) != 1 || top[0].SkippedAnswers != 100 || top[0].Level != 20 || *top[0].PlayerName != "Ana" {
		t.Fatalf("unexpected saved score: %+v", top)
	}
}

func TestSessionQuitAndRestart(t *testing.T) {
	server := newTestAPI(t)
	api := client.New(server.URL, nil)
	players, err := api.Players(context.Background())
	if err != nil {
		t.Fatalf("players: %v", err)
	}
	s := newSession(testConfig(server.URL), game.NewCatalog(players), api, io.Discard)
	defer s.game.Close()
	s.game.Start()

	q := s.game.Question()
	s.handle(context.Background(), strconv.Itoa(q.CorrectIndex+1))
	if s.game.Snapshot().Correct != 1 {
		t.Fatalf("expected correct answer counted")
	}

	s.handle(context.Background(), "r")
	st := s.game.Snapshot()
	if st.Correct != 0 || st.Level != 1 || st.QuestionInLevel != 1 {
		t.Fatalf("restart did not reset: %+v", st)
	}
	if !s.handle(context.Background(), "q") {
		t.Fatalf("expected q to quit")
	}
}

func TestRunPlayQuits(t *testing.T) {
	server := newTestAPI(t)
	out := &syncBuffer{}

	err := runPlay(context.Background(), testConfig(server.URL), "", strings.NewReader("q\n"), out)
	if err != nil {
		t.Fatalf("run play: %v", err)
	}
	if !strings.Contains(out.String(), "Who wears jersey #") {
		t.Fatalf("expected a question to be shown, got:\n%s", out.String())
	}
}

func TestRunPlayUnreachableAPI(t *testing.T) {
	server := newTestAPI(t)
	url := server.URL
	server.Close()

	if err := runPlay(context.Background(), testConfig(url), "", strings.NewReader(""), io.Discard); err == nil {
		t.Fatalf("expected error when API is down")
	}
}

