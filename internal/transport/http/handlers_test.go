package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jersey-quiz-service/internal/app"
	"jersey-quiz-service/internal/catalog"
	"jersey-quiz-service/internal/domain"
	"jersey-quiz-service/internal/infra/memory"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T, scores app.ScoreStore) http.Handler {
	t.Helper()
	if scores == nil {
		scores = memory.NewScoreStore()
	}
	repo := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(catalog.Seed()), time.Minute)
	svc := app.NewService(repo, scores, app.WithLogger(discardLogger()))
	return NewRouter(svc, discardLogger(), RouterConfig{})
}

func TestListPlayers(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cricket-players", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var players []domain.Player
	if err := json.NewDecoder(rec.Body).Decode(&players); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(players) != 110 {
		t.Fatalf("expected 110 players, got %d", len(players))
	}
	if players[0].ID == "" || players[0].Name == "" || !players[0].Difficulty.Valid() {
		t.Fatalf("unexpected player: %+v", players[0])
	}
}

func TestGetPlayer(t *testing.T) {
	h := newTestRouter(t, nil)
	want := catalog.Seed()[3]

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cricket-players/"+want.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cricket-players/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestSaveScoreThenTopScores(t *testing.T) {
	h := newTestRouter(t, nil)

	for _, correct := range []int{10, 55, 30} {
		body := `{"playerName":"Ana","level":20,"correctAnswers":` + itoa(correct) + `,"wrongAnswers":1,"skippedAnswers":0}`
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/game-scores", strings.NewReader(body)))
		if rec.Code != http.StatusOK {
			t.Fatalf("save status = %d, body %s", rec.Code, rec.Body.String())
		}
		var created domain.ScoreRecord
		if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if created.ID == "" || created.CompletedAt.IsZero() || created.CorrectAnswers != correct {
			t.Fatalf("unexpected record: %+v", created)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/top-scores", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var top []domain.ScoreRecord
	if err := json.NewDecoder(rec.Body).Decode(&top); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(top) != 3 || top[0].CorrectAnswers != 55 || top[1].CorrectAnswers != 30 || top[2].CorrectAnswers != 10 {
		t.Fatalf("unexpected order: %+v", top)
	}
}

func TestSaveScoreRejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"level":`},
		{"missing level", `{"playerName":"Ana","correctAnswers":3}`},
		{"negative count", `{"level":2,"wrongAnswers":-1}`},
		{"wrong type", `{"level":"twenty"}`},
	}

	h := newTestRouter(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/game-scores", strings.NewReader(tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			var body ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Message != "Invalid score data" {
				t.Fatalf("message = %q", body.Message)
			}
		})
	}
}

func TestSaveScoreNullName(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/game-scores", bytes.NewBufferString(`{"level":4}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var raw map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v, ok := raw["playerName"]; !ok || v != nil {
		t.Fatalf("expected explicit null playerName, got %v (present=%v)", v, ok)
	}
	if raw["correctAnswers"] != float64(0) {
		t.Fatalf("expected correctAnswers default 0, got %v", raw["correctAnswers"])
	}
}

func TestStoreFailuresReturn500(t *testing.T) {
	h := newTestRouter(t, brokenStore{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/top-scores", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rec.Body.String(), "Failed to fetch top scores") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/game-scores", strings.NewReader(`{"level":1}`)))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("save status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/game-scores", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Fatalf("expected CORS allow origin header")
	}
}

type brokenStore struct{}

func (brokenStore) Create(context.Context, domain.ScoreRecord) error { return errors.New("disk full") }

func (brokenStore) Get(context.Context, string) (domain.ScoreRecord, error) {
	return domain.ScoreRecord{}, errors.New("disk full")
}

func (brokenStore) Top(context.Context, int) ([]domain.ScoreRecord, error) {
	return nil, errors.New("disk full")
}

func itoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}
