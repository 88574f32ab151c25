package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"jersey-quiz-service/internal/domain"
)

func TestSubmitScore(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method != http.MethodPost || r.URL.Path != "/api/game-scores" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var sub domain.ScoreSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			t.Errorf("decode: %v", err)
		}
		if sub.PlayerName == nil || *sub.PlayerName != "Ann" || *sub.Level != 20 || *sub.CorrectAnswers != 55 {
			t.Errorf("unexpected submission %+v", sub)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.ScoreRecord{ID: "s1", PlayerName: sub.PlayerName, Level: *sub.Level, CorrectAnswers: *sub.CorrectAnswers})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	rec, err := c.SubmitScore(context.Background(), "  Ann ", 20, 55, 30, 15)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.ID != "s1" || rec.CorrectAnswers != 55 {
		t.Fatalf("unexpected record %+v", rec)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one request, got %d", calls.Load())
	}
}

func TestSubmitScoreBlankNameSendsNothing(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	for _, name := range []string{"", "   "} {
		if _, err := c.SubmitScore(context.Background(), name, 20, 1, 2, 3); !errors.Is(err, domain.ErrNameRequired) {
			t.Fatalf("name %q: expected ErrNameRequired, got %v", name, err)
		}
	}
	if calls.Load() != 0 {
		t.Fatalf("blank names must not reach the server")
	}
}

func TestSubmitErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"validation", http.StatusBadRequest, domain.ErrInvalidScore},
		{"server error", http.StatusInternalServerError, domain.ErrSaveFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"message":"nope"}`))
			}))
			defer srv.Close()

			_, err := New(srv.URL, srv.Client()).SubmitScore(context.Background(), "Ann", 1, 0, 0, 0)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	if _, err := New(url, nil).SubmitScore(context.Background(), "Ann", 1, 0, 0, 0); !errors.Is(err, domain.ErrSaveFailed) {
		t.Fatalf("expected transport failure to be ErrSaveFailed, got %v", err)
	}
}

func TestPlayersAndTopScores(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cricket-players", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]domain.Player{{ID: "p1", Name: "MS Dhoni", Jersey: 7, Difficulty: domain.TierEasy}})
	})
	mux.HandleFunc("/api/top-scores", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Failed to fetch top scores"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL+"/", srv.Client())
	players, err := c.Players(context.Background())
	if err != nil {
		t.Fatalf("players: %v", err)
	}
	if len(players) != 1 || players[0].Jersey != 7 || players[0].Difficulty != domain.TierEasy {
		t.Fatalf("unexpected players %+v", players)
	}

	if _, err := c.TopScores(context.Background()); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected store unavailable, got %v", err)
	}
}
