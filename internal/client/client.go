package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jersey-quiz-service/internal/domain"
)

// Client talks to the jersey quiz HTTP API. It loads the catalog for the game
// and submits finished scores.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

type errorBody struct {
	Message string `json:"message"`
}

// Players fetches the full catalog.
func (c *Client) Players(ctx context.Context) ([]domain.Player, error) {
	var players []domain.Player
	if err := c.get(ctx, "/api/cricket-players", &players); err != nil {
		return nil, err
	}
	return players, nil
}

// TopScores fetches the ranked leaderboard.
func (c *Client) TopScores(ctx context.Context) ([]domain.ScoreRecord, error) {
	var scores []domain.ScoreRecord
	if err := c.get(ctx, "/api/top-scores", &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// SubmitScore trims name and submits the tallies. A blank name is rejected
// locally with domain.ErrNameRequired and nothing is sent.
func (c *Client) SubmitScore(ctx context.Context, name string, level, correct, wrong, skipped int) (domain.ScoreRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ScoreRecord{}, domain.ErrNameRequired
	}
	return c.Submit(ctx, domain.ScoreSubmission{
		PlayerName:     &name,
		Level:          &level,
		CorrectAnswers: &correct,
		WrongAnswers:   &wrong,
		SkippedAnswers: &skipped,
	})
}

// Submit posts a score submission as-is.
func (c *Client) Submit(ctx context.Context, submission domain.ScoreSubmission) (domain.ScoreRecord, error) {
	body, err := json.Marshal(submission)
	if err != nil {
		return domain.ScoreRecord{}, fmt.Errorf("encode score: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/game-scores", bytes.NewReader(body))
	if err != nil {
		return domain.ScoreRecord{}, fmt.Errorf("%w: %v", domain.ErrSaveFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.ScoreRecord{}, fmt.Errorf("%w: %v", domain.ErrSaveFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return domain.ScoreRecord{}, fmt.Errorf("%w: %s", domain.ErrInvalidScore, readMessage(resp.Body))
	case resp.StatusCode >= 300:
		return domain.ScoreRecord{}, fmt.Errorf("%w: status %d: %s", domain.ErrSaveFailed, resp.StatusCode, readMessage(resp.Body))
	}

	var record domain.ScoreRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return domain.ScoreRecord{}, fmt.Errorf("%w: decode response: %v", domain.ErrSaveFailed, err)
	}
	return record, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: get %s: %v", domain.ErrStoreUnavailable, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: get %s: status %d: %s", domain.ErrStoreUnavailable, path, resp.StatusCode, readMessage(resp.Body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func readMessage(r io.Reader) string {
	var body errorBody
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&body); err != nil || body.Message == "" {
		return "unexpected response"
	}
	return body.Message
}
