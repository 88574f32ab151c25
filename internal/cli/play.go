package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"jersey-quiz-service/internal/client"
	"jersey-quiz-service/internal/config"
	"jersey-quiz-service/internal/domain"
	"jersey-quiz-service/internal/game"
)

// NewPlayCmd runs the quiz in the terminal against a running API.
func NewPlayCmd(configPath *string) *cobra.Command {
	var apiURL, name string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the jersey quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.Game.APIURL = apiURL
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runPlay(ctx, cfg, name, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&apiURL, "api", "", "quiz API base URL (defaults to game.api_url)")
	cmd.Flags().StringVar(&name, "name", "", "player name used to save the final score")
	return cmd
}

func runPlay(ctx context.Context, cfg config.Config, name string, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	api := client.New(cfg.Game.APIURL, nil)
	players, err := api.Players(ctx)
	if err != nil {
		return fmt.Errorf("loading players from %s: %w", cfg.Game.APIURL, err)
	}
	if len(players) == 0 {
		return domain.ErrEmptyCatalog
	}

	s := newSession(cfg, game.NewCatalog(players), api, out)
	defer s.game.Close()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	s.term.printf("Guess the cricketer from the jersey number. %d levels, %d questions each.\n", game.MaxLevel, game.QuestionsPerLevel)
	s.game.Start()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.term.complete:
			if name != "" {
				s.save(ctx, name)
			}
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := s.handle(ctx, line); quit {
				return nil
			}
		}
	}
}

type session struct {
	game *game.Game
	api  *client.Client
	term *terminal
}

func newSession(cfg config.Config, cat *game.Catalog, api *client.Client, out io.Writer) *session {
	term := newTerminal(out)
	g := game.New(cat,
		game.WithSubmitter(api),
		game.WithObserver(term.observe),
		game.WithQuestionSeconds(cfg.Game.QuestionSeconds),
		game.WithRevealDelay(config.TTLDuration(cfg.Game.RevealDelay, game.DefaultRevealDelay)),
	)
	return &session{game: g, api: api, term: term}
}

// handle applies one line of player input. It reports true when the player quits.
func (s *session) handle(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	switch strings.ToLower(input) {
	case "q", "quit":
		return true
	case "r", "restart":
		s.game.Restart()
		return false
	}

	state := s.game.Snapshot()
	switch state.Phase {
	case game.PhaseQuestionActive:
		if strings.EqualFold(input, "s") {
			s.game.Skip()
			return false
		}
		n, err := strconv.Atoi(input)
		if err != nil || !s.game.SelectAnswer(n-1) {
			s.term.printf("Enter 1-%d to answer or s to skip.\n", game.OptionsPerQuestion)
		}
	case game.PhaseLevelComplete:
		if err := s.game.NextLevel(); err != nil {
			s.term.printf("%v\n", err)
		}
	case game.PhaseGameComplete:
		if state.Saved {
			s.term.printf("Score already saved. r to play again, q to quit.\n")
			return false
		}
		s.save(ctx, input)
	}
	return false
}

func (s *session) save(ctx context.Context, name string) {
	record, err := s.game.SaveScore(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNameRequired), errors.Is(err, domain.ErrSaveFailed):
		// reported through the observer
		return
	case err != nil:
		s.term.printf("%v\n", err)
		return
	}

	top, err := s.api.TopScores(ctx)
	if err != nil {
		s.term.printf("Could not load top scores: %v\n", err)
		return
	}
	s.term.printLeaderboard(top, record.ID)
}

// terminal renders game events. Observer calls arrive from timer goroutines,
// so writes are serialized.
type terminal struct {
	mu       sync.Mutex
	out      io.Writer
	complete chan struct{}
}

func newTerminal(out io.Writer) *terminal {
	return &terminal{out: out, complete: make(chan struct{}, 1)}
}

func (t *terminal) printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, format, args...)
}

func (t *terminal) observe(e game.Event) {
	st := e.State
	switch e.Kind {
	case game.EventQuestion:
		var b strings.Builder
		fmt.Fprintf(&b, "\nLevel %d/%d  Question %d/%d  Progress %d%%  Correct %d\n",
			st.Level, game.MaxLevel, st.QuestionInLevel, game.QuestionsPerLevel, st.ProgressPercent(), st.Correct)
		fmt.Fprintf(&b, "%s\n", e.Question.Prompt())
		for i, opt := range e.Question.Options {
			fmt.Fprintf(&b, "  %d) %s\n", i+1, opt)
		}
		fmt.Fprintf(&b, "Answer 1-%d or s to skip. %ds on the clock.\n", len(e.Question.Options), st.TimeRemaining)
		t.printf("%s", b.String())
	case game.EventTick:
		if r := st.TimeRemaining; r > 0 && (r <= 5 || r%5 == 0) {
			t.printf("  %ds left\n", r)
		}
	case game.EventRevealed:
		t.printf("%s\n", e.Outcome.Message(e.CorrectAnswer))
	case game.EventLevelComplete:
		t.printf("\nLevel %d complete! Correct %d  Wrong %d  Skipped %d. Press Enter for level %d.\n",
			st.Level, st.Correct, st.Wrong, st.Skipped, st.Level+1)
	case game.EventGameComplete:
		t.printf("\nGame complete! You got %d/%d right (%d%%). Wrong %d  Skipped %d.\n",
			st.Correct, game.QuestionsPerGame, st.Accuracy(), st.Wrong, st.Skipped)
		t.printf("Type your name and press Enter to save your score (r to restart, q to quit).\n")
		select {
		case t.complete <- struct{}{}:
		default:
		}
	case game.EventNameRequired:
		t.printf("Please enter your name to save your score.\n")
	case game.EventScoreSaved:
		t.printf("Score saved!\n")
	case game.EventSaveFailed:
		t.printf("Could not save your score (%v). Enter your name again to retry.\n", e.Err)
	}
}

func (t *terminal) printLeaderboard(top []domain.ScoreRecord, highlight string) {
	var b strings.Builder
	b.WriteString("\nTop scores\n")
	for i, rec := range top {
		name := "Anonymous"
		if rec.PlayerName != nil {
			name = *rec.PlayerName
		}
		marker := " "
		if rec.ID == highlight {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %2d. %-24s %3d correct  level %d\n", marker, i+1, name, rec.CorrectAnswers, rec.Level)
	}
	t.printf("%s", b.String())
}
