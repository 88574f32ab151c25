package game

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"jersey-quiz-service/internal/domain"
)

// DefaultRevealDelay is how long the revealed answer stays up before advancing.
const DefaultRevealDelay = 4 * time.Second

// Submitter sends a finished game's tallies to the score store.
type Submitter interface {
	Submit(ctx context.Context, submission domain.ScoreSubmission) (domain.ScoreRecord, error)
}

// Option configures a Game.
type Option func(*Game)

func WithScheduler(s Scheduler) Option { return func(g *Game) { g.sched = s } }

func WithGenerator(gen *Generator) Option { return func(g *Game) { g.gen = gen } }

func WithSubmitter(s Submitter) Option { return func(g *Game) { g.submitter = s } }

func WithObserver(fn func(Event)) Option { return func(g *Game) { g.observer = fn } }

func WithRevealDelay(d time.Duration) Option { return func(g *Game) { g.revealDelay = d } }

func WithQuestionSeconds(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.questionSeconds = n
		}
	}
}

// Game is a single-player session: it asks questions level by level, runs the
// per-question countdown and tallies outcomes until the last level is done.
//
// Scheduled callbacks capture the question sequence number; once a new
// question starts, the game restarts or closes, stale callbacks do nothing.
type Game struct {
	catalog         *Catalog
	gen             *Generator
	sched           Scheduler
	submitter       Submitter
	observer        func(Event)
	questionSeconds int
	revealDelay     time.Duration

	mu       sync.Mutex
	state    State
	question Question
	seq      uint64
	round    uint64
	tick     Timer
	advance  Timer
	record   *domain.ScoreRecord
	closed   bool
	outbox   []Event
}

func New(catalog *Catalog, opts ...Option) *Game {
	g := &Game{
		catalog:         catalog,
		sched:           ClockScheduler{},
		questionSeconds: DefaultQuestionSeconds,
		revealDelay:     DefaultRevealDelay,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.gen == nil {
		g.gen = NewGenerator(nil)
	}
	g.state = initialState(g.questionSeconds)
	return g
}

// Start begins a fresh session at level 1.
func (g *Game) Start() {
	g.do(g.resetLocked)
}

// Restart abandons the current session, cancelling pending timers, and starts over.
func (g *Game) Restart() {
	g.do(g.resetLocked)
}

// SelectAnswer answers the active question. It reports false when the
// question is already answered or index is out of range.
func (g *Game) SelectAnswer(index int) bool {
	accepted := false
	g.do(func() {
		if !g.acceptingLocked() || index < 0 || index >= len(g.question.Options) {
			return
		}
		accepted = true
		outcome := OutcomeWrong
		if index == g.question.CorrectIndex {
			outcome = OutcomeCorrect
			g.state.Correct++
		} else {
			g.state.Wrong++
		}
		g.resolveLocked(outcome)
	})
	return accepted
}

// Skip gives up on the active question.
func (g *Game) Skip() bool {
	accepted := false
	g.do(func() {
		if !g.acceptingLocked() {
			return
		}
		accepted = true
		g.state.Skipped++
		g.resolveLocked(OutcomeSkipped)
	})
	return accepted
}

// NextLevel leaves the level-complete screen and starts the next level.
func (g *Game) NextLevel() error {
	var err error
	g.do(func() {
		if g.state.Phase != PhaseLevelComplete {
			err = fmt.Errorf("next level from %s: %w", g.state.Phase, domain.ErrInvalidTransition)
			return
		}
		g.state.Level++
		g.state.QuestionInLevel = 1
		g.loadQuestionLocked()
	})
	return err
}

// SaveScore submits the finished game under name. Once a save succeeds,
// later calls return the same record without contacting the store.
func (g *Game) SaveScore(ctx context.Context, name string) (domain.ScoreRecord, error) {
	name = strings.TrimSpace(name)

	var (
		submission domain.ScoreSubmission
		round      uint64
		done       *domain.ScoreRecord
		err        error
	)
	g.do(func() {
		switch {
		case g.state.Phase != PhaseGameComplete:
			err = domain.ErrNotComplete
		case g.record != nil:
			done = g.record
		case g.state.Saving:
			err = domain.ErrSaveInFlight
		case name == "":
			err = domain.ErrNameRequired
			g.publishLocked(Event{Kind: EventNameRequired})
		case g.submitter == nil:
			err = fmt.Errorf("%w: no score submitter configured", domain.ErrSaveFailed)
		default:
			g.state.Saving = true
			round = g.round
			submission = g.submissionLocked(name)
		}
	})
	if done != nil {
		return *done, nil
	}
	if err != nil {
		return domain.ScoreRecord{}, err
	}

	record, submitErr := g.submitter.Submit(ctx, submission)

	g.do(func() {
		if round != g.round {
			return
		}
		g.state.Saving = false
		if submitErr != nil {
			err = fmt.Errorf("%w: %v", domain.ErrSaveFailed, submitErr)
			g.publishLocked(Event{Kind: EventSaveFailed, Err: err})
			return
		}
		g.record = &record
		g.state.Saved = true
		g.publishLocked(Event{Kind: EventScoreSaved, Record: &record})
	})
	if err != nil {
		return domain.ScoreRecord{}, err
	}
	return record, nil
}

// Snapshot returns the current counters.
func (g *Game) Snapshot() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Question returns the question currently on screen.
func (g *Game) Question() Question {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.question
}

// Close cancels pending timers; the game ignores scheduled callbacks afterwards.
func (g *Game) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	g.seq++
	g.stopTimersLocked()
}

func (g *Game) resetLocked() {
	g.round++
	g.closed = false
	g.record = nil
	g.state = initialState(g.questionSeconds)
	g.loadQuestionLocked()
}

func (g *Game) acceptingLocked() bool {
	return g.state.Phase == PhaseQuestionActive && !g.state.Answered
}

func (g *Game) loadQuestionLocked() {
	g.stopTimersLocked()
	g.seq++
	g.question = g.gen.Generate(TierForLevel(g.state.Level), g.catalog)
	g.state.TimeRemaining = g.questionSeconds
	g.state.Answered = false
	if g.question.Empty() {
		g.state.Phase = PhaseAwaitingQuestion
		return
	}
	g.state.Phase = PhaseQuestionActive
	g.publishLocked(Event{Kind: EventQuestion, Question: g.question})
	g.scheduleTickLocked()
}

func (g *Game) scheduleTickLocked() {
	seq := g.seq
	g.tick = g.sched.AfterFunc(time.Second, func() { g.onTick(seq) })
}

func (g *Game) onTick(seq uint64) {
	g.do(func() {
		if g.closed || seq != g.seq || !g.acceptingLocked() {
			return
		}
		g.state.TimeRemaining--
		g.publishLocked(Event{Kind: EventTick})
		if g.state.TimeRemaining > 0 {
			g.scheduleTickLocked()
			return
		}
		g.state.Wrong++
		g.resolveLocked(OutcomeTimeout)
	})
}

// resolveLocked marks the question answered, reveals the answer and schedules Advance.
func (g *Game) resolveLocked(outcome Outcome) {
	g.stopTimersLocked()
	g.state.Answered = true
	g.state.Phase = PhaseAnswered
	g.publishLocked(Event{
		Kind:          EventRevealed,
		Question:      g.question,
		Outcome:       outcome,
		CorrectAnswer: g.question.CorrectAnswer(),
	})

	seq := g.seq
	g.advance = g.sched.AfterFunc(g.revealDelay, func() { g.onAdvance(seq) })
}

func (g *Game) onAdvance(seq uint64) {
	g.do(func() {
		if g.closed || seq != g.seq || g.state.Phase != PhaseAnswered {
			return
		}
		g.advance = nil
		g.state.TotalAnswered++
		if g.state.QuestionInLevel < QuestionsPerLevel {
			g.state.QuestionInLevel++
			g.loadQuestionLocked()
			return
		}
		if g.state.Level >= MaxLevel {
			g.state.Phase = PhaseGameComplete
			g.publishLocked(Event{Kind: EventGameComplete})
			return
		}
		g.state.Phase = PhaseLevelComplete
		g.publishLocked(Event{Kind: EventLevelComplete})
	})
}

func (g *Game) stopTimersLocked() {
	if g.tick != nil {
		g.tick.Stop()
		g.tick = nil
	}
	if g.advance != nil {
		g.advance.Stop()
		g.advance = nil
	}
}

func (g *Game) submissionLocked(name string) domain.ScoreSubmission {
	level := g.state.Level
	correct := g.state.Correct
	wrong := g.state.Wrong
	skipped := g.state.Skipped
	return domain.ScoreSubmission{
		PlayerName:     &name,
		Level:          &level,
		CorrectAnswers: &correct,
		WrongAnswers:   &wrong,
		SkippedAnswers: &skipped,
	}
}

func (g *Game) publishLocked(e Event) {
	if g.observer == nil {
		return
	}
	e.State = g.state
	g.outbox = append(g.outbox, e)
}

// do runs fn under the lock and delivers queued events once it is released,
// so observers may call back into the game.
func (g *Game) do(fn func()) {
	g.mu.Lock()
	fn()
	out := g.outbox
	g.outbox = nil
	g.mu.Unlock()

	for _, e := range out {
		g.observer(e)
	}
}
