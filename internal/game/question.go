package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"jersey-quiz-service/internal/domain"
)

// OptionsPerQuestion is the number of names offered for each question.
const OptionsPerQuestion = 4

// Question asks which player wears a jersey number.
type Question struct {
	Player       domain.Player
	Options      []string
	CorrectIndex int
}

// Empty reports whether the question has no options to choose from.
func (q Question) Empty() bool {
	return len(q.Options) == 0
}

// CorrectAnswer returns the text of the correct option.
func (q Question) CorrectAnswer() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// Prompt renders the clue shown to the player.
func (q Question) Prompt() string {
	return fmt.Sprintf("Who wears jersey #%d for %s? Hint: %s", q.Player.Jersey, q.Player.Team, q.Player.Hint)
}

// Generator builds multiple-choice questions from a catalog.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGenerator(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd}
}

// Generate picks a player from tier and surrounds its name with distinct
// distractors. An empty tier falls back to the whole catalog; distractors come
// from the whole catalog when the tier has fewer than four distinct names.
// An empty catalog yields an empty question.
func (g *Generator) Generate(tier domain.Tier, catalog *Catalog) Question {
	g.mu.Lock()
	defer g.mu.Unlock()

	tierPool := catalog.ForTier(tier)
	pool := tierPool
	if len(pool) == 0 {
		pool = catalog.All()
	}
	if len(pool) == 0 {
		return Question{CorrectIndex: -1}
	}
	player := pool[g.rnd.Intn(len(pool))]

	distractors := distractorPool(tierPool, catalog)
	want := OptionsPerQuestion
	if n := distinctNames(append([]domain.Player{player}, distractors...)); n < want {
		want = n
	}

	options := []string{player.Name}
	taken := map[string]struct{}{player.Name: {}}
	for len(options) < want {
		candidate := distractors[g.rnd.Intn(len(distractors))]
		if _, dup := taken[candidate.Name]; dup {
			continue
		}
		taken[candidate.Name] = struct{}{}
		options = append(options, candidate.Name)
	}

	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	correct := 0
	for i, name := range options {
		if name == player.Name {
			correct = i
			break
		}
	}
	return Question{Player: player, Options: options, CorrectIndex: correct}
}

func distractorPool(tierPool []domain.Player, catalog *Catalog) []domain.Player {
	if distinctNames(tierPool) >= OptionsPerQuestion {
		return tierPool
	}
	return catalog.All()
}
