package game

import "jersey-quiz-service/internal/domain"

// Catalog is a read-only index of players by tier.
type Catalog struct {
	all    []domain.Player
	byTier map[domain.Tier][]domain.Player
}

func NewCatalog(players []domain.Player) *Catalog {
	c := &Catalog{
		all:    append([]domain.Player(nil), players...),
		byTier: make(map[domain.Tier][]domain.Player),
	}
	for _, p := range c.all {
		c.byTier[p.Difficulty] = append(c.byTier[p.Difficulty], p)
	}
	return c
}

// All returns every player in the catalog.
func (c *Catalog) All() []domain.Player {
	return c.all
}

// ForTier returns the players tagged with tier.
func (c *Catalog) ForTier(tier domain.Tier) []domain.Player {
	return c.byTier[tier]
}

// Len reports the number of players in the catalog.
func (c *Catalog) Len() int {
	return len(c.all)
}

func distinctNames(players []domain.Player) int {
	seen := make(map[string]struct{}, len(players))
	for _, p := range players {
		seen[p.Name] = struct{}{}
	}
	return len(seen)
}
