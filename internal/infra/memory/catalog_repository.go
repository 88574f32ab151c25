package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"jersey-quiz-service/internal/domain"
)

// CatalogLoader fetches the player catalog from a backing store (e.g., SQL database).
type CatalogLoader interface {
	LoadPlayers(ctx context.Context) ([]domain.Player, error)
}

const catalogKey = "players"

// CatalogRepository caches the catalog with TTL to avoid repeated DB hits.
type CatalogRepository struct {
	loader CatalogLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	players   []domain.Player
	expiresAt time.Time
}

func NewCatalogRepository(loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) AllPlayers(ctx context.Context) ([]domain.Player, error) {
	if players, ok := r.cached(r.clock()); ok {
		return players, nil
	}

	result, err, _ := r.sf.Do(catalogKey, func() (interface{}, error) {
		now := r.clock()
		if players, ok := r.cached(now); ok {
			return players, nil
		}

		players, err := r.loader.LoadPlayers(ctx)
		if err != nil {
			return nil, err
		}

		expiresAt := now.Add(r.ttlWithJitter())
		r.mu.Lock()
		r.players = players
		r.expiresAt = expiresAt
		r.mu.Unlock()
		return players, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Player), nil
}

func (r *CatalogRepository) cached(now time.Time) ([]domain.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.players != nil && r.expiresAt.After(now) {
		return r.players, true
	}
	return nil, false
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	r.mu.Lock()
	defer r.mu.Unlock()
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticCatalogLoader is a simple loader backed by a fixed roster (useful for tests/demos).
type StaticCatalogLoader struct {
	players []domain.Player
}

func NewStaticCatalogLoader(players []domain.Player) *StaticCatalogLoader {
	return &StaticCatalogLoader{players: players}
}

func (l *StaticCatalogLoader) LoadPlayers(_ context.Context) ([]domain.Player, error) {
	out := make([]domain.Player, len(l.players))
	copy(out, l.players)
	return out, nil
}
