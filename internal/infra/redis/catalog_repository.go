package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"jersey-quiz-service/internal/domain"
)

// CatalogLoader fetches the player catalog from a backing store (e.g., SQL database).
type CatalogLoader interface {
	LoadPlayers(ctx context.Context) ([]domain.Player, error)
}

// CatalogRepository caches the catalog in Redis and falls back to a loader on cache miss.
// The whole catalog is stored as one JSON document: SET catalog:players {json} EX ttl
type CatalogRepository struct {
	client *redis.Client
	loader CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group

	mu  sync.Mutex
	rnd *rand.Rand
}

const catalogKey = "catalog:players"

func NewCatalogRepository(client *redis.Client, loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) AllPlayers(ctx context.Context) ([]domain.Player, error) {
	if players, ok := r.cached(ctx); ok {
		return players, nil
	}

	result, err, _ := r.sf.Do(catalogKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if players, ok := r.cached(ctx); ok {
			return players, nil
		}

		players, err := r.loader.LoadPlayers(ctx)
		if err != nil {
			return nil, err
		}

		// best-effort: a cache write failure still serves the loaded catalog
		if raw, err := json.Marshal(players); err == nil {
			_ = r.client.Set(ctx, catalogKey, raw, r.ttlWithJitter()).Err()
		}
		return players, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Player), nil
}

// Invalidate drops the cached catalog so the next read reloads it.
func (r *CatalogRepository) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, catalogKey).Err()
}

func (r *CatalogRepository) cached(ctx context.Context) ([]domain.Player, bool) {
	raw, err := r.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, false
	}
	var players []domain.Player
	if err := json.Unmarshal(raw, &players); err != nil {
		return nil, false
	}
	return players, true
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
