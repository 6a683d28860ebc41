package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"quest-academy-service/internal/domain"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// ProblemLoader fetches problem sets from a backing store (e.g., document DB).
type ProblemLoader interface {
	LoadProblems(ctx context.Context, setID string) ([]domain.Problem, error)
}

// ProblemRepository caches problem sets in Redis as JSON blobs and falls back
// to a loader on cache miss. Sets are stored as:
//
//	SET quest:problems:{setID} {json array} EX ttl
type ProblemRepository struct {
	client *redis.Client
	loader ProblemLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewProblemRepository(client *redis.Client, loader ProblemLoader, ttl time.Duration) *ProblemRepository {
	return &ProblemRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *ProblemRepository) Problems(ctx context.Context, setID string) ([]domain.Problem, error) {
	key := r.key(setID)

	if cached, ok := r.fromCache(ctx, key); ok {
		return cached, nil
	}

	result, err, _ := r.sf.Do(setID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if cached, ok := r.fromCache(ctx, key); ok {
			return cached, nil
		}

		problems, err := r.loader.LoadProblems(ctx, setID)
		if err != nil {
			return nil, err
		}

		if raw, err := json.Marshal(problems); err == nil {
			_ = r.client.Set(ctx, key, raw, r.ttlWithJitter()).Err()
		}
		return problems, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Problem), nil
}

func (r *ProblemRepository) fromCache(ctx context.Context, key string) ([]domain.Problem, bool) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var problems []domain.Problem
	if err := json.Unmarshal(raw, &problems); err != nil {
		return nil, false
	}
	return problems, true
}

func (r *ProblemRepository) key(setID string) string {
	return "quest:problems:" + setID
}

func (r *ProblemRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
