package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"quest-academy-service/internal/domain"

	"golang.org/x/sync/singleflight"
)

// ProblemLoader fetches problem sets from a backing store (e.g., document DB).
type ProblemLoader interface {
	LoadProblems(ctx context.Context, setID string) ([]domain.Problem, error)
}

// ProblemRepository caches problem sets with TTL to avoid repeated loader hits.
type ProblemRepository struct {
	loader ProblemLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedSet
}

type cachedSet struct {
	problems  []domain.Problem
	expiresAt time.Time
}

func NewProblemRepository(loader ProblemLoader, ttl time.Duration) *ProblemRepository {
	return &ProblemRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedSet),
	}
}

func (r *ProblemRepository) Problems(ctx context.Context, setID string) ([]domain.Problem, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[setID]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.problems, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(setID, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[setID]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.problems, nil
		}
		r.mu.RUnlock()

		problems, err := r.loader.LoadProblems(ctx, setID)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[setID] = cachedSet{
			problems:  problems,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return problems, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Problem), nil
}

// StaticProblemLoader is a simple loader backed by an in-memory map (useful
// for tests/demos and the default no-database deployment).
type StaticProblemLoader struct {
	sets map[string][]domain.Problem
}

func NewStaticProblemLoader(sets map[string][]domain.Problem) *StaticProblemLoader {
	return &StaticProblemLoader{sets: sets}
}

func (l *StaticProblemLoader) LoadProblems(_ context.Context, setID string) ([]domain.Problem, error) {
	if problems, ok := l.sets[setID]; ok {
		return problems, nil
	}
	return nil, domain.ErrProblemSetNotFound
}

func (r *ProblemRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
