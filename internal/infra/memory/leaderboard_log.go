package memory

import (
	"context"
	"sync"

	"quest-academy-service/internal/domain"
)

// LeaderboardLog is an in-memory append-only log of challenge results.
type LeaderboardLog struct {
	mu      sync.RWMutex
	nextID  int64
	entries []domain.LeaderboardEntry
}

// NewLeaderboardLog builds a log, optionally pre-seeded with entries
// (IDs are reassigned in insertion order).
func NewLeaderboardLog(seed ...domain.LeaderboardEntry) *LeaderboardLog {
	log := &LeaderboardLog{nextID: 1}
	for _, e := range seed {
		e.ID = log.nextID
		log.nextID++
		log.entries = append(log.entries, e)
	}
	return log
}

func (l *LeaderboardLog) Append(_ context.Context, entry domain.LeaderboardEntry) (domain.LeaderboardEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry.ID = l.nextID
	l.nextID++
	l.entries = append(l.entries, entry)
	return entry, nil
}

func (l *LeaderboardLog) List(_ context.Context) ([]domain.LeaderboardEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.LeaderboardEntry, len(l.entries))
	copy(out, l.entries)
	return out, nil
}
