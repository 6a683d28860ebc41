package progress

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"quest-academy-service/internal/domain"
)

// SnapshotRepository persists the whole progress aggregate under one key.
// Every write is a full-object overwrite; there are no partial writes.
type SnapshotRepository interface {
	Load(ctx context.Context) (domain.Progress, bool, error)
	Save(ctx context.Context, p domain.Progress) error
}

// Store is the single authoritative aggregate of one user's lifetime
// progress. The in-memory snapshot is the source of truth; persistence is
// best-effort and a failed write is retried on the next mutation.
type Store struct {
	mu      sync.Mutex
	repo    SnapshotRepository
	current domain.Progress
	now     func() time.Time
	dirty   bool
}

// NewStore loads the persisted snapshot, falling back to zero-valued
// defaults when nothing has been saved yet or the stored bytes are bad.
func NewStore(ctx context.Context, repo SnapshotRepository) *Store {
	s := &Store{repo: repo, current: domain.NewProgress(), now: time.Now}
	saved, ok, err := repo.Load(ctx)
	if err != nil {
		log.Printf("progress: load failed, starting fresh: %v", err)
		return s
	}
	if ok {
		s.current = normalize(saved)
	}
	return s
}

// NewStoreWithClock is test-only for deterministic lesson identifiers.
func NewStoreWithClock(ctx context.Context, repo SnapshotRepository, now func() time.Time) *Store {
	s := NewStore(ctx, repo)
	s.now = now
	return s
}

// Read returns the current snapshot. No side effects.
func (s *Store) Read() domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.current)
}

// Apply folds a session outcome into the aggregate, evaluates badge
// thresholds against the new state, and persists. It returns the badges
// earned by this call. Storage failures are swallowed and logged; the
// in-memory snapshot stays authoritative.
func (s *Store) Apply(ctx context.Context, outcome domain.Outcome) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := outcome.Base()
	s.current.TotalPoints += base.Score

	switch o := outcome.(type) {
	case domain.LessonOutcome:
		s.applyLessonLocked(o)
	case domain.GameOutcome:
		s.applyGameLocked(o)
	case domain.ChallengeOutcome:
		s.applyChallengeLocked(o)
	}

	earned := newlyEarnedBadges(s.current)
	s.current.Badges = append(s.current.Badges, earned...)

	s.persistLocked(ctx)
	return earned
}

// Reset restores every field to the zero-valued defaults and persists.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = domain.NewProgress()
	s.persistLocked(ctx)
}

func (s *Store) applyLessonLocked(o domain.LessonOutcome) {
	if o.Subject == domain.SubjectReading {
		s.current.ReadingLevel = max(s.current.ReadingLevel, o.Difficulty)
	} else {
		s.current.MathLevel = max(s.current.MathLevel, o.Difficulty)
	}
	if o.Completed {
		lessonID := fmt.Sprintf("%s-%d-%d", o.Subject, o.Difficulty, s.now().UnixMilli())
		s.current.CompletedLessons = append(s.current.CompletedLessons, lessonID)
		s.current.CurrentStreak = max(s.current.CurrentStreak+1, 1)
	}
}

func (s *Store) applyGameLocked(o domain.GameOutcome) {
	stats := &s.current.Games
	stats.GamesPlayed++
	stats.GamePoints += o.Score
	if o.Score > stats.BestScores[o.GameType] {
		stats.BestScores[o.GameType] = o.Score
	}
	stats.CorrectByType[o.GameType] += o.CorrectAnswers
	if o.Completed {
		stats.Achievements = append(stats.Achievements, domain.GameAchievement{
			GameType:       o.GameType,
			Score:          o.Score,
			CorrectAnswers: o.CorrectAnswers,
			TargetScore:    o.TargetScore,
			EarnedAt:       s.now(),
		})
	}
}

func (s *Store) applyChallengeLocked(o domain.ChallengeOutcome) {
	stats := &s.current.Challenges
	stats.ChallengePoints += o.Score
	stats.TotalTimeSeconds += o.TimeUsedSeconds
	if !o.Completed {
		stats.Streak = 0
		return
	}
	stats.ChallengesCompleted++
	stats.Streak++
	candidate := domain.ChallengeBest{
		Score:    o.Score,
		Accuracy: o.Accuracy(),
		TimeUsed: o.TimeUsedSeconds,
	}
	prev, ok := stats.Best[o.ChallengeType]
	if !ok || candidate.Beats(prev) {
		stats.Best[o.ChallengeType] = candidate
	}
}

// persistLocked writes the full snapshot. On failure the store stays dirty
// and the write is retried on the next mutation.
func (s *Store) persistLocked(ctx context.Context) {
	if err := s.repo.Save(ctx, clone(s.current)); err != nil {
		s.dirty = true
		log.Printf("progress: persist failed, will retry: %v", err)
		return
	}
	s.dirty = false
}

// Flush forces a write of the current snapshot, used at app teardown.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Save(ctx, clone(s.current)); err != nil {
		return fmt.Errorf("flush progress: %w", err)
	}
	s.dirty = false
	return nil
}

// normalize repairs nil maps/slices after JSON round-trips of old snapshots.
func normalize(p domain.Progress) domain.Progress {
	if p.MathLevel < 1 {
		p.MathLevel = 1
	}
	if p.ReadingLevel < 1 {
		p.ReadingLevel = 1
	}
	if p.CompletedLessons == nil {
		p.CompletedLessons = []string{}
	}
	if p.Badges == nil {
		p.Badges = []string{}
	}
	if p.Games.BestScores == nil {
		p.Games.BestScores = map[string]int{}
	}
	if p.Games.CorrectByType == nil {
		p.Games.CorrectByType = map[string]int{}
	}
	if p.Challenges.Best == nil {
		p.Challenges.Best = map[string]domain.ChallengeBest{}
	}
	return p
}

func clone(p domain.Progress) domain.Progress {
	out := p
	out.CompletedLessons = append([]string(nil), p.CompletedLessons...)
	out.Badges = append([]string(nil), p.Badges...)
	out.Games.BestScores = copyMap(p.Games.BestScores)
	out.Games.CorrectByType = copyMap(p.Games.CorrectByType)
	out.Games.Achievements = append([]domain.GameAchievement(nil), p.Games.Achievements...)
	out.Challenges.Best = copyMap(p.Challenges.Best)
	return out
}

func copyMap[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
