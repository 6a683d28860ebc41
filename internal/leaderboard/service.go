package leaderboard

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"quest-academy-service/internal/domain"
)

// DefaultLimit bounds query results when the caller does not ask for more.
const DefaultLimit = 50

// EntryLog is the append-only store of challenge results. Append assigns the
// entry's unique identifier; List returns entries in insertion order.
type EntryLog interface {
	Append(ctx context.Context, entry domain.LeaderboardEntry) (domain.LeaderboardEntry, error)
	List(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

// Service answers ranked queries over the challenge result log. Rank is a
// view-time attribute recomputed from the score-descending ordering on every
// read.
type Service struct {
	log EntryLog
	now func() time.Time
}

// NewService builds a ranking service over the given log.
func NewService(log EntryLog) *Service {
	return &Service{log: log, now: time.Now}
}

// NewServiceWithClock is test-only for deterministic period windows.
func NewServiceWithClock(log EntryLog, now func() time.Time) *Service {
	return &Service{log: log, now: now}
}

// Submit derives the entry's accuracy, appends it to the log, and returns it
// with its rank within its own filter scope (subject, challenge type, skill
// level) at call time, plus the number of players in that scope.
func (s *Service) Submit(ctx context.Context, entry domain.LeaderboardEntry) (domain.LeaderboardEntry, int, error) {
	if entry.TotalQuestions > 0 {
		entry.Accuracy = int(math.Round(float64(entry.CorrectAnswers) * 100 / float64(entry.TotalQuestions)))
	}
	if entry.SubmittedAt.IsZero() {
		entry.SubmittedAt = s.now()
	}

	stored, err := s.log.Append(ctx, entry)
	if err != nil {
		return domain.LeaderboardEntry{}, 0, fmt.Errorf("append leaderboard entry: %w", err)
	}

	scope := domain.Filters{
		Subject:       stored.Subject,
		ChallengeType: stored.ChallengeType,
		SkillLevel:    stored.SkillLevel,
	}
	ranked, err := s.Query(ctx, scope)
	if err != nil {
		return domain.LeaderboardEntry{}, 0, err
	}
	for _, e := range ranked {
		if e.ID == stored.ID {
			stored.Rank = e.Rank
			break
		}
	}
	return stored, len(ranked), nil
}

// Query filters the log, sorts descending by score, assigns 1-based ranks,
// and truncates to the requested limit. Ties keep insertion order (stable
// sort), so an earlier entry outranks a later one with the same score.
func (s *Service) Query(ctx context.Context, filters domain.Filters) ([]domain.LeaderboardEntry, error) {
	entries, err := s.log.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard entries: %w", err)
	}

	cutoff := s.periodCutoff(filters.Period)
	filtered := make([]domain.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if filters.Subject != "" && e.Subject != filters.Subject {
			continue
		}
		if filters.ChallengeType != "" && e.ChallengeType != filters.ChallengeType {
			continue
		}
		if filters.SkillLevel != 0 && e.SkillLevel != filters.SkillLevel {
			continue
		}
		if e.SubmittedAt.Before(cutoff) {
			continue
		}
		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})
	for i := range filtered {
		filtered[i].Rank = i + 1
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// RankOf returns the user's ranked entry within the filter scope along with
// the total candidate count, or domain.ErrEntryNotFound when the user has no
// entry there.
func (s *Service) RankOf(ctx context.Context, userID string, filters domain.Filters) (domain.Ranking, error) {
	ranked, err := s.Query(ctx, filters)
	if err != nil {
		return domain.Ranking{}, err
	}
	for _, e := range ranked {
		if e.UserID == userID {
			return domain.Ranking{Entry: e, TotalPlayers: len(ranked)}, nil
		}
	}
	return domain.Ranking{}, domain.ErrEntryNotFound
}

// StatsOf aggregates a user's challenge history, optionally narrowed to one
// subject.
func (s *Service) StatsOf(ctx context.Context, userID string, subject domain.Subject) (domain.PlayerStats, error) {
	entries, err := s.log.List(ctx)
	if err != nil {
		return domain.PlayerStats{}, fmt.Errorf("list leaderboard entries: %w", err)
	}

	var stats domain.PlayerStats
	counts := map[string]int{}
	var seen []string
	accuracySum := 0
	for _, e := range entries {
		if e.UserID != userID {
			continue
		}
		if subject != "" && e.Subject != subject {
			continue
		}
		stats.TotalChallenges++
		stats.TotalPoints += e.Score
		accuracySum += e.Accuracy
		if e.Score > stats.BestScore {
			stats.BestScore = e.Score
		}
		if _, ok := counts[e.ChallengeType]; !ok {
			seen = append(seen, e.ChallengeType)
		}
		counts[e.ChallengeType]++
	}
	if stats.TotalChallenges > 0 {
		stats.AverageAccuracy = int(math.Round(float64(accuracySum) / float64(stats.TotalChallenges)))
	}
	// Ties go to the type played first.
	favorite, best := "", 0
	for _, challengeType := range seen {
		if counts[challengeType] > best {
			favorite, best = challengeType, counts[challengeType]
		}
	}
	stats.FavoriteChallenge = favorite
	return stats, nil
}

// periodCutoff computes the wall-clock window floor for a period filter.
func (s *Service) periodCutoff(period domain.Period) time.Time {
	now := s.now()
	switch period {
	case domain.PeriodToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case domain.PeriodWeek:
		return now.AddDate(0, 0, -7)
	case domain.PeriodMonth:
		return now.AddDate(0, -1, 0)
	default:
		return time.Date(2000, time.January, 1, 0, 0, 0, 0, now.Location())
	}
}
