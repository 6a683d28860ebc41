package leaderboard_test

import (
	"context"
	"testing"
	"time"

	"quest-academy-service/internal/domain"
	"quest-academy-service/internal/infra/memory"
	"quest-academy-service/internal/leaderboard"
)

var queryTime = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestService() *leaderboard.Service {
	return leaderboard.NewServiceWithClock(memory.NewLeaderboardLog(), func() time.Time { return queryTime })
}

func entry(userID string, score int) domain.LeaderboardEntry {
	return domain.LeaderboardEntry{
		UserID:         userID,
		DisplayName:    userID,
		Subject:        domain.SubjectMath,
		ChallengeType:  "speed-challenge",
		SkillLevel:     2,
		Score:          score,
		CorrectAnswers: 15,
		TotalQuestions: 20,
		SubmittedAt:    queryTime,
	}
}

func TestRanksFollowScoreDescending(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, e := range []domain.LeaderboardEntry{entry("u1", 250), entry("u2", 225), entry("u3", 200)} {
		if _, _, err := svc.Submit(ctx, e); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	ranked, err := svc.Query(ctx, domain.Filters{})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ranked))
	}
	for i, want := range []struct {
		user string
		rank int
	}{{"u1", 1}, {"u2", 2}, {"u3", 3}} {
		if ranked[i].UserID != want.user || ranked[i].Rank != want.rank {
			t.Fatalf("position %d: expected %s rank %d, got %+v", i, want.user, want.rank, ranked[i])
		}
	}
}

func TestNewHighScoreShiftsExistingRanks(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, e := range []domain.LeaderboardEntry{entry("u1", 250), entry("u2", 225)} {
		if _, _, err := svc.Submit(ctx, e); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	stored, total, err := svc.Submit(ctx, entry("u3", 260))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if stored.Rank != 1 || total != 3 {
		t.Fatalf("expected new leader rank 1 of 3, got rank %d of %d", stored.Rank, total)
	}

	ranking, err := svc.RankOf(ctx, "u1", domain.Filters{})
	if err != nil {
		t.Fatalf("rank lookup failed: %v", err)
	}
	if ranking.Entry.Rank != 2 {
		t.Fatalf("previous leader should be displaced to rank 2, got %d", ranking.Entry.Rank)
	}
}

func TestTiesKeepInsertionOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, user := range []string{"first", "second"} {
		if _, _, err := svc.Submit(ctx, entry(user, 200)); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}
	ranked, err := svc.Query(ctx, domain.Filters{})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if ranked[0].UserID != "first" || ranked[1].UserID != "second" {
		t.Fatalf("earlier submission should outrank an equal later one: %+v", ranked)
	}
}

func TestSubmitDerivesAccuracy(t *testing.T) {
	svc := newTestService()
	stored, _, err := svc.Submit(context.Background(), entry("u1", 180))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if stored.Accuracy != 75 {
		t.Fatalf("expected accuracy 15/20 = 75, got %d", stored.Accuracy)
	}
	if stored.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestSubmitRoundsAccuracyToNearest(t *testing.T) {
	svc := newTestService()
	e := entry("u1", 120)
	e.CorrectAnswers = 2
	e.TotalQuestions = 3
	stored, _, err := svc.Submit(context.Background(), e)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if stored.Accuracy != 67 {
		t.Fatalf("expected accuracy 2/3 rounded to 67, got %d", stored.Accuracy)
	}
}

func TestFiltersNarrowScope(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	math := entry("u1", 200)
	reading := entry("u2", 300)
	reading.Subject = domain.SubjectReading
	reading.ChallengeType = "comprehension-challenge"
	otherLevel := entry("u3", 400)
	otherLevel.SkillLevel = 3

	for _, e := range []domain.LeaderboardEntry{math, reading, otherLevel} {
		if _, _, err := svc.Submit(ctx, e); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	ranked, err := svc.Query(ctx, domain.Filters{Subject: domain.SubjectMath, ChallengeType: "speed-challenge", SkillLevel: 2})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(ranked) != 1 || ranked[0].UserID != "u1" {
		t.Fatalf("expected only the matching entry: %+v", ranked)
	}
}

func TestPeriodWindows(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	at := func(user string, submitted time.Time) domain.LeaderboardEntry {
		e := entry(user, 100)
		e.SubmittedAt = submitted
		return e
	}

	for _, e := range []domain.LeaderboardEntry{
		at("today", queryTime.Add(-2 * time.Hour)),
		at("yesterday", queryTime.Add(-30 * time.Hour)),
		at("lastweek", queryTime.AddDate(0, 0, -10)),
		at("lastyear", queryTime.AddDate(-1, 0, 0)),
	} {
		if _, _, err := svc.Submit(ctx, e); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	cases := []struct {
		period domain.Period
		want   int
	}{
		{domain.PeriodToday, 1},
		{domain.PeriodWeek, 2},
		{domain.PeriodMonth, 3},
		{domain.PeriodAll, 4},
		{"", 4},
	}
	for _, tc := range cases {
		ranked, err := svc.Query(ctx, domain.Filters{Period: tc.period})
		if err != nil {
			t.Fatalf("query failed: %v", err)
		}
		if len(ranked) != tc.want {
			t.Fatalf("period %q: expected %d entries, got %d", tc.period, tc.want, len(ranked))
		}
	}
}

func TestQueryLimit(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		if _, _, err := svc.Submit(ctx, entry("u", 100+i)); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	ranked, err := svc.Query(ctx, domain.Filters{})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(ranked) != leaderboard.DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", leaderboard.DefaultLimit, len(ranked))
	}

	ranked, err = svc.Query(ctx, domain.Filters{Limit: 5})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(ranked) != 5 || ranked[0].Score != 159 {
		t.Fatalf("expected top 5 led by 159: %+v", ranked)
	}
}

func TestRankOfMissingUser(t *testing.T) {
	svc := newTestService()
	if _, err := svc.RankOf(context.Background(), "ghost", domain.Filters{}); err != domain.ErrEntryNotFound {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestStatsAggregateHistory(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	speed := entry("u1", 200)
	speed2 := entry("u1", 240)
	accuracy := entry("u1", 180)
	accuracy.ChallengeType = "accuracy-challenge"
	other := entry("someone-else", 999)

	for _, e := range []domain.LeaderboardEntry{speed, speed2, accuracy, other} {
		if _, _, err := svc.Submit(ctx, e); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	stats, err := svc.StatsOf(ctx, "u1", "")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalChallenges != 3 || stats.BestScore != 240 || stats.TotalPoints != 620 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.AverageAccuracy != 75 {
		t.Fatalf("expected average accuracy 75, got %d", stats.AverageAccuracy)
	}
	if stats.FavoriteChallenge != "speed-challenge" {
		t.Fatalf("expected speed-challenge favorite, got %q", stats.FavoriteChallenge)
	}
}

func TestStatsAverageAccuracyRounds(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Accuracies 75, 67, 67 average to 69.67 and must round up to 70.
	exact := entry("u1", 200)
	twoOfThree := entry("u1", 150)
	twoOfThree.CorrectAnswers = 2
	twoOfThree.TotalQuestions = 3

	for _, e := range []domain.LeaderboardEntry{exact, twoOfThree, twoOfThree} {
		if _, _, err := svc.Submit(ctx, e); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	stats, err := svc.StatsOf(ctx, "u1", "")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.AverageAccuracy != 70 {
		t.Fatalf("expected average accuracy 70, got %d", stats.AverageAccuracy)
	}
}

func TestFavoriteTieGoesToFirstPlayed(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// One play each; speed-challenge sorts after accuracy-challenge
	// lexically, so only first-played order can make it the favorite.
	second := entry("u1", 150)
	second.ChallengeType = "accuracy-challenge"

	for _, e := range []domain.LeaderboardEntry{entry("u1", 200), second} {
		if _, _, err := svc.Submit(ctx, e); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	stats, err := svc.StatsOf(ctx, "u1", "")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.FavoriteChallenge != "speed-challenge" {
		t.Fatalf("tie should keep the first challenge played, got %q", stats.FavoriteChallenge)
	}
}

func TestStatsEmptyHistory(t *testing.T) {
	svc := newTestService()
	stats, err := svc.StatsOf(context.Background(), "nobody", "")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalChallenges != 0 || stats.FavoriteChallenge != "" {
		t.Fatalf("expected zero stats: %+v", stats)
	}
}
