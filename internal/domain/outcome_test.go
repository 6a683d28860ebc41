package domain_test

import (
	"testing"

	"quest-academy-service/internal/domain"
)

func TestChallengeAccuracyRoundsToNearest(t *testing.T) {
	cases := []struct {
		correct, total, want int
	}{
		{2, 3, 67},
		{1, 3, 33},
		{1, 2, 50},
		{7, 40, 18}, // 17.5 rounds up
		{20, 20, 100},
		{0, 20, 0},
		{0, 0, 0},
	}
	for _, tc := range cases {
		outcome := domain.ChallengeOutcome{
			OutcomeBase:    domain.OutcomeBase{CorrectAnswers: tc.correct},
			TotalQuestions: tc.total,
		}
		if got := outcome.Accuracy(); got != tc.want {
			t.Fatalf("%d/%d: expected accuracy %d, got %d", tc.correct, tc.total, tc.want, got)
		}
	}
}
