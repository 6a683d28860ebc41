package domain

import "time"

// GameAchievement records one completed mini-game run.
type GameAchievement struct {
	GameType       string    `json:"gameType"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	TargetScore    int       `json:"targetScore"`
	EarnedAt       time.Time `json:"earnedAt"`
}

// GameStats aggregates lifetime mini-game results.
type GameStats struct {
	GamesPlayed   int               `json:"gamesPlayed"`
	GamePoints    int               `json:"gamePoints"`
	BestScores    map[string]int    `json:"bestScores"`    // by game type
	CorrectByType map[string]int    `json:"correctByType"` // cumulative correct answers by game type
	Achievements  []GameAchievement `json:"achievements"`
}

// ChallengeBest is the per-challenge-type record, compared by score, then
// accuracy, then lower time used.
type ChallengeBest struct {
	Score    int `json:"score"`
	Accuracy int `json:"accuracy"`
	TimeUsed int `json:"timeUsed"`
}

// Beats reports whether c is a strictly better record than prev.
func (c ChallengeBest) Beats(prev ChallengeBest) bool {
	if c.Score != prev.Score {
		return c.Score > prev.Score
	}
	if c.Accuracy != prev.Accuracy {
		return c.Accuracy > prev.Accuracy
	}
	return c.TimeUsed < prev.TimeUsed
}

// ChallengeStats aggregates lifetime challenge results.
type ChallengeStats struct {
	ChallengesCompleted int                      `json:"challengesCompleted"`
	ChallengePoints     int                      `json:"challengePoints"`
	TotalTimeSeconds    int                      `json:"totalTimeSeconds"`
	Best                map[string]ChallengeBest `json:"best"` // by challenge type
	Streak              int                      `json:"streak"`
}

// Progress is the long-lived per-user aggregate. Badge list never shrinks,
// levels never decrease, and TotalPoints only grows outside an explicit reset.
type Progress struct {
	TotalPoints      int            `json:"totalPoints"`
	MathLevel        int            `json:"mathLevel"`
	ReadingLevel     int            `json:"readingLevel"`
	CompletedLessons []string       `json:"completedLessons"`
	Badges           []string       `json:"badges"`
	CurrentStreak    int            `json:"currentStreak"`
	Games            GameStats      `json:"gameStats"`
	Challenges       ChallengeStats `json:"challengeStats"`
}

// NewProgress returns the zero-valued default snapshot. Subject levels start
// at 1, everything else at zero.
func NewProgress() Progress {
	return Progress{
		MathLevel:        1,
		ReadingLevel:     1,
		CompletedLessons: []string{},
		Badges:           []string{},
		Games: GameStats{
			BestScores:    map[string]int{},
			CorrectByType: map[string]int{},
		},
		Challenges: ChallengeStats{
			Best: map[string]ChallengeBest{},
		},
	}
}

// Level returns the subject's current level.
func (p Progress) Level(subject Subject) int {
	if subject == SubjectReading {
		return p.ReadingLevel
	}
	return p.MathLevel
}

// HasBadge reports whether the badge has already been earned.
func (p Progress) HasBadge(name string) bool {
	for _, b := range p.Badges {
		if b == name {
			return true
		}
	}
	return false
}
