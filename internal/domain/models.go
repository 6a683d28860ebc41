package domain

import "time"

// Subject identifies a practice subject.
type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectReading Subject = "reading"
)

// Valid reports whether the subject is one the service knows about.
func (s Subject) Valid() bool {
	return s == SubjectMath || s == SubjectReading
}

// Mode distinguishes the three kinds of practice runs.
type Mode string

const (
	ModeLesson    Mode = "lesson"
	ModeGame      Mode = "game"
	ModeChallenge Mode = "challenge"
)

// ProblemType drives per-type answer normalization and rendering hints.
type ProblemType string

const (
	ProblemMultipleChoice ProblemType = "multiple-choice"
	ProblemSpeedMath      ProblemType = "speed-math"
	ProblemNumberSequence ProblemType = "number-sequence"
	ProblemWordScramble   ProblemType = "word-scramble"
	ProblemComprehension  ProblemType = "comprehension"
)

// Problem is one question presented during a session. Immutable once loaded.
type Problem struct {
	ID         string      `json:"id"`
	Type       ProblemType `json:"type"`
	Subject    Subject     `json:"subject"`
	Difficulty int         `json:"difficulty"`
	Question   string      `json:"question"`
	Story      string      `json:"story,omitempty"`     // reading passages
	Sequence   []string    `json:"sequence,omitempty"`  // number-sequence payload, "?" marks the blank
	Scrambled  string      `json:"scrambled,omitempty"` // word-scramble payload
	Hint       string      `json:"hint,omitempty"`
	Options    []string    `json:"options,omitempty"` // empty for free-form answers
	Answer     string      `json:"answer"`
	Points     int         `json:"points"` // defaults to 10 if zero
}

// BasePoints returns the problem's point value with the catalog default applied.
func (p Problem) BasePoints() int {
	if p.Points > 0 {
		return p.Points
	}
	return 10
}

// AnswerEvent is the per-problem record retained by a session.
type AnswerEvent struct {
	ProblemID       string  `json:"problemId"`
	Submitted       string  `json:"submitted"`
	Correct         bool    `json:"correct"`
	ResponseSeconds float64 `json:"responseSeconds"`
	Awarded         int     `json:"awarded"`
	FirstSuccess    bool    `json:"firstSuccess,omitempty"`
}

// Game describes one mini-game from the catalog.
type Game struct {
	ID               string  `json:"id"`
	Type             string  `json:"type"`
	Title            string  `json:"title"`
	Subject          Subject `json:"subject"`
	Difficulty       int     `json:"difficulty"`
	TimeLimitSeconds int     `json:"timeLimit"`
	TargetScore      int     `json:"targetScore"`
	PointsPerCorrect int     `json:"pointsPerCorrect"`
}

// ChallengeType describes a timed, leaderboard-eligible challenge variant.
type ChallengeType struct {
	Type             string    `json:"type"`
	Name             string    `json:"name"`
	TimeLimitSeconds int       `json:"timeLimit"`
	MaxQuestions     int       `json:"maxQuestions"`
	Subjects         []Subject `json:"subjects"`
}

// NotificationKind classifies toast-style notifications.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is a fire-and-forget message for the UI toast layer.
type Notification struct {
	Kind       NotificationKind `json:"kind"`
	Message    string           `json:"message"`
	DurationMs int              `json:"durationMs"`
}

// LeaderboardEntry is one row of the append-only challenge result log.
// Rank is derived at query time, never stored authoritatively.
type LeaderboardEntry struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"userId"`
	DisplayName    string    `json:"userName"`
	Subject        Subject   `json:"subject"`
	ChallengeType  string    `json:"challengeType"`
	SkillLevel     int       `json:"skillLevel"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	TimeUsed       int       `json:"timeUsed"`
	Accuracy       int       `json:"accuracy"`
	Rank           int       `json:"rank"`
	SubmittedAt    time.Time `json:"date"`
}

// Period bounds leaderboard queries to a trailing time window.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// Filters narrow leaderboard queries. Zero-valued fields match everything.
type Filters struct {
	Subject       Subject `json:"subject,omitempty"`
	ChallengeType string  `json:"challengeType,omitempty"`
	SkillLevel    int     `json:"skillLevel,omitempty"`
	Period        Period  `json:"period,omitempty"`
	Limit         int     `json:"limit,omitempty"`
}

// Ranking is a single user's leaderboard position within a filter scope.
type Ranking struct {
	Entry        LeaderboardEntry `json:"entry"`
	TotalPlayers int              `json:"totalPlayers"`
}

// PlayerStats aggregates a user's challenge history across the log.
type PlayerStats struct {
	TotalChallenges   int    `json:"totalChallenges"`
	BestScore         int    `json:"bestScore"`
	AverageAccuracy   int    `json:"averageAccuracy"`
	TotalPoints       int    `json:"totalPoints"`
	FavoriteChallenge string `json:"favoriteChallenge,omitempty"`
}
