package domain

import "math"

// OutcomeBase carries the fields every session emits at termination.
type OutcomeBase struct {
	Subject        Subject `json:"subject"`
	Difficulty     int     `json:"difficulty"`
	Score          int     `json:"score"`
	CorrectAnswers int     `json:"correctAnswers"`
	TotalProblems  int     `json:"totalProblems"`
	Completed      bool    `json:"completed"`
	ElapsedSeconds int     `json:"elapsedSeconds"`
}

// Outcome is the terminal summary of a session. It is a closed set of three
// variants (lesson, game, challenge); consumers dispatch with a type switch.
type Outcome interface {
	Base() OutcomeBase
	Mode() Mode
}

// LessonOutcome is emitted by lesson-mode sessions.
type LessonOutcome struct {
	OutcomeBase
}

func (o LessonOutcome) Base() OutcomeBase { return o.OutcomeBase }
func (o LessonOutcome) Mode() Mode        { return ModeLesson }

// GameOutcome is emitted by game-mode sessions.
type GameOutcome struct {
	OutcomeBase
	GameType      string `json:"gameType"`
	TargetScore   int    `json:"targetScore"`
	TargetReached bool   `json:"targetReached"`
}

func (o GameOutcome) Base() OutcomeBase { return o.OutcomeBase }
func (o GameOutcome) Mode() Mode        { return ModeGame }

// ChallengeOutcome is emitted by challenge-mode sessions. TotalQuestions is
// the intended question count, which is also the accuracy denominator even
// when the run was cut short by the clock.
type ChallengeOutcome struct {
	OutcomeBase
	ChallengeType      string  `json:"challengeType"`
	TotalQuestions     int     `json:"totalQuestions"`
	TimeUsedSeconds    int     `json:"timeUsed"`
	AvgResponseSeconds float64 `json:"avgResponseSeconds"`
}

func (o ChallengeOutcome) Base() OutcomeBase { return o.OutcomeBase }
func (o ChallengeOutcome) Mode() Mode        { return ModeChallenge }

// Accuracy returns the challenge accuracy percentage over the intended
// question count.
func (o ChallengeOutcome) Accuracy() int {
	if o.TotalQuestions == 0 {
		return 0
	}
	return int(math.Round(float64(o.CorrectAnswers) * 100 / float64(o.TotalQuestions)))
}
