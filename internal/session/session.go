package session

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"quest-academy-service/internal/domain"
)

// State is the session lifecycle phase.
type State int

const (
	// StatePresenting means the current problem is shown and no answer has
	// been submitted for it yet.
	StatePresenting State = iota
	// StateAnswered means an answer was submitted and scored; the session is
	// waiting for Advance.
	StateAnswered
	// StateCompleted is terminal.
	StateCompleted
)

// Speed bonus policy for challenge mode. Hardcoded per subject, kept as
// constants rather than a derived formula.
const (
	mathBonusWindowSeconds    = 10.0
	mathBonusMultiplier       = 1.5
	readingBonusWindowSeconds = 15.0
	readingBonusMultiplier    = 1.3
)

// Notifier receives fire-and-forget toast notifications. No acknowledgment.
type Notifier interface {
	Notify(domain.Notification)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(domain.Notification) {}

// Config describes one practice run. TimeLimitSeconds and TargetScore are
// only meaningful for game/challenge modes.
type Config struct {
	Subject          domain.Subject
	Difficulty       int
	Mode             domain.Mode
	Problems         []domain.Problem
	TimeLimitSeconds int
	TargetScore      int    // games: correct-answer threshold
	GameType         string // games
	PointsPerCorrect int    // games: overrides per-problem points when set
	ChallengeType    string // challenges
	Notifier         Notifier
	Clock            func() time.Time
	OnComplete       func(domain.Outcome)
}

// Session drives a single practice run from problem presentation through
// answer scoring to completion. All methods are safe for concurrent use; in
// practice calls arrive one at a time from user actions and clock ticks.
type Session struct {
	mu sync.Mutex

	cfg      Config
	problems []domain.Problem
	now      func() time.Time
	notifier Notifier
	sched    *Scheduler

	state        State
	cursor       int
	selected     string
	score        int
	correct      int
	answers      []domain.AnswerEvent
	responseSecs []float64 // challenge mode, appended on Advance
	firstCorrect bool

	timerStarted bool
	remaining    int

	startedAt   time.Time
	presentedAt time.Time

	outcome domain.Outcome
	done    chan struct{}
}

// New builds a session in the Presenting state. An empty problem list is the
// terminal no-content condition and returns domain.ErrNoProblems.
func New(cfg Config) (*Session, error) {
	if len(cfg.Problems) == 0 {
		return nil, domain.ErrNoProblems
	}
	if cfg.Notifier == nil {
		cfg.Notifier = NopNotifier{}
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	now := cfg.Clock()
	return &Session{
		cfg:         cfg,
		problems:    cfg.Problems,
		now:         cfg.Clock,
		notifier:    cfg.Notifier,
		sched:       NewScheduler(),
		state:       StatePresenting,
		remaining:   cfg.TimeLimitSeconds,
		startedAt:   now,
		presentedAt: now,
		done:        make(chan struct{}),
	}, nil
}

// Current returns the problem at the cursor.
func (s *Session) Current() domain.Problem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.problems[s.cursor]
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Score returns the accumulated session score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// CorrectCount returns the number of correct answers so far.
func (s *Session) CorrectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.correct
}

// Remaining returns the countdown seconds left, or the full limit before the
// timer has started.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Cursor returns the current problem index.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// ProblemCount returns the length of the problem list.
func (s *Session) ProblemCount() int {
	return len(s.problems)
}

// Answers returns the ordered answer events recorded so far.
func (s *Session) Answers() []domain.AnswerEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AnswerEvent, len(s.answers))
	copy(out, s.answers)
	return out
}

// Outcome returns the terminal summary once the session has completed.
func (s *Session) Outcome() (domain.Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome, s.state == StateCompleted
}

// Done is closed when the session reaches the terminal state.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Select records a tentative answer for the current problem. Valid only while
// presenting; repeated calls overwrite the previous selection.
func (s *Session) Select(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCompleted {
		return domain.ErrSessionCompleted
	}
	if s.state != StatePresenting {
		return domain.ErrInvalidState
	}
	s.selected = value
	return nil
}

// Submit scores the selected answer against the current problem and moves the
// session to Answered. The countdown starts on the first submission, not on
// session creation.
func (s *Session) Submit() (domain.AnswerEvent, error) {
	s.mu.Lock()
	if s.state == StateCompleted {
		s.mu.Unlock()
		return domain.AnswerEvent{}, domain.ErrSessionCompleted
	}
	if s.state != StatePresenting {
		s.mu.Unlock()
		return domain.AnswerEvent{}, domain.ErrInvalidState
	}
	if s.selected == "" {
		s.mu.Unlock()
		return domain.AnswerEvent{}, domain.ErrNoSelection
	}

	if s.cfg.TimeLimitSeconds > 0 && !s.timerStarted {
		s.timerStarted = true
	}

	problem := s.problems[s.cursor]
	responseSecs := s.now().Sub(s.presentedAt).Seconds()
	correct := answersMatch(problem, s.selected)

	event := domain.AnswerEvent{
		ProblemID:       problem.ID,
		Submitted:       s.selected,
		Correct:         correct,
		ResponseSeconds: responseSecs,
	}
	if correct {
		event.Awarded = s.awardLocked(problem, responseSecs)
		if !s.firstCorrect {
			s.firstCorrect = true
			event.FirstSuccess = true
		}
		s.score += event.Awarded
		s.correct++
	}
	s.answers = append(s.answers, event)
	s.selected = ""
	s.state = StateAnswered

	notifier := s.notifier
	s.mu.Unlock()

	if correct {
		notifier.Notify(domain.Notification{
			Kind:       domain.NotifySuccess,
			Message:    fmt.Sprintf("Correct! +%d points", event.Awarded),
			DurationMs: 2000,
		})
	} else {
		notifier.Notify(domain.Notification{
			Kind:       domain.NotifyError,
			Message:    "Not quite right. Try again!",
			DurationMs: 2000,
		})
	}
	return event, nil
}

// awardLocked computes the points for a correct answer, applying the
// challenge speed bonus when the response beat the subject's window.
func (s *Session) awardLocked(problem domain.Problem, responseSecs float64) int {
	base := problem.BasePoints()
	if s.cfg.Mode == domain.ModeGame && s.cfg.PointsPerCorrect > 0 {
		base = s.cfg.PointsPerCorrect
	}
	if s.cfg.Mode != domain.ModeChallenge {
		return base
	}
	window, multiplier := mathBonusWindowSeconds, mathBonusMultiplier
	if s.cfg.Subject == domain.SubjectReading {
		window, multiplier = readingBonusWindowSeconds, readingBonusMultiplier
	}
	if responseSecs < window {
		return int(math.Floor(float64(base) * multiplier))
	}
	return base
}

// Advance moves from Answered back to Presenting, or to Completed when the
// run is over. Game mode wraps the cursor for continuous replay; challenge
// mode records the answered problem's response time for averaging.
func (s *Session) Advance() error {
	s.mu.Lock()
	if s.state == StateCompleted {
		s.mu.Unlock()
		return domain.ErrSessionCompleted
	}
	if s.state != StateAnswered {
		s.mu.Unlock()
		return domain.ErrInvalidState
	}

	if s.cfg.Mode == domain.ModeChallenge && len(s.answers) > 0 {
		s.responseSecs = append(s.responseSecs, s.answers[len(s.answers)-1].ResponseSeconds)
	}

	expired := s.timerStarted && s.remaining <= 0
	last := s.cursor == len(s.problems)-1

	switch s.cfg.Mode {
	case domain.ModeGame:
		if expired {
			s.completeLocked(false, false)
			return nil // completeLocked unlocks
		}
		if last {
			s.cursor = 0
		} else {
			s.cursor++
		}
	default: // lesson and challenge run the list once
		if expired || last {
			s.completeLocked(true, false)
			return nil
		}
		s.cursor++
	}

	s.state = StatePresenting
	s.presentedAt = s.now()
	s.mu.Unlock()
	return nil
}

// Quit terminates the session early, preserving the accumulated score.
func (s *Session) Quit() error {
	s.mu.Lock()
	if s.state == StateCompleted {
		s.mu.Unlock()
		return domain.ErrSessionCompleted
	}
	s.completeLocked(false, true)
	return nil
}

// Tick advances the countdown by one second. Ticks before the first
// submission or after completion are no-ops.
func (s *Session) Tick() {
	s.mu.Lock()
	if s.state == StateCompleted || !s.timerStarted {
		s.mu.Unlock()
		return
	}
	s.remaining--
	if s.remaining > 0 {
		s.mu.Unlock()
		return
	}
	s.remaining = 0
	s.completeLocked(s.cfg.Mode != domain.ModeGame, false)
}

// Defer schedules fn after d unless the session completes first. The caller
// may also cancel explicitly via the returned func.
func (s *Session) Defer(d time.Duration, fn func()) (cancel func()) {
	return s.sched.After(d, fn)
}

// RunClock drives Tick once per interval until the session completes. It is
// the production countdown; tests call Tick directly.
func (s *Session) RunClock(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Tick()
			case <-s.done:
				return
			}
		}
	}()
}

// completeLocked moves the session to the terminal state, builds the outcome,
// cancels outstanding timers, and fires notifications. It is called with the
// mutex held and releases it. A quit always reports completed=false; a game
// that ran its clock out reports completed=targetReached.
func (s *Session) completeLocked(completed, quit bool) {
	targetReached := s.cfg.Mode == domain.ModeGame && s.correct >= s.cfg.TargetScore

	base := domain.OutcomeBase{
		Subject:        s.cfg.Subject,
		Difficulty:     s.cfg.Difficulty,
		Score:          s.score,
		CorrectAnswers: s.correct,
		TotalProblems:  len(s.problems),
		Completed:      completed,
		ElapsedSeconds: int(s.now().Sub(s.startedAt).Seconds()),
	}

	var outcome domain.Outcome
	switch s.cfg.Mode {
	case domain.ModeGame:
		base.Completed = targetReached && !quit
		outcome = domain.GameOutcome{
			OutcomeBase:   base,
			GameType:      s.cfg.GameType,
			TargetScore:   s.cfg.TargetScore,
			TargetReached: targetReached,
		}
	case domain.ModeChallenge:
		timeUsed := 0
		if s.timerStarted {
			timeUsed = s.cfg.TimeLimitSeconds - s.remaining
		}
		outcome = domain.ChallengeOutcome{
			OutcomeBase:        base,
			ChallengeType:      s.cfg.ChallengeType,
			TotalQuestions:     len(s.problems),
			TimeUsedSeconds:    timeUsed,
			AvgResponseSeconds: average(s.responseSecs),
		}
	default:
		outcome = domain.LessonOutcome{OutcomeBase: base}
	}

	s.state = StateCompleted
	s.outcome = outcome
	notifier := s.notifier
	onComplete := s.cfg.OnComplete
	close(s.done)
	s.mu.Unlock()

	s.sched.Stop()
	notifier.Notify(completionNotification(outcome))
	if onComplete != nil {
		onComplete(outcome)
	}
}

func completionNotification(outcome domain.Outcome) domain.Notification {
	base := outcome.Base()
	switch o := outcome.(type) {
	case domain.GameOutcome:
		if o.TargetReached {
			return domain.Notification{
				Kind:       domain.NotifySuccess,
				Message:    fmt.Sprintf("Game Complete! Target reached: %d/%d. Total: %d points!", o.CorrectAnswers, o.TargetScore, o.Score),
				DurationMs: 4000,
			}
		}
		return domain.Notification{
			Kind:       domain.NotifySuccess,
			Message:    fmt.Sprintf("Game Over! Score: %d/%d. Total: %d points. Try again!", o.CorrectAnswers, o.TargetScore, o.Score),
			DurationMs: 4000,
		}
	case domain.ChallengeOutcome:
		return domain.Notification{
			Kind:       domain.NotifySuccess,
			Message:    fmt.Sprintf("Challenge finished! %d/%d correct, %d points", o.CorrectAnswers, o.TotalQuestions, o.Score),
			DurationMs: 4000,
		}
	default:
		if base.Completed {
			return domain.Notification{
				Kind:       domain.NotifySuccess,
				Message:    fmt.Sprintf("Session complete! Total: %d points", base.Score),
				DurationMs: 3000,
			}
		}
		return domain.Notification{
			Kind:       domain.NotifySuccess,
			Message:    fmt.Sprintf("Session ended. Total: %d points", base.Score),
			DurationMs: 3000,
		}
	}
}

// answersMatch compares a submitted value against the canonical answer.
// Word-scramble answers are typed free-form and upper-cased before
// comparison; every other problem type compares exactly.
func answersMatch(problem domain.Problem, submitted string) bool {
	if problem.Type == domain.ProblemWordScramble {
		return strings.ToUpper(submitted) == strings.ToUpper(problem.Answer)
	}
	return submitted == problem.Answer
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
