package session_test

import (
	"testing"
	"time"

	"quest-academy-service/internal/domain"
	"quest-academy-service/internal/session"
)

func mathProblems(n int) []domain.Problem {
	out := make([]domain.Problem, n)
	for i := range out {
		out[i] = domain.Problem{
			ID:      string(rune('a' + i)),
			Type:    domain.ProblemMultipleChoice,
			Subject: domain.SubjectMath,
			Answer:  "42",
			Options: []string{"41", "42", "43"},
			Points:  10,
		}
	}
	return out
}

// fakeClock steps time manually so response times are deterministic.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func answerCurrent(t *testing.T, sess *session.Session, value string) domain.AnswerEvent {
	t.Helper()
	if err := sess.Select(value); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	event, err := sess.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	return event
}

func TestNewRejectsEmptyProblemList(t *testing.T) {
	_, err := session.New(session.Config{Subject: domain.SubjectMath, Mode: domain.ModeLesson})
	if err != domain.ErrNoProblems {
		t.Fatalf("expected ErrNoProblems, got %v", err)
	}
}

func TestLessonRunsListOnceAndCompletes(t *testing.T) {
	problems := mathProblems(3)
	sess, err := session.New(session.Config{
		Subject:  domain.SubjectMath,
		Mode:     domain.ModeLesson,
		Problems: problems,
	})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	for i := 0; i < len(problems); i++ {
		if sess.Cursor() != i {
			t.Fatalf("expected cursor %d, got %d", i, sess.Cursor())
		}
		answerCurrent(t, sess, "42")
		if err := sess.Advance(); err != nil {
			t.Fatalf("advance failed: %v", err)
		}
	}

	outcome, done := sess.Outcome()
	if !done {
		t.Fatalf("expected completed session")
	}
	lesson, ok := outcome.(domain.LessonOutcome)
	if !ok {
		t.Fatalf("expected LessonOutcome, got %T", outcome)
	}
	if !lesson.Completed || lesson.Score != 30 || lesson.CorrectAnswers != 3 {
		t.Fatalf("unexpected outcome: %+v", lesson)
	}
	select {
	case <-sess.Done():
	default:
		t.Fatalf("Done channel should be closed")
	}
}

func TestSubmitWithoutSelection(t *testing.T) {
	sess, _ := session.New(session.Config{
		Subject:  domain.SubjectMath,
		Mode:     domain.ModeLesson,
		Problems: mathProblems(1),
	})
	if _, err := sess.Submit(); err != domain.ErrNoSelection {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}

func TestRepeatedSelectLastWins(t *testing.T) {
	sess, _ := session.New(session.Config{
		Subject:  domain.SubjectMath,
		Mode:     domain.ModeLesson,
		Problems: mathProblems(1),
	})
	if err := sess.Select("41"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	event := answerCurrent(t, sess, "42")
	if !event.Correct {
		t.Fatalf("expected last selection to win: %+v", event)
	}
}

func TestStateTransitionsRejectOutOfOrderCalls(t *testing.T) {
	sess, _ := session.New(session.Config{
		Subject:  domain.SubjectMath,
		Mode:     domain.ModeLesson,
		Problems: mathProblems(2),
	})

	if err := sess.Advance(); err != domain.ErrInvalidState {
		t.Fatalf("advance before answer: expected ErrInvalidState, got %v", err)
	}
	answerCurrent(t, sess, "42")
	if err := sess.Select("41"); err != domain.ErrInvalidState {
		t.Fatalf("select while answered: expected ErrInvalidState, got %v", err)
	}
	if _, err := sess.Submit(); err != domain.ErrInvalidState {
		t.Fatalf("double submit: expected ErrInvalidState, got %v", err)
	}
	if err := sess.Quit(); err != nil {
		t.Fatalf("quit failed: %v", err)
	}
	if err := sess.Advance(); err != domain.ErrSessionCompleted {
		t.Fatalf("advance after completion: expected ErrSessionCompleted, got %v", err)
	}
}

func TestWordScrambleIsCaseInsensitive(t *testing.T) {
	sess, _ := session.New(session.Config{
		Subject: domain.SubjectReading,
		Mode:    domain.ModeLesson,
		Problems: []domain.Problem{{
			ID:        "w1",
			Type:      domain.ProblemWordScramble,
			Subject:   domain.SubjectReading,
			Scrambled: "TCA",
			Answer:    "CAT",
		}},
	})
	event := answerCurrent(t, sess, "cat")
	if !event.Correct {
		t.Fatalf("expected case-insensitive match: %+v", event)
	}
}

func TestGameWrapsCursorAndChecksTarget(t *testing.T) {
	sess, _ := session.New(session.Config{
		Subject:          domain.SubjectMath,
		Mode:             domain.ModeGame,
		Problems:         mathProblems(2),
		TimeLimitSeconds: 60,
		TargetScore:      3,
		GameType:         "speed-math",
		PointsPerCorrect: 15,
	})

	for i := 0; i < 3; i++ {
		answerCurrent(t, sess, "42")
		if err := sess.Advance(); err != nil {
			t.Fatalf("advance failed: %v", err)
		}
	}
	// after two problems from a two-item list the cursor wraps back
	if sess.Cursor() != 1 {
		t.Fatalf("expected wrapped cursor 1, got %d", sess.Cursor())
	}
	if sess.Score() != 45 {
		t.Fatalf("expected flat 15 points per correct, got %d", sess.Score())
	}

	// run the clock out; target was already reached
	for i := 0; i < 60; i++ {
		sess.Tick()
	}
	outcome, done := sess.Outcome()
	if !done {
		t.Fatalf("expected completed session")
	}
	game, ok := outcome.(domain.GameOutcome)
	if !ok {
		t.Fatalf("expected GameOutcome, got %T", outcome)
	}
	if !game.TargetReached || !game.Completed {
		t.Fatalf("expected target reached: %+v", game)
	}
}

func TestGameBelowTargetReportsNotCompleted(t *testing.T) {
	sess, _ := session.New(session.Config{
		Subject:          domain.SubjectMath,
		Mode:             domain.ModeGame,
		Problems:         mathProblems(2),
		TimeLimitSeconds: 10,
		TargetScore:      5,
	})
	answerCurrent(t, sess, "42")
	for i := 0; i < 10; i++ {
		sess.Tick()
	}
	outcome, done := sess.Outcome()
	if !done {
		t.Fatalf("expected completed session")
	}
	game := outcome.(domain.GameOutcome)
	if game.TargetReached || game.Completed {
		t.Fatalf("expected target missed: %+v", game)
	}
	if game.Score != 10 {
		t.Fatalf("score should survive the timeout, got %d", game.Score)
	}
}

func TestQuitGameNeverReportsCompleted(t *testing.T) {
	sess, _ := session.New(session.Config{
		Subject:          domain.SubjectMath,
		Mode:             domain.ModeGame,
		Problems:         mathProblems(1),
		TimeLimitSeconds: 60,
		TargetScore:      1,
	})
	answerCurrent(t, sess, "42")
	if err := sess.Advance(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if err := sess.Quit(); err != nil {
		t.Fatalf("quit failed: %v", err)
	}
	game := mustOutcome(t, sess).(domain.GameOutcome)
	if game.Completed {
		t.Fatalf("quit must not count as completion: %+v", game)
	}
	if !game.TargetReached {
		t.Fatalf("target was reached before quitting: %+v", game)
	}
}

func TestCountdownStartsOnFirstSubmission(t *testing.T) {
	sess, _ := session.New(session.Config{
		Subject:          domain.SubjectMath,
		Mode:             domain.ModeChallenge,
		Problems:         mathProblems(3),
		TimeLimitSeconds: 300,
		ChallengeType:    "speed-challenge",
	})

	// ticks before the first submission are no-ops
	for i := 0; i < 5; i++ {
		sess.Tick()
	}
	if sess.Remaining() != 300 {
		t.Fatalf("timer must not run before first submission, remaining=%d", sess.Remaining())
	}

	answerCurrent(t, sess, "42")
	sess.Tick()
	if sess.Remaining() != 299 {
		t.Fatalf("expected 299 remaining, got %d", sess.Remaining())
	}
}

func TestChallengeSpeedBonus(t *testing.T) {
	cases := []struct {
		name     string
		subject  domain.Subject
		response time.Duration
		want     int
	}{
		{"math under window", domain.SubjectMath, 9900 * time.Millisecond, 15},
		{"math at window", domain.SubjectMath, 10 * time.Second, 10},
		{"reading under window", domain.SubjectReading, 14 * time.Second, 13},
		{"reading at window", domain.SubjectReading, 15 * time.Second, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clock := newFakeClock()
			problems := mathProblems(1)
			problems[0].Subject = tc.subject
			sess, _ := session.New(session.Config{
				Subject:          tc.subject,
				Mode:             domain.ModeChallenge,
				Problems:         problems,
				TimeLimitSeconds: 300,
				Clock:            clock.Now,
			})
			clock.Advance(tc.response)
			event := answerCurrent(t, sess, "42")
			if event.Awarded != tc.want {
				t.Fatalf("expected %d points, got %d", tc.want, event.Awarded)
			}
		})
	}
}

func TestChallengeTimerExpiryCountsAsCompleted(t *testing.T) {
	sess, _ := session.New(session.Config{
		Subject:          domain.SubjectMath,
		Mode:             domain.ModeChallenge,
		Problems:         mathProblems(5),
		TimeLimitSeconds: 3,
		ChallengeType:    "speed-challenge",
	})
	answerCurrent(t, sess, "42")
	if err := sess.Advance(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		sess.Tick()
	}
	challenge := mustOutcome(t, sess).(domain.ChallengeOutcome)
	if !challenge.Completed {
		t.Fatalf("running the clock out is a completion: %+v", challenge)
	}
	if challenge.TimeUsedSeconds != 3 {
		t.Fatalf("expected full limit used, got %d", challenge.TimeUsedSeconds)
	}
	if challenge.TotalQuestions != 5 {
		t.Fatalf("accuracy denominator is the intended question count, got %d", challenge.TotalQuestions)
	}
}

func TestChallengeAverageResponseTime(t *testing.T) {
	clock := newFakeClock()
	sess, _ := session.New(session.Config{
		Subject:          domain.SubjectMath,
		Mode:             domain.ModeChallenge,
		Problems:         mathProblems(2),
		TimeLimitSeconds: 300,
		Clock:            clock.Now,
	})

	clock.Advance(2 * time.Second)
	answerCurrent(t, sess, "42")
	if err := sess.Advance(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	clock.Advance(4 * time.Second)
	answerCurrent(t, sess, "41")
	if err := sess.Advance(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	challenge := mustOutcome(t, sess).(domain.ChallengeOutcome)
	if challenge.AvgResponseSeconds != 3 {
		t.Fatalf("expected avg 3s, got %v", challenge.AvgResponseSeconds)
	}
	if challenge.Accuracy() != 50 {
		t.Fatalf("expected 50%% accuracy, got %d", challenge.Accuracy())
	}
}

func TestFirstSuccessTaggedOnce(t *testing.T) {
	sess, _ := session.New(session.Config{
		Subject:  domain.SubjectMath,
		Mode:     domain.ModeLesson,
		Problems: mathProblems(2),
	})
	first := answerCurrent(t, sess, "42")
	if !first.FirstSuccess {
		t.Fatalf("first correct answer should be tagged: %+v", first)
	}
	if err := sess.Advance(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	second := answerCurrent(t, sess, "42")
	if second.FirstSuccess {
		t.Fatalf("only the first correct answer is tagged: %+v", second)
	}
}

func TestNotificationsOnSubmit(t *testing.T) {
	notifier := &recordingNotifier{}
	sess, _ := session.New(session.Config{
		Subject:  domain.SubjectMath,
		Mode:     domain.ModeLesson,
		Problems: mathProblems(1),
		Notifier: notifier,
	})
	if err := sess.Select("41"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if _, err := sess.Submit(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if len(notifier.got) != 1 || notifier.got[0].Kind != domain.NotifyError {
		t.Fatalf("expected error notification, got %+v", notifier.got)
	}
}

func TestOnCompleteFires(t *testing.T) {
	var got domain.Outcome
	sess, _ := session.New(session.Config{
		Subject:    domain.SubjectMath,
		Mode:       domain.ModeLesson,
		Problems:   mathProblems(1),
		OnComplete: func(o domain.Outcome) { got = o },
	})
	answerCurrent(t, sess, "42")
	if err := sess.Advance(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if got == nil {
		t.Fatalf("expected OnComplete callback")
	}
	if got.Mode() != domain.ModeLesson {
		t.Fatalf("expected lesson outcome, got %v", got.Mode())
	}
}

type recordingNotifier struct {
	got []domain.Notification
}

func (n *recordingNotifier) Notify(msg domain.Notification) {
	n.got = append(n.got, msg)
}

func mustOutcome(t *testing.T, sess *session.Session) domain.Outcome {
	t.Helper()
	outcome, done := sess.Outcome()
	if !done {
		t.Fatalf("expected completed session")
	}
	return outcome
}
