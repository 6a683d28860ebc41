package app

import (
	"context"
	"fmt"
	"log"

	"quest-academy-service/internal/catalog"
	"quest-academy-service/internal/domain"
	"quest-academy-service/internal/leaderboard"
	"quest-academy-service/internal/progress"
	"quest-academy-service/internal/session"
)

// User identifies who is practicing, for leaderboard attribution.
type User struct {
	ID          string
	DisplayName string
}

// FinishResult reports what a terminal outcome produced downstream.
type FinishResult struct {
	NewBadges    []string
	Entry        *domain.LeaderboardEntry
	TotalPlayers int
	// LeaderboardErr is set when the leaderboard leg failed; progress and
	// badges were still recorded.
	LeaderboardErr error
}

// ActivityService wires the catalog, session engine, progress store, and
// leaderboard into the practice-run use cases.
type ActivityService struct {
	catalog  *catalog.Service
	progress *progress.Store
	board    *leaderboard.Service
}

// NewActivityService builds the orchestration layer.
func NewActivityService(cat *catalog.Service, store *progress.Store, board *leaderboard.Service) *ActivityService {
	return &ActivityService{catalog: cat, progress: store, board: board}
}

// Progress returns the progress store handle for read/reset surfaces.
func (s *ActivityService) Progress() *progress.Store { return s.progress }

// Leaderboard returns the ranking service handle for query surfaces.
func (s *ActivityService) Leaderboard() *leaderboard.Service { return s.board }

// Catalog returns the content catalog handle.
func (s *ActivityService) Catalog() *catalog.Service { return s.catalog }

// StartLesson samples lesson problems and builds a lesson session.
func (s *ActivityService) StartLesson(ctx context.Context, subject domain.Subject, difficulty int, notifier session.Notifier, onComplete func(domain.Outcome)) (*session.Session, error) {
	problems, err := s.catalog.FetchProblems(ctx, subject, difficulty, domain.ModeLesson, "")
	if err != nil {
		return nil, err
	}
	return session.New(session.Config{
		Subject:    subject,
		Difficulty: difficulty,
		Mode:       domain.ModeLesson,
		Problems:   problems,
		Notifier:   notifier,
		OnComplete: onComplete,
	})
}

// StartGame resolves a mini-game and builds a game session with the game's
// clock, target, and per-correct points.
func (s *ActivityService) StartGame(ctx context.Context, gameID string, notifier session.Notifier, onComplete func(domain.Outcome)) (*session.Session, domain.Game, error) {
	game, questions, err := s.catalog.StartGame(ctx, gameID)
	if err != nil {
		return nil, domain.Game{}, err
	}
	sess, err := session.New(session.Config{
		Subject:          game.Subject,
		Difficulty:       game.Difficulty,
		Mode:             domain.ModeGame,
		Problems:         questions,
		TimeLimitSeconds: game.TimeLimitSeconds,
		TargetScore:      game.TargetScore,
		GameType:         game.Type,
		PointsPerCorrect: game.PointsPerCorrect,
		Notifier:         notifier,
		OnComplete:       onComplete,
	})
	if err != nil {
		return nil, domain.Game{}, err
	}
	return sess, game, nil
}

// StartChallenge samples challenge problems and builds a timed challenge
// session.
func (s *ActivityService) StartChallenge(ctx context.Context, subject domain.Subject, difficulty int, challengeType string, notifier session.Notifier, onComplete func(domain.Outcome)) (*session.Session, error) {
	ct, err := s.catalog.ChallengeType(subject, challengeType)
	if err != nil {
		return nil, err
	}
	problems, err := s.catalog.FetchProblems(ctx, subject, difficulty, domain.ModeChallenge, challengeType)
	if err != nil {
		return nil, err
	}
	return session.New(session.Config{
		Subject:          subject,
		Difficulty:       difficulty,
		Mode:             domain.ModeChallenge,
		Problems:         problems,
		TimeLimitSeconds: ct.TimeLimitSeconds,
		ChallengeType:    challengeType,
		Notifier:         notifier,
		OnComplete:       onComplete,
	})
}

// Finish fans a terminal outcome out to the progress store and, for completed
// challenges, the leaderboard. A quit with zero accumulated score touches
// nothing. A leaderboard failure is isolated: points and badges still land,
// the result carries the error, and the caller can tell the user that only
// the leaderboard leg failed.
func (s *ActivityService) Finish(ctx context.Context, user User, outcome domain.Outcome) FinishResult {
	base := outcome.Base()
	if !base.Completed && base.Score == 0 {
		return FinishResult{}
	}

	result := FinishResult{NewBadges: s.progress.Apply(ctx, outcome)}

	challenge, ok := outcome.(domain.ChallengeOutcome)
	if !ok || !challenge.Completed {
		return result
	}

	entry, total, err := s.board.Submit(ctx, domain.LeaderboardEntry{
		UserID:         user.ID,
		DisplayName:    user.DisplayName,
		Subject:        challenge.Subject,
		ChallengeType:  challenge.ChallengeType,
		SkillLevel:     challenge.Difficulty,
		Score:          challenge.Score,
		CorrectAnswers: challenge.CorrectAnswers,
		TotalQuestions: challenge.TotalQuestions,
		TimeUsed:       challenge.TimeUsedSeconds,
	})
	if err != nil {
		log.Printf("leaderboard submit failed for %s: %v", user.ID, err)
		result.LeaderboardErr = fmt.Errorf("submit challenge result: %w", err)
		return result
	}
	result.Entry = &entry
	result.TotalPlayers = total
	return result
}
