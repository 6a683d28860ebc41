package catalog

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"quest-academy-service/internal/domain"
)

// Lesson sample sizes. Reading sessions are shorter because passages take
// longer to work through.
const (
	mathLessonSize    = 5
	readingLessonSize = 3
)

// ProblemRepository loads problem sets by key (from cache/backing store).
type ProblemRepository interface {
	Problems(ctx context.Context, setID string) ([]domain.Problem, error)
}

// GameRepository loads the mini-game catalog.
type GameRepository interface {
	Games(ctx context.Context, subject domain.Subject, difficulty int) ([]domain.Game, error)
	Game(ctx context.Context, gameID string) (domain.Game, error)
}

// SetID is the storage key for a subject's problem pool at one difficulty.
func SetID(subject domain.Subject, difficulty int) string {
	return fmt.Sprintf("%s-%d", subject, difficulty)
}

// GameSetID is the storage key for a game type's question pool.
func GameSetID(gameType string, difficulty int) string {
	return fmt.Sprintf("game-%s-%d", gameType, difficulty)
}

// challengeTypes is the fixed challenge catalog.
var challengeTypes = []domain.ChallengeType{
	{
		Type:             "speed-challenge",
		Name:             "Speed Challenge",
		TimeLimitSeconds: 300,
		MaxQuestions:     20,
		Subjects:         []domain.Subject{domain.SubjectMath, domain.SubjectReading},
	},
	{
		Type:             "accuracy-challenge",
		Name:             "Accuracy Challenge",
		TimeLimitSeconds: 600,
		MaxQuestions:     20,
		Subjects:         []domain.Subject{domain.SubjectMath, domain.SubjectReading},
	},
	{
		Type:             "comprehension-challenge",
		Name:             "Comprehension Challenge",
		TimeLimitSeconds: 480,
		MaxQuestions:     15,
		Subjects:         []domain.Subject{domain.SubjectReading},
	},
	{
		Type:             "endurance-challenge",
		Name:             "Endurance Challenge",
		TimeLimitSeconds: 900,
		MaxQuestions:     40,
		Subjects:         []domain.Subject{domain.SubjectMath, domain.SubjectReading},
	},
}

// Service applies sampling policy over the content repositories: which
// problems a session gets and how many, per mode.
type Service struct {
	problems ProblemRepository
	games    GameRepository
	rnd      *rand.Rand
}

// NewService builds a catalog service.
func NewService(problems ProblemRepository, games GameRepository) *Service {
	return &Service{
		problems: problems,
		games:    games,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewServiceWithRand is test-only for deterministic sampling.
func NewServiceWithRand(problems ProblemRepository, games GameRepository, rnd *rand.Rand) *Service {
	return &Service{problems: problems, games: games, rnd: rnd}
}

// FetchProblems returns the sampled problem list for a lesson or challenge.
// Lessons get a small fixed-size random sample; challenges get the challenge
// type's question count. Returned problems always match the requested
// difficulty.
func (s *Service) FetchProblems(ctx context.Context, subject domain.Subject, difficulty int, mode domain.Mode, challengeType string) ([]domain.Problem, error) {
	if !subject.Valid() {
		return nil, domain.ErrInvalidSubject
	}

	pool, err := s.problems.Problems(ctx, SetID(subject, difficulty))
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Problem, 0, len(pool))
	for _, p := range pool {
		if p.Difficulty == difficulty {
			matched = append(matched, p)
		}
	}

	size := mathLessonSize
	if subject == domain.SubjectReading {
		size = readingLessonSize
	}
	if mode == domain.ModeChallenge {
		ct, err := s.ChallengeType(subject, challengeType)
		if err != nil {
			return nil, err
		}
		size = ct.MaxQuestions
	}

	shuffled := make([]domain.Problem, len(matched))
	copy(shuffled, matched)
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > size {
		shuffled = shuffled[:size]
	}
	return shuffled, nil
}

// Games lists the mini-games for a subject and difficulty.
func (s *Service) Games(ctx context.Context, subject domain.Subject, difficulty int) ([]domain.Game, error) {
	if !subject.Valid() {
		return nil, domain.ErrInvalidSubject
	}
	return s.games.Games(ctx, subject, difficulty)
}

// StartGame resolves a game and its shuffled question list.
func (s *Service) StartGame(ctx context.Context, gameID string) (domain.Game, []domain.Problem, error) {
	game, err := s.games.Game(ctx, gameID)
	if err != nil {
		return domain.Game{}, nil, err
	}
	questions, err := s.problems.Problems(ctx, GameSetID(game.Type, game.Difficulty))
	if err != nil {
		return domain.Game{}, nil, err
	}
	shuffled := make([]domain.Problem, len(questions))
	copy(shuffled, questions)
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return game, shuffled, nil
}

// ChallengeTypes lists challenge variants, optionally narrowed to a subject.
func (s *Service) ChallengeTypes(subject domain.Subject) []domain.ChallengeType {
	out := make([]domain.ChallengeType, 0, len(challengeTypes))
	for _, ct := range challengeTypes {
		if subject == "" || subjectAllowed(ct, subject) {
			out = append(out, ct)
		}
	}
	return out
}

// ChallengeType resolves one challenge variant and checks the subject is
// allowed to run it.
func (s *Service) ChallengeType(subject domain.Subject, challengeType string) (domain.ChallengeType, error) {
	for _, ct := range challengeTypes {
		if ct.Type == challengeType {
			if !subjectAllowed(ct, subject) {
				return domain.ChallengeType{}, domain.ErrChallengeNotFound
			}
			return ct, nil
		}
	}
	return domain.ChallengeType{}, domain.ErrChallengeNotFound
}

func subjectAllowed(ct domain.ChallengeType, subject domain.Subject) bool {
	for _, s := range ct.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}
