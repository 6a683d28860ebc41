package memory

import (
	"context"

	"quest-academy-service/internal/domain"
)

// GameRepository serves the mini-game catalog from a static list.
type GameRepository struct {
	games []domain.Game
}

func NewGameRepository(games []domain.Game) *GameRepository {
	return &GameRepository{games: games}
}

func (r *GameRepository) Games(_ context.Context, subject domain.Subject, difficulty int) ([]domain.Game, error) {
	out := make([]domain.Game, 0, len(r.games))
	for _, g := range r.games {
		if g.Subject != subject {
			continue
		}
		if difficulty != 0 && g.Difficulty != difficulty {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *GameRepository) Game(_ context.Context, gameID string) (domain.Game, error) {
	for _, g := range r.games {
		if g.ID == gameID {
			return g, nil
		}
	}
	return domain.Game{}, domain.ErrGameNotFound
}
