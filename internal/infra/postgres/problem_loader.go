package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"quest-academy-service/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ProblemLoader loads problem-set JSONB from Postgres.
type ProblemLoader struct {
	pool *pgxpool.Pool
}

func NewProblemLoader(pool *pgxpool.Pool) *ProblemLoader {
	return &ProblemLoader{pool: pool}
}

func (l *ProblemLoader) LoadProblems(ctx context.Context, setID string) ([]domain.Problem, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM problem_sets WHERE id=$1`, setID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProblemSetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load problem set: %w", err)
	}
	var problems []domain.Problem
	if err := json.Unmarshal(raw, &problems); err != nil {
		return nil, fmt.Errorf("unmarshal problem set: %w", err)
	}
	return problems, nil
}
