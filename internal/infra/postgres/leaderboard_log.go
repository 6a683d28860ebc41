package postgres

import (
	"context"
	"fmt"

	"quest-academy-service/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// LeaderboardLog is the durable append-only challenge result log. Rows are
// never updated or deleted; rank is derived by the ranking service on read.
type LeaderboardLog struct {
	pool *pgxpool.Pool
}

func NewLeaderboardLog(pool *pgxpool.Pool) *LeaderboardLog {
	return &LeaderboardLog{pool: pool}
}

func (l *LeaderboardLog) Append(ctx context.Context, entry domain.LeaderboardEntry) (domain.LeaderboardEntry, error) {
	err := l.pool.QueryRow(ctx, `
		INSERT INTO leaderboard_entries
			(user_id, display_name, subject, challenge_type, skill_level,
			 score, correct_answers, total_questions, time_used, accuracy, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		entry.UserID, entry.DisplayName, string(entry.Subject), entry.ChallengeType, entry.SkillLevel,
		entry.Score, entry.CorrectAnswers, entry.TotalQuestions, entry.TimeUsed, entry.Accuracy, entry.SubmittedAt,
	).Scan(&entry.ID)
	if err != nil {
		return domain.LeaderboardEntry{}, fmt.Errorf("insert leaderboard entry: %w", err)
	}
	return entry, nil
}

func (l *LeaderboardLog) List(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT id, user_id, display_name, subject, challenge_type, skill_level,
		       score, correct_answers, total_questions, time_used, accuracy, submitted_at
		FROM leaderboard_entries
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select leaderboard entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		var subject string
		if err := rows.Scan(&e.ID, &e.UserID, &e.DisplayName, &subject, &e.ChallengeType, &e.SkillLevel,
			&e.Score, &e.CorrectAnswers, &e.TotalQuestions, &e.TimeUsed, &e.Accuracy, &e.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		e.Subject = domain.Subject(subject)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard entries: %w", err)
	}
	return entries, nil
}
