package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"quest-academy-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// DefaultProgressKey is the storage key for the single-user progress
// snapshot, the server-side analog of the browser's local storage slot.
const DefaultProgressKey = "quest:progress"

// ProgressRepository persists the whole progress aggregate as one JSON value
// under a single key. Every save overwrites the full object; there are no
// delta writes.
type ProgressRepository struct {
	client *redis.Client
	key    string
}

func NewProgressRepository(client *redis.Client, key string) *ProgressRepository {
	if key == "" {
		key = DefaultProgressKey
	}
	return &ProgressRepository{client: client, key: key}
}

func (r *ProgressRepository) Load(ctx context.Context) (domain.Progress, bool, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return domain.Progress{}, false, nil
	}
	if err != nil {
		return domain.Progress{}, false, fmt.Errorf("load progress: %w", err)
	}
	var p domain.Progress
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Progress{}, false, fmt.Errorf("unmarshal progress: %w", err)
	}
	return p, true, nil
}

func (r *ProgressRepository) Save(ctx context.Context, p domain.Progress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
