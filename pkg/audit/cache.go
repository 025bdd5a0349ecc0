package audit

import (
	"context"
	"encoding/json"

	"github.com/diabd/platform/pkg/common/models"
	"github.com/redis/go-redis/v9"
)

const recentKey = "predictions:recent"

// Cache keeps a capped newest-first ring of recent predictions in Redis so
// the logs endpoint avoids re-reading the CSV trail on every request.
type Cache struct {
	client *redis.Client
	limit  int
}

func NewCache(client *redis.Client, limit int) *Cache {
	if limit <= 0 {
		limit = 100
	}
	return &Cache{client: client, limit: limit}
}

func (c *Cache) Push(ctx context.Context, entry models.AuditEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	pipe := c.client.TxPipeline()
	pipe.LPush(ctx, recentKey, data)
	pipe.LTrim(ctx, recentKey, 0, int64(c.limit-1))
	_, err = pipe.Exec(ctx)
	return err
}

func (c *Cache) Recent(ctx context.Context, n int) ([]models.AuditEntry, error) {
	if n <= 0 || n > c.limit {
		n = c.limit
	}
	raw, err := c.client.LRange(ctx, recentKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]models.AuditEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.AuditEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
