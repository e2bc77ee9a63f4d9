// Package scorecache keeps per-game average scores in Redis so the hot
// "what does this game rate" lookup skips the aggregate query.
package scorecache

import (
	"Meeple/services/scores"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const averageTTL = 5 * time.Minute

// Cache wraps the Redis client. A nil Cache (or one built from a nil
// client) is valid and behaves as a permanent miss, so the server runs
// fine without Redis.
type Cache struct {
	client *redis.Client
}

func New(client *redis.Client) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client}
}

func averageKey(gameID int) string {
	return fmt.Sprintf("game_average:%d", gameID)
}

// GetAverage returns the cached aggregate for a game, if any.
func (c *Cache) GetAverage(ctx context.Context, gameID int) (scores.Average, bool) {
	if c == nil {
		return scores.Average{}, false
	}
	payload, err := c.client.Get(ctx, averageKey(gameID)).Bytes()
	if err != nil {
		return scores.Average{}, false
	}
	var avg scores.Average
	if err := json.Unmarshal(payload, &avg); err != nil {
		return scores.Average{}, false
	}
	return avg, true
}

// SetAverage stores the aggregate for a game.
func (c *Cache) SetAverage(ctx context.Context, gameID int, avg scores.Average) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(avg)
	if err != nil {
		return
	}
	c.client.Set(ctx, averageKey(gameID), payload, averageTTL)
}

// Invalidate drops the cached aggregate after a rating changes.
func (c *Cache) Invalidate(ctx context.Context, gameID int) {
	if c == nil {
		return
	}
	c.client.Del(ctx, averageKey(gameID))
}
