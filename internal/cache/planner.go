package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/raju8309/recipe-manager/internal/service"
)

const shoppingListKey = "planner:shopping-list"

// PlannerCache keeps the computed shopping list in redis between mutations.
// Every recipe or meal plan write invalidates the key, so readers either hit
// a fresh copy or recompute. A nil redis client makes every call a no-op.
type PlannerCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPlannerCache creates a new PlannerCache instance
func NewPlannerCache(client *redis.Client) *PlannerCache {
	return &PlannerCache{client: client, ttl: time.Hour}
}

// Get loads the cached shopping list, reporting whether it was present.
func (c *PlannerCache) Get(ctx context.Context) ([]service.ShoppingListItem, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, shoppingListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []service.ShoppingListItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("planner cache: discarding unreadable entry: %v", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return items, true
}

// Set stores the computed shopping list.
func (c *PlannerCache) Set(ctx context.Context, items []service.ShoppingListItem) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, shoppingListKey, data, c.ttl).Err(); err != nil {
		log.Printf("planner cache: failed to store shopping list: %v", err)
	}
}

// Invalidate drops the cached shopping list after a mutation.
func (c *PlannerCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, shoppingListKey).Err(); err != nil {
		log.Printf("planner cache: failed to invalidate shopping list: %v", err)
	}
}
