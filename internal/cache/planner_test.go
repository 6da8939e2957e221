package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raju8309/recipe-manager/internal/service"
)

// Services receive the cache as an interface and the server only wires it
// when redis is reachable, but every method must also tolerate a cache
// constructed around a nil client.
func TestPlannerCacheNilClientIsNoop(t *testing.T) {
	ctx := context.Background()
	c := NewPlannerCache(nil)

	items, ok := c.Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, items)

	c.Set(ctx, []service.ShoppingListItem{{Name: "Flour", Amount: 500, Unit: "g"}})
	c.Invalidate(ctx)

	_, ok = c.Get(ctx)
	assert.False(t, ok)
}
