package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilClientAlwaysMisses(t *testing.T) {
	t.Parallel()

	c := NewRedisCache(nil, slog.Default())

	// Set must be a no-op and Get a miss.
	c.Set(context.Background(), "key", []byte("value"), time.Minute)

	value, ok := c.Get(context.Background(), "key")
	assert.False(t, ok)
	assert.Nil(t, value)
}
