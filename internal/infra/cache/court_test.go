//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"padel-booking/internal/infra/cache"
	"padel-booking/tests/common/builder"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis keeps entries in a map; only the commands the cache issues are implemented.
type fakeRedis struct {
	redis.Cmdable
	data    map[string]string
	ttls    map[string]time.Duration
	failing error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failing != nil {
		return redis.NewStringResult("", f.failing)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if f.failing != nil {
		return redis.NewStatusResult("", f.failing)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.failing != nil {
		return redis.NewIntResult(0, f.failing)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestCourtCache(t *testing.T) {
	ctx := context.Background()
	view := builder.NewCourtBuilder().WithID(5).WithName("Centre Court").BuildView()

	t.Run("set then get round-trips the view", func(t *testing.T) {
		rdb := newFakeRedis()
		c := cache.NewCourtCache(rdb, time.Minute)

		c.Set(ctx, view)
		got, ok := c.Get(ctx, 5)

		require.True(t, ok)
		assert.Equal(t, "Centre Court", got.Name)
		assert.Equal(t, view.Price, got.Price)
		assert.Equal(t, time.Minute, rdb.ttls["padel:court:5"])
	})

	t.Run("unknown key is a miss", func(t *testing.T) {
		_, ok := cache.NewCourtCache(newFakeRedis(), time.Minute).Get(ctx, 5)
		assert.False(t, ok)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		rdb := newFakeRedis()
		c := cache.NewCourtCache(rdb, time.Minute)
		c.Set(ctx, view)

		c.Invalidate(ctx, 5)

		_, ok := c.Get(ctx, 5)
		assert.False(t, ok)
	})

	t.Run("corrupt entry is a miss", func(t *testing.T) {
		rdb := newFakeRedis()
		rdb.data["padel:court:5"] = "{not json"

		_, ok := cache.NewCourtCache(rdb, time.Minute).Get(ctx, 5)
		assert.False(t, ok)
	})

	t.Run("backend failure degrades to a miss", func(t *testing.T) {
		rdb := newFakeRedis()
		rdb.failing = errors.New("connection refused")
		c := cache.NewCourtCache(rdb, time.Minute)

		assert.NotPanics(t, func() {
			c.Set(ctx, view)
			c.Invalidate(ctx, 5)
		})
		_, ok := c.Get(ctx, 5)
		assert.False(t, ok)
	})
}
