package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"padel-booking/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
)

const courtKeyPrefix = "padel:court:"

func courtKey(id int64) string {
	return courtKeyPrefix + strconv.FormatInt(id, 10)
}

// CourtCache stores single-court views. Redis failures degrade to a cache
// miss so a broken cache never fails a request.
type CourtCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewCourtCache(client redis.Cmdable, ttl time.Duration) *CourtCache {
	return &CourtCache{client: client, ttl: ttl}
}

func (c *CourtCache) Get(ctx context.Context, id int64) (*queries.CourtView, bool) {
	raw, err := c.client.Get(ctx, courtKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("court cache read failed", "court_id", id, "error", err.Error())
		}
		return nil, false
	}

	var view queries.CourtView
	if err := json.Unmarshal(raw, &view); err != nil {
		slog.Warn("court cache entry is corrupt", "court_id", id, "error", err.Error())
		return nil, false
	}
	return &view, true
}

func (c *CourtCache) Set(ctx context.Context, view *queries.CourtView) {
	data, err := json.Marshal(view)
	if err != nil {
		slog.Warn("court cache encode failed", "court_id", view.ID, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, courtKey(view.ID), data, c.ttl).Err(); err != nil {
		slog.Warn("court cache write failed", "court_id", view.ID, "error", err.Error())
	}
}

func (c *CourtCache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, courtKey(id)).Err(); err != nil {
		slog.Warn("court cache invalidation failed", "court_id", id, "error", err.Error())
	}
}

// NopCourtCache is used when no Redis address is configured.
type NopCourtCache struct{}

func (NopCourtCache) Get(context.Context, int64) (*queries.CourtView, bool) { return nil, false }
func (NopCourtCache) Set(context.Context, *queries.CourtView)              {}
func (NopCourtCache) Invalidate(context.Context, int64)                    {}
