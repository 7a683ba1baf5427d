package queries

import (
	"context"
	"log/slog"

	"padel-booking/internal/infra"
	"padel-booking/internal/pkg/errs"
)

type CourtReadStore interface {
	FindByID(ctx context.Context, id int64) (*CourtView, error)
	List(ctx context.Context) ([]*CourtView, error)
}

// CourtCache is a read-through cache for single-court lookups. A miss or a
// backend failure both report found=false.
type CourtCache interface {
	Get(ctx context.Context, id int64) (*CourtView, bool)
	Set(ctx context.Context, view *CourtView)
}

type CourtQueries interface {
	GetByID(ctx context.Context, id int64) (*CourtView, error)
	List(ctx context.Context) ([]*CourtView, error)
}

type courtQueriesImpl struct {
	store CourtReadStore
	cache CourtCache
}

func NewCourtQueries(store CourtReadStore, cache CourtCache) CourtQueries {
	return &courtQueriesImpl{store: store, cache: cache}
}

func (q *courtQueriesImpl) GetByID(ctx context.Context, id int64) (*CourtView, error) {
	if view, ok := q.cache.Get(ctx, id); ok {
		slog.Debug("court cache hit", "court_id", id)
		return view, nil
	}

	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCourtNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	q.cache.Set(ctx, view)
	return view, nil
}

func (q *courtQueriesImpl) List(ctx context.Context) ([]*CourtView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
