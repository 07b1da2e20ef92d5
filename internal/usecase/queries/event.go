package queries

import (
	"context"

	"seat-reservation/internal/infra"
	"seat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=event.go -destination=../../../tests/mock/queries/event.go -package=queriesmock

type EventReadStore interface {
	List(ctx context.Context) ([]*EventView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type EventQueries interface {
	List(ctx context.Context) ([]*EventView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type eventQueriesImpl struct {
	store EventReadStore
}

func NewEventQueries(store EventReadStore) EventQueries {
	return &eventQueriesImpl{store: store}
}

func (q *eventQueriesImpl) List(ctx context.Context) ([]*EventView, error) {
	events, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return events, nil
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	ev, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ev, nil
}
