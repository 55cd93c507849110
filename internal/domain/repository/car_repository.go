package repository

import (
	"context"

	"carvendor/internal/domain/entity"
)

// CarSubscription delivers the full current car set after every change to
// the backing collection. Deliveries are whole snapshots, never diffs, and
// bursts of changes may each trigger a redelivery; consumers replace their
// state in place. Unsubscribe must be called on teardown.
type CarSubscription interface {
	Updates() <-chan []*entity.Car
	Err() error
	Unsubscribe()
}

type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	GetByID(ctx context.Context, id string) (*entity.Car, error)
	// List returns cars newest-first. cursor is the opaque continuation
	// token from a previous page; empty means start from the top. The
	// returned cursor is empty when the set is exhausted.
	List(ctx context.Context, limit int, cursor string) ([]*entity.Car, string, error)
	ListFeatured(ctx context.Context) ([]*entity.Car, error)
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id string) error
	Watch(ctx context.Context) (CarSubscription, error)
}
