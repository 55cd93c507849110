package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"carvendor/internal/domain/entity"
	"carvendor/internal/domain/repository"
	"carvendor/pkg/errors"
	"carvendor/pkg/logger"
)

const carsCollection = "cars"

const featuredLimit = 6

type firestoreCarRepository struct {
	client *firestore.Client
}

func NewFirestoreCarRepository(client *firestore.Client) repository.CarRepository {
	return &firestoreCarRepository{
		client: client,
	}
}

func (r *firestoreCarRepository) Create(ctx context.Context, car *entity.Car) error {
	if car.ID == "" {
		doc := r.client.Collection(carsCollection).NewDoc()
		car.ID = doc.ID
	}

	// Timestamps are stamped here, overriding any caller-supplied value
	now := time.Now()
	car.CreatedAt = now
	car.UpdatedAt = now

	_, err := r.client.Collection(carsCollection).Doc(car.ID).Set(ctx, car)
	if err != nil {
		return errors.PersistenceFailed("Failed to create car", err)
	}

	return nil
}

func (r *firestoreCarRepository) GetByID(ctx context.Context, id string) (*entity.Car, error) {
	doc, err := r.client.Collection(carsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Car", err)
		}
		return nil, errors.PersistenceFailed("Failed to get car", err)
	}

	var car entity.Car
	if err := doc.DataTo(&car); err != nil {
		return nil, errors.PersistenceFailed("Failed to parse car data", err)
	}

	return &car, nil
}

func (r *firestoreCarRepository) List(ctx context.Context, limit int, cursor string) ([]*entity.Car, string, error) {
	query := r.client.Collection(carsCollection).Query.
		OrderBy("createdAt", firestore.Desc)

	if cursor != "" {
		after, err := decodeCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		query = query.StartAfter(after)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var cars []*entity.Car
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, "", errors.PersistenceFailed("Failed to iterate cars", err)
		}

		var car entity.Car
		if err := doc.DataTo(&car); err != nil {
			return nil, "", errors.PersistenceFailed("Failed to parse car data", err)
		}
		cars = append(cars, &car)
	}

	// A short page means the set is exhausted; no continuation cursor
	next := ""
	if limit > 0 && len(cars) == limit {
		next = encodeCursor(cars[len(cars)-1].CreatedAt)
	}

	return cars, next, nil
}

func (r *firestoreCarRepository) ListFeatured(ctx context.Context) ([]*entity.Car, error) {
	iter := r.client.Collection(carsCollection).Query.
		Where("isFeatured", "==", true).
		Where("status", "==", entity.CarStatusAvailable).
		OrderBy("createdAt", firestore.Desc).
		Limit(featuredLimit).
		Documents(ctx)
	defer iter.Stop()

	var cars []*entity.Car
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.PersistenceFailed("Failed to iterate featured cars", err)
		}

		var car entity.Car
		if err := doc.DataTo(&car); err != nil {
			return nil, errors.PersistenceFailed("Failed to parse car data", err)
		}
		cars = append(cars, &car)
	}

	return cars, nil
}

func (r *firestoreCarRepository) Update(ctx context.Context, car *entity.Car) error {
	car.UpdatedAt = time.Now()

	_, err := r.client.Collection(carsCollection).Doc(car.ID).Set(ctx, car)
	if err != nil {
		return errors.PersistenceFailed("Failed to update car", err)
	}

	return nil
}

func (r *firestoreCarRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(carsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.PersistenceFailed("Failed to delete car", err)
	}

	return nil
}

// Watch listens to the cars collection and redelivers the full current set
// on every change, newest-first.
func (r *firestoreCarRepository) Watch(ctx context.Context) (repository.CarSubscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	sub := &firestoreCarSubscription{
		updates: make(chan []*entity.Car, 1),
		cancel:  cancel,
	}

	snapshots := r.client.Collection(carsCollection).Query.
		OrderBy("createdAt", firestore.Desc).
		Snapshots(ctx)

	go func() {
		defer snapshots.Stop()
		defer close(sub.updates)

		for {
			snapshot, err := snapshots.Next()
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("Car snapshot listener stopped: %v", err)
					sub.err = errors.PersistenceFailed("Car snapshot listener failed", err)
				}
				return
			}

			cars, err := collectCars(snapshot.Documents)
			if err != nil {
				logger.Warn("Skipping undecodable car snapshot: %v", err)
				continue
			}

			select {
			case sub.updates <- cars:
			case <-ctx.Done():
				return
			}
		}
	}()

	return sub, nil
}

type firestoreCarSubscription struct {
	updates chan []*entity.Car
	cancel  context.CancelFunc
	err     error
}

func (s *firestoreCarSubscription) Updates() <-chan []*entity.Car {
	return s.updates
}

func (s *firestoreCarSubscription) Err() error {
	return s.err
}

func (s *firestoreCarSubscription) Unsubscribe() {
	s.cancel()
}

func collectCars(iter *firestore.DocumentIterator) ([]*entity.Car, error) {
	defer iter.Stop()

	var cars []*entity.Car
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var car entity.Car
		if err := doc.DataTo(&car); err != nil {
			return nil, err
		}
		cars = append(cars, &car)
	}

	return cars, nil
}

// The continuation cursor is the createdAt instant of the last returned
// car, opaque to callers.
func encodeCursor(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeCursor(cursor string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, cursor)
	if err != nil {
		return time.Time{}, errors.BadRequest("Invalid pagination cursor", err)
	}
	return t, nil
}
