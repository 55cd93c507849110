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
)

const reviewsCollection = "reviews"

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		doc := r.client.Collection(reviewsCollection).NewDoc()
		review.ID = doc.ID
	}

	review.CreatedAt = time.Now()

	_, err := r.client.Collection(reviewsCollection).Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.PersistenceFailed("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	doc, err := r.client.Collection(reviewsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.PersistenceFailed("Failed to get review", err)
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.PersistenceFailed("Failed to parse review data", err)
	}

	return &review, nil
}

func (r *firestoreReviewRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Review, error) {
	query := r.client.Collection(reviewsCollection).Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	iter := query.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var reviews []*entity.Review
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.PersistenceFailed("Failed to iterate reviews", err)
		}

		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.PersistenceFailed("Failed to parse review data", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *firestoreReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	_, err := r.client.Collection(reviewsCollection).Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.PersistenceFailed("Failed to update review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(reviewsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.PersistenceFailed("Failed to delete review", err)
	}

	return nil
}
