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

type firestoreInquiryRepository struct {
	client *firestore.Client
}

func NewFirestoreInquiryRepository(client *firestore.Client) repository.InquiryRepository {
	return &firestoreInquiryRepository{
		client: client,
	}
}

func (r *firestoreInquiryRepository) CreateContact(ctx context.Context, submission *entity.ContactSubmission) error {
	if submission.ID == "" {
		doc := r.client.Collection(repository.CollectionContacts).NewDoc()
		submission.ID = doc.ID
	}

	submission.CreatedAt = time.Now()

	_, err := r.client.Collection(repository.CollectionContacts).Doc(submission.ID).Set(ctx, submission)
	if err != nil {
		return errors.PersistenceFailed("Failed to store contact submission", err)
	}

	return nil
}

func (r *firestoreInquiryRepository) CreateCarInquiry(ctx context.Context, inquiry *entity.CarInquiry) error {
	if inquiry.ID == "" {
		doc := r.client.Collection(repository.CollectionInquiries).NewDoc()
		inquiry.ID = doc.ID
	}

	inquiry.CreatedAt = time.Now()

	_, err := r.client.Collection(repository.CollectionInquiries).Doc(inquiry.ID).Set(ctx, inquiry)
	if err != nil {
		return errors.PersistenceFailed("Failed to store car inquiry", err)
	}

	return nil
}

func (r *firestoreInquiryRepository) ListContacts(ctx context.Context) ([]*entity.ContactSubmission, error) {
	iter := r.client.Collection(repository.CollectionContacts).Query.
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var submissions []*entity.ContactSubmission
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.PersistenceFailed("Failed to iterate contact submissions", err)
		}

		var submission entity.ContactSubmission
		if err := doc.DataTo(&submission); err != nil {
			return nil, errors.PersistenceFailed("Failed to parse contact submission", err)
		}
		submissions = append(submissions, &submission)
	}

	return submissions, nil
}

func (r *firestoreInquiryRepository) ListCarInquiries(ctx context.Context) ([]*entity.CarInquiry, error) {
	iter := r.client.Collection(repository.CollectionInquiries).Query.
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var inquiries []*entity.CarInquiry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.PersistenceFailed("Failed to iterate car inquiries", err)
		}

		var inquiry entity.CarInquiry
		if err := doc.DataTo(&inquiry); err != nil {
			return nil, errors.PersistenceFailed("Failed to parse car inquiry", err)
		}
		inquiries = append(inquiries, &inquiry)
	}

	return inquiries, nil
}

func (r *firestoreInquiryRepository) GetContact(ctx context.Context, id string) (*entity.ContactSubmission, error) {
	doc, err := r.client.Collection(repository.CollectionContacts).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Contact submission", err)
		}
		return nil, errors.PersistenceFailed("Failed to get contact submission", err)
	}

	var submission entity.ContactSubmission
	if err := doc.DataTo(&submission); err != nil {
		return nil, errors.PersistenceFailed("Failed to parse contact submission", err)
	}

	return &submission, nil
}

func (r *firestoreInquiryRepository) GetCarInquiry(ctx context.Context, id string) (*entity.CarInquiry, error) {
	doc, err := r.client.Collection(repository.CollectionInquiries).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Car inquiry", err)
		}
		return nil, errors.PersistenceFailed("Failed to get car inquiry", err)
	}

	var inquiry entity.CarInquiry
	if err := doc.DataTo(&inquiry); err != nil {
		return nil, errors.PersistenceFailed("Failed to parse car inquiry", err)
	}

	return &inquiry, nil
}

func (r *firestoreInquiryRepository) MarkRead(ctx context.Context, collection, id string) error {
	_, err := r.client.Collection(collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
		{Path: "status", Value: entity.MessageStatusRead},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Message", err)
		}
		return errors.PersistenceFailed("Failed to mark message as read", err)
	}

	return nil
}

func (r *firestoreInquiryRepository) Delete(ctx context.Context, collection, id string) error {
	_, err := r.client.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.PersistenceFailed("Failed to delete message", err)
	}

	return nil
}

func (r *firestoreInquiryRepository) DeleteAllRead(ctx context.Context, collection string) (int, error) {
	iter := r.client.Collection(collection).Query.
		Where("read", "==", true).
		Documents(ctx)
	defer iter.Stop()

	// Independent deletes, not a transaction: a failure partway leaves the
	// earlier deletes in place.
	deleted := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, errors.PersistenceFailed("Failed to iterate read messages", err)
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			logger.Warn("Failed to delete read message %s: %v", doc.Ref.ID, err)
			return deleted, errors.PersistenceFailed("Failed to delete read messages", err)
		}
		deleted++
	}

	return deleted, nil
}
