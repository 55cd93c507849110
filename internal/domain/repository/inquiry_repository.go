package repository

import (
	"context"

	"carvendor/internal/domain/entity"
)

// Message collections for MarkRead/Delete/DeleteAllRead.
const (
	CollectionContacts  = "contactSubmissions"
	CollectionInquiries = "carInquiries"
)

type InquiryRepository interface {
	CreateContact(ctx context.Context, submission *entity.ContactSubmission) error
	CreateCarInquiry(ctx context.Context, inquiry *entity.CarInquiry) error
	ListContacts(ctx context.Context) ([]*entity.ContactSubmission, error)
	ListCarInquiries(ctx context.Context) ([]*entity.CarInquiry, error)
	GetContact(ctx context.Context, id string) (*entity.ContactSubmission, error)
	GetCarInquiry(ctx context.Context, id string) (*entity.CarInquiry, error)
	MarkRead(ctx context.Context, collection, id string) error
	Delete(ctx context.Context, collection, id string) error
	// DeleteAllRead removes every read message from the collection as a
	// batch of independent deletes, not a transaction. Partial completion
	// on failure is accepted. An empty read set is a successful no-op.
	DeleteAllRead(ctx context.Context, collection string) (int, error)
}
