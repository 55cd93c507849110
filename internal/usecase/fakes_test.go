package usecase

import (
	"context"
	"fmt"
	"time"

	"carvendor/internal/domain/entity"
	"carvendor/internal/domain/repository"
	"carvendor/pkg/errors"
)

// fakeCarRepo is an in-memory CarRepository that mimics the store
// adapter's contract: ids assigned on create, timestamps stamped
// server-side, newest-first listing.
type fakeCarRepo struct {
	cars    []*entity.Car
	nextID  int
	watchCh chan []*entity.Car
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{watchCh: make(chan []*entity.Car, 8)}
}

func (r *fakeCarRepo) Create(ctx context.Context, car *entity.Car) error {
	r.nextID++
	car.ID = fmt.Sprintf("car-%d", r.nextID)
	now := time.Now()
	car.CreatedAt = now
	car.UpdatedAt = now
	// newest first
	r.cars = append([]*entity.Car{car}, r.cars...)
	return nil
}

func (r *fakeCarRepo) GetByID(ctx context.Context, id string) (*entity.Car, error) {
	for _, car := range r.cars {
		if car.ID == id {
			copied := *car
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Car", nil)
}

func (r *fakeCarRepo) List(ctx context.Context, limit int, cursor string) ([]*entity.Car, string, error) {
	cars := r.cars
	if limit > 0 && len(cars) > limit {
		cars = cars[:limit]
	}
	return cars, "", nil
}

func (r *fakeCarRepo) ListFeatured(ctx context.Context) ([]*entity.Car, error) {
	var featured []*entity.Car
	for _, car := range r.cars {
		if car.IsFeatured && car.Status == entity.CarStatusAvailable {
			featured = append(featured, car)
		}
		if len(featured) == 6 {
			break
		}
	}
	return featured, nil
}

func (r *fakeCarRepo) Update(ctx context.Context, car *entity.Car) error {
	for i, existing := range r.cars {
		if existing.ID == car.ID {
			car.UpdatedAt = time.Now()
			r.cars[i] = car
			return nil
		}
	}
	return errors.NotFound("Car", nil)
}

func (r *fakeCarRepo) Delete(ctx context.Context, id string) error {
	for i, car := range r.cars {
		if car.ID == id {
			r.cars = append(r.cars[:i], r.cars[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCarRepo) Watch(ctx context.Context) (repository.CarSubscription, error) {
	return &fakeCarSubscription{ch: r.watchCh}, nil
}

type fakeCarSubscription struct {
	ch           chan []*entity.Car
	unsubscribed bool
}

func (s *fakeCarSubscription) Updates() <-chan []*entity.Car { return s.ch }
func (s *fakeCarSubscription) Err() error                    { return nil }
func (s *fakeCarSubscription) Unsubscribe()                  { s.unsubscribed = true }

// fakeReviewRepo is an in-memory ReviewRepository.
type fakeReviewRepo struct {
	reviews []*entity.Review
	nextID  int
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.nextID++
	review.ID = fmt.Sprintf("review-%d", r.nextID)
	review.CreatedAt = time.Now()
	r.reviews = append([]*entity.Review{review}, r.reviews...)
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	for _, review := range r.reviews {
		if review.ID == id {
			copied := *review
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Review, error) {
	matched := make([]*entity.Review, 0)
	for _, review := range r.reviews {
		if approved, ok := filter["isApproved"]; ok && review.IsApproved != approved.(bool) {
			continue
		}
		matched = append(matched, review)
	}
	return matched, nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	for i, existing := range r.reviews {
		if existing.ID == review.ID {
			r.reviews[i] = review
			return nil
		}
	}
	return errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	for i, review := range r.reviews {
		if review.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeInquiryRepo counts every store call so tests can assert that
// rejected drafts never reach the store.
type fakeInquiryRepo struct {
	contacts   []*entity.ContactSubmission
	inquiries  []*entity.CarInquiry
	nextID     int
	storeCalls int
	failWrites bool
}

func (r *fakeInquiryRepo) CreateContact(ctx context.Context, submission *entity.ContactSubmission) error {
	r.storeCalls++
	if r.failWrites {
		return errors.PersistenceFailed("store rejected the write", nil)
	}
	r.nextID++
	submission.ID = fmt.Sprintf("contact-%d", r.nextID)
	submission.CreatedAt = time.Now()
	r.contacts = append(r.contacts, submission)
	return nil
}

func (r *fakeInquiryRepo) CreateCarInquiry(ctx context.Context, inquiry *entity.CarInquiry) error {
	r.storeCalls++
	if r.failWrites {
		return errors.PersistenceFailed("store rejected the write", nil)
	}
	r.nextID++
	inquiry.ID = fmt.Sprintf("inquiry-%d", r.nextID)
	inquiry.CreatedAt = time.Now()
	r.inquiries = append(r.inquiries, inquiry)
	return nil
}

func (r *fakeInquiryRepo) ListContacts(ctx context.Context) ([]*entity.ContactSubmission, error) {
	r.storeCalls++
	return r.contacts, nil
}

func (r *fakeInquiryRepo) ListCarInquiries(ctx context.Context) ([]*entity.CarInquiry, error) {
	r.storeCalls++
	return r.inquiries, nil
}

func (r *fakeInquiryRepo) GetContact(ctx context.Context, id string) (*entity.ContactSubmission, error) {
	r.storeCalls++
	for _, contact := range r.contacts {
		if contact.ID == id {
			copied := *contact
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Contact submission", nil)
}

func (r *fakeInquiryRepo) GetCarInquiry(ctx context.Context, id string) (*entity.CarInquiry, error) {
	r.storeCalls++
	for _, inquiry := range r.inquiries {
		if inquiry.ID == id {
			copied := *inquiry
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Car inquiry", nil)
}

func (r *fakeInquiryRepo) MarkRead(ctx context.Context, collection, id string) error {
	r.storeCalls++
	switch collection {
	case repository.CollectionContacts:
		for _, c := range r.contacts {
			if c.ID == id {
				c.Read = true
				c.Status = entity.MessageStatusRead
				return nil
			}
		}
	case repository.CollectionInquiries:
		for _, i := range r.inquiries {
			if i.ID == id {
				i.Read = true
				i.Status = entity.MessageStatusRead
				return nil
			}
		}
	}
	return errors.NotFound("Message", nil)
}

func (r *fakeInquiryRepo) Delete(ctx context.Context, collection, id string) error {
	r.storeCalls++
	switch collection {
	case repository.CollectionContacts:
		for i, c := range r.contacts {
			if c.ID == id {
				r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
				return nil
			}
		}
	case repository.CollectionInquiries:
		for i, q := range r.inquiries {
			if q.ID == id {
				r.inquiries = append(r.inquiries[:i], r.inquiries[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (r *fakeInquiryRepo) DeleteAllRead(ctx context.Context, collection string) (int, error) {
	r.storeCalls++
	deleted := 0
	switch collection {
	case repository.CollectionContacts:
		kept := r.contacts[:0]
		for _, c := range r.contacts {
			if c.Read {
				deleted++
			} else {
				kept = append(kept, c)
			}
		}
		r.contacts = kept
	case repository.CollectionInquiries:
		kept := r.inquiries[:0]
		for _, q := range r.inquiries {
			if q.Read {
				deleted++
			} else {
				kept = append(kept, q)
			}
		}
		r.inquiries = kept
	}
	return deleted, nil
}

// fakeNotifier records operator notifications.
type fakeNotifier struct {
	messages [][]byte
}

func (n *fakeNotifier) NotifyOperators(message []byte) {
	n.messages = append(n.messages, message)
}

// fakePublisher records catalog broadcasts.
type fakePublisher struct {
	payloads chan []byte
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{payloads: make(chan []byte, 8)}
}

func (p *fakePublisher) BroadcastCatalog(message []byte) {
	p.payloads <- message
}

// fakeIdentity is an IdentityClient with one known account.
type fakeIdentity struct {
	email    string
	password string
	uid      string
	token    string

	// simulates a principal whose provider record was deleted
	recordMissing bool
}

func (f *fakeIdentity) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	if email != f.email || password != f.password {
		return "", errors.AuthFailed("Invalid credentials", nil)
	}
	return f.token, nil
}

func (f *fakeIdentity) VerifyToken(ctx context.Context, idToken string) (string, error) {
	if idToken != f.token {
		return "", errors.AuthFailed("Invalid or expired token", nil)
	}
	return f.uid, nil
}

func (f *fakeIdentity) GetUserEmail(ctx context.Context, uid string) (string, error) {
	if f.recordMissing || uid != f.uid {
		return "", errors.NotFound("User", nil)
	}
	return f.email, nil
}
