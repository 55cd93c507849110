package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"carvendor/internal/domain/entity"
	"carvendor/internal/domain/repository"
	"carvendor/pkg/errors"
	"carvendor/pkg/logger"
)

// InquiryUseCase runs the intake workflow for visitor messages: validate,
// persist, then fire a best-effort operator notification.
type InquiryUseCase struct {
	inquiryRepo repository.InquiryRepository
	notifier    OperatorNotifier
}

func NewInquiryUseCase(inquiryRepo repository.InquiryRepository, notifier OperatorNotifier) *InquiryUseCase {
	return &InquiryUseCase{
		inquiryRepo: inquiryRepo,
		notifier:    notifier,
	}
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type CarInquiryInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`

	// Snapshot of the car the visitor was looking at, supplied by the
	// caller at submit time. The listing is not re-checked here.
	CarID      string            `json:"car_id"`
	CarDetails entity.CarDetails `json:"car_details"`
}

type operatorNotification struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SubmitContact validates and persists a general contact message. No
// deduplication: an identical resubmission creates a second record.
func (uc *InquiryUseCase) SubmitContact(ctx context.Context, input ContactInput) (*entity.ContactSubmission, error) {
	if err := validateIntakeFields(input.Name, input.Email, input.Message); err != nil {
		return nil, err
	}

	submission := &entity.ContactSubmission{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Subject: strings.TrimSpace(input.Subject),
		Message: input.Message,
		// Always stored unread regardless of caller input
		Read:   false,
		Status: entity.MessageStatusNew,
	}

	if err := uc.inquiryRepo.CreateContact(ctx, submission); err != nil {
		return nil, err
	}

	uc.notify(operatorNotification{
		Type:  "contact_received",
		Title: "New Contact Message",
		Body:  fmt.Sprintf("%s: %s", submission.Name, submission.Subject),
	})

	return submission, nil
}

// SubmitCarInquiry validates and persists a car-specific inquiry with the
// caller's denormalized car snapshot.
func (uc *InquiryUseCase) SubmitCarInquiry(ctx context.Context, input CarInquiryInput) (*entity.CarInquiry, error) {
	if err := validateIntakeFields(input.Name, input.Email, input.Message); err != nil {
		return nil, err
	}
	if input.CarID == "" {
		return nil, errors.ValidationFailed("Car reference is required", nil)
	}

	inquiry := &entity.CarInquiry{
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		Message:    input.Message,
		CarID:      input.CarID,
		CarDetails: input.CarDetails,
		Read:       false,
		Status:     entity.MessageStatusNew,
	}

	if err := uc.inquiryRepo.CreateCarInquiry(ctx, inquiry); err != nil {
		return nil, err
	}

	uc.notify(operatorNotification{
		Type:  "inquiry_received",
		Title: "New Car Inquiry",
		Body: fmt.Sprintf("%s asked about the %d %s %s",
			inquiry.Name, inquiry.CarDetails.Year, inquiry.CarDetails.Make, inquiry.CarDetails.Model),
	})

	return inquiry, nil
}

func (uc *InquiryUseCase) ListContacts(ctx context.Context) ([]*entity.ContactSubmission, error) {
	return uc.inquiryRepo.ListContacts(ctx)
}

func (uc *InquiryUseCase) ListCarInquiries(ctx context.Context) ([]*entity.CarInquiry, error) {
	return uc.inquiryRepo.ListCarInquiries(ctx)
}

func (uc *InquiryUseCase) GetContact(ctx context.Context, id string) (*entity.ContactSubmission, error) {
	return uc.inquiryRepo.GetContact(ctx, id)
}

func (uc *InquiryUseCase) GetCarInquiry(ctx context.Context, id string) (*entity.CarInquiry, error) {
	return uc.inquiryRepo.GetCarInquiry(ctx, id)
}

func (uc *InquiryUseCase) MarkRead(ctx context.Context, collection, id string) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	return uc.inquiryRepo.MarkRead(ctx, collection, id)
}

func (uc *InquiryUseCase) DeleteMessage(ctx context.Context, collection, id string) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	return uc.inquiryRepo.Delete(ctx, collection, id)
}

// DeleteAllRead removes every read message in the collection. An empty
// read set succeeds as a no-op.
func (uc *InquiryUseCase) DeleteAllRead(ctx context.Context, collection string) (int, error) {
	if err := validateCollection(collection); err != nil {
		return 0, err
	}
	return uc.inquiryRepo.DeleteAllRead(ctx, collection)
}

// notify is fire-and-forget: a failure here must never fail the intake.
func (uc *InquiryUseCase) notify(notification operatorNotification) {
	payload, err := json.Marshal(notification)
	if err != nil {
		logger.Warn("Failed to encode operator notification: %v", err)
		return
	}
	uc.notifier.NotifyOperators(payload)
}

func validateIntakeFields(name, email, message string) error {
	if strings.TrimSpace(name) == "" {
		return errors.ValidationFailed("Name is required", nil)
	}
	if strings.TrimSpace(email) == "" {
		return errors.ValidationFailed("Email is required", nil)
	}
	if strings.TrimSpace(message) == "" {
		return errors.ValidationFailed("Message is required", nil)
	}
	return nil
}

func validateCollection(collection string) error {
	if collection != repository.CollectionContacts && collection != repository.CollectionInquiries {
		return errors.BadRequest("Unknown message collection", nil)
	}
	return nil
}
