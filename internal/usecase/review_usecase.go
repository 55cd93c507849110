package usecase

import (
	"context"

	"carvendor/internal/domain/entity"
	"carvendor/internal/domain/repository"
	"carvendor/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
	}
}

type ReviewInput struct {
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CarID        string `json:"car_id"`
	IsApproved   bool   `json:"is_approved"`
}

// SubmitReview is the public submission path. The review always lands
// unapproved, pending operator action, whatever the caller sent.
func (uc *ReviewUseCase) SubmitReview(ctx context.Context, input ReviewInput) (*entity.Review, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	review := &entity.Review{
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
		CarID:        input.CarID,
		IsApproved:   false,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// CreateReview is the operator path and honors the approval flag.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, input ReviewInput) (*entity.Review, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	review := &entity.Review{
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
		CarID:        input.CarID,
		IsApproved:   input.IsApproved,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// ListPublic returns only approved reviews, newest first.
func (uc *ReviewUseCase) ListPublic(ctx context.Context) ([]*entity.Review, error) {
	return uc.reviewRepo.List(ctx, map[string]interface{}{"isApproved": true})
}

// ListPublicByCar returns approved reviews for one car. The car reference
// is weak, so the carId is matched here rather than joined in the store.
func (uc *ReviewUseCase) ListPublicByCar(ctx context.Context, carID string) ([]*entity.Review, error) {
	approved, err := uc.reviewRepo.List(ctx, map[string]interface{}{"isApproved": true})
	if err != nil {
		return nil, err
	}

	matched := make([]*entity.Review, 0)
	for _, review := range approved {
		if review.CarID == carID {
			matched = append(matched, review)
		}
	}

	return matched, nil
}

// ListAll returns every review, approved or not, for the back office.
func (uc *ReviewUseCase) ListAll(ctx context.Context) ([]*entity.Review, error) {
	return uc.reviewRepo.List(ctx, nil)
}

func (uc *ReviewUseCase) GetReviewByID(ctx context.Context, id string) (*entity.Review, error) {
	return uc.reviewRepo.GetByID(ctx, id)
}

func (uc *ReviewUseCase) UpdateReview(ctx context.Context, id string, input ReviewInput) (*entity.Review, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	review.CustomerName = input.CustomerName
	review.Rating = input.Rating
	review.Comment = input.Comment
	review.CarID = input.CarID
	review.IsApproved = input.IsApproved

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) DeleteReview(ctx context.Context, id string) error {
	if _, err := uc.reviewRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.reviewRepo.Delete(ctx, id)
}

func validateReviewInput(input ReviewInput) error {
	if input.CustomerName == "" {
		return errors.ValidationFailed("Customer name is required", nil)
	}
	if input.Comment == "" {
		return errors.ValidationFailed("Comment is required", nil)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return errors.ValidationFailed("Rating must be between 1 and 5", nil)
	}
	return nil
}
