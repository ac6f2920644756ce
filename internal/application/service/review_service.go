package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/sokoline/soko-api/internal/domain/repository"
	"github.com/sokoline/soko-api/pkg/apperror"
	"github.com/sokoline/soko-api/pkg/pagination"
)

// ReviewService covers the back-office moderation of product reviews:
// listing with filters, approving or rejecting, toggling visibility,
// replying and deletion.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

// List returns reviews matching the filters, paginated.
func (s *ReviewService) List(ctx context.Context, params *repository.ReviewFilterParams) (*pagination.PaginatedResult[entity.Review], error) {
	reviews, total, err := s.reviewRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(reviews, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// Get returns one review with its customer and product.
func (s *ReviewService) Get(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperror.NewNotFoundError("Review")
	}
	return review, nil
}

// Moderate sets the review's moderation status.
func (s *ReviewService) Moderate(ctx context.Context, id uuid.UUID, status enum.ReviewStatus) (*entity.Review, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid review status")
	}

	review, err := s.loadReview(ctx, id)
	if err != nil {
		return nil, err
	}

	review.Status = status
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// SetVisibility hides or shows the review without changing its moderation
// status.
func (s *ReviewService) SetVisibility(ctx context.Context, id uuid.UUID, visible bool) (*entity.Review, error) {
	review, err := s.loadReview(ctx, id)
	if err != nil {
		return nil, err
	}

	review.IsVisible = visible
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Reply attaches the admin's reply to the review, replacing any earlier one.
func (s *ReviewService) Reply(ctx context.Context, id, adminID uuid.UUID, content string) (*entity.Review, error) {
	review, err := s.loadReview(ctx, id)
	if err != nil {
		return nil, err
	}

	if !review.SetReply(content, adminID) {
		return nil, apperror.NewRequiredFieldError("content")
	}
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes the review.
func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.loadReview(ctx, id); err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, id)
}

// Stats returns moderation counts, the average rating rounded to one
// decimal and the per-star distribution.
func (s *ReviewService) Stats(ctx context.Context) (*repository.ReviewStats, error) {
	return s.reviewRepo.Stats(ctx)
}

func (s *ReviewService) loadReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperror.NewNotFoundError("Review")
	}
	return review, nil
}
