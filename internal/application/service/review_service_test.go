package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/sokoline/soko-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Moderate(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()

	t.Run("ApprovesPendingReview", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		svc := NewReviewService(reviewRepo)

		review := &entity.Review{ID: reviewID, Rating: 4, Status: enum.ReviewStatusPending}
		reviewRepo.On("GetByID", ctx, reviewID).Return(review, nil)
		reviewRepo.On("Update", ctx, review).Return(nil)

		res, err := svc.Moderate(ctx, reviewID, enum.ReviewStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, enum.ReviewStatusApproved, res.Status)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("RejectsUnknownStatus", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		svc := NewReviewService(reviewRepo)

		_, err := svc.Moderate(ctx, reviewID, enum.ReviewStatus("flagged"))
		require.Error(t, err)
		assert.Equal(t, 400, apperrorFrom(t, err).Code)
		reviewRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("UnknownReviewIs404", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		svc := NewReviewService(reviewRepo)

		reviewRepo.On("GetByID", ctx, reviewID).Return(nil, nil)

		_, err := svc.Moderate(ctx, reviewID, enum.ReviewStatusRejected)
		require.Error(t, err)
		assert.Equal(t, 404, apperrorFrom(t, err).Code)
	})
}

func TestReviewService_SetVisibility(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()

	t.Run("HidesWithoutTouchingStatus", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		svc := NewReviewService(reviewRepo)

		review := &entity.Review{ID: reviewID, Status: enum.ReviewStatusApproved, IsVisible: true}
		reviewRepo.On("GetByID", ctx, reviewID).Return(review, nil)
		reviewRepo.On("Update", ctx, review).Return(nil)

		res, err := svc.SetVisibility(ctx, reviewID, false)
		require.NoError(t, err)
		assert.False(t, res.IsVisible)
		assert.Equal(t, enum.ReviewStatusApproved, res.Status)
	})
}

func TestReviewService_Reply(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()
	adminID := uuid.New()

	t.Run("AttachesTrimmedReply", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		svc := NewReviewService(reviewRepo)

		review := &entity.Review{ID: reviewID, Status: enum.ReviewStatusApproved}
		reviewRepo.On("GetByID", ctx, reviewID).Return(review, nil)
		reviewRepo.On("Update", ctx, review).Return(nil)

		res, err := svc.Reply(ctx, reviewID, adminID, "  Thanks for the feedback!  ")
		require.NoError(t, err)
		require.NotNil(t, res.ReplyContent)
		assert.Equal(t, "Thanks for the feedback!", *res.ReplyContent)
		require.NotNil(t, res.ReplyAdminID)
		assert.Equal(t, adminID, *res.ReplyAdminID)
		assert.NotNil(t, res.ReplyCreatedAt)
	})

	t.Run("BlankContentIs400", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		svc := NewReviewService(reviewRepo)

		review := &entity.Review{ID: reviewID}
		reviewRepo.On("GetByID", ctx, reviewID).Return(review, nil)

		_, err := svc.Reply(ctx, reviewID, adminID, "   ")
		require.Error(t, err)
		assert.Equal(t, 400, apperrorFrom(t, err).Code)
		reviewRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestReviewService_Stats(t *testing.T) {
	ctx := context.Background()

	reviewRepo := new(MockReviewRepository)
	svc := NewReviewService(reviewRepo)

	stats := &repository.ReviewStats{
		Total:         7,
		Pending:       2,
		Approved:      4,
		Rejected:      1,
		AverageRating: 3.9,
		Distribution:  map[int]int64{1: 0, 2: 1, 3: 1, 4: 2, 5: 3},
	}
	reviewRepo.On("Stats", ctx).Return(stats, nil)

	res, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, res)
}
