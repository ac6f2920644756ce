package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/sokoline/soko-api/pkg/pagination"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	List(ctx context.Context, params *ReviewFilterParams) ([]entity.Review, int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*ReviewStats, error)
}

// ReviewFilterParams contains filtering parameters for review queries
type ReviewFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.ReviewStatus
	Rating     *int
	Search     string
	SortBy     string
	SortOrder  string
}

// ReviewStats aggregates moderation counts and rating spread across all
// reviews.
type ReviewStats struct {
	Total         int64         `json:"total"`
	Pending       int64         `json:"pending"`
	Approved      int64         `json:"approved"`
	Rejected      int64         `json:"rejected"`
	AverageRating float64       `json:"average_rating"`
	Distribution  map[int]int64 `json:"distribution"`
}
