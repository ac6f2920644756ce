package repository

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/enum"
	domainRepo "github.com/sokoline/soko-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) domainRepo.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Product").
		First(&review, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// reviewSortColumn maps a caller-supplied sort key onto a known column,
// falling back to created_at for anything outside the allowlist.
func reviewSortColumn(sortBy string) string {
	switch sortBy {
	case "created_at", "updated_at", "rating", "status":
		return sortBy
	default:
		return "created_at"
	}
}

func (r *reviewRepository) List(ctx context.Context, params *domainRepo.ReviewFilterParams) ([]entity.Review, int64, error) {
	var reviews []entity.Review
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Review{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Rating != nil {
		query = query.Where("rating = ?", *params.Rating)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR comment ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := reviewSortColumn(params.SortBy)
	sortOrder := "DESC"
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Preload("Product").
		Order(sortBy + " " + sortOrder).
		Find(&reviews).Error

	return reviews, total, err
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return r.db.WithContext(ctx).Omit("Customer", "Product", "Order").Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Review{}, "id = ?", id).Error
}

func (r *reviewRepository) Stats(ctx context.Context) (*domainRepo.ReviewStats, error) {
	stats := &domainRepo.ReviewStats{
		Distribution: map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	type statusRow struct {
		Status enum.ReviewStatus
		Count  int64
	}
	var statusRows []statusRow
	err := r.db.WithContext(ctx).Model(&entity.Review{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&statusRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		stats.Total += row.Count
		switch row.Status {
		case enum.ReviewStatusPending:
			stats.Pending = row.Count
		case enum.ReviewStatusApproved:
			stats.Approved = row.Count
		case enum.ReviewStatusRejected:
			stats.Rejected = row.Count
		}
	}

	var avg *float64
	err = r.db.WithContext(ctx).Model(&entity.Review{}).
		Select("avg(rating)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if avg != nil {
		stats.AverageRating = math.Round(*avg*10) / 10
	}

	type ratingRow struct {
		Rating int
		Count  int64
	}
	var ratingRows []ratingRow
	err = r.db.WithContext(ctx).Model(&entity.Review{}).
		Select("rating, count(*) as count").
		Group("rating").
		Scan(&ratingRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range ratingRows {
		stats.Distribution[row.Rating] = row.Count
	}

	return stats, nil
}
