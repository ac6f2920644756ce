package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/repository"
	"github.com/sokoline/soko-api/pkg/apperror"
	"github.com/sokoline/soko-api/pkg/utils"
)

// CategoryService manages product categories.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create adds a category with a slug derived from its name.
func (s *CategoryService) Create(ctx context.Context, name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewRequiredFieldError("name")
	}

	slug := utils.Slugify(name)
	existing, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category already exists")
	}

	category := &entity.Category{
		ID:   uuid.New(),
		Name: name,
		Slug: slug,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// GetBySlug returns a category by its URL slug.
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// Update renames a category and refreshes its slug.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewRequiredFieldError("name")
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	category.Name = name
	category.Slug = utils.Slugify(name)
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. Products keep their category id until edited.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}
