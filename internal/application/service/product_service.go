package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/repository"
	"github.com/sokoline/soko-api/pkg/apperror"
	"github.com/sokoline/soko-api/pkg/pagination"
	"github.com/sokoline/soko-api/pkg/utils"
)

// ProductService manages the supplier-owned product catalog.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
	}
}

// CreateProductInput carries the fields needed to list a product.
type CreateProductInput struct {
	Name            string
	Description     *string
	CategoryID      *uuid.UUID
	Price           float64
	DiscountedPrice *float64
	StockQuantity   int
	Unit            string
	Thumbnail       *string
}

// UpdateProductInput carries the mutable product fields; nil means unchanged.
type UpdateProductInput struct {
	Name            *string
	Description     *string
	CategoryID      *uuid.UUID
	Price           *float64
	DiscountedPrice *float64
	ClearDiscount   bool
	StockQuantity   *int
	Unit            *string
	Thumbnail       *string
	IsActive        *bool
}

// Create lists a new product under the caller's supplier profile.
func (s *ProductService) Create(ctx context.Context, userID uuid.UUID, input *CreateProductInput) (*entity.Product, error) {
	supplier, err := s.supplierRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier profile")
	}

	if input.Name == "" {
		return nil, apperror.NewRequiredFieldError("name")
	}
	if input.Price <= 0 {
		return nil, apperror.NewBadRequestError("Price must be positive")
	}
	if input.DiscountedPrice != nil && *input.DiscountedPrice >= input.Price {
		return nil, apperror.NewBadRequestError("Discounted price must be below the list price")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	product := &entity.Product{
		ID:            uuid.New(),
		SupplierID:    supplier.ID,
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Slug:          utils.Slugify(input.Name),
		SKU:           utils.GenerateSKU(input.Name),
		Description:   input.Description,
		StockQuantity: input.StockQuantity,
		Thumbnail:     input.Thumbnail,
		IsActive:      true,
	}
	if input.Unit != "" {
		product.Unit = input.Unit
	}
	product.SetPriceFromDecimal(input.Price)
	product.SetDiscountedPriceFromDecimal(input.DiscountedPrice)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID returns a product by id.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetBySlug returns a product by its URL slug.
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// List returns products matching the filter, paginated.
func (s *ProductService) List(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(products, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// Update applies partial changes to a product the caller's supplier owns.
// Price changes never touch lines of already placed orders; those carry
// their own snapshots.
func (s *ProductService) Update(ctx context.Context, userID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.ownedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
		product.Slug = utils.Slugify(*input.Name)
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		product.CategoryID = input.CategoryID
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, apperror.NewBadRequestError("Price must be positive")
		}
		product.SetPriceFromDecimal(*input.Price)
	}
	if input.ClearDiscount {
		product.DiscountedPrice = nil
	} else if input.DiscountedPrice != nil {
		if *input.DiscountedPrice*100 >= float64(product.Price) {
			return nil, apperror.NewBadRequestError("Discounted price must be below the list price")
		}
		product.SetDiscountedPriceFromDecimal(input.DiscountedPrice)
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Thumbnail != nil {
		product.Thumbnail = input.Thumbnail
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product the caller's supplier owns.
func (s *ProductService) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	product, err := s.ownedProduct(ctx, userID, productID)
	if err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, product.ID)
}

func (s *ProductService) ownedProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error) {
	supplier, err := s.supplierRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier profile")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if product.SupplierID != supplier.ID {
		return nil, apperror.NewForbiddenError("You do not own this product")
	}
	return product, nil
}
