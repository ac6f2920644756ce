package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/application/service"
	"github.com/sokoline/soko-api/internal/domain/repository"
	"github.com/sokoline/soko-api/internal/presentation/http/dto/response"
	"github.com/sokoline/soko-api/pkg/pagination"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles listing a new product
func (h *ProductHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Name            string     `json:"name" binding:"required"`
		Description     *string    `json:"description"`
		CategoryID      *uuid.UUID `json:"category_id"`
		Price           float64    `json:"price" binding:"required"`
		DiscountedPrice *float64   `json:"discounted_price"`
		StockQuantity   int        `json:"stock_quantity"`
		Unit            string     `json:"unit"`
		Thumbnail       *string    `json:"thumbnail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), *userID, &service.CreateProductInput{
		Name:            req.Name,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		StockQuantity:   req.StockQuantity,
		Unit:            req.Unit,
		Thumbnail:       req.Thumbnail,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// List handles listing products with filters
func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:     c.Query("search"),
		ActiveOnly: c.Query("include_inactive") == "",
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		if categoryID, err := uuid.Parse(categoryIDStr); err == nil {
			params.CategoryID = &categoryID
		}
	}

	if supplierIDStr := c.Query("supplier_id"); supplierIDStr != "" {
		if supplierID, err := uuid.Parse(supplierIDStr); err == nil {
			params.SupplierID = &supplierID
		}
	}

	result, err := h.productService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Get handles fetching a product by slug
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles partial product updates
func (h *ProductHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req struct {
		Name            *string    `json:"name"`
		Description     *string    `json:"description"`
		CategoryID      *uuid.UUID `json:"category_id"`
		Price           *float64   `json:"price"`
		DiscountedPrice *float64   `json:"discounted_price"`
		ClearDiscount   bool       `json:"clear_discount"`
		StockQuantity   *int       `json:"stock_quantity"`
		Unit            *string    `json:"unit"`
		Thumbnail       *string    `json:"thumbnail"`
		IsActive        *bool      `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.Update(c.Request.Context(), *userID, id, &service.UpdateProductInput{
		Name:            req.Name,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		ClearDiscount:   req.ClearDiscount,
		StockQuantity:   req.StockQuantity,
		Unit:            req.Unit,
		Thumbnail:       req.Thumbnail,
		IsActive:        req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles removing a product
func (h *ProductHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}
