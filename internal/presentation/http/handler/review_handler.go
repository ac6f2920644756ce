package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/application/service"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/sokoline/soko-api/internal/domain/repository"
	"github.com/sokoline/soko-api/internal/presentation/http/dto/response"
	"github.com/sokoline/soko-api/pkg/pagination"
)

// ReviewHandler handles admin review-moderation HTTP requests
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// List handles listing reviews with moderation filters
func (h *ReviewHandler) List(c *gin.Context) {
	result, err := h.reviewService.List(c.Request.Context(), reviewFilterParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Reviews retrieved successfully", result)
}

// Get handles getting a single review
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	review, err := h.reviewService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Review retrieved successfully", review)
}

// Update handles a moderation update: either a status change or a
// visibility toggle must be supplied.
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	var req struct {
		Status    *string `json:"status"`
		IsVisible *bool   `json:"is_visible"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Status != nil {
		review, err := h.reviewService.Moderate(c.Request.Context(), id, enum.ReviewStatus(*req.Status))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Review status updated successfully", review)
		return
	}

	if req.IsVisible != nil {
		review, err := h.reviewService.SetVisibility(c.Request.Context(), id, *req.IsVisible)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Review visibility updated successfully", review)
		return
	}

	response.BadRequest(c, "Either status or is_visible must be provided")
}

// Reply handles attaching an admin reply to a review
func (h *ReviewHandler) Reply(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.Reply(c.Request.Context(), id, *userID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reply added successfully", review)
}

// Delete handles removing a review
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Review deleted successfully", nil)
}

// Stats handles the review statistics endpoint
func (h *ReviewHandler) Stats(c *gin.Context) {
	stats, err := h.reviewService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Review statistics retrieved successfully", stats)
}

func reviewFilterParams(c *gin.Context) *repository.ReviewFilterParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ReviewFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if statusStr := c.Query("status"); statusStr != "" && statusStr != "all" {
		status := enum.ReviewStatus(statusStr)
		if status.IsValid() {
			params.Status = &status
		}
	}

	if ratingStr := c.Query("rating"); ratingStr != "" && ratingStr != "all" {
		if rating, err := strconv.Atoi(ratingStr); err == nil {
			params.Rating = &rating
		}
	}

	return params
}
