package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/application/service"
	"github.com/sokoline/soko-api/internal/presentation/http/dto/response"
)

// WishlistHandler handles wishlist HTTP requests. Like carts, wishlists are
// keyed by customer ID supplied by the storefront.
type WishlistHandler struct {
	wishlistService *service.WishlistService
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// Get handles fetching the customer's wishlist
func (h *WishlistHandler) Get(c *gin.Context) {
	customerID, err := uuid.Parse(c.Query("customer"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	wishlist, err := h.wishlistService.Get(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Wishlist retrieved successfully", wishlist)
}

// AddProduct handles adding a product to the wishlist
func (h *WishlistHandler) AddProduct(c *gin.Context) {
	var req struct {
		CustomerID uuid.UUID `json:"customer" binding:"required"`
		ProductID  uuid.UUID `json:"product" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	wishlist, err := h.wishlistService.AddProduct(c.Request.Context(), req.CustomerID, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product added to wishlist", wishlist)
}

// RemoveProduct handles dropping a product from the wishlist
func (h *WishlistHandler) RemoveProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	customerID, err := uuid.Parse(c.Query("customer"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	wishlist, err := h.wishlistService.RemoveProduct(c.Request.Context(), customerID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product removed from wishlist", wishlist)
}
