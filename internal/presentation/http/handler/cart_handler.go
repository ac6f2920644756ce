package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/application/service"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/sokoline/soko-api/internal/presentation/http/dto/response"
)

// CartHandler handles cart-related HTTP requests. Carts are keyed by
// customer ID, supplied explicitly by the storefront.
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type variationPayload struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (v *variationPayload) toEntity() *entity.Variation {
	if v == nil {
		return nil
	}
	return &entity.Variation{Name: v.Name, Value: v.Value}
}

// Get handles fetching the customer's cart
func (h *CartHandler) Get(c *gin.Context) {
	customerID, err := uuid.Parse(c.Query("customer"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	cart, err := h.cartService.GetCart(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", cart)
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		CustomerID uuid.UUID         `json:"customer" binding:"required"`
		ProductID  uuid.UUID         `json:"product" binding:"required"`
		Quantity   *int              `json:"quantity"`
		Variation  *variationPayload `json:"variation"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), req.CustomerID, req.ProductID, quantity, req.Variation.toEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", cart)
}

// UpdateItem handles setting the quantity of a cart line. A quantity of
// zero or below removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req struct {
		CustomerID uuid.UUID `json:"customer" binding:"required"`
		ItemID     uuid.UUID `json:"itemId" binding:"required"`
		Quantity   *int      `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.UpdateItemQuantity(c.Request.Context(), req.CustomerID, req.ItemID, *req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated successfully", cart)
}

// Remove handles removing a line from the cart, or clearing the whole
// cart when no item ID is given.
func (h *CartHandler) Remove(c *gin.Context) {
	var req struct {
		CustomerID uuid.UUID  `json:"customer" binding:"required"`
		ItemID     *uuid.UUID `json:"itemId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.ItemID != nil {
		cart, err := h.cartService.RemoveItem(c.Request.Context(), req.CustomerID, *req.ItemID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Item removed from cart", cart)
		return
	}

	cart, err := h.cartService.Clear(c.Request.Context(), req.CustomerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart cleared successfully", cart)
}

// ApplyCoupon handles recording a coupon snapshot on the cart
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req struct {
		CustomerID uuid.UUID `json:"customer" binding:"required"`
		Code       string    `json:"code" binding:"required"`
		Type       string    `json:"type" binding:"required"`
		Value      float64   `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.ApplyCoupon(c.Request.Context(), req.CustomerID, req.Code, enum.CouponType(req.Type), req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Coupon applied successfully", cart)
}

// RemoveCoupon handles dropping the coupon from the cart
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	customerID, err := uuid.Parse(c.Query("customer"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	cart, err := h.cartService.RemoveCoupon(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Coupon removed successfully", cart)
}
