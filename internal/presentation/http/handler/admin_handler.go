package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/application/service"
	"github.com/sokoline/soko-api/internal/presentation/http/dto/response"
	"github.com/sokoline/soko-api/pkg/pagination"
)

// AdminHandler handles back-office HTTP requests
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func paginationParams(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()
	return params
}

// ListCustomers handles listing customer profiles
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	result, err := h.adminService.ListCustomers(c.Request.Context(), paginationParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// GetCustomer handles fetching one customer profile
func (h *AdminHandler) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.adminService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer retrieved successfully", customer)
}

// DeleteCustomer handles removing a customer profile
func (h *AdminHandler) DeleteCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.adminService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer deleted successfully", nil)
}

// ListSuppliers handles listing supplier profiles
func (h *AdminHandler) ListSuppliers(c *gin.Context) {
	result, err := h.adminService.ListSuppliers(c.Request.Context(), paginationParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Suppliers retrieved successfully", result)
}

// GetSupplier handles fetching one supplier profile
func (h *AdminHandler) GetSupplier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	supplier, err := h.adminService.GetSupplier(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Supplier retrieved successfully", supplier)
}

// VerifySupplier handles flipping a supplier's verification flag
func (h *AdminHandler) VerifySupplier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req struct {
		Verified *bool `json:"verified" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.adminService.VerifySupplier(c.Request.Context(), id, *req.Verified)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Supplier verification updated", supplier)
}

// DeleteSupplier handles removing a supplier profile
func (h *AdminHandler) DeleteSupplier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.adminService.DeleteSupplier(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Supplier deleted successfully", nil)
}

// CreateDeliveryAssociate handles provisioning a rider account
func (h *AdminHandler) CreateDeliveryAssociate(c *gin.Context) {
	var req struct {
		FirstName     string  `json:"first_name" binding:"required"`
		LastName      string  `json:"last_name"`
		Email         string  `json:"email" binding:"required,email"`
		Phone         string  `json:"phone" binding:"required"`
		Password      string  `json:"password" binding:"required"`
		VehicleNumber *string `json:"vehicle_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	associate, err := h.adminService.CreateDeliveryAssociate(c.Request.Context(), &service.CreateDeliveryAssociateInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Password:      req.Password,
		VehicleNumber: req.VehicleNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Delivery associate created successfully", associate)
}

// ListDeliveryAssociates handles listing rider profiles
func (h *AdminHandler) ListDeliveryAssociates(c *gin.Context) {
	result, err := h.adminService.ListDeliveryAssociates(c.Request.Context(), paginationParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Delivery associates retrieved successfully", result)
}

// DeleteDeliveryAssociate handles removing a rider profile
func (h *AdminHandler) DeleteDeliveryAssociate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid delivery associate ID")
		return
	}

	if err := h.adminService.DeleteDeliveryAssociate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Delivery associate deleted successfully", nil)
}
