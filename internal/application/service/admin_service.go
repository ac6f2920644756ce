package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/sokoline/soko-api/internal/domain/repository"
	"github.com/sokoline/soko-api/pkg/apperror"
	"github.com/sokoline/soko-api/pkg/pagination"
	"golang.org/x/crypto/bcrypt"
)

// AdminService covers the back-office operations on actor profiles: listing
// and removing customers and suppliers, verifying suppliers and provisioning
// delivery associates.
type AdminService struct {
	userRepo      repository.UserRepository
	customerRepo  repository.CustomerRepository
	supplierRepo  repository.SupplierRepository
	associateRepo repository.DeliveryAssociateRepository
}

// NewAdminService creates a new admin service
func NewAdminService(
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
	associateRepo repository.DeliveryAssociateRepository,
) *AdminService {
	return &AdminService{
		userRepo:      userRepo,
		customerRepo:  customerRepo,
		supplierRepo:  supplierRepo,
		associateRepo: associateRepo,
	}
}

// ListCustomers returns customer profiles, paginated.
func (s *AdminService) ListCustomers(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(customers, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// GetCustomer returns one customer profile.
func (s *AdminService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// DeleteCustomer removes a customer profile and deactivates its user.
func (s *AdminService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.deactivateUser(ctx, customer.UserID)
}

// ListSuppliers returns supplier profiles, paginated.
func (s *AdminService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(suppliers, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// GetSupplier returns one supplier profile.
func (s *AdminService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// VerifySupplier flips the supplier's verification flag. Verification is a
// plain boolean, there is no approval workflow behind it.
func (s *AdminService) VerifySupplier(ctx context.Context, id uuid.UUID, verified bool) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	supplier.IsVerified = verified
	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier profile and deactivates its user.
func (s *AdminService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}

	if err := s.supplierRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.deactivateUser(ctx, supplier.UserID)
}

// CreateDeliveryAssociateInput carries the fields for provisioning a rider.
type CreateDeliveryAssociateInput struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Password      string
	VehicleNumber *string
}

// CreateDeliveryAssociate provisions a rider account plus its profile.
// Riders cannot self-register.
func (s *AdminService) CreateDeliveryAssociate(ctx context.Context, input *CreateDeliveryAssociateInput) (*entity.DeliveryAssociate, error) {
	if input.FirstName == "" {
		return nil, apperror.NewRequiredFieldError("firstName")
	}
	if input.Email == "" {
		return nil, apperror.NewRequiredFieldError("email")
	}
	if input.Phone == "" {
		return nil, apperror.NewRequiredFieldError("phone")
	}
	if len(input.Password) < 8 {
		return nil, apperror.NewBadRequestError("Password must be at least 8 characters")
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	phone := input.Phone
	user := &entity.User{
		ID:        uuid.New(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     &phone,
		Password:  string(hashed),
		Role:      enum.RoleDeliveryAssociate,
		IsActive:  true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	associate := &entity.DeliveryAssociate{
		ID:            uuid.New(),
		UserID:        user.ID,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Phone:         input.Phone,
		VehicleNumber: input.VehicleNumber,
		IsActive:      true,
	}
	if err := s.associateRepo.Create(ctx, associate); err != nil {
		return nil, err
	}
	return associate, nil
}

// ListDeliveryAssociates returns rider profiles, paginated.
func (s *AdminService) ListDeliveryAssociates(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.DeliveryAssociate], error) {
	associates, total, err := s.associateRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(associates, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// DeleteDeliveryAssociate removes a rider profile and deactivates its user.
func (s *AdminService) DeleteDeliveryAssociate(ctx context.Context, id uuid.UUID) error {
	associate, err := s.associateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if associate == nil {
		return apperror.NewNotFoundError("Delivery associate")
	}

	if err := s.associateRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.deactivateUser(ctx, associate.UserID)
}

func (s *AdminService) deactivateUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return err
	}
	user.IsActive = false
	return s.userRepo.Update(ctx, user)
}
