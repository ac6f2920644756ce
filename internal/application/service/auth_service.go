package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/sokoline/soko-api/internal/domain/repository"
	"github.com/sokoline/soko-api/pkg/apperror"
	"github.com/sokoline/soko-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token refresh for every actor
// role.
type AuthService struct {
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
	jwtManager *utils.JWTManager,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		jwtManager:   jwtManager,
	}
}

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Password  string
	Role      enum.Role
	// Supplier-only fields
	BusinessName *string
	Address      *string
}

// TokenPair is an access/refresh token pair issued on login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResult bundles the authenticated user with its tokens.
type AuthResult struct {
	User   *entity.User `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

// Register creates a user account plus the role profile that goes with it.
// Only customer and supplier accounts can self-register; staff accounts are
// provisioned separately.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResult, error) {
	if input.Email == "" {
		return nil, apperror.NewRequiredFieldError("email")
	}
	if input.FirstName == "" {
		return nil, apperror.NewRequiredFieldError("firstName")
	}
	if len(input.Password) < 8 {
		return nil, apperror.NewBadRequestError("Password must be at least 8 characters")
	}
	if input.Role != enum.RoleCustomer && input.Role != enum.RoleSupplier {
		return nil, apperror.NewBadRequestError("Role must be customer or supplier")
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

	user := &entity.User{
		ID:        uuid.New(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  string(hashed),
		Role:      input.Role,
		IsActive:  true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	switch input.Role {
	case enum.RoleCustomer:
		customer := &entity.Customer{
			UserID:    user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Phone:     user.Phone,
		}
		if err := s.customerRepo.Create(ctx, customer); err != nil {
			return nil, err
		}
	case enum.RoleSupplier:
		supplier := &entity.Supplier{
			UserID:       user.ID,
			BusinessName: user.FullName(),
			Email:        user.Email,
			Phone:        user.Phone,
			Address:      input.Address,
		}
		if input.BusinessName != nil {
			supplier.BusinessName = *input.BusinessName
		}
		if err := s.supplierRepo.Create(ctx, supplier); err != nil {
			return nil, err
		}
	}

	return s.issueTokens(user)
}

// Login verifies credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperror.NewForbiddenError("Account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// RefreshToken exchanges a valid refresh token for a fresh pair.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// GetProfile returns the authenticated user.
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*AuthResult, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User: user,
		Tokens: TokenPair{
			AccessToken:  access,
			RefreshToken: refresh,
		},
	}, nil
}
