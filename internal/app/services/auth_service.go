package services

import (
	"context"

	"github.com/fiftyvillagers/seva-portal/internal/app/models"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
	"github.com/fiftyvillagers/seva-portal/internal/app/repositories"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/apperrors"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/auth"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/logger"
)

// AuthService handles registration, login and profile lookup
type AuthService struct {
	users      *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(users *repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
	}
}

// Register creates a student account and returns a signed token. Public
// registration always produces students; admin accounts are seeded.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     enums.RoleStudent,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userId", user.ID).Msg("User registered")

	return &dto.AuthResponse{Token: token, User: user}, nil
}

// Login authenticates by email and password. A missing account and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: user}, nil
}

// GetProfile returns the public fields of the authenticated user
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}
