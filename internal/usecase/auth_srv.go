package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	RegisterHotel(ctx context.Context, req *request.HotelRegisterRequest) (*response.HotelRegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error)
	AdminLogin(ctx context.Context, req *request.AdminLoginRequest) (*response.TokenResponse, error)
	Me(ctx context.Context, userID string) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	role := entity.RoleClient
	if req.Role == string(entity.RoleAdmin) {
		role = entity.RoleAdmin
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	user := &entity.User{
		UserID:       utils.GenerateUserID(role),
		Role:         role,
		Email:        req.Email,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Phone:        req.Phone,
		City:         req.City,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.UserID),
		zap.String("role", string(user.Role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) RegisterHotel(ctx context.Context, req *request.HotelRegisterRequest) (*response.HotelRegisterResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Hotel register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	// A hotel account is an admin user carrying the hotel profile.
	user := &entity.User{
		UserID:             utils.GenerateUserID(entity.RoleAdmin),
		Role:               entity.RoleAdmin,
		Email:              req.Email,
		PasswordHash:       hashed,
		FullName:           &req.ContactPerson,
		Phone:              &req.Phone,
		City:               &req.City,
		HotelName:          &req.HotelName,
		HotelAddress:       req.Address,
		HotelWebsite:       req.Website,
		HotelDescription:   req.Description,
		HotelContactPerson: &req.ContactPerson,
		CreatedAt:          time.Now(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create hotel admin", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create hotel account: %w", err)
	}

	s.log.Info("Hotel registered",
		zap.String("user_id", user.UserID),
		zap.String("hotel_name", req.HotelName),
	)

	return &response.HotelRegisterResponse{
		HotelName:     req.HotelName,
		AdminUserID:   user.UserID,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		City:          req.City,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid credentials", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(user)
}

func (s *authService) AdminLogin(ctx context.Context, req *request.AdminLoginRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Admin login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, req.UserID)
	if err != nil {
		s.log.Error("Failed to find admin user", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil || user.Role != entity.RoleAdmin || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid admin credentials", zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("invalid admin credentials")
	}

	return s.issueToken(user)
}

func (s *authService) Me(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) issueToken(user *entity.User) (*response.TokenResponse, error) {
	token, err := utils.NewAccessToken(s.config.JWT.Secret, user.UserID, user.Role, s.config.JWT.ExpiryMinutes)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.UserID))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.UserID),
		zap.String("role", string(user.Role)),
	)

	return &response.TokenResponse{
		AccessToken: token.Token,
		TokenType:   "bearer",
		ExpiresAt:   token.Exp,
	}, nil
}
