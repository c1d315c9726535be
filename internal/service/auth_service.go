package service

import (
	"context"
	"fmt"
	"time"

	"abhi-advisor-be/internal/dto"
	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/pkg/apperror"
	"abhi-advisor-be/internal/pkg/logger"
	"abhi-advisor-be/internal/repository/specification"
	"abhi-advisor-be/internal/repository/unitofwork"
	"abhi-advisor-be/pkg/store"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     store.TokenStore
	jwtSecret  []byte
	logger     logger.ILogger
	now        func() time.Time
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokens store.TokenStore, jwtSecret string, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokens:     tokens,
		jwtSecret:  []byte(jwtSecret),
		logger:     log,
		now:        time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperror.Validation("Username and password are required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, apperror.Internal("failed to load user", err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("AUTH", "Failed login attempt", map[string]interface{}{"username": req.Username})
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(tokenTTL)
	claims := jwt.MapClaims{
		"user_id": user.Id,
		"role":    user.Role,
		"iat":     issuedAt.Unix(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, apperror.Internal("failed to sign token", err)
	}

	if err := s.tokens.Save(ctx, &store.AuthSession{
		Token:     signed,
		UserID:    user.Id,
		Role:      user.Role,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, apperror.Internal("failed to store session", err)
	}

	s.logger.Info("AUTH", fmt.Sprintf("User %s logged in", user.Username), map[string]interface{}{"user_id": user.Id})

	return &dto.LoginResponse{
		User:  toUserResponse(user),
		Token: signed,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return apperror.Validation("token is required")
	}
	return s.tokens.Revoke(ctx, token)
}

// HashPassword hashes with the same cost Login expects.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:        u.Id,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Level:     u.Level,
		CreatedAt: u.CreatedAt,
	}
}
