package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/models"
	"meal-planner/internal/pkg/common"
	"meal-planner/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service 帳號註冊、登入與 token 簽發
type Service struct {
	userRepo repository.UserRepository
	config   *config.AuthConfig
}

// NewService 創建認證服務
func NewService(userRepo repository.UserRepository, cfg *config.AuthConfig) *Service {
	return &Service{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Register 註冊新帳號，回傳使用者與 access token
func (s *Service) Register(ctx context.Context, username, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, "", common.NewValidationError("username is required")
	}
	if len(password) < 6 {
		return nil, "", common.NewValidationError("password must be at least 6 characters")
	}

	exists, err := s.userRepo.UsernameExists(ctx, nil, username)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", common.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:       uuid.New(),
		Username: username,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, nil, user); err != nil {
		return nil, "", err
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	common.LogInfo("使用者註冊成功",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username),
	)
	return user, token, nil
}

// Login 驗證帳號密碼並簽發 access token。
// 帳號不存在與密碼錯誤回傳相同錯誤，不洩漏帳號是否存在。
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, nil, strings.TrimSpace(username))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	common.LogInfo("使用者登入成功",
		zap.String("user_id", user.ID.String()),
	)
	return user, token, nil
}

// ParseToken 驗證 token 並取出使用者 ID
func (s *Service) ParseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, common.ErrUnauthorized
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, common.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, common.ErrUnauthorized
	}
	return userID, nil
}

// signToken 簽發 HS256 access token
func (s *Service) signToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
