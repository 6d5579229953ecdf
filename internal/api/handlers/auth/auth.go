package auth

import (
	"net/http"

	"meal-planner/internal/api/handlers"
	authService "meal-planner/internal/core/auth"
	"meal-planner/internal/models"
	"meal-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CredentialsRequest 註冊與登入共用的請求格式
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse 對外的使用者資料，不含密碼雜湊
type UserResponse struct {
	ID          string              `json:"id"`
	Username    string              `json:"username"`
	Preferences *models.Preferences `json:"preferences"`
}

// Handler 認證處理器
type Handler struct {
	authService *authService.Service
}

// NewHandler 創建認證處理器
func NewHandler(svc *authService.Service) *Handler {
	return &Handler{
		authService: svc,
	}
}

// Register 註冊新帳號
func (h *Handler) Register(c *gin.Context) {
	requestID := handlers.RequestID(c)

	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  toUserResponse(user),
	})
}

// Login 帳號登入
func (h *Handler) Login(c *gin.Context) {
	requestID := handlers.RequestID(c)

	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  toUserResponse(user),
	})
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Preferences: user.GetPreferences(),
	}
}
