package middleware

import (
	"net/http"
	"strings"

	"meal-planner/internal/core/auth"
	"meal-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextUserIDKey 認證後的使用者 ID 存放在 gin context 的鍵
const ContextUserIDKey = "auth_user_id"

// RequireAuth 認證中間件：驗證 Bearer token 並把使用者 ID 放進 context
func RequireAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortUnauthorized(c)
			return
		}

		userID, err := authService.ParseToken(parts[1])
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextUserIDKey, userID.String())
		c.Next()
	}
}

// CurrentUserID 取出認證中間件放入的使用者 ID
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString(ContextUserIDKey)
	if raw == "" {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": common.ErrUnauthorized.Message,
		"code":  common.ErrUnauthorized.Code,
	})
}
