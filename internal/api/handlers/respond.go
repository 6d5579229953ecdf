package handlers

import (
	"net/http"

	"meal-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID 取得或補發請求 ID
func RequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// RespondError 統一錯誤響應：業務錯誤帶自己的狀態碼與代碼，
// 其餘一律 500，細節只進日誌不出站
func RespondError(c *gin.Context, err error) {
	if ce := common.AsCustomError(err); ce != nil {
		c.JSON(ce.Status, gin.H{
			"error": ce.Message,
			"code":  ce.Code,
		})
		return
	}

	if common.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	common.LogError("未處理的錯誤",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetHeader("X-Request-ID")),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  common.ErrCodeInternalError,
	})
}
