package recipe

import (
	"net/http"

	"meal-planner/internal/api/handlers"
	"meal-planner/internal/core/catalog"

	"github.com/gin-gonic/gin"
)

// Handler 食譜目錄處理器
type Handler struct {
	catalogService *catalog.Service
}

// NewHandler 創建食譜目錄處理器
func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{
		catalogService: svc,
	}
}

// List 回傳完整食譜目錄
func (h *Handler) List(c *gin.Context) {
	recipes, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
	})
}
