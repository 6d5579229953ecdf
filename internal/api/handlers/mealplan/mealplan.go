package mealplan

import (
	"net/http"

	"meal-planner/internal/api/handlers"
	"meal-planner/internal/api/middleware"
	"meal-planner/internal/core/planner"
	"meal-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 餐點計畫處理器
type Handler struct {
	plannerService *planner.Service
}

// NewHandler 創建餐點計畫處理器
func NewHandler(svc *planner.Service) *Handler {
	return &Handler{
		plannerService: svc,
	}
}

// Generate 生成一週餐點計畫與購物清單
func (h *Handler) Generate(c *gin.Context) {
	requestID := handlers.RequestID(c)

	// 日期驗證先於其他處理
	weekStart, err := common.ParseISODate(c.Query("week_start"))
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		handlers.RespondError(c, common.ErrUnauthorized)
		return
	}

	common.LogInfo("開始生成餐點計畫",
		zap.String("request_id", requestID),
		zap.String("user_id", userID.String()),
		zap.Time("week_start", weekStart),
	)

	result, err := h.plannerService.Generate(c.Request.Context(), userID, weekStart)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get 查詢某一週的餐點安排
func (h *Handler) Get(c *gin.Context) {
	weekStart, err := common.ParseISODate(c.Query("week_start"))
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		handlers.RespondError(c, common.ErrUnauthorized)
		return
	}

	entries, err := h.plannerService.GetMealPlan(c.Request.Context(), userID, weekStart)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meal_plan": entries,
	})
}
