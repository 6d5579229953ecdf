package mealplan

import (
	"net/http"

	"meal-planner/internal/api/handlers"
	"meal-planner/internal/api/middleware"
	"meal-planner/internal/models"
	"meal-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateShoppingListRequest 整批替換購物清單品項
type UpdateShoppingListRequest struct {
	Items []models.ShoppingListItem `json:"items" binding:"required"`
}

// GetShoppingList 查詢某一週的購物清單
func (h *Handler) GetShoppingList(c *gin.Context) {
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

	list, err := h.plannerService.GetShoppingList(c.Request.Context(), userID, weekStart)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	if list == nil {
		handlers.RespondError(c, common.ErrShoppingListGone)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateShoppingList 更新購物清單品項（勾選狀態切換）
func (h *Handler) UpdateShoppingList(c *gin.Context) {
	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handlers.RespondError(c, common.ErrNotFound)
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		handlers.RespondError(c, common.ErrUnauthorized)
		return
	}

	var req UpdateShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	list, err := h.plannerService.UpdateShoppingList(c.Request.Context(), userID, listID, req.Items)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
