package user

import (
	"net/http"

	"meal-planner/internal/api/handlers"
	"meal-planner/internal/api/middleware"
	"meal-planner/internal/core/planner"
	"meal-planner/internal/models"
	"meal-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// PreferencesRequest 飲食偏好更新請求
type PreferencesRequest struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
	PeopleCount         int      `json:"people_count" binding:"required"`
}

// Handler 使用者偏好處理器
type Handler struct {
	plannerService *planner.Service
}

// NewHandler 創建使用者偏好處理器
func NewHandler(svc *planner.Service) *Handler {
	return &Handler{
		plannerService: svc,
	}
}

// UpdatePreferences 更新飲食偏好
func (h *Handler) UpdatePreferences(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		handlers.RespondError(c, common.ErrUnauthorized)
		return
	}

	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	prefs := models.Preferences{
		DietaryRestrictions: req.DietaryRestrictions,
		Allergies:           req.Allergies,
		PeopleCount:         req.PeopleCount,
	}

	updated, err := h.plannerService.UpdatePreferences(c.Request.Context(), userID, prefs)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"preferences": updated.GetPreferences(),
	})
}
