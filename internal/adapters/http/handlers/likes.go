package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotely/quotely-api/internal/adapters/http/dto"
	"github.com/quotely/quotely-api/internal/adapters/http/middleware"
	"github.com/quotely/quotely-api/internal/app"
)

// LikesHandler handles the quote like endpoints.
type LikesHandler struct {
	service *app.EngagementService
}

// NewLikesHandler creates a new likes handler.
func NewLikesHandler(service *app.EngagementService) *LikesHandler {
	return &LikesHandler{
		service: service,
	}
}

// toggleLikeRequest is the body for a like toggle.
type toggleLikeRequest struct {
	QuoteID string `json:"quote_id"`
}

// toggleLikeResponse reports which way the toggle went.
type toggleLikeResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
}

// ToggleLike handles POST /api/likes/toggle.
// A first like adds, a repeated like removes; the response says which.
func (h *LikesHandler) ToggleLike(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req toggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	action, err := h.service.Toggle(c.Request.Context(), userID, req.QuoteID)
	if err != nil {
		dto.HandleError(c, err, "Failed to toggle like")
		return
	}

	c.JSON(http.StatusOK, toggleLikeResponse{
		Success: true,
		Action:  string(action),
	})
}

// RegisterLikeRoutes registers like routes on the given group.
// The group must already require authentication.
func (h *LikesHandler) RegisterLikeRoutes(rg *gin.RouterGroup) {
	likes := rg.Group("/likes")
	likes.POST("/toggle", h.ToggleLike)
}
