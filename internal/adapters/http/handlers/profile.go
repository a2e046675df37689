package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quotely/quotely-api/internal/adapters/http/dto"
	"github.com/quotely/quotely-api/internal/adapters/http/middleware"
	"github.com/quotely/quotely-api/internal/app"
	"github.com/quotely/quotely-api/internal/domain"
)

// ProfileHandler handles the user profile endpoints.
type ProfileHandler struct {
	service *app.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(service *app.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service: service,
	}
}

// ProfileResponse is the public HTTP representation of a profile.
// The password hash never leaves the domain layer.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toProfileResponse(p *domain.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		Name:      p.Name,
		Username:  p.Username,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
	}
}

// profileEnvelope wraps a profile in the success envelope.
type profileEnvelope struct {
	Success bool             `json:"success"`
	Profile *ProfileResponse `json:"profile"`
}

// GetProfile handles GET /api/user/profile/:userId.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		dto.HandleError(c, err, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, profileEnvelope{
		Success: true,
		Profile: toProfileResponse(profile),
	})
}

// updateProfileRequest is the body for a profile update. Identity and
// creation time are not updatable; unknown fields are ignored.
type updateProfileRequest struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// UpdateProfile handles PUT /api/user/profile/:userId.
// Callers can only update their own profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.service.Update(c.Request.Context(), callerID, c.Param("userId"), domain.ProfileUpdate{
		Name:      req.Name,
		Username:  req.Username,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		dto.HandleError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profileEnvelope{
		Success: true,
		Profile: toProfileResponse(profile),
	})
}

// RegisterProfileRoutes registers profile routes. Reads are public;
// updates go on the authenticated group.
func (h *ProfileHandler) RegisterProfileRoutes(public, protected *gin.RouterGroup) {
	public.GET("/user/profile/:userId", h.GetProfile)
	protected.PUT("/user/profile/:userId", h.UpdateProfile)
}
