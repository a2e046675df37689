package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotely/quotely-api/internal/adapters/http/dto"
	"github.com/quotely/quotely-api/internal/app"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	service *app.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service *app.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// sessionResponse is the envelope for both signup and login.
type sessionResponse struct {
	Success bool             `json:"success"`
	User    *ProfileResponse `json:"user"`
	Token   string           `json:"token"`
}

// signupRequest is the signup body. Name and username are optional;
// the service derives defaults from the email.
type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Signup handles POST /api/auth/signup.
// A duplicate email responds 400.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	session, err := h.service.Signup(c.Request.Context(), app.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Username: req.Username,
	})
	if err != nil {
		dto.HandleError(c, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusOK, sessionResponse{
		Success: true,
		User:    toProfileResponse(session.Profile),
		Token:   session.Token,
	})
}

// loginRequest is the login body.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/auth/login.
// Unknown email and wrong password produce the same 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.HandleError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, sessionResponse{
		Success: true,
		User:    toProfileResponse(session.Profile),
		Token:   session.Token,
	})
}

// RegisterAuthRoutes registers auth routes on the given group.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)
}
