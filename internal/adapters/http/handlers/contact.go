package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quotely/quotely-api/internal/adapters/http/dto"
	"github.com/quotely/quotely-api/internal/adapters/http/middleware"
	"github.com/quotely/quotely-api/internal/app"
)

// ContactHandler handles the contact form and newsletter endpoints.
type ContactHandler struct {
	contact    *app.ContactService
	newsletter *app.NewsletterService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contact *app.ContactService, newsletter *app.NewsletterService) *ContactHandler {
	return &ContactHandler{
		contact:    contact,
		newsletter: newsletter,
	}
}

// contactRequest is the contact form body.
type contactRequest struct {
	Name    string `json:"name" validate:"required,notempty"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required,notempty"`
	UserID  string `json:"userId"`
}

// contactSubmissionResponse echoes the stored submission.
type contactSubmissionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// contactEnvelope is the contact form response.
type contactEnvelope struct {
	Success    bool                      `json:"success"`
	Message    string                    `json:"message"`
	Submission contactSubmissionResponse `json:"submission"`
}

// SubmitContact handles POST /api/contact.
// Signed-in callers get their submission linked to their profile; a
// bearer token wins over a userId in the body.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	userID, _ := middleware.UserID(c)
	if userID == "" {
		userID = req.UserID
	}

	submission, err := h.contact.Submit(c.Request.Context(), app.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		UserID:  userID,
	})
	if err != nil {
		dto.HandleError(c, err, "Failed to submit message")
		return
	}

	c.JSON(http.StatusCreated, contactEnvelope{
		Success: true,
		Message: "Message received successfully",
		Submission: contactSubmissionResponse{
			ID:        submission.ID,
			Name:      submission.Name,
			Email:     submission.Email,
			Subject:   submission.Subject,
			Message:   submission.Message,
			CreatedAt: submission.CreatedAt,
		},
	})
}

// subscribeRequest is the newsletter signup body.
type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// subscribeResponse acknowledges a newsletter signup.
type subscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Subscribe handles POST /api/newsletter/subscribe.
// Subscribing an already subscribed email succeeds without a new row.
func (h *ContactHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	result, err := h.newsletter.Subscribe(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		dto.HandleError(c, err, "Failed to subscribe")
		return
	}

	message := "Subscribed to newsletter"
	if !result.Created {
		message = "Already subscribed"
	}

	c.JSON(http.StatusOK, subscribeResponse{
		Success: true,
		Message: message,
	})
}

// RegisterContactRoutes registers contact and newsletter routes.
func (h *ContactHandler) RegisterContactRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.SubmitContact)
	rg.POST("/newsletter/subscribe", h.Subscribe)
}
