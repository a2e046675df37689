package app

import (
	"context"
	"log/slog"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

// defaultContactSubject is used when a submission omits the subject.
const defaultContactSubject = "General Inquiry"

// ContactService records contact form submissions. Submissions are
// append-only; nothing reads them back through the API.
type ContactService struct {
	contact ports.ContactRepository
	logger  *slog.Logger
}

// ContactServiceConfig contains dependencies for the contact service.
type ContactServiceConfig struct {
	Contact ports.ContactRepository
	Logger  *slog.Logger
}

// NewContactService creates a contact service.
func NewContactService(cfg ContactServiceConfig) *ContactService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ContactService{
		contact: cfg.Contact,
		logger:  logger,
	}
}

// ContactInput carries a contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
	UserID  string
}

// Submit validates and stores a contact submission.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*domain.ContactSubmission, error) {
	switch {
	case input.Name == "":
		return nil, domain.NewValidationError("name", "is required")
	case input.Email == "":
		return nil, domain.NewValidationError("email", "is required")
	case input.Message == "":
		return nil, domain.NewValidationError("message", "is required")
	}

	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, domain.NewValidationError("email", "must be a valid email address")
	}

	subject := input.Subject
	if subject == "" {
		subject = defaultContactSubject
	}

	submission := &domain.ContactSubmission{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   subject,
		Message:   input.Message,
		UserID:    input.UserID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.contact.Insert(ctx, submission); err != nil {
		s.logger.ErrorContext(ctx, "failed to store contact submission", slog.Any("error", err))
		return nil, err
	}

	return submission, nil
}
