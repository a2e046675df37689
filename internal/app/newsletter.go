package app

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

// NewsletterService records newsletter signups. Subscribing twice is a
// success with a notice, never an error.
type NewsletterService struct {
	subscribers ports.NewsletterRepository
	logger      *slog.Logger
}

// NewsletterServiceConfig contains dependencies for the newsletter service.
type NewsletterServiceConfig struct {
	Subscribers ports.NewsletterRepository
	Logger      *slog.Logger
}

// NewNewsletterService creates a newsletter service.
func NewNewsletterService(cfg NewsletterServiceConfig) *NewsletterService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &NewsletterService{
		subscribers: cfg.Subscribers,
		logger:      logger,
	}
}

// SubscribeResult reports whether Subscribe created a new subscriber.
type SubscribeResult struct {
	Created    bool
	Subscriber *domain.NewsletterSubscriber
}

// Subscribe stores a subscriber. A duplicate email reports Created=false.
func (s *NewsletterService) Subscribe(ctx context.Context, email, name string) (*SubscribeResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, domain.NewValidationError("email", "is required")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return nil, domain.NewValidationError("email", "must be a valid email address")
	}

	subscriber := &domain.NewsletterSubscriber{
		ID:        uuid.New().String(),
		// Bare address only; ParseAddress tolerates display-name forms.
		Email:     addr.Address,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.subscribers.Insert(ctx, subscriber); err != nil {
		if domain.IsConflict(err) {
			return &SubscribeResult{Created: false}, nil
		}

		s.logger.ErrorContext(ctx, "failed to store subscriber", slog.Any("error", err))

		return nil, err
	}

	return &SubscribeResult{Created: true, Subscriber: subscriber}, nil
}
