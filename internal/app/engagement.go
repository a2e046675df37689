package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

// ToggleAction says what a like toggle did.
type ToggleAction string

const (
	// ToggleAdded means the toggle created a like.
	ToggleAdded ToggleAction = "added"

	// ToggleRemoved means the toggle removed an existing like.
	ToggleRemoved ToggleAction = "removed"
)

// EngagementService owns quote likes. Likes surface to callers only as
// aggregated counts; the toggle is the single mutation path.
type EngagementService struct {
	likes  ports.LikeRepository
	logger *slog.Logger
}

// EngagementServiceConfig contains dependencies for the engagement service.
type EngagementServiceConfig struct {
	Likes  ports.LikeRepository
	Logger *slog.Logger
}

// NewEngagementService creates an engagement service.
func NewEngagementService(cfg EngagementServiceConfig) *EngagementService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &EngagementService{
		likes:  cfg.Likes,
		logger: logger,
	}
}

// Toggle flips the user's like on a quote. It inserts first and falls
// back to delete on conflict, so two racing toggles resolve to one
// consistent outcome through the store's unique constraint rather than
// any locking.
func (s *EngagementService) Toggle(ctx context.Context, userID, quoteID string) (ToggleAction, error) {
	if userID == "" {
		return "", domain.NewValidationError("user_id", "is required")
	}

	if quoteID == "" {
		return "", domain.NewValidationError("quote_id", "is required")
	}

	like := &domain.Like{
		ID:        uuid.New().String(),
		UserID:    userID,
		QuoteID:   quoteID,
		CreatedAt: time.Now().UTC(),
	}

	err := s.likes.Insert(ctx, like)
	if err == nil {
		return ToggleAdded, nil
	}

	if !domain.IsConflict(err) {
		s.logger.ErrorContext(ctx, "failed to toggle like",
			slog.String("user_id", userID),
			slog.String("quote_id", quoteID),
			slog.Any("error", err),
		)

		return "", err
	}

	// Already liked: the toggle removes it.
	if _, err := s.likes.Delete(ctx, userID, quoteID); err != nil {
		return "", err
	}

	return ToggleRemoved, nil
}

// Count returns the number of likes on a quote.
func (s *EngagementService) Count(ctx context.Context, quoteID string) (int, error) {
	if quoteID == "" {
		return 0, domain.NewValidationError("quote_id", "is required")
	}

	return s.likes.CountByQuote(ctx, quoteID)
}
