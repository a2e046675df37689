package app

import (
	"context"
	"log/slog"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

// ProfileService reads and updates user profiles.
type ProfileService struct {
	profiles ports.ProfileRepository
	logger   *slog.Logger
}

// ProfileServiceConfig contains dependencies for the profile service.
type ProfileServiceConfig struct {
	Profiles ports.ProfileRepository
	Logger   *slog.Logger
}

// NewProfileService creates a profile service.
func NewProfileService(cfg ProfileServiceConfig) *ProfileService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ProfileService{
		profiles: cfg.Profiles,
		logger:   logger,
	}
}

// Get retrieves a profile by identifier.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	if id == "" {
		return nil, domain.NewValidationError("userId", "is required")
	}

	return s.profiles.ByID(ctx, id)
}

// Update applies the mutable profile fields. Only the profile owner may
// update it; the caller identity comes from the verified token, never
// from the request body.
func (s *ProfileService) Update(ctx context.Context, callerID, id string, update domain.ProfileUpdate) (*domain.Profile, error) {
	if id == "" {
		return nil, domain.NewValidationError("userId", "is required")
	}

	if callerID != id {
		return nil, domain.NewUnauthorizedError("profiles can only be updated by their owner")
	}

	// Fill unchanged fields from the stored profile so a partial update
	// never blanks them.
	current, err := s.profiles.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name == "" {
		update.Name = current.Name
	}

	if update.Username == "" {
		update.Username = current.Username
	}

	if update.AvatarURL == "" {
		update.AvatarURL = current.AvatarURL
	}

	profile, err := s.profiles.Update(ctx, id, update)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update profile",
			slog.String("profile_id", id),
			slog.Any("error", err),
		)

		return nil, err
	}

	return profile, nil
}
