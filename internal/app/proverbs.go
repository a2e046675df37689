package app

import (
	"context"
	"log/slog"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

// ProverbService serves the read-only proverb catalog.
type ProverbService struct {
	proverbs ports.ProverbRepository
	logger   *slog.Logger
}

// ProverbServiceConfig contains dependencies for the proverb service.
type ProverbServiceConfig struct {
	Proverbs ports.ProverbRepository
	Logger   *slog.Logger
}

// NewProverbService creates a proverb service.
func NewProverbService(cfg ProverbServiceConfig) *ProverbService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ProverbService{
		proverbs: cfg.Proverbs,
		logger:   logger,
	}
}

// List returns proverbs matching the filter, most liked first.
func (s *ProverbService) List(ctx context.Context, filter ports.ProverbFilter) ([]domain.Proverb, error) {
	proverbs, err := s.proverbs.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list proverbs", slog.Any("error", err))
		return nil, err
	}

	return proverbs, nil
}
