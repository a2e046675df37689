package app

import (
	"context"
	"log/slog"
	"sort"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

// DefaultTrendingLimit is the number of quotes a trending request returns.
const DefaultTrendingLimit = 10

// trendingWindow is the recency window trending ranks within. Ranking a
// bounded window instead of the whole catalog trades global accuracy
// for a fixed query cost.
const trendingWindow = 20

// recentQuotesCount is the recent-quotes panel size on the dashboard.
const recentQuotesCount = 10

// StatsService computes cross-entity aggregates: dashboard counts,
// per-user stats, and the trending ranking.
type StatsService struct {
	quotes    ports.QuoteRepository
	profiles  ports.ProfileRepository
	favorites ports.FavoriteRepository
	likes     ports.LikeRepository
	logger    *slog.Logger
}

// StatsServiceConfig contains dependencies for the stats service.
type StatsServiceConfig struct {
	Quotes    ports.QuoteRepository
	Profiles  ports.ProfileRepository
	Favorites ports.FavoriteRepository
	Likes     ports.LikeRepository
	Logger    *slog.Logger
}

// NewStatsService creates a stats service.
func NewStatsService(cfg StatsServiceConfig) *StatsService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &StatsService{
		quotes:    cfg.Quotes,
		profiles:  cfg.Profiles,
		favorites: cfg.Favorites,
		likes:     cfg.Likes,
		logger:    logger,
	}
}

// DashboardCounts runs the four site-wide count queries concurrently.
// The snapshot is all-or-nothing: if any count fails the whole call
// fails, partial counts are never returned.
func (s *StatsService) DashboardCounts(ctx context.Context) (*domain.DashboardCounts, error) {
	counts, err := Parallel(ctx,
		s.quotes.Count,
		s.profiles.Count,
		s.favorites.Count,
		s.likes.Count,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch dashboard counts", slog.Any("error", err))
		return nil, err
	}

	return &domain.DashboardCounts{
		TotalQuotes:    counts[0],
		TotalUsers:     counts[1],
		TotalFavorites: counts[2],
		TotalLikes:     counts[3],
	}, nil
}

// UserStats returns the per-user aggregate counts, fetched concurrently.
func (s *StatsService) UserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user_id", "is required")
	}

	favoritesCount, submittedCount, err := Parallel2(ctx,
		func(ctx context.Context) (int, error) {
			return s.favorites.CountByUser(ctx, userID)
		},
		func(ctx context.Context) (int, error) {
			return s.quotes.CountBySubmitter(ctx, userID)
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user stats",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return nil, err
	}

	return &domain.UserStats{
		FavoritesCount:  favoritesCount,
		SubmittedQuotes: submittedCount,
	}, nil
}

// Dashboard is the full dashboard payload for one user.
type Dashboard struct {
	Counts       domain.DashboardCounts
	UserStats    domain.UserStats
	RecentQuotes []domain.Quote
}

// Dashboard assembles counts, the caller's stats, and the recent-quotes
// panel. The three reads are independent and run concurrently; any
// failure fails the whole call.
func (s *StatsService) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	counts, stats, recent, err := Parallel3(ctx,
		s.DashboardCounts,
		func(ctx context.Context) (*domain.UserStats, error) {
			return s.UserStats(ctx, userID)
		},
		func(ctx context.Context) ([]domain.Quote, error) {
			return s.quotes.Recent(ctx, recentQuotesCount)
		},
	)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Counts:       *counts,
		UserStats:    *stats,
		RecentQuotes: recent,
	}, nil
}

// Trending ranks the most recent quotes by like count. The candidate
// window is the trendingWindow most recent approved quotes; within the
// window quotes sort by like count descending, with ties keeping their
// recency order (stable sort). Limits below 1 fall back to the default.
func (s *StatsService) Trending(ctx context.Context, limit int) ([]domain.RankedQuote, error) {
	if limit < 1 {
		limit = DefaultTrendingLimit
	}

	window := trendingWindow
	if limit > window {
		window = limit
	}

	ranked, err := s.quotes.RecentRanked(ctx, window)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch trending window", slog.Any("error", err))
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LikeCount > ranked[j].LikeCount
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}
