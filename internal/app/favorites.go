// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

// FavoritesService orchestrates user favorites: idempotent add, remove,
// membership checks, and paged listing.
type FavoritesService struct {
	favorites ports.FavoriteRepository
	logger    *slog.Logger
}

// FavoritesServiceConfig contains dependencies for the favorites service.
type FavoritesServiceConfig struct {
	Favorites ports.FavoriteRepository
	Logger    *slog.Logger
}

// NewFavoritesService creates a favorites service.
func NewFavoritesService(cfg FavoritesServiceConfig) *FavoritesService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &FavoritesService{
		favorites: cfg.Favorites,
		logger:    logger,
	}
}

// AddResult reports whether Add created a favorite. Created is false
// when the item was already favorited; that outcome is not an error.
type AddResult struct {
	Created  bool
	Favorite *domain.Favorite
}

// Add favorites an item for a user. The pre-check gives the common
// duplicate path a cheap answer, but the store's unique constraint is
// the real guard: a concurrent duplicate insert comes back as a
// conflict and is reported as already-favorited, never as a failure.
func (s *FavoritesService) Add(ctx context.Context, userID, itemID string, itemType domain.ItemType) (*AddResult, error) {
	if err := validateFavoriteTriple(userID, itemID, itemType); err != nil {
		return nil, err
	}

	exists, err := s.favorites.Exists(ctx, userID, itemID, itemType)
	if err != nil {
		return nil, err
	}

	if exists {
		return &AddResult{Created: false}, nil
	}

	favorite := &domain.Favorite{
		ID:        uuid.New().String(),
		UserID:    userID,
		ItemID:    itemID,
		ItemType:  itemType,
		CreatedAt: time.Now().UTC(),
	}

	err = s.favorites.Insert(ctx, favorite)
	if err != nil {
		if domain.IsConflict(err) {
			// Lost the race against a concurrent add by the same user.
			return &AddResult{Created: false}, nil
		}

		s.logger.ErrorContext(ctx, "failed to add favorite",
			slog.String("user_id", userID),
			slog.String("item_id", itemID),
			slog.Any("error", err),
		)

		return nil, err
	}

	return &AddResult{Created: true, Favorite: favorite}, nil
}

// Remove deletes a favorite. Removing an absent favorite reports
// removed=false and is not an error.
func (s *FavoritesService) Remove(ctx context.Context, userID, itemID string, itemType domain.ItemType) (bool, error) {
	if err := validateFavoriteTriple(userID, itemID, itemType); err != nil {
		return false, err
	}

	return s.favorites.Delete(ctx, userID, itemID, itemType)
}

// IsFavorited reports whether the user has favorited the item. Zero
// matching rows is false, never an error.
func (s *FavoritesService) IsFavorited(ctx context.Context, userID, itemID string, itemType domain.ItemType) (bool, error) {
	if err := validateFavoriteTriple(userID, itemID, itemType); err != nil {
		return false, err
	}

	return s.favorites.Exists(ctx, userID, itemID, itemType)
}

// FavoritesPage is one page of a user's favorites with pagination totals.
type FavoritesPage struct {
	Entries []domain.FavoriteEntry
	Page    ports.Page
	Total   int
	Pages   int
}

// List returns the user's favorites joined to their quotes, most recent
// first. Page and limit below 1 fall back to the defaults.
func (s *FavoritesService) List(ctx context.Context, userID string, pageNumber, limit int) (*FavoritesPage, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user_id", "is required")
	}

	page := ports.NormalizePage(pageNumber, limit)

	entries, total, err := s.favorites.ListByUser(ctx, userID, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list favorites",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return nil, err
	}

	return &FavoritesPage{
		Entries: entries,
		Page:    page,
		Total:   total,
		Pages:   page.Pages(total),
	}, nil
}

func validateFavoriteTriple(userID, itemID string, itemType domain.ItemType) error {
	if userID == "" {
		return domain.NewValidationError("user_id", "is required")
	}

	if itemID == "" {
		return domain.NewValidationError("item_id", "is required")
	}

	if !itemType.Valid() {
		return domain.NewValidationErrorWithValue("item_type", "must be quote or proverb", string(itemType))
	}

	return nil
}
