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

// FavoritesHandler handles the per-user favorites endpoints.
// All routes require authentication; the user ID always comes from the
// verified token, never from the request body.
type FavoritesHandler struct {
	service *app.FavoritesService
}

// NewFavoritesHandler creates a new favorites handler.
func NewFavoritesHandler(service *app.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{
		service: service,
	}
}

// FavoriteResponse is the HTTP representation of a saved favorite.
type FavoriteResponse struct {
	ID        string         `json:"id"`
	ItemID    string         `json:"item_id"`
	ItemType  string         `json:"item_type"`
	CreatedAt time.Time      `json:"created_at"`
	Quote     *QuoteResponse `json:"quote,omitempty"`
}

func toFavoriteResponse(entry *domain.FavoriteEntry) *FavoriteResponse {
	resp := &FavoriteResponse{
		ID:        entry.ID,
		ItemID:    entry.ItemID,
		ItemType:  string(entry.ItemType),
		CreatedAt: entry.CreatedAt,
	}

	if entry.Quote != nil {
		resp.Quote = toQuoteResponse(entry.Quote)
	}

	return resp
}

// ListFavorites handles GET /api/favorites.
// Returns the caller's favorites joined to their quotes, most recent
// first, with offset pagination metadata.
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.RespondWithMessage(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := h.service.List(c.Request.Context(), userID, query.Page, query.Limit)
	if err != nil {
		dto.HandleError(c, err, "Failed to fetch favorites")
		return
	}

	entries := make([]*FavoriteResponse, 0, len(page.Entries))
	for i := range page.Entries {
		entries = append(entries, toFavoriteResponse(&page.Entries[i]))
	}

	c.JSON(http.StatusOK, dto.NewListResponse(entries, dto.NewPagination(page.Page, page.Total)))
}

// addFavoriteRequest is the body for saving a favorite. The item type
// defaults to quote, matching what the web client sends.
type addFavoriteRequest struct {
	QuoteID  string `json:"quote_id"`
	ItemType string `json:"item_type"`
}

// AddFavorite handles POST /api/favorites.
// Saving an already saved item responds 400 rather than duplicating it.
func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	itemType := domain.ItemType(req.ItemType)
	if req.ItemType == "" {
		itemType = domain.ItemTypeQuote
	}

	result, err := h.service.Add(c.Request.Context(), userID, req.QuoteID, itemType)
	if err != nil {
		dto.HandleError(c, err, "Failed to add favorite")
		return
	}

	if !result.Created {
		dto.RespondWithMessage(c, http.StatusBadRequest, "Already favorited")
		return
	}

	c.JSON(http.StatusCreated, dto.NewDataResponse(toFavoriteResponse(&domain.FavoriteEntry{
		Favorite: *result.Favorite,
	})))
}

// removeFavoriteResponse acknowledges a removal.
type removeFavoriteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RemoveFavorite handles DELETE /api/favorites/:quoteId.
// Removal is idempotent: deleting an item that was never saved still
// answers the success envelope, so client retries cannot surface errors.
func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	itemID := c.Param("quoteId")
	itemType := favoriteItemType(c)

	if _, err := h.service.Remove(c.Request.Context(), userID, itemID, itemType); err != nil {
		dto.HandleError(c, err, "Failed to remove favorite")
		return
	}

	c.JSON(http.StatusOK, removeFavoriteResponse{
		Success: true,
		Message: "Removed from favorites",
	})
}

// checkFavoriteResponse reports membership for one item.
type checkFavoriteResponse struct {
	Success     bool `json:"success"`
	IsFavorited bool `json:"is_favorited"`
}

// CheckFavorite handles GET /api/favorites/check/:quoteId.
func (h *FavoritesHandler) CheckFavorite(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	itemID := c.Param("quoteId")
	itemType := favoriteItemType(c)

	favorited, err := h.service.IsFavorited(c.Request.Context(), userID, itemID, itemType)
	if err != nil {
		dto.HandleError(c, err, "Failed to check favorite")
		return
	}

	c.JSON(http.StatusOK, checkFavoriteResponse{
		Success:     true,
		IsFavorited: favorited,
	})
}

// favoriteItemType reads the optional item_type query parameter,
// defaulting to quote.
func favoriteItemType(c *gin.Context) domain.ItemType {
	if v := c.Query("item_type"); v != "" {
		return domain.ItemType(v)
	}

	return domain.ItemTypeQuote
}

// RegisterFavoriteRoutes registers favorites routes on the given group.
// The group must already require authentication.
func (h *FavoritesHandler) RegisterFavoriteRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	favorites.GET("", h.ListFavorites)
	favorites.POST("", h.AddFavorite)
	favorites.DELETE("/:quoteId", h.RemoveFavorite)
	favorites.GET("/check/:quoteId", h.CheckFavorite)
}
