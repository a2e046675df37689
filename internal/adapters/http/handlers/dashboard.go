package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotely/quotely-api/internal/adapters/http/dto"
	"github.com/quotely/quotely-api/internal/adapters/http/middleware"
	"github.com/quotely/quotely-api/internal/app"
	"github.com/quotely/quotely-api/internal/domain"
)

// DashboardHandler handles the aggregate dashboard endpoints.
type DashboardHandler struct {
	service *app.StatsService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service *app.StatsService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// userStatsResponse is the per-caller block of the dashboard payload.
type userStatsResponse struct {
	FavoritesCount  int `json:"favorites_count"`
	SubmittedQuotes int `json:"submitted_quotes"`
}

// dashboardResponse is the dashboard payload.
type dashboardResponse struct {
	TotalQuotes    int               `json:"total_quotes"`
	TotalUsers     int               `json:"total_users"`
	TotalFavorites int               `json:"total_favorites"`
	TotalLikes     int               `json:"total_likes"`
	UserStats      userStatsResponse `json:"user_stats"`
	RecentQuotes   []*QuoteResponse  `json:"recent_quotes"`
}

// GetDashboard handles GET /api/dashboard.
// The site-wide counts, the caller's stats and the recent-quotes panel
// are gathered concurrently; any failure fails the request.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	dashboard, err := h.service.Dashboard(c.Request.Context(), userID)
	if err != nil {
		dto.HandleError(c, err, "Failed to fetch dashboard data")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dashboardResponse{
		TotalQuotes:    dashboard.Counts.TotalQuotes,
		TotalUsers:     dashboard.Counts.TotalUsers,
		TotalFavorites: dashboard.Counts.TotalFavorites,
		TotalLikes:     dashboard.Counts.TotalLikes,
		UserStats: userStatsResponse{
			FavoritesCount:  dashboard.UserStats.FavoritesCount,
			SubmittedQuotes: dashboard.UserStats.SubmittedQuotes,
		},
		RecentQuotes: toQuoteResponses(dashboard.RecentQuotes),
	}))
}

// trendingQuoteResponse is a quote plus its like count.
type trendingQuoteResponse struct {
	QuoteResponse

	Likes int `json:"likes"`
}

// GetTrending handles GET /api/dashboard/trending.
// Returns the most recent quotes ranked by like count.
func (h *DashboardHandler) GetTrending(c *gin.Context) {
	ranked, err := h.service.Trending(c.Request.Context(), app.DefaultTrendingLimit)
	if err != nil {
		dto.HandleError(c, err, "Failed to fetch trending quotes")
		return
	}

	quotes := make([]trendingQuoteResponse, 0, len(ranked))
	for i := range ranked {
		quotes = append(quotes, toTrendingQuoteResponse(&ranked[i]))
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(quotes))
}

func toTrendingQuoteResponse(q *domain.RankedQuote) trendingQuoteResponse {
	return trendingQuoteResponse{
		QuoteResponse: *toQuoteResponse(&q.Quote),
		Likes:         q.LikeCount,
	}
}

// RegisterDashboardRoutes registers dashboard routes on the given group.
// The group must already require authentication.
func (h *DashboardHandler) RegisterDashboardRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.GET("", h.GetDashboard)
	dashboard.GET("/trending", h.GetTrending)
}
