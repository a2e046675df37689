package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotely/quotely-api/internal/app"
	"github.com/quotely/quotely-api/internal/domain"
)

type statsRepos struct {
	quotes    *memQuoteRepo
	profiles  *memProfileRepo
	favorites *memFavoriteRepo
	likes     *memLikeRepo
}

func newStatsService(repos statsRepos) *app.StatsService {
	if repos.quotes == nil {
		repos.quotes = newMemQuoteRepo()
	}

	if repos.profiles == nil {
		repos.profiles = newMemProfileRepo()
	}

	if repos.favorites == nil {
		repos.favorites = newMemFavoriteRepo()
	}

	if repos.likes == nil {
		repos.likes = newMemLikeRepo()
	}

	return app.NewStatsService(app.StatsServiceConfig{
		Quotes:    repos.quotes,
		Profiles:  repos.profiles,
		Favorites: repos.favorites,
		Likes:     repos.likes,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestGetDashboard(t *testing.T) {
	t.Run("aggregates counts and caller stats", func(t *testing.T) {
		quotes := newMemQuoteRepo(
			domain.Quote{ID: "q-1", Text: "one", Author: "A", SubmittedBy: "user-1", Approved: true, CreatedAt: time.Now().UTC()},
			domain.Quote{ID: "q-2", Text: "two", Author: "B", SubmittedBy: "user-2", Approved: true, CreatedAt: time.Now().UTC()},
		)
		profiles := newMemProfileRepo(
			domain.Profile{ID: "user-1", Email: "one@example.com"},
			domain.Profile{ID: "user-2", Email: "two@example.com"},
		)
		favorites := newMemFavoriteRepo()
		favorites.favorites[favoriteKey{"user-1", "q-2", domain.ItemTypeQuote}] = domain.Favorite{
			ID: "f-1", UserID: "user-1", ItemID: "q-2", ItemType: domain.ItemTypeQuote,
		}
		likes := newMemLikeRepo()
		likes.likes[likeKey{"user-1", "q-2"}] = domain.Like{ID: "l-1", UserID: "user-1", QuoteID: "q-2"}

		service := newStatsService(statsRepos{quotes: quotes, profiles: profiles, favorites: favorites, likes: likes})
		engine, api := newTestRouter("user-1")
		NewDashboardHandler(service).RegisterDashboardRoutes(api)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				TotalQuotes    int `json:"total_quotes"`
				TotalUsers     int `json:"total_users"`
				TotalFavorites int `json:"total_favorites"`
				TotalLikes     int `json:"total_likes"`
				UserStats      struct {
					FavoritesCount  int `json:"favorites_count"`
					SubmittedQuotes int `json:"submitted_quotes"`
				} `json:"user_stats"`
				RecentQuotes []*QuoteResponse `json:"recent_quotes"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Data.TotalQuotes)
		assert.Equal(t, 2, resp.Data.TotalUsers)
		assert.Equal(t, 1, resp.Data.TotalFavorites)
		assert.Equal(t, 1, resp.Data.TotalLikes)
		assert.Equal(t, 1, resp.Data.UserStats.FavoritesCount)
		assert.Equal(t, 1, resp.Data.UserStats.SubmittedQuotes)
		assert.Len(t, resp.Data.RecentQuotes, 2)
	})

	t.Run("any failing count fails the request", func(t *testing.T) {
		likes := newMemLikeRepo()
		likes.err = assert.AnError

		service := newStatsService(statsRepos{likes: likes})
		engine, api := newTestRouter("user-1")
		NewDashboardHandler(service).RegisterDashboardRoutes(api)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to fetch dashboard data")
	})
}

func TestGetTrending(t *testing.T) {
	t.Run("ranks recent quotes by like count", func(t *testing.T) {
		quotes := newMemQuoteRepo(
			domain.Quote{ID: "q-1", Text: "one", Author: "A", Approved: true},
			domain.Quote{ID: "q-2", Text: "two", Author: "B", Approved: true},
			domain.Quote{ID: "q-3", Text: "three", Author: "C", Approved: true},
		)
		quotes.likes["q-2"] = 5
		quotes.likes["q-3"] = 2

		service := newStatsService(statsRepos{quotes: quotes})
		engine, api := newTestRouter("user-1")
		NewDashboardHandler(service).RegisterDashboardRoutes(api)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/trending", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    []struct {
				ID    string `json:"id"`
				Likes int    `json:"likes"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

		assert.True(t, resp.Success)
		require.Len(t, resp.Data, 3)
		assert.Equal(t, "q-2", resp.Data[0].ID)
		assert.Equal(t, 5, resp.Data[0].Likes)
		assert.Equal(t, "q-3", resp.Data[1].ID)
		assert.Equal(t, "q-1", resp.Data[2].ID)
	})

	t.Run("repository failure returns endpoint message", func(t *testing.T) {
		quotes := newMemQuoteRepo()
		quotes.err = assert.AnError

		service := newStatsService(statsRepos{quotes: quotes})
		engine, api := newTestRouter("user-1")
		NewDashboardHandler(service).RegisterDashboardRoutes(api)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/trending", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to fetch trending quotes")
	})
}
