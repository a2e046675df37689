package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotely/quotely-api/internal/app"
	"github.com/quotely/quotely-api/internal/domain"
)

func newProverbService(repo *memProverbRepo) *app.ProverbService {
	return app.NewProverbService(app.ProverbServiceConfig{
		Proverbs: repo,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func seedProverbs() []domain.Proverb {
	return []domain.Proverb{
		{
			ID:         "p-1",
			Content:    "Fall seven times, stand up eight.",
			Origin:     "Japanese",
			Category:   "perseverance",
			LikesCount: 3,
		},
		{
			ID:          "p-2",
			Content:     "Aller Anfang ist schwer.",
			Origin:      "German",
			Category:    "perseverance",
			Translation: "All beginnings are hard.",
			LikesCount:  9,
		},
		{
			ID:         "p-3",
			Content:    "A journey of a thousand miles begins with a single step.",
			Origin:     "Chinese",
			Category:   "wisdom",
			Meaning:    "Great things start small.",
			LikesCount: 5,
		},
	}
}

func listProverbsReq(t *testing.T, repo *memProverbRepo, query string) *httptest.ResponseRecorder {
	t.Helper()

	engine, api := newTestRouter("")
	NewProverbHandler(newProverbService(repo)).RegisterProverbRoutes(api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/proverbs"+query, nil)
	engine.ServeHTTP(w, req)

	return w
}

func TestListProverbs(t *testing.T) {
	type listResponse struct {
		Success  bool               `json:"success"`
		Proverbs []*ProverbResponse `json:"proverbs"`
	}

	t.Run("returns proverbs most liked first", func(t *testing.T) {
		w := listProverbsReq(t, &memProverbRepo{proverbs: seedProverbs()}, "")

		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

		assert.True(t, resp.Success)
		require.Len(t, resp.Proverbs, 3)
		assert.Equal(t, "p-2", resp.Proverbs[0].ID)
		assert.Equal(t, 9, resp.Proverbs[0].Likes)
		assert.Equal(t, "p-3", resp.Proverbs[1].ID)
		assert.Equal(t, "p-1", resp.Proverbs[2].ID)
	})

	t.Run("filters by origin", func(t *testing.T) {
		w := listProverbsReq(t, &memProverbRepo{proverbs: seedProverbs()}, "?origin=Japanese")

		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Proverbs, 1)
		assert.Equal(t, "p-1", resp.Proverbs[0].ID)
	})

	t.Run("filters by category", func(t *testing.T) {
		w := listProverbsReq(t, &memProverbRepo{proverbs: seedProverbs()}, "?category=perseverance")

		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Len(t, resp.Proverbs, 2)
	})

	t.Run("search matches content", func(t *testing.T) {
		w := listProverbsReq(t, &memProverbRepo{proverbs: seedProverbs()}, "?search=thousand+miles")

		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Proverbs, 1)
		assert.Equal(t, "p-3", resp.Proverbs[0].ID)
	})

	t.Run("empty catalog returns empty list", func(t *testing.T) {
		w := listProverbsReq(t, &memProverbRepo{}, "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"proverbs":[]`)
	})

	t.Run("repository failure returns endpoint message", func(t *testing.T) {
		w := listProverbsReq(t, &memProverbRepo{err: assert.AnError}, "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to fetch proverbs")
	})
}
