package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotely/quotely-api/internal/adapters/http/dto"
	"github.com/quotely/quotely-api/internal/app"
	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

// ProverbHandler handles the read-only proverb catalog endpoint.
type ProverbHandler struct {
	service *app.ProverbService
}

// NewProverbHandler creates a new proverb handler.
func NewProverbHandler(service *app.ProverbService) *ProverbHandler {
	return &ProverbHandler{
		service: service,
	}
}

// ProverbResponse is the HTTP representation of a proverb.
type ProverbResponse struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	Origin      string `json:"origin"`
	Category    string `json:"category"`
	Meaning     string `json:"meaning,omitempty"`
	Translation string `json:"translation,omitempty"`
	Likes       int    `json:"likes"`
}

func toProverbResponse(p *domain.Proverb) *ProverbResponse {
	return &ProverbResponse{
		ID:          p.ID,
		Content:     p.Content,
		Origin:      p.Origin,
		Category:    p.Category,
		Meaning:     p.Meaning,
		Translation: p.Translation,
		Likes:       p.LikesCount,
	}
}

// proverbListQuery binds the proverb filter parameters.
type proverbListQuery struct {
	Category string `form:"category"`
	Origin   string `form:"origin"`
	Search   string `form:"search"`
}

// proverbListResponse is the proverb list envelope.
type proverbListResponse struct {
	Success  bool               `json:"success"`
	Proverbs []*ProverbResponse `json:"proverbs"`
}

// ListProverbs handles GET /api/proverbs.
// Returns proverbs ordered by popularity with optional filters.
func (h *ProverbHandler) ListProverbs(c *gin.Context) {
	var query proverbListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.RespondWithMessage(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	proverbs, err := h.service.List(c.Request.Context(), ports.ProverbFilter{
		Category: query.Category,
		Origin:   query.Origin,
		Search:   query.Search,
	})
	if err != nil {
		dto.HandleError(c, err, "Failed to fetch proverbs")
		return
	}

	out := make([]*ProverbResponse, 0, len(proverbs))
	for i := range proverbs {
		out = append(out, toProverbResponse(&proverbs[i]))
	}

	c.JSON(http.StatusOK, proverbListResponse{
		Success:  true,
		Proverbs: out,
	})
}

// RegisterProverbRoutes registers proverb routes on the given group.
func (h *ProverbHandler) RegisterProverbRoutes(rg *gin.RouterGroup) {
	rg.GET("/proverbs", h.ListProverbs)
}
