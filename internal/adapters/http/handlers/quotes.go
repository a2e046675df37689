package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quotely/quotely-api/internal/adapters/http/dto"
	"github.com/quotely/quotely-api/internal/app"
	"github.com/quotely/quotely-api/internal/domain"
)

// QuoteHandler handles the quote catalog endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// QuoteResponse is the HTTP representation of a quote.
type QuoteResponse struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags,omitempty"`
	Source      string    `json:"source,omitempty"`
	SubmittedBy string    `json:"submitted_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toQuoteResponse(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:          q.ID,
		Text:        q.Text,
		Author:      q.Author,
		Category:    q.Category,
		Tags:        q.Tags,
		Source:      q.Source,
		SubmittedBy: q.SubmittedBy,
		CreatedAt:   q.CreatedAt,
	}
}

func toQuoteResponses(quotes []domain.Quote) []*QuoteResponse {
	out := make([]*QuoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, toQuoteResponse(&quotes[i]))
	}

	return out
}

// quoteListQuery binds the catalog query parameters.
type quoteListQuery struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Category string `form:"category"`
	Author   string `form:"author"`
	Search   string `form:"search"`
}

// quoteListResponse is the paginated catalog envelope.
type quoteListResponse struct {
	Success    bool             `json:"success"`
	Quotes     []*QuoteResponse `json:"quotes"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// ListQuotes handles GET /api/quotes.
// Returns approved quotes, newest first, with optional category, author
// and full-text filters.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var query quoteListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.RespondWithMessage(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := h.service.Search(c.Request.Context(), app.QuoteSearch{
		Category: query.Category,
		Author:   query.Author,
		Search:   query.Search,
		Page:     query.Page,
		Limit:    query.Limit,
	})
	if err != nil {
		dto.HandleError(c, err, "Failed to fetch quotes")
		return
	}

	c.JSON(http.StatusOK, quoteListResponse{
		Success:    true,
		Quotes:     toQuoteResponses(page.Quotes),
		Total:      page.Total,
		Page:       page.Page.Number,
		TotalPages: page.Pages,
	})
}

// submitQuoteRequest is the body for quote submissions.
type submitQuoteRequest struct {
	Text     string   `json:"text"`
	Author   string   `json:"author"`
	Category string   `json:"category"`
	Source   string   `json:"source"`
	Tags     []string `json:"tags"`
	UserID   string   `json:"userId"`
}

// submitQuoteResponse acknowledges a submission.
type submitQuoteResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Quote   *QuoteResponse `json:"quote"`
}

// SubmitQuote handles POST /api/quotes/submit.
// Submitted quotes always enter the moderation queue unapproved.
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var req submitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	quote, err := h.service.Submit(c.Request.Context(), app.QuoteSubmission{
		Text:        req.Text,
		Author:      req.Author,
		Category:    req.Category,
		Source:      req.Source,
		Tags:        req.Tags,
		SubmittedBy: req.UserID,
	})
	if err != nil {
		dto.HandleError(c, err, "Failed to submit quote")
		return
	}

	c.JSON(http.StatusCreated, submitQuoteResponse{
		Success: true,
		Message: "Quote submitted for review",
		Quote:   toQuoteResponse(quote),
	})
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.POST("/submit", h.SubmitQuote)
}
