package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

// QuoteService serves the public quote catalog and accepts submissions.
type QuoteService struct {
	quotes ports.QuoteRepository
	logger *slog.Logger
}

// QuoteServiceConfig contains dependencies for the quote service.
type QuoteServiceConfig struct {
	Quotes ports.QuoteRepository
	Logger *slog.Logger
}

// NewQuoteService creates a quote service.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		quotes: cfg.Quotes,
		logger: logger,
	}
}

// QuoteSearch carries the catalog query parameters.
type QuoteSearch struct {
	Category string
	Author   string
	Search   string
	Page     int
	Limit    int
}

// QuotePage is one page of catalog results with pagination totals.
type QuotePage struct {
	Quotes []domain.Quote
	Page   ports.Page
	Total  int
	Pages  int
}

// Search returns approved quotes matching the query, newest first.
func (s *QuoteService) Search(ctx context.Context, search QuoteSearch) (*QuotePage, error) {
	page := ports.NormalizePage(search.Page, search.Limit)

	filter := ports.QuoteFilter{
		Category:     search.Category,
		Author:       search.Author,
		Search:       search.Search,
		ApprovedOnly: true,
	}

	quotes, total, err := s.quotes.Search(ctx, filter, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search quotes", slog.Any("error", err))
		return nil, err
	}

	return &QuotePage{
		Quotes: quotes,
		Page:   page,
		Total:  total,
		Pages:  page.Pages(total),
	}, nil
}

// QuoteSubmission carries a new quote from a user.
type QuoteSubmission struct {
	Text        string
	Author      string
	Category    string
	Source      string
	Tags        []string
	SubmittedBy string
}

// Submit stores a new quote in the moderation queue. The approved flag
// is always forced to false here; clients cannot pre-approve their own
// submissions.
func (s *QuoteService) Submit(ctx context.Context, submission QuoteSubmission) (*domain.Quote, error) {
	switch {
	case submission.Text == "":
		return nil, domain.NewValidationError("text", "is required")
	case submission.Author == "":
		return nil, domain.NewValidationError("author", "is required")
	case submission.Category == "":
		return nil, domain.NewValidationError("category", "is required")
	case submission.SubmittedBy == "":
		return nil, domain.NewValidationError("userId", "is required")
	}

	quote := &domain.Quote{
		ID:          uuid.New().String(),
		Text:        submission.Text,
		Author:      submission.Author,
		Category:    submission.Category,
		Tags:        submission.Tags,
		Source:      submission.Source,
		SubmittedBy: submission.SubmittedBy,
		Approved:    false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.quotes.Insert(ctx, quote); err != nil {
		s.logger.ErrorContext(ctx, "failed to submit quote",
			slog.String("submitted_by", submission.SubmittedBy),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.logger.InfoContext(ctx, "quote submitted for review",
		slog.String("quote_id", quote.ID),
		slog.String("submitted_by", quote.SubmittedBy),
	)

	return quote, nil
}
