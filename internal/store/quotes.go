package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

// quoteRow is the database projection of a quote. Tags are stored as a
// JSON array in a TEXT column so the schema works on both drivers.
type quoteRow struct {
	ID          string    `db:"id"`
	Text        string    `db:"text"`
	Author      string    `db:"author"`
	Category    string    `db:"category"`
	Tags        string    `db:"tags"`
	Source      string    `db:"source"`
	SubmittedBy string    `db:"submitted_by"`
	Approved    bool      `db:"approved"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r *quoteRow) toDomain() (*domain.Quote, error) {
	var tags []string
	if r.Tags != "" {
		if err := json.Unmarshal([]byte(r.Tags), &tags); err != nil {
			return nil, fmt.Errorf("decoding tags for quote %s: %w", r.ID, err)
		}
	}

	return &domain.Quote{
		ID:          r.ID,
		Text:        r.Text,
		Author:      r.Author,
		Category:    r.Category,
		Tags:        tags,
		Source:      r.Source,
		SubmittedBy: r.SubmittedBy,
		Approved:    r.Approved,
		CreatedAt:   r.CreatedAt,
	}, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}

	encoded, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encoding tags: %w", err)
	}

	return string(encoded), nil
}

// QuoteRepository implements ports.QuoteRepository on sqlx.
type QuoteRepository struct {
	db *sqlx.DB
}

// Insert stores a new quote.
func (r *QuoteRepository) Insert(ctx context.Context, quote *domain.Quote) error {
	tags, err := encodeTags(quote.Tags)
	if err != nil {
		return err
	}

	query := `INSERT INTO quotes (id, text, author, category, tags, source, submitted_by, approved, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.db.ExecContext(ctx, query,
		quote.ID, quote.Text, quote.Author, quote.Category, tags,
		quote.Source, quote.SubmittedBy, quote.Approved, quote.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting quote: %w", err)
	}

	return nil
}

// ByID retrieves a quote by identifier.
func (r *QuoteRepository) ByID(ctx context.Context, id string) (*domain.Quote, error) {
	var row quoteRow

	err := r.db.GetContext(ctx, &row, `SELECT * FROM quotes WHERE id = $1`, id)
	if err != nil {
		return nil, notFoundOr(err, "quote", id)
	}

	return row.toDomain()
}

// quoteWhere builds the conjunctive WHERE clause for a filter.
// Substring predicates are case-insensitive.
func quoteWhere(filter ports.QuoteFilter) (string, []any) {
	clauses := make([]string, 0, 4)
	args := make([]any, 0, 4)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ApprovedOnly {
		clauses = append(clauses, "approved = TRUE")
	}

	if filter.Category != "" {
		clauses = append(clauses, "category = "+arg(filter.Category))
	}

	if filter.Author != "" {
		clauses = append(clauses, "lower(author) LIKE "+arg(contains(filter.Author)))
	}

	if filter.Search != "" {
		p := arg(contains(filter.Search))
		clauses = append(clauses, fmt.Sprintf("(lower(text) LIKE %s OR lower(author) LIKE %s)", p, p))
	}

	if len(clauses) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

// contains turns a term into a lowercased LIKE pattern.
func contains(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

// Search returns one page of matching quotes plus the exact total count.
// The count comes from a separate query with the same predicates.
func (r *QuoteRepository) Search(ctx context.Context, filter ports.QuoteFilter, page ports.Page) ([]domain.Quote, int, error) {
	where, args := quoteWhere(filter)

	var total int

	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM quotes"+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("counting quotes: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT * FROM quotes%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, page.Limit, page.Offset())

	var rows []quoteRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("selecting quotes: %w", err)
	}

	quotes, err := quotesToDomain(rows)
	if err != nil {
		return nil, 0, err
	}

	return quotes, total, nil
}

// Recent returns the n most recently created approved quotes.
func (r *QuoteRepository) Recent(ctx context.Context, n int) ([]domain.Quote, error) {
	var rows []quoteRow

	query := `SELECT * FROM quotes WHERE approved = TRUE ORDER BY created_at DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &rows, query, n); err != nil {
		return nil, fmt.Errorf("selecting recent quotes: %w", err)
	}

	return quotesToDomain(rows)
}

type rankedQuoteRow struct {
	quoteRow
	LikeCount int `db:"like_count"`
}

// RecentRanked returns the trending candidate window: the n most recent
// approved quotes in recency order, each carrying its like count.
func (r *QuoteRepository) RecentRanked(ctx context.Context, n int) ([]domain.RankedQuote, error) {
	query := `SELECT q.*, COUNT(l.id) AS like_count
	          FROM quotes q
	          LEFT JOIN quote_likes l ON l.quote_id = q.id
	          WHERE q.approved = TRUE
	          GROUP BY q.id
	          ORDER BY q.created_at DESC
	          LIMIT $1`

	var rows []rankedQuoteRow
	if err := r.db.SelectContext(ctx, &rows, query, n); err != nil {
		return nil, fmt.Errorf("selecting ranked quotes: %w", err)
	}

	ranked := make([]domain.RankedQuote, 0, len(rows))

	for i := range rows {
		quote, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}

		ranked = append(ranked, domain.RankedQuote{Quote: *quote, LikeCount: rows[i].LikeCount})
	}

	return ranked, nil
}

// Count returns the exact number of stored quotes.
func (r *QuoteRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM quotes`); err != nil {
		return 0, fmt.Errorf("counting quotes: %w", err)
	}

	return total, nil
}

// CountBySubmitter returns the number of quotes submitted by a user.
func (r *QuoteRepository) CountBySubmitter(ctx context.Context, userID string) (int, error) {
	var total int

	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM quotes WHERE submitted_by = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("counting submitted quotes: %w", err)
	}

	return total, nil
}

func quotesToDomain(rows []quoteRow) ([]domain.Quote, error) {
	quotes := make([]domain.Quote, 0, len(rows))

	for i := range rows {
		quote, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}

		quotes = append(quotes, *quote)
	}

	return quotes, nil
}
