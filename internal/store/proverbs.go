package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

type proverbRow struct {
	ID          string `db:"id"`
	Content     string `db:"content"`
	Origin      string `db:"origin"`
	Category    string `db:"category"`
	Meaning     string `db:"meaning"`
	Translation string `db:"translation"`
	LikesCount  int    `db:"likes_count"`
}

// ProverbRepository implements ports.ProverbRepository on sqlx.
type ProverbRepository struct {
	db *sqlx.DB
}

// List returns proverbs matching the filter ordered by likes count
// descending.
func (r *ProverbRepository) List(ctx context.Context, filter ports.ProverbFilter) ([]domain.Proverb, error) {
	clauses := make([]string, 0, 3)
	args := make([]any, 0, 3)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Category != "" {
		clauses = append(clauses, "category = "+arg(filter.Category))
	}

	if filter.Origin != "" {
		clauses = append(clauses, "origin = "+arg(filter.Origin))
	}

	if filter.Search != "" {
		p := arg(contains(filter.Search))
		clauses = append(clauses, fmt.Sprintf("(lower(content) LIKE %s OR lower(origin) LIKE %s)", p, p))
	}

	query := "SELECT * FROM proverbs"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY likes_count DESC"

	var rows []proverbRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("selecting proverbs: %w", err)
	}

	proverbs := make([]domain.Proverb, 0, len(rows))
	for _, row := range rows {
		proverbs = append(proverbs, domain.Proverb{
			ID:          row.ID,
			Content:     row.Content,
			Origin:      row.Origin,
			Category:    row.Category,
			Meaning:     row.Meaning,
			Translation: row.Translation,
			LikesCount:  row.LikesCount,
		})
	}

	return proverbs, nil
}
