package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

type favoriteRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	ItemID    string    `db:"item_id"`
	ItemType  string    `db:"item_type"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *favoriteRow) toDomain() domain.Favorite {
	return domain.Favorite{
		ID:        r.ID,
		UserID:    r.UserID,
		ItemID:    r.ItemID,
		ItemType:  domain.ItemType(r.ItemType),
		CreatedAt: r.CreatedAt,
	}
}

// FavoriteRepository implements ports.FavoriteRepository on sqlx.
// The (user_id, item_id, item_type) unique constraint is the source of
// truth for favorite uniqueness: concurrent duplicate inserts lose the
// race here and surface as domain.ErrConflict.
type FavoriteRepository struct {
	db *sqlx.DB
}

// Insert stores a favorite.
func (r *FavoriteRepository) Insert(ctx context.Context, favorite *domain.Favorite) error {
	query := `INSERT INTO user_favorites (id, user_id, item_id, item_type, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		favorite.ID, favorite.UserID, favorite.ItemID, string(favorite.ItemType), favorite.CreatedAt)
	if err != nil {
		return conflictOr(err, "favorite", "already favorited")
	}

	return nil
}

// Delete removes a favorite by its triple.
func (r *FavoriteRepository) Delete(ctx context.Context, userID, itemID string, itemType domain.ItemType) (bool, error) {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND item_id = $2 AND item_type = $3`

	result, err := r.db.ExecContext(ctx, query, userID, itemID, string(itemType))
	if err != nil {
		return false, fmt.Errorf("deleting favorite: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting favorite: %w", err)
	}

	return affected > 0, nil
}

// Exists reports whether the user has favorited the item.
func (r *FavoriteRepository) Exists(ctx context.Context, userID, itemID string, itemType domain.ItemType) (bool, error) {
	query := `SELECT COUNT(*) FROM user_favorites WHERE user_id = $1 AND item_id = $2 AND item_type = $3`

	var count int
	if err := r.db.GetContext(ctx, &count, query, userID, itemID, string(itemType)); err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}

	return count > 0, nil
}

type favoriteEntryRow struct {
	favoriteRow

	QuoteID          sql.NullString `db:"quote_id"`
	QuoteText        sql.NullString `db:"quote_text"`
	QuoteAuthor      sql.NullString `db:"quote_author"`
	QuoteCategory    sql.NullString `db:"quote_category"`
	QuoteTags        sql.NullString `db:"quote_tags"`
	QuoteSource      sql.NullString `db:"quote_source"`
	QuoteSubmittedBy sql.NullString `db:"quote_submitted_by"`
	QuoteApproved    sql.NullBool   `db:"quote_approved"`
	QuoteCreatedAt   sql.NullTime   `db:"quote_created_at"`
}

// ListByUser returns one page of the user's favorites joined to their
// quotes, most recent first. The total is a separate exact count so a
// short last page never undercounts.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string, page ports.Page) ([]domain.FavoriteEntry, int, error) {
	var total int

	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM user_favorites WHERE user_id = $1`, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("counting favorites: %w", err)
	}

	query := `SELECT f.id, f.user_id, f.item_id, f.item_type, f.created_at,
	                 q.id AS quote_id, q.text AS quote_text, q.author AS quote_author,
	                 q.category AS quote_category, q.tags AS quote_tags, q.source AS quote_source,
	                 q.submitted_by AS quote_submitted_by, q.approved AS quote_approved,
	                 q.created_at AS quote_created_at
	          FROM user_favorites f
	          LEFT JOIN quotes q ON f.item_type = 'quote' AND q.id = f.item_id
	          WHERE f.user_id = $1
	          ORDER BY f.created_at DESC
	          LIMIT $2 OFFSET $3`

	var rows []favoriteEntryRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, page.Limit, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("selecting favorites: %w", err)
	}

	entries := make([]domain.FavoriteEntry, 0, len(rows))

	for i := range rows {
		entry := domain.FavoriteEntry{Favorite: rows[i].favoriteRow.toDomain()}

		if rows[i].QuoteID.Valid {
			quote, err := (&quoteRow{
				ID:          rows[i].QuoteID.String,
				Text:        rows[i].QuoteText.String,
				Author:      rows[i].QuoteAuthor.String,
				Category:    rows[i].QuoteCategory.String,
				Tags:        rows[i].QuoteTags.String,
				Source:      rows[i].QuoteSource.String,
				SubmittedBy: rows[i].QuoteSubmittedBy.String,
				Approved:    rows[i].QuoteApproved.Bool,
				CreatedAt:   rows[i].QuoteCreatedAt.Time,
			}).toDomain()
			if err != nil {
				return nil, 0, err
			}

			entry.Quote = quote
		}

		entries = append(entries, entry)
	}

	return entries, total, nil
}

// Count returns the exact number of favorites across all users.
func (r *FavoriteRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM user_favorites`); err != nil {
		return 0, fmt.Errorf("counting favorites: %w", err)
	}

	return total, nil
}

// CountByUser returns the exact number of favorites for one user.
func (r *FavoriteRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var total int

	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM user_favorites WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("counting user favorites: %w", err)
	}

	return total, nil
}
