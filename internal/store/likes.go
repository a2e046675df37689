package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/quotely/quotely-api/internal/domain"
)

// LikeRepository implements ports.LikeRepository on sqlx.
// The (user_id, quote_id) unique constraint resolves concurrent toggle
// races; duplicate inserts surface as domain.ErrConflict.
type LikeRepository struct {
	db *sqlx.DB
}

// Insert stores a like.
func (r *LikeRepository) Insert(ctx context.Context, like *domain.Like) error {
	query := `INSERT INTO quote_likes (id, user_id, quote_id, created_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, like.ID, like.UserID, like.QuoteID, like.CreatedAt)
	if err != nil {
		return conflictOr(err, "like", "already liked")
	}

	return nil
}

// Delete removes the user's like on a quote.
func (r *LikeRepository) Delete(ctx context.Context, userID, quoteID string) (bool, error) {
	query := `DELETE FROM quote_likes WHERE user_id = $1 AND quote_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, quoteID)
	if err != nil {
		return false, fmt.Errorf("deleting like: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting like: %w", err)
	}

	return affected > 0, nil
}

// Count returns the exact number of likes across all quotes.
func (r *LikeRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM quote_likes`); err != nil {
		return 0, fmt.Errorf("counting likes: %w", err)
	}

	return total, nil
}

// CountByQuote returns the exact number of likes on one quote.
func (r *LikeRepository) CountByQuote(ctx context.Context, quoteID string) (int, error) {
	var total int

	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM quote_likes WHERE quote_id = $1`, quoteID)
	if err != nil {
		return 0, fmt.Errorf("counting quote likes: %w", err)
	}

	return total, nil
}
