package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/quotely/quotely-api/internal/domain"
)

// ContactRepository appends contact form submissions. Submissions are
// never read back through the API.
type ContactRepository struct {
	db *sqlx.DB
}

// Insert stores a contact submission.
func (r *ContactRepository) Insert(ctx context.Context, submission *domain.ContactSubmission) error {
	query := `INSERT INTO contact_submissions (id, name, email, subject, message, user_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		submission.ID, submission.Name, submission.Email, submission.Subject,
		submission.Message, submission.UserID, submission.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting contact submission: %w", err)
	}

	return nil
}

// NewsletterRepository appends newsletter subscriptions.
type NewsletterRepository struct {
	db *sqlx.DB
}

// Insert stores a subscriber. The unique email constraint turns repeat
// subscriptions into domain.ErrConflict, which the service treats as
// already-subscribed rather than a failure.
func (r *NewsletterRepository) Insert(ctx context.Context, subscriber *domain.NewsletterSubscriber) error {
	query := `INSERT INTO newsletter_subscribers (id, email, name, created_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query,
		subscriber.ID, subscriber.Email, subscriber.Name, subscriber.CreatedAt)
	if err != nil {
		return conflictOr(err, "subscriber", "already subscribed")
	}

	return nil
}
