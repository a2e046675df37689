package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/quotely/quotely-api/internal/domain"
)

type profileRow struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Username     string    `db:"username"`
	AvatarURL    string    `db:"avatar_url"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r *profileRow) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		Username:     r.Username,
		AvatarURL:    r.AvatarURL,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// ProfileRepository implements ports.ProfileRepository on sqlx.
type ProfileRepository struct {
	db *sqlx.DB
}

// Insert stores a new profile.
func (r *ProfileRepository) Insert(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO profiles (id, email, name, username, avatar_url, password_hash, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		profile.ID, profile.Email, profile.Name, profile.Username,
		profile.AvatarURL, profile.PasswordHash, profile.CreatedAt)
	if err != nil {
		return conflictOr(err, "profile", "email already registered")
	}

	return nil
}

// ByID retrieves a profile by identifier.
func (r *ProfileRepository) ByID(ctx context.Context, id string) (*domain.Profile, error) {
	var row profileRow

	err := r.db.GetContext(ctx, &row, `SELECT * FROM profiles WHERE id = $1`, id)
	if err != nil {
		return nil, notFoundOr(err, "profile", id)
	}

	return row.toDomain(), nil
}

// ByEmail retrieves a profile by email.
func (r *ProfileRepository) ByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	var row profileRow

	err := r.db.GetContext(ctx, &row, `SELECT * FROM profiles WHERE email = $1`, email)
	if err != nil {
		return nil, notFoundOr(err, "profile", email)
	}

	return row.toDomain(), nil
}

// Update applies the mutable profile fields and returns the stored
// profile. Identity and creation time are never touched.
func (r *ProfileRepository) Update(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.Profile, error) {
	query := `UPDATE profiles SET name = $1, username = $2, avatar_url = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, update.Name, update.Username, update.AvatarURL, id)
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	if affected == 0 {
		return nil, domain.NewNotFoundError("profile", id)
	}

	return r.ByID(ctx, id)
}

// Count returns the exact number of profiles.
func (r *ProfileRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM profiles`); err != nil {
		return 0, fmt.Errorf("counting profiles: %w", err)
	}

	return total, nil
}
