package domain

import "time"

// ItemType identifies the kind of item a favorite points at.
type ItemType string

const (
	// ItemTypeQuote marks a favorite that references a quote.
	ItemTypeQuote ItemType = "quote"

	// ItemTypeProverb marks a favorite that references a proverb.
	ItemTypeProverb ItemType = "proverb"
)

// Valid reports whether the item type is one of the known kinds.
func (t ItemType) Valid() bool {
	return t == ItemTypeQuote || t == ItemTypeProverb
}

// Favorite is a saved association between a user and a quote or proverb.
// At most one favorite exists per (user, item, type) tuple; the store
// enforces this with a unique constraint.
type Favorite struct {
	// ID is the unique identifier for this favorite.
	ID string

	// UserID is the owning profile.
	UserID string

	// ItemID references the favorited quote or proverb.
	ItemID string

	// ItemType says which catalog the item belongs to.
	ItemType ItemType

	// CreatedAt is when the favorite was saved.
	CreatedAt time.Time
}

// FavoriteEntry is a favorite joined to its referenced quote for display.
// Quote is nil when the referenced item is a proverb or has been removed.
type FavoriteEntry struct {
	Favorite

	Quote *Quote
}

// Like is a per-user like on a quote. Likes are toggled and surfaced to
// callers only as aggregated counts.
type Like struct {
	ID        string
	UserID    string
	QuoteID   string
	CreatedAt time.Time
}
