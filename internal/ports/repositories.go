// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/quotely/quotely-api/internal/domain"
)

// DefaultPageLimit is the page size applied when a request omits the limit.
const DefaultPageLimit = 20

// MaxPageLimit caps the page size regardless of what the request asks for.
const MaxPageLimit = 100

// Page is an offset-based pagination window. Pages are 1-indexed: page p
// with limit L selects the half-open row range [(p-1)*L, p*L).
type Page struct {
	Number int
	Limit  int
}

// NormalizePage applies defaults and bounds to raw pagination input.
// Values below 1 fall back to page 1 and the default limit; the limit is
// capped at MaxPageLimit.
func NormalizePage(number, limit int) Page {
	if number < 1 {
		number = 1
	}

	if limit < 1 {
		limit = DefaultPageLimit
	}

	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return Page{Number: number, Limit: limit}
}

// Offset returns the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Pages returns the total page count for a result set of the given size.
func (p Page) Pages(total int) int {
	if total <= 0 {
		return 0
	}

	return (total + p.Limit - 1) / p.Limit
}

// QuoteFilter narrows quote catalog reads. All predicates are conjunctive.
// Zero values mean "no constraint".
type QuoteFilter struct {
	// Category matches exactly.
	Category string

	// Author matches as a case-insensitive substring.
	Author string

	// Search matches as a case-insensitive substring of text or author.
	Search string

	// ApprovedOnly restricts to moderated quotes. Public read paths
	// always set this.
	ApprovedOnly bool
}

// ProverbFilter narrows proverb catalog reads.
type ProverbFilter struct {
	// Category matches exactly.
	Category string

	// Origin matches exactly.
	Origin string

	// Search matches as a case-insensitive substring of content or origin.
	Search string
}

// QuoteRepository persists and reads quotes.
type QuoteRepository interface {
	// Insert stores a new quote.
	Insert(ctx context.Context, quote *domain.Quote) error

	// ByID retrieves a quote by its identifier.
	// Returns domain.ErrNotFound if the quote does not exist.
	ByID(ctx context.Context, id string) (*domain.Quote, error)

	// Search returns one page of quotes matching the filter ordered by
	// creation time descending, plus the exact total match count. The
	// total comes from a separate count query so short pages never
	// undercount.
	Search(ctx context.Context, filter QuoteFilter, page Page) ([]domain.Quote, int, error)

	// Recent returns the n most recently created approved quotes.
	Recent(ctx context.Context, n int) ([]domain.Quote, error)

	// RecentRanked returns the n most recently created approved quotes
	// with their derived like counts, still in recency order. Quotes with
	// no likes carry a zero count.
	RecentRanked(ctx context.Context, n int) ([]domain.RankedQuote, error)

	// Count returns the exact number of stored quotes.
	Count(ctx context.Context) (int, error)

	// CountBySubmitter returns the number of quotes submitted by a user.
	CountBySubmitter(ctx context.Context, userID string) (int, error)
}

// ProverbRepository reads the proverb catalog. Proverbs have no write path.
type ProverbRepository interface {
	// List returns proverbs matching the filter ordered by likes count
	// descending.
	List(ctx context.Context, filter ProverbFilter) ([]domain.Proverb, error)
}

// FavoriteRepository persists user favorites.
type FavoriteRepository interface {
	// Insert stores a favorite. Returns domain.ErrConflict when the
	// (user, item, type) tuple is already favorited.
	Insert(ctx context.Context, favorite *domain.Favorite) error

	// Delete removes a favorite by its triple. Reports whether a row was
	// actually deleted; deleting an absent favorite is not an error.
	Delete(ctx context.Context, userID, itemID string, itemType domain.ItemType) (bool, error)

	// Exists reports whether the user has favorited the item.
	Exists(ctx context.Context, userID, itemID string, itemType domain.ItemType) (bool, error)

	// ListByUser returns one page of the user's favorites joined to their
	// quotes, most recent first, plus the exact total favorite count.
	ListByUser(ctx context.Context, userID string, page Page) ([]domain.FavoriteEntry, int, error)

	// Count returns the exact number of favorites across all users.
	Count(ctx context.Context) (int, error)

	// CountByUser returns the exact number of favorites for one user.
	CountByUser(ctx context.Context, userID string) (int, error)
}

// LikeRepository persists quote likes.
type LikeRepository interface {
	// Insert stores a like. Returns domain.ErrConflict when the user has
	// already liked the quote.
	Insert(ctx context.Context, like *domain.Like) error

	// Delete removes the user's like on a quote. Reports whether a row
	// was actually deleted.
	Delete(ctx context.Context, userID, quoteID string) (bool, error)

	// Count returns the exact number of likes across all quotes.
	Count(ctx context.Context) (int, error)

	// CountByQuote returns the exact number of likes on one quote.
	CountByQuote(ctx context.Context, quoteID string) (int, error)
}

// ProfileRepository persists user profiles.
type ProfileRepository interface {
	// Insert stores a new profile. Returns domain.ErrConflict when the
	// email is already registered.
	Insert(ctx context.Context, profile *domain.Profile) error

	// ByID retrieves a profile by identifier.
	// Returns domain.ErrNotFound if the profile does not exist.
	ByID(ctx context.Context, id string) (*domain.Profile, error)

	// ByEmail retrieves a profile by email.
	// Returns domain.ErrNotFound if the profile does not exist.
	ByEmail(ctx context.Context, email string) (*domain.Profile, error)

	// Update applies the mutable profile fields and returns the stored
	// profile. Returns domain.ErrNotFound if the profile does not exist.
	Update(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.Profile, error)

	// Count returns the exact number of profiles.
	Count(ctx context.Context) (int, error)
}

// ContactRepository appends contact form submissions.
type ContactRepository interface {
	Insert(ctx context.Context, submission *domain.ContactSubmission) error
}

// NewsletterRepository appends newsletter subscriptions.
type NewsletterRepository interface {
	// Insert stores a subscriber. Returns domain.ErrConflict when the
	// email is already subscribed.
	Insert(ctx context.Context, subscriber *domain.NewsletterSubscriber) error
}

// TokenIssuer signs and verifies the API's bearer tokens.
type TokenIssuer interface {
	// Issue creates a signed token for the given user.
	Issue(userID string) (string, error)

	// Verify validates a token and returns the user it was issued for.
	// Returns domain.ErrUnauthorized for expired or malformed tokens.
	Verify(token string) (string, error)
}
