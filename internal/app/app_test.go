package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

// The repository stubs below are function-backed: tests set only the
// methods a case exercises and everything else returns zero values.

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type quoteRepoStub struct {
	insert           func(ctx context.Context, quote *domain.Quote) error
	byID             func(ctx context.Context, id string) (*domain.Quote, error)
	search           func(ctx context.Context, filter ports.QuoteFilter, page ports.Page) ([]domain.Quote, int, error)
	recent           func(ctx context.Context, n int) ([]domain.Quote, error)
	recentRanked     func(ctx context.Context, n int) ([]domain.RankedQuote, error)
	count            func(ctx context.Context) (int, error)
	countBySubmitter func(ctx context.Context, userID string) (int, error)
}

func (s *quoteRepoStub) Insert(ctx context.Context, quote *domain.Quote) error {
	if s.insert == nil {
		return nil
	}

	return s.insert(ctx, quote)
}

func (s *quoteRepoStub) ByID(ctx context.Context, id string) (*domain.Quote, error) {
	if s.byID == nil {
		return nil, domain.NewNotFoundError("quote", id)
	}

	return s.byID(ctx, id)
}

func (s *quoteRepoStub) Search(ctx context.Context, filter ports.QuoteFilter, page ports.Page) ([]domain.Quote, int, error) {
	if s.search == nil {
		return nil, 0, nil
	}

	return s.search(ctx, filter, page)
}

func (s *quoteRepoStub) Recent(ctx context.Context, n int) ([]domain.Quote, error) {
	if s.recent == nil {
		return nil, nil
	}

	return s.recent(ctx, n)
}

func (s *quoteRepoStub) RecentRanked(ctx context.Context, n int) ([]domain.RankedQuote, error) {
	if s.recentRanked == nil {
		return nil, nil
	}

	return s.recentRanked(ctx, n)
}

func (s *quoteRepoStub) Count(ctx context.Context) (int, error) {
	if s.count == nil {
		return 0, nil
	}

	return s.count(ctx)
}

func (s *quoteRepoStub) CountBySubmitter(ctx context.Context, userID string) (int, error) {
	if s.countBySubmitter == nil {
		return 0, nil
	}

	return s.countBySubmitter(ctx, userID)
}

var _ ports.QuoteRepository = (*quoteRepoStub)(nil)

type favoriteRepoStub struct {
	insert      func(ctx context.Context, favorite *domain.Favorite) error
	delete      func(ctx context.Context, userID, itemID string, itemType domain.ItemType) (bool, error)
	exists      func(ctx context.Context, userID, itemID string, itemType domain.ItemType) (bool, error)
	listByUser  func(ctx context.Context, userID string, page ports.Page) ([]domain.FavoriteEntry, int, error)
	count       func(ctx context.Context) (int, error)
	countByUser func(ctx context.Context, userID string) (int, error)
}

func (s *favoriteRepoStub) Insert(ctx context.Context, favorite *domain.Favorite) error {
	if s.insert == nil {
		return nil
	}

	return s.insert(ctx, favorite)
}

func (s *favoriteRepoStub) Delete(ctx context.Context, userID, itemID string, itemType domain.ItemType) (bool, error) {
	if s.delete == nil {
		return false, nil
	}

	return s.delete(ctx, userID, itemID, itemType)
}

func (s *favoriteRepoStub) Exists(ctx context.Context, userID, itemID string, itemType domain.ItemType) (bool, error) {
	if s.exists == nil {
		return false, nil
	}

	return s.exists(ctx, userID, itemID, itemType)
}

func (s *favoriteRepoStub) ListByUser(ctx context.Context, userID string, page ports.Page) ([]domain.FavoriteEntry, int, error) {
	if s.listByUser == nil {
		return nil, 0, nil
	}

	return s.listByUser(ctx, userID, page)
}

func (s *favoriteRepoStub) Count(ctx context.Context) (int, error) {
	if s.count == nil {
		return 0, nil
	}

	return s.count(ctx)
}

func (s *favoriteRepoStub) CountByUser(ctx context.Context, userID string) (int, error) {
	if s.countByUser == nil {
		return 0, nil
	}

	return s.countByUser(ctx, userID)
}

var _ ports.FavoriteRepository = (*favoriteRepoStub)(nil)

type likeRepoStub struct {
	insert       func(ctx context.Context, like *domain.Like) error
	delete       func(ctx context.Context, userID, quoteID string) (bool, error)
	count        func(ctx context.Context) (int, error)
	countByQuote func(ctx context.Context, quoteID string) (int, error)
}

func (s *likeRepoStub) Insert(ctx context.Context, like *domain.Like) error {
	if s.insert == nil {
		return nil
	}

	return s.insert(ctx, like)
}

func (s *likeRepoStub) Delete(ctx context.Context, userID, quoteID string) (bool, error) {
	if s.delete == nil {
		return false, nil
	}

	return s.delete(ctx, userID, quoteID)
}

func (s *likeRepoStub) Count(ctx context.Context) (int, error) {
	if s.count == nil {
		return 0, nil
	}

	return s.count(ctx)
}

func (s *likeRepoStub) CountByQuote(ctx context.Context, quoteID string) (int, error) {
	if s.countByQuote == nil {
		return 0, nil
	}

	return s.countByQuote(ctx, quoteID)
}

var _ ports.LikeRepository = (*likeRepoStub)(nil)

type profileRepoStub struct {
	insert  func(ctx context.Context, profile *domain.Profile) error
	byID    func(ctx context.Context, id string) (*domain.Profile, error)
	byEmail func(ctx context.Context, email string) (*domain.Profile, error)
	update  func(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.Profile, error)
	count   func(ctx context.Context) (int, error)
}

func (s *profileRepoStub) Insert(ctx context.Context, profile *domain.Profile) error {
	if s.insert == nil {
		return nil
	}

	return s.insert(ctx, profile)
}

func (s *profileRepoStub) ByID(ctx context.Context, id string) (*domain.Profile, error) {
	if s.byID == nil {
		return nil, domain.NewNotFoundError("profile", id)
	}

	return s.byID(ctx, id)
}

func (s *profileRepoStub) ByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	if s.byEmail == nil {
		return nil, domain.NewNotFoundError("profile", "")
	}

	return s.byEmail(ctx, email)
}

func (s *profileRepoStub) Update(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.Profile, error) {
	if s.update == nil {
		return nil, domain.NewNotFoundError("profile", id)
	}

	return s.update(ctx, id, update)
}

func (s *profileRepoStub) Count(ctx context.Context) (int, error) {
	if s.count == nil {
		return 0, nil
	}

	return s.count(ctx)
}

var _ ports.ProfileRepository = (*profileRepoStub)(nil)

type proverbRepoStub struct {
	list func(ctx context.Context, filter ports.ProverbFilter) ([]domain.Proverb, error)
}

func (s *proverbRepoStub) List(ctx context.Context, filter ports.ProverbFilter) ([]domain.Proverb, error) {
	if s.list == nil {
		return nil, nil
	}

	return s.list(ctx, filter)
}

var _ ports.ProverbRepository = (*proverbRepoStub)(nil)

type contactRepoStub struct {
	insert func(ctx context.Context, submission *domain.ContactSubmission) error
}

func (s *contactRepoStub) Insert(ctx context.Context, submission *domain.ContactSubmission) error {
	if s.insert == nil {
		return nil
	}

	return s.insert(ctx, submission)
}

var _ ports.ContactRepository = (*contactRepoStub)(nil)

type newsletterRepoStub struct {
	insert func(ctx context.Context, subscriber *domain.NewsletterSubscriber) error
}

func (s *newsletterRepoStub) Insert(ctx context.Context, subscriber *domain.NewsletterSubscriber) error {
	if s.insert == nil {
		return nil
	}

	return s.insert(ctx, subscriber)
}

var _ ports.NewsletterRepository = (*newsletterRepoStub)(nil)

type tokenIssuerStub struct {
	issue  func(userID string) (string, error)
	verify func(token string) (string, error)
}

func (s *tokenIssuerStub) Issue(userID string) (string, error) {
	if s.issue == nil {
		return "token-" + userID, nil
	}

	return s.issue(userID)
}

func (s *tokenIssuerStub) Verify(token string) (string, error) {
	if s.verify == nil {
		return "", domain.NewUnauthorizedError("Invalid or expired token")
	}

	return s.verify(token)
}

var _ ports.TokenIssuer = (*tokenIssuerStub)(nil)
