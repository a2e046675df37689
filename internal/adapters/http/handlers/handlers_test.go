package handlers

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/quotely/quotely-api/internal/domain"
	"github.com/quotely/quotely-api/internal/ports"
)

// newTestRouter returns an engine and an /api group with the given user
// pre-authenticated, mirroring what the auth middleware does.
func newTestRouter(userID string) (*gin.Engine, *gin.RouterGroup) {
	engine := gin.New()
	api := engine.Group("/api")

	if userID != "" {
		api.Use(func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Next()
		})
	}

	return engine, api
}

// memQuoteRepo is an in-memory quote repository for handler tests.
type memQuoteRepo struct {
	mu     sync.Mutex
	quotes []domain.Quote
	likes  map[string]int
	err    error
}

func newMemQuoteRepo(quotes ...domain.Quote) *memQuoteRepo {
	return &memQuoteRepo{quotes: quotes, likes: map[string]int{}}
}

func (r *memQuoteRepo) Insert(_ context.Context, quote *domain.Quote) error {
	if r.err != nil {
		return r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes = append([]domain.Quote{*quote}, r.quotes...)

	return nil
}

func (r *memQuoteRepo) ByID(_ context.Context, id string) (*domain.Quote, error) {
	if r.err != nil {
		return nil, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.quotes {
		if r.quotes[i].ID == id {
			q := r.quotes[i]
			return &q, nil
		}
	}

	return nil, domain.NewNotFoundError("quote", id)
}

func (r *memQuoteRepo) Search(_ context.Context, filter ports.QuoteFilter, page ports.Page) ([]domain.Quote, int, error) {
	if r.err != nil {
		return nil, 0, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]domain.Quote, 0, len(r.quotes))
	for _, q := range r.quotes {
		if filter.ApprovedOnly && !q.Approved {
			continue
		}

		if filter.Category != "" && q.Category != filter.Category {
			continue
		}

		if filter.Author != "" && !strings.Contains(strings.ToLower(q.Author), strings.ToLower(filter.Author)) {
			continue
		}

		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(q.Text), needle) &&
				!strings.Contains(strings.ToLower(q.Author), needle) {
				continue
			}
		}

		matched = append(matched, q)
	}

	total := len(matched)

	start := page.Offset()
	if start > total {
		start = total
	}

	end := start + page.Limit
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (r *memQuoteRepo) Recent(_ context.Context, n int) ([]domain.Quote, error) {
	if r.err != nil {
		return nil, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Quote, 0, n)
	for _, q := range r.quotes {
		if !q.Approved {
			continue
		}

		out = append(out, q)
		if len(out) == n {
			break
		}
	}

	return out, nil
}

func (r *memQuoteRepo) RecentRanked(ctx context.Context, n int) ([]domain.RankedQuote, error) {
	recent, err := r.Recent(ctx, n)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ranked := make([]domain.RankedQuote, 0, len(recent))
	for _, q := range recent {
		ranked = append(ranked, domain.RankedQuote{Quote: q, LikeCount: r.likes[q.ID]})
	}

	return ranked, nil
}

func (r *memQuoteRepo) Count(_ context.Context) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.quotes), nil
}

func (r *memQuoteRepo) CountBySubmitter(_ context.Context, userID string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, q := range r.quotes {
		if q.SubmittedBy == userID {
			count++
		}
	}

	return count, nil
}

var _ ports.QuoteRepository = (*memQuoteRepo)(nil)

type favoriteKey struct {
	userID   string
	itemID   string
	itemType domain.ItemType
}

// memFavoriteRepo is an in-memory favorite repository for handler tests.
type memFavoriteRepo struct {
	mu        sync.Mutex
	favorites map[favoriteKey]domain.Favorite
	quotes    map[string]domain.Quote
	err       error
}

func newMemFavoriteRepo() *memFavoriteRepo {
	return &memFavoriteRepo{
		favorites: map[favoriteKey]domain.Favorite{},
		quotes:    map[string]domain.Quote{},
	}
}

func (r *memFavoriteRepo) Insert(_ context.Context, favorite *domain.Favorite) error {
	if r.err != nil {
		return r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := favoriteKey{favorite.UserID, favorite.ItemID, favorite.ItemType}
	if _, ok := r.favorites[key]; ok {
		return domain.NewConflictError("favorite", "already favorited")
	}

	r.favorites[key] = *favorite

	return nil
}

func (r *memFavoriteRepo) Delete(_ context.Context, userID, itemID string, itemType domain.ItemType) (bool, error) {
	if r.err != nil {
		return false, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := favoriteKey{userID, itemID, itemType}
	if _, ok := r.favorites[key]; !ok {
		return false, nil
	}

	delete(r.favorites, key)

	return true, nil
}

func (r *memFavoriteRepo) Exists(_ context.Context, userID, itemID string, itemType domain.ItemType) (bool, error) {
	if r.err != nil {
		return false, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.favorites[favoriteKey{userID, itemID, itemType}]

	return ok, nil
}

func (r *memFavoriteRepo) ListByUser(_ context.Context, userID string, page ports.Page) ([]domain.FavoriteEntry, int, error) {
	if r.err != nil {
		return nil, 0, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]domain.FavoriteEntry, 0, len(r.favorites))
	for _, f := range r.favorites {
		if f.UserID != userID {
			continue
		}

		entry := domain.FavoriteEntry{Favorite: f}
		if q, ok := r.quotes[f.ItemID]; ok && f.ItemType == domain.ItemTypeQuote {
			quote := q
			entry.Quote = &quote
		}

		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	total := len(entries)

	start := page.Offset()
	if start > total {
		start = total
	}

	end := start + page.Limit
	if end > total {
		end = total
	}

	return entries[start:end], total, nil
}

func (r *memFavoriteRepo) Count(_ context.Context) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.favorites), nil
}

func (r *memFavoriteRepo) CountByUser(_ context.Context, userID string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for key := range r.favorites {
		if key.userID == userID {
			count++
		}
	}

	return count, nil
}

var _ ports.FavoriteRepository = (*memFavoriteRepo)(nil)

type likeKey struct {
	userID  string
	quoteID string
}

// memLikeRepo is an in-memory like repository for handler tests.
type memLikeRepo struct {
	mu    sync.Mutex
	likes map[likeKey]domain.Like
	err   error
}

func newMemLikeRepo() *memLikeRepo {
	return &memLikeRepo{likes: map[likeKey]domain.Like{}}
}

func (r *memLikeRepo) Insert(_ context.Context, like *domain.Like) error {
	if r.err != nil {
		return r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := likeKey{like.UserID, like.QuoteID}
	if _, ok := r.likes[key]; ok {
		return domain.NewConflictError("like", "already liked")
	}

	r.likes[key] = *like

	return nil
}

func (r *memLikeRepo) Delete(_ context.Context, userID, quoteID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := likeKey{userID, quoteID}
	if _, ok := r.likes[key]; !ok {
		return false, nil
	}

	delete(r.likes, key)

	return true, nil
}

func (r *memLikeRepo) Count(_ context.Context) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.likes), nil
}

func (r *memLikeRepo) CountByQuote(_ context.Context, quoteID string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for key := range r.likes {
		if key.quoteID == quoteID {
			count++
		}
	}

	return count, nil
}

var _ ports.LikeRepository = (*memLikeRepo)(nil)

// memProfileRepo is an in-memory profile repository for handler tests.
type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]domain.Profile
	err      error
}

func newMemProfileRepo(profiles ...domain.Profile) *memProfileRepo {
	r := &memProfileRepo{profiles: map[string]domain.Profile{}}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}

	return r
}

func (r *memProfileRepo) Insert(_ context.Context, profile *domain.Profile) error {
	if r.err != nil {
		return r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.profiles {
		if p.Email == profile.Email {
			return domain.NewConflictError("profile", "Email already registered")
		}
	}

	r.profiles[profile.ID] = *profile

	return nil
}

func (r *memProfileRepo) ByID(_ context.Context, id string) (*domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.NewNotFoundError("profile", id)
	}

	return &p, nil
}

func (r *memProfileRepo) ByEmail(_ context.Context, email string) (*domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.profiles {
		if p.Email == email {
			profile := p
			return &profile, nil
		}
	}

	return nil, domain.NewNotFoundError("profile", "")
}

func (r *memProfileRepo) Update(_ context.Context, id string, update domain.ProfileUpdate) (*domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.NewNotFoundError("profile", id)
	}

	p.Name = update.Name
	p.Username = update.Username
	p.AvatarURL = update.AvatarURL
	r.profiles[id] = p

	return &p, nil
}

func (r *memProfileRepo) Count(_ context.Context) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.profiles), nil
}

var _ ports.ProfileRepository = (*memProfileRepo)(nil)

// memProverbRepo is an in-memory proverb repository for handler tests.
type memProverbRepo struct {
	proverbs []domain.Proverb
	err      error
}

func (r *memProverbRepo) List(_ context.Context, filter ports.ProverbFilter) ([]domain.Proverb, error) {
	if r.err != nil {
		return nil, r.err
	}

	out := make([]domain.Proverb, 0, len(r.proverbs))
	for _, p := range r.proverbs {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}

		if filter.Origin != "" && p.Origin != filter.Origin {
			continue
		}

		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Content), needle) &&
				!strings.Contains(strings.ToLower(p.Origin), needle) {
				continue
			}
		}

		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LikesCount > out[j].LikesCount
	})

	return out, nil
}

var _ ports.ProverbRepository = (*memProverbRepo)(nil)

// memContactRepo records contact submissions for handler tests.
type memContactRepo struct {
	mu          sync.Mutex
	submissions []domain.ContactSubmission
	err         error
}

func (r *memContactRepo) Insert(_ context.Context, submission *domain.ContactSubmission) error {
	if r.err != nil {
		return r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, *submission)

	return nil
}

var _ ports.ContactRepository = (*memContactRepo)(nil)

// memNewsletterRepo records newsletter signups for handler tests.
type memNewsletterRepo struct {
	mu          sync.Mutex
	subscribers map[string]domain.NewsletterSubscriber
	err         error
}

func newMemNewsletterRepo() *memNewsletterRepo {
	return &memNewsletterRepo{subscribers: map[string]domain.NewsletterSubscriber{}}
}

func (r *memNewsletterRepo) Insert(_ context.Context, subscriber *domain.NewsletterSubscriber) error {
	if r.err != nil {
		return r.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subscribers[subscriber.Email]; ok {
		return domain.NewConflictError("subscriber", "already subscribed")
	}

	r.subscribers[subscriber.Email] = *subscriber

	return nil
}

var _ ports.NewsletterRepository = (*memNewsletterRepo)(nil)

// stubTokenIssuer issues a fixed token for any user.
type stubTokenIssuer struct {
	token string
	err   error
}

func (s *stubTokenIssuer) Issue(string) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	return s.token, nil
}

func (s *stubTokenIssuer) Verify(string) (string, error) {
	return "", domain.NewUnauthorizedError("Invalid or expired token")
}

var _ ports.TokenIssuer = (*stubTokenIssuer)(nil)
