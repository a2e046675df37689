package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotely/quotely-api/internal/domain"
)

func newNewsletterServiceWith(repo *newsletterRepoStub) *NewsletterService {
	return NewNewsletterService(NewsletterServiceConfig{
		Subscribers: repo,
		Logger:      discardLogger(),
	})
}

func TestNewsletterSubscribe(t *testing.T) {
	t.Run("stores a new subscriber", func(t *testing.T) {
		var stored *domain.NewsletterSubscriber

		repo := &newsletterRepoStub{
			insert: func(_ context.Context, subscriber *domain.NewsletterSubscriber) error {
				stored = subscriber
				return nil
			},
		}

		result, err := newNewsletterServiceWith(repo).Subscribe(t.Context(), "ada@example.com", "Ada")
		require.NoError(t, err)

		assert.True(t, result.Created)
		require.NotNil(t, stored)
		assert.Equal(t, "ada@example.com", stored.Email)
		assert.Equal(t, "Ada", stored.Name)
	})

	t.Run("normalizes the email", func(t *testing.T) {
		var stored *domain.NewsletterSubscriber

		repo := &newsletterRepoStub{
			insert: func(_ context.Context, subscriber *domain.NewsletterSubscriber) error {
				stored = subscriber
				return nil
			},
		}

		_, err := newNewsletterServiceWith(repo).Subscribe(t.Context(), " Ada@Example.COM ", "")
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", stored.Email)
	})

	t.Run("strips a display name from the email", func(t *testing.T) {
		var stored *domain.NewsletterSubscriber

		repo := &newsletterRepoStub{
			insert: func(_ context.Context, subscriber *domain.NewsletterSubscriber) error {
				stored = subscriber
				return nil
			},
		}

		_, err := newNewsletterServiceWith(repo).Subscribe(t.Context(), "ada lovelace <ada@example.com>", "Ada")
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", stored.Email)
	})

	t.Run("duplicate subscription is a non-created success", func(t *testing.T) {
		repo := &newsletterRepoStub{
			insert: func(context.Context, *domain.NewsletterSubscriber) error {
				return domain.NewConflictError("subscriber", "already subscribed")
			},
		}

		result, err := newNewsletterServiceWith(repo).Subscribe(t.Context(), "ada@example.com", "")
		require.NoError(t, err)
		assert.False(t, result.Created)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		service := newNewsletterServiceWith(&newsletterRepoStub{})

		_, err := service.Subscribe(t.Context(), "", "")
		assert.True(t, domain.IsValidation(err))

		_, err = service.Subscribe(t.Context(), "not-an-email", "")
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		repo := &newsletterRepoStub{
			insert: func(context.Context, *domain.NewsletterSubscriber) error {
				return assert.AnError
			},
		}

		_, err := newNewsletterServiceWith(repo).Subscribe(t.Context(), "ada@example.com", "")
		assert.ErrorIs(t, err, assert.AnError)
	})
}
