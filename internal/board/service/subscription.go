package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/guildnet/board/internal/board/domain"
	"github.com/guildnet/board/internal/board/store"
	"github.com/guildnet/board/pkg/idx"
	"github.com/guildnet/board/pkg/slogx"
)

var ErrForbidden = errors.New("forbidden")

// SubscriptionService manages the per-profile category subscriptions and the
// new-post fan-out they drive. At most one subscription row exists per
// (profile, category) pair; unsubscribing keeps the row with subscribed
// flipped off.
type SubscriptionService struct {
	Store   store.Store
	Confirm *ConfirmationService
}

// Subscribe subscribes the profile to the category. Subscribing is
// idempotent: repeat calls leave the single row untouched and enqueue no
// second notification.
func (s *SubscriptionService) Subscribe(ctx context.Context, profileID, categoryID string) (domain.Subscription, error) {
	profile, err := s.Confirm.RequireConfirmed(ctx, profileID)
	if err != nil {
		return domain.Subscription{}, err
	}

	category, err := s.Store.Categories().GetCategoryByID(ctx, categoryID)
	if err != nil {
		return domain.Subscription{}, fmt.Errorf("failed to get category: %w", err)
	}
	if !category.IsActive {
		return domain.Subscription{}, store.ErrNotFound
	}

	now := time.Now().UTC()
	sub := domain.Subscription{
		ID:         idx.New().String(),
		ProfileID:  profileID,
		CategoryID: categoryID,
		Subscribed: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		changed, err := tx.Subscriptions().UpsertSubscribed(ctx, sub)
		if err != nil {
			return fmt.Errorf("failed to upsert subscription: %w", err)
		}
		if !changed {
			// Already subscribed, nothing to announce.
			return nil
		}
		return tx.Outbox().Enqueue(ctx, newNotification(
			domain.TemplateSubscribed,
			[]string{profile.Email},
			map[string]string{
				"display_name": profile.DisplayName,
				"category":     category.Name,
			},
		))
	})
	if err != nil {
		return domain.Subscription{}, err
	}

	// The upsert may have revived a pre-existing row with a different id.
	return s.Store.Subscriptions().GetByProfileAndCategory(ctx, profileID, categoryID)
}

// Unsubscribe flips the profile's own subscription row off. Unsubscribing an
// already-unsubscribed row is a no-op and enqueues nothing.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, profileID, subscriptionID string) error {
	sub, err := s.Store.Subscriptions().GetSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub.ProfileID != profileID {
		return ErrForbidden
	}

	profile, err := s.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	category, err := s.Store.Categories().GetCategoryByID(ctx, sub.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		changed, err := tx.Subscriptions().SetUnsubscribed(ctx, subscriptionID)
		if err != nil {
			return fmt.Errorf("failed to unsubscribe: %w", err)
		}
		if !changed {
			return nil
		}
		return tx.Outbox().Enqueue(ctx, newNotification(
			domain.TemplateUnsubscribed,
			[]string{profile.Email},
			map[string]string{
				"display_name": profile.DisplayName,
				"category":     category.Name,
			},
		))
	})
}

// ListSubscriptions returns all subscription rows for the profile, including
// unsubscribed ones.
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, profileID string) ([]domain.Subscription, error) {
	return s.Store.Subscriptions().ListByProfile(ctx, profileID)
}

// fanOutNewPost enqueues one new-post notification per subscriber of the
// post's category, skipping the author. It must run inside the transaction
// that inserts the post so subscribers are only notified of committed posts.
func (s *SubscriptionService) fanOutNewPost(ctx context.Context, tx store.Tx, post domain.Post, category domain.Category) error {
	l := slogx.FromContext(ctx)

	subscribers, err := tx.Subscriptions().ListCategorySubscribers(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("failed to list subscribers: %w", err)
	}

	notified := 0
	for _, subscriber := range subscribers {
		if subscriber.ID == post.AuthorID {
			continue
		}
		err := tx.Outbox().Enqueue(ctx, newNotification(
			domain.TemplateNewPost,
			[]string{subscriber.Email},
			map[string]string{
				"display_name": subscriber.DisplayName,
				"category":     category.Name,
				"title":        post.Title,
				"post_id":      post.ID,
			},
		))
		if err != nil {
			return fmt.Errorf("failed to enqueue notification: %w", err)
		}
		notified++
	}

	l.Debug("new post fan-out",
		slog.String("post_id", post.ID),
		slog.Int("notified", notified))
	return nil
}
