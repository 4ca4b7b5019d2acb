package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guildnet/board/internal/board/domain"
	"github.com/guildnet/board/internal/board/store"
	"github.com/guildnet/board/pkg/idx"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// ModerationService owns the response lifecycle. Responses start pending and
// are moderated by the author of the post they reply to: approval publishes
// them and notifies their author, rejection removes them silently. Both
// outcomes are terminal.
type ModerationService struct {
	Store   store.Store
	Confirm *ConfirmationService
}

// CreateResponse creates a pending response by a confirmed profile and
// notifies the post's author that moderation is waiting. Responding to your
// own post skips the notification.
func (s *ModerationService) CreateResponse(ctx context.Context, authorID, postID, content string) (domain.Response, error) {
	author, err := s.Confirm.RequireConfirmed(ctx, authorID)
	if err != nil {
		return domain.Response{}, err
	}

	post, err := s.Store.Posts().GetPostByID(ctx, postID)
	if err != nil {
		return domain.Response{}, fmt.Errorf("failed to get post: %w", err)
	}

	now := time.Now().UTC()
	response := domain.Response{
		ID:        idx.New().String(),
		PostID:    post.ID,
		AuthorID:  authorID,
		Content:   content,
		Status:    domain.ResponsePending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Responses().CreateResponse(ctx, response); err != nil {
			return fmt.Errorf("failed to create response: %w", err)
		}
		if post.AuthorID == authorID {
			return nil
		}
		moderator, err := tx.Profiles().GetProfileByID(ctx, post.AuthorID)
		if err != nil {
			return fmt.Errorf("failed to get post author: %w", err)
		}
		return tx.Outbox().Enqueue(ctx, newNotification(
			domain.TemplateNewResponse,
			[]string{moderator.Email},
			map[string]string{
				"display_name": moderator.DisplayName,
				"title":        post.Title,
				"post_id":      post.ID,
				"author":       author.DisplayName,
			},
		))
	})
	if err != nil {
		return domain.Response{}, err
	}

	return response, nil
}

// ApproveResponse moves a pending response to approved and notifies its
// author. Only the author of the parent post may approve, and only from
// pending: concurrent moderators race on a guarded update and the loser
// gets ErrInvalidTransition.
func (s *ModerationService) ApproveResponse(ctx context.Context, moderatorID, responseID string) (domain.Response, error) {
	if _, err := s.Confirm.RequireConfirmed(ctx, moderatorID); err != nil {
		return domain.Response{}, err
	}

	response, post, err := s.loadForModeration(ctx, moderatorID, responseID)
	if err != nil {
		return domain.Response{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		changed, err := tx.Responses().UpdateResponseStatus(ctx, responseID,
			domain.ResponsePending, domain.ResponseApproved)
		if err != nil {
			return fmt.Errorf("failed to update response status: %w", err)
		}
		if !changed {
			return ErrInvalidTransition
		}

		author, err := tx.Profiles().GetProfileByID(ctx, response.AuthorID)
		if err != nil {
			return fmt.Errorf("failed to get response author: %w", err)
		}
		return tx.Outbox().Enqueue(ctx, newNotification(
			domain.TemplateResponseApproved,
			[]string{author.Email},
			map[string]string{
				"display_name": author.DisplayName,
				"title":        post.Title,
				"post_id":      post.ID,
			},
		))
	})
	if err != nil {
		return domain.Response{}, err
	}

	response.Status = domain.ResponseApproved
	return response, nil
}

// RejectResponse moves a pending response to deleted. Rejection is silent:
// the response's author is never notified. Only the author of the parent
// post may reject, and only from pending.
func (s *ModerationService) RejectResponse(ctx context.Context, moderatorID, responseID string) error {
	if _, _, err := s.loadForModeration(ctx, moderatorID, responseID); err != nil {
		return err
	}

	changed, err := s.Store.Responses().UpdateResponseStatus(ctx, responseID,
		domain.ResponsePending, domain.ResponseDeleted)
	if err != nil {
		return fmt.Errorf("failed to update response status: %w", err)
	}
	if !changed {
		return ErrInvalidTransition
	}
	return nil
}

// ListPending returns the moderation queue: pending responses on the acting
// profile's own posts, optionally restricted to one category.
func (s *ModerationService) ListPending(ctx context.Context, moderatorID, categoryID string) ([]domain.Response, error) {
	return s.Store.Responses().ListPendingForAuthor(ctx, moderatorID, categoryID)
}

// ListApproved returns a post's approved responses, oldest first. This is
// the only response listing visible to non-moderators.
func (s *ModerationService) ListApproved(ctx context.Context, postID string) ([]domain.Response, error) {
	if _, err := s.Store.Posts().GetPostByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return s.Store.Responses().ListByPostAndStatus(ctx, postID, domain.ResponseApproved)
}

// loadForModeration fetches the response and its parent post, enforcing that
// the acting profile owns the post.
func (s *ModerationService) loadForModeration(ctx context.Context, moderatorID, responseID string) (domain.Response, domain.Post, error) {
	response, err := s.Store.Responses().GetResponseByID(ctx, responseID)
	if err != nil {
		return domain.Response{}, domain.Post{}, fmt.Errorf("failed to get response: %w", err)
	}

	post, err := s.Store.Posts().GetPostByID(ctx, response.PostID)
	if err != nil {
		return domain.Response{}, domain.Post{}, fmt.Errorf("failed to get post: %w", err)
	}

	if post.AuthorID != moderatorID {
		return domain.Response{}, domain.Post{}, ErrForbidden
	}
	return response, post, nil
}
