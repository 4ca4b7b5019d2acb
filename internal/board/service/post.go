package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guildnet/board/internal/board/domain"
	"github.com/guildnet/board/internal/board/store"
	"github.com/guildnet/board/pkg/idx"
)

// PostService owns post CRUD. Posts belong to their author for life; only
// the author may update or delete them. Creating a post triggers the
// new-post fan-out to the category's subscribers.
type PostService struct {
	Store         store.Store
	Confirm       *ConfirmationService
	Subscriptions *SubscriptionService
}

// CreatePost creates a post by a confirmed profile and fans out the new-post
// notification to the category's subscribers (author excluded) in the same
// transaction.
func (s *PostService) CreatePost(ctx context.Context, authorID, categoryID, title, content string) (domain.Post, error) {
	if _, err := s.Confirm.RequireConfirmed(ctx, authorID); err != nil {
		return domain.Post{}, err
	}

	category, err := s.Store.Categories().GetCategoryByID(ctx, categoryID)
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to get category: %w", err)
	}
	if !category.IsActive {
		return domain.Post{}, store.ErrNotFound
	}

	now := time.Now().UTC()
	post := domain.Post{
		ID:         idx.New().String(),
		AuthorID:   authorID,
		CategoryID: categoryID,
		Title:      title,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Posts().CreatePost(ctx, post); err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		return s.Subscriptions.fanOutNewPost(ctx, tx, post, category)
	})
	if err != nil {
		return domain.Post{}, err
	}

	return post, nil
}

// GetPost fetches a post by id.
func (s *PostService) GetPost(ctx context.Context, postID string) (domain.Post, error) {
	return s.Store.Posts().GetPostByID(ctx, postID)
}

// ListPosts returns posts newest first, optionally filtered to one category.
func (s *PostService) ListPosts(ctx context.Context, categoryID string) ([]domain.Post, error) {
	return s.Store.Posts().ListPosts(ctx, categoryID)
}

// UpdatePost updates the title and content of the acting profile's own post.
func (s *PostService) UpdatePost(ctx context.Context, actorID, postID, title, content string) (domain.Post, error) {
	post, err := s.Store.Posts().GetPostByID(ctx, postID)
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to get post: %w", err)
	}
	if post.AuthorID != actorID {
		return domain.Post{}, ErrForbidden
	}

	if err := s.Store.Posts().UpdatePostContent(ctx, postID, title, content); err != nil {
		return domain.Post{}, fmt.Errorf("failed to update post: %w", err)
	}
	return s.Store.Posts().GetPostByID(ctx, postID)
}

// DeletePost removes the acting profile's own post. Responses cascade.
func (s *PostService) DeletePost(ctx context.Context, actorID, postID string) error {
	post, err := s.Store.Posts().GetPostByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}
	if post.AuthorID != actorID {
		return ErrForbidden
	}
	return s.Store.Posts().DeletePost(ctx, postID)
}
