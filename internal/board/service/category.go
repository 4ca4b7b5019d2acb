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

type CategoryService struct {
	Store store.Store
}

// ListCategories returns all active categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.Store.Categories().ListActiveCategories(ctx)
}

// EnsureCategory creates the named category if it does not exist yet.
// Used at startup to seed the configured category list; concurrent creates
// converge on the existing row.
func (s *CategoryService) EnsureCategory(ctx context.Context, name string) (domain.Category, error) {
	category, err := s.Store.Categories().GetCategoryByName(ctx, name)
	if err == nil {
		return category, nil
	}

	now := time.Now().UTC()
	category = domain.Category{
		ID:        idx.New().String(),
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Categories().CreateCategory(ctx, category); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return s.Store.Categories().GetCategoryByName(ctx, name)
		}
		return domain.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}
