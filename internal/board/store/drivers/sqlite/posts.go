package sqlite

import (
	"context"
	"time"

	"github.com/guildnet/board/internal/board/domain"
)

type postsRepo struct {
	db dbtx
}

const postColumns = `id, author_id, category_id, title, content, created_at, updated_at`

func scanPost(row interface{ Scan(dest ...any) error }) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(&p.ID, &p.AuthorID, &p.CategoryID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (id, author_id, category_id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.AuthorID, p.CategoryID, p.Title, p.Content, p.CreatedAt, p.UpdatedAt)
	return mapConstraint(err)
}

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	return scanPost(row)
}

func (r *postsRepo) ListPosts(ctx context.Context, categoryID string) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts`
	args := []any{}
	if categoryID != "" {
		query += ` WHERE category_id = ?`
		args = append(args, categoryID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postsRepo) UpdatePostContent(ctx context.Context, postID, title, content string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE posts SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		title, content, time.Now().UTC(), postID)
	return err
}

func (r *postsRepo) DeletePost(ctx context.Context, postID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, postID)
	return err
}
