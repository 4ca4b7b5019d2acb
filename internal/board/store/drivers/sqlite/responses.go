package sqlite

import (
	"context"
	"time"

	"github.com/guildnet/board/internal/board/domain"
)

type responsesRepo struct {
	db dbtx
}

const responseColumns = `id, post_id, author_id, content, status, created_at, updated_at`

func scanResponse(row interface{ Scan(dest ...any) error }) (domain.Response, error) {
	var r domain.Response
	err := row.Scan(&r.ID, &r.PostID, &r.AuthorID, &r.Content, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return domain.Response{}, mapNotFound(err)
	}
	return r, nil
}

func (r *responsesRepo) CreateResponse(ctx context.Context, resp domain.Response) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO responses (id, post_id, author_id, content, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		resp.ID, resp.PostID, resp.AuthorID, resp.Content, string(resp.Status),
		resp.CreatedAt, resp.UpdatedAt)
	return mapConstraint(err)
}

func (r *responsesRepo) GetResponseByID(ctx context.Context, id string) (domain.Response, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+responseColumns+` FROM responses WHERE id = ?`, id)
	return scanResponse(row)
}

// UpdateResponseStatus is a guarded transition: the row only changes when it
// is still in the expected from status. Concurrent moderators race on this
// update and exactly one wins.
func (r *responsesRepo) UpdateResponseStatus(ctx context.Context, responseID string, from, to domain.ResponseStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE responses SET status = ?, updated_at = ?
		WHERE id = ? AND status = ?`,
		string(to), time.Now().UTC(), responseID, string(from))
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *responsesRepo) ListByPostAndStatus(ctx context.Context, postID string, status domain.ResponseStatus) ([]domain.Response, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+responseColumns+` FROM responses
		WHERE post_id = ? AND status = ?
		ORDER BY created_at ASC`,
		postID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Response
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, rows.Err()
}

func (r *responsesRepo) ListPendingForAuthor(ctx context.Context, authorID string, categoryID string) ([]domain.Response, error) {
	query := `
		SELECT r.id, r.post_id, r.author_id, r.content, r.status, r.created_at, r.updated_at
		FROM responses r
		JOIN posts p ON p.id = r.post_id
		WHERE p.author_id = ? AND r.status = ?`
	args := []any{authorID, string(domain.ResponsePending)}
	if categoryID != "" {
		query += ` AND p.category_id = ?`
		args = append(args, categoryID)
	}
	query += ` ORDER BY r.created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Response
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, rows.Err()
}
