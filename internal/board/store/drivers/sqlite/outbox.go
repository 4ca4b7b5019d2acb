package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/guildnet/board/internal/board/domain"
)

type outboxRepo struct {
	db dbtx
}

func scanNotification(row interface{ Scan(dest ...any) error }) (domain.Notification, error) {
	var (
		n           domain.Notification
		recipients  string
		data        string
		attemptedAt sql.NullTime
	)
	err := row.Scan(&n.ID, &n.Template, &recipients, &data, &n.CreatedAt,
		&attemptedAt, &n.Delivered, &n.Error)
	if err != nil {
		return domain.Notification{}, mapNotFound(err)
	}
	n.Recipients = strings.Fields(recipients)
	n.AttemptedAt = mapNullTimePtr(attemptedAt)
	if err := json.Unmarshal([]byte(data), &n.Data); err != nil {
		return domain.Notification{}, err
	}
	return n, nil
}

func (r *outboxRepo) Enqueue(ctx context.Context, n domain.Notification) error {
	data, err := json.Marshal(n.Data)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO outbox (id, template, recipients, data, created_at, delivered, error)
		VALUES (?, ?, ?, ?, ?, 0, '')`,
		n.ID, string(n.Template), strings.Join(n.Recipients, " "), string(data), n.CreatedAt)
	return mapConstraint(err)
}

func (r *outboxRepo) ListPending(ctx context.Context, limit int) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, template, recipients, data, created_at, attempted_at, delivered, error
		FROM outbox
		WHERE attempted_at IS NULL
		ORDER BY created_at ASC
		LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkAttempted claims the row. The IS NULL guard makes claims at-most-once
// when multiple dispatchers poll the same table.
func (r *outboxRepo) MarkAttempted(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE outbox SET attempted_at = ?
		WHERE id = ? AND attempted_at IS NULL`,
		time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *outboxRepo) RecordResult(ctx context.Context, id string, delivered bool, deliveryErr string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE outbox SET delivered = ?, error = ? WHERE id = ?`,
		delivered, deliveryErr, id)
	return err
}

func (r *outboxRepo) DeleteDelivered(ctx context.Context, olderThan time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM outbox WHERE delivered = 1 AND attempted_at < ?`,
		olderThan)
	return err
}
