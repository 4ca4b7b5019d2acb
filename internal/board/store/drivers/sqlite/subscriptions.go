package sqlite

import (
	"context"
	"time"

	"github.com/guildnet/board/internal/board/domain"
)

type subscriptionsRepo struct {
	db dbtx
}

const subscriptionColumns = `id, profile_id, category_id, subscribed, created_at, updated_at`

func scanSubscription(row interface{ Scan(dest ...any) error }) (domain.Subscription, error) {
	var s domain.Subscription
	err := row.Scan(&s.ID, &s.ProfileID, &s.CategoryID, &s.Subscribed, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Subscription{}, mapNotFound(err)
	}
	return s, nil
}

// UpsertSubscribed inserts or revives the (profile, category) row. The
// UNIQUE constraint funnels concurrent first-subscribes into one row, and
// the WHERE on the conflict update keeps already-subscribed rows untouched
// so RowsAffected tells us whether the state actually changed.
func (r *subscriptionsRepo) UpsertSubscribed(ctx context.Context, s domain.Subscription) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, profile_id, category_id, subscribed, created_at, updated_at)
		VALUES (?, ?, ?, 1, ?, ?)
		ON CONFLICT (profile_id, category_id) DO UPDATE
		SET subscribed = 1, updated_at = excluded.updated_at
		WHERE subscriptions.subscribed = 0`,
		s.ID, s.ProfileID, s.CategoryID, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *subscriptionsRepo) GetSubscriptionByID(ctx context.Context, id string) (domain.Subscription, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = ?`, id)
	return scanSubscription(row)
}

func (r *subscriptionsRepo) GetByProfileAndCategory(ctx context.Context, profileID, categoryID string) (domain.Subscription, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+subscriptionColumns+` FROM subscriptions
		WHERE profile_id = ? AND category_id = ?`,
		profileID, categoryID)
	return scanSubscription(row)
}

func (r *subscriptionsRepo) SetUnsubscribed(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions SET subscribed = 0, updated_at = ?
		WHERE id = ? AND subscribed = 1`,
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

func (r *subscriptionsRepo) ListByProfile(ctx context.Context, profileID string) ([]domain.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+subscriptionColumns+` FROM subscriptions
		WHERE profile_id = ?
		ORDER BY created_at ASC`,
		profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *subscriptionsRepo) ListCategorySubscribers(ctx context.Context, categoryID string) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.username, p.display_name, p.email, p.password_hash,
			p.email_confirmed, p.confirm_secret, p.confirm_counter, p.pending_code_hash,
			p.created_at, p.updated_at
		FROM profiles p
		JOIN subscriptions s ON s.profile_id = p.id
		WHERE s.category_id = ? AND s.subscribed = 1
		ORDER BY p.id ASC`,
		categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
