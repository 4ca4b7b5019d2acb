package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/guildnet/board/internal/board/domain"
)

type profilesRepo struct {
	db dbtx
}

const profileColumns = `id, username, display_name, email, password_hash,
	email_confirmed, confirm_secret, confirm_counter, pending_code_hash,
	created_at, updated_at`

func scanProfile(row interface{ Scan(dest ...any) error }) (domain.Profile, error) {
	var (
		p           domain.Profile
		pendingHash sql.NullString
	)
	err := row.Scan(
		&p.ID,
		&p.Username,
		&p.DisplayName,
		&p.Email,
		&p.PasswordHash,
		&p.EmailConfirmed,
		&p.ConfirmSecret,
		&p.ConfirmCounter,
		&pendingHash,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	p.PendingCodeHash = mapNullStringPtr(pendingHash)
	return p, nil
}

func (r *profilesRepo) GetProfileByID(ctx context.Context, id string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id)
	return scanProfile(row)
}

func (r *profilesRepo) GetProfileByUsername(ctx context.Context, username string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE username = ?`, username)
	return scanProfile(row)
}

func (r *profilesRepo) GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email = ?`, email)
	return scanProfile(row)
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (
			id, username, display_name, email, password_hash,
			email_confirmed, confirm_secret, confirm_counter, pending_code_hash,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID,
		p.Username,
		p.DisplayName,
		p.Email,
		p.PasswordHash,
		p.EmailConfirmed,
		p.ConfirmSecret,
		p.ConfirmCounter,
		mapOptionalString(p.PendingCodeHash),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *profilesRepo) UpdatePasswordHash(ctx context.Context, profileID string, newHash string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), profileID)
	return err
}

func (r *profilesRepo) SetPendingCode(ctx context.Context, profileID string, codeHash string, counter int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET pending_code_hash = ?, confirm_counter = ?, updated_at = ?
		WHERE id = ?`,
		codeHash, counter, time.Now().UTC(), profileID)
	return err
}

// ConfirmEmail is a guarded update: the row only changes when the profile is
// still unconfirmed and the submitted code fingerprint matches. Concurrent
// submissions of the same code race on this update and exactly one wins.
func (r *profilesRepo) ConfirmEmail(ctx context.Context, profileID string, codeHash string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET email_confirmed = 1, pending_code_hash = NULL, updated_at = ?
		WHERE id = ? AND email_confirmed = 0 AND pending_code_hash = ?`,
		time.Now().UTC(), profileID, codeHash)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
