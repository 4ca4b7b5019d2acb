package store

import (
	"context"
	"errors"
	"time"

	"github.com/guildnet/board/internal/board/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrConflict      = errors.New("store: conflict")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Profiles() Profiles
	Categories() Categories
	Posts() Posts
	Responses() Responses
	Subscriptions() Subscriptions
	Outbox() Outbox

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Profiles interface {
	// GetProfileByID returns a profile by id.
	GetProfileByID(ctx context.Context, id string) (domain.Profile, error)

	// GetProfileByUsername is used during login.
	GetProfileByUsername(ctx context.Context, username string) (domain.Profile, error)

	// GetProfileByEmail is used to keep registration emails unique.
	GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error)

	// CreateProfile inserts a new profile (id is provided by app via ULID).
	CreateProfile(ctx context.Context, p domain.Profile) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, profileID string, newHash string) error

	// SetPendingCode overwrites the pending confirmation code fingerprint and
	// stores the HOTP counter the code was derived from.
	SetPendingCode(ctx context.Context, profileID string, codeHash string, counter int64) error

	// ConfirmEmail atomically flips email_confirmed and clears the pending
	// code, but only if the profile is still unconfirmed and codeHash matches
	// the stored fingerprint. Returns whether the row changed.
	ConfirmEmail(ctx context.Context, profileID string, codeHash string) (bool, error)
}

type Categories interface {
	// GetCategoryByID returns a category by id.
	GetCategoryByID(ctx context.Context, id string) (domain.Category, error)

	// GetCategoryByName returns a category by its (unique) name.
	GetCategoryByName(ctx context.Context, name string) (domain.Category, error)

	// ListActiveCategories returns all active categories ordered by name.
	ListActiveCategories(ctx context.Context) ([]domain.Category, error)

	// CreateCategory inserts a new category.
	CreateCategory(ctx context.Context, c domain.Category) error
}

type Posts interface {
	// CreatePost inserts a new post.
	CreatePost(ctx context.Context, p domain.Post) error

	// GetPostByID returns a post by id.
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// ListPosts returns posts newest first, optionally restricted to a
	// category (empty categoryID means all).
	ListPosts(ctx context.Context, categoryID string) ([]domain.Post, error)

	// UpdatePostContent updates title/content and bumps updated_at. The
	// author column is never touched; ownership is immutable.
	UpdatePostContent(ctx context.Context, postID, title, content string) error

	// DeletePost removes the post (responses cascade per schema).
	DeletePost(ctx context.Context, postID string) error
}

type Responses interface {
	// CreateResponse inserts a new response in its initial status.
	CreateResponse(ctx context.Context, r domain.Response) error

	// GetResponseByID returns a response by id.
	GetResponseByID(ctx context.Context, id string) (domain.Response, error)

	// UpdateResponseStatus performs the guarded transition from -> to as a
	// single conditional update. Returns false when the response was not in
	// the expected from status (e.g. a concurrent moderator won the race).
	UpdateResponseStatus(ctx context.Context, responseID string, from, to domain.ResponseStatus) (bool, error)

	// ListByPostAndStatus returns a post's responses in the given status,
	// oldest first. Used for the public approved listing.
	ListByPostAndStatus(ctx context.Context, postID string, status domain.ResponseStatus) ([]domain.Response, error)

	// ListPendingForAuthor returns pending responses across all posts owned
	// by the given author, optionally restricted to a category (empty
	// categoryID means all). This is the moderation queue.
	ListPendingForAuthor(ctx context.Context, authorID string, categoryID string) ([]domain.Response, error)
}

type Subscriptions interface {
	// UpsertSubscribed inserts the (profile, category) row with
	// subscribed=true, or flips an existing row back to subscribed. The
	// UNIQUE(profile_id, category_id) constraint makes concurrent
	// first-subscribes converge on one row. Returns whether anything
	// changed (false when the profile was already subscribed).
	UpsertSubscribed(ctx context.Context, s domain.Subscription) (bool, error)

	// GetSubscriptionByID returns a subscription row by id.
	GetSubscriptionByID(ctx context.Context, id string) (domain.Subscription, error)

	// GetByProfileAndCategory returns the unique row for the pair.
	GetByProfileAndCategory(ctx context.Context, profileID, categoryID string) (domain.Subscription, error)

	// SetUnsubscribed flips subscribed to false, keeping the row. Returns
	// whether the row changed (false when already unsubscribed).
	SetUnsubscribed(ctx context.Context, id string) (bool, error)

	// ListByProfile returns all subscription rows for a profile.
	ListByProfile(ctx context.Context, profileID string) ([]domain.Subscription, error)

	// ListCategorySubscribers returns the profiles currently subscribed to a
	// category. Used for new-post fan-out.
	ListCategorySubscribers(ctx context.Context, categoryID string) ([]domain.Profile, error)
}

type Outbox interface {
	// Enqueue stores a notification for asynchronous delivery. Call inside
	// the transaction that commits the triggering state change.
	Enqueue(ctx context.Context, n domain.Notification) error

	// ListPending returns unclaimed notifications, oldest first.
	ListPending(ctx context.Context, limit int) ([]domain.Notification, error)

	// MarkAttempted claims a notification for delivery. The conditional
	// update makes claims at-most-once; false means another dispatcher
	// already claimed it.
	MarkAttempted(ctx context.Context, id string) (bool, error)

	// RecordResult stores the delivery outcome for a claimed notification.
	RecordResult(ctx context.Context, id string, delivered bool, deliveryErr string) error

	// DeleteDelivered removes delivered rows older than the cutoff
	// (housekeeping).
	DeleteDelivered(ctx context.Context, olderThan time.Time) error
}
