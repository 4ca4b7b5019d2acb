package boardsdk

import "time"

// ErrorResponse is the stable JSON error body of the board service. Client
// code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "not_confirmed")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// RegisterRequest is the body of POST /v1/register.
type RegisterRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// ProfileResponse is the public representation of a profile.
type ProfileResponse struct {
	ProfileID      string `json:"profile_id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

// LoginRequest is the body of POST /v1/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token issued on successful login.
type LoginResponse struct {
	SessionToken string          `json:"session_token"`
	TokenType    string          `json:"token_type"` // always "Bearer"
	Profile      ProfileResponse `json:"profile"`
}

// ConfirmRequest is the body of POST /v1/confirm.
type ConfirmRequest struct {
	Code string `json:"code"`
}

// ChangePasswordRequest is the body of PUT /v1/profile/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CategoryResponse is the public representation of a category.
type CategoryResponse struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// CreatePostRequest is the body of POST /v1/posts.
type CreatePostRequest struct {
	CategoryID string `json:"category_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// UpdatePostRequest is the body of PUT /v1/posts/{id}.
type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostResponse is the public representation of a post.
type PostResponse struct {
	PostID     string    `json:"post_id"`
	AuthorID   string    `json:"author_id"`
	CategoryID string    `json:"category_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateResponseRequest is the body of POST /v1/posts/{id}/responses.
type CreateResponseRequest struct {
	Content string `json:"content"`
}

// ResponseResponse is the public representation of a response to a post.
type ResponseResponse struct {
	ResponseID string    `json:"response_id"`
	PostID     string    `json:"post_id"`
	AuthorID   string    `json:"author_id"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`

	// Checks is only present on /readyz
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of the service's critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// SubscriptionResponse is the public representation of a subscription row.
type SubscriptionResponse struct {
	SubscriptionID string `json:"subscription_id"`
	CategoryID     string `json:"category_id"`
	Subscribed     bool   `json:"subscribed"`
}
