package boardsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a client for the board service. The zero token form serves the
// unauthenticated surface; WithToken derives a client for the authenticated
// one.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates a new board service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of the client that sends the given session token
// as a Bearer credential on every request.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Register creates a new unconfirmed profile.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (ProfileResponse, error) {
	var out ProfileResponse
	err := c.do(ctx, http.MethodPost, "/v1/register", req, &out)
	return out, err
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/v1/login", LoginRequest{
		Username: username,
		Password: password,
	}, &out)
	return out, err
}

// Confirm submits a confirmation code for the authenticated profile.
func (c *Client) Confirm(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodPost, "/v1/confirm", ConfirmRequest{Code: code}, nil)
}

// ResendConfirmation re-issues the confirmation code, invalidating the
// previous one.
func (c *Client) ResendConfirmation(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/confirm/resend", nil, nil)
}

// ChangePassword replaces the authenticated profile's password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	return c.do(ctx, http.MethodPut, "/v1/profile/password", ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	}, nil)
}

// ListCategories returns the active categories.
func (c *Client) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	var out []CategoryResponse
	err := c.do(ctx, http.MethodGet, "/v1/categories", nil, &out)
	return out, err
}

// CreatePost publishes a new post in a category.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (PostResponse, error) {
	var out PostResponse
	err := c.do(ctx, http.MethodPost, "/v1/posts", req, &out)
	return out, err
}

// GetPost fetches a single post.
func (c *Client) GetPost(ctx context.Context, postID string) (PostResponse, error) {
	var out PostResponse
	err := c.do(ctx, http.MethodGet, "/v1/posts/"+url.PathEscape(postID), nil, &out)
	return out, err
}

// ListPosts returns posts newest first, optionally filtered by category id.
func (c *Client) ListPosts(ctx context.Context, categoryID string) ([]PostResponse, error) {
	path := "/v1/posts"
	if categoryID != "" {
		path += "?category=" + url.QueryEscape(categoryID)
	}
	var out []PostResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// UpdatePost updates the caller's own post.
func (c *Client) UpdatePost(ctx context.Context, postID string, req UpdatePostRequest) (PostResponse, error) {
	var out PostResponse
	err := c.do(ctx, http.MethodPut, "/v1/posts/"+url.PathEscape(postID), req, &out)
	return out, err
}

// DeletePost deletes the caller's own post.
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/posts/"+url.PathEscape(postID), nil, nil)
}

// CreateResponse submits a response to a post; it stays pending until the
// post's author moderates it.
func (c *Client) CreateResponse(ctx context.Context, postID, content string) (ResponseResponse, error) {
	var out ResponseResponse
	err := c.do(ctx, http.MethodPost,
		"/v1/posts/"+url.PathEscape(postID)+"/responses",
		CreateResponseRequest{Content: content}, &out)
	return out, err
}

// ListApprovedResponses returns a post's approved responses.
func (c *Client) ListApprovedResponses(ctx context.Context, postID string) ([]ResponseResponse, error) {
	var out []ResponseResponse
	err := c.do(ctx, http.MethodGet,
		"/v1/posts/"+url.PathEscape(postID)+"/responses", nil, &out)
	return out, err
}

// ListPendingResponses returns the caller's moderation queue, optionally
// filtered by category id.
func (c *Client) ListPendingResponses(ctx context.Context, categoryID string) ([]ResponseResponse, error) {
	path := "/v1/responses/pending"
	if categoryID != "" {
		path += "?category=" + url.QueryEscape(categoryID)
	}
	var out []ResponseResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// ApproveResponse approves a pending response on one of the caller's posts.
func (c *Client) ApproveResponse(ctx context.Context, responseID string) (ResponseResponse, error) {
	var out ResponseResponse
	err := c.do(ctx, http.MethodPost,
		"/v1/responses/"+url.PathEscape(responseID)+"/approve", nil, &out)
	return out, err
}

// RejectResponse rejects a pending response on one of the caller's posts.
func (c *Client) RejectResponse(ctx context.Context, responseID string) error {
	return c.do(ctx, http.MethodPost,
		"/v1/responses/"+url.PathEscape(responseID)+"/reject", nil, nil)
}

// Subscribe subscribes the caller to a category.
func (c *Client) Subscribe(ctx context.Context, categoryID string) (SubscriptionResponse, error) {
	var out SubscriptionResponse
	err := c.do(ctx, http.MethodPost,
		"/v1/categories/"+url.PathEscape(categoryID)+"/subscribe", nil, &out)
	return out, err
}

// Unsubscribe flips the caller's own subscription row off.
func (c *Client) Unsubscribe(ctx context.Context, subscriptionID string) error {
	return c.do(ctx, http.MethodPost,
		"/v1/subscriptions/"+url.PathEscape(subscriptionID)+"/unsubscribe", nil, nil)
}

// ListSubscriptions returns all of the caller's subscription rows.
func (c *Client) ListSubscriptions(ctx context.Context) ([]SubscriptionResponse, error) {
	var out []SubscriptionResponse
	err := c.do(ctx, http.MethodGet, "/v1/subscriptions", nil, &out)
	return out, err
}

// GetLiveness reports whether the service process is up.
func (c *Client) GetLiveness(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &out)
	return out, err
}

// GetReadiness reports whether the service and its database are ready to
// serve traffic.
func (c *Client) GetReadiness(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &out)
	return out, err
}

// do performs a JSON round-trip and decodes either the expected body or the
// service's error shape.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseError(resp *http.Response) error {
	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var body ErrorResponse
	if err := json.Unmarshal(payload, &body); err != nil || body.Error == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected response: %s", resp.Status),
		}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        body.Error,
		Description: body.ErrorDescription,
	}
}
