package board_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guildnet/board/pkg/boardsdk"
)

// TestPostAndModerationWorkflow drives the whole content flow over HTTP:
// a confirmed author posts, another confirmed profile responds, the author
// moderates, and only approved responses become public.
func TestPostAndModerationWorkflow(t *testing.T) {
	env, cleanup := setupBoardContainer(t)
	defer cleanup()
	ctx := t.Context()

	author := confirmedAccount(t, env, "helen")
	responder := confirmedAccount(t, env, "ivan")
	category := findCategory(t, author, "general")

	post, err := author.CreatePost(ctx, boardsdk.CreatePostRequest{
		CategoryID: category.CategoryID,
		Title:      "release notes",
		Content:    "the first post",
	})
	require.NoError(t, err)

	resp, err := responder.CreateResponse(ctx, post.PostID, "nice work")
	require.NoError(t, err)
	require.Equal(t, "pending", resp.Status)

	// Pending responses are only visible in the author's queue.
	visible, err := responder.ListApprovedResponses(ctx, post.PostID)
	require.NoError(t, err)
	require.Empty(t, visible)

	queue, err := author.ListPendingResponses(ctx, "")
	require.NoError(t, err)
	require.Len(t, queue, 1)
	require.Equal(t, resp.ResponseID, queue[0].ResponseID)

	// Only the post's author may moderate.
	_, err = responder.ApproveResponse(ctx, resp.ResponseID)
	requireAPIError(t, err, http.StatusForbidden, boardsdk.ErrorCodeForbidden)

	approved, err := author.ApproveResponse(ctx, resp.ResponseID)
	require.NoError(t, err)
	require.Equal(t, "approved", approved.Status)

	// Approval is terminal.
	_, err = author.ApproveResponse(ctx, resp.ResponseID)
	requireAPIError(t, err, http.StatusConflict, boardsdk.ErrorCodeInvalidTransition)
	err = author.RejectResponse(ctx, resp.ResponseID)
	requireAPIError(t, err, http.StatusConflict, boardsdk.ErrorCodeInvalidTransition)

	visible, err = responder.ListApprovedResponses(ctx, post.PostID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	require.Equal(t, "nice work", visible[0].Content)

	queue, err = author.ListPendingResponses(ctx, "")
	require.NoError(t, err)
	require.Empty(t, queue)
}

// TestRejectedResponseStaysHidden verifies rejection removes the response
// from every listing.
func TestRejectedResponseStaysHidden(t *testing.T) {
	env, cleanup := setupBoardContainer(t)
	defer cleanup()
	ctx := t.Context()

	author := confirmedAccount(t, env, "judy")
	responder := confirmedAccount(t, env, "karl")
	category := findCategory(t, author, "general")

	post, err := author.CreatePost(ctx, boardsdk.CreatePostRequest{
		CategoryID: category.CategoryID,
		Title:      "rules",
		Content:    "be nice",
	})
	require.NoError(t, err)

	resp, err := responder.CreateResponse(ctx, post.PostID, "spam spam spam")
	require.NoError(t, err)
	require.NoError(t, author.RejectResponse(ctx, resp.ResponseID))

	visible, err := responder.ListApprovedResponses(ctx, post.PostID)
	require.NoError(t, err)
	require.Empty(t, visible)

	queue, err := author.ListPendingResponses(ctx, "")
	require.NoError(t, err)
	require.Empty(t, queue)
}

// TestPostOwnership verifies edit and delete are restricted to the author.
func TestPostOwnership(t *testing.T) {
	env, cleanup := setupBoardContainer(t)
	defer cleanup()
	ctx := t.Context()

	author := confirmedAccount(t, env, "linda")
	stranger := confirmedAccount(t, env, "mike")
	category := findCategory(t, author, "general")

	post, err := author.CreatePost(ctx, boardsdk.CreatePostRequest{
		CategoryID: category.CategoryID,
		Title:      "draft",
		Content:    "v1",
	})
	require.NoError(t, err)

	_, err = stranger.UpdatePost(ctx, post.PostID, boardsdk.UpdatePostRequest{
		Title: "hijacked", Content: "v2",
	})
	requireAPIError(t, err, http.StatusForbidden, boardsdk.ErrorCodeForbidden)

	err = stranger.DeletePost(ctx, post.PostID)
	requireAPIError(t, err, http.StatusForbidden, boardsdk.ErrorCodeForbidden)

	updated, err := author.UpdatePost(ctx, post.PostID, boardsdk.UpdatePostRequest{
		Title: "draft", Content: "v2",
	})
	require.NoError(t, err)
	require.Equal(t, "v2", updated.Content)

	require.NoError(t, author.DeletePost(ctx, post.PostID))

	_, err = author.GetPost(ctx, post.PostID)
	requireAPIError(t, err, http.StatusNotFound, boardsdk.ErrorCodeNotFound)
}

// TestPostListingIsPublic verifies posts can be read without a session.
func TestPostListingIsPublic(t *testing.T) {
	env, cleanup := setupBoardContainer(t)
	defer cleanup()
	ctx := t.Context()

	author := confirmedAccount(t, env, "nina")
	category := findCategory(t, author, "announcements")

	_, err := author.CreatePost(ctx, boardsdk.CreatePostRequest{
		CategoryID: category.CategoryID,
		Title:      "maintenance window",
		Content:    "sunday 2am",
	})
	require.NoError(t, err)

	anon := boardsdk.NewClient(env.baseURL)
	posts, err := anon.ListPosts(ctx, category.CategoryID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "maintenance window", posts[0].Title)
}
