package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/guildnet/board/internal/board/domain"
	"github.com/guildnet/board/internal/board/service"
	"github.com/guildnet/board/pkg/boardsdk"
	"github.com/guildnet/board/pkg/httpx"
)

type PostsHandler struct {
	PostService *service.PostService
}

func postResponse(p domain.Post) boardsdk.PostResponse {
	return boardsdk.PostResponse{
		PostID:     p.ID,
		AuthorID:   p.AuthorID,
		CategoryID: p.CategoryID,
		Title:      p.Title,
		Content:    p.Content,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// HandleCreate creates a post.
//
//	@Summary		Create a post
//	@Description	Publishes a post in a category. Requires a confirmed profile.
//	@Description	Subscribers of the category are notified.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.CreatePostRequest	true	"Post details"
//	@Success		201		{object}	boardsdk.PostResponse
//	@Failure		400		{object}	boardsdk.ErrorResponse	"Malformed request"
//	@Failure		401		{object}	boardsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		403		{object}	boardsdk.ErrorResponse	"Email not confirmed"
//	@Failure		404		{object}	boardsdk.ErrorResponse	"Unknown category"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	profileID := httpx.ProfileIDFromContext(r.Context())
	if profileID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req boardsdk.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.CategoryID == "" || req.Title == "" || strings.TrimSpace(req.Content) == "" {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), profileID,
		req.CategoryID, req.Title, req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, postResponse(post))
}

// HandleGet fetches one post.
//
//	@Summary		Get a post
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		string	true	"Post ID"
//	@Success		200	{object}	boardsdk.PostResponse
//	@Failure		404	{object}	boardsdk.ErrorResponse	"Unknown post"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts/{id} [get].
func (h *PostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.GetPost(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, postResponse(post))
}

// HandleList lists posts.
//
//	@Summary		List posts
//	@Description	Returns posts newest first, optionally restricted to one category.
//	@Tags			Posts
//	@Produce		json
//	@Param			category	query		string	false	"Category ID"
//	@Success		200			{array}		boardsdk.PostResponse
//	@Failure		500			{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts [get].
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]boardsdk.PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, postResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate updates the caller's own post.
//
//	@Summary		Update a post
//	@Description	Updates title and content. Only the post's author may update it.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Post ID"
//	@Param			request	body		boardsdk.UpdatePostRequest	true	"New title and content"
//	@Success		200		{object}	boardsdk.PostResponse
//	@Failure		400		{object}	boardsdk.ErrorResponse	"Malformed request"
//	@Failure		401		{object}	boardsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		403		{object}	boardsdk.ErrorResponse	"Not the post's author"
//	@Failure		404		{object}	boardsdk.ErrorResponse	"Unknown post"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts/{id} [put].
func (h *PostsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	profileID := httpx.ProfileIDFromContext(r.Context())
	if profileID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req boardsdk.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Content) == "" {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), profileID,
		r.PathValue("id"), req.Title, req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, postResponse(post))
}

// HandleDelete deletes the caller's own post.
//
//	@Summary		Delete a post
//	@Description	Deletes the post and its responses. Only the post's author may delete it.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Post ID"
//	@Success		204	"Post deleted"
//	@Failure		401	{object}	boardsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		403	{object}	boardsdk.ErrorResponse	"Not the post's author"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"Unknown post"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts/{id} [delete].
func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	profileID := httpx.ProfileIDFromContext(r.Context())
	if profileID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), profileID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
