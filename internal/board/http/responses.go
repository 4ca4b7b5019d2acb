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

type ResponsesHandler struct {
	ModerationService *service.ModerationService
}

func responseResponse(resp domain.Response) boardsdk.ResponseResponse {
	return boardsdk.ResponseResponse{
		ResponseID: resp.ID,
		PostID:     resp.PostID,
		AuthorID:   resp.AuthorID,
		Content:    resp.Content,
		Status:     string(resp.Status),
		CreatedAt:  resp.CreatedAt,
	}
}

// HandleCreate submits a response to a post.
//
//	@Summary		Respond to a post
//	@Description	Creates a pending response. Requires a confirmed profile. The
//	@Description	post's author is notified and must approve the response before
//	@Description	it becomes visible.
//	@Tags			Responses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Post ID"
//	@Param			request	body		boardsdk.CreateResponseRequest	true	"Response content"
//	@Success		201		{object}	boardsdk.ResponseResponse
//	@Failure		400		{object}	boardsdk.ErrorResponse	"Malformed request"
//	@Failure		401		{object}	boardsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		403		{object}	boardsdk.ErrorResponse	"Email not confirmed"
//	@Failure		404		{object}	boardsdk.ErrorResponse	"Unknown post"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts/{id}/responses [post].
func (h *ResponsesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	profileID := httpx.ProfileIDFromContext(r.Context())
	if profileID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req boardsdk.CreateResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	resp, err := h.ModerationService.CreateResponse(r.Context(), profileID,
		r.PathValue("id"), req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, responseResponse(resp))
}

// HandleListApproved lists a post's approved responses.
//
//	@Summary		List approved responses
//	@Description	Returns a post's approved responses oldest first. Pending and
//	@Description	rejected responses are never listed here.
//	@Tags			Responses
//	@Produce		json
//	@Param			id	path		string	true	"Post ID"
//	@Success		200	{array}		boardsdk.ResponseResponse
//	@Failure		404	{object}	boardsdk.ErrorResponse	"Unknown post"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts/{id}/responses [get].
func (h *ResponsesHandler) HandleListApproved(w http.ResponseWriter, r *http.Request) {
	responses, err := h.ModerationService.ListApproved(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]boardsdk.ResponseResponse, 0, len(responses))
	for _, resp := range responses {
		out = append(out, responseResponse(resp))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleListPending lists the caller's moderation queue.
//
//	@Summary		List pending responses
//	@Description	Returns pending responses across the caller's own posts,
//	@Description	optionally restricted to one category.
//	@Tags			Responses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			category	query		string	false	"Category ID"
//	@Success		200			{array}		boardsdk.ResponseResponse
//	@Failure		401			{object}	boardsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		500			{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/responses/pending [get].
func (h *ResponsesHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	profileID := httpx.ProfileIDFromContext(r.Context())
	if profileID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	responses, err := h.ModerationService.ListPending(r.Context(), profileID,
		r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]boardsdk.ResponseResponse, 0, len(responses))
	for _, resp := range responses {
		out = append(out, responseResponse(resp))
	}
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleApprove approves a pending response.
//
//	@Summary		Approve a response
//	@Description	Moves a pending response to approved and notifies its author.
//	@Description	Only the author of the parent post may approve, and each response
//	@Description	is moderated at most once.
//	@Tags			Responses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Response ID"
//	@Success		200	{object}	boardsdk.ResponseResponse
//	@Failure		401	{object}	boardsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		403	{object}	boardsdk.ErrorResponse	"Not the parent post's author"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"Unknown response"
//	@Failure		409	{object}	boardsdk.ErrorResponse	"Response already moderated"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/responses/{id}/approve [post].
func (h *ResponsesHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	profileID := httpx.ProfileIDFromContext(r.Context())
	if profileID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	resp, err := h.ModerationService.ApproveResponse(r.Context(), profileID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, responseResponse(resp))
}

// HandleReject rejects a pending response.
//
//	@Summary		Reject a response
//	@Description	Moves a pending response to deleted. The response's author is
//	@Description	not notified. Only the author of the parent post may reject.
//	@Tags			Responses
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Response ID"
//	@Success		204	"Response rejected"
//	@Failure		401	{object}	boardsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		403	{object}	boardsdk.ErrorResponse	"Not the parent post's author"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"Unknown response"
//	@Failure		409	{object}	boardsdk.ErrorResponse	"Response already moderated"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/responses/{id}/reject [post].
func (h *ResponsesHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	profileID := httpx.ProfileIDFromContext(r.Context())
	if profileID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.ModerationService.RejectResponse(r.Context(), profileID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
