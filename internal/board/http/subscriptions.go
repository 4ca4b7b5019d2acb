package http

import (
	"net/http"

	"github.com/guildnet/board/internal/board/domain"
	"github.com/guildnet/board/internal/board/service"
	"github.com/guildnet/board/pkg/boardsdk"
	"github.com/guildnet/board/pkg/httpx"
)

type SubscriptionsHandler struct {
	SubscriptionService *service.SubscriptionService
}

func subscriptionResponse(s domain.Subscription) boardsdk.SubscriptionResponse {
	return boardsdk.SubscriptionResponse{
		SubscriptionID: s.ID,
		CategoryID:     s.CategoryID,
		Subscribed:     s.Subscribed,
	}
}

// HandleSubscribe subscribes the caller to a category.
//
//	@Summary		Subscribe to a category
//	@Description	Subscribes the caller to a category. Requires a confirmed
//	@Description	profile. Subscribing twice is a no-op and sends no second
//	@Description	notification.
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Category ID"
//	@Success		200	{object}	boardsdk.SubscriptionResponse
//	@Failure		401	{object}	boardsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		403	{object}	boardsdk.ErrorResponse	"Email not confirmed"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"Unknown category"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/categories/{id}/subscribe [post].
func (h *SubscriptionsHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	profileID := httpx.ProfileIDFromContext(r.Context())
	if profileID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	sub, err := h.SubscriptionService.Subscribe(r.Context(), profileID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, subscriptionResponse(sub))
}

// HandleUnsubscribe flips the caller's own subscription row off.
//
//	@Summary		Unsubscribe
//	@Description	Unsubscribes the caller's own subscription row. Unsubscribing an
//	@Description	already-unsubscribed row is a no-op.
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Subscription ID"
//	@Success		204	"Unsubscribed"
//	@Failure		401	{object}	boardsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		403	{object}	boardsdk.ErrorResponse	"Not the subscription's owner"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"Unknown subscription"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/subscriptions/{id}/unsubscribe [post].
func (h *SubscriptionsHandler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	profileID := httpx.ProfileIDFromContext(r.Context())
	if profileID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.SubscriptionService.Unsubscribe(r.Context(), profileID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleList lists the caller's subscription rows.
//
//	@Summary		List subscriptions
//	@Description	Returns all of the caller's subscription rows, including
//	@Description	unsubscribed ones.
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		boardsdk.SubscriptionResponse
//	@Failure		401	{object}	boardsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/subscriptions [get].
func (h *SubscriptionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	profileID := httpx.ProfileIDFromContext(r.Context())
	if profileID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	subs, err := h.SubscriptionService.ListSubscriptions(r.Context(), profileID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]boardsdk.SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, subscriptionResponse(s))
	}
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, out)
}
