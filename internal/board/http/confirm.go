package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/guildnet/board/internal/board/service"
	"github.com/guildnet/board/pkg/boardsdk"
	"github.com/guildnet/board/pkg/httpx"
)

type ConfirmHandler struct {
	ConfirmationService *service.ConfirmationService
}

// HandleSubmit handles confirmation code submission.
//
//	@Summary		Confirm email address
//	@Description	Submits the mailed confirmation code. Confirming succeeds exactly
//	@Description	once; later submissions report the address as already confirmed.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body	boardsdk.ConfirmRequest	true	"Confirmation code"
//	@Success		204		"Email confirmed"
//	@Failure		400		{object}	boardsdk.ErrorResponse	"Malformed request or invalid code"
//	@Failure		401		{object}	boardsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		409		{object}	boardsdk.ErrorResponse	"Email already confirmed"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/confirm [post].
func (h *ConfirmHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	profileID := httpx.ProfileIDFromContext(r.Context())
	if profileID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req boardsdk.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	req.Code = strings.TrimSpace(req.Code)
	if req.Code == "" {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.ConfirmationService.SubmitCode(r.Context(), profileID, req.Code); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleResend re-issues the confirmation code.
//
//	@Summary		Resend confirmation code
//	@Description	Generates a fresh confirmation code and mails it. The previously
//	@Description	issued code stops working.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		204	"Code re-issued"
//	@Failure		401	{object}	boardsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		409	{object}	boardsdk.ErrorResponse	"Email already confirmed"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/confirm/resend [post].
func (h *ConfirmHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	profileID := httpx.ProfileIDFromContext(r.Context())
	if profileID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.ConfirmationService.IssueCode(r.Context(), profileID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
