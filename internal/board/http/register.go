package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/guildnet/board/internal/board/service"
	"github.com/guildnet/board/pkg/boardsdk"
	"github.com/guildnet/board/pkg/httpx"
)

const minPasswordLength = 8

type RegisterHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP handles profile registration.
//
//	@Summary		Register a new profile
//	@Description	Creates an unconfirmed profile and mails a confirmation code.
//	@Description	The profile cannot post, respond or subscribe until the code is submitted.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	boardsdk.ProfileResponse	"The new unconfirmed profile"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"Malformed request"
//	@Failure		409		{object}	boardsdk.ErrorResponse		"Username or email already taken"
//	@Failure		500		{object}	boardsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req boardsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || !strings.Contains(req.Email, "@") ||
		len(req.Password) < minPasswordLength {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.DisplayName == "" {
		req.DisplayName = req.Username
	}

	profile, err := h.RegistrationService.Register(r.Context(),
		req.Username, req.DisplayName, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, boardsdk.ProfileResponse{
		ProfileID:      profile.ID,
		Username:       profile.Username,
		DisplayName:    profile.DisplayName,
		Email:          profile.Email,
		EmailConfirmed: profile.EmailConfirmed,
	})
}
