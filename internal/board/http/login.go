package http

import (
	"encoding/json"
	"net/http"

	"github.com/guildnet/board/internal/board/service"
	"github.com/guildnet/board/pkg/boardsdk"
	"github.com/guildnet/board/pkg/httpx"
)

type LoginHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP handles password login.
//
//	@Summary		Login
//	@Description	Exchanges username and password for a session token.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	boardsdk.LoginResponse	"Session token and profile"
//	@Failure		400		{object}	boardsdk.ErrorResponse	"Malformed request"
//	@Failure		401		{object}	boardsdk.ErrorResponse	"Invalid credentials"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req boardsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Username == "" || req.Password == "" {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, profile, err := h.TokenService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, boardsdk.LoginResponse{
		SessionToken: token,
		TokenType:    "Bearer",
		Profile: boardsdk.ProfileResponse{
			ProfileID:      profile.ID,
			Username:       profile.Username,
			DisplayName:    profile.DisplayName,
			Email:          profile.Email,
			EmailConfirmed: profile.EmailConfirmed,
		},
	})
}

type PasswordHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP handles password changes.
//
//	@Summary		Change password
//	@Description	Replaces the authenticated profile's password after verifying the current one.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body	boardsdk.ChangePasswordRequest	true	"Current and new password"
//	@Success		204		"Password changed"
//	@Failure		400		{object}	boardsdk.ErrorResponse	"Malformed request"
//	@Failure		401		{object}	boardsdk.ErrorResponse	"Invalid token or wrong current password"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/profile/password [put].
func (h *PasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	profileID := httpx.ProfileIDFromContext(r.Context())
	if profileID == "" {
		boardsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req boardsdk.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.CurrentPassword == "" || len(req.NewPassword) < minPasswordLength {
		boardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.TokenService.ChangePassword(r.Context(), profileID,
		req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
