package http

import (
	"errors"
	"net/http"

	"github.com/guildnet/board/internal/board/service"
	"github.com/guildnet/board/internal/board/store"
	"github.com/guildnet/board/pkg/boardsdk"
	"github.com/guildnet/board/pkg/slogx"
)

// writeServiceError maps service-layer sentinels onto the stable error
// catalogue. Anything unmapped is logged and reported as a server error so
// internals never leak to clients.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotConfirmed):
		boardsdk.ErrNotConfirmed.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		boardsdk.ErrForbidden.WriteError(w)
	case errors.Is(err, service.ErrInvalidTransition):
		boardsdk.ErrInvalidTransition.WriteError(w)
	case errors.Is(err, service.ErrAlreadyConfirmed):
		boardsdk.ErrAlreadyConfirmed.WriteError(w)
	case errors.Is(err, service.ErrInvalidCode):
		boardsdk.ErrInvalidCode.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		boardsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, store.ErrAlreadyExists),
		errors.Is(err, store.ErrConflict):
		boardsdk.ErrConflict.WriteError(w)
	case errors.Is(err, store.ErrNotFound):
		boardsdk.ErrNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		boardsdk.ErrServerError.WriteError(w)
	}
}
