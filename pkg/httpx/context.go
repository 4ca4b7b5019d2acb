package httpx

import "context"

type ctxKey string

const (
	CtxKeyProfileID ctxKey = "profile_id"
)

// ProfileIDFromContext returns the authenticated profile id injected by
// AuthnMiddleware, or "" when the request is unauthenticated.
func ProfileIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyProfileID).(string); ok {
		return v
	}
	return ""
}
