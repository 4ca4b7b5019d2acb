package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/guildnet/board/internal/board/service"
	"github.com/guildnet/board/internal/board/store"
	"github.com/guildnet/board/pkg/httpx"
	"github.com/guildnet/board/pkg/slogx"

	_ "github.com/guildnet/board/api/board" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	TokenService        *service.TokenService
	RegistrationService *service.RegistrationService
	ConfirmationService *service.ConfirmationService
	CategoryService     *service.CategoryService
	PostService         *service.PostService
	ModerationService   *service.ModerationService
	SubscriptionService *service.SubscriptionService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerCategories()
	r.registerPosts()
	r.registerResponses()
	r.registerSubscriptions()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Board Service API
//	@version		0.1.0
//	@description	Community content board: registration with email confirmation,
//	@description	moderated responses on posts, and per-category subscriptions
//	@description	with mail notifications.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authn verifies the Bearer session token and injects the profile id.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.TokenService.Verify)
}

func (r *Router) registerAccounts() {
	registerHandler := &RegisterHandler{RegistrationService: r.RegistrationService}
	loginHandler := &LoginHandler{TokenService: r.TokenService}
	confirmHandler := &ConfirmHandler{ConfirmationService: r.ConfirmationService}
	passwordHandler := &PasswordHandler{TokenService: r.TokenService}

	// Public account endpoints carry strict limits: they are the brute-force
	// and enumeration surface.
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Confirmation code submission is authenticated but still strictly
	// limited so codes cannot be brute forced.
	r.Mux.Handle("POST /v1/confirm",
		httpx.Chain(http.HandlerFunc(confirmHandler.HandleSubmit),
			r.authn(),
			httpx.RateLimitByProfile(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/confirm/resend",
		httpx.Chain(http.HandlerFunc(confirmHandler.HandleResend),
			r.authn(),
			httpx.RateLimitByProfile(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("PUT /v1/profile/password",
		httpx.Chain(passwordHandler,
			r.authn(),
			httpx.RateLimitByProfile(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerCategories() {
	h := &CategoriesHandler{CategoryService: r.CategoryService}

	r.Mux.Handle("GET /v1/categories",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerPosts() {
	h := &PostsHandler{PostService: r.PostService}

	// Public reads
	r.Mux.Handle("GET /v1/posts",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/posts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Authenticated writes
	r.Mux.Handle("POST /v1/posts",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByProfile(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /v1/posts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.authn(),
			httpx.RateLimitByProfile(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/posts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.authn(),
			httpx.RateLimitByProfile(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerResponses() {
	h := &ResponsesHandler{ModerationService: r.ModerationService}

	r.Mux.Handle("POST /v1/posts/{id}/responses",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByProfile(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/posts/{id}/responses",
		httpx.Chain(http.HandlerFunc(h.HandleListApproved),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/responses/pending",
		httpx.Chain(http.HandlerFunc(h.HandleListPending),
			r.authn(),
			httpx.RateLimitByProfile(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/responses/{id}/approve",
		httpx.Chain(http.HandlerFunc(h.HandleApprove),
			r.authn(),
			httpx.RateLimitByProfile(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/responses/{id}/reject",
		httpx.Chain(http.HandlerFunc(h.HandleReject),
			r.authn(),
			httpx.RateLimitByProfile(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSubscriptions() {
	h := &SubscriptionsHandler{SubscriptionService: r.SubscriptionService}

	r.Mux.Handle("GET /v1/subscriptions",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByProfile(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/categories/{id}/subscribe",
		httpx.Chain(http.HandlerFunc(h.HandleSubscribe),
			r.authn(),
			httpx.RateLimitByProfile(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/subscriptions/{id}/unsubscribe",
		httpx.Chain(http.HandlerFunc(h.HandleUnsubscribe),
			r.authn(),
			httpx.RateLimitByProfile(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
