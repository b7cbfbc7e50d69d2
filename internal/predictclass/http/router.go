package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/jwtx"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"

	_ "github.com/aussiebroadwan/predictclass/api/predictclass" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	cookies      *httpx.SessionCookies
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// Rate limit profiles. NewRouter fills in the package defaults.
	StrictLimit   httpx.RateLimitConfig
	ModerateLimit httpx.RateLimitConfig

	SessionService       *service.SessionService
	UserService          *service.UserService
	PasswordResetService *service.PasswordResetService
	ClassService         *service.ClassService
	GameService          *service.GameService
	BootstrapService     *service.BootstrapService
}

func NewRouter(
	verifier jwtx.Verifier,
	cookies *httpx.SessionCookies,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		verifier:      verifier,
		cookies:       cookies,
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		logger:        logger,
		store:         st,
		StrictLimit:   httpx.StrictLimit,
		ModerateLimit: httpx.ModerateLimit,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSessions()
	r.registerUsers()
	r.registerPasswordReset()
	r.registerClasses()
	r.registerGames()
	r.registerAdmin()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			predictclass API
//	@version		0.1.0
//	@description	Classroom prediction games. Teachers open games in their classes, students
//	@description	submit a choice with a confidence, and resolving a game scores every prediction.
//	@description
//	@description				Sessions are HS256 JWTs sent as a Bearer token or in the signed session cookie.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/predictclass
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

// authenticated requires a valid session and counts requests per subject.
func (r *Router) authenticated(h http.Handler) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier, r.cookies),
		httpx.RateLimitBySubject(r.ModerateLimit),
	)
}

// authorize is authenticated plus an exact role match.
func (r *Router) authorize(role domain.Role, h http.Handler) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier, r.cookies),
		httpx.RequireRole(role.String()),
		httpx.RateLimitBySubject(r.ModerateLimit),
	)
}

func (r *Router) strict(h http.Handler) http.Handler {
	return httpx.Chain(h, httpx.RateLimitByIP(r.StrictLimit))
}

func (r *Router) registerSessions() {
	h := &SessionHandler{SessionService: r.SessionService, Cookies: r.cookies}

	r.Mux.Handle("POST /v1/sessions", r.strict(http.HandlerFunc(h.HandleLogin)))
	r.Mux.Handle("DELETE /v1/sessions", http.HandlerFunc(h.HandleLogout))
	r.Mux.Handle("GET /v1/me", r.authenticated(http.HandlerFunc(h.HandleMe)))
}

func (r *Router) registerUsers() {
	h := &UserHandler{UserService: r.UserService}

	r.Mux.Handle("POST /v1/users", r.strict(h))
}

func (r *Router) registerPasswordReset() {
	h := &PasswordResetHandler{PasswordResetService: r.PasswordResetService}

	r.Mux.Handle("POST /v1/password-reset", r.strict(http.HandlerFunc(h.HandleRequest)))
	r.Mux.Handle("POST /v1/password-reset/confirm", r.strict(http.HandlerFunc(h.HandleConfirm)))
}

func (r *Router) registerClasses() {
	h := &ClassHandler{ClassService: r.ClassService, GameService: r.GameService}

	r.Mux.Handle("POST /v1/classes", r.authorize(domain.RoleTeacher, http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("POST /v1/classes/join", r.authorize(domain.RoleStudent, http.HandlerFunc(h.HandleJoin)))
	r.Mux.Handle("GET /v1/classes/{id}", r.authenticated(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("GET /v1/classes/{id}/leaderboard", r.authenticated(http.HandlerFunc(h.HandleLeaderboard)))
	r.Mux.Handle("POST /v1/classes/{id}/games", r.authorize(domain.RoleTeacher, http.HandlerFunc(h.HandleCreateGame)))
}

func (r *Router) registerGames() {
	h := &GameHandler{GameService: r.GameService}

	r.Mux.Handle("POST /v1/games/{id}/predictions", r.authorize(domain.RoleStudent, http.HandlerFunc(h.HandlePredict)))
	r.Mux.Handle("POST /v1/games/{id}/resolve", r.authorize(domain.RoleTeacher, http.HandlerFunc(h.HandleResolve)))
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{ClassService: r.ClassService}

	r.Mux.Handle("GET /v1/admin/classes", r.authorize(domain.RoleAdmin, http.HandlerFunc(h.HandleListClasses)))
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}

	r.Mux.Handle("POST /v1/bootstrap", r.strict(h))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
