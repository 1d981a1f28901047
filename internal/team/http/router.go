package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/orthonext/team/internal/team/service"
	"github.com/orthonext/team/internal/team/store"
	"github.com/orthonext/team/pkg/httpx"
	"github.com/orthonext/team/pkg/slogx"

	_ "github.com/orthonext/team/api/team" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	DirectoryService *service.DirectoryService
	InviteService    *service.InviteService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerInvites()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Orthonext Team Directory API
//	@version		0.1.0
//	@description	Directory of orthopedic surgeons with profile search and directed team invites.
//	@description
//	@description				Requests on behalf of a user carry the X-User-ID header set by the gateway after authentication.
//
//	@contact.name				Team Orthonext
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	UserID
//	@in							header
//	@name						X-User-ID
//	@description				Authenticated user id (ULID), injected by the gateway.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{DirectoryService: r.DirectoryService}

	// Registration and login check credentials: strict limit by IP
	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	reads := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.IdentityMiddleware(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}
	r.Mux.Handle("GET /v1/users", reads(h.HandleSearch))
	r.Mux.Handle("GET /v1/users/{id}", reads(h.HandleGet))
	r.Mux.Handle("GET /v1/me", reads(h.HandleMe))

	r.Mux.Handle("PATCH /v1/me/profile",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateProfile),
			httpx.IdentityMiddleware(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{InviteService: r.InviteService}

	writes := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.IdentityMiddleware(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}
	reads := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.IdentityMiddleware(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("POST /v1/invites", writes(h.HandleSend))
	r.Mux.Handle("POST /v1/invites/{id}/respond", writes(h.HandleRespond))
	r.Mux.Handle("GET /v1/invites/incoming", reads(h.HandleIncoming))
	r.Mux.Handle("GET /v1/invites/outgoing", reads(h.HandleOutgoing))
	r.Mux.Handle("GET /v1/inbox", reads(h.HandleInbox))
}

func (r *Router) registerSystem() {
	public := func(h http.Handler) http.Handler {
		return httpx.Chain(h, httpx.RateLimitByIP(httpx.PublicLimit))
	}

	r.Mux.Handle("GET /health", public(HealthHandler()))
	r.Mux.Handle("GET /livez", public(LivezHandler(r.startTime, r.buildVersion)))
	r.Mux.Handle("GET /readyz", public(ReadyzHandler(r.startTime, r.buildVersion, r.store)))
}
