package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lif-platforms/mailservice/internal/mail/authz"
	"github.com/lif-platforms/mailservice/internal/mail/domain"
	"github.com/lif-platforms/mailservice/internal/mail/service"
	"github.com/lif-platforms/mailservice/internal/mail/store"
	"github.com/lif-platforms/mailservice/pkg/httpx"
	"github.com/lif-platforms/mailservice/pkg/slogx"

	_ "github.com/lif-platforms/mailservice/api/mail" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store      store.Store
	authorizer authz.Authorizer

	CredentialService *service.CredentialService
	PermissionService *service.PermissionService
	WaitlistService   *service.WaitlistService
	RelayService      *service.RelayService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	authorizer authz.Authorizer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		authorizer:   authorizer,
		logger:       logger,
	}

	// Global middleware chain. CORS is open by design: the waitlist form
	// is posted from browser frontends on other origins.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRoot()
	r.registerWaitlist()
	r.registerAdmin()
	r.registerRelay()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Lif Mail Service API
//	@version		0.1.0
//	@description	Waitlist capture, outbound email relay, and API credential
//	@description	administration for Lif Platforms services. Administrative
//	@description	endpoints are authorized by the external Lif auth server.
//
//	@contact.name	Lif Platforms
//	@contact.url	https://github.com/lif-platforms
//
//	@host		localhost:8005
//	@BasePath	/
//
//	@schemes	http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerRoot() {
	r.Mux.Handle("GET /{$}", WelcomeHandler())
}

func (r *Router) registerWaitlist() {
	h := &WaitlistHandler{WaitlistService: r.WaitlistService}

	r.Mux.Handle("POST /waitlist/ringer", http.HandlerFunc(h.HandleJoin))

	// Admin view of collected signups, gated like the credential routes
	r.Mux.Handle("GET /admin/get_waitlist",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.requirePermission(domain.PermViewWaitlist),
		),
	)
}

func (r *Router) registerAdmin() {
	ch := &CredentialsHandler{CredentialService: r.CredentialService}
	ph := &PermissionsHandler{PermissionService: r.PermissionService}

	r.Mux.Handle("POST /admin/create_credentials",
		httpx.Chain(http.HandlerFunc(ch.HandleCreate),
			r.requirePermission(domain.PermCreateCredentials),
		),
	)

	r.Mux.Handle("DELETE /admin/remove_credentials/{client_id}",
		httpx.Chain(http.HandlerFunc(ch.HandleRemove),
			r.requirePermission(domain.PermRemoveCredentials),
		),
	)

	// POST grants, DELETE revokes; both carry a JSON array of nodes
	modify := httpx.Chain(http.HandlerFunc(ph.HandleModify),
		r.requirePermission(domain.PermModifyPermissions),
	)
	r.Mux.Handle("POST /admin/modify_permissions/{client_id}", modify)
	r.Mux.Handle("DELETE /admin/modify_permissions/{client_id}", modify)

	r.Mux.Handle("GET /admin/get_permissions/{client_id}",
		httpx.Chain(http.HandlerFunc(ph.HandleGet),
			r.requirePermission(domain.PermViewPermissions),
		),
	)
}

func (r *Router) registerRelay() {
	h := &RelayHandler{RelayService: r.RelayService}
	r.Mux.Handle("POST /send_email", http.HandlerFunc(h.HandleSend))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
