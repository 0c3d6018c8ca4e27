package httpx

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	suilance "github.com/suilance/suilance-ui-api"
	"github.com/suilance/suilance-ui-api/internal/adapters/walletauth"
	domainauth "github.com/suilance/suilance-ui-api/internal/domain/auth"
	"github.com/suilance/suilance-ui-api/internal/service"
)

// RouterServices groups the services the router wires into handlers.
type RouterServices struct {
	Lifecycle    *service.LifecycleService
	Reputation   *service.ReputationService
	Auth         *service.AuthService
	Wallet       *walletauth.Provider
	CookieDomain string
	PollInterval time.Duration
	IsDev        bool
	Logger       *slog.Logger
}

// NewRouter builds the HTTP route tree: the connect flow, the three
// dashboards with their polled fragments, health, and static assets.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ui, err := setupUIHandlers(services, logger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	requireClient := RequireRoleBrowser(services.Auth, domainauth.RoleClient)
	requireFreelancer := RequireRoleBrowser(services.Auth, domainauth.RoleFreelancer)
	requireWallet := RequireWalletBrowser(services.Auth)

	// Connect flow. The session is attached when present so an already
	// connected wallet skips the form.
	mux.Handle("GET /connect", attachSession(services.Auth, http.HandlerFunc(ui.ConnectPage)))
	mux.HandleFunc("POST /connect", ui.Connect)
	mux.HandleFunc("POST /disconnect", ui.Disconnect)

	// Client dashboard.
	mux.Handle("GET /client", requireClient(http.HandlerFunc(ui.ClientDashboard)))
	mux.Handle("GET /client/jobs", requireClient(http.HandlerFunc(ui.ClientJobsFragment)))
	mux.Handle("POST /client/jobs", requireClient(http.HandlerFunc(ui.PostJob)))
	mux.Handle("POST /client/jobs/{id}/fund", requireClient(http.HandlerFunc(ui.FundJob)))
	mux.Handle("POST /client/jobs/{id}/approve", requireClient(http.HandlerFunc(ui.ApproveJob)))
	mux.Handle("POST /client/jobs/{id}/revision", requireClient(http.HandlerFunc(ui.RequestRevision)))
	mux.Handle("POST /client/jobs/{id}/refund", requireClient(http.HandlerFunc(ui.RefundJob)))

	// Freelancer dashboard.
	mux.Handle("GET /freelancer", requireFreelancer(http.HandlerFunc(ui.FreelancerDashboard)))
	mux.Handle("GET /freelancer/jobs", requireFreelancer(http.HandlerFunc(ui.FreelancerJobsFragment)))
	mux.Handle("POST /freelancer/jobs/{id}/submit", requireFreelancer(http.HandlerFunc(ui.SubmitWork)))

	// Marketplace: open jobs, advisories, accepting. Freelancer only.
	mux.Handle("GET /marketplace", requireFreelancer(http.HandlerFunc(ui.MarketplaceDashboard)))
	mux.Handle("GET /marketplace/jobs", requireFreelancer(http.HandlerFunc(ui.MarketplaceJobsFragment)))
	mux.Handle("GET /marketplace/jobs/{id}/advisory", requireFreelancer(http.HandlerFunc(ui.JobAdvisory)))
	mux.Handle("POST /marketplace/jobs/{id}/accept", requireFreelancer(http.HandlerFunc(ui.AcceptJob)))

	mux.HandleFunc("GET /healthz", HealthHandler)
	mux.HandleFunc("HEAD /healthz", HealthHandler)

	staticHandler, err := staticFileServer(services.IsDev)
	if err != nil {
		return nil, err
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", staticHandler))

	// Root routes to the session's dashboard, or to connect.
	mux.Handle("GET /{$}", attachSession(services.Auth, http.HandlerFunc(rootRedirect)))

	// Everything else is a 404 through the UI handler so browsers get a page.
	mux.Handle("/", requireWallet(http.HandlerFunc(ui.NotFound)))

	return mux, nil
}

func setupUIHandlers(services RouterServices, logger *slog.Logger) (*UIHandlers, error) {
	templateFS, err := templateFilesystem(services.IsDev)
	if err != nil {
		return nil, err
	}
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: templateFS, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return NewUIHandlers(UIHandlersOptions{
		Renderer:     renderer,
		Lifecycle:    services.Lifecycle,
		Reputation:   services.Reputation,
		Auth:         services.Auth,
		Wallet:       services.Wallet,
		CookieDomain: services.CookieDomain,
		PollInterval: services.PollInterval,
		Logger:       logger,
	}), nil
}

// templateFilesystem picks disk templates in dev for hot reloading and the
// embedded copy otherwise.
func templateFilesystem(isDev bool) (fs.FS, error) {
	if isDev {
		if _, err := os.Stat(TemplatePathFromRoot); err == nil {
			return os.DirFS(TemplatePathFromRoot), nil
		}
	}
	return fs.Sub(suilance.TemplateFS, "frontend/templates")
}

// staticFileServer serves frontend assets, from disk in dev and from the
// embedded filesystem in production.
func staticFileServer(isDev bool) (http.Handler, error) {
	if isDev {
		if _, err := os.Stat("frontend/static"); err == nil {
			return http.FileServer(http.FS(os.DirFS("frontend/static"))), nil
		}
	}
	sub, err := fs.Sub(suilance.StaticFS, "frontend/static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	return http.FileServer(http.FS(sub)), nil
}

// attachSession puts the session into the context when the cookie resolves,
// without requiring one.
func attachSession(authSvc AuthServiceInterface, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session := getSessionFromRequest(r, authSvc); session != nil {
			r = r.WithContext(SetSessionInContext(r.Context(), session))
		}
		next.ServeHTTP(w, r)
	})
}

// rootRedirect sends the browser to the right entry page for its session.
func rootRedirect(w http.ResponseWriter, r *http.Request) {
	if session := GetSessionFromContext(r.Context()); session != nil {
		http.Redirect(w, r, homeForRole(session.Role), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/connect", http.StatusSeeOther)
}
