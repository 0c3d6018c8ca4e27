package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/suilance/suilance-ui-api/internal/adapters/walletauth"
	apperrors "github.com/suilance/suilance-ui-api/internal/errors"
	"github.com/suilance/suilance-ui-api/internal/http/ui/viewmodel"
	"github.com/suilance/suilance-ui-api/internal/http/uiutil"
	"github.com/suilance/suilance-ui-api/internal/service"
)

const defaultPollInterval = 3 * time.Second

// UIHandlers carries the dependencies shared by all server-rendered pages.
type UIHandlers struct {
	t            *TemplateRenderer
	lifecycle    *service.LifecycleService
	reputation   *service.ReputationService
	auth         *service.AuthService
	wallet       *walletauth.Provider
	cookieDomain string
	pollInterval time.Duration
	logger       *slog.Logger
}

// UIHandlersOptions groups dependencies for NewUIHandlers.
type UIHandlersOptions struct {
	Renderer     *TemplateRenderer
	Lifecycle    *service.LifecycleService
	Reputation   *service.ReputationService
	Auth         *service.AuthService
	Wallet       *walletauth.Provider
	CookieDomain string        // empty means host-only cookies
	PollInterval time.Duration // default 3s when zero
	Logger       *slog.Logger
}

// NewUIHandlers constructs the UI handler set.
func NewUIHandlers(opts UIHandlersOptions) *UIHandlers {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	poll := opts.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}
	return &UIHandlers{
		t:            opts.Renderer,
		lifecycle:    opts.Lifecycle,
		reputation:   opts.Reputation,
		auth:         opts.Auth,
		wallet:       opts.Wallet,
		cookieDomain: opts.CookieDomain,
		pollInterval: poll,
		logger:       logger,
	}
}

// PageMeta describes the chrome of one page.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout assembles the shared layout data from page metadata and the
// session in the request context.
func (h *UIHandlers) buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
	}
	if session := GetSessionFromContext(r.Context()); session != nil {
		layout.IsAuthenticated = true
		layout.User = &viewmodel.User{
			Wallet:      session.Wallet,
			WalletShort: uiutil.ShortWallet(session.Wallet),
			Role:        string(session.Role),
		}
	}
	return layout
}

// PollSeconds is exposed to templates driving the htmx refresh interval.
func (h *UIHandlers) PollSeconds() int {
	return int(h.pollInterval.Seconds())
}

// renderPage writes a full page. When htmx asks for a partial navigation the
// response carries only the content template plus an out-of-band title swap,
// so the browser chrome updates without a full reload.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, currentPage string, data any) {
	if WantsPartial(r) {
		h.renderPartialPage(w, r, currentPage, data)
		return
	}
	if err := h.t.RenderFull(w, r, data); err != nil {
		h.logAndRenderTemplateError(w, r, err)
	}
}

func (h *UIHandlers) renderPartialPage(w http.ResponseWriter, r *http.Request, currentPage string, data any) {
	var buf bytes.Buffer
	if err := h.t.t.ExecuteTemplate(&buf, ContentTemplateFor(currentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err)
		return
	}

	title := currentPage
	if lp, ok := data.(viewmodel.LayoutProvider); ok && lp.LayoutData() != nil {
		title = lp.LayoutData().Title
	}
	buf.WriteString(`<title hx-swap-oob="true">`)
	buf.WriteString(template.HTMLEscapeString(title))
	buf.WriteString(`</title>`)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	setFragmentCacheHeaders(w)
	_, _ = buf.WriteTo(w)
}

// renderFragment writes one named template as an htmx fragment response.
// Fragments are polled, so caches must never hold them.
func (h *UIHandlers) renderFragment(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	var buf bytes.Buffer
	if err := h.t.t.ExecuteTemplate(&buf, templateName, data); err != nil {
		h.logger.Error("fragment render failed",
			slog.String("template", templateName),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	setFragmentCacheHeaders(w)
	_, _ = buf.WriteTo(w)
}

func setFragmentCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Add("Vary", "HX-Request")
}

// errorPage is the data handed to the error template.
type errorPage struct {
	viewmodel.Layout
	Status  int
	Message string
}

// LayoutData implements viewmodel.LayoutProvider.
func (p *errorPage) LayoutData() *viewmodel.Layout { return &p.Layout }

// handleUIError translates a service error into the right response shape:
// an error page for browsers, an inline toast for htmx actions, and JSON for
// API callers.
func (h *UIHandlers) handleUIError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	message := userFacingMessage(err)

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("method", r.Method),
			slog.Any("error", err),
		)
	} else {
		h.logger.Info("request rejected",
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}

	if IsHTMX(r) {
		var buf bytes.Buffer
		if tmplErr := h.t.t.ExecuteTemplate(&buf, "toast", map[string]string{"Level": "error", "Message": message}); tmplErr != nil {
			http.Error(w, message, status)
			return
		}
		h.triggerToast(w, "error", message)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		setFragmentCacheHeaders(w)
		w.WriteHeader(status)
		_, _ = buf.WriteTo(w)
		return
	}
	if !IsBrowserRequest(r) {
		WriteAppError(w, err)
		return
	}
	h.renderErrorPage(w, r, status, message)
}

func (h *UIHandlers) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := &errorPage{
		Layout:  h.buildLayout(r, PageMeta{Title: "Something went wrong", PageTitle: "Error"}),
		Status:  status,
		Message: message,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.t.RenderError(w, r, data); err != nil {
		http.Error(w, message, status)
	}
}

func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("page render failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	http.Error(w, "template error", http.StatusInternalServerError)
}

// triggerToast sets an HX-Trigger header the frontend listens to for toast
// notifications.
func (h *UIHandlers) triggerToast(w http.ResponseWriter, level, message string) {
	SetHXTrigger(w, "toast", map[string]string{"level": level, "message": message})
}

// userFacingMessage picks the message shown to the user for an error. App
// errors carry a presentable message; anything else gets a generic line.
func userFacingMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Field != "" {
			return fmt.Sprintf("%s: %s", appErr.Field, appErr.Message)
		}
		return appErr.Message
	}
	if statusForError(err) >= http.StatusInternalServerError {
		return "Something went wrong. Please try again."
	}
	return err.Error()
}

// NotFound renders the error page for unmatched browser routes and JSON for
// everything else.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if IsBrowserRequest(r) {
		h.renderErrorPage(w, r, http.StatusNotFound, "The page you are looking for does not exist.")
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusNotFound,
		ErrCode: "not_found",
		Err:     fmt.Errorf("no route for %s %s", r.Method, r.URL.Path),
	})
}
