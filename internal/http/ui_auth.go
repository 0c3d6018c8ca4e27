package httpx

import (
	"log/slog"
	"net/http"

	"github.com/suilance/suilance-ui-api/internal/http/ui/viewmodel"
)

// connectPage is the data for the wallet connect page.
type connectPage struct {
	viewmodel.Layout
	Error string
}

// LayoutData implements viewmodel.LayoutProvider.
func (p *connectPage) LayoutData() *viewmodel.Layout { return &p.Layout }

// ConnectPage renders the wallet connect form. Already connected wallets are
// sent straight to their dashboard.
func (h *UIHandlers) ConnectPage(w http.ResponseWriter, r *http.Request) {
	if session := GetSessionFromContext(r.Context()); session != nil {
		http.Redirect(w, r, homeForRole(session.Role), http.StatusSeeOther)
		return
	}
	h.renderConnectPage(w, r, "")
}

func (h *UIHandlers) renderConnectPage(w http.ResponseWriter, r *http.Request, errMsg string) {
	data := &connectPage{
		Layout: h.buildLayout(r, PageMeta{
			Title:       "Connect Wallet · Suilance",
			PageTitle:   "Connect Wallet",
			CurrentPage: PageConnect,
		}),
		Error: errMsg,
	}
	h.renderPage(w, r, PageConnect, data)
}

// Connect handles the connect form post: resolve the wallet, open a session,
// set the cookie, and send the browser to the role's dashboard.
func (h *UIHandlers) Connect(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderConnectPage(w, r, "Could not read the form. Please try again.")
		return
	}

	wallet, role, err := h.wallet.Resolve(r.PostFormValue("wallet"), r.PostFormValue("role"))
	if err != nil {
		h.logger.Info("connect rejected", slog.Any("error", err))
		h.renderConnectPage(w, r, err.Error())
		return
	}

	session, err := h.auth.Connect(r.Context(), wallet, role)
	if err != nil {
		h.logger.Error("connect failed", slog.Any("error", err))
		h.renderConnectPage(w, r, "Could not open a session. Please try again.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Domain:   h.cookieDomain,
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("wallet connected", slog.String("wallet", wallet), slog.String("role", string(role)))

	target := homeForRole(session.Role)
	if IsHTMX(r) {
		SetHXRedirect(w, target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Disconnect tears down the session and clears the cookie.
func (h *UIHandlers) Disconnect(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.auth.Disconnect(r.Context(), cookie.Value); err != nil {
			// The cookie is cleared regardless; the session will age out of Redis.
			h.logger.Warn("session delete failed", slog.Any("error", err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if IsHTMX(r) {
		SetHXRedirect(w, "/connect")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/connect", http.StatusSeeOther)
}
