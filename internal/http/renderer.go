package httpx

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/suilance/suilance-ui-api/internal/domain/model"
	"github.com/suilance/suilance-ui-api/internal/http/uiutil"
)

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the provided config.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	renderer := &TemplateRenderer{logger: cfg.Logger}

	var t *template.Template
	funcs := templateFuncs(&t)
	var err error
	t, err = template.New("root").Funcs(funcs).ParseFS(cfg.TemplateFS,
		"*.tmpl",
		"pages/*.tmpl",
		"partials/*.tmpl",
	)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed",
				slog.Any("error", err),
				slog.String("phase", "initialization"),
			)
		}
		return nil, err
	}
	renderer.t = t
	return renderer, nil
}

// RenderFull renders the full page (layout + page content).
func (r *TemplateRenderer) RenderFull(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "layout", data)
}

// RenderError renders an error page using the error template.
func (r *TemplateRenderer) RenderError(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "error-layout", data)
}

func (r *TemplateRenderer) renderTemplate(w http.ResponseWriter, templateName string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, templateName, data); err != nil {
		r.logTemplateError(templateName, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		r.logTemplateError(templateName, err)
		return err
	}

	return nil
}

// logTemplateError logs a template execution error with context.
func (r *TemplateRenderer) logTemplateError(templateName string, err error) {
	if r.logger == nil || err == nil {
		return
	}
	r.logger.Error("template execution failed",
		slog.String("template", templateName),
		slog.Any("error", err),
	)
}

// templateFuncs builds the FuncMap shared by all templates. The template
// pointer is indirected so "renderContent" can dispatch to the per-page
// content template after parsing completes.
func templateFuncs(t **template.Template) template.FuncMap {
	return template.FuncMap{
		"renderContent": func(currentPage string, data any) (template.HTML, error) {
			var buf bytes.Buffer
			if err := (*t).ExecuteTemplate(&buf, ContentTemplateFor(currentPage), data); err != nil {
				return "", err
			}
			//nolint:gosec // output of our own trusted templates
			return template.HTML(buf.String()), nil
		},
		"timeAgo":     uiutil.FriendlyRelativeTime,
		"friendlyAt":  uiutil.FormatFriendlyDateTime,
		"shortWallet": uiutil.ShortWallet,
		"truncate":    uiutil.TruncateWithEllipsis,
		"unixMilli":   time.UnixMilli,
		"formatSui":   formatSui,
		"priceBadge":  priceBadge,
		"statusClass": statusClass,
		"tierClass":   tierClass,
	}
}

// formatSui renders a stored decimal price for display, trimming trailing
// zeros ("1.50" becomes "1.5 SUI").
func formatSui(price string) string {
	s := strings.TrimSpace(price)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "" {
		s = "0"
	}
	return s + " SUI"
}

// priceBadge picks the badge style for a job price. Jobs paying at least one
// SUI get the gold badge.
func priceBadge(price string) string {
	v, err := model.ParsePrice(price)
	if err != nil {
		return "badge-silver"
	}
	if v >= 1.0 {
		return "badge-gold"
	}
	return "badge-silver"
}

// statusClass maps a job status to its CSS badge class.
func statusClass(status model.JobStatus) string {
	return "status-" + strings.ToLower(string(status))
}

// tierClass maps a reputation tier name to its CSS badge class.
func tierClass(tier string) string {
	return "tier-" + strings.ToLower(tier)
}
