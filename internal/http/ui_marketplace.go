package httpx

import (
	"net/http"

	"github.com/suilance/suilance-ui-api/internal/http/ui/viewmodel"
)

// marketplacePage is the data for the open-jobs marketplace.
type marketplacePage struct {
	viewmodel.Layout
	Jobs        []viewmodel.Job
	Summary     viewmodel.ReputationSummary
	PollSeconds int
}

// LayoutData implements viewmodel.LayoutProvider.
func (p *marketplacePage) LayoutData() *viewmodel.Layout { return &p.Layout }

// marketplaceJobsFragment is the data for the polled open-jobs list.
type marketplaceJobsFragment struct {
	Jobs []viewmodel.Job
}

// advisoryFragment is the data for one job's match advisory.
type advisoryFragment struct {
	JobID    string
	Category string
	Message  string
}

// MarketplaceDashboard renders the open jobs a freelancer can accept,
// alongside their own reputation so the advisories have context.
func (h *UIHandlers) MarketplaceDashboard(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.lifecycle.ListOpen(r.Context())
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}
	summary, err := h.reputation.SummaryFor(r.Context(), SessionWallet(r.Context()))
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}

	data := &marketplacePage{
		Layout: h.buildLayout(r, PageMeta{
			Title:       "Marketplace · Suilance",
			PageTitle:   "Marketplace",
			CurrentPage: PageMarketplace,
		}),
		Jobs:        viewmodel.NewJobs(jobs),
		Summary:     viewmodel.NewReputationSummary(summary),
		PollSeconds: h.PollSeconds(),
	}
	h.renderPage(w, r, PageMarketplace, data)
}

// MarketplaceJobsFragment serves the polled open-jobs fragment.
func (h *UIHandlers) MarketplaceJobsFragment(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.lifecycle.ListOpen(r.Context())
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}
	h.renderFragment(w, r, "marketplace-jobs", &marketplaceJobsFragment{Jobs: viewmodel.NewJobs(jobs)})
}

// JobAdvisory serves the match advisory fragment for one open job. The
// advisory is informational; the accept button stays enabled either way.
func (h *UIHandlers) JobAdvisory(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")
	adv, err := h.lifecycle.Advisory(r.Context(), SessionWallet(r.Context()), jobID)
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}
	h.renderFragment(w, r, "job-advisory", &advisoryFragment{
		JobID:    jobID,
		Category: string(adv.Category),
		Message:  adv.Message,
	})
}

// AcceptJob claims an open job for the connected freelancer.
func (h *UIHandlers) AcceptJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.lifecycle.Accept(r.Context(), SessionWallet(r.Context()), r.PathValue("id"))
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}

	// The job now lives on the freelancer's own dashboard.
	if IsHTMX(r) {
		h.triggerToast(w, "success", "Accepted \""+job.Title+"\".")
		SetHXRedirect(w, "/freelancer")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/freelancer", http.StatusSeeOther)
}
