package httpx

import (
	"net/http"

	"github.com/suilance/suilance-ui-api/internal/domain/model"
	"github.com/suilance/suilance-ui-api/internal/http/ui/viewmodel"
)

// freelancerPage is the data for the freelancer dashboard.
type freelancerPage struct {
	viewmodel.Layout
	Jobs        []viewmodel.Job
	Summary     viewmodel.ReputationSummary
	History     []viewmodel.ReputationRecord
	PollSeconds int
}

// LayoutData implements viewmodel.LayoutProvider.
func (p *freelancerPage) LayoutData() *viewmodel.Layout { return &p.Layout }

// freelancerJobsFragment is the data for the polled freelancer job list.
type freelancerJobsFragment struct {
	Jobs []viewmodel.Job
}

// FreelancerDashboard renders the freelancer's dashboard: their active jobs,
// reputation summary, and rating history.
func (h *UIHandlers) FreelancerDashboard(w http.ResponseWriter, r *http.Request) {
	wallet := SessionWallet(r.Context())

	jobs, err := h.lifecycle.ListForFreelancer(r.Context(), wallet)
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}
	summary, err := h.reputation.SummaryFor(r.Context(), wallet)
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}
	history, err := h.reputation.HistoryFor(r.Context(), wallet)
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}

	data := &freelancerPage{
		Layout: h.buildLayout(r, PageMeta{
			Title:       "My Work · Suilance",
			PageTitle:   "My Work",
			CurrentPage: PageFreelancer,
		}),
		Jobs:        viewmodel.NewJobs(jobs),
		Summary:     viewmodel.NewReputationSummary(summary),
		History:     viewmodel.NewReputationRecords(history),
		PollSeconds: h.PollSeconds(),
	}
	h.renderPage(w, r, PageFreelancer, data)
}

// FreelancerJobsFragment serves the polled job list fragment for the
// freelancer page.
func (h *UIHandlers) FreelancerJobsFragment(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.lifecycle.ListForFreelancer(r.Context(), SessionWallet(r.Context()))
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}
	h.renderFragment(w, r, "freelancer-jobs", &freelancerJobsFragment{Jobs: viewmodel.NewJobs(jobs)})
}

// SubmitWork handles the submission form: proof and delivery key settle
// on-chain before the job moves to Submitted.
func (h *UIHandlers) SubmitWork(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.handleUIError(w, r, err)
		return
	}

	req := model.SubmitWorkRequest{
		Proof: r.PostFormValue("proof"),
		Key:   r.PostFormValue("key"),
	}
	job, err := h.lifecycle.Submit(r.Context(), SessionWallet(r.Context()), r.PathValue("id"), req)
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}

	if !IsHTMX(r) {
		http.Redirect(w, r, "/freelancer", http.StatusSeeOther)
		return
	}
	jobs, err := h.lifecycle.ListForFreelancer(r.Context(), SessionWallet(r.Context()))
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}
	h.triggerToast(w, "success", "Work submitted for \""+job.Title+"\".")
	h.renderFragment(w, r, "freelancer-jobs", &freelancerJobsFragment{Jobs: viewmodel.NewJobs(jobs)})
}
