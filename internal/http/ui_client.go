package httpx

import (
	"net/http"
	"strconv"

	"github.com/suilance/suilance-ui-api/internal/domain/model"
	"github.com/suilance/suilance-ui-api/internal/http/ui/viewmodel"
)

// clientPage is the data for the client dashboard.
type clientPage struct {
	viewmodel.Layout
	Jobs        []viewmodel.Job
	PollSeconds int
}

// LayoutData implements viewmodel.LayoutProvider.
func (p *clientPage) LayoutData() *viewmodel.Layout { return &p.Layout }

// clientJobsFragment is the data for the polled client job list.
type clientJobsFragment struct {
	Jobs []viewmodel.Job
}

// ClientDashboard renders the client's dashboard: their posted jobs and the
// post-job form.
func (h *UIHandlers) ClientDashboard(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.lifecycle.ListForClient(r.Context(), SessionWallet(r.Context()))
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}

	data := &clientPage{
		Layout: h.buildLayout(r, PageMeta{
			Title:       "My Jobs · Suilance",
			PageTitle:   "My Jobs",
			CurrentPage: PageClient,
		}),
		Jobs:        viewmodel.NewJobs(jobs),
		PollSeconds: h.PollSeconds(),
	}
	h.renderPage(w, r, PageClient, data)
}

// ClientJobsFragment serves the polled job list fragment for the client page.
func (h *UIHandlers) ClientJobsFragment(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.lifecycle.ListForClient(r.Context(), SessionWallet(r.Context()))
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}
	h.renderFragment(w, r, "client-jobs", &clientJobsFragment{Jobs: viewmodel.NewJobs(jobs)})
}

// PostJob handles the post-job form: the job is created on-chain first and
// recorded in the store as Posted.
func (h *UIHandlers) PostJob(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.handleUIError(w, r, err)
		return
	}

	req := model.CreateJobRequest{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Price:       r.PostFormValue("price"),
	}
	job, err := h.lifecycle.Post(r.Context(), SessionWallet(r.Context()), req)
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}

	h.clientActionDone(w, r, "Job \""+job.Title+"\" posted.")
}

// FundJob locks the job's price in escrow.
func (h *UIHandlers) FundJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.lifecycle.Fund(r.Context(), SessionWallet(r.Context()), r.PathValue("id"))
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}
	h.clientActionDone(w, r, "Escrow funded for \""+job.Title+"\".")
}

// ApproveJob releases escrow and rates the freelancer.
func (h *UIHandlers) ApproveJob(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.handleUIError(w, r, err)
		return
	}
	rating, err := strconv.Atoi(r.PostFormValue("rating"))
	if err != nil {
		rating = 0 // out of range, rejected by the service
	}

	job, err := h.lifecycle.Approve(r.Context(), SessionWallet(r.Context()), r.PathValue("id"), rating, r.PostFormValue("comment"))
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}
	h.clientActionDone(w, r, "Work approved and funds released for \""+job.Title+"\".")
}

// RequestRevision sends a submission back to the freelancer.
func (h *UIHandlers) RequestRevision(w http.ResponseWriter, r *http.Request) {
	job, err := h.lifecycle.RequestRevision(r.Context(), SessionWallet(r.Context()), r.PathValue("id"))
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}
	h.clientActionDone(w, r, "Revision requested for \""+job.Title+"\".")
}

// RefundJob returns escrowed funds to the client.
func (h *UIHandlers) RefundJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.lifecycle.Refund(r.Context(), SessionWallet(r.Context()), r.PathValue("id"))
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}
	h.clientActionDone(w, r, "Escrow refunded for \""+job.Title+"\".")
}

// clientActionDone answers a successful client action: htmx gets the fresh
// job list plus a toast, plain form posts get a redirect back to the page.
func (h *UIHandlers) clientActionDone(w http.ResponseWriter, r *http.Request, message string) {
	if !IsHTMX(r) {
		http.Redirect(w, r, "/client", http.StatusSeeOther)
		return
	}

	jobs, err := h.lifecycle.ListForClient(r.Context(), SessionWallet(r.Context()))
	if err != nil {
		h.handleUIError(w, r, err)
		return
	}
	h.triggerToast(w, "success", message)
	h.renderFragment(w, r, "client-jobs", &clientJobsFragment{Jobs: viewmodel.NewJobs(jobs)})
}
