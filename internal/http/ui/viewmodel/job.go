package viewmodel

import (
	"time"

	"github.com/suilance/suilance-ui-api/internal/domain/model"
	"github.com/suilance/suilance-ui-api/internal/http/uiutil"
)

// Job is the template-facing shape of a marketplace job. Action flags are
// derived from the lifecycle graph so templates never encode transition rules.
type Job struct {
	ID              string
	SuiID           string
	Title           string
	Description     string
	Price           string
	Status          model.JobStatus
	Creator         string
	CreatorShort    string
	Freelancer      string
	FreelancerShort string
	FreelancerScore float64
	FreelancerTier  string
	EscrowID        string
	Proof           string
	Key             string
	CreatedAt       time.Time

	// ShowKey gates the delivery key; it is revealed only once escrow has
	// been released.
	ShowKey bool

	CanFund    bool
	CanAccept  bool
	CanSubmit  bool
	CanApprove bool
	CanRevise  bool
	CanRefund  bool
}

// NewJob builds the view of one job record.
func NewJob(j model.Job) Job {
	return Job{
		ID:              j.ID,
		SuiID:           j.SuiID,
		Title:           j.Title,
		Description:     j.Description,
		Price:           j.Price,
		Status:          j.Status,
		Creator:         j.Creator,
		CreatorShort:    uiutil.ShortWallet(j.Creator),
		Freelancer:      j.Freelancer,
		FreelancerShort: uiutil.ShortWallet(j.Freelancer),
		FreelancerScore: j.FreelancerScore,
		FreelancerTier:  j.FreelancerTier,
		EscrowID:        j.EscrowID,
		Proof:           j.Proof,
		Key:             j.Key,
		CreatedAt:       j.CreatedTime(),
		ShowKey:         j.Status == model.JobStatusCompleted,
		CanFund:         model.CanTransition(j.Status, model.JobStatusFunded),
		CanAccept:       model.CanTransition(j.Status, model.JobStatusAccepted),
		CanSubmit:       model.CanTransition(j.Status, model.JobStatusSubmitted),
		CanApprove:      model.CanTransition(j.Status, model.JobStatusCompleted),
		CanRevise:       model.CanTransition(j.Status, model.JobStatusRejected),
		CanRefund:       model.CanTransition(j.Status, model.JobStatusRefunded),
	}
}

// NewJobs maps a slice of job records to their views, preserving order.
func NewJobs(jobs []model.Job) []Job {
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJob(j))
	}
	return out
}
