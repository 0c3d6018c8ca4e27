package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/suilance/suilance-ui-api/internal/core"
	"github.com/suilance/suilance-ui-api/internal/domain/advisory"
	"github.com/suilance/suilance-ui-api/internal/domain/model"
	apperrors "github.com/suilance/suilance-ui-api/internal/errors"
)

// LifecycleServiceOptions groups dependencies for LifecycleService.
type LifecycleServiceOptions struct {
	Jobs       core.JobStore
	Chain      core.ChainBridge
	Contract   core.Contract
	Reputation *ReputationService
	Logger     *slog.Logger
}

// LifecycleService orchestrates the job lifecycle across the signer bridge
// and the job store. Every operation that moves money settles on-chain first
// and writes to the store only after the bridge confirms; a failed settlement
// leaves the stored record untouched.
type LifecycleService struct {
	jobs       core.JobStore
	chain      core.ChainBridge
	contract   core.Contract
	reputation *ReputationService
	logger     *slog.Logger
}

// NewLifecycleService constructs a new LifecycleService.
func NewLifecycleService(opts LifecycleServiceOptions) *LifecycleService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &LifecycleService{
		jobs:       opts.Jobs,
		chain:      opts.Chain,
		contract:   opts.Contract,
		reputation: opts.Reputation,
		logger:     logger,
	}
}

// List returns all jobs, newest first.
func (s *LifecycleService) List(ctx context.Context) ([]model.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt > jobs[j].CreatedAt
	})
	return jobs, nil
}

// ListForClient returns the jobs posted by the given wallet, newest first.
func (s *LifecycleService) ListForClient(ctx context.Context, wallet string) ([]model.Job, error) {
	return s.listWhere(ctx, func(j model.Job) bool {
		return strings.EqualFold(j.Creator, wallet)
	})
}

// ListForFreelancer returns the jobs the given wallet has worked on, newest first.
func (s *LifecycleService) ListForFreelancer(ctx context.Context, wallet string) ([]model.Job, error) {
	return s.listWhere(ctx, func(j model.Job) bool {
		return j.Freelancer != "" && strings.EqualFold(j.Freelancer, wallet)
	})
}

// ListOpen returns the jobs currently available to accept, newest first.
// Only Funded jobs are open; Posted jobs have no escrow yet.
func (s *LifecycleService) ListOpen(ctx context.Context) ([]model.Job, error) {
	return s.listWhere(ctx, func(j model.Job) bool {
		return j.Status == model.JobStatusFunded
	})
}

// Get returns one job by store ID.
func (s *LifecycleService) Get(ctx context.Context, id string) (*model.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i], nil
		}
	}
	return nil, apperrors.NotFoundf("job %s not found", id)
}

// Post creates a job object on-chain and records it in the store as Posted.
func (s *LifecycleService) Post(ctx context.Context, creator string, req model.CreateJobRequest) (*model.Job, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid job")
	}
	priceMist, err := model.ParsePriceToMist(req.Price)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid price")
	}

	settlement, err := s.chain.Call(ctx, s.contract.CreateJob(priceMist))
	if err != nil {
		return nil, err
	}
	suiID := settlement.CreatedObjectID()
	if suiID == "" {
		return nil, apperrors.Internalf("create_job settled (digest %s) but effects contain no job object", settlement.Digest)
	}

	job, err := s.jobs.Create(ctx, model.Job{
		SuiID:       suiID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Status:      model.JobStatusPosted,
		Creator:     creator,
		CreatedAt:   time.Now().UnixMilli(),
	})
	if err != nil {
		return nil, fmt.Errorf("record posted job (digest %s): %w", settlement.Digest, err)
	}

	s.logger.Info("job posted", "job_id", job.ID, "sui_id", suiID, "digest", settlement.Digest)
	return job, nil
}

// Fund locks the job's price in a new escrow object and marks the job Funded.
// Only the posting client may fund.
func (s *LifecycleService) Fund(ctx context.Context, clientWallet, jobID string) (*model.Job, error) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := requireClient(job, clientWallet); err != nil {
		return nil, err
	}
	if err := requireTransition(job, model.JobStatusFunded); err != nil {
		return nil, err
	}
	priceMist, err := model.ParsePriceToMist(job.Price)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "stored price for job %s is unusable", job.ID)
	}

	settlement, err := s.chain.Call(ctx, s.contract.CreateEscrow(job.SuiID, priceMist))
	if err != nil {
		return nil, err
	}
	escrowID := settlement.CreatedObjectID()
	if escrowID == "" {
		return nil, apperrors.Internalf("create_escrow settled (digest %s) but effects contain no escrow object", settlement.Digest)
	}

	upd := model.StatusUpdate(model.JobStatusFunded)
	upd.EscrowID = &escrowID
	updated, err := s.jobs.Update(ctx, job.ID, upd)
	if err != nil {
		return nil, fmt.Errorf("record funded job (digest %s): %w", settlement.Digest, err)
	}

	s.logger.Info("job funded", "job_id", job.ID, "escrow_id", escrowID, "digest", settlement.Digest)
	return updated, nil
}

// Accept claims a funded job for the freelancer and snapshots their
// reputation onto the job record.
func (s *LifecycleService) Accept(ctx context.Context, freelancerWallet, jobID string) (*model.Job, error) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(job.Creator, freelancerWallet) {
		return nil, apperrors.Conflict("a client cannot accept their own job")
	}
	if err := requireTransition(job, model.JobStatusAccepted); err != nil {
		return nil, err
	}

	summary, err := s.reputation.SummaryFor(ctx, freelancerWallet)
	if err != nil {
		return nil, err
	}

	settlement, err := s.chain.Call(ctx, s.contract.AcceptJob(job.SuiID))
	if err != nil {
		return nil, err
	}

	status := model.JobStatusAccepted
	tier := string(summary.Tier)
	updated, err := s.jobs.Update(ctx, job.ID, model.JobUpdate{
		Status:          &status,
		Freelancer:      &freelancerWallet,
		FreelancerScore: &summary.Score,
		FreelancerTier:  &tier,
	})
	if err != nil {
		return nil, fmt.Errorf("record accepted job (digest %s): %w", settlement.Digest, err)
	}

	s.logger.Info("job accepted", "job_id", job.ID, "freelancer", freelancerWallet, "tier", tier, "digest", settlement.Digest)
	return updated, nil
}

// Submit records the freelancer's delivery on-chain and moves the job to
// Submitted. Submitting again after a rejection follows the same path.
func (s *LifecycleService) Submit(ctx context.Context, freelancerWallet, jobID string, req model.SubmitWorkRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid submission")
	}
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := requireFreelancer(job, freelancerWallet); err != nil {
		return nil, err
	}
	if err := requireTransition(job, model.JobStatusSubmitted); err != nil {
		return nil, err
	}

	settlement, err := s.chain.Call(ctx, s.contract.SubmitWork(job.SuiID, req.Proof, req.Key))
	if err != nil {
		return nil, err
	}

	upd := model.StatusUpdate(model.JobStatusSubmitted)
	upd.Proof = &req.Proof
	upd.Key = &req.Key
	updated, err := s.jobs.Update(ctx, job.ID, upd)
	if err != nil {
		return nil, fmt.Errorf("record submission (digest %s): %w", settlement.Digest, err)
	}

	s.logger.Info("work submitted", "job_id", job.ID, "digest", settlement.Digest)
	return updated, nil
}

// Approve releases escrow to the freelancer, completes the job, and issues
// the freelancer one reputation record. The record write happens after the
// money has moved; if it fails the approval still stands and the failure is
// only logged.
func (s *LifecycleService) Approve(ctx context.Context, clientWallet, jobID string, rating int, comment string) (*model.Job, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.ValidationField("rating", "rating must be between 1 and 5")
	}
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := requireClient(job, clientWallet); err != nil {
		return nil, err
	}
	if err := requireTransition(job, model.JobStatusCompleted); err != nil {
		return nil, err
	}
	if job.EscrowID == "" {
		return nil, apperrors.Internalf("job %s has no escrow on record", job.ID)
	}

	settlement, err := s.chain.Call(ctx, s.contract.ReleaseFunds(job.EscrowID, job.SuiID))
	if err != nil {
		return nil, err
	}

	updated, err := s.jobs.Update(ctx, job.ID, model.StatusUpdate(model.JobStatusCompleted))
	if err != nil {
		return nil, fmt.Errorf("record completed job (digest %s): %w", settlement.Digest, err)
	}

	record := model.ReputationRecord{
		FreelancerWallet: job.Freelancer,
		ClientWallet:     job.Creator,
		JobTitle:         job.Title,
		JobPrice:         job.Price,
		Rating:           rating,
		Comment:          comment,
		IssuedAt:         time.Now().UnixMilli(),
	}
	if _, recErr := s.reputation.records.Create(ctx, record); recErr != nil {
		s.logger.Warn("reputation record not written", "job_id", job.ID, "freelancer", job.Freelancer, "error", recErr)
	}

	s.logger.Info("job completed", "job_id", job.ID, "rating", rating, "digest", settlement.Digest)
	return updated, nil
}

// RequestRevision sends a submission back to the freelancer. This is a store
// only operation; escrow stays locked and nothing settles on-chain.
func (s *LifecycleService) RequestRevision(ctx context.Context, clientWallet, jobID string) (*model.Job, error) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := requireClient(job, clientWallet); err != nil {
		return nil, err
	}
	if err := requireTransition(job, model.JobStatusRejected); err != nil {
		return nil, err
	}

	updated, err := s.jobs.Update(ctx, job.ID, model.StatusUpdate(model.JobStatusRejected))
	if err != nil {
		return nil, fmt.Errorf("record revision request: %w", err)
	}

	s.logger.Info("revision requested", "job_id", job.ID)
	return updated, nil
}

// Refund returns escrowed funds to the client and closes the job. Allowed
// while the job is Funded or Submitted.
func (s *LifecycleService) Refund(ctx context.Context, clientWallet, jobID string) (*model.Job, error) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := requireClient(job, clientWallet); err != nil {
		return nil, err
	}
	if err := requireTransition(job, model.JobStatusRefunded); err != nil {
		return nil, err
	}
	if job.EscrowID == "" {
		return nil, apperrors.Internalf("job %s has no escrow on record", job.ID)
	}

	settlement, err := s.chain.Call(ctx, s.contract.Refund(job.EscrowID))
	if err != nil {
		return nil, err
	}

	updated, err := s.jobs.Update(ctx, job.ID, model.StatusUpdate(model.JobStatusRefunded))
	if err != nil {
		return nil, fmt.Errorf("record refunded job (digest %s): %w", settlement.Digest, err)
	}

	s.logger.Info("job refunded", "job_id", job.ID, "digest", settlement.Digest)
	return updated, nil
}

// Advisory evaluates the match between a freelancer and an open job. The
// result is informational only and never blocks an accept.
func (s *LifecycleService) Advisory(ctx context.Context, freelancerWallet, jobID string) (advisory.Advisory, error) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return advisory.Advisory{}, err
	}
	price, err := model.ParsePrice(job.Price)
	if err != nil {
		return advisory.Advisory{}, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "stored price for job %s is unusable", job.ID)
	}
	summary, err := s.reputation.SummaryFor(ctx, freelancerWallet)
	if err != nil {
		return advisory.Advisory{}, err
	}
	return advisory.Evaluate(summary.Score, price), nil
}

func (s *LifecycleService) listWhere(ctx context.Context, keep func(model.Job) bool) ([]model.Job, error) {
	jobs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := jobs[:0:0]
	for _, j := range jobs {
		if keep(j) {
			out = append(out, j)
		}
	}
	return out, nil
}

func requireTransition(job *model.Job, to model.JobStatus) error {
	if !model.CanTransition(job.Status, to) {
		return apperrors.Conflictf("job %s cannot move from %s to %s", job.ID, job.Status, to)
	}
	return nil
}

func requireClient(job *model.Job, wallet string) error {
	if !strings.EqualFold(job.Creator, wallet) {
		return apperrors.Conflictf("job %s belongs to a different client", job.ID)
	}
	return nil
}

func requireFreelancer(job *model.Job, wallet string) error {
	if job.Freelancer == "" || !strings.EqualFold(job.Freelancer, wallet) {
		return apperrors.Conflictf("job %s is assigned to a different freelancer", job.ID)
	}
	return nil
}
