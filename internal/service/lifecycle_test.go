package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/suilance/suilance-ui-api/internal/core"
	"github.com/suilance/suilance-ui-api/internal/domain/advisory"
	"github.com/suilance/suilance-ui-api/internal/domain/model"
	apperrors "github.com/suilance/suilance-ui-api/internal/errors"
	"github.com/suilance/suilance-ui-api/internal/mocks"
)

type lifecycleFixture struct {
	jobs    *mocks.MockJobStore
	records *mocks.MockReputationStore
	chain   *mocks.MockChainBridge
	svc     *LifecycleService
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	jobs := mocks.NewMockJobStore(ctrl)
	records := mocks.NewMockReputationStore(ctrl)
	chain := mocks.NewMockChainBridge(ctrl)

	svc := NewLifecycleService(LifecycleServiceOptions{
		Jobs:       jobs,
		Chain:      chain,
		Contract:   core.NewContract("0xpkg"),
		Reputation: NewReputationService(ReputationServiceOptions{Records: records}),
	})
	return &lifecycleFixture{jobs: jobs, records: records, chain: chain, svc: svc}
}

func settled(digest string, created ...core.CreatedObject) *core.Settlement {
	return &core.Settlement{Digest: digest, Created: created}
}

func storedJob(id string, status model.JobStatus) model.Job {
	return model.Job{
		ID:        id,
		SuiID:     "0xjob-" + id,
		Title:     "Design a logo",
		Price:     "1.5",
		Status:    status,
		Creator:   "0xclient",
		EscrowID:  "0xesc-" + id,
		CreatedAt: 1000,
	}
}

func TestLifecycleService_Post(t *testing.T) {
	f := newLifecycleFixture(t)

	f.chain.EXPECT().Call(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, call core.MoveCall) (*core.Settlement, error) {
			assert.Equal(t, "0xpkg::job::create_job", call.Target())
			assert.Equal(t, []string{"1500000000"}, call.Args)
			return settled("0xd1",
				core.CreatedObject{ObjectID: "0xcoin", ObjectType: "0x2::coin::Coin<0x2::sui::SUI>"},
				core.CreatedObject{ObjectID: "0xjob1", ObjectType: "0xpkg::job::Job"},
			), nil
		})
	f.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, job model.Job) (*model.Job, error) {
			assert.Equal(t, "0xjob1", job.SuiID)
			assert.Equal(t, model.JobStatusPosted, job.Status)
			assert.Equal(t, "0xclient", job.Creator)
			assert.NotZero(t, job.CreatedAt)
			job.ID = "1"
			return &job, nil
		})

	job, err := f.svc.Post(context.Background(), "0xclient", model.CreateJobRequest{
		Title:       "Design a logo",
		Description: "Vector logo for a coffee shop",
		Price:       "1.5",
	})
	require.NoError(t, err)
	assert.Equal(t, "1", job.ID)
}

func TestLifecycleService_Post_SettlementFailureLeavesStoreUntouched(t *testing.T) {
	f := newLifecycleFixture(t)

	f.chain.EXPECT().Call(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Settlement("create_job: user rejected signature"))
	// No Create expectation: a failed settlement must not reach the store.

	_, err := f.svc.Post(context.Background(), "0xclient", model.CreateJobRequest{
		Title:       "Design a logo",
		Description: "Vector logo",
		Price:       "1.5",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsSettlement(err))
}

func TestLifecycleService_Post_InvalidRequest(t *testing.T) {
	f := newLifecycleFixture(t)
	// No chain or store expectations: validation fails first.

	_, err := f.svc.Post(context.Background(), "0xclient", model.CreateJobRequest{
		Title: "No price",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestLifecycleService_Fund(t *testing.T) {
	f := newLifecycleFixture(t)
	job := storedJob("1", model.JobStatusPosted)
	job.EscrowID = ""
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{job}, nil)

	f.chain.EXPECT().Call(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, call core.MoveCall) (*core.Settlement, error) {
			assert.Equal(t, "0xpkg::escrow::create_escrow", call.Target())
			assert.Equal(t, []string{"0xjob-1", "1500000000"}, call.Args)
			return settled("0xd2", core.CreatedObject{ObjectID: "0xesc1", ObjectType: "0xpkg::escrow::Escrow"}), nil
		})
	f.jobs.EXPECT().Update(gomock.Any(), "1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, upd model.JobUpdate) (*model.Job, error) {
			require.NotNil(t, upd.Status)
			assert.Equal(t, model.JobStatusFunded, *upd.Status)
			require.NotNil(t, upd.EscrowID)
			assert.Equal(t, "0xesc1", *upd.EscrowID)
			job.Status = *upd.Status
			job.EscrowID = *upd.EscrowID
			return &job, nil
		})

	updated, err := f.svc.Fund(context.Background(), "0xclient", "1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusFunded, updated.Status)
}

func TestLifecycleService_Fund_WrongClient(t *testing.T) {
	f := newLifecycleFixture(t)
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{storedJob("1", model.JobStatusPosted)}, nil)

	_, err := f.svc.Fund(context.Background(), "0xsomeoneelse", "1")
	assert.True(t, apperrors.IsConflict(err))
}

func TestLifecycleService_Fund_AlreadyFunded(t *testing.T) {
	f := newLifecycleFixture(t)
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{storedJob("1", model.JobStatusFunded)}, nil)
	// No chain expectation: the transition check fails before any settlement.

	_, err := f.svc.Fund(context.Background(), "0xclient", "1")
	assert.True(t, apperrors.IsConflict(err))
}

func TestLifecycleService_Accept_SnapshotsReputation(t *testing.T) {
	f := newLifecycleFixture(t)
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{storedJob("1", model.JobStatusFunded)}, nil)

	recs := make([]model.ReputationRecord, 5)
	for i := range recs {
		recs[i] = model.ReputationRecord{FreelancerWallet: "0xfree", ClientWallet: "0xc", Rating: 5}
	}
	f.records.EXPECT().List(gomock.Any()).Return(recs, nil)

	f.chain.EXPECT().Call(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, call core.MoveCall) (*core.Settlement, error) {
			assert.Equal(t, "0xpkg::job::accept_job", call.Target())
			return settled("0xd3"), nil
		})
	f.jobs.EXPECT().Update(gomock.Any(), "1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, upd model.JobUpdate) (*model.Job, error) {
			require.NotNil(t, upd.Freelancer)
			assert.Equal(t, "0xfree", *upd.Freelancer)
			require.NotNil(t, upd.FreelancerScore)
			assert.InDelta(t, 4.5, *upd.FreelancerScore, 0.001)
			require.NotNil(t, upd.FreelancerTier)
			assert.Equal(t, "PROFESSIONAL", *upd.FreelancerTier)
			j := storedJob("1", model.JobStatusAccepted)
			return &j, nil
		})

	_, err := f.svc.Accept(context.Background(), "0xfree", "1")
	require.NoError(t, err)
}

func TestLifecycleService_Accept_OwnJob(t *testing.T) {
	f := newLifecycleFixture(t)
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{storedJob("1", model.JobStatusFunded)}, nil)

	_, err := f.svc.Accept(context.Background(), "0xclient", "1")
	assert.True(t, apperrors.IsConflict(err))
}

func TestLifecycleService_Submit_AfterRejection(t *testing.T) {
	f := newLifecycleFixture(t)
	job := storedJob("1", model.JobStatusRejected)
	job.Freelancer = "0xfree"
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{job}, nil)

	f.chain.EXPECT().Call(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, call core.MoveCall) (*core.Settlement, error) {
			assert.Equal(t, "0xpkg::submission::submit_work", call.Target())
			assert.Equal(t, []string{"0xjob-1", "https://proof", "key-v2"}, call.Args)
			return settled("0xd4"), nil
		})
	f.jobs.EXPECT().Update(gomock.Any(), "1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, upd model.JobUpdate) (*model.Job, error) {
			require.NotNil(t, upd.Status)
			assert.Equal(t, model.JobStatusSubmitted, *upd.Status)
			require.NotNil(t, upd.Proof)
			require.NotNil(t, upd.Key)
			j := storedJob("1", model.JobStatusSubmitted)
			return &j, nil
		})

	_, err := f.svc.Submit(context.Background(), "0xfree", "1", model.SubmitWorkRequest{
		Proof: "https://proof",
		Key:   "key-v2",
	})
	require.NoError(t, err)
}

func TestLifecycleService_Submit_WrongFreelancer(t *testing.T) {
	f := newLifecycleFixture(t)
	job := storedJob("1", model.JobStatusAccepted)
	job.Freelancer = "0xfree"
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{job}, nil)

	_, err := f.svc.Submit(context.Background(), "0xother", "1", model.SubmitWorkRequest{Proof: "p", Key: "k"})
	assert.True(t, apperrors.IsConflict(err))
}

func TestLifecycleService_Approve(t *testing.T) {
	f := newLifecycleFixture(t)
	job := storedJob("1", model.JobStatusSubmitted)
	job.Freelancer = "0xfree"
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{job}, nil)

	f.chain.EXPECT().Call(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, call core.MoveCall) (*core.Settlement, error) {
			assert.Equal(t, "0xpkg::escrow::release_funds", call.Target())
			assert.Equal(t, []string{"0xesc-1", "0xjob-1"}, call.Args)
			return settled("0xd5"), nil
		})
	f.jobs.EXPECT().Update(gomock.Any(), "1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, upd model.JobUpdate) (*model.Job, error) {
			require.NotNil(t, upd.Status)
			assert.Equal(t, model.JobStatusCompleted, *upd.Status)
			j := storedJob("1", model.JobStatusCompleted)
			return &j, nil
		})
	f.records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec model.ReputationRecord) (*model.ReputationRecord, error) {
			assert.Equal(t, "0xfree", rec.FreelancerWallet)
			assert.Equal(t, "0xclient", rec.ClientWallet)
			assert.Equal(t, "Design a logo", rec.JobTitle)
			assert.Equal(t, "1.5", rec.JobPrice)
			assert.Equal(t, 5, rec.Rating)
			assert.NotZero(t, rec.IssuedAt)
			return &rec, nil
		})

	updated, err := f.svc.Approve(context.Background(), "0xclient", "1", 5, "great work")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCompleted, updated.Status)
}

func TestLifecycleService_Approve_ToleratesRecordWriteFailure(t *testing.T) {
	f := newLifecycleFixture(t)
	job := storedJob("1", model.JobStatusSubmitted)
	job.Freelancer = "0xfree"
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{job}, nil)

	f.chain.EXPECT().Call(gomock.Any(), gomock.Any()).Return(settled("0xd6"), nil)
	f.jobs.EXPECT().Update(gomock.Any(), "1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ model.JobUpdate) (*model.Job, error) {
			j := storedJob("1", model.JobStatusCompleted)
			return &j, nil
		})
	f.records.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Upstream("store unavailable"))

	// The money moved and the job completed; a lost rating is not an error.
	updated, err := f.svc.Approve(context.Background(), "0xclient", "1", 4, "")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCompleted, updated.Status)
}

func TestLifecycleService_Approve_BadRating(t *testing.T) {
	f := newLifecycleFixture(t)

	_, err := f.svc.Approve(context.Background(), "0xclient", "1", 6, "")
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "rating", apperrors.GetField(err))
}

func TestLifecycleService_RequestRevision_StoreOnly(t *testing.T) {
	f := newLifecycleFixture(t)
	job := storedJob("1", model.JobStatusSubmitted)
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{job}, nil)
	// No chain expectation: revision requests never touch the bridge.

	f.jobs.EXPECT().Update(gomock.Any(), "1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, upd model.JobUpdate) (*model.Job, error) {
			require.NotNil(t, upd.Status)
			assert.Equal(t, model.JobStatusRejected, *upd.Status)
			j := storedJob("1", model.JobStatusRejected)
			return &j, nil
		})

	updated, err := f.svc.RequestRevision(context.Background(), "0xclient", "1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusRejected, updated.Status)
}

func TestLifecycleService_Refund_FromSubmitted(t *testing.T) {
	f := newLifecycleFixture(t)
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{storedJob("1", model.JobStatusSubmitted)}, nil)

	f.chain.EXPECT().Call(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, call core.MoveCall) (*core.Settlement, error) {
			assert.Equal(t, "0xpkg::escrow::refund", call.Target())
			assert.Equal(t, []string{"0xesc-1"}, call.Args)
			return settled("0xd7"), nil
		})
	f.jobs.EXPECT().Update(gomock.Any(), "1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, upd model.JobUpdate) (*model.Job, error) {
			require.NotNil(t, upd.Status)
			assert.Equal(t, model.JobStatusRefunded, *upd.Status)
			j := storedJob("1", model.JobStatusRefunded)
			return &j, nil
		})

	updated, err := f.svc.Refund(context.Background(), "0xclient", "1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusRefunded, updated.Status)
}

func TestLifecycleService_Refund_FromAccepted(t *testing.T) {
	f := newLifecycleFixture(t)
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{storedJob("1", model.JobStatusAccepted)}, nil)
	// Accepted work in progress cannot be refunded out from under the freelancer.

	_, err := f.svc.Refund(context.Background(), "0xclient", "1")
	assert.True(t, apperrors.IsConflict(err))
}

func TestLifecycleService_Lists(t *testing.T) {
	f := newLifecycleFixture(t)
	a := storedJob("1", model.JobStatusFunded)
	a.CreatedAt = 100
	b := storedJob("2", model.JobStatusPosted)
	b.CreatedAt = 200
	c := storedJob("3", model.JobStatusAccepted)
	c.CreatedAt = 300
	c.Freelancer = "0xfree"
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{a, b, c}, nil).Times(3)

	open, err := f.svc.ListOpen(context.Background())
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "1", open[0].ID)

	mine, err := f.svc.ListForFreelancer(context.Background(), "0xFREE")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "3", mine[0].ID)

	all, err := f.svc.ListForClient(context.Background(), "0xclient")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, "3", all[0].ID)
	assert.Equal(t, "1", all[2].ID)
}

func TestLifecycleService_Get_NotFound(t *testing.T) {
	f := newLifecycleFixture(t)
	f.jobs.EXPECT().List(gomock.Any()).Return(nil, nil)

	_, err := f.svc.Get(context.Background(), "99")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestLifecycleService_Advisory(t *testing.T) {
	f := newLifecycleFixture(t)
	job := storedJob("1", model.JobStatusFunded)
	job.Price = "2.0"
	f.jobs.EXPECT().List(gomock.Any()).Return([]model.Job{job}, nil)
	f.records.EXPECT().List(gomock.Any()).Return(nil, nil)

	// Zero score against a 2 SUI job reads as high risk.
	adv, err := f.svc.Advisory(context.Background(), "0xfree", "1")
	require.NoError(t, err)
	assert.Equal(t, advisory.CategoryHighRisk, adv.Category)
}
