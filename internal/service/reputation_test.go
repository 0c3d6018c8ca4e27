package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/suilance/suilance-ui-api/internal/domain/model"
	"github.com/suilance/suilance-ui-api/internal/domain/reputation"
	apperrors "github.com/suilance/suilance-ui-api/internal/errors"
	"github.com/suilance/suilance-ui-api/internal/mocks"
)

func newReputationFixture(t *testing.T) (*ReputationService, *mocks.MockReputationStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	records := mocks.NewMockReputationStore(ctrl)
	return NewReputationService(ReputationServiceOptions{Records: records}), records
}

func TestReputationService_SummaryFor(t *testing.T) {
	svc, records := newReputationFixture(t)

	records.EXPECT().List(gomock.Any()).Return([]model.ReputationRecord{
		{FreelancerWallet: "0xfree", Rating: 5},
		{FreelancerWallet: "0xFREE", Rating: 5},
		{FreelancerWallet: "0xother", Rating: 1},
		{FreelancerWallet: "0xfree", Rating: 5},
		{FreelancerWallet: "0xfree", Rating: 5},
		{FreelancerWallet: "0xfree", Rating: 5},
	}, nil)

	// Matching is case-insensitive over wallet hex; the other freelancer's
	// record must not dilute the average.
	summary, err := svc.SummaryFor(context.Background(), "0xFree")
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Count)
	assert.InDelta(t, 4.5, summary.Score, 0.001)
	assert.Equal(t, reputation.TierProfessional, summary.Tier)
}

func TestReputationService_SummaryFor_NoRecords(t *testing.T) {
	svc, records := newReputationFixture(t)
	records.EXPECT().List(gomock.Any()).Return(nil, nil)

	summary, err := svc.SummaryFor(context.Background(), "0xfree")
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.Score)
	assert.Equal(t, reputation.TierNewbie, summary.Tier)
}

func TestReputationService_HistoryFor_NewestFirst(t *testing.T) {
	svc, records := newReputationFixture(t)
	records.EXPECT().List(gomock.Any()).Return([]model.ReputationRecord{
		{ID: "a", FreelancerWallet: "0xfree", Rating: 4, IssuedAt: 100},
		{ID: "b", FreelancerWallet: "0xfree", Rating: 5, IssuedAt: 300},
		{ID: "c", FreelancerWallet: "0xfree", Rating: 3, IssuedAt: 200},
	}, nil)

	history, err := svc.HistoryFor(context.Background(), "0xfree")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{history[0].ID, history[1].ID, history[2].ID})
}

func TestReputationService_SummaryFor_StoreError(t *testing.T) {
	svc, records := newReputationFixture(t)
	records.EXPECT().List(gomock.Any()).Return(nil, apperrors.Upstream("store unavailable"))

	_, err := svc.SummaryFor(context.Background(), "0xfree")
	assert.True(t, apperrors.IsUpstream(err))
}
