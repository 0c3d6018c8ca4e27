package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/suilance/suilance-ui-api/internal/core"
	"github.com/suilance/suilance-ui-api/internal/domain/model"
	"github.com/suilance/suilance-ui-api/internal/domain/reputation"
)

// ReputationServiceOptions groups dependencies for ReputationService.
type ReputationServiceOptions struct {
	Records core.ReputationStore
}

// ReputationService reads reputation records from the store and derives
// per-freelancer summaries. Record creation happens in the job lifecycle,
// at approval time; this service never writes.
type ReputationService struct {
	records core.ReputationStore
}

// NewReputationService constructs a new ReputationService.
func NewReputationService(opts ReputationServiceOptions) *ReputationService {
	return &ReputationService{records: opts.Records}
}

// SummaryFor computes the reputation summary for one freelancer wallet.
// A wallet with no records yields the zero-score NEWBIE summary.
func (s *ReputationService) SummaryFor(ctx context.Context, wallet string) (reputation.Summary, error) {
	records, err := s.HistoryFor(ctx, wallet)
	if err != nil {
		return reputation.Summary{}, err
	}
	return reputation.Compute(records), nil
}

// HistoryFor returns the freelancer's reputation records, newest first.
func (s *ReputationService) HistoryFor(ctx context.Context, wallet string) ([]model.ReputationRecord, error) {
	all, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reputation records: %w", err)
	}

	wallet = strings.ToLower(strings.TrimSpace(wallet))
	matched := make([]model.ReputationRecord, 0, len(all))
	for _, rec := range all {
		if strings.EqualFold(rec.FreelancerWallet, wallet) {
			matched = append(matched, rec)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].IssuedAt > matched[j].IssuedAt
	})
	return matched, nil
}
