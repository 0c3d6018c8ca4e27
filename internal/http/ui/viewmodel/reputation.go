package viewmodel

import (
	"time"

	"github.com/suilance/suilance-ui-api/internal/domain/model"
	"github.com/suilance/suilance-ui-api/internal/domain/reputation"
	"github.com/suilance/suilance-ui-api/internal/http/uiutil"
)

// ReputationSummary is the template-facing reputation of one freelancer.
type ReputationSummary struct {
	Score float64
	Tier  string
	Count int
}

// NewReputationSummary maps a computed summary to its view.
func NewReputationSummary(s reputation.Summary) ReputationSummary {
	return ReputationSummary{Score: s.Score, Tier: string(s.Tier), Count: s.Count}
}

// ReputationRecord is one issued rating shown in a freelancer's history.
type ReputationRecord struct {
	ClientShort string
	JobTitle    string
	JobPrice    string
	Rating      int
	Comment     string
	IssuedAt    time.Time
}

// NewReputationRecords maps stored records to their views, preserving order.
func NewReputationRecords(records []model.ReputationRecord) []ReputationRecord {
	out := make([]ReputationRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, ReputationRecord{
			ClientShort: uiutil.ShortWallet(rec.ClientWallet),
			JobTitle:    rec.JobTitle,
			JobPrice:    rec.JobPrice,
			Rating:      rec.Rating,
			Comment:     rec.Comment,
			IssuedAt:    time.UnixMilli(rec.IssuedAt),
		})
	}
	return out
}
