package reputation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suilance/suilance-ui-api/internal/domain/model"
)

func records(ratings ...int) []model.ReputationRecord {
	out := make([]model.ReputationRecord, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, model.ReputationRecord{
			FreelancerWallet: "0xf",
			ClientWallet:     "0xc",
			Rating:           r,
		})
	}
	return out
}

func TestCompute_NoRecords(t *testing.T) {
	got := Compute(nil)
	assert.Equal(t, Summary{Score: 0.0, Tier: TierNewbie, Count: 0}, got)

	got = Compute([]model.ReputationRecord{})
	assert.Equal(t, Summary{Score: 0.0, Tier: TierNewbie, Count: 0}, got)
}

func TestCompute_FivePerfectRatings(t *testing.T) {
	// avg=5, bonus=min(5*0.2, 1.5)=1.0, raw=5*0.7+1.0=4.5.
	// 4.5 >= 4.3 with count >= 3, so the top-down rules land on PROFESSIONAL
	// even though the score also clears the EXPERIENCED threshold.
	got := Compute(records(5, 5, 5, 5, 5))
	assert.InDelta(t, 4.5, got.Score, 1e-9)
	assert.Equal(t, TierProfessional, got.Tier)
	assert.Equal(t, 5, got.Count)
}

func TestCompute_ScoreCeiling(t *testing.T) {
	// Ten perfect ratings: raw = 5*0.7 + 1.5 = 5.0; anything above clamps to 5.0.
	got := Compute(records(5, 5, 5, 5, 5, 5, 5, 5, 5, 5))
	assert.InDelta(t, 5.0, got.Score, 1e-9)
	assert.Equal(t, TierMaster, got.Tier)
	assert.LessOrEqual(t, got.Score, 5.0)
}

func TestCompute_TierBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    Tier
		score   float64
	}{
		{
			// avg=5, bonus=0.2, raw=3.7 -> EXPERIENCED (count too low for PROFESSIONAL)
			name:    "single perfect rating",
			ratings: []int{5},
			want:    TierExperienced,
			score:   3.7,
		},
		{
			// avg=5, bonus=0.4, raw=3.9 -> EXPERIENCED
			name:    "two perfect ratings",
			ratings: []int{5, 5},
			want:    TierExperienced,
			score:   3.9,
		},
		{
			// avg=1, bonus=0.2, raw=0.9 -> NEWBIE
			name:    "single bad rating",
			ratings: []int{1},
			want:    TierNewbie,
			score:   0.9,
		},
		{
			// avg=3, bonus=0.6, raw=2.7 -> NEWBIE
			name:    "middling ratings",
			ratings: []int{3, 3, 3},
			want:    TierNewbie,
			score:   2.7,
		},
		{
			// avg=5, bonus=1.4, raw=4.9, count=7 -> MASTER
			name:    "seven perfect ratings",
			ratings: []int{5, 5, 5, 5, 5, 5, 5},
			want:    TierMaster,
			score:   4.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(records(tt.ratings...))
			assert.InDelta(t, tt.score, got.Score, 1e-9)
			assert.Equal(t, tt.want, got.Tier)
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	recs := records(4, 5, 3, 5)
	first := Compute(recs)
	for range 10 {
		assert.Equal(t, first, Compute(recs))
	}
}

func TestCompute_RoundsToOneDecimal(t *testing.T) {
	// avg=(4+5+4)/3=4.333..., bonus=0.6, raw=3.633... -> 3.6
	got := Compute(records(4, 5, 4))
	assert.InDelta(t, 3.6, got.Score, 1e-9)
}
