// Package reputation derives a freelancer's trust score and tier from the
// reputation records issued to them. All functions are deterministic and
// side-effect-free.
package reputation

import (
	"math"

	"github.com/suilance/suilance-ui-api/internal/domain/model"
)

// Tier is a coarse reputation bucket derived from the score.
type Tier string

const (
	TierNewbie       Tier = "NEWBIE"
	TierExperienced  Tier = "EXPERIENCED"
	TierProfessional Tier = "PROFESSIONAL"
	TierMaster       Tier = "MASTER"
)

// Summary is the computed reputation for one freelancer.
type Summary struct {
	Score float64
	Tier  Tier
	Count int
}

const (
	ratingWeight     = 0.7
	bonusPerRecord   = 0.2
	maxBonus         = 1.5
	maxScore         = 5.0
	masterScore      = 4.8
	masterCount      = 5
	professionalMin  = 4.3
	professionalJobs = 3
	experiencedMin   = 3.5
)

// Compute derives the score and tier from a freelancer's reputation records.
// With no records the score is 0.0 and the tier NEWBIE. The score is the
// weighted average rating plus an experience bonus that grows with record
// count, clamped to 5.0 and rounded to one decimal place.
func Compute(records []model.ReputationRecord) Summary {
	count := len(records)
	if count == 0 {
		return Summary{Score: 0.0, Tier: TierNewbie, Count: 0}
	}

	var total int
	for _, rec := range records {
		total += rec.Rating
	}
	avg := float64(total) / float64(count)

	bonus := math.Min(float64(count)*bonusPerRecord, maxBonus)
	raw := avg*ratingWeight + bonus
	score := roundTo1(math.Min(raw, maxScore))

	return Summary{
		Score: score,
		Tier:  tierFor(score, count),
		Count: count,
	}
}

// tierFor evaluates the tier rules top-down; the first match wins.
func tierFor(score float64, count int) Tier {
	switch {
	case score >= masterScore && count >= masterCount:
		return TierMaster
	case score >= professionalMin && count >= professionalJobs:
		return TierProfessional
	case score >= experiencedMin:
		return TierExperienced
	default:
		return TierNewbie
	}
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
