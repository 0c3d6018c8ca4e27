// Package advisory produces non-binding job match recommendations shown to a
// freelancer before accepting a job. The advisory never gates the accept
// action.
package advisory

// Category identifies one of the fixed advisory outcomes.
type Category string

const (
	CategoryHighRisk    Category = "high_risk"
	CategoryUnderpriced Category = "underpriced"
	CategoryGoodMatch   Category = "good_match"
	CategoryNeutral     Category = "neutral"
)

// Advisory pairs a category with its display message.
type Advisory struct {
	Category Category
	Message  string
}

// Evaluate returns the advisory for a freelancer's current score and a job's
// price in SUI. Rules are evaluated in order; the first match wins.
func Evaluate(score, price float64) Advisory {
	switch {
	case score < 3.0 && price > 1.0:
		return Advisory{
			Category: CategoryHighRisk,
			Message:  "High risk: this job pays well above your current reputation level. The client may expect more experience.",
		}
	case score >= 4.0 && price < 0.5:
		return Advisory{
			Category: CategoryUnderpriced,
			Message:  "Underpriced: your reputation suggests you can take on better-paying work than this.",
		}
	case score >= 3.5 && price >= 0.5:
		return Advisory{
			Category: CategoryGoodMatch,
			Message:  "Good match: this job's budget lines up with your reputation level.",
		}
	default:
		return Advisory{
			Category: CategoryNeutral,
			Message:  "No strong signal either way. Review the job description and decide for yourself.",
		}
	}
}
