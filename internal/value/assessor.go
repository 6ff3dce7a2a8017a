package value

// #region imports
import (
	"errors"
	"fmt"

	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/ticket"
)

// #endregion

// #region errors

// ErrInvalidInput marks a malformed ticket field reaching the assessor:
// a tier outside the known set or a negative numeric field. Recoverable
// by the caller; the batch driver skips and reports such tickets.
var ErrInvalidInput = errors.New("invalid input")

// #endregion errors

// #region assessor

// Assessor derives a normalized importance score and a response-time
// target from customer account attributes.
type Assessor struct {
	config Config
}

// NewAssessor creates an Assessor with the given scoring constants.
func NewAssessor(config Config) *Assessor {
	return &Assessor{config: config}
}

// #endregion assessor

// #region assess

// Assess scores the customer attributes. Fails with ErrInvalidInput on an
// unknown tier or any negative numeric field.
func (a *Assessor) Assess(tier ticket.Tier, previousTickets int, monthlyRevenue float64, accountAgeDays int) (Verdict, error) {
	if !tier.Valid() {
		return Verdict{}, fmt.Errorf("%w: unknown customer tier %q", ErrInvalidInput, tier)
	}
	if previousTickets < 0 {
		return Verdict{}, fmt.Errorf("%w: negative previous ticket count %d", ErrInvalidInput, previousTickets)
	}
	if monthlyRevenue < 0 {
		return Verdict{}, fmt.Errorf("%w: negative monthly revenue %.2f", ErrInvalidInput, monthlyRevenue)
	}
	if accountAgeDays < 0 {
		return Verdict{}, fmt.Errorf("%w: negative account age %d", ErrInvalidInput, accountAgeDays)
	}

	score := a.config.BaseScores[tier]

	revenue := monthlyRevenue / a.config.RevenueDivisor
	if revenue > a.config.RevenueCap {
		revenue = a.config.RevenueCap
	}
	score += revenue

	if accountAgeDays > a.config.LoyaltyAgeDays {
		score += a.config.LoyaltyBonus
	}
	if previousTickets > a.config.NoiseThreshold {
		score -= a.config.NoisePenalty
	}

	score = clamp01(score)

	return Verdict{
		ImportanceScore:     score,
		ResponseTargetHours: a.targetHours(score),
	}, nil
}

// #endregion assess

// #region sla-lookup

// targetHours returns the response target for the first band the score
// meets. Bands are ordered by descending MinScore, so higher scores always
// land in a band with tighter hours.
func (a *Assessor) targetHours(score float64) int {
	for _, band := range a.config.SLABands {
		if score >= band.MinScore {
			return band.Hours
		}
	}
	// Score below every band floor: fall back to the loosest band.
	return a.config.SLABands[len(a.config.SLABands)-1].Hours
}

// #endregion sla-lookup

// #region helpers

// clamp01 restricts v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
