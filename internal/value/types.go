package value

// #region imports
import (
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/ticket"
)

// #endregion

// #region verdict

// Verdict is the customer-value assessment for one ticket.
// ImportanceScore is always within [0, 1]; ResponseTargetHours is positive.
type Verdict struct {
	ImportanceScore     float64 `json:"importance_score"`
	ResponseTargetHours int     `json:"response_target_hours"`
}

// #endregion verdict

// #region sla-band

// SLABand maps a minimum importance score to a response-time target.
type SLABand struct {
	MinScore float64 `yaml:"min_score"`
	Hours    int     `yaml:"hours"`
}

// #endregion sla-band

// #region config

// Config holds the scoring constants and SLA bands. All named and
// overridable so the decision surface can be audited and tuned
// independently of the algorithm shape.
type Config struct {
	// BaseScores keys every tier to its starting score (free < premium
	// < enterprise).
	BaseScores map[ticket.Tier]float64 `yaml:"base_scores"`

	// Revenue contributes MonthlyRevenue/RevenueDivisor, clamped to
	// RevenueCap so extreme revenue cannot dominate the tier signal.
	RevenueDivisor float64 `yaml:"revenue_divisor"`
	RevenueCap     float64 `yaml:"revenue_cap"`

	// LoyaltyBonus applies when account age exceeds LoyaltyAgeDays.
	LoyaltyBonus   float64 `yaml:"loyalty_bonus"`
	LoyaltyAgeDays int     `yaml:"loyalty_age_days"`

	// NoisePenalty applies when previous tickets exceed NoiseThreshold.
	// Deliberate and debatable: frequent filers are weighted DOWN, on the
	// assumption that high ticket volume correlates with lower urgency
	// rather than higher frustration. Flip the sign here if product
	// decides repeat filers should rank higher instead.
	NoisePenalty   float64 `yaml:"noise_penalty"`
	NoiseThreshold int     `yaml:"noise_threshold"`

	// SLABands must be ordered by descending MinScore; the first band
	// whose MinScore the final score meets wins.
	SLABands []SLABand `yaml:"sla_bands"`
}

// DefaultConfig returns the built-in value rules.
func DefaultConfig() Config {
	return Config{
		BaseScores: map[ticket.Tier]float64{
			ticket.TierFree:       0.2,
			ticket.TierPremium:    0.5,
			ticket.TierEnterprise: 0.8,
		},
		RevenueDivisor: 10000,
		RevenueCap:     0.15,
		LoyaltyBonus:   0.05,
		LoyaltyAgeDays: 365,
		NoisePenalty:   0.1,
		NoiseThreshold: 5,
		SLABands: []SLABand{
			{MinScore: 0.8, Hours: 2},
			{MinScore: 0.6, Hours: 8},
			{MinScore: 0.4, Hours: 24},
			{MinScore: 0.0, Hours: 48},
		},
	}
}

// #endregion config
