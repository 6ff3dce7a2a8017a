package route

// #region imports
import (
	"strings"

	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/tone"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/value"
)

// #endregion

// #region decider

// Decider picks a target team and escalation flag from the two assessor
// verdicts plus the raw ticket text. Total over well-formed verdicts;
// never fails.
type Decider struct {
	config Config
}

// NewDecider creates a Decider with the given routing rules.
func NewDecider(config Config) *Decider {
	return &Decider{config: config}
}

// #endregion decider

// #region decide

// Decide applies the team rules as an ordered chain, first match wins.
// The order encodes priority: billing vocabulary beats security vocabulary
// beats retention vocabulary beats score/urgency signals.
func (d *Decider) Decide(toneV tone.Verdict, valueV value.Verdict, ticketText string) Verdict {
	return Verdict{
		Team:     d.selectTeam(toneV, valueV, ticketText),
		Escalate: d.shouldEscalate(toneV, valueV),
	}
}

func (d *Decider) selectTeam(toneV tone.Verdict, valueV value.Verdict, ticketText string) Team {
	lower := strings.ToLower(ticketText)

	if matchesAny(lower, d.config.BillingKeywords) {
		return TeamBilling
	}
	if matchesAny(lower, d.config.SecurityKeywords) {
		return TeamSecurity
	}
	if matchesAny(lower, d.config.RetentionKeywords) {
		return TeamRetention
	}
	if valueV.ImportanceScore >= d.config.HighValueThreshold || toneV.Urgency == tone.UrgencyHigh {
		return TeamTier2
	}
	return TeamTier1
}

// #endregion decide

// #region escalation

// shouldEscalate requires strong dissatisfaction AND high business value
// simultaneously. Conjunction, not disjunction.
func (d *Decider) shouldEscalate(toneV tone.Verdict, valueV value.Verdict) bool {
	return toneV.IntensityScore <= d.config.EscalationIntensityMax &&
		valueV.ImportanceScore >= d.config.HighValueThreshold
}

// #endregion escalation

// #region helpers

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// #endregion helpers
