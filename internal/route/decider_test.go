package route

import (
	"testing"

	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/tone"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/value"
)

func TestSelectTeamRuleOrder(t *testing.T) {
	d := NewDecider(DefaultConfig())
	neutralTone := tone.Verdict{IntensityScore: 0, Urgency: tone.UrgencyMedium}
	lowValue := value.Verdict{ImportanceScore: 0.2, ResponseTargetHours: 48}
	highValue := value.Verdict{ImportanceScore: 0.9, ResponseTargetHours: 2}

	tests := []struct {
		name  string
		tone  tone.Verdict
		value value.Verdict
		text  string
		want  Team
	}{
		{"billing-vocabulary", neutralTone, lowValue, "I was double charged, need a refund", TeamBilling},
		{"security-vocabulary", neutralTone, lowValue, "unauthorized login attempts detected", TeamSecurity},
		{"retention-vocabulary", neutralTone, lowValue, "I want to close my account", TeamRetention},
		{"high-importance", neutralTone, highValue, "general question about features", TeamTier2},
		{"high-urgency", tone.Verdict{IntensityScore: -0.8, Urgency: tone.UrgencyHigh}, lowValue, "nothing matches any vocabulary here", TeamTier2},
		{"default", neutralTone, lowValue, "how do I export my data", TeamTier1},

		// Order is a total order: earlier rules win on conflicting signals.
		{"billing-beats-security", neutralTone, lowValue, "my payment page was hacked", TeamBilling},
		{"security-beats-retention", neutralTone, lowValue, "breach made me want to close my account", TeamSecurity},
		{"billing-beats-high-value", neutralTone, highValue, "refund please", TeamBilling},
		{"retention-beats-high-value", tone.Verdict{IntensityScore: -0.9, Urgency: tone.UrgencyHigh}, highValue, "I will downgrade", TeamRetention},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Decide(tt.tone, tt.value, tt.text)
			if got.Team != tt.want {
				t.Errorf("team: got %q, want %q", got.Team, tt.want)
			}
		})
	}
}

func TestEscalationConjunction(t *testing.T) {
	d := NewDecider(DefaultConfig())

	tests := []struct {
		name       string
		intensity  float64
		importance float64
		want       bool
	}{
		{"both-hold", -0.7, 0.9, true},
		{"both-at-boundary", -0.6, 0.8, true},
		{"only-dissatisfaction", -0.9, 0.5, false},
		{"only-high-value", -0.1, 0.95, false},
		{"neither", 0.3, 0.2, false},
		{"intensity-just-above", -0.59, 0.9, false},
		{"importance-just-below", -0.9, 0.79, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Decide(
				tone.Verdict{IntensityScore: tt.intensity, Urgency: tone.UrgencyHigh},
				value.Verdict{ImportanceScore: tt.importance, ResponseTargetHours: 2},
				"no vocabulary here",
			)
			if got.Escalate != tt.want {
				t.Errorf("escalate: got %v, want %v", got.Escalate, tt.want)
			}
		})
	}
}

func TestDecideNeverPanicsOnEmptyText(t *testing.T) {
	d := NewDecider(DefaultConfig())
	got := d.Decide(tone.Verdict{}, value.Verdict{}, "")
	if got.Team != TeamTier1 {
		t.Errorf("empty text: got %q, want Tier1", got.Team)
	}
	if got.Escalate {
		t.Error("empty verdicts must not escalate")
	}
}
