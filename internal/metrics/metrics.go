package metrics

// #region imports
import (
	"errors"
	"fmt"
	"math"

	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/pipeline"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/route"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/ticket"
)

// #endregion

// #region errors

// ErrEmptyBatch marks a summarize call over zero verdicts; a mean over
// zero elements is undefined and must not silently yield zero or NaN.
var ErrEmptyBatch = errors.New("empty batch")

// ErrBatchMismatch marks verdict and ticket sequences of different
// length; positional tier correlation would silently mis-group otherwise.
var ErrBatchMismatch = errors.New("batch length mismatch")

// #endregion errors

// #region batch-metrics

// BatchMetrics is the fleet-level summary computed fresh from one batch.
// Derived value, never persisted as a standalone entity.
type BatchMetrics struct {
	MeanIntensity   float64 `json:"mean_intensity"`
	EscalationCount int     `json:"escalation_count"`
	EscalationRate  float64 `json:"escalation_rate"`
	AverageSLAHours float64 `json:"average_sla_hours"`

	// TeamDistribution holds counts only for teams actually observed;
	// teams with zero tickets are omitted, not zero-filled.
	TeamDistribution map[route.Team]int `json:"team_distribution"`

	// HighPriorityByTier counts verdicts whose importance score meets the
	// configured threshold, grouped by the positionally-matched ticket's
	// customer tier.
	HighPriorityByTier map[ticket.Tier]int `json:"high_priority_by_tier"`
}

// #endregion batch-metrics

// #region config

// Config holds the aggregation knobs.
type Config struct {
	// HighPriorityThreshold gates the by-tier high-priority count.
	HighPriorityThreshold float64 `yaml:"high_priority_threshold"`
	// MeanPrecision is the number of decimal places means are rounded to
	// for display reproducibility.
	MeanPrecision int `yaml:"mean_precision"`
}

// DefaultConfig returns the built-in aggregation settings.
func DefaultConfig() Config {
	return Config{
		HighPriorityThreshold: 0.75,
		MeanPrecision:         3,
	}
}

// #endregion config

// #region aggregator

// Aggregator computes batch statistics. Pure: no mutation of inputs, no
// state carried between calls.
type Aggregator struct {
	config Config
}

// NewAggregator creates an Aggregator with the given settings.
func NewAggregator(config Config) *Aggregator {
	return &Aggregator{config: config}
}

// #endregion aggregator

// #region summarize

// Summarize computes fleet-level statistics over one batch. tickets must
// be the same-length, same-order sequence of originating records; the
// minimal verdict schema does not carry the customer tier, so it is
// recovered by position.
func (a *Aggregator) Summarize(verdicts []pipeline.AggregatedVerdict, tickets []ticket.Record) (BatchMetrics, error) {
	if len(verdicts) == 0 {
		return BatchMetrics{}, ErrEmptyBatch
	}
	if len(verdicts) != len(tickets) {
		return BatchMetrics{}, fmt.Errorf("%w: %d verdicts, %d tickets", ErrBatchMismatch, len(verdicts), len(tickets))
	}

	// Enum-keyed counting tables: indices are fixed at compile time, so an
	// unknown team or tier cannot sneak in as a stray map key.
	teamOrder := route.Teams()
	teamIdx := make(map[route.Team]int, len(teamOrder))
	for i, tm := range teamOrder {
		teamIdx[tm] = i
	}
	teamCounts := make([]int, len(teamOrder))

	tierOrder := ticket.Tiers()
	tierIdx := make(map[ticket.Tier]int, len(tierOrder))
	for i, tr := range tierOrder {
		tierIdx[tr] = i
	}
	tierCounts := make([]int, len(tierOrder))

	var intensitySum, slaSum float64
	escalations := 0

	for i, v := range verdicts {
		intensitySum += v.Tone.IntensityScore
		slaSum += float64(v.Value.ResponseTargetHours)
		if v.Routing.Escalate {
			escalations++
		}
		teamCounts[teamIdx[v.Routing.Team]]++
		if v.Value.ImportanceScore >= a.config.HighPriorityThreshold {
			idx, ok := tierIdx[tickets[i].CustomerTier]
			if !ok {
				return BatchMetrics{}, fmt.Errorf("%w: ticket %s has unknown tier %q", ErrBatchMismatch, tickets[i].ID, tickets[i].CustomerTier)
			}
			tierCounts[idx]++
		}
	}

	n := float64(len(verdicts))

	teamDist := make(map[route.Team]int)
	for i, c := range teamCounts {
		if c > 0 {
			teamDist[teamOrder[i]] = c
		}
	}
	byTier := make(map[ticket.Tier]int)
	for i, c := range tierCounts {
		if c > 0 {
			byTier[tierOrder[i]] = c
		}
	}

	return BatchMetrics{
		MeanIntensity:      a.round(intensitySum / n),
		EscalationCount:    escalations,
		EscalationRate:     a.round(float64(escalations) / n),
		AverageSLAHours:    a.round(slaSum / n),
		TeamDistribution:   teamDist,
		HighPriorityByTier: byTier,
	}, nil
}

// #endregion summarize

// #region helpers

// round truncates v to the configured display precision.
func (a *Aggregator) round(v float64) float64 {
	p := math.Pow10(a.config.MeanPrecision)
	return math.Round(v*p) / p
}

// #endregion helpers
