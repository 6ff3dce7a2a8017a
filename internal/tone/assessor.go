package tone

// #region imports
import (
	"strings"
)

// #endregion

// #region assessor

// Assessor derives an intensity score and urgency level from ticket text
// via keyword heuristics. No model call. Total over all string inputs:
// empty text falls into the neutral band, never an error.
type Assessor struct {
	config Config
	scorer Scorer
}

// NewAssessor creates an Assessor. scorer may be nil, which selects the
// deterministic scorer.
func NewAssessor(config Config, scorer Scorer) *Assessor {
	if scorer == nil {
		scorer = NewDeterministicScorer(config)
	}
	return &Assessor{config: config, scorer: scorer}
}

// #endregion assessor

// #region assess

// Assess classifies the subject and message into a tone verdict.
// Negative signals take precedence on mixed input, so urgency is never
// under-estimated when distress and satisfaction vocabulary co-occur.
func (a *Assessor) Assess(subject, message string) Verdict {
	lower := strings.ToLower(subject + " " + message)

	band, hits := a.selectBand(lower)
	score := a.scorer.Score(band, hits)
	score = clampTo(score, a.bandRange(band))

	return Verdict{
		IntensityScore: score,
		Urgency:        a.urgencyFor(score),
	}
}

// #endregion assess

// #region band-selection

// selectBand picks the score sub-range for the text. Pure and deterministic:
// the same text always selects the same band and hit count.
func (a *Assessor) selectBand(lower string) (Band, int) {
	if n := countHits(lower, a.config.NegativeKeywords); n > 0 {
		return BandNegative, n
	}
	if n := countHits(lower, a.config.PositiveKeywords); n > 0 {
		return BandPositive, n
	}
	return BandNeutral, 0
}

func countHits(lower string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return hits
}

// #endregion band-selection

// #region urgency-mapping

func (a *Assessor) urgencyFor(score float64) Urgency {
	switch {
	case score <= a.config.HighCeiling:
		return UrgencyHigh
	case score <= a.config.MediumCeiling:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// #endregion urgency-mapping

// #region helpers

func (a *Assessor) bandRange(band Band) Range {
	switch band {
	case BandNegative:
		return a.config.NegativeBand
	case BandPositive:
		return a.config.PositiveBand
	default:
		return a.config.NeutralBand
	}
}

// clampTo restricts v to the given range.
func clampTo(v float64, r Range) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// #endregion helpers
