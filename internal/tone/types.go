package tone

// #region urgency

// Urgency is the discrete urgency level derived from the intensity score.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// #endregion urgency

// #region band

// Band identifies which score sub-range a ticket's text selected.
// Band selection is a pure function of the text; only the position of the
// score inside the band is delegated to a Scorer.
type Band string

const (
	BandNegative Band = "negative"
	BandPositive Band = "positive"
	BandNeutral  Band = "neutral"
)

// Range bounds one score sub-range, inclusive on both ends.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// #endregion band

// #region verdict

// Verdict is the tone assessment for one ticket.
// IntensityScore is always within [-1, 1].
type Verdict struct {
	IntensityScore float64 `json:"intensity_score"`
	Urgency        Urgency `json:"urgency_level"`
}

// #endregion verdict

// #region config

// Config holds the keyword sets, score sub-ranges, and urgency thresholds.
// Every knob is overridable so the decision surface can be tuned without
// touching assessor logic.
type Config struct {
	NegativeKeywords []string `yaml:"negative_keywords"`
	PositiveKeywords []string `yaml:"positive_keywords"`

	NegativeBand Range `yaml:"negative_band"`
	PositiveBand Range `yaml:"positive_band"`
	NeutralBand  Range `yaml:"neutral_band"`

	// Urgency mapping: score <= HighCeiling → high,
	// score <= MediumCeiling → medium, otherwise low.
	HighCeiling   float64 `yaml:"high_ceiling"`
	MediumCeiling float64 `yaml:"medium_ceiling"`

	// ScorerStep moves the deterministic score this far deeper into the
	// band for every keyword hit past the first.
	ScorerStep float64 `yaml:"scorer_step"`
}

// DefaultConfig returns the built-in tone rules.
func DefaultConfig() Config {
	return Config{
		NegativeKeywords: []string{
			"urgent", "asap", "immediately", "angry", "frustrated",
			"unacceptable", "terrible", "awful", "worst", "disappointed",
			"broken", "not working", "crash", "error", "failed",
			"double charged", "charged twice", "refund",
			"hacked", "unauthorized", "breach",
		},
		PositiveKeywords: []string{
			"love", "loving", "great", "awesome", "excellent",
			"amazing", "fantastic", "perfect", "happy",
			"thank", "thanks", "keep it up", "well done",
		},
		NegativeBand:  Range{Min: -1.0, Max: -0.3},
		PositiveBand:  Range{Min: 0.3, Max: 1.0},
		NeutralBand:   Range{Min: -0.05, Max: 0.05},
		HighCeiling:   -0.5,
		MediumCeiling: 0.0,
		ScorerStep:    0.1,
	}
}

// #endregion config
