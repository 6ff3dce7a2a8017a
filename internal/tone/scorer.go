package tone

// #region imports
import (
	"math/rand"
)

// #endregion

// #region scorer-interface

// Scorer positions an intensity score inside an already-selected band.
// It abstracts the signal-strength model so the assessor can be backed by
// real inference later without changing its contract.
type Scorer interface {
	Score(band Band, hits int) float64
}

// #endregion scorer-interface

// #region deterministic

// DeterministicScorer derives the score purely from keyword hit density:
// each hit past the first pushes the score one step deeper into the band.
// Same text in, same score out, which keeps batch metrics reproducible.
type DeterministicScorer struct {
	config Config
}

// NewDeterministicScorer creates the default scorer for the given rules.
func NewDeterministicScorer(config Config) *DeterministicScorer {
	return &DeterministicScorer{config: config}
}

// Score maps hit count to a band position. The neutral band always yields
// its midpoint.
func (s *DeterministicScorer) Score(band Band, hits int) float64 {
	depth := float64(hits-1) * s.config.ScorerStep
	switch band {
	case BandNegative:
		// Entry point is the shallow end (Max); more hits push toward Min.
		return s.config.NegativeBand.Max - depth
	case BandPositive:
		return s.config.PositiveBand.Min + depth
	default:
		r := s.config.NeutralBand
		return (r.Min + r.Max) / 2
	}
}

// #endregion deterministic

// #region random

// RandomScorer draws a bounded uniform score within the selected band.
// It mirrors the prototype's placeholder for a learned-model call; band
// selection stays deterministic, only the position inside the band varies.
type RandomScorer struct {
	config Config
	rng    *rand.Rand
}

// NewRandomScorer creates a seeded random scorer.
func NewRandomScorer(config Config, seed int64) *RandomScorer {
	return &RandomScorer{config: config, rng: rand.New(rand.NewSource(seed))}
}

// Score draws uniformly from the band's range, ignoring hit count.
func (s *RandomScorer) Score(band Band, hits int) float64 {
	var r Range
	switch band {
	case BandNegative:
		r = s.config.NegativeBand
	case BandPositive:
		r = s.config.PositiveBand
	default:
		r = s.config.NeutralBand
	}
	return r.Min + s.rng.Float64()*(r.Max-r.Min)
}

// #endregion random
