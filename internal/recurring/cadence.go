package recurring

import (
	"math"
	"sort"
)

// Frequency is the inferred periodic label of a recurring pattern.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// PeriodDays returns the canonical period for a frequency.
func (f Frequency) PeriodDays() float64 {
	switch f {
	case FrequencyWeekly:
		return 7
	case FrequencyBiweekly:
		return 14
	case FrequencyMonthly:
		return 30
	case FrequencyQuarterly:
		return 91
	case FrequencyYearly:
		return 365
	default:
		return 0
	}
}

var cadenceAnchors = []Frequency{
	FrequencyWeekly,
	FrequencyBiweekly,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencyYearly,
}

// CadenceResult holds the interval statistics for one amount cluster.
// Recomputed per run, never persisted on its own.
type CadenceResult struct {
	Frequency          Frequency
	MedianIntervalDays float64
	// MAD is the median absolute deviation of the gaps from their median,
	// a dispersion measure a single outlier gap cannot skew the way a
	// standard deviation would.
	MAD float64
}

// InferCadence computes the inter-transaction gap statistics for a cluster
// and classifies a frequency by nearest-anchor matching of the median gap.
// A median outside every anchor's tolerance band fails inference: irregular
// spending is not an actionable recurring pattern, and that failure is a
// normal outcome, not an error.
//
// A single gap is enough to classify: the median is that gap and the MAD is
// zero. Two-transaction clusters only reach this point through the fallback
// clustering rule, whose whole purpose is to let a merchant's second billing
// tier surface before either tier has three occurrences; requiring two gaps
// here would make that rule unsatisfiable.
func InferCadence(cfg Config, cluster AmountCluster) (CadenceResult, bool) {
	gaps := intervalDays(cluster.Transactions)
	if len(gaps) == 0 {
		return CadenceResult{}, false
	}

	med := median(gaps)

	deviations := make([]float64, len(gaps))
	for i, g := range gaps {
		deviations[i] = math.Abs(g - med)
	}
	mad := median(deviations)

	freq, ok := classifyFrequency(cfg, med)
	if !ok {
		return CadenceResult{}, false
	}

	return CadenceResult{
		Frequency:          freq,
		MedianIntervalDays: med,
		MAD:                mad,
	}, true
}

// classifyFrequency picks the anchor nearest to the median interval, provided
// the median falls inside that anchor's tolerance band.
func classifyFrequency(cfg Config, medianDays float64) (Frequency, bool) {
	var best Frequency
	bestDist := math.Inf(1)
	for _, f := range cadenceAnchors {
		d := math.Abs(medianDays - f.PeriodDays())
		if d < bestDist {
			bestDist = d
			best = f
		}
	}
	if bestDist > anchorTolerance(cfg, best.PeriodDays()) {
		return "", false
	}
	return best, true
}

// anchorTolerance is proportional to the period with an absolute floor, so
// yearly gets a wider day band than weekly without weekly collapsing to zero.
func anchorTolerance(cfg Config, periodDays float64) float64 {
	return math.Max(cfg.AnchorToleranceFloorDays, cfg.AnchorToleranceFrac*periodDays)
}

// intervalDays returns the gaps in days between consecutive transactions.
// Same-day duplicates contribute a zero gap and count against regularity.
func intervalDays(txns []Transaction) []float64 {
	if len(txns) < 2 {
		return nil
	}
	gaps := make([]float64, 0, len(txns)-1)
	for i := 1; i < len(txns); i++ {
		gaps = append(gaps, daysBetween(txns[i-1].Day(), txns[i].Day()))
	}
	return gaps
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
