package recurring

// ValidationResult reports whether a cluster's dates are actually consistent
// with its inferred cadence, not merely numerous enough to produce one.
type ValidationResult struct {
	Valid bool
	// DateConsistency is the fraction of observed gaps inside the anchor's
	// tolerance band.
	DateConsistency float64
}

// ValidatePattern recomputes date consistency against the canonical period of
// the classified frequency and rejects clusters whose apparent periodicity is
// coincidental. The gap band is proportional to the period (with a floor for
// short periods): a fixed day count would be far too strict for yearly
// patterns and far too loose for weekly ones.
//
// Valid=false is a filtering decision, not a fault; the caller routes the
// cluster to rejection without raising anything.
func ValidatePattern(cfg Config, cluster AmountCluster, cadence CadenceResult) ValidationResult {
	period := cadence.Frequency.PeriodDays()
	tolerance := anchorTolerance(cfg, period)

	gaps := intervalDays(cluster.Transactions)
	if len(gaps) == 0 {
		return ValidationResult{}
	}

	within := 0
	for _, g := range gaps {
		if g >= period-tolerance && g <= period+tolerance {
			within++
		}
	}
	consistency := float64(within) / float64(len(gaps))

	valid := consistency >= cfg.ConsistencyBar &&
		cadence.MAD <= cfg.MADCeilingFrac*period

	return ValidationResult{Valid: valid, DateConsistency: consistency}
}
