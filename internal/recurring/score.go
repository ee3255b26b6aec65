package recurring

import "math"

// ScorePattern produces the single confidence score in [0,1] for a cluster.
//
// The formula is a weighted sum of four signals:
//
//	score = Wd*dateConsistency
//	      + Wi*(1 - min(MAD/(0.5*period), 1))     interval regularity
//	      + Ws*min(n/saturation, 1)               sample size, saturating
//	      + Wa*amountConsistency
//
// The sample-size term saturates at Config.SampleSaturation occurrences:
// more data keeps increasing confidence but with rapidly diminishing
// marginal effect. Amount consistency is 1.0 by construction under exact
// rounded-amount clustering; the term is kept so a future tolerance-based
// clusterer feeds the same formula.
//
// This is the only scoring implementation: the online path, the admin
// re-sync and the debug CLI all call it through Detect.
func ScorePattern(cfg Config, cluster AmountCluster, cadence CadenceResult, validation ValidationResult) float64 {
	period := cadence.Frequency.PeriodDays()

	dispersion := 1 - math.Min(cadence.MAD/(0.5*period), 1)
	sample := math.Min(float64(len(cluster.Transactions))/float64(cfg.SampleSaturation), 1)
	amount := amountConsistency(cluster)

	score := cfg.WeightDateConsistency*validation.DateConsistency +
		cfg.WeightIntervalDispersion*dispersion +
		cfg.WeightSampleSize*sample +
		cfg.WeightAmountConsistency*amount

	return math.Min(math.Max(score, 0), 1)
}

// amountConsistency is the fraction of cluster members whose rounded amount
// equals the cluster amount. Exact clustering makes this 1.0 today.
func amountConsistency(cluster AmountCluster) float64 {
	if len(cluster.Transactions) == 0 {
		return 0
	}
	matching := 0
	for _, t := range cluster.Transactions {
		if t.AbsAmountCents() == cluster.AmountCents {
			matching++
		}
	}
	return float64(matching) / float64(len(cluster.Transactions))
}
