package recurring

import (
	"math"
	"time"
)

// RecencyThreshold returns the maximum tolerated days since the last
// occurrence before a pattern is presumed ended.
//
// Base threshold is medianInterval * RecencyMultiplier. Biweekly patterns are
// floored at BiweeklyRecencyFloorDays: 1.5x of a 14-day interval is only 21
// days, which rejects real paychecks that slip across a weekend or holiday.
func RecencyThreshold(cfg Config, cadence CadenceResult) float64 {
	threshold := cadence.MedianIntervalDays * cfg.RecencyMultiplier
	if cadence.Frequency == FrequencyBiweekly {
		threshold = math.Max(threshold, cfg.BiweeklyRecencyFloorDays)
	}
	return threshold
}

// CheckRecency reports whether a cluster's most recent occurrence is fresh
// enough for the pattern to still be considered active at the given run time.
func CheckRecency(cfg Config, cluster AmountCluster, cadence CadenceResult, now time.Time) bool {
	last := cluster.Transactions[len(cluster.Transactions)-1].Day()
	daysSinceLast := daysBetween(last, day(now))
	return daysSinceLast <= RecencyThreshold(cfg, cadence)
}
