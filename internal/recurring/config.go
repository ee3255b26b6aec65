package recurring

// Config centralizes every tunable threshold in the detection pipeline.
// The defaults are empirically tuned; callers that need different behavior
// (tests, experiments) construct their own Config rather than editing
// constants scattered across stages. Every stage reads only from Config so
// the online, re-sync and debug paths can never disagree on a threshold.
type Config struct {
	// LookbackMonths bounds the detection window measured back from "now".
	LookbackMonths int

	// MinGroupSize is the minimum transaction count for a candidate group
	// to be worth any statistical inference.
	MinGroupSize int

	// GapToleranceDays splits a group into segments wherever consecutive
	// transactions are further apart than this. Must exceed the quarterly
	// period or quarterly patterns fragment into singleton segments; yearly
	// patterns need a caller-supplied tolerance above 365.
	GapToleranceDays float64

	// PrimaryClusterMin is the minimum bucket size under exact-amount
	// clustering. FallbackClusterMin applies when no primary bucket
	// qualifies, the segment has at least FallbackSegmentMin transactions
	// and carries at least two distinct amounts (two subscription tiers at
	// one merchant).
	PrimaryClusterMin  int
	FallbackClusterMin int
	FallbackSegmentMin int

	// AnchorToleranceFrac is the half-width of each cadence anchor's
	// acceptance band as a fraction of the anchor period, floored at
	// AnchorToleranceFloorDays. A median interval outside every band fails
	// inference.
	AnchorToleranceFrac      float64
	AnchorToleranceFloorDays float64

	// ConsistencyBar is the minimum fraction of gaps that must fall within
	// the anchor band for validation to pass. MADCeilingFrac caps the MAD
	// relative to the expected period.
	ConsistencyBar float64
	MADCeilingFrac float64

	// Score weights. They must sum to 1 so the score stays in [0,1].
	WeightDateConsistency    float64
	WeightIntervalDispersion float64
	WeightSampleSize         float64
	WeightAmountConsistency  float64

	// SampleSaturation is the occurrence count at which the sample-size
	// bonus reaches its maximum.
	SampleSaturation int

	// MinConfidence is the acceptance threshold on the final score.
	MinConfidence float64

	// RecencyMultiplier scales the median interval into a staleness
	// threshold. BiweeklyRecencyFloorDays floors that threshold for
	// biweekly patterns: 1.5x14 = 21 days is too aggressive for real-world
	// payroll jitter.
	RecencyMultiplier        float64
	BiweeklyRecencyFloorDays float64

	// Workers bounds the group-evaluation pool in Detect.
	Workers int
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		LookbackMonths:           12,
		MinGroupSize:             3,
		GapToleranceDays:         100,
		PrimaryClusterMin:        3,
		FallbackClusterMin:       2,
		FallbackSegmentMin:       4,
		AnchorToleranceFrac:      0.17,
		AnchorToleranceFloorDays: 2,
		ConsistencyBar:           0.6,
		MADCeilingFrac:           0.25,
		WeightDateConsistency:    0.40,
		WeightIntervalDispersion: 0.25,
		WeightSampleSize:         0.20,
		WeightAmountConsistency:  0.15,
		SampleSaturation:         6,
		MinConfidence:            0.5,
		RecencyMultiplier:        1.5,
		BiweeklyRecencyFloorDays: 30,
		Workers:                  4,
	}
}
