package recurring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePattern_PerfectPattern(t *testing.T) {
	cfg := DefaultConfig()

	cluster := clusterFrom(seriesWithGaps("2025-01-01", []int{30, 30, 30, 30, 30, 30}, -49.99, DirectionExpense, "m", "a"))
	cadence := CadenceResult{Frequency: FrequencyMonthly, MedianIntervalDays: 30, MAD: 0}
	validation := ValidationResult{Valid: true, DateConsistency: 1.0}

	score := ScorePattern(cfg, cluster, cadence, validation)
	assert.InDelta(t, 1.0, score, 0.001)
}

func TestScorePattern_SampleSizeSaturates(t *testing.T) {
	cfg := DefaultConfig()

	cadence := CadenceResult{Frequency: FrequencyMonthly, MedianIntervalDays: 30, MAD: 0}
	validation := ValidationResult{Valid: true, DateConsistency: 1.0}

	six := clusterFrom(seriesWithGaps("2025-01-01", []int{30, 30, 30, 30, 30}, -10, DirectionExpense, "m", "a"))
	twelve := clusterFrom(seriesWithGaps("2024-07-01", []int{30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, -10, DirectionExpense, "m", "a"))

	scoreSix := ScorePattern(cfg, six, cadence, validation)
	scoreTwelve := ScorePattern(cfg, twelve, cadence, validation)

	// Beyond the saturation point more occurrences add nothing.
	assert.Equal(t, scoreSix, scoreTwelve)
}

func TestScorePattern_SmallSampleScoresLower(t *testing.T) {
	cfg := DefaultConfig()

	cadence := CadenceResult{Frequency: FrequencyMonthly, MedianIntervalDays: 30, MAD: 0}
	validation := ValidationResult{Valid: true, DateConsistency: 1.0}

	three := clusterFrom(seriesWithGaps("2025-01-01", []int{30, 30}, -10, DirectionExpense, "m", "a"))
	six := clusterFrom(seriesWithGaps("2025-01-01", []int{30, 30, 30, 30, 30}, -10, DirectionExpense, "m", "a"))

	assert.Less(t, ScorePattern(cfg, three, cadence, validation), ScorePattern(cfg, six, cadence, validation))
}

func TestScorePattern_DispersionLowersScore(t *testing.T) {
	cfg := DefaultConfig()

	cluster := clusterFrom(seriesWithGaps("2025-01-01", []int{30, 30, 30, 30, 30}, -10, DirectionExpense, "m", "a"))
	validation := ValidationResult{Valid: true, DateConsistency: 1.0}

	tight := ScorePattern(cfg, cluster, CadenceResult{Frequency: FrequencyMonthly, MedianIntervalDays: 30, MAD: 0}, validation)
	loose := ScorePattern(cfg, cluster, CadenceResult{Frequency: FrequencyMonthly, MedianIntervalDays: 30, MAD: 7}, validation)

	assert.Less(t, loose, tight)
}

func TestScorePattern_StaysInUnitInterval(t *testing.T) {
	cfg := DefaultConfig()

	cluster := clusterFrom(seriesWithGaps("2025-01-01", []int{30, 30}, -10, DirectionExpense, "m", "a"))

	// Degenerate inputs must still clamp into [0,1].
	worst := ScorePattern(cfg, cluster,
		CadenceResult{Frequency: FrequencyWeekly, MedianIntervalDays: 7, MAD: 100},
		ValidationResult{DateConsistency: 0})
	assert.GreaterOrEqual(t, worst, 0.0)
	assert.LessOrEqual(t, worst, 1.0)
}

func TestAmountConsistency_ExactClusteringIsOne(t *testing.T) {
	cluster := clusterFrom(seriesWithGaps("2025-01-01", []int{30, 30}, -10, DirectionExpense, "m", "a"))
	assert.Equal(t, 1.0, amountConsistency(cluster))
}
