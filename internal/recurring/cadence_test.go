package recurring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clusterFrom(txns []Transaction) AmountCluster {
	clusters := ClusterByAmount(DefaultConfig(), newSegment(txns))
	if len(clusters) != 1 {
		panic("fixture must produce exactly one cluster")
	}
	return clusters[0]
}

func TestInferCadence_Classification(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		gaps       []int
		wantFreq   Frequency
		wantMedian float64
	}{
		{"weekly", []int{7, 7, 7, 7}, FrequencyWeekly, 7},
		{"weekly with jitter", []int{6, 8, 7, 6}, FrequencyWeekly, 6.5},
		{"biweekly", []int{14, 14, 14}, FrequencyBiweekly, 14},
		{"biweekly payroll jitter", []int{13, 15, 13, 15}, FrequencyBiweekly, 14},
		{"monthly", []int{31, 28, 31, 30}, FrequencyMonthly, 30.5},
		{"monthly on the 1st", []int{31, 30, 31, 31, 30}, FrequencyMonthly, 31},
		{"quarterly", []int{91, 92, 90}, FrequencyQuarterly, 91},
		{"yearly", []int{365, 366}, FrequencyYearly, 365.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cluster := clusterFrom(seriesWithGaps("2023-01-15", tt.gaps, -25, DirectionExpense, "m", "a"))
			cadence, ok := InferCadence(cfg, cluster)
			require.True(t, ok, "expected inference to succeed")
			assert.Equal(t, tt.wantFreq, cadence.Frequency)
			assert.InDelta(t, tt.wantMedian, cadence.MedianIntervalDays, 0.01)
		})
	}
}

func TestInferCadence_IrregularFails(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		gaps []int
	}{
		{"wildly varying", []int{3, 40, 2, 90}},
		{"between anchors", []int{21, 22, 21, 23}},
		{"too frequent", []int{1, 2, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cluster := clusterFrom(seriesWithGaps("2025-01-05", tt.gaps, -25, DirectionExpense, "m", "a"))
			_, ok := InferCadence(cfg, cluster)
			assert.False(t, ok, "irregular gaps must not classify")
		})
	}
}

func TestInferCadence_SingleTransactionFails(t *testing.T) {
	cfg := DefaultConfig()

	cluster := AmountCluster{
		AmountCents: 999,
		Amount:      9.99,
		Transactions: []Transaction{
			tx("2025-01-01", -9.99, DirectionExpense, "m", "a"),
		},
	}
	if _, ok := InferCadence(cfg, cluster); ok {
		t.Fatal("expected inference to fail with no gaps")
	}
}

func TestInferCadence_SingleGapClassifies(t *testing.T) {
	cfg := DefaultConfig()

	// Two transactions one month apart: the only way such a cluster exists is
	// the fallback clustering rule, and it must still be classifiable.
	cluster := AmountCluster{
		AmountCents: 999,
		Amount:      9.99,
		Transactions: []Transaction{
			tx("2025-01-01", -9.99, DirectionExpense, "m", "a"),
			tx("2025-02-01", -9.99, DirectionExpense, "m", "a"),
		},
	}
	cadence, ok := InferCadence(cfg, cluster)
	require.True(t, ok)
	assert.Equal(t, FrequencyMonthly, cadence.Frequency)
	assert.InDelta(t, 31, cadence.MedianIntervalDays, 0.01)
	assert.Equal(t, 0.0, cadence.MAD)
}

func TestInferCadence_MADRobustToOutlier(t *testing.T) {
	cfg := DefaultConfig()

	// One skipped month produces a 61-day outlier gap. The median and MAD
	// shrug it off where a mean/stddev would not.
	cluster := clusterFrom(seriesWithGaps("2025-01-01", []int{30, 31, 61, 30, 31, 30}, -12, DirectionExpense, "m", "a"))
	cadence, ok := InferCadence(cfg, cluster)
	require.True(t, ok)
	assert.Equal(t, FrequencyMonthly, cadence.Frequency)
	assert.InDelta(t, 30.5, cadence.MedianIntervalDays, 0.01)
	assert.LessOrEqual(t, cadence.MAD, 1.0)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 5.0, median([]float64{5}))
	assert.Equal(t, 7.0, median([]float64{9, 7, 5}))
	assert.Equal(t, 21.5, median([]float64{3, 40, 2, 90}))
}
