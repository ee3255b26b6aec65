package recurring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecencyThreshold_BaseMultiplier(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		cadence CadenceResult
		want    float64
	}{
		{"weekly", CadenceResult{Frequency: FrequencyWeekly, MedianIntervalDays: 7}, 10.5},
		{"monthly", CadenceResult{Frequency: FrequencyMonthly, MedianIntervalDays: 30}, 45},
		{"quarterly", CadenceResult{Frequency: FrequencyQuarterly, MedianIntervalDays: 91}, 136.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RecencyThreshold(cfg, tt.cadence), 0.001)
		})
	}
}

func TestRecencyThreshold_BiweeklyFloor(t *testing.T) {
	cfg := DefaultConfig()

	// 1.5 x 14 = 21 days would reject a paycheck that slipped over a long
	// weekend; the biweekly floor holds the threshold at 30.
	cadence := CadenceResult{Frequency: FrequencyBiweekly, MedianIntervalDays: 14}
	assert.Equal(t, 30.0, RecencyThreshold(cfg, cadence))

	// The floor only raises the threshold, never lowers it.
	long := CadenceResult{Frequency: FrequencyBiweekly, MedianIntervalDays: 16}
	assert.Equal(t, 30.0, RecencyThreshold(cfg, long))
}

func TestCheckRecency_AcceptsFreshRejectsStale(t *testing.T) {
	cfg := DefaultConfig()

	cluster := clusterFrom(seriesWithGaps("2025-01-01", []int{30, 30, 30}, -15, DirectionExpense, "m", "a"))
	cadence := CadenceResult{Frequency: FrequencyMonthly, MedianIntervalDays: 30}

	// Last occurrence 2025-04-01; threshold 45 days.
	assert.True(t, CheckRecency(cfg, cluster, cadence, d("2025-04-02")))
	assert.True(t, CheckRecency(cfg, cluster, cadence, d("2025-05-16")))
	assert.False(t, CheckRecency(cfg, cluster, cadence, d("2025-05-17")))
}

func TestCheckRecency_BiweeklyFloorVersusUnflooredInterval(t *testing.T) {
	cfg := DefaultConfig()

	// Biweekly at 20 days since last: inside the 30-day floor, accepted.
	biweekly := clusterFrom(seriesWithGaps("2025-01-03", []int{14, 14, 14}, 1500, DirectionIncome, "payroll", "chk"))
	biCadence := CadenceResult{Frequency: FrequencyBiweekly, MedianIntervalDays: 14}
	// Last occurrence 2025-02-14.
	assert.True(t, CheckRecency(cfg, biweekly, biCadence, d("2025-03-06")))

	// A weekly pattern 22 days stale has no floor: 22 > 7*1.5, rejected.
	weekly := clusterFrom(seriesWithGaps("2025-01-01", []int{7, 7, 7}, -8, DirectionExpense, "carwash", "card"))
	wkCadence := CadenceResult{Frequency: FrequencyWeekly, MedianIntervalDays: 7}
	// Last occurrence 2025-01-22.
	assert.False(t, CheckRecency(cfg, weekly, wkCadence, d("2025-02-13")))
}
