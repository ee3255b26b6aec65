package recurring

import "time"

// DetectionOutcome is the externally visible unit of work product: one
// accepted recurring pattern. Outcomes are suitable for upserting into the
// persistence layer keyed by (merchantGroupID, accountKey, amount) and for
// driving downstream notifications.
type DetectionOutcome struct {
	MerchantGroupID           string    `json:"merchant_group_id"`
	AccountKey                string    `json:"account_key"`
	Direction                 Direction `json:"direction"`
	Frequency                 Frequency `json:"frequency"`
	MedianIntervalDays        float64   `json:"median_interval_days"`
	ConfidenceScore           float64   `json:"confidence_score"`
	LastOccurrenceDate        time.Time `json:"last_occurrence_date"`
	NextExpectedDate          time.Time `json:"next_expected_date"`
	RepresentativeAmount      float64   `json:"representative_amount"`
	RepresentativeAmountCents int64     `json:"representative_amount_cents"`
	OccurrenceCount           int       `json:"occurrence_count"`
	MatchedTransactionIDs     []string  `json:"matched_transaction_ids"`
}

// Stage names a pipeline stage for rejection reporting and tracing.
type Stage string

const (
	StageGrouping     Stage = "grouping"
	StageSegmentation Stage = "segmentation"
	StageClustering   Stage = "clustering"
	StageCadence      Stage = "cadence"
	StageValidation   Stage = "validation"
	StageScoring      Stage = "scoring"
	StageRecency      Stage = "recency"
)

// Rejection records why a candidate did not produce an outcome. Rejections
// are values for logging and diagnostics, never errors: a rejected cluster is
// simply absent from the run's output and gets re-evaluated with fresh data
// on the next run.
type Rejection struct {
	Key         GroupKey `json:"key"`
	AmountCents int64    `json:"amount_cents,omitempty"`
	Stage       Stage    `json:"stage"`
	Reason      string   `json:"reason"`
}
