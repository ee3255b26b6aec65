package store

import (
	"fmt"
	"time"

	"github.com/envelopes-app/backend/internal/recurring"
)

// DetectedPattern is the persisted form of a detection outcome. Patterns are
// upserted under a deterministic ID so re-running detection refreshes the
// existing record instead of duplicating it.
type DetectedPattern struct {
	ID                        string              `json:"id" firestore:"Id"`
	UserID                    string              `json:"user_id" firestore:"UserId"`
	MerchantGroupID           string              `json:"merchant_group_id" firestore:"MerchantGroupId"`
	AccountKey                string              `json:"account_key" firestore:"AccountKey"`
	Direction                 recurring.Direction `json:"direction" firestore:"Direction"`
	Frequency                 recurring.Frequency `json:"frequency" firestore:"Frequency"`
	MedianIntervalDays        float64             `json:"median_interval_days" firestore:"MedianIntervalDays"`
	ConfidenceScore           float64             `json:"confidence_score" firestore:"ConfidenceScore"`
	LastOccurrenceDate        time.Time           `json:"last_occurrence_date" firestore:"LastOccurrenceDate"`
	NextExpectedDate          time.Time           `json:"next_expected_date" firestore:"NextExpectedDate"`
	RepresentativeAmount      float64             `json:"representative_amount" firestore:"RepresentativeAmount"`
	RepresentativeAmountCents int64               `json:"representative_amount_cents" firestore:"RepresentativeAmountCents"`
	OccurrenceCount           int                 `json:"occurrence_count" firestore:"OccurrenceCount"`
	MatchedTransactionIDs     []string            `json:"matched_transaction_ids" firestore:"MatchedTransactionIds"`
	Active                    bool                `json:"active" firestore:"Active"`
	FirstDetectedAt           time.Time           `json:"first_detected_at" firestore:"FirstDetectedAt"`
	UpdatedAt                 time.Time           `json:"updated_at" firestore:"UpdatedAt"`
}

// PatternID builds the deterministic upsert key for a detection outcome:
// one record per (merchant, account, direction, amount) per user.
func PatternID(o recurring.DetectionOutcome) string {
	return fmt.Sprintf("%s:%s:%s:%d", o.MerchantGroupID, o.AccountKey, o.Direction, o.RepresentativeAmountCents)
}

// Notification types emitted by the detection service.
const (
	NotificationTypePatternDetected = "recurring_pattern_detected"
)

// Notification is an in-app notification record.
type Notification struct {
	ID            string            `json:"id" firestore:"Id"`
	UserID        string            `json:"user_id" firestore:"UserId"`
	Type          string            `json:"type" firestore:"Type"`
	Title         string            `json:"title" firestore:"Title"`
	Message       string            `json:"message" firestore:"Message"`
	ReferenceID   string            `json:"reference_id" firestore:"ReferenceId"`
	ReferenceType string            `json:"reference_type" firestore:"ReferenceType"`
	IsRead        bool              `json:"is_read" firestore:"IsRead"`
	CreatedAt     time.Time         `json:"created_at" firestore:"CreatedAt"`
	Metadata      map[string]string `json:"metadata,omitempty" firestore:"Metadata"`
}
