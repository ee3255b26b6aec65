package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/envelopes-app/backend/internal/logger"
	"github.com/envelopes-app/backend/internal/store"
)

// NotificationTrigger handles creating notifications based on detection events.
type NotificationTrigger struct {
	store store.Store
}

func NewNotificationTrigger(store store.Store) *NotificationTrigger {
	return &NotificationTrigger{store: store}
}

// PatternDetected creates a notification for a newly detected recurring
// pattern. Deduplication: only one notification per pattern per 30 days.
// Failures are logged, never propagated; notifications are best-effort.
func (t *NotificationTrigger) PatternDetected(ctx context.Context, userID string, pattern *store.DetectedPattern) {
	log := logger.FromContext(ctx)

	exists, err := t.store.HasNotification(ctx, userID,
		store.NotificationTypePatternDetected, pattern.ID, 720) // 720 hours = 30 days
	if err != nil {
		log.Error().Err(err).Msg("failed to check for existing pattern notification")
		return
	}
	if exists {
		return
	}

	cadence := string(pattern.Frequency)
	amount := fmt.Sprintf("$%.2f", float64(pattern.RepresentativeAmountCents)/100)

	notification := &store.Notification{
		ID:            uuid.New().String(),
		UserID:        userID,
		Type:          store.NotificationTypePatternDetected,
		Title:         "Recurring Transaction Detected",
		Message:       fmt.Sprintf("We spotted a %s %s pattern. Want to budget for it?", cadence, amount),
		ReferenceID:   pattern.ID,
		ReferenceType: "detected_pattern",
		IsRead:        false,
		CreatedAt:     time.Now(),
		Metadata: map[string]string{
			"frequency":     cadence,
			"next_expected": pattern.NextExpectedDate.Format("2006-01-02"),
		},
	}

	if err := t.store.CreateNotification(ctx, notification); err != nil {
		log.Error().Err(err).Str("pattern_id", pattern.ID).Msg("failed to create pattern notification")
	}
}
