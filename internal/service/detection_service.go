package service

import (
	"context"
	"fmt"
	"time"

	"github.com/envelopes-app/backend/internal/logger"
	"github.com/envelopes-app/backend/internal/recurring"
	"github.com/envelopes-app/backend/internal/store"
)

// DetectionService runs recurring-pattern detection over stored transactions
// and persists the results.
type DetectionService struct {
	store    store.Store
	detector *recurring.Detector
	triggers *NotificationTrigger
}

// NewDetectionService creates a detection service.
func NewDetectionService(st store.Store, detector *recurring.Detector) *DetectionService {
	return &DetectionService{
		store:    st,
		detector: detector,
		triggers: NewNotificationTrigger(st),
	}
}

// DetectionResult summarizes a single user's detection run.
type DetectionResult struct {
	UserID           string                       `json:"userId"`
	TransactionCount int                          `json:"transactionCount"`
	Outcomes         []recurring.DetectionOutcome `json:"outcomes"`
	DeactivatedCount int                          `json:"deactivatedCount"`
}

// DetectForUser loads the user's transactions for the detector's lookback
// window, runs detection as of now, and reconciles the stored patterns:
// detected patterns are upserted, previously active patterns that no longer
// surface are marked inactive. Newly detected patterns trigger a
// notification.
func (s *DetectionService) DetectForUser(ctx context.Context, userID string, now time.Time) (*DetectionResult, error) {
	log := logger.FromContext(ctx).With().Str("user_id", userID).Logger()

	cfg := s.detector.Config()
	windowStart := now.AddDate(0, -cfg.LookbackMonths, 0)
	txns, err := s.store.ListTransactions(ctx, userID, windowStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	outcomes := s.detector.Detect(txns, now)

	// Patterns active before this run; anything not re-detected goes inactive.
	previous, err := s.store.ListDetectedPatterns(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list detected patterns: %w", err)
	}
	stillActive := make(map[string]bool, len(outcomes))

	deactivated := 0
	for i := range outcomes {
		o := outcomes[i]
		patternID := store.PatternID(o)
		stillActive[patternID] = true

		isNew := true
		for _, p := range previous {
			if p.ID == patternID {
				isNew = false
				break
			}
		}

		pattern := &store.DetectedPattern{
			ID:                        patternID,
			UserID:                    userID,
			MerchantGroupID:           o.MerchantGroupID,
			AccountKey:                o.AccountKey,
			Direction:                 o.Direction,
			Frequency:                 o.Frequency,
			MedianIntervalDays:        o.MedianIntervalDays,
			ConfidenceScore:           o.ConfidenceScore,
			LastOccurrenceDate:        o.LastOccurrenceDate,
			NextExpectedDate:          o.NextExpectedDate,
			RepresentativeAmount:      o.RepresentativeAmount,
			RepresentativeAmountCents: o.RepresentativeAmountCents,
			OccurrenceCount:           o.OccurrenceCount,
			MatchedTransactionIDs:     o.MatchedTransactionIDs,
			Active:                    true,
			FirstDetectedAt:           now,
			UpdatedAt:                 now,
		}
		if err := s.store.UpsertDetectedPattern(ctx, pattern); err != nil {
			return nil, fmt.Errorf("failed to upsert pattern %s: %w", patternID, err)
		}

		if isNew {
			s.triggers.PatternDetected(ctx, userID, pattern)
		}
	}

	for _, p := range previous {
		if stillActive[p.ID] {
			continue
		}
		if err := s.store.MarkPatternInactive(ctx, userID, p.ID, now); err != nil {
			return nil, fmt.Errorf("failed to deactivate pattern %s: %w", p.ID, err)
		}
		deactivated++
	}

	log.Info().
		Int("transactions", len(txns)).
		Int("patterns", len(outcomes)).
		Int("deactivated", deactivated).
		Msg("detection run completed")

	return &DetectionResult{
		UserID:           userID,
		TransactionCount: len(txns),
		Outcomes:         outcomes,
		DeactivatedCount: deactivated,
	}, nil
}

// SweepResult summarizes a detection sweep across all users.
type SweepResult struct {
	UsersProcessed int `json:"usersProcessed"`
	PatternsFound  int `json:"patternsFound"`
	ErrorCount     int `json:"errorCount"`
}

// RunDetectionSweep runs detection for every user with stored transactions.
// Designed to be called by Cloud Scheduler without user authentication.
// Per-user failures are logged and counted, not fatal; context cancellation
// stops the sweep.
func (s *DetectionService) RunDetectionSweep(ctx context.Context, now time.Time) (*SweepResult, error) {
	log := logger.FromContext(ctx)

	userIDs, err := s.store.ListUserIDsWithTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := &SweepResult{}
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		res, err := s.DetectForUser(ctx, userID, now)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("detection failed for user")
			result.ErrorCount++
			continue
		}
		result.UsersProcessed++
		result.PatternsFound += len(res.Outcomes)
	}

	log.Info().
		Int("users", result.UsersProcessed).
		Int("patterns", result.PatternsFound).
		Int("errors", result.ErrorCount).
		Msg("detection sweep completed")

	return result, nil
}

// ListRecurring returns the user's detected patterns, most confident first.
func (s *DetectionService) ListRecurring(ctx context.Context, userID string, includeInactive bool) ([]*store.DetectedPattern, error) {
	patterns, err := s.store.ListDetectedPatterns(ctx, userID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list detected patterns: %w", err)
	}
	return patterns, nil
}
