package store

import (
	"context"
	"errors"
	"time"

	"github.com/envelopes-app/backend/internal/recurring"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the database operations used by the detection service.
type Store interface {
	// Transaction operations. Transactions arrive from the ingestion
	// pipeline already merchant-grouped; detection only ever reads them.
	CreateTransaction(ctx context.Context, userID string, txn recurring.Transaction) error
	ListTransactions(ctx context.Context, userID string, start, end time.Time) ([]recurring.Transaction, error)
	ListUserIDsWithTransactions(ctx context.Context) ([]string, error)

	// Detected pattern operations
	UpsertDetectedPattern(ctx context.Context, pattern *DetectedPattern) error
	GetDetectedPattern(ctx context.Context, userID, patternID string) (*DetectedPattern, error)
	ListDetectedPatterns(ctx context.Context, userID string, includeInactive bool) ([]*DetectedPattern, error)
	MarkPatternInactive(ctx context.Context, userID, patternID string, at time.Time) error

	// Notification operations
	CreateNotification(ctx context.Context, notification *Notification) error
	ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]*Notification, error)
	// HasNotification reports whether a notification of the given type and
	// reference was created for the user within the last withinHours hours,
	// for deduplication.
	HasNotification(ctx context.Context, userID, notifType, referenceID string, withinHours int) (bool, error)
}
