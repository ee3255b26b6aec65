package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/envelopes-app/backend/internal/recurring"
)

// Collection names. Field filters below must match the Go struct field names
// (PascalCase) because that is how Firestore serializes the structs.
const (
	collectionTransactions  = "transactions"
	collectionPatterns      = "detectedPatterns"
	collectionNotifications = "notifications"
)

// FirestoreStore implements the Store interface using Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{client: client}
}

// transactionDoc wraps a transaction with its owner for storage.
type transactionDoc struct {
	UserID          string    `firestore:"UserId"`
	ID              string    `firestore:"Id"`
	Date            time.Time `firestore:"Date"`
	Amount          float64   `firestore:"Amount"`
	Direction       string    `firestore:"Direction"`
	MerchantGroupID string    `firestore:"MerchantGroupId"`
	AccountKey      string    `firestore:"AccountKey"`
}

func (s *FirestoreStore) CreateTransaction(ctx context.Context, userID string, txn recurring.Transaction) error {
	doc := transactionDoc{
		UserID:          userID,
		ID:              txn.ID,
		Date:            txn.Date,
		Amount:          txn.Amount,
		Direction:       string(txn.Direction),
		MerchantGroupID: txn.MerchantGroupID,
		AccountKey:      txn.AccountKey,
	}
	_, err := s.client.Collection(collectionTransactions).Doc(userID+":"+txn.ID).Set(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListTransactions(ctx context.Context, userID string, start, end time.Time) ([]recurring.Transaction, error) {
	query := s.client.Collection(collectionTransactions).
		Where("UserId", "==", userID).
		Where("Date", ">=", start).
		Where("Date", "<=", end).
		OrderBy("Date", firestore.Asc)

	var txns []recurring.Transaction
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		var doc transactionDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse transaction: %w", err)
		}
		txns = append(txns, recurring.Transaction{
			ID:              doc.ID,
			Date:            doc.Date,
			Amount:          doc.Amount,
			Direction:       recurring.Direction(doc.Direction),
			MerchantGroupID: doc.MerchantGroupID,
			AccountKey:      doc.AccountKey,
		})
	}
	return txns, nil
}

func (s *FirestoreStore) ListUserIDsWithTransactions(ctx context.Context) ([]string, error) {
	// Distinct aggregation is not available; scan UserId only.
	iter := s.client.Collection(collectionTransactions).Select("UserId").Documents(ctx)
	defer iter.Stop()

	seen := make(map[string]bool)
	var ids []string
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction owners: %w", err)
		}
		userID, _ := snap.Data()["UserId"].(string)
		if userID != "" && !seen[userID] {
			seen[userID] = true
			ids = append(ids, userID)
		}
	}
	return ids, nil
}

func (s *FirestoreStore) UpsertDetectedPattern(ctx context.Context, pattern *DetectedPattern) error {
	ref := s.client.Collection(collectionPatterns).Doc(pattern.UserID + ":" + pattern.ID)

	// Preserve FirstDetectedAt across re-runs.
	if snap, err := ref.Get(ctx); err == nil {
		var existing DetectedPattern
		if err := snap.DataTo(&existing); err == nil && !existing.FirstDetectedAt.IsZero() {
			pattern.FirstDetectedAt = existing.FirstDetectedAt
		}
	}

	if _, err := ref.Set(ctx, pattern); err != nil {
		return fmt.Errorf("failed to upsert detected pattern: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetDetectedPattern(ctx context.Context, userID, patternID string) (*DetectedPattern, error) {
	snap, err := s.client.Collection(collectionPatterns).Doc(userID + ":" + patternID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("detected pattern not found: %w", err)
	}
	var pattern DetectedPattern
	if err := snap.DataTo(&pattern); err != nil {
		return nil, fmt.Errorf("failed to parse detected pattern: %w", err)
	}
	return &pattern, nil
}

func (s *FirestoreStore) ListDetectedPatterns(ctx context.Context, userID string, includeInactive bool) ([]*DetectedPattern, error) {
	query := s.client.Collection(collectionPatterns).Where("UserId", "==", userID)
	if !includeInactive {
		query = query.Where("Active", "==", true)
	}

	var patterns []*DetectedPattern
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list detected patterns: %w", err)
		}
		var pattern DetectedPattern
		if err := snap.DataTo(&pattern); err != nil {
			return nil, fmt.Errorf("failed to parse detected pattern: %w", err)
		}
		patterns = append(patterns, &pattern)
	}
	return patterns, nil
}

func (s *FirestoreStore) MarkPatternInactive(ctx context.Context, userID, patternID string, at time.Time) error {
	ref := s.client.Collection(collectionPatterns).Doc(userID + ":" + patternID)
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "Active", Value: false},
		{Path: "UpdatedAt", Value: at},
	})
	if err != nil {
		return fmt.Errorf("failed to mark pattern inactive: %w", err)
	}
	return nil
}

func (s *FirestoreStore) CreateNotification(ctx context.Context, notification *Notification) error {
	_, err := s.client.Collection(collectionNotifications).Doc(notification.ID).Set(ctx, notification)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]*Notification, error) {
	query := s.client.Collection(collectionNotifications).
		Where("UserId", "==", userID)
	if unreadOnly {
		query = query.Where("IsRead", "==", false)
	}
	query = query.OrderBy("CreatedAt", firestore.Desc)

	var notifications []*Notification
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list notifications: %w", err)
		}
		var n Notification
		if err := snap.DataTo(&n); err != nil {
			return nil, fmt.Errorf("failed to parse notification: %w", err)
		}
		notifications = append(notifications, &n)
	}
	return notifications, nil
}

func (s *FirestoreStore) HasNotification(ctx context.Context, userID, notifType, referenceID string, withinHours int) (bool, error) {
	cutoff := time.Now().Add(-time.Duration(withinHours) * time.Hour)
	iter := s.client.Collection(collectionNotifications).
		Where("UserId", "==", userID).
		Where("Type", "==", notifType).
		Where("ReferenceId", "==", referenceID).
		Where("CreatedAt", ">", cutoff).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check for existing notification: %w", err)
	}
	return true, nil
}
