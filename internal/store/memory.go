package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/envelopes-app/backend/internal/recurring"
)

// MemoryStore implements Store with in-memory maps. Used for local
// development and tests.
type MemoryStore struct {
	mu sync.RWMutex

	transactions  map[string][]recurring.Transaction // userID -> transactions
	patterns      map[string]*DetectedPattern        // userID:patternID -> pattern
	notifications map[string]*Notification
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions:  make(map[string][]recurring.Transaction),
		patterns:      make(map[string]*DetectedPattern),
		notifications: make(map[string]*Notification),
	}
}

func (m *MemoryStore) CreateTransaction(ctx context.Context, userID string, txn recurring.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	m.transactions[userID] = append(m.transactions[userID], txn)
	return nil
}

func (m *MemoryStore) ListTransactions(ctx context.Context, userID string, start, end time.Time) ([]recurring.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []recurring.Transaction
	for _, txn := range m.transactions[userID] {
		if txn.Date.Before(start) || txn.Date.After(end) {
			continue
		}
		result = append(result, txn)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *MemoryStore) ListUserIDsWithTransactions(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.transactions))
	for id := range m.transactions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *MemoryStore) UpsertDetectedPattern(ctx context.Context, pattern *DetectedPattern) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := pattern.UserID + ":" + pattern.ID
	if existing, ok := m.patterns[key]; ok && !existing.FirstDetectedAt.IsZero() {
		pattern.FirstDetectedAt = existing.FirstDetectedAt
	}
	cp := *pattern
	m.patterns[key] = &cp
	return nil
}

func (m *MemoryStore) GetDetectedPattern(ctx context.Context, userID, patternID string) (*DetectedPattern, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pattern, ok := m.patterns[userID+":"+patternID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *pattern
	return &cp, nil
}

func (m *MemoryStore) ListDetectedPatterns(ctx context.Context, userID string, includeInactive bool) ([]*DetectedPattern, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*DetectedPattern
	for _, pattern := range m.patterns {
		if pattern.UserID != userID {
			continue
		}
		if !includeInactive && !pattern.Active {
			continue
		}
		cp := *pattern
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ConfidenceScore != result[j].ConfidenceScore {
			return result[i].ConfidenceScore > result[j].ConfidenceScore
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *MemoryStore) MarkPatternInactive(ctx context.Context, userID, patternID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	pattern, ok := m.patterns[userID+":"+patternID]
	if !ok {
		return ErrNotFound
	}
	pattern.Active = false
	pattern.UpdatedAt = at
	return nil
}

func (m *MemoryStore) CreateNotification(ctx context.Context, notification *Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	cp := *notification
	m.notifications[notification.ID] = &cp
	return nil
}

func (m *MemoryStore) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]*Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*Notification
	for _, n := range m.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		cp := *n
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *MemoryStore) HasNotification(ctx context.Context, userID, notifType, referenceID string, withinHours int) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cutoff := time.Now().Add(-time.Duration(withinHours) * time.Hour)
	for _, n := range m.notifications {
		if n.UserID == userID && n.Type == notifType && n.ReferenceID == referenceID && n.CreatedAt.After(cutoff) {
			return true, nil
		}
	}
	return false, nil
}
