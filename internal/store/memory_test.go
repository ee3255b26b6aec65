package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envelopes-app/backend/internal/recurring"
)

func TestMemoryStore_Transactions(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	dates := []time.Time{
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		err := st.CreateTransaction(ctx, "user-1", recurring.Transaction{
			ID:              string(rune('a' + i)),
			Date:            d,
			Amount:          -10,
			Direction:       recurring.DirectionExpense,
			MerchantGroupID: "grp-1",
			AccountKey:      "acct-1",
		})
		require.NoError(t, err)
	}

	// Window excludes the March transaction; results sorted by date.
	txns, err := st.ListTransactions(ctx, "user-1",
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "b", txns[0].ID)
	assert.Equal(t, "c", txns[1].ID)

	// Unknown user yields nothing.
	txns, err = st.ListTransactions(ctx, "user-2", time.Time{}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestMemoryStore_ListUserIDsWithTransactions(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	for _, userID := range []string{"user-b", "user-a"} {
		err := st.CreateTransaction(ctx, userID, recurring.Transaction{
			ID:        "t1",
			Date:      time.Now(),
			Amount:    -5,
			Direction: recurring.DirectionExpense,
		})
		require.NoError(t, err)
	}

	ids, err := st.ListUserIDsWithTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-a", "user-b"}, ids)
}

func TestMemoryStore_UpsertPreservesFirstDetectedAt(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	first := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, st.UpsertDetectedPattern(ctx, &DetectedPattern{
		ID: "p1", UserID: "user-1", Active: true,
		FirstDetectedAt: first, UpdatedAt: first,
	}))
	require.NoError(t, st.UpsertDetectedPattern(ctx, &DetectedPattern{
		ID: "p1", UserID: "user-1", Active: true,
		FirstDetectedAt: later, UpdatedAt: later,
	}))

	got, err := st.GetDetectedPattern(ctx, "user-1", "p1")
	require.NoError(t, err)
	assert.Equal(t, first, got.FirstDetectedAt)
	assert.Equal(t, later, got.UpdatedAt)
}

func TestMemoryStore_GetDetectedPattern_NotFound(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.GetDetectedPattern(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ListDetectedPatterns_FiltersInactive(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, st.UpsertDetectedPattern(ctx, &DetectedPattern{
		ID: "p-active", UserID: "user-1", Active: true, ConfidenceScore: 0.9, FirstDetectedAt: now,
	}))
	require.NoError(t, st.UpsertDetectedPattern(ctx, &DetectedPattern{
		ID: "p-stale", UserID: "user-1", Active: true, ConfidenceScore: 0.7, FirstDetectedAt: now,
	}))
	require.NoError(t, st.MarkPatternInactive(ctx, "user-1", "p-stale", now))

	active, err := st.ListDetectedPatterns(ctx, "user-1", false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "p-active", active[0].ID)

	all, err := st.ListDetectedPatterns(ctx, "user-1", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemoryStore_MarkPatternInactive_NotFound(t *testing.T) {
	st := NewMemoryStore()

	err := st.MarkPatternInactive(context.Background(), "user-1", "missing", time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Notifications(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	n := &Notification{
		UserID:      "user-1",
		Type:        NotificationTypePatternDetected,
		Title:       "Recurring Transaction Detected",
		ReferenceID: "p1",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, st.CreateNotification(ctx, n))
	assert.NotEmpty(t, n.ID)

	got, err := st.ListNotifications(ctx, "user-1", false)
	require.NoError(t, err)
	require.Len(t, got, 1)

	exists, err := st.HasNotification(ctx, "user-1", NotificationTypePatternDetected, "p1", 720)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = st.HasNotification(ctx, "user-1", NotificationTypePatternDetected, "other", 720)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryStore_ListNotifications_UnreadOnly(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, st.CreateNotification(ctx, &Notification{
		ID: "n1", UserID: "user-1", IsRead: true, CreatedAt: now.Add(-time.Hour),
	}))
	require.NoError(t, st.CreateNotification(ctx, &Notification{
		ID: "n2", UserID: "user-1", IsRead: false, CreatedAt: now,
	}))

	unread, err := st.ListNotifications(ctx, "user-1", true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "n2", unread[0].ID)
}
