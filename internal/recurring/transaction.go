// Package recurring implements detection of recurring financial patterns
// (subscriptions, bills, paychecks) from a user's transaction history.
package recurring

import (
	"fmt"
	"math"
	"time"
)

// Direction indicates whether money moved in or out.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// Transaction is the immutable input record for detection. Transactions are
// assumed to already carry a merchant group ID assigned by the upstream
// merchant-matching subsystem.
type Transaction struct {
	ID              string    `json:"id" firestore:"Id"`
	Date            time.Time `json:"date" firestore:"Date"`
	Amount          float64   `json:"amount" firestore:"Amount"`
	Direction       Direction `json:"direction" firestore:"Direction"`
	MerchantGroupID string    `json:"merchant_group_id" firestore:"MerchantGroupId"`
	AccountKey      string    `json:"account_key" firestore:"AccountKey"`
}

// Day returns the transaction date truncated to a UTC calendar day. All
// interval math operates on calendar days, never on time-of-day.
func (t Transaction) Day() time.Time {
	return time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, time.UTC)
}

// AbsAmountCents returns the absolute amount rounded to whole cents. Amount
// clustering keys on this value so float equality never decides a bucket.
func (t Transaction) AbsAmountCents() int64 {
	return int64(math.Round(math.Abs(t.Amount) * 100))
}

// ValidateTransaction reports whether a transaction is usable for detection.
// A malformed transaction is dropped on its own; it never aborts the run.
func ValidateTransaction(t Transaction) error {
	if t.ID == "" {
		return fmt.Errorf("transaction has empty id")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction %s has zero date", t.ID)
	}
	if t.Amount == 0 {
		return fmt.Errorf("transaction %s has zero amount", t.ID)
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return fmt.Errorf("transaction %s has non-finite amount", t.ID)
	}
	if t.Direction != DirectionIncome && t.Direction != DirectionExpense {
		return fmt.Errorf("transaction %s has unknown direction %q", t.ID, t.Direction)
	}
	return nil
}

// daysBetween returns the whole number of calendar days from a to b.
func daysBetween(a, b time.Time) float64 {
	return math.Round(b.Sub(a).Hours() / 24)
}
