package recurring

import (
	"sort"
	"time"
)

// GroupKey identifies a candidate group. Transactions from the same merchant
// are evaluated per direction and per funding account: a Netflix charge on
// two different cards is two independent candidates.
type GroupKey struct {
	MerchantGroupID string
	Direction       Direction
	AccountKey      string
}

// CandidateGroup is all in-window transactions sharing one GroupKey, sorted
// ascending by date. Built fresh per run and never mutated afterwards.
type CandidateGroup struct {
	Key          GroupKey
	Transactions []Transaction
}

// GroupCandidates partitions transactions into candidate groups. Transactions
// without a merchant group ID, outside the lookback window, or failing
// validation are dropped individually. Groups smaller than MinGroupSize are
// dropped: they cannot support any later statistical inference.
//
// The returned groups are sorted by key so downstream iteration is
// deterministic regardless of input order.
func GroupCandidates(cfg Config, txns []Transaction, now time.Time) []CandidateGroup {
	windowStart := day(now).AddDate(0, -cfg.LookbackMonths, 0)
	windowEnd := day(now)

	byKey := make(map[GroupKey][]Transaction)
	for _, t := range txns {
		if err := ValidateTransaction(t); err != nil {
			continue
		}
		if t.MerchantGroupID == "" {
			continue
		}
		d := t.Day()
		if d.Before(windowStart) || d.After(windowEnd) {
			continue
		}
		key := GroupKey{
			MerchantGroupID: t.MerchantGroupID,
			Direction:       t.Direction,
			AccountKey:      t.AccountKey,
		}
		byKey[key] = append(byKey[key], t)
	}

	groups := make([]CandidateGroup, 0, len(byKey))
	for key, group := range byKey {
		if len(group) < cfg.MinGroupSize {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			if !group[i].Day().Equal(group[j].Day()) {
				return group[i].Day().Before(group[j].Day())
			}
			return group[i].ID < group[j].ID
		})
		groups = append(groups, CandidateGroup{Key: key, Transactions: group})
	}

	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i].Key, groups[j].Key
		if a.MerchantGroupID != b.MerchantGroupID {
			return a.MerchantGroupID < b.MerchantGroupID
		}
		if a.AccountKey != b.AccountKey {
			return a.AccountKey < b.AccountKey
		}
		return a.Direction < b.Direction
	})
	return groups
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
