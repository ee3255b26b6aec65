package recurring

// Segment is a gap-free contiguous run of a candidate group's transactions.
// Transactions are sorted ascending by date; segments of one group are
// disjoint and ordered oldest first.
type Segment struct {
	Transactions []Transaction
	StartDate    string
	EndDate      string
}

// SegmentByGaps walks a group's chronological transactions and starts a new
// segment whenever consecutive dates are further apart than the gap
// tolerance. A merchant that was cancelled and later restarted under a new
// schedule shows up as multiple segments; only the most recent one can
// represent a currently active pattern.
func SegmentByGaps(cfg Config, group CandidateGroup) []Segment {
	if len(group.Transactions) == 0 {
		return nil
	}

	var segments []Segment
	current := []Transaction{group.Transactions[0]}
	for _, t := range group.Transactions[1:] {
		prev := current[len(current)-1]
		if daysBetween(prev.Day(), t.Day()) > cfg.GapToleranceDays {
			segments = append(segments, newSegment(current))
			current = nil
		}
		current = append(current, t)
	}
	segments = append(segments, newSegment(current))
	return segments
}

// LatestSegment returns the most recent segment, or an empty segment when the
// group has none. Older segments represent patterns that may have ended and
// are not evaluated further.
func LatestSegment(segments []Segment) Segment {
	if len(segments) == 0 {
		return Segment{}
	}
	return segments[len(segments)-1]
}

func newSegment(txns []Transaction) Segment {
	return Segment{
		Transactions: txns,
		StartDate:    txns[0].Day().Format("2006-01-02"),
		EndDate:      txns[len(txns)-1].Day().Format("2006-01-02"),
	}
}
