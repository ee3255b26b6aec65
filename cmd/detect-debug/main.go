// detect-debug runs the detection pipeline over a JSON transaction fixture
// and prints every intermediate stage result. It attaches a trace to the same
// Detect call the server uses, so its output always reflects the production
// thresholds.
//
// Usage:
//
//	detect-debug -fixture transactions.json [-now 2025-12-02]
//
// The fixture is a JSON array of transactions:
//
//	[{"id": "t1", "date": "2025-01-01T00:00:00Z", "amount": -49.99,
//	  "direction": "expense", "merchant_group_id": "grp-netflix",
//	  "account_key": "checking-1"}, ...]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/envelopes-app/backend/internal/recurring"
)

func main() {
	fixturePath := flag.String("fixture", "", "path to JSON transaction fixture (required)")
	nowStr := flag.String("now", "", "detection reference date, YYYY-MM-DD (default today)")
	flag.Parse()

	if *fixturePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	now := time.Now().UTC()
	if *nowStr != "" {
		parsed, err := time.Parse("2006-01-02", *nowStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -now value %q: %v\n", *nowStr, err)
			os.Exit(2)
		}
		now = parsed
	}

	data, err := os.ReadFile(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read fixture: %v\n", err)
		os.Exit(1)
	}
	var txns []recurring.Transaction
	if err := json.Unmarshal(data, &txns); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse fixture: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	trace := &recurring.Trace{
		OnGroups: func(groups []recurring.CandidateGroup) {
			fmt.Fprintf(w, "== %d candidate group(s) from %d transaction(s), as of %s ==\n",
				len(groups), len(txns), now.Format("2006-01-02"))
			for _, g := range groups {
				fmt.Fprintf(w, "group\t%s\t%s\t%s\t%d txns\n",
					g.Key.MerchantGroupID, g.Key.AccountKey, g.Key.Direction, len(g.Transactions))
			}
		},
		OnSegments: func(key recurring.GroupKey, segments []recurring.Segment) {
			for i, s := range segments {
				fmt.Fprintf(w, "  segment\t%s\t#%d\t%s..%s\t%d txns\n",
					key.MerchantGroupID, i, s.StartDate, s.EndDate, len(s.Transactions))
			}
		},
		OnClusters: func(key recurring.GroupKey, clusters []recurring.AmountCluster) {
			for _, c := range clusters {
				fmt.Fprintf(w, "  cluster\t%s\t$%.2f\t%d txns\n",
					key.MerchantGroupID, c.Amount, len(c.Transactions))
			}
		},
		OnCadence: func(key recurring.GroupKey, cluster recurring.AmountCluster, cadence recurring.CadenceResult, ok bool) {
			if ok {
				fmt.Fprintf(w, "  cadence\t%s\t$%.2f\t%s\tmedian=%.1fd\tmad=%.1fd\n",
					key.MerchantGroupID, cluster.Amount, cadence.Frequency,
					cadence.MedianIntervalDays, cadence.MAD)
			} else {
				fmt.Fprintf(w, "  cadence\t%s\t$%.2f\tno match\tmedian=%.1fd\n",
					key.MerchantGroupID, cluster.Amount, cadence.MedianIntervalDays)
			}
		},
		OnValidation: func(key recurring.GroupKey, cluster recurring.AmountCluster, result recurring.ValidationResult) {
			fmt.Fprintf(w, "  validation\t%s\t$%.2f\tvalid=%t\tconsistency=%.2f\n",
				key.MerchantGroupID, cluster.Amount, result.Valid, result.DateConsistency)
		},
		OnScore: func(key recurring.GroupKey, cluster recurring.AmountCluster, score float64) {
			fmt.Fprintf(w, "  score\t%s\t$%.2f\t%.3f\n", key.MerchantGroupID, cluster.Amount, score)
		},
		OnRejection: func(r recurring.Rejection) {
			fmt.Fprintf(w, "  REJECT\t%s\t%s\t%s\n", r.Key.MerchantGroupID, r.Stage, r.Reason)
		},
	}

	detector := recurring.NewDetector(recurring.DefaultConfig()).WithTrace(trace)
	outcomes := detector.Detect(txns, now)

	fmt.Fprintf(w, "\n== %d accepted pattern(s) ==\n", len(outcomes))
	for _, o := range outcomes {
		fmt.Fprintf(w, "ACCEPT\t%s\t%s\t%s\t$%.2f\t%s\tconfidence=%.3f\tnext=%s\n",
			o.MerchantGroupID, o.AccountKey, o.Direction, o.RepresentativeAmount,
			o.Frequency, o.ConfidenceScore, o.NextExpectedDate.Format("2006-01-02"))
	}
}
