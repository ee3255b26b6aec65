package recurring

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"
)

// Detector runs the full detection pipeline over one user's transactions.
// Detection is a pure function of its input: no clock reads, no randomness,
// no I/O. The single "now" reference is captured by the caller and threaded
// through every stage so a run straddling a day boundary stays consistent.
type Detector struct {
	cfg   Config
	trace *Trace
}

// NewDetector creates a detector with the given configuration.
func NewDetector(cfg Config) *Detector {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Detector{cfg: cfg}
}

// WithTrace returns a copy of the detector that reports every intermediate
// stage result to t. Traced detectors evaluate groups sequentially so the
// event stream is reproducible.
func (d *Detector) WithTrace(t *Trace) *Detector {
	return &Detector{cfg: d.cfg, trace: t}
}

// Config returns the detector's configuration.
func (d *Detector) Config() Config {
	return d.cfg
}

// Detect is the sole public entry point of the pipeline. It returns every
// accepted recurring pattern in the lookback window ending at now, sorted by
// confidence descending (ties broken by group key and amount so identical
// input always yields identical output).
//
// Candidate groups are independent; they are evaluated by a bounded worker
// pool with no shared mutable state.
func (d *Detector) Detect(txns []Transaction, now time.Time) []DetectionOutcome {
	groups := GroupCandidates(d.cfg, txns, now)
	d.trace.groups(groups)

	perGroup := make([][]DetectionOutcome, len(groups))

	if d.trace != nil || d.cfg.Workers == 1 {
		for i, g := range groups {
			perGroup[i] = d.evaluateGroup(g, now)
		}
	} else {
		var wg sync.WaitGroup
		jobs := make(chan int)
		for w := 0; w < d.cfg.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					perGroup[i] = d.evaluateGroup(groups[i], now)
				}
			}()
		}
		for i := range groups {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	var outcomes []DetectionOutcome
	for _, o := range perGroup {
		outcomes = append(outcomes, o...)
	}

	sort.Slice(outcomes, func(i, j int) bool {
		a, b := outcomes[i], outcomes[j]
		if a.ConfidenceScore != b.ConfidenceScore {
			return a.ConfidenceScore > b.ConfidenceScore
		}
		if a.MerchantGroupID != b.MerchantGroupID {
			return a.MerchantGroupID < b.MerchantGroupID
		}
		if a.AccountKey != b.AccountKey {
			return a.AccountKey < b.AccountKey
		}
		return a.RepresentativeAmountCents < b.RepresentativeAmountCents
	})
	return outcomes
}

// evaluateGroup walks one candidate group through segmentation, clustering
// and the per-cluster accept/reject chain. Every exit path is terminal: a
// rejected cluster is reported to the trace and dropped.
func (d *Detector) evaluateGroup(group CandidateGroup, now time.Time) []DetectionOutcome {
	segments := SegmentByGaps(d.cfg, group)
	d.trace.segments(group.Key, segments)

	latest := LatestSegment(segments)
	if len(latest.Transactions) < d.cfg.MinGroupSize {
		d.trace.rejection(Rejection{
			Key:    group.Key,
			Stage:  StageSegmentation,
			Reason: fmt.Sprintf("latest segment has %d transactions, need %d", len(latest.Transactions), d.cfg.MinGroupSize),
		})
		return nil
	}

	clusters := ClusterByAmount(d.cfg, latest)
	d.trace.clusters(group.Key, clusters)
	if len(clusters) == 0 {
		d.trace.rejection(Rejection{
			Key:    group.Key,
			Stage:  StageClustering,
			Reason: "no amount bucket satisfies the primary or fallback minimum",
		})
		return nil
	}

	var outcomes []DetectionOutcome
	for _, cluster := range clusters {
		if outcome, ok := d.evaluateCluster(group.Key, cluster, now); ok {
			outcomes = append(outcomes, outcome)
		}
	}
	return outcomes
}

func (d *Detector) evaluateCluster(key GroupKey, cluster AmountCluster, now time.Time) (DetectionOutcome, bool) {
	cadence, ok := InferCadence(d.cfg, cluster)
	d.trace.cadence(key, cluster, cadence, ok)
	if !ok {
		d.trace.rejection(Rejection{
			Key:         key,
			AmountCents: cluster.AmountCents,
			Stage:       StageCadence,
			Reason:      "median interval matches no canonical frequency",
		})
		return DetectionOutcome{}, false
	}

	validation := ValidatePattern(d.cfg, cluster, cadence)
	d.trace.validation(key, cluster, validation)
	if !validation.Valid {
		d.trace.rejection(Rejection{
			Key:         key,
			AmountCents: cluster.AmountCents,
			Stage:       StageValidation,
			Reason: fmt.Sprintf("date consistency %.2f or MAD %.1fd inconsistent with %s cadence",
				validation.DateConsistency, cadence.MAD, cadence.Frequency),
		})
		return DetectionOutcome{}, false
	}

	score := ScorePattern(d.cfg, cluster, cadence, validation)
	d.trace.score(key, cluster, score)
	if score < d.cfg.MinConfidence {
		d.trace.rejection(Rejection{
			Key:         key,
			AmountCents: cluster.AmountCents,
			Stage:       StageScoring,
			Reason:      fmt.Sprintf("confidence %.2f below %.2f", score, d.cfg.MinConfidence),
		})
		return DetectionOutcome{}, false
	}

	if !CheckRecency(d.cfg, cluster, cadence, now) {
		d.trace.rejection(Rejection{
			Key:         key,
			AmountCents: cluster.AmountCents,
			Stage:       StageRecency,
			Reason:      fmt.Sprintf("last occurrence older than %.0f days", RecencyThreshold(d.cfg, cadence)),
		})
		return DetectionOutcome{}, false
	}

	last := cluster.Transactions[len(cluster.Transactions)-1].Day()
	ids := make([]string, 0, len(cluster.Transactions))
	for _, t := range cluster.Transactions {
		ids = append(ids, t.ID)
	}

	outcome := DetectionOutcome{
		MerchantGroupID:           key.MerchantGroupID,
		AccountKey:                key.AccountKey,
		Direction:                 key.Direction,
		Frequency:                 cadence.Frequency,
		MedianIntervalDays:        cadence.MedianIntervalDays,
		ConfidenceScore:           score,
		LastOccurrenceDate:        last,
		NextExpectedDate:          last.AddDate(0, 0, int(math.Round(cadence.MedianIntervalDays))),
		RepresentativeAmount:      cluster.Amount,
		RepresentativeAmountCents: cluster.AmountCents,
		OccurrenceCount:           len(cluster.Transactions),
		MatchedTransactionIDs:     ids,
	}
	d.trace.outcome(outcome)
	return outcome, true
}
