package recurring

// Trace observes intermediate pipeline results. The debug CLI and any
// diagnostic tooling attach a Trace to the same Detect call the production
// path uses, so there is exactly one copy of every threshold. All fields are
// optional; nil hooks are skipped.
//
// A detector with a non-nil Trace evaluates groups sequentially in key order
// so the observed event stream is deterministic.
type Trace struct {
	OnGroups     func(groups []CandidateGroup)
	OnSegments   func(key GroupKey, segments []Segment)
	OnClusters   func(key GroupKey, clusters []AmountCluster)
	OnCadence    func(key GroupKey, cluster AmountCluster, cadence CadenceResult, ok bool)
	OnValidation func(key GroupKey, cluster AmountCluster, result ValidationResult)
	OnScore      func(key GroupKey, cluster AmountCluster, score float64)
	OnOutcome    func(outcome DetectionOutcome)
	OnRejection  func(rejection Rejection)
}

func (t *Trace) groups(groups []CandidateGroup) {
	if t != nil && t.OnGroups != nil {
		t.OnGroups(groups)
	}
}

func (t *Trace) segments(key GroupKey, segments []Segment) {
	if t != nil && t.OnSegments != nil {
		t.OnSegments(key, segments)
	}
}

func (t *Trace) clusters(key GroupKey, clusters []AmountCluster) {
	if t != nil && t.OnClusters != nil {
		t.OnClusters(key, clusters)
	}
}

func (t *Trace) cadence(key GroupKey, cluster AmountCluster, cadence CadenceResult, ok bool) {
	if t != nil && t.OnCadence != nil {
		t.OnCadence(key, cluster, cadence, ok)
	}
}

func (t *Trace) validation(key GroupKey, cluster AmountCluster, result ValidationResult) {
	if t != nil && t.OnValidation != nil {
		t.OnValidation(key, cluster, result)
	}
}

func (t *Trace) score(key GroupKey, cluster AmountCluster, score float64) {
	if t != nil && t.OnScore != nil {
		t.OnScore(key, cluster, score)
	}
}

func (t *Trace) outcome(o DetectionOutcome) {
	if t != nil && t.OnOutcome != nil {
		t.OnOutcome(o)
	}
}

func (t *Trace) rejection(r Rejection) {
	if t != nil && t.OnRejection != nil {
		t.OnRejection(r)
	}
}
