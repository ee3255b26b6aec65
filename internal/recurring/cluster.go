package recurring

import "sort"

// AmountCluster is the subset of a segment's transactions sharing one rounded
// absolute amount. One merchant can legitimately bill several distinct
// recurring amounts (two subscription tiers), so a segment may yield several
// clusters and each is carried through the remaining stages on its own.
type AmountCluster struct {
	// AmountCents is the rounded absolute amount the cluster keys on.
	AmountCents  int64
	Amount       float64
	Transactions []Transaction
}

// ClusterByAmount buckets a segment's transactions by exact rounded absolute
// amount (whole cents) and keeps buckets of at least PrimaryClusterMin.
//
// When no bucket qualifies, the segment has at least FallbackSegmentMin
// transactions and carries at least two distinct amounts, the minimum drops
// to FallbackClusterMin. The fallback exists for merchants billing two or
// more legitimate recurring amounts that would otherwise never individually
// reach the primary minimum.
func ClusterByAmount(cfg Config, segment Segment) []AmountCluster {
	buckets := make(map[int64][]Transaction)
	for _, t := range segment.Transactions {
		c := t.AbsAmountCents()
		buckets[c] = append(buckets[c], t)
	}

	clusters := collectClusters(buckets, cfg.PrimaryClusterMin)
	if len(clusters) == 0 &&
		len(segment.Transactions) >= cfg.FallbackSegmentMin &&
		len(buckets) >= 2 {
		clusters = collectClusters(buckets, cfg.FallbackClusterMin)
	}

	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].AmountCents < clusters[j].AmountCents
	})
	return clusters
}

func collectClusters(buckets map[int64][]Transaction, min int) []AmountCluster {
	var clusters []AmountCluster
	for cents, txns := range buckets {
		if len(txns) < min {
			continue
		}
		// Bucket members keep their segment order, which is ascending by
		// date already.
		clusters = append(clusters, AmountCluster{
			AmountCents:  cents,
			Amount:       float64(cents) / 100,
			Transactions: txns,
		})
	}
	return clusters
}
