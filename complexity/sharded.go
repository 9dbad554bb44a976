package complexity

import (
	"github.com/grailbio/base/traverse"
)

// EstimateSharded accumulates each record source in its own estimator,
// in parallel, then merges the per-shard frequency tables into a
// single global table and computes the estimates once.
//
// Each source must be self-contained: both mates of every pair it
// holds must appear in the same source, otherwise the halves are
// counted as orphans.  When partitioning a coordinate-sorted input by
// reference, route the rare cross-reference pair to the shard of the
// smaller reference id.
//
// Per-shard tables are written only by their own goroutine; the
// global table is written only during the merge, after all shards
// have finished, so no locking is needed.
func EstimateSharded(srcs []RecordSource, targetPairs int64) (*Result, error) {
	estimators := make([]*Estimator, len(srcs))
	err := traverse.Each(len(srcs), func(i int) error {
		estimators[i] = NewEstimator()
		if err := estimators[i].Accumulate(srcs[i]); err != nil {
			return err
		}
		estimators[i].matcher.Flush()
		return nil
	})
	if err != nil {
		return nil, err
	}

	global := NewFrequencyTable()
	diag := NewPairMatcher()
	for _, e := range estimators {
		global.Merge(e.table)
		diag.orphans += e.matcher.orphans
		diag.secondarySupplementary += e.matcher.secondarySupplementary
		diag.unmappedReads += e.matcher.unmappedReads
		diag.unpairedReads += e.matcher.unpairedReads
	}
	return computeResult(global, diag, targetPairs)
}
