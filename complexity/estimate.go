package complexity

import (
	"errors"

	"github.com/grailbio/hts/sam"
	"github.com/montanaflynn/stats"
)

// ErrEmptyLibrary is returned by Result when no completed read pairs
// were observed; every downstream estimate is undefined in that case.
var ErrEmptyLibrary = errors.New("no completed read pairs in input")

// RecordSource is the iterator contract the estimator consumes.  The
// alignment-container readers in encoding/bamio implement it.
type RecordSource interface {
	// Scan advances to the next record, returning false at end of
	// stream or on error.
	Scan() bool
	// Record returns the current record.  Valid only after a Scan
	// that returned true.  Ownership of the record passes to the
	// caller.
	Record() *sam.Record
	// Err returns the error that terminated scanning, or nil on a
	// normal end of stream.
	Err() error
}

// CountSummary summarizes the distribution of per-signature
// occurrence counts, as a quick skew diagnostic for QC triage.
type CountSummary struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Result holds the numbers computed from one run.  All fields are
// plain values for the reporting layer to format; a Result is never
// mutated after Estimator.Result returns it.
type Result struct {
	// Pairs is N, the number of completed read pairs observed.
	Pairs int64
	// DistinctSignatures is S_obs.
	DistinctSignatures int64
	// Singletons is f1, signatures observed exactly once.
	Singletons int64
	// Doubletons is f2, signatures observed exactly twice.
	Doubletons int64

	// Chao1 is the bias-corrected lower bound on total library
	// complexity, and UndetectedSignatures its implied f0.
	Chao1                float64
	UndetectedSignatures float64

	// TargetPairs is N', the requested extrapolation size, and
	// ExtrapolatedSignatures the expected S(N').
	TargetPairs            int64
	ExtrapolatedSignatures float64

	ObservedDupRate     float64
	ExtrapolatedDupRate float64

	// ACE-based estimates, valid only when ACEValid is set; the
	// estimator is undefined for some inputs (see ACE).
	ACEValid                  bool
	ACE                       float64
	ACEUndetectedSignatures   float64
	ACEExtrapolatedSignatures float64
	ACEExtrapolatedDupRate    float64

	// Orphans counts reads dropped because their mate never appeared
	// in the input.  Non-fatal; reported for diagnostics.
	Orphans int
	// SecondarySupplementary, UnmappedReads and UnpairedReads count
	// records filtered before pairing.
	SecondarySupplementary int
	UnmappedReads          int
	UnpairedReads          int

	CountSummary CountSummary
}

// Estimator runs the record stream -> matcher -> signature ->
// frequency table pipeline and computes a Result on demand.  Not safe
// for concurrent use; see EstimateSharded for the parallel path.
type Estimator struct {
	matcher *PairMatcher
	table   *FrequencyTable
}

// NewEstimator returns an Estimator with an empty frequency table.
func NewEstimator() *Estimator {
	return &Estimator{
		matcher: NewPairMatcher(),
		table:   NewFrequencyTable(),
	}
}

// Table returns the estimator's frequency table.
func (e *Estimator) Table() *FrequencyTable { return e.table }

// AddRecord feeds one record through the pipeline.  Records that
// complete a pair are reduced to a signature and recycled; skipped
// records are recycled immediately.
func (e *Estimator) AddRecord(r *sam.Record) {
	pair, status := e.matcher.Add(r)
	switch status {
	case PairCompleted:
		e.table.Record(MakeSignature(pair.R1, pair.R2))
		sam.PutInFreePool(pair.R1)
		sam.PutInFreePool(pair.R2)
	case RecordSkipped:
		sam.PutInFreePool(r)
	}
}

// Accumulate drains src through the pipeline.  Errors from the source
// are propagated unchanged; on error the accumulated state must not
// be used for estimation.
func (e *Estimator) Accumulate(src RecordSource) error {
	for src.Scan() {
		e.AddRecord(src.Record())
	}
	return src.Err()
}

// Result flushes the matcher and computes all estimates for the given
// target sample size.  It returns ErrEmptyLibrary when no pairs were
// completed and an InvalidTargetSizeError when targetPairs is smaller
// than the number of observed pairs.
func (e *Estimator) Result(targetPairs int64) (*Result, error) {
	e.matcher.Flush()
	return computeResult(e.table, e.matcher, targetPairs)
}

func computeResult(table *FrequencyTable, matcher *PairMatcher, targetPairs int64) (*Result, error) {
	pairs := table.TotalPairs()
	if pairs == 0 {
		return nil, ErrEmptyLibrary
	}
	sObs := table.DistinctCount()
	f1 := table.FrequencyOfFrequencies(1)
	f2 := table.FrequencyOfFrequencies(2)

	chao1 := Chao1(sObs, f1, f2)
	f0Hat := chao1 - float64(sObs)
	extrapolated, err := Extrapolate(pairs, sObs, f1, f0Hat, targetPairs)
	if err != nil {
		return nil, err
	}

	r := &Result{
		Pairs:                  pairs,
		DistinctSignatures:     sObs,
		Singletons:             f1,
		Doubletons:             f2,
		Chao1:                  chao1,
		UndetectedSignatures:   f0Hat,
		TargetPairs:            targetPairs,
		ExtrapolatedSignatures: extrapolated,
		ObservedDupRate:        1.0 - float64(sObs)/float64(pairs),
		ExtrapolatedDupRate:    1.0 - extrapolated/float64(targetPairs),
		Orphans:                matcher.Orphans(),
		SecondarySupplementary: matcher.SecondarySupplementary(),
		UnmappedReads:          matcher.UnmappedReads(),
		UnpairedReads:          matcher.UnpairedReads(),
		CountSummary:           summarizeCounts(table.Counts()),
	}

	if ace, aceF0, ok := ACE(table); ok {
		aceExtrapolated, err := Extrapolate(pairs, sObs, f1, aceF0, targetPairs)
		if err != nil {
			return nil, err
		}
		r.ACEValid = true
		r.ACE = ace
		r.ACEUndetectedSignatures = aceF0
		r.ACEExtrapolatedSignatures = aceExtrapolated
		r.ACEExtrapolatedDupRate = 1.0 - aceExtrapolated/float64(targetPairs)
	}
	return r, nil
}

func summarizeCounts(counts []int64) CountSummary {
	if len(counts) == 0 {
		return CountSummary{}
	}
	data := make(stats.Float64Data, len(counts))
	for i, c := range counts {
		data[i] = float64(c)
	}
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	return CountSummary{Min: min, Max: max, Mean: mean, Median: median}
}
