package complexity

import (
	"github.com/grailbio/hts/sam"
)

// AddStatus describes what the matcher did with a record.
type AddStatus int

const (
	// RecordSkipped means the record was unmapped, secondary,
	// supplementary or unpaired and can never contribute a signature.
	RecordSkipped AddStatus = iota
	// RecordPending means the record was stored to wait for its mate.
	RecordPending
	// PairCompleted means the record completed a pair, which was
	// returned to the caller.
	PairCompleted
)

// Pair holds the two primary alignments of a read pair.  R1 is the
// read flagged first-in-pair when that flag is usable.
type Pair struct {
	R1 *sam.Record
	R2 *sam.Record
}

// PairMatcher pairs primary mapped reads by query name.  Records need
// not be mate-adjacent or name-sorted; the first-seen read of each
// pair waits in a pending table until its mate arrives, so the table
// size tracks the number of currently open pairs, not the input size.
//
// PairMatcher is not safe for concurrent use.  For sharded inputs,
// run one matcher per shard and merge the resulting frequency tables
// (see EstimateSharded).
type PairMatcher struct {
	pending map[string]*sam.Record

	orphans                int
	secondarySupplementary int
	unmappedReads          int
	unpairedReads          int
}

// NewPairMatcher returns an empty matcher.
func NewPairMatcher() *PairMatcher {
	return &PairMatcher{pending: make(map[string]*sam.Record)}
}

// Add feeds the next record from the input stream to the matcher.
// When the record completes a pair, Add returns that pair with status
// PairCompleted; each pair is returned exactly once, as soon as both
// mates have been seen.  Records returned in a Pair or skipped are no
// longer referenced by the matcher.
func (m *PairMatcher) Add(r *sam.Record) (Pair, AddStatus) {
	if !isPrimary(r) {
		m.secondarySupplementary++
		return Pair{}, RecordSkipped
	}
	if r.Flags&sam.Unmapped != 0 {
		m.unmappedReads++
		return Pair{}, RecordSkipped
	}
	if r.Flags&sam.Paired == 0 {
		m.unpairedReads++
		return Pair{}, RecordSkipped
	}
	mate, found := m.pending[r.Name]
	if !found {
		m.pending[r.Name] = r
		return Pair{}, RecordPending
	}
	delete(m.pending, r.Name)
	if r.Flags&sam.Read1 != 0 {
		return Pair{R1: r, R2: mate}, PairCompleted
	}
	return Pair{R1: mate, R2: r}, PairCompleted
}

// Flush discards the reads still waiting for a mate at end of stream
// and adds them to the orphan count.  It returns the number of reads
// discarded by this call.  Orphans are a diagnostic, not an error.
func (m *PairMatcher) Flush() int {
	n := len(m.pending)
	for name, r := range m.pending {
		sam.PutInFreePool(r)
		delete(m.pending, name)
	}
	m.orphans += n
	return n
}

// PendingCount returns the number of currently open pairs.
func (m *PairMatcher) PendingCount() int { return len(m.pending) }

// Orphans returns the total number of reads dropped by Flush because
// their mate never appeared in the input.
func (m *PairMatcher) Orphans() int { return m.orphans }

// SecondarySupplementary returns the number of secondary or
// supplementary records skipped.
func (m *PairMatcher) SecondarySupplementary() int { return m.secondarySupplementary }

// UnmappedReads returns the number of unmapped primary records skipped.
func (m *PairMatcher) UnmappedReads() int { return m.unmappedReads }

// UnpairedReads returns the number of primary mapped records skipped
// because they are not flagged as paired.
func (m *PairMatcher) UnpairedReads() int { return m.unpairedReads }
