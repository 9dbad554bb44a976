package complexity

// FrequencyTable accumulates the number of times each signature has
// been observed.  The sum of all counts equals the number of
// completed read pairs N; the number of keys equals the number of
// distinct observed signatures S_obs.
type FrequencyTable struct {
	counts map[Signature]int64
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[Signature]int64)}
}

// Record increments the count for sig, creating the entry on first
// occurrence.
func (t *FrequencyTable) Record(sig Signature) {
	t.counts[sig]++
}

// TotalPairs returns N, the number of completed read pairs recorded.
func (t *FrequencyTable) TotalPairs() int64 {
	var n int64
	for _, c := range t.counts {
		n += c
	}
	return n
}

// DistinctCount returns S_obs, the number of distinct signatures.
func (t *FrequencyTable) DistinctCount() int64 {
	return int64(len(t.counts))
}

// FrequencyOfFrequencies returns the number of signatures observed
// exactly k times.  It is computed by a full pass over the table
// rather than from incrementally maintained counters, so it can never
// drift from the underlying counts.
func (t *FrequencyTable) FrequencyOfFrequencies(k int64) int64 {
	var n int64
	for _, c := range t.counts {
		if c == k {
			n++
		}
	}
	return n
}

// Counts returns the occurrence count of every signature, in
// unspecified order.
func (t *FrequencyTable) Counts() []int64 {
	counts := make([]int64, 0, len(t.counts))
	for _, c := range t.counts {
		counts = append(counts, c)
	}
	return counts
}

// Merge adds the counts in other to t, summing counts for signatures
// present in both.  Used by the sharded path to combine per-shard
// tables before estimation; other is left unmodified.
func (t *FrequencyTable) Merge(other *FrequencyTable) {
	for sig, c := range other.counts {
		t.counts[sig] += c
	}
}
