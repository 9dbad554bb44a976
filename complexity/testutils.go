package complexity

import (
	"github.com/grailbio/hts/sam"
)

// NewRecord returns a minimal record for tests.
func NewRecord(name string, ref *sam.Reference, pos int, flags sam.Flags, matePos int, mateRef *sam.Reference, cigar sam.Cigar) *sam.Record {
	r := sam.GetFromFreePool()
	r.Name = name
	r.Ref = ref
	r.Pos = pos
	r.MatePos = matePos
	r.MateRef = mateRef
	r.Flags = flags
	r.Cigar = cigar
	return r
}

// SliceSource is a RecordSource over an in-memory slice, in the
// manner of the fake providers used to test the BAM pipeline.
type SliceSource struct {
	Records []*sam.Record
	next    int
	rec     *sam.Record
}

// Scan implements RecordSource.
func (s *SliceSource) Scan() bool {
	if s.next >= len(s.Records) {
		return false
	}
	s.rec = s.Records[s.next]
	s.next++
	return true
}

// Record implements RecordSource.
func (s *SliceSource) Record() *sam.Record { return s.rec }

// Err implements RecordSource.
func (s *SliceSource) Err() error { return nil }
