package complexity

import (
	"github.com/grailbio/hts/sam"
)

// isPrimary returns true if the record is neither a secondary nor a
// supplementary alignment.
func isPrimary(r *sam.Record) bool {
	return r.Flags&(sam.Secondary|sam.Supplementary) == 0
}

// leftClipDistance returns the total length of the soft and hard clip
// operations on the left flank of the alignment.
func leftClipDistance(r *sam.Record) int {
	d := 0
	for _, op := range r.Cigar {
		if op.Type() == sam.CigarSoftClipped || op.Type() == sam.CigarHardClipped {
			d += op.Len()
		} else {
			break
		}
	}
	return d
}

// rightClipDistance returns the total length of the soft and hard clip
// operations on the right flank of the alignment.
func rightClipDistance(r *sam.Record) int {
	d := 0
	for i := len(r.Cigar) - 1; i >= 0; i-- {
		op := r.Cigar[i]
		if op.Type() == sam.CigarSoftClipped || op.Type() == sam.CigarHardClipped {
			d += op.Len()
		} else {
			break
		}
	}
	return d
}

// unclippedStart returns the reference position the first base of the
// read would occupy if the left flank had not been clipped.  May be
// negative near the start of a reference.
func unclippedStart(r *sam.Record) int {
	return r.Pos - leftClipDistance(r)
}

// unclippedEnd returns the reference position the last base of the
// read would occupy if the right flank had not been clipped.
func unclippedEnd(r *sam.Record) int {
	return r.End() - 1 + rightClipDistance(r)
}

// unclippedFivePrimePosition returns the unclipped position of the 5'
// end of the read: the unclipped start for a forward read, the
// unclipped end for a reverse read.  A soft-clipped copy of an
// otherwise identical alignment therefore maps to the same coordinate
// as its unclipped twin.
func unclippedFivePrimePosition(r *sam.Record) int {
	if r.Flags&sam.Reverse != 0 {
		return unclippedEnd(r)
	}
	return unclippedStart(r)
}
