package complexity

import (
	"github.com/grailbio/hts/sam"
)

var (
	chr1, _   = sam.NewReference("chr1", "", "", 1000, nil, nil)
	chr2, _   = sam.NewReference("chr2", "", "", 2000, nil, nil)
	header, _ = sam.NewHeader(nil, []*sam.Reference{chr1, chr2})

	r1F = sam.Paired | sam.Read1
	r1R = sam.Paired | sam.Read1 | sam.Reverse
	r2F = sam.Paired | sam.Read2
	r2R = sam.Paired | sam.Read2 | sam.Reverse
	u1  = sam.Paired | sam.Read1 | sam.Unmapped
	sec = sam.Paired | sam.Read1 | sam.Secondary
	sup = sam.Paired | sam.Read2 | sam.Supplementary
	frg = sam.Flags(0) // unpaired fragment

	cigar10M = sam.Cigar{
		sam.NewCigarOp(sam.CigarMatch, 10),
	}
	cigar1S8M1S = sam.Cigar{
		sam.NewCigarOp(sam.CigarSoftClipped, 1),
		sam.NewCigarOp(sam.CigarMatch, 8),
		sam.NewCigarOp(sam.CigarSoftClipped, 1),
	}
	cigar1H8M1H = sam.Cigar{
		sam.NewCigarOp(sam.CigarHardClipped, 1),
		sam.NewCigarOp(sam.CigarMatch, 8),
		sam.NewCigarOp(sam.CigarHardClipped, 1),
	}
	cigar2S8M = sam.Cigar{
		sam.NewCigarOp(sam.CigarSoftClipped, 2),
		sam.NewCigarOp(sam.CigarMatch, 8),
	}
	cigar8M2S = sam.Cigar{
		sam.NewCigarOp(sam.CigarMatch, 8),
		sam.NewCigarOp(sam.CigarSoftClipped, 2),
	}
	cigar2S7M1S = sam.Cigar{
		sam.NewCigarOp(sam.CigarSoftClipped, 2),
		sam.NewCigarOp(sam.CigarMatch, 7),
		sam.NewCigarOp(sam.CigarSoftClipped, 1),
	}
)

// newPair returns the two primary alignments of a pair: a forward
// read1 at pos and a reverse read2 whose unclipped 5' end lands at
// matePos+9.
func newPair(name string, ref *sam.Reference, pos int, mateRef *sam.Reference, matePos int) (*sam.Record, *sam.Record) {
	a := NewRecord(name, ref, pos, r1F, matePos, mateRef, cigar10M)
	b := NewRecord(name, mateRef, matePos, r2R, pos, ref, cigar10M)
	return a, b
}
