package complexity

import (
	"fmt"

	"github.com/grailbio/hts/sam"
)

// Orientation is the combined strand byte for the two endpoints of a
// signature, in canonical left/right order.
type Orientation uint8

const (
	ff Orientation = iota // Forward, Forward
	fr                    // Forward, Reverse
	rf                    // Reverse, Forward
	rr                    // Reverse, Reverse
)

// Signature is the canonical duplicate-detection key for a completed
// read pair.  The endpoint with the smaller (reference id, unclipped
// 5' position, strand) resides in left, so two physically identical
// pair placements produce equal Signatures regardless of the order in
// which their mates were observed.  Signatures are comparable and
// usable as map keys.
type Signature struct {
	leftRefID   int
	leftPos     int
	rightRefID  int
	rightPos    int
	orientation Orientation
}

func (s Signature) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d,0x%x)", s.leftRefID, s.leftPos,
		s.rightRefID, s.rightPos, s.orientation)
}

type endpoint struct {
	refID    int
	pos      int
	reversed bool
}

func newEndpoint(r *sam.Record) endpoint {
	return endpoint{
		refID:    r.Ref.ID(),
		pos:      unclippedFivePrimePosition(r),
		reversed: r.Flags&sam.Reverse != 0,
	}
}

// less orders endpoints by reference id, then unclipped 5' position,
// then strand (forward before reverse).
func (e endpoint) less(o endpoint) bool {
	if e.refID != o.refID {
		return e.refID < o.refID
	}
	if e.pos != o.pos {
		return e.pos < o.pos
	}
	return !e.reversed && o.reversed
}

func orientationBytePair(leftReversed, rightReversed bool) Orientation {
	if leftReversed {
		if rightReversed {
			return rr
		}
		return rf
	}
	if rightReversed {
		return fr
	}
	return ff
}

// MakeSignature returns the Signature for a completed mate pair.  It
// is pure and symmetric: MakeSignature(a, b) == MakeSignature(b, a).
// Mates mapped to different references form valid signatures carrying
// both reference ids.
func MakeSignature(a, b *sam.Record) Signature {
	ea, eb := newEndpoint(a), newEndpoint(b)
	if eb.less(ea) {
		ea, eb = eb, ea
	}
	return Signature{
		leftRefID:   ea.refID,
		leftPos:     ea.pos,
		rightRefID:  eb.refID,
		rightPos:    eb.pos,
		orientation: orientationBytePair(ea.reversed, eb.reversed),
	}
}
