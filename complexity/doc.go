/*Package complexity estimates the complexity of a sequencing library,
  and the duplication rate expected at a deeper sequencing depth, from
  the alignments of a partial run.

  Concepts:

  Each completed read pair is reduced to a signature: the unclipped 5'
  reference coordinates of both mates, together with their strands,
  ordered canonically so that the signature does not depend on which
  mate appears first in the input or which mate is flagged
  first-in-pair.  Two pairs with equal signatures are duplicates in the
  same sense that duplicate-marking tools use: same reference, same
  unclipped 5' position, same orientation for both reads.

  The number of times each signature occurs forms a frequency table.
  From the table's frequency-of-frequencies counts -- f1 signatures
  seen exactly once, f2 seen exactly twice -- the bias-corrected Chao1
  estimator gives a non-parametric lower bound on the number of
  distinct signatures present in the library, observed or not.  The
  abundance-based coverage estimator (ACE, Chao & Shen 2004) is
  computed alongside it when the input permits.

  Given the Chao1 estimate of undetected signatures, the expected
  number of distinct signatures at a larger read-pair count follows
  the individual-based rarefaction/extrapolation formula of Colwell et
  al. 2012 (J Plant Ecol 5:3-21, eq. 9).  The extrapolated duplication
  rate at N' pairs is then 1 - S(N')/N'.

  Pairing:

  Input records are not required to be mate-adjacent or name-sorted.
  The matcher holds the first-seen read of each pair in a pending
  table keyed by query name, and emits the pair the moment the second
  mate arrives, so memory is bounded by the number of simultaneously
  open pairs rather than by the input size.  Unmapped, secondary,
  supplementary and unpaired records never contribute a signature.
  Reads whose mate never appears are dropped and surfaced as a
  diagnostic count.

  All estimates are point estimates.  No confidence intervals are
  computed, and no attempt is made to model sequencing error.
*/
package complexity
