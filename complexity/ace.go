package complexity

// aceRareCutoff separates rare from common signatures.  Chao & Shen
// 2004 recommend 10.
const aceRareCutoff = 10

// ACE returns the abundance-based coverage estimate of total distinct
// signatures in the library and the implied number of undetected
// signatures (Chao & Lee 1992; eq. 16 of Colwell et al. 2012).  Only
// rare signatures, those observed at most aceRareCutoff times,
// inform the coverage estimate; common ones are assumed fully
// detected.
//
// ok is false when the estimator is undefined for the input: no rare
// signatures, zero estimated coverage (every rare signature a
// singleton), or a degenerate coefficient-of-variation denominator.
// Callers should fall back to Chao1 alone in that case.
func ACE(t *FrequencyTable) (estimate, f0Hat float64, ok bool) {
	var sRare, xRare int64
	freq := make(map[int64]int64)
	for _, c := range t.Counts() {
		if c <= aceRareCutoff {
			sRare++
			xRare += c
			freq[c]++
		}
	}
	f1 := freq[1]
	if xRare == 0 || xRare == f1 {
		// No rare signatures, or no coverage signal beyond singletons.
		return 0, 0, false
	}
	cAce := 1.0 - float64(f1)/float64(xRare)

	var topSum, botSum float64
	for k := int64(1); k <= aceRareCutoff; k++ {
		fk := float64(freq[k])
		kf := float64(k)
		topSum += kf * (kf - 1) * fk
		botSum += kf * fk * (kf*fk - 1)
	}
	if botSum == 0 {
		return 0, 0, false
	}
	covVarSq := float64(sRare)/cAce*topSum/botSum - 1.0
	if covVarSq < 0 {
		covVarSq = 0
	}
	f0Hat = float64(sRare)/cAce + float64(f1)/cAce*covVarSq - float64(sRare)
	estimate = float64(t.DistinctCount()) + f0Hat
	return estimate, f0Hat, true
}
