package complexity

// Chao1 returns the bias-corrected Chao1 point estimate of the total
// number of distinct signatures in the library, observed plus
// undetected, from the observed distinct count sObs and the
// singleton/doubleton counts f1 and f2 (Chao 1984; Colwell et al.
// 2012).  The estimate is a non-parametric lower bound:
//
//   f2 > 0: S = sObs + f1*(f1-1) / (2*(f2+1))
//   f2 = 0: S = sObs + f1*(f1-1) / 2
//
// With f1 = 0 the estimate degenerates to sObs: nothing suggests any
// signature remains undetected.  Chao1(sObs, f1, f2) >= sObs always.
func Chao1(sObs, f1, f2 int64) float64 {
	if f1 == 0 {
		return float64(sObs)
	}
	correction := float64(f1) * float64(f1-1) / 2.0
	if f2 > 0 {
		correction /= float64(f2 + 1)
	}
	return float64(sObs) + correction
}
