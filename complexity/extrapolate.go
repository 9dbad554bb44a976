package complexity

import (
	"fmt"
	"math"
)

// InvalidTargetSizeError is returned when the requested target sample
// size is smaller than the observed sample size.  The formula in
// Extrapolate is an extrapolation, not an interpolation, so targets
// below N are rejected.
type InvalidTargetSizeError struct {
	Target int64 // requested sample size N'
	Pairs  int64 // observed sample size N
}

func (e *InvalidTargetSizeError) Error() string {
	return fmt.Sprintf("target sample size %d is smaller than the %d observed read pairs", e.Target, e.Pairs)
}

// Extrapolate returns the expected number of distinct signatures at a
// sample of target read pairs, given the observed sample of pairs
// read pairs with sObs distinct signatures, f1 singletons, and f0Hat
// estimated undetected signatures (Colwell et al. 2012, eq. 9):
//
//   S(N') = sObs + f0Hat * [1 - (1 - f1/(N*f0Hat + f1))^(N'-N)]
//
// The base of the exponent lies in (0, 1] and N'-N can reach into the
// hundreds of millions, so the power is evaluated in log space; a
// naive math.Pow underflows to zero and silently overstates the
// result.  The return value is clamped into [sObs, target].
//
// With f0Hat = 0 (or f1 = 0) no undetected signatures remain and
// S(N') = sObs for every valid target.
func Extrapolate(pairs, sObs, f1 int64, f0Hat float64, target int64) (float64, error) {
	if target < pairs {
		return 0, &InvalidTargetSizeError{Target: target, Pairs: pairs}
	}
	if f0Hat <= 0 || f1 == 0 {
		return float64(sObs), nil
	}
	ratio := float64(f1) / (float64(pairs)*f0Hat + float64(f1))
	// 1 - (1-ratio)^m, computed as -expm1(m * log1p(-ratio)).
	growth := -math.Expm1(float64(target-pairs) * math.Log1p(-ratio))
	s := float64(sObs) + f0Hat*growth
	if s < float64(sObs) {
		s = float64(sObs)
	}
	if s > float64(target) {
		s = float64(target)
	}
	return s, nil
}
