package peers

import (
	"math"
)

// Curve modes. Curving is off unless a challenge explicitly enables one.
const (
	CurveBell   = "bell"
	CurveLinear = "linear"
	CurveSqrt   = "sqrt"
)

// DefaultCurveTarget is the median the curve pulls scores toward.
const DefaultCurveTarget = 70.0

// Curve transforms a raw score toward target using the peer distribution.
// The shift is damped by the score's z-score so extreme scores move less
// than central ones, and the result stays in [0,100]. Unknown modes and
// degenerate distributions (zero stddev) leave the score unchanged.
func Curve(mode string, score int, st *Stats, target float64) int {
	if st == nil || st.StdDev == 0 {
		return score
	}

	raw := float64(score)
	shift := target - st.Mean

	var scaled float64
	switch mode {
	case CurveLinear:
		scaled = shift
	case CurveSqrt:
		scaled = math.Copysign(math.Sqrt(math.Abs(shift))*3, shift)
	case CurveBell:
		// Bell: full shift at the mean, tapering with distance.
		scaled = shift
	default:
		return score
	}

	// Extreme scores shift less: damping falls off with |z|.
	z := (raw - st.Mean) / st.StdDev
	damping := 1 / (1 + math.Abs(z))
	if mode == CurveBell {
		damping = math.Exp(-z * z / 2)
	}

	curved := raw + scaled*damping
	return clampScore(int(math.Round(curved)))
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
