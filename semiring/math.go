package semiring

import "math"

// LogZero is the log-space additive identity: the log-likelihood of an
// impossible event.
var LogZero = math.Inf(-1)

// LogAdd returns log(exp(a) + exp(b)) without overflow.
//
// The computation rewrites the sum as max + log1p(exp(min−max)), so the
// exponent argument is always ≤ 0. Either operand equal to LogZero passes
// the other through unchanged.
func LogAdd(a, b float64) float64 {
	if a == LogZero {
		return b
	}
	if b == LogZero {
		return a
	}
	if a < b {
		a, b = b, a
	}

	return a + math.Log1p(math.Exp(b-a))
}

// LogAddOrMax combines two log-likelihoods: max(a, b) under Viterbi,
// LogAdd(a, b) otherwise. This is the single combine rule of the
// forward/backward engine.
func LogAddOrMax(viterbi bool, a, b float64) float64 {
	if viterbi {
		return math.Max(a, b)
	}

	return LogAdd(a, b)
}

// ApproxEqual reports whether a and b agree to within the given relative
// tolerance: |a − b| ≤ tol × (|a| + |b|). Exact equality (including between
// infinities of the same sign) always passes.
func ApproxEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= tol*(math.Abs(a)+math.Abs(b))
}
