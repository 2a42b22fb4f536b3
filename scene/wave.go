package scene

// Comparisons at the bounds tolerate accumulated float error, so a value that
// lands on max after n equal steps counts as having reached it.
const boundEpsilon = 1e-9

// TriangularWave advances value by dir*step and flips dir once a bound is
// reached (inclusive). dir is +1 or -1.
func TriangularWave(value, dir, step, min, max float64) (float64, float64) {
	value += dir * step
	if value >= max-boundEpsilon {
		dir = -1
	} else if value <= min+boundEpsilon {
		dir = 1
	}
	return value, dir
}

// WrapStep moves value by delta inside [-limit, limit]. Moving down it jumps
// to +limit once it reaches -limit; moving up it jumps to -limit once it
// reaches +limit.
func WrapStep(value, delta, limit float64) float64 {
	value += delta
	switch {
	case delta < 0 && value <= -limit+boundEpsilon:
		return limit
	case delta > 0 && value >= limit-boundEpsilon:
		return -limit
	}
	return value
}
