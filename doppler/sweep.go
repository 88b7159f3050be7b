package doppler

import "math"

// MaxSweepSamples bounds the length of a single sweep.
const MaxSweepSamples = 1 << 20

// Sample is one point of a parameter sweep.
type Sample struct {
	X        float64
	Observed float64
	Radial   float64
	Clamped  bool
}

// SweepAngle evaluates p for every angle in [from, to] spaced by step.
func SweepAngle(p Parameters, from, to, step float64) []Sample {
	return sweep(from, to, step, func(x float64) Parameters {
		q := p
		q.AngleDegrees = x
		return q
	})
}

// SweepSpeed evaluates p for every speed in [from, to] spaced by step.
func SweepSpeed(p Parameters, from, to, step float64) []Sample {
	return sweep(from, to, step, func(x float64) Parameters {
		q := p
		q.Speed = x
		return q
	})
}

func sweep(from, to, step float64, at func(float64) Parameters) []Sample {
	if !finite(from) || !finite(to) || !finite(step) || step <= 0 || to < from {
		return nil
	}
	count := math.Floor((to-from)/step+1e-9) + 1
	if count > MaxSweepSamples {
		return nil
	}
	n := int(count)
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		x := from + float64(i)*step
		if x > to {
			x = to
		}
		r := Evaluate(at(x))
		samples = append(samples, Sample{X: x, Observed: r.Observed, Radial: r.Radial, Clamped: r.Clamped})
	}
	return samples
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
