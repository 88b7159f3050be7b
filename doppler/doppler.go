// Package doppler computes the classical acoustic Doppler shift for a single
// source and a single receiver in still air.
package doppler

import "math"

const (
	// SpeedOfSound is the speed of sound in air at 20C, in m/s.
	SpeedOfSound = 343.0

	// SonicClamp is the smallest magnitude allowed for the moving-source
	// denominator (c - vr). Closer to the sonic boundary the denominator is
	// replaced by +/-SonicClamp, keeping the result large but finite. This is
	// an approximation, not physics.
	SonicClamp = 1e-3
)

// Parameters describes one simulation state. Distance is only used by the
// scene layout; the formulas ignore it.
type Parameters struct {
	BaseFrequency float64 // Hz, emitted in the source's rest frame; must be > 0
	Distance      float64 // m, source to receiver
	AngleDegrees  float64 // between the velocity vector and the line of sight
	Speed         float64 // m/s, magnitude of the moving entity's velocity; must be >= 0
	SourceMoving  bool    // true: source moves, receiver still. false: the reverse
}

// Result holds the model outputs for one Parameters value.
type Result struct {
	Observed float64 // Hz at the receiver
	Radial   float64 // m/s along the line of sight
	Clamped  bool    // the sonic clamp replaced the denominator
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadialSpeed projects the moving entity's velocity onto the line of sight.
//
// The sign only means "closing distance" under the caller's layout: with the
// source at the origin, the receiver on +X and the angle measured from +X, a
// positive value at angle 0 points from source toward receiver.
func RadialSpeed(p Parameters) float64 {
	return p.Speed * math.Cos(Radians(p.AngleDegrees))
}

// ObservedFrequency returns the frequency heard at the receiver together with
// the radial speed used to compute it.
func ObservedFrequency(p Parameters) (observed, radial float64) {
	r := Evaluate(p)
	return r.Observed, r.Radial
}

// Evaluate runs the model. A moving source scales by c/(c-vr), a moving
// receiver by (c+vr)/c. Ratios are formed first so vr == 0 returns the base
// frequency exactly.
func Evaluate(p Parameters) Result {
	const c = SpeedOfSound
	vr := RadialSpeed(p)
	if !p.SourceMoving {
		return Result{Observed: p.BaseFrequency * ((c + vr) / c), Radial: vr}
	}
	denom := c - vr
	clamped := false
	if math.Abs(denom) < SonicClamp {
		clamped = true
		if denom >= 0 {
			denom = SonicClamp
		} else {
			denom = -SonicClamp
		}
	}
	return Result{Observed: p.BaseFrequency * (c / denom), Radial: vr, Clamped: clamped}
}
