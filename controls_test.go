package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dopplersim/doppler"
)

func startParams() doppler.Parameters {
	return doppler.Parameters{BaseFrequency: 1000, Distance: 5, AngleDegrees: 0, Speed: 20, SourceMoving: true}
}

func TestApplyControls_HeldKeysScaleWithDt(t *testing.T) {
	in := controlInput{angle: 1, speed: 1, frequency: -1, distance: 1}
	p := applyControls(startParams(), in, defaultControlRates(), 0.5)

	assert.InDelta(t, 30, p.AngleDegrees, 1e-12)
	assert.InDelta(t, 30, p.Speed, 1e-12)
	assert.InDelta(t, 975, p.BaseFrequency, 1e-12)
	assert.InDelta(t, 7.5, p.Distance, 1e-12)
	assert.True(t, p.SourceMoving)
}

func TestApplyControls_NoInputIsNoop(t *testing.T) {
	p := applyControls(startParams(), controlInput{}, defaultControlRates(), 1.0/60)
	assert.Equal(t, startParams(), p)
}

func TestApplyControls_ToggleMode(t *testing.T) {
	p := applyControls(startParams(), controlInput{toggleMode: true}, defaultControlRates(), 1.0/60)
	assert.False(t, p.SourceMoving)
	p = applyControls(p, controlInput{toggleMode: true}, defaultControlRates(), 1.0/60)
	assert.True(t, p.SourceMoving)
}

func TestApplyControls_AngleIsNotWrapped(t *testing.T) {
	p := startParams()
	for i := 0; i < 10; i++ {
		p = applyControls(p, controlInput{angle: -1}, defaultControlRates(), 1)
	}
	assert.InDelta(t, -600, p.AngleDegrees, 1e-9)
}

func TestClampParameters(t *testing.T) {
	p := clampParameters(doppler.Parameters{BaseFrequency: 0.2, Distance: 0.1, Speed: -4, AngleDegrees: -30})
	assert.Equal(t, minBaseFrequency, p.BaseFrequency)
	assert.Equal(t, minDistance, p.Distance)
	assert.Equal(t, minSpeed, p.Speed)
	assert.Equal(t, -30.0, p.AngleDegrees)

	in := controlInput{speed: -1, frequency: -1, distance: -1}
	p = applyControls(startParams(), in, defaultControlRates(), 100)
	assert.Equal(t, 0.0, p.Speed)
	assert.Equal(t, 1.0, p.BaseFrequency)
	assert.Equal(t, 0.5, p.Distance)
}

func TestAdjustTPS(t *testing.T) {
	assert.Equal(t, 70, adjustTPS(60, tpsStep))
	assert.Equal(t, minTPS, adjustTPS(minTPS, -tpsStep))
	assert.Equal(t, maxTPS, adjustTPS(maxTPS-5, tpsStep))
}

func TestAutoSweepInput(t *testing.T) {
	g := &Game{autoSweepRand: rand.New(rand.NewSource(1))}
	g.enableAutoSweep(time.Minute)
	assert.True(t, g.autoSweep)

	now := time.Now()
	in := g.autoSweepInput(now)
	assert.Equal(t, 1.0, in.angle)
	assert.Contains(t, []float64{-1, 0, 1}, in.speed)
	assert.False(t, in.toggleMode)

	in = g.autoSweepInput(now.Add(autoSweepModePeriod + time.Second))
	assert.True(t, in.toggleMode)
	in = g.autoSweepInput(now.Add(autoSweepModePeriod + 2*time.Second))
	assert.False(t, in.toggleMode)
}
