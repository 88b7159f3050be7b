package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dopplersim/doppler"
)

func TestHudLines(t *testing.T) {
	p := startParams()
	lines := hudLines(p, doppler.Evaluate(p))

	assert.Equal(t, "Doppler Shift Simulator", lines[0])
	assert.Contains(t, lines, "Base freq: 1000.0 Hz")
	assert.Contains(t, lines, "Distance: 5.0 m")
	assert.Contains(t, lines, "Angle: 0.0 deg")
	assert.Contains(t, lines, "Speed: 20.0 m/s (radial: 20.0)")
	assert.Contains(t, lines, "Observed freq: 1061.92 Hz")
	assert.Contains(t, lines, "Mode: Moving SOURCE")
	assert.NotContains(t, lines, "! near the speed of sound: value clamped")
	assert.Equal(t, controlsLegend, lines[len(lines)-len(controlsLegend):])
}

func TestHudLines_Receiver(t *testing.T) {
	p := startParams()
	p.SourceMoving = false
	lines := hudLines(p, doppler.Evaluate(p))

	assert.Contains(t, lines, "Observed freq: 1058.31 Hz")
	assert.Contains(t, lines, "Mode: Moving RECEIVER")
}

func TestHudLines_ClampWarning(t *testing.T) {
	p := startParams()
	p.Speed = doppler.SpeedOfSound
	r := doppler.Evaluate(p)

	assert.True(t, r.Clamped)
	assert.Contains(t, hudLines(p, r), "! near the speed of sound: value clamped")
}

func TestTextBox(t *testing.T) {
	w, h := textBox([]string{"ab", "abcd", ""})
	assert.Equal(t, 4*hudGlyphWidth, w)
	assert.Equal(t, 3*hudLineHeight, h)

	w, h = textBox(nil)
	assert.Zero(t, w)
	assert.Zero(t, h)
}
