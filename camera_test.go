package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_TargetLandsOnScreenCenter(t *testing.T) {
	c := newOrbitCamera()
	vp := c.viewport(800, 600)

	sp, ok := vp.project(c.target)
	require.True(t, ok)
	assert.InDelta(t, 400, sp.X, 1e-9)
	assert.InDelta(t, 300, sp.Y, 1e-9)

	focal := 300 / math.Tan(math.Pi/6)
	assert.InDelta(t, focal/c.target.Sub(c.position).Length(), sp.Scale, 1e-9)
}

func TestProject_Orientation(t *testing.T) {
	c := newOrbitCamera()
	vp := c.viewport(800, 600)

	right, ok := vp.project(c.target.Add(vp.right))
	require.True(t, ok)
	assert.Greater(t, right.X, 400.0)
	assert.InDelta(t, 300, right.Y, 1e-9)

	up, ok := vp.project(c.target.Add(vec3{0, 1, 0}))
	require.True(t, ok)
	assert.Less(t, up.Y, 300.0)
}

func TestProject_BehindCamera(t *testing.T) {
	c := newOrbitCamera()
	vp := c.viewport(800, 600)

	behind := c.position.Add(c.position.Sub(c.target))
	_, ok := vp.project(behind)
	assert.False(t, ok)

	_, ok = vp.project(c.position)
	assert.False(t, ok, "the eye sits inside the near plane")
}

func TestOrbitCamera_StartsOnOrbit(t *testing.T) {
	c := newOrbitCamera()
	start := c.position
	assert.InDelta(t, 5, start.Y, 1e-12)
	assert.InDelta(t, orbitRadius, start.Sub(vec3{0, orbitHeight, 0}).Length(), 1e-12)

	c.orbit(0, 0)
	assert.InDelta(t, start.X, c.position.X, 1e-12)
	assert.InDelta(t, start.Y, c.position.Y, 1e-12)
	assert.InDelta(t, start.Z, c.position.Z, 1e-12)
}

func TestOrbit_ClampsPitch(t *testing.T) {
	c := newOrbitCamera()
	c.orbit(0, 1e6)
	assert.Equal(t, maxOrbitPitch, c.pitch)
	assert.InDelta(t, orbitRadius*math.Sin(maxOrbitPitch)+orbitHeight, c.position.Y, 1e-9)

	c.orbit(0, -1e6)
	assert.Equal(t, minOrbitPitch, c.pitch)

	horizontal := math.Hypot(c.position.X, c.position.Z)
	assert.InDelta(t, orbitRadius*math.Cos(minOrbitPitch), horizontal, 1e-9)
}

func TestOrbit_Yaw(t *testing.T) {
	c := newOrbitCamera()
	yaw := c.yaw
	c.orbit(100, 0)
	assert.InDelta(t, yaw+100*orbitSensitivity, c.yaw, 1e-12)
	assert.Equal(t, vec3{0, entityHeight, 0}, c.target, "orbit never moves the target")
}

func TestZoom(t *testing.T) {
	c := newOrbitCamera()
	c.zoom(1)
	assert.Equal(t, defaultFovY-wheelFovStep, c.fovY)

	c.zoom(0.005)
	assert.Equal(t, defaultFovY-wheelFovStep, c.fovY)

	c.zoom(100)
	assert.Equal(t, minFovY, c.fovY)
	c.zoom(-100)
	assert.Equal(t, maxFovY, c.fovY)
}

func TestVec3(t *testing.T) {
	x := vec3{1, 0, 0}
	y := vec3{0, 1, 0}
	assert.Equal(t, vec3{0, 0, 1}, x.Cross(y))
	assert.Equal(t, 0.0, x.Dot(y))
	assert.Equal(t, vec3{}, vec3{}.Normalize())
	assert.InDelta(t, 1, vec3{3, 4, 12}.Normalize().Length(), 1e-12)
}
