package main

import (
	"math"

	"dopplersim/doppler"
)

// vec3 is a world-space vector in meters. +Y is up; the scene lies on XZ.
type vec3 struct {
	X, Y, Z float64
}

func (v vec3) Add(o vec3) vec3      { return vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v vec3) Sub(o vec3) vec3      { return vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v vec3) Scale(s float64) vec3 { return vec3{v.X * s, v.Y * s, v.Z * s} }
func (v vec3) Dot(o vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v x o.
func (v vec3) Cross(o vec3) vec3 {
	return vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector along v, or the zero vector.
func (v vec3) Normalize() vec3 {
	l := v.Length()
	if l == 0 {
		return vec3{}
	}
	return v.Scale(1 / l)
}

// orbitCamera is a perspective camera looking at a fixed target. Right-drag
// moves it on a sphere around the world Y axis.
type orbitCamera struct {
	position vec3
	target   vec3
	up       vec3
	fovY     float64 // vertical field of view, degrees
	yaw      float64
	pitch    float64
}

func newOrbitCamera() *orbitCamera {
	c := &orbitCamera{
		target: vec3{0, entityHeight, 0},
		up:     vec3{0, 1, 0},
		fovY:   defaultFovY,
		yaw:    math.Pi / 4,
		pitch:  math.Asin((5 - orbitHeight) / orbitRadius),
	}
	c.place()
	return c
}

// orbit rotates the camera by a mouse delta in pixels.
func (c *orbitCamera) orbit(dx, dy float64) {
	c.yaw += dx * orbitSensitivity
	c.pitch = clampFloat(c.pitch+dy*orbitSensitivity, minOrbitPitch, maxOrbitPitch)
	c.place()
}

// place puts the camera on its orbit sphere at the current yaw and pitch.
func (c *orbitCamera) place() {
	c.position = vec3{
		X: orbitRadius * math.Cos(c.pitch) * math.Cos(c.yaw),
		Y: orbitRadius*math.Sin(c.pitch) + orbitHeight,
		Z: orbitRadius * math.Cos(c.pitch) * math.Sin(c.yaw),
	}
}

// zoom narrows the field of view for positive wheel movement.
func (c *orbitCamera) zoom(wheel float64) {
	if math.Abs(wheel) <= 0.01 {
		return
	}
	c.fovY = clampFloat(c.fovY-wheel*wheelFovStep, minFovY, maxFovY)
}

// screenPoint is a projected position plus the pixels-per-meter scale at its
// depth.
type screenPoint struct {
	X, Y  float64
	Scale float64
}

// viewport caches the camera basis for one frame of projections.
type viewport struct {
	eye                   vec3
	forward, right, upDir vec3
	focal                 float64
	cx, cy                float64
}

func (c *orbitCamera) viewport(width, height int) viewport {
	forward := c.target.Sub(c.position).Normalize()
	right := forward.Cross(c.up).Normalize()
	return viewport{
		eye:     c.position,
		forward: forward,
		right:   right,
		upDir:   right.Cross(forward),
		focal:   float64(height) / 2 / math.Tan(doppler.Radians(c.fovY)/2),
		cx:      float64(width) / 2,
		cy:      float64(height) / 2,
	}
}

// project maps a world point to the screen. ok is false for points at or
// behind the near plane.
func (vp viewport) project(p vec3) (sp screenPoint, ok bool) {
	d := p.Sub(vp.eye)
	z := d.Dot(vp.forward)
	if z < cameraNear {
		return screenPoint{}, false
	}
	scale := vp.focal / z
	return screenPoint{
		X:     vp.cx + d.Dot(vp.right)*scale,
		Y:     vp.cy - d.Dot(vp.upDir)*scale,
		Scale: scale,
	}, true
}
