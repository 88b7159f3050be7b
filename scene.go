package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dopplersim/doppler"
)

var (
	colorBackground = color.RGBA{20, 24, 28, 255}
	colorGrid       = color.RGBA{80, 80, 80, 255}
	colorWhite      = color.RGBA{255, 255, 255, 255}
	colorBlack      = color.RGBA{0, 0, 0, 255}
	colorOrange     = color.RGBA{255, 161, 0, 255}
	colorGray       = color.RGBA{130, 130, 130, 255}
	colorSkyBlue    = color.RGBA{102, 191, 255, 255}
	colorYellow     = color.RGBA{253, 249, 0, 255}
	colorDarkBlue   = color.RGBA{0, 82, 172, 255}
)

// fade scales c to alpha a in [0, 1]. color.RGBA is premultiplied, so every
// channel is scaled.
func fade(c color.RGBA, a float64) color.RGBA {
	a = clampFloat(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// sceneLayout places the entities for one set of parameters. The source sits
// at the origin and the receiver on +X, so RadialSpeed > 0 means closing in.
type sceneLayout struct {
	source   vec3
	receiver vec3
	velocity vec3 // unit direction of the moving entity
	angle    float64
}

func layoutScene(p doppler.Parameters) sceneLayout {
	a := doppler.Radians(p.AngleDegrees)
	return sceneLayout{
		source:   vec3{0, entityHeight, 0},
		receiver: vec3{p.Distance, entityHeight, 0},
		velocity: vec3{math.Cos(a), 0, math.Sin(a)},
		angle:    a,
	}
}

// arrowEnd is the tip of the velocity arrow drawn from the moving entity.
func (l sceneLayout) arrowEnd(p doppler.Parameters) (from, to vec3) {
	from = l.receiver
	if p.SourceMoving {
		from = l.source
	}
	return from, from.Add(l.velocity.Scale(1 + 0.01*p.Speed))
}

// entityColors returns the source and receiver sphere colors.
func entityColors(sourceMoving bool) (src, rcv color.RGBA) {
	if sourceMoving {
		return colorOrange, colorGray
	}
	return colorGray, colorSkyBlue
}

func modeColor(sourceMoving bool) color.RGBA {
	if sourceMoving {
		return colorOrange
	}
	return colorSkyBlue
}

// drawScene renders the 3D part of the frame.
func drawScene(screen *ebiten.Image, vp viewport, p doppler.Parameters) {
	l := layoutScene(p)

	drawGrid(screen, vp, gridSlices, gridSpacing)
	drawLine3D(screen, vp, l.source, l.receiver, 1, fade(colorWhite, 0.35))

	src, rcv := entityColors(p.SourceMoving)
	drawSphere(screen, vp, l.source, sphereRadius, src)
	drawSphere(screen, vp, l.receiver, sphereRadius, rcv)

	from, to := l.arrowEnd(p)
	drawArrow3D(screen, vp, from, to, arrowThickness, modeColor(p.SourceMoving))

	drawArc(screen, vp, l.source, arcRadius, l.angle, arcSegments, fade(colorYellow, 0.5))

	ring := fade(modeColor(p.SourceMoving), 0.25)
	for i := 1; i <= ringCount; i++ {
		drawCircleXZ(screen, vp, l.source, ringSpacing*float64(i), ringSegments, ring)
	}
}

// drawLine3D projects and strokes a segment; segments crossing the near plane
// are dropped.
func drawLine3D(screen *ebiten.Image, vp viewport, a, b vec3, width float32, clr color.Color) {
	pa, okA := vp.project(a)
	pb, okB := vp.project(b)
	if !okA || !okB {
		return
	}
	vector.StrokeLine(screen, float32(pa.X), float32(pa.Y), float32(pb.X), float32(pb.Y), width, clr, true)
}

// drawGrid draws a square grid of slices x slices cells centered on the
// origin in the XZ plane.
func drawGrid(screen *ebiten.Image, vp viewport, slices int, spacing float64) {
	half := float64(slices/2) * spacing
	for i := -slices / 2; i <= slices/2; i++ {
		o := float64(i) * spacing
		clr := colorGrid
		if i == 0 {
			clr = colorGray
		}
		drawLine3D(screen, vp, vec3{o, 0, -half}, vec3{o, 0, half}, 1, clr)
		drawLine3D(screen, vp, vec3{-half, 0, o}, vec3{half, 0, o}, 1, clr)
	}
}

// drawSphere draws a sphere as a shaded disc sized by perspective.
func drawSphere(screen *ebiten.Image, vp viewport, center vec3, radius float64, clr color.RGBA) {
	sp, ok := vp.project(center)
	if !ok {
		return
	}
	r := float32(radius * sp.Scale)
	x, y := float32(sp.X), float32(sp.Y)
	vector.DrawFilledCircle(screen, x, y, r, clr, true)
	vector.DrawFilledCircle(screen, x-r*0.3, y-r*0.3, r*0.35, fade(colorWhite, 0.35), true)
}

// drawArrow3D draws a shaft from start to end with a head at end.
func drawArrow3D(screen *ebiten.Image, vp viewport, start, end vec3, thickness float64, clr color.RGBA) {
	drawLine3D(screen, vp, start, end, 2, clr)
	dir := end.Sub(start)
	length := dir.Length()
	if length < 1e-4 {
		return
	}
	ndir := dir.Scale(1 / length)
	headLen := math.Min(0.25*length, 0.5)
	headRad := thickness * 2
	base := end.Add(ndir.Scale(-headLen))

	pe, okE := vp.project(end)
	pb, okB := vp.project(base)
	if !okE || !okB {
		return
	}
	sx, sy := pe.X-pb.X, pe.Y-pb.Y
	sl := math.Hypot(sx, sy)
	if sl < 1e-6 {
		return
	}
	w := headRad * pb.Scale
	nx, ny := -sy/sl*w, sx/sl*w
	tip := [2]float32{float32(pe.X), float32(pe.Y)}
	for _, side := range []float64{-1, 1} {
		wx := float32(pb.X + side*nx)
		wy := float32(pb.Y + side*ny)
		vector.StrokeLine(screen, wx, wy, tip[0], tip[1], 2, clr, true)
	}
	vector.StrokeLine(screen, float32(pb.X+nx), float32(pb.Y+ny), float32(pb.X-nx), float32(pb.Y-ny), 2, clr, true)
}

// drawArc marks the angle between +X and the velocity around center.
func drawArc(screen *ebiten.Image, vp viewport, center vec3, radius, angle float64, segments int, clr color.Color) {
	prev := vec3{center.X + radius, center.Y, center.Z}
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments) * angle
		cur := vec3{center.X + radius*math.Cos(t), center.Y, center.Z + radius*math.Sin(t)}
		drawLine3D(screen, vp, prev, cur, 1, clr)
		prev = cur
	}
}

// drawCircleXZ draws a horizontal ring around center.
func drawCircleXZ(screen *ebiten.Image, vp viewport, center vec3, radius float64, segments int, clr color.Color) {
	step := 2 * math.Pi / float64(segments)
	for k := 0; k < segments; k++ {
		t0 := float64(k) * step
		t1 := float64(k+1) * step
		c0 := vec3{center.X + radius*math.Cos(t0), center.Y, center.Z + radius*math.Sin(t0)}
		c1 := vec3{center.X + radius*math.Cos(t1), center.Y, center.Z + radius*math.Sin(t1)}
		drawLine3D(screen, vp, c0, c1, 1, clr)
	}
}
