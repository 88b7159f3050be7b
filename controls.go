package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dopplersim/doppler"
)

// controlInput is one tick's worth of user input. Axis fields are -1, 0 or +1.
type controlInput struct {
	angle     float64
	speed     float64
	frequency float64
	distance  float64

	toggleMode bool
	toggleHelp bool

	orbiting bool
	orbitDX  float64
	orbitDY  float64
	wheel    float64
}

// controlRates are per-second change rates for held keys.
type controlRates struct {
	angle     float64
	speed     float64
	frequency float64
	distance  float64
}

func defaultControlRates() controlRates {
	return controlRates{
		angle:     defaultAngleRate,
		speed:     defaultSpeedRate,
		frequency: defaultFrequencyRate,
		distance:  defaultDistanceRate,
	}
}

// applyControls advances p by one tick of input and clamps the result.
func applyControls(p doppler.Parameters, in controlInput, r controlRates, dt float64) doppler.Parameters {
	p.AngleDegrees += in.angle * r.angle * dt
	p.Speed += in.speed * r.speed * dt
	p.BaseFrequency += in.frequency * r.frequency * dt
	p.Distance += in.distance * r.distance * dt
	if in.toggleMode {
		p.SourceMoving = !p.SourceMoving
	}
	return clampParameters(p)
}

// clampParameters enforces the ranges the model expects from its caller.
func clampParameters(p doppler.Parameters) doppler.Parameters {
	p.Speed = math.Max(p.Speed, minSpeed)
	p.BaseFrequency = math.Max(p.BaseFrequency, minBaseFrequency)
	p.Distance = math.Max(p.Distance, minDistance)
	return p
}

func keyAxis(neg, pos ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(pos) {
		v++
	}
	if ebiten.IsKeyPressed(neg) {
		v--
	}
	return v
}

// manualInput polls the keyboard and mouse.
func (g *Game) manualInput() controlInput {
	in := controlInput{
		angle:      keyAxis(ebiten.KeyArrowLeft, ebiten.KeyArrowRight),
		speed:      keyAxis(ebiten.KeyArrowDown, ebiten.KeyArrowUp),
		frequency:  keyAxis(ebiten.KeyBracketLeft, ebiten.KeyBracketRight),
		distance:   keyAxis(ebiten.KeyPageDown, ebiten.KeyPageUp),
		toggleMode: inpututil.IsKeyJustPressed(ebiten.KeyS),
		toggleHelp: inpututil.IsKeyJustPressed(ebiten.KeyH),
	}

	cx, cy := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		in.orbiting = true
		if g.dragging {
			in.orbitDX = float64(cx - g.lastCursorX)
			in.orbitDY = float64(cy - g.lastCursorY)
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastCursorX, g.lastCursorY = cx, cy

	_, in.wheel = ebiten.Wheel()
	return in
}

// enableAutoSweep replaces user input with a scripted sweep for duration.
func (g *Game) enableAutoSweep(duration time.Duration) {
	now := time.Now()
	g.autoSweep = true
	g.autoSweepDeadline = now.Add(duration)
	g.autoSweepModeAt = now.Add(autoSweepModePeriod)
	if g.autoSweepRand == nil {
		g.autoSweepRand = rand.New(rand.NewSource(now.UnixNano() + 3))
	}
	g.autoSweepFrameCount = 0
}

// autoSweepInput turns the velocity steadily while wandering the speed and
// periodically swapping which entity moves.
func (g *Game) autoSweepInput(now time.Time) controlInput {
	if g.autoSweepRand == nil {
		g.autoSweepRand = rand.New(rand.NewSource(now.UnixNano() + 4))
	}
	if g.autoSweepFrameCount <= 0 {
		g.autoSweepSpeedDir = float64(g.autoSweepRand.Intn(3) - 1)
		g.autoSweepFrameCount = 20 + g.autoSweepRand.Intn(50)
	}
	g.autoSweepFrameCount--
	in := controlInput{angle: 1, speed: g.autoSweepSpeedDir}
	if !now.Before(g.autoSweepModeAt) {
		in.toggleMode = true
		g.autoSweepModeAt = now.Add(autoSweepModePeriod)
	}
	return in
}

// handleDebugControls processes debug overlay hotkeys.
func (g *Game) handleDebugControls() {
	if !g.debug {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.tps = adjustTPS(g.tps, -tpsStep)
		ebiten.SetTPS(g.tps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.tps = adjustTPS(g.tps, tpsStep)
		ebiten.SetTPS(g.tps)
	}
}

// adjustTPS clamps the tick rate delta within bounds.
func adjustTPS(tps, delta int) int {
	return clampInt(tps+delta, minTPS, maxTPS)
}
