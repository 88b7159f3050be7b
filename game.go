package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"dopplersim/doppler"
)

// Game owns the mutable simulation parameters, the camera, and the HUD state.
// The doppler model only ever sees copies of params.
type Game struct {
	params doppler.Parameters
	result doppler.Result
	rates  controlRates

	camera   *orbitCamera
	showHelp bool
	debug    bool
	tps      int

	screenW int
	screenH int

	dragging    bool
	lastCursorX int
	lastCursorY int

	autoSweep           bool
	autoSweepDeadline   time.Time
	autoSweepModeAt     time.Time
	autoSweepRand       *rand.Rand
	autoSweepSpeedDir   float64
	autoSweepFrameCount int
	exitAfterAutoSweep  bool

	metrics *frameMetrics
	logger  zerolog.Logger
}

// newGame constructs a Game from resolved settings. metrics may be nil.
func newGame(s *Settings, metrics *frameMetrics, logger zerolog.Logger) *Game {
	g := &Game{
		params:   clampParameters(s.parameters()),
		rates:    s.rates(),
		camera:   newOrbitCamera(),
		showHelp: s.HUD.ShowHelp,
		debug:    s.HUD.Debug,
		tps:      s.Window.TPS,
		screenW:  s.Window.Width,
		screenH:  s.Window.Height,
		metrics:  metrics,
		logger:   logger,
	}
	g.result = doppler.Evaluate(g.params)
	return g
}

// Update applies one tick of input and re-evaluates the model.
func (g *Game) Update() error {
	now := time.Now()
	var in controlInput
	if g.autoSweep {
		if now.After(g.autoSweepDeadline) {
			g.autoSweep = false
			if g.exitAfterAutoSweep {
				g.logger.Info().Msg("Automatic sweep finished")
				return ebiten.Termination
			}
		} else {
			in = g.autoSweepInput(now)
		}
	}
	if !g.autoSweep {
		in = g.manualInput()
	}

	g.handleDebugControls()
	g.step(in, 1/float64(g.tps))
	return nil
}

// step advances the simulation by dt seconds of input.
func (g *Game) step(in controlInput, dt float64) {
	wasSource := g.params.SourceMoving
	g.params = applyControls(g.params, in, g.rates, dt)
	if g.params.SourceMoving != wasSource {
		g.logger.Debug().Str("mode", modeLabel(g.params.SourceMoving)).Msg("Mode switched")
	}
	if in.toggleHelp {
		g.showHelp = !g.showHelp
	}
	if in.orbiting {
		g.camera.orbit(in.orbitDX, in.orbitDY)
	}
	g.camera.zoom(in.wheel)

	wasClamped := g.result.Clamped
	g.result = doppler.Evaluate(g.params)
	if g.result.Clamped && !wasClamped {
		g.logger.Debug().Float64("radial", g.result.Radial).Msg("Sonic clamp engaged")
	}
	g.metrics.observe(g.params, g.result)
}
