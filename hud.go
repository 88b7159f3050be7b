package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dopplersim/doppler"
)

const (
	hudPad        = 12
	hudLineHeight = 16
	hudGlyphWidth = 6 // ebitenutil debug font
)

const helpText = `Doppler effect:
- Observed frequency changes with relative motion.
- v_radial = v * cos(angle).
- Moving source:   f' = f0 * c / (c - v_radial).
- Moving receiver: f' = f0 * (c + v_radial) / c.
- c = 343 m/s (air at 20C).`

var controlsLegend = []string{
	"Controls:",
	"Left/Right: angle  |  Up/Down: speed  |  PgUp/PgDn: distance",
	"[/]: freq  |  S: toggle source/receiver  |  H: help",
	"Right-drag: orbit camera  |  Wheel: zoom",
}

func modeLabel(sourceMoving bool) string {
	if sourceMoving {
		return "Moving SOURCE"
	}
	return "Moving RECEIVER"
}

// hudLines formats the parameter panel.
func hudLines(p doppler.Parameters, r doppler.Result) []string {
	lines := []string{
		"Doppler Shift Simulator",
		"",
		fmt.Sprintf("Base freq: %.1f Hz", p.BaseFrequency),
		fmt.Sprintf("Distance: %.1f m", p.Distance),
		fmt.Sprintf("Angle: %.1f deg", p.AngleDegrees),
		fmt.Sprintf("Speed: %.1f m/s (radial: %.1f)", p.Speed, r.Radial),
		fmt.Sprintf("Observed freq: %.2f Hz", r.Observed),
		fmt.Sprintf("Mode: %s", modeLabel(p.SourceMoving)),
	}
	if r.Clamped {
		lines = append(lines, "! near the speed of sound: value clamped")
	}
	lines = append(lines, "")
	return append(lines, controlsLegend...)
}

// textBox returns the pixel size of lines in the debug font.
func textBox(lines []string) (w, h int) {
	for _, l := range lines {
		if n := len(l) * hudGlyphWidth; n > w {
			w = n
		}
	}
	return w, len(lines) * hudLineHeight
}

// drawHUD renders the panel and, when enabled, the help box.
func drawHUD(screen *ebiten.Image, p doppler.Parameters, r doppler.Result, showHelp bool, screenW, screenH int) {
	lines := hudLines(p, r)
	w, h := textBox(lines)
	vector.DrawFilledRect(screen, hudPad-6, hudPad-6, float32(w+12), float32(h+12), fade(colorBlack, 0.4), false)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), hudPad, hudPad)

	if !showHelp {
		return
	}
	help := strings.Split(helpText, "\n")
	bw, bh := textBox(help)
	bw += 20
	bh += 20
	x := screenW - bw - hudPad
	y := screenH - bh - hudPad
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(bw), float32(bh), fade(colorDarkBlue, 0.7), false)
	ebitenutil.DebugPrintAt(screen, helpText, x+10, y+10)
}

// drawDebugOverlay shows frame and tick rates in the top-right corner.
func drawDebugOverlay(screen *ebiten.Image, tps int, screenW int) {
	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f (target %d, -/=)", ebiten.ActualFPS(), ebiten.ActualTPS(), tps)
	w, _ := textBox(strings.Split(msg, "\n"))
	ebitenutil.DebugPrintAt(screen, msg, screenW-w-hudPad, hudPad)
}
