package main

import "github.com/hajimehoshi/ebiten/v2"

// Draw renders the scene from the orbit camera, then the HUD on top.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	b := screen.Bounds()
	vp := g.camera.viewport(b.Dx(), b.Dy())
	drawScene(screen, vp, g.params)

	drawHUD(screen, g.params, g.result, g.showHelp, b.Dx(), b.Dy())
	if g.debug {
		drawDebugOverlay(screen, g.tps, b.Dx())
	}
}

// Layout follows the window size so the scene stays undistorted on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.screenW, g.screenH = outsideWidth, outsideHeight
	}
	return g.screenW, g.screenH
}
