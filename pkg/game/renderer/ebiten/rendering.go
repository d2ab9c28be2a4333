package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"mazeworks/pkg/game/renderer"
)

// Draw renders the display grid, header and status bar (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	e.drawText(screen, gotext.Get("Maze Generator & Solver"), mapMargin, mapMargin, colorText)
	e.drawMap(screen, w)

	statusY := h - footerHeight + mapMargin
	e.drawText(screen, e.ctrl.Status(), mapMargin, statusY, colorText)
	help := renderer.HelpText(func(s string) string { return gotext.Get(s) })
	e.drawText(screen, help, mapMargin, statusY+int(baseFontSize)+4, colorSubtle)
}

// drawMap centres the grid horizontally below the header
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, screenWidth int) {
	grid := e.ctrl.Display()
	ts := e.tileSize
	mapWidth := grid.Cols() * ts
	mapHeight := grid.Rows() * ts
	mapX := (screenWidth - mapWidth) / 2
	mapY := headerHeight + mapMargin

	vector.DrawFilledRect(screen, float32(mapX-mapMargin), float32(mapY-mapMargin),
		float32(mapWidth+2*mapMargin), float32(mapHeight+2*mapMargin), colorMapBackground, false)

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			x := float32(mapX + col*ts)
			y := float32(mapY + row*ts)
			vector.DrawFilledRect(screen, x, y, float32(ts), float32(ts), cellColor(grid.State(row, col)), false)
		}
	}
}

// drawText draws str with the UI font, or the debug font if none loaded
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	face := e.getUIFontFace()
	if face == nil {
		ebitenutil.DebugPrintAt(screen, str, x, y)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}
