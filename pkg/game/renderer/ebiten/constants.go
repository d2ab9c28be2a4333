// Package ebiten provides an Ebiten-based 2D graphical renderer for the maze.
package ebiten

import (
	"image/color"

	"mazeworks/pkg/engine/world"
)

// Color palette - one fill per cell state
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorWall          = color.RGBA{60, 60, 80, 255}    // Muted slate
	colorPassage       = color.RGBA{240, 240, 240, 255} // Off-white
	colorStart         = color.RGBA{0, 200, 0, 255}     // Green
	colorEnd           = color.RGBA{220, 0, 0, 255}     // Red
	colorVisited       = color.RGBA{0, 180, 220, 255}   // Cyan
	colorFrontier      = color.RGBA{255, 215, 0, 255}   // Gold
	colorSolutionPath  = color.RGBA{200, 0, 200, 255}   // Magenta
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
)

// cellColor returns the fill color for a state
func cellColor(s world.CellState) color.Color {
	switch s {
	case world.Wall:
		return colorWall
	case world.Passage:
		return colorPassage
	case world.Start:
		return colorStart
	case world.End:
		return colorEnd
	case world.Visited:
		return colorVisited
	case world.Frontier:
		return colorFrontier
	case world.SolutionPath:
		return colorSolutionPath
	default:
		return colorBackground
	}
}

// Tile size constraints
const (
	defaultTileSize = 20
	minTileSize     = 4
	maxTileSize     = 48
	tileSizeStep    = 2
	baseFontSize    = 14.0
)

// Layout margins in pixels
const (
	mapMargin    = 8
	headerHeight = 32
	footerHeight = 48
)
