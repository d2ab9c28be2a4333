package ebiten

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"mazeworks/pkg/engine/input"
	"mazeworks/pkg/game/renderer"
)

// EbitenRenderer is the Ebiten-based graphical renderer. It implements
// ebiten.Game; Update releases playback events and Draw paints the
// display grid.
type EbitenRenderer struct {
	ctrl *renderer.Controller
	log  logrus.FieldLogger
	ctx  context.Context

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	fontSource   *text.GoTextFaceSource
	cachedUIFace *text.GoTextFace

	keys               []ebiten.Key
	lastUpdate         time.Time
	windowOpenedLogged bool
}

// New creates a new Ebiten renderer
func New(ctrl *renderer.Controller, log logrus.FieldLogger) *EbitenRenderer {
	return &EbitenRenderer{
		ctrl:     ctrl,
		log:      log,
		ctx:      context.Background(),
		tileSize: defaultTileSize,
	}
}

// Name identifies the renderer
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Init loads the font and sizes the window to the grid
func (e *EbitenRenderer) Init() {
	src, err := loadFontSource()
	if err != nil {
		e.log.WithError(err).Warn("falling back to the debug font")
	} else {
		e.fontSource = src
	}

	w, h := e.windowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(gotext.Get("Maze Generator & Solver"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// windowSize is the window that fits the grid at the current tile size
func (e *EbitenRenderer) windowSize() (int, int) {
	grid := e.ctrl.Display()
	w := grid.Cols()*e.tileSize + 2*mapMargin
	h := grid.Rows()*e.tileSize + headerHeight + footerHeight + 2*mapMargin
	return w, h
}

// Run starts the Ebiten game loop. It returns when the window closes, the
// user quits or ctx is cancelled.
func (e *EbitenRenderer) Run(ctx context.Context) error {
	e.ctx = ctx
	e.ctrl.Handle(input.Intent{Action: input.ActionGenerate})
	e.lastUpdate = time.Now()
	return ebiten.RunGame(e)
}

// Layout uses the window size as the logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
