package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazeworks/pkg/engine/input"
)

// Update handles input and releases due playback events (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.ctx.Err() != nil {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.WithFields(map[string]any{"width": w, "height": h}).Debug("main window opened")
	}

	e.handleZoom()

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		if e.ctrl.Handle(intent) {
			return ebiten.Termination
		}
	}

	now := time.Now()
	e.ctrl.Step(now.Sub(e.lastUpdate))
	e.lastUpdate = now
	return nil
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		e.setTileSize(e.tileSize + tileSizeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		e.setTileSize(e.tileSize - tileSizeStep)
	case inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0):
		e.setTileSize(defaultTileSize)
	}
}

func (e *EbitenRenderer) setTileSize(size int) {
	size = max(minTileSize, min(maxTileSize, size))
	if size == e.tileSize {
		return
	}
	e.tileSize = size
	ebiten.SetWindowSize(e.windowSize())
}

// checkInput maps the first newly pressed key with a binding to an intent
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      k.String(),
			Timestamp: time.Now(),
		}))
		if intent.Action != engineinput.ActionNone {
			return intent
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}
