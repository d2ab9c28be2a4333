package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFontSource parses the embedded Go Mono font
func loadFontSource() (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
}

// getUIFontFace returns a cached face for header and status text
func (e *EbitenRenderer) getUIFontFace() *text.GoTextFace {
	if e.fontSource == nil {
		return nil
	}
	if e.cachedUIFace == nil {
		e.cachedUIFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   baseFontSize,
		}
	}
	return e.cachedUIFace
}
