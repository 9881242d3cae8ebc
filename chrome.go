package panmodal

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Drag indicator geometry.
const (
	indicatorWidth  = 36.0
	indicatorHeight = 5.0
	indicatorGap    = 8.0
)

var indicatorBarColor = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}

// drawDim fills the container with the dim color, its alpha scaled by the
// presentation progress.
func drawDim(dst *ebiten.Image, clr color.Color, progress, w, h float64) {
	if progress <= 0 {
		return
	}
	r, g, b, a := clr.RGBA()
	scaled := color.RGBA{
		R: uint8(float64(r>>8) * progress),
		G: uint8(float64(g>>8) * progress),
		B: uint8(float64(b>>8) * progress),
		A: uint8(float64(a>>8) * progress),
	}
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), scaled, false)
}

// drawRoundedTopRect fills a rectangle whose top corners are rounded with the
// given radius. Composed from filled rects and corner circles.
func drawRoundedTopRect(dst *ebiten.Image, x, y, w, h, radius float64, clr color.Color) {
	if h <= 0 {
		return
	}
	if radius <= 0 || radius*2 > w || radius > h {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
		return
	}

	vector.DrawFilledCircle(dst, float32(x+radius), float32(y+radius), float32(radius), clr, true)
	vector.DrawFilledCircle(dst, float32(x+w-radius), float32(y+radius), float32(radius), clr, true)
	// Top strip between the corners, then the body below them.
	vector.DrawFilledRect(dst, float32(x+radius), float32(y), float32(w-2*radius), float32(radius), clr, false)
	vector.DrawFilledRect(dst, float32(x), float32(y+radius), float32(w), float32(h-radius), clr, false)
}

// drawDragIndicator draws the grab bar centered near the panel's top edge.
func drawDragIndicator(dst *ebiten.Image, containerW, panelY float64) {
	x := (containerW - indicatorWidth) / 2
	y := panelY + indicatorGap
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(indicatorWidth), float32(indicatorHeight), indicatorBarColor, true)
}
