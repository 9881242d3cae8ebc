package demo

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var demoFace = text.NewGoXFace(basicfont.Face7x13)

// drawText draws a single line with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, txt string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, demoFace, op)
}
