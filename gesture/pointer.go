package gesture

import (
	"github.com/hajimehoshi/ebiten/v2"
)

var touchIDs []ebiten.TouchID

// ReadPointer returns the current primary pointer sample: the first active
// touch if any, otherwise the mouse cursor with the left button as the "down"
// state. Call once per Update tick and feed the result to a Recognizer.
func ReadPointer() (x, y float64, down bool) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		return float64(tx), float64(ty), true
	}
	cx, cy := ebiten.CursorPosition()
	return float64(cx), float64(cy), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
