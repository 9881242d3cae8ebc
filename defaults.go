package panmodal

import (
	"image/color"
	"time"
)

// Default tuning shared with the original presentation behavior.
const (
	DefaultTopOffset          = 42.0
	DefaultCornerRadius       = 8.0
	DefaultSpringDamping      = 0.8
	DefaultTransitionDuration = 500 * time.Millisecond
)

// SheetDefaults supplies a safe default for every Presentable method, so a
// sheet implementation only overrides what it needs:
//
//	type settingsSheet struct {
//		panmodal.SheetDefaults
//		list *scrollview.ScrollView
//	}
//
//	func (s *settingsSheet) PanScrollable() panmodal.ScrollSurface { return s.list }
//	func (s *settingsSheet) ShortFormHeight() panmodal.HeightSpec  { return panmodal.HeightFixed(300) }
type SheetDefaults struct{}

func (SheetDefaults) PanScrollable() ScrollSurface { return nil }

func (SheetDefaults) TopOffset() float64          { return DefaultTopOffset }
func (SheetDefaults) ShortFormHeight() HeightSpec { return HeightMax() }
func (SheetDefaults) LongFormHeight() HeightSpec  { return HeightMax() }

func (SheetDefaults) AnchorModalToLongForm() bool      { return true }
func (SheetDefaults) AllowsExtendedPanScrolling() bool { return true }
func (SheetDefaults) AllowsDragToDismiss() bool        { return true }
func (SheetDefaults) AllowsTapToDismiss() bool         { return true }

func (SheetDefaults) SpringDamping() float64           { return DefaultSpringDamping }
func (SheetDefaults) SpringDampingFullScreen() float64 { return 1.0 }
func (SheetDefaults) AnimationMode() AnimationMode     { return AnimationSpring }
func (SheetDefaults) BezierPoints() (p1x, p1y, p2x, p2y float64) {
	return 0.25, 0.1, 0.25, 1.0
}
func (SheetDefaults) TransitionDuration() time.Duration { return DefaultTransitionDuration }

func (SheetDefaults) CornerRadius() float64   { return DefaultCornerRadius }
func (SheetDefaults) ShowDragIndicator() bool { return true }
func (SheetDefaults) PanelColor() color.Color {
	return color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
}
func (SheetDefaults) DimColor() color.Color {
	return color.RGBA{A: 0xB2}
}

func (SheetDefaults) ShouldRespondToPan() bool                { return true }
func (SheetDefaults) WillRespondToPan()                       {}
func (SheetDefaults) ShouldPrioritizePan() bool               { return false }
func (SheetDefaults) ShouldTransition(PresentationState) bool { return true }
func (SheetDefaults) WillTransition(PresentationState)        {}
func (SheetDefaults) PanModalWillDismiss()                    {}
func (SheetDefaults) PanModalDidDismiss()                     {}
func (SheetDefaults) PanModalStartDragging()                  {}
func (SheetDefaults) PanModalStopDragging()                   {}
