package panmodal

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ScrollSurface is the embedded scrollable region the sheet coordinates with.
// scrollview.ScrollView satisfies it; any widget with a vertical content
// offset can. A negative offset means overscrolled past the top.
type ScrollSurface interface {
	ContentOffset() float64
	SetContentOffset(offset float64)
	// IsUserScrolling reports a live drag or momentum from one.
	IsUserScrolling() bool
	IsDecelerating() bool
	SetIndicatorVisible(visible bool)
	// SetDragEnabled toggles the surface's own drag recognition; a
	// disable/enable cycle must reset its internal tracking state.
	SetDragEnabled(enabled bool)
	// Bounds returns the surface's viewport in screen coordinates.
	Bounds() (x, y, w, h float64)
}

// Content is what the sheet presents.
type Content interface {
	// Draw renders the content into the given panel region.
	Draw(dst *ebiten.Image, x, y, w, h float64)
	// ContentHeight is the intrinsic height, used by HeightContent specs.
	ContentHeight() float64
}

type heightKind int

const (
	heightMax heightKind = iota
	heightFixed
	heightContent
)

// HeightSpec resolves a resting height against the container: a fixed point
// value, the content's intrinsic height, or the maximum available height.
type HeightSpec struct {
	kind  heightKind
	value float64
}

// HeightFixed is an absolute height in points.
func HeightFixed(pts float64) HeightSpec { return HeightSpec{kind: heightFixed, value: pts} }

// HeightContent sizes the sheet to its content's intrinsic height.
func HeightContent() HeightSpec { return HeightSpec{kind: heightContent} }

// HeightMax extends the sheet to the container height minus the top offset.
func HeightMax() HeightSpec { return HeightSpec{kind: heightMax} }

// AnimationMode selects the snap animation curve family.
type AnimationMode int

const (
	// AnimationSpring uses a damped spring (SpringDamping /
	// SpringDampingFullScreen ratios).
	AnimationSpring AnimationMode = iota
	// AnimationBezier uses a cubic-bezier easing (BezierPoints).
	AnimationBezier
)

// Presentable is the configuration capability set a presented sheet supplies
// to the core. The core only reads it. Embed SheetDefaults to get a safe
// default for every method and override what you need.
type Presentable interface {
	// PanScrollable identifies the embedded scrollable region, or nil.
	PanScrollable() ScrollSurface

	// TopOffset is the minimum distance from the container top when the sheet
	// is not anchored to long form.
	TopOffset() float64
	ShortFormHeight() HeightSpec
	LongFormHeight() HeightSpec

	// AnchorModalToLongForm anchors drags at the long-form position; when
	// false the sheet can be dragged up to TopOffset.
	AnchorModalToLongForm() bool
	// AllowsExtendedPanScrolling enables the scroll momentum hand-off.
	AllowsExtendedPanScrolling() bool
	AllowsDragToDismiss() bool
	AllowsTapToDismiss() bool

	SpringDamping() float64
	// SpringDampingFullScreen is used when snapping to a full-screen-style
	// position at or above the top offset.
	SpringDampingFullScreen() float64
	AnimationMode() AnimationMode
	// BezierPoints are the control points used with AnimationBezier.
	BezierPoints() (p1x, p1y, p2x, p2y float64)
	TransitionDuration() time.Duration

	CornerRadius() float64
	ShowDragIndicator() bool
	PanelColor() color.Color
	DimColor() color.Color

	// ShouldRespondToPan vetoes pan handling; returning false during a live
	// gesture freezes the sheet until the gesture ends.
	ShouldRespondToPan() bool
	WillRespondToPan()
	// ShouldPrioritizePan forces the sheet's pan to win over the scroll
	// surface's own recognizer.
	ShouldPrioritizePan() bool
	// ShouldTransition vetoes a requested state transition.
	ShouldTransition(to PresentationState) bool
	// WillTransition observes an imminent state transition. Also fired as the
	// pre-completion long-form notice when a drag reaches the anchor with
	// extended scrolling enabled.
	WillTransition(to PresentationState)

	PanModalWillDismiss()
	PanModalDidDismiss()
	PanModalStartDragging()
	PanModalStopDragging()
}
