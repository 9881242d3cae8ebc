// Package scrollview implements a minimal vertical scroll view for
// Ebitengine: pointer-drag tracking, mouse wheel, release momentum with
// exponential deceleration, and top/bottom overscroll that springs back.
// It satisfies the ScrollSurface interface the panmodal core coordinates with.
package scrollview

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// WheelSpeed is pixels per mouse wheel scroll unit.
	WheelSpeed = 60

	velocityWindow       = 6
	minFlingVelocity     = 40.0 // pts/s below which a release does not fling
	restVelocity         = 4.0  // pts/s below which deceleration stops
	decelPerTick         = 0.95
	overscrollResistance = 0.5
	bounceRelax          = 0.82
	bounceDamp           = 0.6
)

var indicatorColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x50}

// ScrollView tracks a vertical content offset over a fixed viewport.
// A negative offset means the content is overscrolled past its top.
type ScrollView struct {
	x, y, w, h float64
	contentH   float64

	offset       float64
	velocity     float64
	dragging     bool
	decelerating bool

	dragEnabled      bool
	indicatorVisible bool

	wasDown bool
	lastY   float64
	samples []float64
	rate    float64

	// DrawContent renders the content into the clipped viewport. offset is
	// the current content offset; draw row i at y+i*rowH-offset.
	DrawContent func(dst *ebiten.Image, x, y, w, h, offset float64)
}

// New creates a ScrollView sampled at the given tick rate (typically 60).
func New(ticksPerSecond float64) *ScrollView {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	return &ScrollView{
		rate:             ticksPerSecond,
		dragEnabled:      true,
		indicatorVisible: true,
	}
}

// SetFrame positions the viewport in screen coordinates.
func (s *ScrollView) SetFrame(x, y, w, h float64) {
	s.x, s.y, s.w, s.h = x, y, w, h
}

// Bounds returns the viewport rectangle.
func (s *ScrollView) Bounds() (x, y, w, h float64) {
	return s.x, s.y, s.w, s.h
}

func (s *ScrollView) SetContentHeight(h float64) { s.contentH = h }
func (s *ScrollView) ContentHeight() float64     { return s.contentH }

func (s *ScrollView) ContentOffset() float64 { return s.offset }

// SetContentOffset writes the offset directly, bypassing drag and momentum
// state. Used by the pan-modal core to freeze or hand off scrolling.
func (s *ScrollView) SetContentOffset(offset float64) { s.offset = offset }

func (s *ScrollView) IsDragging() bool     { return s.dragging }
func (s *ScrollView) IsDecelerating() bool { return s.decelerating }

// IsUserScrolling reports whether the user is driving the offset, either with
// a live drag or with momentum from one.
func (s *ScrollView) IsUserScrolling() bool { return s.dragging || s.decelerating }

func (s *ScrollView) SetIndicatorVisible(visible bool) { s.indicatorVisible = visible }
func (s *ScrollView) IndicatorVisible() bool           { return s.indicatorVisible }

// SetDragEnabled toggles drag recognition. Disabling cancels any live drag
// and momentum, so a disable/enable cycle resets internal tracking.
func (s *ScrollView) SetDragEnabled(enabled bool) {
	s.dragEnabled = enabled
	if !enabled {
		s.dragging = false
		s.decelerating = false
		s.velocity = 0
	}
}

func (s *ScrollView) maxOffset() float64 {
	return math.Max(0, s.contentH-s.h)
}

func (s *ScrollView) contains(px, py float64) bool {
	return px >= s.x && px <= s.x+s.w && py >= s.y && py <= s.y+s.h
}

// Update advances the scroll view one tick with the current pointer sample
// and wheel delta.
func (s *ScrollView) Update(px, py float64, down bool, wheelDY float64) {
	defer func() { s.wasDown = down }()
	dt := 1.0 / s.rate

	switch {
	case !s.dragEnabled:
		// Nothing tracks while disabled.

	case s.dragging:
		if down {
			dy := py - s.lastY
			s.lastY = py
			s.pushSample(dy)
			s.applyDrag(dy)
		} else {
			s.endDrag()
		}

	case down && !s.wasDown && s.contains(px, py):
		s.dragging = true
		s.decelerating = false
		s.velocity = 0
		s.lastY = py
		s.samples = s.samples[:0]
	}

	if wheelDY != 0 && !s.dragging {
		s.offset -= wheelDY * WheelSpeed
		s.offset = math.Max(0, math.Min(s.offset, s.maxOffset()))
		s.decelerating = false
		s.velocity = 0
	}

	if s.decelerating {
		s.stepDeceleration(dt)
	}
}

// applyDrag converts a finger movement into an offset change, with resistance
// once the offset leaves the valid range.
func (s *ScrollView) applyDrag(dy float64) {
	delta := -dy
	if s.offset < 0 || s.offset > s.maxOffset() {
		delta *= overscrollResistance
	}
	s.offset += delta
}

func (s *ScrollView) endDrag() {
	s.dragging = false
	v := -s.sampleVelocity()
	outOfRange := s.offset < 0 || s.offset > s.maxOffset()
	if math.Abs(v) > minFlingVelocity || outOfRange {
		s.velocity = v
		s.decelerating = true
	}
}

func (s *ScrollView) stepDeceleration(dt float64) {
	s.offset += s.velocity * dt
	s.velocity *= decelPerTick

	max := s.maxOffset()
	switch {
	case s.offset < 0:
		// Rubber-band back toward the top edge.
		s.offset *= bounceRelax
		s.velocity *= bounceDamp
		if s.offset > -0.5 {
			s.offset = 0
			s.decelerating = false
			s.velocity = 0
		}
	case s.offset > max:
		over := s.offset - max
		s.offset = max + over*bounceRelax
		s.velocity *= bounceDamp
		if s.offset < max+0.5 {
			s.offset = max
			s.decelerating = false
			s.velocity = 0
		}
	default:
		if math.Abs(s.velocity) < restVelocity {
			s.decelerating = false
			s.velocity = 0
		}
	}
}

func (s *ScrollView) pushSample(dy float64) {
	s.samples = append(s.samples, dy)
	if len(s.samples) > velocityWindow {
		s.samples = s.samples[len(s.samples)-velocityWindow:]
	}
}

func (s *ScrollView) sampleVelocity() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, dy := range s.samples {
		sum += dy
	}
	return sum / float64(len(s.samples)) * s.rate
}

// Draw renders the clipped content and, when visible, the scroll indicator.
func (s *ScrollView) Draw(dst *ebiten.Image) {
	clip := dst.SubImage(image.Rect(int(s.x), int(s.y), int(s.x+s.w), int(s.y+s.h))).(*ebiten.Image)
	if s.DrawContent != nil {
		s.DrawContent(clip, s.x, s.y, s.w, s.h, s.offset)
	}

	if s.indicatorVisible && s.contentH > s.h {
		frac := s.h / s.contentH
		barH := math.Max(s.h*frac, 24)
		t := 0.0
		if max := s.maxOffset(); max > 0 {
			t = math.Max(0, math.Min(s.offset/max, 1))
		}
		barY := s.y + t*(s.h-barH)
		vector.DrawFilledRect(dst, float32(s.x+s.w-5), float32(barY), 3, float32(barH), indicatorColor, false)
	}
}
