package panmodal

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dverbeek/panmodal/gesture"
)

// contentTopInset keeps content clear of the drag indicator and corner arc.
const contentTopInset = 20

// PresentationController orchestrates one sheet presentation: it owns the
// driver, the pan recognizer, the scroll-offset subscription and the panel
// chrome. Call Update once per tick and Draw after the host's own content.
// A controller serves a single presentation; build a new one to re-present.
type PresentationController struct {
	presentable Presentable
	content     Content

	driver     *Driver
	recognizer *gesture.Recognizer
	observer   *ScrollObserver
	sub        *Subscription

	containerW, containerH float64
	panelY                 float64
	panelH                 float64

	presented   bool
	needsLayout bool
	lastOffset  float64
	wasDown     bool
	rate        float64

	// OnDismissed fires after the dismissal animation completes; the host
	// should drop the controller then.
	OnDismissed func()
}

// NewPresentationController wires a presentation for the given container
// size. The presentable and content must exist.
func NewPresentationController(p Presentable, content Content, containerW, containerH float64) *PresentationController {
	if content == nil {
		panic("panmodal: presentation requires content")
	}
	c := &PresentationController{
		presentable: p,
		content:     content,
		containerW:  containerW,
		containerH:  containerH,
		rate:        60,
		needsLayout: true,
	}
	c.panelY = containerH

	c.driver = NewDriver(p, c)
	c.driver.OnDismissed = func() {
		c.presented = false
		if c.sub != nil {
			c.sub.Cancel()
		}
		if c.OnDismissed != nil {
			c.OnDismissed()
		}
	}

	c.recognizer = gesture.NewRecognizer(c.rate)
	c.recognizer.Handler = c.driver.HandlePan
	c.recognizer.ShouldBegin = func(x, y float64) bool {
		if y < c.panelY {
			return false
		}
		return !c.driver.ShouldYieldPan(x, y)
	}

	if sv := p.PanScrollable(); sv != nil {
		c.observer = newScrollObserver(c.driver, sv)
		c.sub = &Subscription{obs: c.observer}
		c.lastOffset = sv.ContentOffset()
	}
	return c
}

// Surface implementation: the controller's panel is what the driver moves.

func (c *PresentationController) PanY() float64      { return c.panelY }
func (c *PresentationController) SetPanY(y float64)  { c.panelY = y }
func (c *PresentationController) PanHeight() float64 { return c.panelH }

// Present starts the slide-in animation to the short form position.
func (c *PresentationController) Present() {
	if c.needsLayout {
		c.layout()
	}
	c.presented = true
	c.driver.Present()
}

// Dismiss starts the animated dismissal.
func (c *PresentationController) Dismiss() {
	c.driver.Dismiss()
}

// Transition requests an animated snap to the given resting state.
func (c *PresentationController) Transition(to PresentationState) {
	c.driver.Transition(to)
}

// SetNeedsLayoutUpdate schedules a layout recomputation before the next tick,
// e.g. when embedded content changes height.
func (c *PresentationController) SetNeedsLayoutUpdate() {
	c.needsLayout = true
}

// Resize adapts the controller to a new container size.
func (c *PresentationController) Resize(w, h float64) {
	c.containerW, c.containerH = w, h
	c.needsLayout = true
}

// PerformUpdates runs a batched content mutation with offset-change delivery
// paused, so programmatic changes cannot move the sheet.
func (c *PresentationController) PerformUpdates(batch func()) {
	if c.sub != nil {
		c.sub.Pause()
	}
	batch()
	if c.sub != nil {
		c.sub.Resume()
	}
	if sv := c.presentable.PanScrollable(); sv != nil {
		c.lastOffset = sv.ContentOffset()
	}
}

// AnchoredYPosition exposes the driver's anchor for host layout.
func (c *PresentationController) AnchoredYPosition() float64 { return c.driver.AnchoredY() }

func (c *PresentationController) State() PresentationState { return c.driver.State() }
func (c *PresentationController) Presented() bool          { return c.presented }

// PanTracking reports whether the sheet's own pan is live.
func (c *PresentationController) PanTracking() bool { return c.recognizer.Tracking() }

// ContentFrame is the panel region available to content, in screen
// coordinates. Hosts position their scroll surface inside it on layout.
func (c *PresentationController) ContentFrame() (x, y, w, h float64) {
	top := c.panelY + contentTopInset
	return 0, top, c.containerW, c.containerH - top
}

// Update advances the presentation one tick with Ebitengine's pointer input.
func (c *PresentationController) Update() {
	x, y, down := gesture.ReadPointer()
	c.UpdateWithPointer(x, y, down)
}

// UpdateWithPointer advances the presentation one tick with an explicit
// pointer sample.
func (c *PresentationController) UpdateWithPointer(x, y float64, down bool) {
	if c.needsLayout {
		c.layout()
	}

	justPressed := down && !c.wasDown
	c.wasDown = down

	if c.presented && justPressed && y < c.panelY &&
		!c.recognizer.Tracking() && c.presentable.AllowsTapToDismiss() {
		c.Dismiss()
	}

	c.recognizer.Feed(x, y, down)

	if sv := c.presentable.PanScrollable(); sv != nil && c.observer != nil {
		if off := sv.ContentOffset(); off != c.lastOffset {
			old := c.lastOffset
			c.observer.OffsetChanged(old, off)
			c.lastOffset = sv.ContentOffset()
		}
	}

	c.driver.Step(1.0 / c.rate)
}

func (c *PresentationController) layout() {
	c.needsLayout = false
	contentH := c.content.ContentHeight()
	c.driver.Layout(c.containerH, contentH)
	c.panelH = c.containerH - c.driver.LongFormY()
}

// presentationProgress is 0 with the panel fully off screen and 1 at or above
// the short form position; the dim layer follows it.
func (c *PresentationController) presentationProgress() float64 {
	span := c.containerH - c.driver.ShortFormY()
	if span <= 0 {
		return 1
	}
	p := (c.containerH - c.panelY) / span
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Draw renders the dim layer, panel chrome and content.
func (c *PresentationController) Draw(dst *ebiten.Image) {
	if !c.presented {
		return
	}

	drawDim(dst, c.presentable.DimColor(), c.presentationProgress(), c.containerW, c.containerH)

	radius := c.presentable.CornerRadius()
	drawRoundedTopRect(dst, 0, c.panelY, c.containerW, c.containerH-c.panelY, radius, c.presentable.PanelColor())

	if c.presentable.ShowDragIndicator() {
		drawDragIndicator(dst, c.containerW, c.panelY)
	}

	x, y, w, h := c.ContentFrame()
	if h > 0 {
		c.content.Draw(dst, x, y, w, h)
	}
}
