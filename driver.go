package panmodal

import (
	"math"

	"github.com/dverbeek/panmodal/animation"
	"github.com/dverbeek/panmodal/gesture"
)

// panSensitivity tunes the release-velocity threshold: velocities above
// 1000*(1-panSensitivity) pts/s (300 pts/s) count as fast.
const panSensitivity = 0.7

// anchorEpsilon absorbs sub-pixel animation residue when comparing the panel
// position against the anchor.
const anchorEpsilon = 0.5

// Surface is the presented panel position the driver owns. All position
// writes go through the driver's gesture handling or its animator; no other
// caller may write it while a presentation is live.
type Surface interface {
	PanY() float64
	SetPanY(y float64)
	// PanHeight is the panel's full height, the maximum translation of an
	// interactive transition.
	PanHeight() float64
}

// Driver interprets pan gestures and programmatic requests into sheet state
// transitions and drives the snap animator. One driver serves exactly one
// presentation; build a new one to present again.
type Driver struct {
	presentable Presentable
	surface     Surface
	animator    *animation.Animator

	containerH float64
	layout     sheetLayout

	extendsPanScrolling bool
	anchorToLongForm    bool

	state           PresentationState
	direction       TransitionDirection
	percentComplete float64
	isAnimating     bool

	dragging         bool
	lastTranslation  float64
	notifiedLongForm bool

	// OnDismissIntent fires when a live gesture begins a dismissal with no
	// transition already running.
	OnDismissIntent func()
	// OnDismissed fires after a dismissal transition fully completes.
	OnDismissed func()
}

// NewDriver builds a driver for one presentation. The presentable and surface
// must exist; their absence is a programming error.
func NewDriver(p Presentable, s Surface) *Driver {
	if p == nil {
		panic("panmodal: driver requires a presentable")
	}
	if s == nil {
		panic("panmodal: driver requires a presented surface")
	}
	d := &Driver{
		presentable: p,
		surface:     s,
		state:       ShortForm,
		direction:   Presenting,
	}
	d.animator = animation.New(s.PanY, s.SetPanY)
	return d
}

// Layout recomputes the cached resting offsets and flags from configuration.
// Call on every container layout pass (resize, dynamic content height).
// When the sheet is at rest it is moved to its resting position directly.
func (d *Driver) Layout(containerH, contentH float64) {
	if containerH <= 0 {
		panic("panmodal: driver layout requires a container")
	}
	d.containerH = containerH
	d.layout = resolveLayout(d.presentable, containerH, contentH)
	d.extendsPanScrolling = d.presentable.AllowsExtendedPanScrolling()
	d.anchorToLongForm = d.presentable.AnchorModalToLongForm()

	if !d.dragging && !d.isAnimating && d.direction == Dismissing {
		d.surface.SetPanY(d.restingY(d.state))
	}
}

func (d *Driver) State() PresentationState       { return d.state }
func (d *Driver) Direction() TransitionDirection { return d.direction }
func (d *Driver) PercentComplete() float64       { return d.percentComplete }
func (d *Driver) Animating() bool                { return d.isAnimating }
func (d *Driver) ShortFormY() float64            { return d.layout.shortFormY }
func (d *Driver) LongFormY() float64             { return d.layout.longFormY }

// AnchoredY is the position the sheet cannot be dragged past.
func (d *Driver) AnchoredY() float64 { return d.layout.anchorY }

// Anchored reports whether the sheet rests at or above its anchor: not
// animating, extended scrolling allowed, and position at the anchor threshold.
// The scroll observer gates its decisions on this.
func (d *Driver) Anchored() bool {
	return !d.isAnimating &&
		d.extendsPanScrolling &&
		d.surface.PanY() <= d.layout.anchorY+anchorEpsilon
}

// Step advances any in-flight snap animation by dt seconds.
func (d *Driver) Step(dt float64) {
	d.animator.Step(dt)
}

// Present runs the non-interactive presentation animation: the panel slides
// from below the container to the short form position.
func (d *Driver) Present() {
	d.direction = Presenting
	d.state = ShortForm
	d.percentComplete = 0
	d.surface.SetPanY(d.containerH)
	d.animateTo(d.layout.shortFormY, func() {
		// The presentation is done; from here the next transition out is the
		// (interactive) dismissal.
		d.direction = Dismissing
	})
}

// Dismiss runs the programmatic animated dismissal.
func (d *Driver) Dismiss() {
	d.finishDismissal()
}

// HandlePan feeds one gesture event into the state machine.
func (d *Driver) HandlePan(e gesture.Event) {
	if d.surface == nil {
		panic("panmodal: driver has no presented surface")
	}
	switch e.Phase {
	case gesture.PhaseBegan:
		d.beganPan(e)
	case gesture.PhaseChanged:
		d.changedPan(e)
	case gesture.PhaseEnded, gesture.PhaseCancelled:
		d.endedPan(e)
	case gesture.PhaseFailed:
		d.cancelInteractive()
	}
}

func (d *Driver) beganPan(e gesture.Event) {
	if !d.presentable.ShouldRespondToPan() {
		d.lastTranslation = e.TranslationY
		return
	}
	d.presentable.WillRespondToPan()
	d.presentable.PanModalStartDragging()
	d.dragging = true
	d.lastTranslation = e.TranslationY

	// Snapshot whether a transition is already mid-flight, then pause it so
	// the gesture takes over from the current visual position.
	wasRunning := d.animator.Running() || d.percentComplete > 0
	d.animator.Cancel()
	d.isAnimating = false

	if d.direction == Dismissing && !wasRunning && d.OnDismissIntent != nil {
		d.OnDismissIntent()
	}
}

func (d *Driver) changedPan(e gesture.Event) {
	if !d.dragging {
		return
	}
	if !d.presentable.ShouldRespondToPan() {
		d.lastTranslation = e.TranslationY
		return
	}
	delta := e.TranslationY - d.lastTranslation
	d.lastTranslation = e.TranslationY
	if delta == 0 {
		return
	}

	d.adjustToY(d.surface.PanY() + delta)

	if max := d.surface.PanHeight(); max > 0 {
		d.updatePercent(d.percentComplete + delta/max)
	}
}

func (d *Driver) endedPan(e gesture.Event) {
	if !d.dragging {
		return
	}
	d.dragging = false
	d.presentable.PanModalStopDragging()

	y := d.surface.PanY()
	v := e.VelocityY

	if isFastVelocity(v) {
		switch {
		case v < 0:
			d.Transition(LongForm)
		case nearest(y, d.layout.longFormY, d.containerH) == d.layout.longFormY && y < d.layout.shortFormY,
			!d.presentable.AllowsDragToDismiss():
			d.Transition(ShortForm)
		default:
			d.finishDismissal()
		}
		return
	}

	// Slow release: settle at the nearest of fully-dismissed, short form and
	// long form, ties broken in that order.
	pos := nearest(y, 0, d.layout.shortFormY, d.layout.longFormY)
	if pos == 0 {
		if d.presentable.AllowsDragToDismiss() {
			d.finishDismissal()
			return
		}
		pos = nearest(y, d.layout.shortFormY, d.layout.longFormY)
	}
	if pos == d.layout.longFormY {
		d.Transition(LongForm)
	} else {
		d.Transition(ShortForm)
	}
}

// cancelInteractive aborts a live interactive transition: the sheet snaps
// back to the resting position of its current state.
func (d *Driver) cancelInteractive() {
	if d.dragging {
		d.dragging = false
		d.presentable.PanModalStopDragging()
	}
	d.percentComplete = 0
	d.animateTo(d.restingY(d.state), nil)
}

// Transition requests an animated snap to the given state. Configuration may
// veto it through ShouldTransition; percentComplete is untouched until the
// animation completes.
func (d *Driver) Transition(to PresentationState) {
	if !d.presentable.ShouldTransition(to) {
		return
	}
	d.presentable.WillTransition(to)
	d.state = to
	d.notifiedLongForm = to == LongForm
	d.animateTo(d.restingY(to), nil)
}

func (d *Driver) finishDismissal() {
	d.presentable.PanModalWillDismiss()
	d.direction = Dismissing
	d.animateTo(d.containerH, func() {
		d.presentable.PanModalDidDismiss()
		if d.OnDismissed != nil {
			d.OnDismissed()
		}
	})
}

// adjustToY is the single position write path for gesture tracking. The
// position is bounded by the anchor above and the container below. Reaching
// the anchor with extended scrolling enabled fires the long-form
// pre-completion notice so content can prepare before the gesture finishes.
func (d *Driver) adjustToY(y float64) {
	y = math.Max(y, d.layout.anchorY)
	y = math.Min(y, d.containerH)
	d.surface.SetPanY(y)

	if y == d.layout.anchorY && d.extendsPanScrolling {
		if !d.notifiedLongForm {
			d.notifiedLongForm = true
			d.presentable.WillTransition(LongForm)
		}
	} else {
		d.notifiedLongForm = false
	}
}

func (d *Driver) updatePercent(percent float64) {
	d.percentComplete = math.Max(0, math.Min(percent, 1))
}

func (d *Driver) animateTo(targetY float64, then func()) {
	d.animator.Animate(
		func() float64 { return targetY },
		d.presentable.TransitionDuration(),
		d.curveFor(targetY),
		func(finished bool) {
			if !finished {
				// Superseded: a newer animation owns the surface now.
				return
			}
			d.isAnimating = false
			d.percentComplete = 0
			if then != nil {
				then()
			}
		},
	)
	d.isAnimating = true
}

// curveFor picks the configured curve; snaps to a full-screen-style position
// use the no-bounce damping ratio.
func (d *Driver) curveFor(targetY float64) animation.Curve {
	if d.presentable.AnimationMode() == AnimationBezier {
		return animation.Bezier(d.presentable.BezierPoints())
	}
	damping := d.presentable.SpringDamping()
	if targetY <= d.presentable.TopOffset()+anchorEpsilon {
		damping = d.presentable.SpringDampingFullScreen()
	}
	return animation.Spring(damping)
}

func (d *Driver) restingY(s PresentationState) float64 {
	if s == LongForm {
		return d.layout.longFormY
	}
	return d.layout.shortFormY
}

// ShouldYieldPan is the arbitration predicate the host's gesture dispatch
// consults before beginning the sheet's pan: the sheet yields to the embedded
// scroll surface only when it is anchored, the surface is scrolled past its
// top, and the touch lands in the surface (or it is already scrolling).
// A prioritizing presentable wins outright; the surface's own recognizer is
// toggled off and on to reset its tracking state.
func (d *Driver) ShouldYieldPan(touchX, touchY float64) bool {
	sv := d.presentable.PanScrollable()
	if sv == nil {
		return false
	}
	if d.presentable.ShouldPrioritizePan() {
		sv.SetDragEnabled(false)
		sv.SetDragEnabled(true)
		return false
	}
	if !d.Anchored() {
		return false
	}
	if sv.ContentOffset() <= 0 {
		return false
	}
	x, y, w, h := sv.Bounds()
	inSurface := touchX >= x && touchX <= x+w && touchY >= y && touchY <= y+h
	return inSurface || sv.IsUserScrolling()
}

func isFastVelocity(v float64) bool {
	return math.Abs(v)-1000*(1-panSensitivity) > 0
}

// nearest returns the candidate closest to the given position; ties go to
// the earlier candidate.
func nearest(to float64, candidates ...float64) float64 {
	best := candidates[0]
	bestDist := math.Abs(to - best)
	for _, c := range candidates[1:] {
		if dist := math.Abs(to - c); dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best
}
