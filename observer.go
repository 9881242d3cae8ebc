package panmodal

// ScrollObserver decides, per content-offset change of the embedded scroll
// surface, whether to let it scroll (track), freeze it at the last tracked
// offset (halt), or translate top overscroll into sheet movement
// (bounce-transfer), so scroll momentum and sheet drag feel like one gesture.
//
// There is no key-path observation here: the controller samples the surface's
// offset once per tick and reports changes through OffsetChanged. The host
// owns the delivery via the Subscription handle and must pause it around
// batched programmatic content updates.
type ScrollObserver struct {
	driver  *Driver
	surface ScrollSurface

	tracked   float64
	bouncing  bool
	paused    bool
	cancelled bool
}

func newScrollObserver(d *Driver, s ScrollSurface) *ScrollObserver {
	return &ScrollObserver{driver: d, surface: s}
}

// TrackedOffset is the last offset accepted as a legitimate scroll baseline.
func (o *ScrollObserver) TrackedOffset() float64 { return o.tracked }

// Resync adopts the surface's current offset as the new baseline without
// running any decision logic. Called after a paused batch update.
func (o *ScrollObserver) Resync() {
	o.tracked = o.surface.ContentOffset()
}

// OffsetChanged runs the halt / track / bounce-transfer decision for one
// offset change. No-op while paused or cancelled.
func (o *ScrollObserver) OffsetChanged(old, new float64) {
	if o.paused || o.cancelled {
		return
	}

	if o.driver.Animating() {
		// The animator owns the pan position while a snap runs; drop any
		// bounce hand-off and fall through to the halt/track decision.
		o.bouncing = false
	} else if new < 0 && o.surface.IsDecelerating() {
		// Top overscroll while decelerating: hand the momentum to the sheet.
		o.bounceTransfer(new)
		return
	} else if o.bouncing {
		// Overscroll decayed back: settle the sheet exactly at long form and
		// return control to normal tracking.
		o.bouncing = false
		o.driver.surface.SetPanY(o.driver.layout.longFormY)
		o.surface.SetContentOffset(0)
		o.tracked = 0
		o.surface.SetIndicatorVisible(true)
		return
	}

	if !o.driver.Anchored() && new > 0 {
		o.halt()
		return
	}

	if o.surface.IsUserScrolling() {
		if o.driver.Anchored() {
			o.track(new)
		} else {
			o.halt()
		}
		return
	}

	o.track(new)
}

// bounceTransfer moves the sheet with the overscroll: the offset is negative,
// so subtracting it pushes the sheet below long form by the overscroll amount.
func (o *ScrollObserver) bounceTransfer(offset float64) {
	o.bouncing = true
	o.surface.SetIndicatorVisible(false)
	o.driver.surface.SetPanY(o.driver.layout.longFormY - offset)
}

// halt freezes the surface at the tracked offset so content cannot scroll
// underneath a dragging sheet. The indicator is hidden to avoid jitter.
func (o *ScrollObserver) halt() {
	o.surface.SetIndicatorVisible(false)
	o.surface.SetContentOffset(o.tracked)
}

// track records the new offset as the legitimate baseline.
func (o *ScrollObserver) track(offset float64) {
	o.tracked = offset
	o.surface.SetIndicatorVisible(true)
}

// Subscription is the owned handle for offset-change delivery. Pause/Resume
// bracket batched programmatic updates; Cancel detaches permanently when the
// presentation is torn down.
type Subscription struct {
	obs *ScrollObserver
}

func (s *Subscription) Pause() {
	if s.obs != nil {
		s.obs.paused = true
	}
}

// Resume re-enables delivery. The observer resyncs its baseline first so the
// sheet does not jump in response to self-inflicted content changes.
func (s *Subscription) Resume() {
	if s.obs == nil {
		return
	}
	s.obs.Resync()
	s.obs.paused = false
}

func (s *Subscription) Cancel() {
	if s.obs != nil {
		s.obs.cancelled = true
	}
}
