package panmodal

import "testing"

// anchoredSetup builds a driver resting at long form (Y=100) with a fake
// scroll surface attached, plus its observer.
func anchoredSetup(t *testing.T) (*Driver, *fakeSurface, *yieldScroll, *ScrollObserver, *Subscription) {
	t.Helper()
	d, sheet, surf := presentedDriver(t)
	scroll := &yieldScroll{x: 0, y: 120, w: 480, h: 680, dragEnabled: true, indicator: true}
	sheet.scrollable = scroll

	d.Transition(LongForm)
	settle(t, d)
	if !d.Anchored() {
		t.Fatal("Expected sheet anchored at long form")
	}

	obs := newScrollObserver(d, scroll)
	sub := &Subscription{obs: obs}
	return d, surf, scroll, obs, sub
}

func TestObserverTracksWhileAnchored(t *testing.T) {
	_, _, scroll, obs, _ := anchoredSetup(t)

	scroll.userScrolling = true
	scroll.offset = 50
	obs.OffsetChanged(0, 50)

	if obs.TrackedOffset() != 50 {
		t.Errorf("Expected tracked offset 50, got %v", obs.TrackedOffset())
	}
	if scroll.offset != 50 {
		t.Errorf("Expected offset untouched at 50, got %v", scroll.offset)
	}
	if !scroll.indicator {
		t.Error("Expected indicator visible while tracking")
	}
}

func TestObserverHaltsWhileSheetDragged(t *testing.T) {
	_, surf, scroll, obs, _ := anchoredSetup(t)

	scroll.userScrolling = true
	scroll.offset = 50
	obs.OffsetChanged(0, 50)

	// Drag the sheet off its anchor; further scrolling must be frozen at the
	// tracked offset with the indicator hidden.
	surf.SetPanY(300)
	scroll.offset = 120
	obs.OffsetChanged(50, 120)

	if scroll.offset != 50 {
		t.Errorf("Expected offset forced back to 50, got %v", scroll.offset)
	}
	if scroll.indicator {
		t.Error("Expected indicator hidden while halting")
	}
}

func TestObserverBounceTransfer(t *testing.T) {
	_, surf, scroll, obs, _ := anchoredSetup(t)

	// Overscroll of -20 while decelerating moves the sheet to longFormY+20.
	scroll.decelerating = true
	scroll.offset = -20
	obs.OffsetChanged(0, -20)

	if surf.PanY() != 120 {
		t.Errorf("Expected sheet at 120 during bounce-transfer, got %v", surf.PanY())
	}
	if scroll.indicator {
		t.Error("Expected indicator hidden during bounce-transfer")
	}

	scroll.offset = -5
	obs.OffsetChanged(-20, -5)
	if surf.PanY() != 105 {
		t.Errorf("Expected sheet at 105, got %v", surf.PanY())
	}

	// Overscroll decays to zero: the sheet relaxes to exactly long form and
	// normal tracking resumes.
	scroll.decelerating = false
	scroll.offset = 0
	obs.OffsetChanged(-5, 0)

	if surf.PanY() != 100 {
		t.Errorf("Expected sheet settled at 100, got %v", surf.PanY())
	}
	if obs.TrackedOffset() != 0 {
		t.Errorf("Expected tracked offset reset to 0, got %v", obs.TrackedOffset())
	}
	if !scroll.indicator {
		t.Error("Expected indicator restored after bounce")
	}
}

func TestObserverDefersToRunningAnimation(t *testing.T) {
	d, surf, scroll, obs, _ := anchoredSetup(t)

	d.Transition(ShortForm)
	for i := 0; i < 5; i++ {
		d.Step(1.0 / 60)
	}
	mid := surf.y
	if mid <= 100 || mid >= 500 {
		t.Fatalf("Expected mid-flight position between forms, got %v", mid)
	}

	// Overscroll arriving while a snap is in flight must not touch the pan
	// position; the residual offset is frozen out instead.
	scroll.decelerating = true
	scroll.offset = -20
	obs.OffsetChanged(0, -20)

	if surf.y != mid {
		t.Errorf("Expected pan position left to the animation, got %v", surf.y)
	}
	if scroll.offset != 0 {
		t.Errorf("Expected overscroll halted at 0, got %v", scroll.offset)
	}

	settle(t, d)
	if surf.y != 500 {
		t.Errorf("Expected snap to finish at 500, got %v", surf.y)
	}
}

func TestBounceAbandonedWhenAnimationStarts(t *testing.T) {
	d, surf, scroll, obs, _ := anchoredSetup(t)

	scroll.decelerating = true
	scroll.offset = -20
	obs.OffsetChanged(0, -20)
	if surf.y != 120 {
		t.Fatalf("Expected bounce-transfer to 120, got %v", surf.y)
	}

	// A programmatic snap starts mid-bounce: the animator takes the position
	// and further overscroll changes stop moving the sheet.
	d.Transition(ShortForm)
	scroll.offset = -5
	obs.OffsetChanged(-20, -5)

	if surf.y != 120 {
		t.Errorf("Expected pan position left to the animation, got %v", surf.y)
	}
	if scroll.offset != 0 {
		t.Errorf("Expected overscroll halted at 0, got %v", scroll.offset)
	}

	settle(t, d)
	if surf.y != 500 {
		t.Errorf("Expected snap to finish at 500, got %v", surf.y)
	}
}

func TestSubscriptionPauseResume(t *testing.T) {
	_, surf, scroll, obs, sub := anchoredSetup(t)

	sub.Pause()
	scroll.offset = 200
	obs.OffsetChanged(0, 200)

	if surf.PanY() != 100 {
		t.Errorf("Expected sheet unmoved while paused, got %v", surf.PanY())
	}
	if obs.TrackedOffset() != 0 {
		t.Errorf("Expected tracked offset unchanged while paused, got %v", obs.TrackedOffset())
	}

	// Resume adopts the surface's offset as the new baseline, so the batched
	// change is not treated as user scrolling.
	sub.Resume()
	if obs.TrackedOffset() != 200 {
		t.Errorf("Expected baseline resynced to 200, got %v", obs.TrackedOffset())
	}

	scroll.userScrolling = true
	scroll.offset = 230
	obs.OffsetChanged(200, 230)
	if obs.TrackedOffset() != 230 {
		t.Errorf("Expected tracking to resume, got %v", obs.TrackedOffset())
	}
}

func TestSubscriptionCancelDetaches(t *testing.T) {
	_, surf, scroll, obs, sub := anchoredSetup(t)

	sub.Cancel()
	scroll.decelerating = true
	scroll.offset = -20
	obs.OffsetChanged(0, -20)

	if surf.PanY() != 100 {
		t.Errorf("Expected no delivery after cancel, got sheet at %v", surf.PanY())
	}
}
