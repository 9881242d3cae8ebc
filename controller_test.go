package panmodal

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeContent struct {
	h float64
}

func (f *fakeContent) Draw(dst *ebiten.Image, x, y, w, h float64) {}
func (f *fakeContent) ContentHeight() float64                     { return f.h }

// tick advances the controller with no pointer interaction.
func tick(c *PresentationController, n int) {
	for i := 0; i < n; i++ {
		c.UpdateWithPointer(0, 0, false)
	}
}

func presentedController(t *testing.T) (*PresentationController, *testSheet) {
	t.Helper()
	sheet := newTestSheet()
	c := NewPresentationController(sheet, &fakeContent{h: 900}, 480, 800)
	c.Present()
	tick(c, 600)
	if !c.Presented() {
		t.Fatal("Expected controller presented")
	}
	if c.PanY() != 500 {
		t.Fatalf("Expected panel at short form Y=500, got %v", c.PanY())
	}
	return c, sheet
}

func TestControllerRequiresContent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for nil content")
		}
	}()
	NewPresentationController(newTestSheet(), nil, 480, 800)
}

func TestControllerPresentAndDismiss(t *testing.T) {
	c, sheet := presentedController(t)

	dismissed := false
	c.OnDismissed = func() { dismissed = true }

	c.Dismiss()
	tick(c, 600)

	if !dismissed {
		t.Fatal("Expected OnDismissed to fire")
	}
	if c.Presented() {
		t.Error("Expected controller no longer presented")
	}
	if !sheet.willDismissed || !sheet.didDismissed {
		t.Error("Expected dismiss hooks to fire")
	}
}

func TestControllerDragThroughRecognizer(t *testing.T) {
	c, _ := presentedController(t)

	// Press on the panel and flick upward: 12 ticks of -12pt is -720pt/s,
	// well past the fast threshold, so the sheet snaps to long form.
	y := 600.0
	c.UpdateWithPointer(240, y, true)
	for i := 0; i < 12; i++ {
		y -= 12
		c.UpdateWithPointer(240, y, true)
	}
	c.UpdateWithPointer(240, y, false)
	tick(c, 600)

	if c.State() != LongForm {
		t.Errorf("Expected LongForm after fast upward drag, got %s", c.State())
	}
	if c.PanY() != 100 {
		t.Errorf("Expected panel at Y=100, got %v", c.PanY())
	}
}

func TestControllerTapToDismiss(t *testing.T) {
	c, _ := presentedController(t)
	dismissed := false
	c.OnDismissed = func() { dismissed = true }

	// Tap the dim area above the panel.
	c.UpdateWithPointer(240, 50, true)
	c.UpdateWithPointer(240, 50, false)
	tick(c, 600)

	if !dismissed {
		t.Error("Expected tap on dim area to dismiss")
	}
}

type noTapSheet struct {
	*testSheet
}

func (s *noTapSheet) AllowsTapToDismiss() bool { return false }

func TestControllerTapToDismissDisabled(t *testing.T) {
	sheet := &noTapSheet{testSheet: newTestSheet()}
	c := NewPresentationController(sheet, &fakeContent{h: 900}, 480, 800)
	c.Present()
	tick(c, 600)

	dismissed := false
	c.OnDismissed = func() { dismissed = true }

	c.UpdateWithPointer(240, 50, true)
	c.UpdateWithPointer(240, 50, false)
	tick(c, 60)

	if dismissed {
		t.Error("Expected tap ignored with tap-to-dismiss disabled")
	}
}

func TestControllerResizeRelayout(t *testing.T) {
	c, _ := presentedController(t)

	c.Resize(480, 900)
	tick(c, 600)

	if c.AnchoredYPosition() != 200 {
		t.Errorf("Expected anchor recomputed to 200, got %v", c.AnchoredYPosition())
	}
	if c.PanY() != 600 {
		t.Errorf("Expected panel re-rested at 600 after resize, got %v", c.PanY())
	}
}

func TestControllerSetNeedsLayoutUpdate(t *testing.T) {
	sheet := newTestSheet()
	content := &fakeContent{h: 900}
	c := NewPresentationController(sheet, content, 480, 800)
	c.Present()
	tick(c, 600)

	// Panel height derives from the long-form offset.
	if c.PanHeight() != 700 {
		t.Errorf("Expected panel height 700, got %v", c.PanHeight())
	}

	c.SetNeedsLayoutUpdate()
	tick(c, 1)
	if c.PanHeight() != 700 {
		t.Errorf("Expected unchanged layout, got %v", c.PanHeight())
	}
}

func TestControllerPerformUpdatesPausesObserver(t *testing.T) {
	sheet := newTestSheet()
	scroll := &yieldScroll{x: 0, y: 120, w: 480, h: 680, dragEnabled: true, indicator: true}
	sheet.scrollable = scroll
	c := NewPresentationController(sheet, &fakeContent{h: 900}, 480, 800)
	c.Present()
	tick(c, 600)
	c.Transition(LongForm)
	tick(c, 600)

	// A programmatic batch update changes the offset; the sheet must not move
	// and the next tick must not treat it as user scrolling.
	scroll.decelerating = true
	c.PerformUpdates(func() {
		scroll.offset = -30
	})
	tick(c, 1)

	if c.PanY() != 100 {
		t.Errorf("Expected sheet unmoved at 100 after batched update, got %v", c.PanY())
	}
	if c.observer.TrackedOffset() != -30 {
		t.Errorf("Expected baseline resynced to -30, got %v", c.observer.TrackedOffset())
	}
}
