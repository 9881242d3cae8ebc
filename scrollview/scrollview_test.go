package scrollview

import "testing"

// listView is a 400pt-tall viewport over 1000pt of content, so maxOffset=600.
func listView() *ScrollView {
	s := New(60)
	s.SetFrame(0, 100, 480, 400)
	s.SetContentHeight(1000)
	return s
}

func idle(s *ScrollView, n int) {
	for i := 0; i < n; i++ {
		s.Update(0, 0, false, 0)
	}
}

func TestWheelScrollsAndClamps(t *testing.T) {
	s := listView()

	s.Update(240, 300, false, -1)
	if s.ContentOffset() != 60 {
		t.Errorf("Expected offset 60 after one wheel unit, got %v", s.ContentOffset())
	}

	for i := 0; i < 20; i++ {
		s.Update(240, 300, false, -1)
	}
	if s.ContentOffset() != 600 {
		t.Errorf("Expected offset clamped to 600, got %v", s.ContentOffset())
	}

	for i := 0; i < 30; i++ {
		s.Update(240, 300, false, 1)
	}
	if s.ContentOffset() != 0 {
		t.Errorf("Expected offset clamped to 0, got %v", s.ContentOffset())
	}
}

func TestDragScrollsContent(t *testing.T) {
	s := listView()

	s.Update(240, 300, true, 0)
	if !s.IsDragging() {
		t.Fatal("Expected drag to begin inside viewport")
	}
	s.Update(240, 280, true, 0)
	s.Update(240, 260, true, 0)

	if s.ContentOffset() != 40 {
		t.Errorf("Expected offset 40 after dragging up 40pt, got %v", s.ContentOffset())
	}
}

func TestPressOutsideViewportIgnored(t *testing.T) {
	s := listView()

	s.Update(240, 50, true, 0)
	if s.IsDragging() {
		t.Error("Expected no drag for press outside viewport")
	}
}

func TestSlowReleaseDoesNotFling(t *testing.T) {
	s := listView()

	s.Update(240, 300, true, 0)
	s.Update(240, 299.5, true, 0) // 30pt/s, under the fling threshold
	s.Update(240, 299.5, false, 0)

	if s.IsDecelerating() {
		t.Error("Expected no momentum from a slow release")
	}
}

func TestFlingDeceleratesToRest(t *testing.T) {
	s := listView()

	s.Update(240, 400, true, 0)
	y := 400.0
	for i := 0; i < 6; i++ {
		y -= 5
		s.Update(240, y, true, 0)
	}
	s.Update(240, y, false, 0)

	if !s.IsDecelerating() {
		t.Fatal("Expected momentum after fast release")
	}
	released := s.ContentOffset()

	idle(s, 600)
	if s.IsDecelerating() {
		t.Error("Expected deceleration to come to rest")
	}
	if s.ContentOffset() <= released {
		t.Errorf("Expected coasting past %v, got %v", released, s.ContentOffset())
	}
	if max := s.maxOffset(); s.ContentOffset() > max {
		t.Errorf("Expected rest inside range, got %v > %v", s.ContentOffset(), max)
	}
}

func TestOverscrollResistsAndSpringsBack(t *testing.T) {
	s := listView()

	// Drag down from the top: the offset goes negative with resistance.
	s.Update(240, 200, true, 0)
	s.Update(240, 240, true, 0)
	if s.ContentOffset() != -40 {
		t.Errorf("Expected offset -40 past the top, got %v", s.ContentOffset())
	}
	s.Update(240, 280, true, 0)
	if s.ContentOffset() != -60 {
		t.Errorf("Expected resisted offset -60, got %v", s.ContentOffset())
	}

	// Release out of range: the view springs back and settles at exactly 0,
	// staying negative while it decays.
	s.Update(240, 280, false, 0)
	if !s.IsDecelerating() {
		t.Fatal("Expected spring-back after overscrolled release")
	}
	sawNegative := false
	for i := 0; i < 600 && s.IsDecelerating(); i++ {
		s.Update(0, 0, false, 0)
		if s.ContentOffset() < 0 {
			sawNegative = true
		}
	}
	if s.IsDecelerating() {
		t.Fatal("Expected spring-back to settle")
	}
	if !sawNegative {
		t.Error("Expected negative offsets during spring-back")
	}
	if s.ContentOffset() != 0 {
		t.Errorf("Expected settle at exactly 0, got %v", s.ContentOffset())
	}
}

func TestBottomOverscrollSpringsBack(t *testing.T) {
	s := listView()
	s.SetContentOffset(600)

	s.Update(240, 400, true, 0)
	s.Update(240, 360, true, 0) // first tick leaves the valid range at full rate
	if s.ContentOffset() != 640 {
		t.Errorf("Expected offset 640, got %v", s.ContentOffset())
	}
	s.Update(240, 350, true, 0)
	if s.ContentOffset() != 645 {
		t.Errorf("Expected resisted offset 645, got %v", s.ContentOffset())
	}
	s.Update(240, 350, false, 0)

	idle(s, 600)
	if s.ContentOffset() != 600 {
		t.Errorf("Expected settle at max offset 600, got %v", s.ContentOffset())
	}
}

func TestSetDragEnabledFalseCancelsTracking(t *testing.T) {
	s := listView()

	s.Update(240, 400, true, 0)
	y := 400.0
	for i := 0; i < 6; i++ {
		y -= 5
		s.Update(240, y, true, 0)
	}
	s.Update(240, y, false, 0)
	if !s.IsUserScrolling() {
		t.Fatal("Expected momentum scrolling")
	}

	s.SetDragEnabled(false)
	if s.IsUserScrolling() {
		t.Error("Expected tracking cancelled when drag disabled")
	}
	off := s.ContentOffset()
	s.Update(240, 300, true, 0)
	s.Update(240, 200, true, 0)
	if s.ContentOffset() != off {
		t.Errorf("Expected offset frozen while disabled, got %v", s.ContentOffset())
	}

	s.SetDragEnabled(true)
	s.Update(240, 200, false, 0)
	s.Update(240, 300, true, 0)
	if !s.IsDragging() {
		t.Error("Expected drag to work again after re-enable")
	}
}

func TestSetContentOffsetBypassesState(t *testing.T) {
	s := listView()
	s.SetContentOffset(250)
	if s.ContentOffset() != 250 {
		t.Errorf("Expected offset 250, got %v", s.ContentOffset())
	}
	if s.IsUserScrolling() {
		t.Error("Expected programmatic offset not to count as user scrolling")
	}
}

func TestIndicatorVisibilityToggle(t *testing.T) {
	s := listView()
	if !s.IndicatorVisible() {
		t.Error("Expected indicator visible by default")
	}
	s.SetIndicatorVisible(false)
	if s.IndicatorVisible() {
		t.Error("Expected indicator hidden")
	}
}
