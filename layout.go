package panmodal

import "math"

// sheetLayout holds the vertical offsets resolved from a Presentable against
// a container, in top-left-origin coordinates: long form sits higher on
// screen (smaller Y) than short form, and both lie within the container.
type sheetLayout struct {
	shortFormY float64
	longFormY  float64
	anchorY    float64
}

// resolveLayout recomputes the resting offsets. contentH is the presented
// content's intrinsic height, consulted by HeightContent specs. Called on
// every layout pass so rotation and dynamic content sizes are covered.
func resolveLayout(p Presentable, containerH, contentH float64) sheetLayout {
	top := math.Max(0, p.TopOffset())

	shortY := resolveY(p.ShortFormHeight(), containerH, contentH, top)
	longY := resolveY(p.LongFormHeight(), containerH, contentH, top)

	// Short form must not sit above long form.
	if shortY < longY {
		shortY = longY
	}

	l := sheetLayout{shortFormY: shortY, longFormY: longY}
	if p.AnchorModalToLongForm() {
		l.anchorY = longY
	} else {
		l.anchorY = top
	}
	return l
}

// resolveY converts a height spec into a top offset within the container.
func resolveY(spec HeightSpec, containerH, contentH, top float64) float64 {
	var h float64
	switch spec.kind {
	case heightFixed:
		h = spec.value
	case heightContent:
		h = contentH
	default: // heightMax
		h = containerH - top
	}

	y := containerH - h
	if y < top {
		y = top
	}
	if y > containerH {
		y = containerH
	}
	return y
}
