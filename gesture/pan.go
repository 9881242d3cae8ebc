// Package gesture provides a vertical pan recognizer over per-tick pointer
// samples. The recognizer is input-agnostic: feed it one sample per tick from
// any source (ReadPointer maps Ebitengine mouse and touch input).
package gesture

// Phase is the lifecycle phase of a pan gesture.
type Phase int

const (
	PhasePossible Phase = iota
	PhaseBegan
	PhaseChanged
	PhaseEnded
	PhaseCancelled
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhasePossible:
		return "Possible"
	case PhaseBegan:
		return "Began"
	case PhaseChanged:
		return "Changed"
	case PhaseEnded:
		return "Ended"
	case PhaseCancelled:
		return "Cancelled"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Event is a single pan gesture callback. TranslationY is cumulative vertical
// movement since Began; VelocityY is in points per second, positive downward.
type Event struct {
	Phase        Phase
	X, Y         float64
	TranslationY float64
	VelocityY    float64
}

// velocityWindow is the number of recent ticks used for velocity estimation
// (~100ms at 60 ticks per second).
const velocityWindow = 6

// Recognizer turns raw pointer samples into pan events. Feed exactly one
// sample per tick. Events are delivered synchronously through Handler.
type Recognizer struct {
	// ShouldBegin, when set, is consulted before the gesture begins. Returning
	// false leaves the recognizer idle so another handler can take the pointer.
	ShouldBegin func(x, y float64) bool
	// Handler receives every emitted event. Required.
	Handler func(Event)

	rate     float64
	tracking bool
	wasDown  bool
	startY   float64
	lastX    float64
	lastY    float64
	samples  []float64
}

// NewRecognizer creates a recognizer sampled at the given tick rate
// (ticks per second, typically 60).
func NewRecognizer(ticksPerSecond float64) *Recognizer {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	return &Recognizer{rate: ticksPerSecond}
}

// Tracking reports whether a pan is currently live (Began seen, no terminal
// phase yet).
func (r *Recognizer) Tracking() bool {
	return r.tracking
}

// Feed advances the recognizer with one pointer sample. down reports whether
// the primary pointer (mouse button or first touch) is held.
func (r *Recognizer) Feed(x, y float64, down bool) {
	defer func() { r.wasDown = down }()

	if !r.tracking {
		if down && !r.wasDown {
			if r.ShouldBegin != nil && !r.ShouldBegin(x, y) {
				return
			}
			r.begin(x, y)
		}
		return
	}

	if down {
		dy := y - r.lastY
		r.pushSample(dy)
		r.lastX, r.lastY = x, y
		if dy != 0 {
			r.emit(PhaseChanged, x, y)
		}
		return
	}

	// Released.
	r.emit(PhaseEnded, r.lastX, r.lastY)
	r.reset()
}

// Cancel force-terminates a live pan with PhaseCancelled.
func (r *Recognizer) Cancel() {
	if !r.tracking {
		return
	}
	r.emit(PhaseCancelled, r.lastX, r.lastY)
	r.reset()
}

// Fail force-terminates a live pan with PhaseFailed.
func (r *Recognizer) Fail() {
	if !r.tracking {
		return
	}
	r.emit(PhaseFailed, r.lastX, r.lastY)
	r.reset()
}

func (r *Recognizer) begin(x, y float64) {
	r.tracking = true
	r.startY = y
	r.lastX, r.lastY = x, y
	r.samples = r.samples[:0]
	r.emit(PhaseBegan, x, y)
}

func (r *Recognizer) reset() {
	r.tracking = false
	r.samples = r.samples[:0]
}

func (r *Recognizer) pushSample(dy float64) {
	r.samples = append(r.samples, dy)
	if len(r.samples) > velocityWindow {
		r.samples = r.samples[len(r.samples)-velocityWindow:]
	}
}

// velocityY estimates release velocity from the recent sample window.
func (r *Recognizer) velocityY() float64 {
	if len(r.samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, dy := range r.samples {
		sum += dy
	}
	return sum / float64(len(r.samples)) * r.rate
}

func (r *Recognizer) emit(phase Phase, x, y float64) {
	if r.Handler == nil {
		return
	}
	r.Handler(Event{
		Phase:        phase,
		X:            x,
		Y:            y,
		TranslationY: y - r.startY,
		VelocityY:    r.velocityY(),
	})
}
