// Package animation provides an interruptible, tick-stepped animator for a
// single float value. Starting a new animation supersedes any in-flight one:
// the old completion fires with finished=false and the new animation retargets
// smoothly from the current visual state, carrying spring velocity over so the
// value never jumps.
package animation

import (
	"math"
	"time"
)

// MinDuration is the floor applied to animation durations. Zero or negative
// durations are clamped to it.
const MinDuration = 50 * time.Millisecond

const (
	settleDistance = 0.1
	settleVelocity = 1.0
)

type animation struct {
	curve    Curve
	start    float64
	target   float64
	duration float64
	elapsed  float64
	done     func(finished bool)
}

// Animator animates a value accessed through get/set closures. Step it from
// the host's Update loop. Only the animator writes the value while an
// animation is in flight.
type Animator struct {
	get func() float64
	set func(float64)

	anim     *animation
	velocity float64
}

// New creates an Animator bound to a value.
func New(get func() float64, set func(float64)) *Animator {
	return &Animator{get: get, set: set}
}

// Running reports whether an animation is in flight.
func (a *Animator) Running() bool {
	return a.anim != nil
}

// Animate starts an interruptible animation from the current value toward the
// value returned by target. A previous in-flight animation is superseded: its
// completion fires with finished=false before the new one takes over, and it
// can never write the value again. done is invoked exactly once.
func (a *Animator) Animate(target func() float64, d time.Duration, curve Curve, done func(finished bool)) {
	vel := a.velocity
	a.Cancel()
	a.velocity = vel
	if d < MinDuration {
		d = MinDuration
	}
	a.anim = &animation{
		curve:    curve,
		start:    a.get(),
		target:   target(),
		duration: d.Seconds(),
		done:     done,
	}
}

// Cancel stops any in-flight animation, leaving the value where it is. The
// animation's completion fires with finished=false.
func (a *Animator) Cancel() {
	if a.anim == nil {
		return
	}
	anim := a.anim
	a.anim = nil
	a.velocity = 0
	if anim.done != nil {
		anim.done(false)
	}
}

// Step advances the in-flight animation by dt seconds. On settling it writes
// the exact target value and fires the completion with finished=true.
func (a *Animator) Step(dt float64) {
	anim := a.anim
	if anim == nil || dt <= 0 {
		return
	}

	switch anim.curve.kind {
	case curveBezier:
		anim.elapsed += dt
		u := anim.elapsed / anim.duration
		if u >= 1 {
			a.finish(anim)
			return
		}
		a.set(anim.start + (anim.target-anim.start)*anim.curve.ease(u))

	default: // spring
		omega := 2 * math.Pi / anim.duration
		k := omega * omega
		c := 2 * anim.curve.springDamping() * omega

		pos := a.get()
		a.velocity += (k*(anim.target-pos) - c*a.velocity) * dt
		pos += a.velocity * dt
		a.set(pos)

		if math.Abs(anim.target-pos) < settleDistance && math.Abs(a.velocity) < settleVelocity {
			a.finish(anim)
		}
	}
}

func (a *Animator) finish(anim *animation) {
	a.set(anim.target)
	a.anim = nil
	a.velocity = 0
	if anim.done != nil {
		anim.done(true)
	}
}

func (c Curve) springDamping() float64 {
	if c.damping <= 0 {
		return DefaultSpringDamping
	}
	return c.damping
}
