package anim

import (
	"github.com/matt-g-everett/vanim/util"
)

// AnimationSpan is the unit scheduled onto a timeline: an Evaluator
// plus timing metadata. Its time-to-progress mapping is
// alpha = rateFunc((sec - showSec) / duration).
type AnimationSpan[T any] struct {
	evaluator Evaluator[T]
	rateFunc  RateFunc
	name      string

	showSec      float64
	durationSecs float64
}

// FromEvaluator wraps an Evaluator in an AnimationSpan with a linear
// rate function and a duration of one second.
func FromEvaluator[T any](e Evaluator[T]) *AnimationSpan[T] {
	a := new(AnimationSpan[T])
	a.evaluator = e
	a.rateFunc = Linear
	a.durationSecs = 1.0
	return a
}

// WithRateFunc sets the rate function.
func (a *AnimationSpan[T]) WithRateFunc(f RateFunc) *AnimationSpan[T] {
	a.rateFunc = f
	return a
}

// WithDuration sets the duration in seconds.
func (a *AnimationSpan[T]) WithDuration(secs float64) *AnimationSpan[T] {
	a.durationSecs = secs
	return a
}

// WithName sets the display name of the span.
func (a *AnimationSpan[T]) WithName(name string) *AnimationSpan[T] {
	a.name = name
	return a
}

// At sets the start offset of the span on its owning timeline.
func (a *AnimationSpan[T]) At(showSec float64) *AnimationSpan[T] {
	a.showSec = showSec
	return a
}

// Name returns the display name of the span.
func (a *AnimationSpan[T]) Name() string {
	if a.name == "" {
		return "Static"
	}
	return a.name
}

// ShowSec returns the start offset of the span on its owning timeline.
func (a *AnimationSpan[T]) ShowSec() float64 {
	return a.showSec
}

// Duration returns the duration in seconds.
func (a *AnimationSpan[T]) Duration() float64 {
	return a.durationSecs
}

// EndSec returns the end offset of the span on its owning timeline.
func (a *AnimationSpan[T]) EndSec() float64 {
	return a.showSec + a.durationSecs
}

// EvalAlpha evaluates the span at a progress value, clamping it to
// [0, 1] before applying the rate function.
func (a *AnimationSpan[T]) EvalAlpha(alpha float64) T {
	return a.evaluator.EvalAlpha(a.rateFunc(util.Clamp(alpha, 0, 1)))
}

// EvalSec evaluates the span at a timeline timestamp. A zero-duration
// span evaluates at its end state.
func (a *AnimationSpan[T]) EvalSec(sec float64) T {
	if a.durationSecs <= 0 {
		return a.EvalAlpha(1)
	}
	return a.EvalAlpha((sec - a.showSec) / a.durationSecs)
}
