package anim

import (
	"github.com/matt-g-everett/vanim/item"
)

// FadingItem is the capability set required by FadeIn and FadeOut.
type FadingItem[T any] interface {
	item.Clonable[T]
	item.Interpolatable[T]
	item.Fadable[T]
}

// LerpItem is the capability set required by Fade.
type LerpItem[T any] interface {
	item.Clonable[T]
	item.Interpolatable[T]
}

// Fade interpolates plainly between two states. With an empty src it is
// a fade-in, with an empty dst a fade-out.
func Fade[T LerpItem[T]](src, dst T) *AnimationSpan[T] {
	e := &fadeEval[T]{src: src.Clone(), dst: dst.Clone()}
	return FromEvaluator[T](e).WithRateFunc(Smooth).WithName("Fade")
}

// FadeIn fades an item in from a fully transparent copy of itself, so
// items that are not completely opaque fade to their own opacity rather
// than to full opacity.
func FadeIn[T FadingItem[T]](target T) *AnimationSpan[T] {
	e := &fadeEval[T]{src: target.Clone().WithOpacity(0), dst: target.Clone()}
	return FromEvaluator[T](e).WithRateFunc(Smooth).WithName("FadeIn")
}

// FadeOut fades an item out to a fully transparent copy of itself.
func FadeOut[T FadingItem[T]](target T) *AnimationSpan[T] {
	e := &fadeEval[T]{src: target.Clone(), dst: target.Clone().WithOpacity(0)}
	return FromEvaluator[T](e).WithRateFunc(Smooth).WithName("FadeOut")
}

type fadeEval[T LerpItem[T]] struct {
	src T
	dst T
}

func (f *fadeEval[T]) EvalAlpha(alpha float64) T {
	alpha = clampAlpha("Fade", alpha)
	return f.src.Lerp(f.dst, alpha)
}
