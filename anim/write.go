package anim

import (
	"github.com/matt-g-everett/vanim/item"
)

// WritingItem is the capability set required by Write and Unwrite.
type WritingItem[T any] interface {
	CreationItem[T]
	item.FillColored[T]
	item.StrokeColored[T]
	item.StrokeWidthed[T]
}

// Write animates an item being handwritten: the first half reveals the
// item's outline as a growing sub-curve, the second half interpolates
// the outline into the fully styled item.
func Write[T WritingItem[T]](original T) *AnimationSpan[T] {
	e := &writeEval[T]{
		original: original.Clone(),
		outline:  outlineOf(original),
	}
	return FromEvaluator[T](e).WithRateFunc(Smooth).WithName("Write")
}

// Unwrite is the time-reverse of Write: first the item lerps back to
// its outline, then the outline shrinks to nothing.
func Unwrite[T WritingItem[T]](original T) *AnimationSpan[T] {
	e := &unwriteEval[T]{
		original: original.Clone(),
		outline:  outlineOf(original),
	}
	return FromEvaluator[T](e).WithRateFunc(Smooth).WithName("Unwrite")
}

// outlineOf derives the outline form: fill invisible, stroke fully
// opaque, with a minimum stroke width substituted when there is none.
func outlineOf[T WritingItem[T]](original T) T {
	outline := original.Clone().WithFillOpacity(0).WithStrokeOpacity(1)
	if outline.StrokeWidth() == 0 {
		outline = outline.WithStrokeWidth(item.DefaultStrokeWidth)
	}
	return outline
}

type writeEval[T WritingItem[T]] struct {
	original T
	outline  T
}

func (w *writeEval[T]) EvalAlpha(alpha float64) T {
	a := clampAlpha("Write", alpha) * 2
	switch {
	case a < 1:
		return w.outline.Partial(0, a)
	case a == 1:
		return w.outline.Clone()
	case a < 2:
		return w.outline.Lerp(w.original, a-1)
	default:
		return w.original.Clone()
	}
}

type unwriteEval[T WritingItem[T]] struct {
	original T
	outline  T
}

func (u *unwriteEval[T]) EvalAlpha(alpha float64) T {
	a := clampAlpha("Unwrite", alpha) * 2
	switch {
	case a < 1:
		return u.original.Lerp(u.outline, a)
	case a == 1:
		return u.outline.Clone()
	case a < 2:
		return u.outline.Partial(0, 2-a)
	default:
		return u.original.Empty()
	}
}
