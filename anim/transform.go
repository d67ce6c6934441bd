package anim

import (
	"github.com/matt-g-everett/vanim/item"
)

// TransformItem is the capability set required by Transform.
type TransformItem[T any] interface {
	item.Clonable[T]
	item.Interpolatable[T]
	item.Alignable[T]
}

// Transform morphs src into dst. When the two are not structurally
// comparable they are aligned once at construction time, and the
// aligned copies are what gets interpolated; the exact src and dst are
// still returned at the alpha endpoints.
func Transform[T TransformItem[T]](src, dst T) *AnimationSpan[T] {
	alignedSrc, alignedDst := src.Clone(), dst.Clone()
	if !alignedSrc.IsAligned(alignedDst) {
		alignedSrc, alignedDst = alignedSrc.AlignWith(alignedDst)
	}
	e := &transformEval[T]{
		src:        src.Clone(),
		dst:        dst.Clone(),
		alignedSrc: alignedSrc,
		alignedDst: alignedDst,
	}
	return FromEvaluator[T](e).WithRateFunc(Smooth).WithName("Transform")
}

type transformEval[T TransformItem[T]] struct {
	src        T
	dst        T
	alignedSrc T
	alignedDst T
}

func (t *transformEval[T]) EvalAlpha(alpha float64) T {
	alpha = clampAlpha("Transform", alpha)
	switch {
	case alpha <= 0:
		return t.src.Clone()
	case alpha >= 1:
		return t.dst.Clone()
	default:
		return t.alignedSrc.Lerp(t.alignedDst, alpha)
	}
}
