package anim

import (
	"github.com/matt-g-everett/vanim/item"
	"github.com/matt-g-everett/vanim/util"
)

// Lagged staggers one sub-animation per group element inside a single
// span. With a lag ratio of 0 all elements animate together; with 1
// each element starts as the previous one finishes. Every sub-animation
// derives its own local progress from the shared outer alpha.
func Lagged[T item.Visual[T]](lagRatio float64, items item.Group[T], animFunc func(T) *AnimationSpan[T]) *AnimationSpan[item.Group[T]] {
	spans := make([]*AnimationSpan[T], len(items))
	for i, it := range items {
		spans[i] = animFunc(it)
	}
	e := &laggedEval[T]{lagRatio: lagRatio, spans: spans}
	return FromEvaluator[item.Group[T]](e).WithName("Lagged")
}

type laggedEval[T item.Visual[T]] struct {
	lagRatio float64
	spans    []*AnimationSpan[T]
}

func (l *laggedEval[T]) EvalAlpha(alpha float64) item.Group[T] {
	alpha = clampAlpha("Lagged", alpha)
	n := len(l.spans)
	out := make(item.Group[T], n)
	if n == 0 {
		return out
	}

	// total = unit * (1 + (n-1)*lagRatio), normalized to 1.
	unit := 1.0 / (1.0 + float64(n-1)*l.lagRatio)
	for i, span := range l.spans {
		start := unit * l.lagRatio * float64(i)
		local := util.Clamp((alpha-start)/unit, 0, 1)
		out[i] = span.EvalAlpha(local)
	}
	return out
}
