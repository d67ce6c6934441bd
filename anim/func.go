package anim

import (
	"github.com/matt-g-everett/vanim/item"
)

// Func animates an item with an arbitrary function of the source state
// and the progress value. The function must be pure.
func Func[T item.Clonable[T]](src T, f func(src T, alpha float64) T) *AnimationSpan[T] {
	e := &funcEval[T]{src: src.Clone(), f: f}
	return FromEvaluator[T](e).WithName("Func")
}

type funcEval[T item.Clonable[T]] struct {
	src T
	f   func(T, float64) T
}

func (fe *funcEval[T]) EvalAlpha(alpha float64) T {
	return fe.f(fe.src, clampAlpha("Func", alpha))
}
