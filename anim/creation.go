package anim

import (
	"github.com/matt-g-everett/vanim/item"
)

// CreationItem is the capability set required by Create and UnCreate.
type CreationItem[T any] interface {
	item.Clonable[T]
	item.Emptyable[T]
	item.Interpolatable[T]
	item.Partial[T]
}

// Create animates an item being drawn: empty at alpha 0, the growing
// closed sub-curve for intermediate alpha, the full item at alpha 1.
func Create[T CreationItem[T]](original T) *AnimationSpan[T] {
	e := &createEval[T]{original: original.Clone()}
	return FromEvaluator[T](e).WithRateFunc(Smooth).WithName("Create")
}

// UnCreate is the time-reverse of Create.
func UnCreate[T CreationItem[T]](original T) *AnimationSpan[T] {
	e := &unCreateEval[T]{original: original.Clone()}
	return FromEvaluator[T](e).WithRateFunc(Smooth).WithName("UnCreate")
}

type createEval[T CreationItem[T]] struct {
	original T
}

func (c *createEval[T]) EvalAlpha(alpha float64) T {
	alpha = clampAlpha("Create", alpha)
	switch {
	case alpha <= 0:
		return c.original.Empty()
	case alpha >= 1:
		return c.original.Clone()
	default:
		return c.original.PartialClosed(0, alpha)
	}
}

type unCreateEval[T CreationItem[T]] struct {
	original T
}

func (u *unCreateEval[T]) EvalAlpha(alpha float64) T {
	alpha = clampAlpha("UnCreate", alpha)
	switch {
	case alpha <= 0:
		return u.original.Clone()
	case alpha >= 1:
		return u.original.Empty()
	default:
		return u.original.PartialClosed(0, 1-alpha)
	}
}
