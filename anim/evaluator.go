// Package anim contains the animation evaluation core: the Evaluator
// abstraction, the AnimationSpan scheduling unit and the built-in
// animation algebra (create, write, fade, transform, lagged).
package anim

import (
	"log"

	"github.com/matt-g-everett/vanim/util"
)

// Evaluator is the core animation abstraction: a pure function from a
// normalized progress value alpha in [0, 1] to an item state. Repeated
// evaluation at the same alpha must yield the same result.
type Evaluator[T any] interface {
	EvalAlpha(alpha float64) T
}

// Static is an Evaluator that ignores alpha and always returns a stored
// snapshot. The snapshot is shared by every span referencing the same
// Static and must never be mutated once captured.
type Static[T any] struct {
	snapshot *T
}

// NewStatic creates a Static evaluator holding the given snapshot.
func NewStatic[T any](snapshot T) *Static[T] {
	return &Static[T]{snapshot: &snapshot}
}

// EvalAlpha returns the snapshot regardless of alpha.
func (s *Static[T]) EvalAlpha(float64) T {
	return *s.snapshot
}

// clampAlpha recovers from a progress value outside [0, 1] reaching a
// dynamic evaluator. A misbehaving rate function degrades to a clamped
// value with a diagnostic rather than aborting a render.
func clampAlpha(name string, alpha float64) float64 {
	if alpha < 0 || alpha > 1 {
		log.Printf("%s: alpha %v out of range, clamped to [0, 1]", name, alpha)
		return util.Clamp(alpha, 0, 1)
	}
	return alpha
}
