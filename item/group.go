package item

import (
	"github.com/matt-g-everett/vanim/util"
)

// Group is a homogeneous collection of items that is itself animatable.
// Capabilities broadcast over the elements; the group parameter range
// is split evenly across them, so a partial trim reveals the elements
// one after another.
type Group[T Visual[T]] []T

// NewGroup creates a Group from the given items.
func NewGroup[T Visual[T]](items ...T) Group[T] {
	return Group[T](items)
}

// Clone returns an independently-owned copy of the group.
func (g Group[T]) Clone() Group[T] {
	out := make(Group[T], len(g))
	for i, it := range g {
		out[i] = it.Clone()
	}
	return out
}

// Empty returns a group of the same size with every element empty, so
// the group stays structurally aligned with its visible form.
func (g Group[T]) Empty() Group[T] {
	out := make(Group[T], len(g))
	for i, it := range g {
		out[i] = it.Empty()
	}
	return out
}

// WithOpacity sets the opacity of every element.
func (g Group[T]) WithOpacity(opacity float64) Group[T] {
	out := make(Group[T], len(g))
	for i, it := range g {
		out[i] = it.WithOpacity(opacity)
	}
	return out
}

// Partial trims the group to the parameter range [from, to], with each
// element owning an equal slice of the range. Elements wholly outside
// the range become empty.
func (g Group[T]) Partial(from, to float64) Group[T] {
	return g.partial(from, to, func(it T, a, b float64) T { return it.Partial(a, b) })
}

// PartialClosed is Partial with each trimmed element closed.
func (g Group[T]) PartialClosed(from, to float64) Group[T] {
	return g.partial(from, to, func(it T, a, b float64) T { return it.PartialClosed(a, b) })
}

func (g Group[T]) partial(from, to float64, f func(T, float64, float64) T) Group[T] {
	from = util.Clamp(from, 0, 1)
	to = util.Clamp(to, 0, 1)
	n := float64(len(g))
	out := make(Group[T], len(g))
	for i, it := range g {
		lo, hi := float64(i)/n, float64(i+1)/n
		if to <= lo || from >= hi {
			out[i] = it.Empty()
			continue
		}
		a := util.Clamp((from-lo)*n, 0, 1)
		b := util.Clamp((to-lo)*n, 0, 1)
		out[i] = f(it, a, b)
	}
	return out
}

// IsAligned reports whether both groups have the same size and every
// element pair is aligned.
func (g Group[T]) IsAligned(other Group[T]) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if !g[i].IsAligned(other[i]) {
			return false
		}
	}
	return true
}

// AlignWith returns aligned copies of both groups. The smaller group is
// grown by repeating elements in order, with the repeats made fully
// transparent, then every element pair is aligned.
func (g Group[T]) AlignWith(other Group[T]) (Group[T], Group[T]) {
	a, b := g.Clone(), other.Clone()
	if len(a) == 0 && len(b) > 0 {
		a = b.Clone().WithOpacity(0)
	}
	if len(b) == 0 && len(a) > 0 {
		b = a.Clone().WithOpacity(0)
	}
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	grow := func(items Group[T]) Group[T] {
		if len(items) == n {
			return items
		}
		resized, repeated := util.ResizePreservingOrder(items, n)
		for _, idx := range repeated {
			resized[idx] = resized[idx].WithOpacity(0)
		}
		return Group[T](resized)
	}
	a, b = grow(a), grow(b)
	for i := range a {
		a[i], b[i] = a[i].AlignWith(b[i])
	}
	return a, b
}

// Lerp blends the group towards target by t, aligning first if needed.
func (g Group[T]) Lerp(target Group[T], t float64) Group[T] {
	a, b := g, target
	if !a.IsAligned(b) {
		a, b = a.AlignWith(b)
	}
	out := make(Group[T], len(a))
	for i := range a {
		out[i] = a[i].Lerp(b[i], t)
	}
	return out
}

// Primitives flattens every element into renderer-ready primitives.
func (g Group[T]) Primitives() []Primitive {
	var out []Primitive
	for _, it := range g {
		out = append(out, it.Primitives()...)
	}
	return out
}
