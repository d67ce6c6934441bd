// Package item defines the capabilities an item type must provide to be
// animated, along with a small set of concrete item types built on them.
package item

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Clonable produces an independently-owned copy of the item.
type Clonable[T any] interface {
	Clone() T
}

// Emptyable produces the canonical zero/invisible instance of the type.
type Emptyable[T any] interface {
	Empty() T
}

// Interpolatable blends two instances of the same type.
type Interpolatable[T any] interface {
	// Lerp blends the receiver towards target by t in [0, 1].
	Lerp(target T, t float64) T
}

// Partial trims an item to a sub-range of its defining parameter.
// A zero-length range degrades to an Empty-equivalent result.
type Partial[T any] interface {
	// Partial returns the portion of the item covered by [from, to].
	Partial(from, to float64) T
	// PartialClosed is Partial with the resulting shape closed.
	PartialClosed(from, to float64) T
}

// Alignable reshapes two instances so that they become structurally
// comparable (same cardinality), which makes Lerp meaningful between
// differently-shaped instances. AlignWith must be idempotent and
// symmetric in outcome.
type Alignable[T any] interface {
	IsAligned(other T) bool
	// AlignWith returns aligned copies of the receiver and other.
	AlignWith(other T) (T, T)
}

// Fadable controls the overall opacity of an item.
type Fadable[T any] interface {
	WithOpacity(opacity float64) T
}

// FillColored exposes the fill attributes of an item.
type FillColored[T any] interface {
	FillColor() colorful.Color
	FillOpacity() float64
	WithFillColor(c colorful.Color) T
	WithFillOpacity(opacity float64) T
}

// StrokeColored exposes the stroke color attributes of an item.
type StrokeColored[T any] interface {
	StrokeColor() colorful.Color
	StrokeOpacity() float64
	WithStrokeColor(c colorful.Color) T
	WithStrokeOpacity(opacity float64) T
}

// StrokeWidthed exposes the stroke width of an item.
type StrokeWidthed[T any] interface {
	StrokeWidth() float64
	WithStrokeWidth(width float64) T
}

// Renderable flattens an item state into renderer-ready primitives.
// Items that produce nothing drawable return nil.
type Renderable interface {
	Primitives() []Primitive
}

// Visual is the full capability set shared by the concrete item types
// in this package. Group requires it of its element type.
type Visual[T any] interface {
	Clonable[T]
	Emptyable[T]
	Interpolatable[T]
	Partial[T]
	Alignable[T]
	Fadable[T]
	Renderable
}

// Primitive is one renderer-ready drawing command: a polyline with
// resolved color and stroke attributes.
type Primitive struct {
	Points        []Vec2
	Closed        bool
	Stroke        colorful.Color
	StrokeOpacity float64
	StrokeWidth   float64
	Fill          colorful.Color
	FillOpacity   float64
}
