package item

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/vanim/util"
)

// DefaultStrokeWidth is substituted by animations that need a visible
// outline when an item carries no stroke width of its own.
const DefaultStrokeWidth = 0.02

// Path is a vector shape defined by a polyline of anchor points with
// stroke and fill attributes. It is the basic drawable item type.
type Path struct {
	points []Vec2
	closed bool

	stroke        colorful.Color
	strokeOpacity float64
	strokeWidth   float64
	fill          colorful.Color
	fillOpacity   float64
}

// Polyline creates an open Path through the given points with default
// attributes (white stroke, no fill).
func Polyline(points ...Vec2) Path {
	p := Path{
		points:        append([]Vec2(nil), points...),
		stroke:        colorful.Color{R: 1, G: 1, B: 1},
		strokeOpacity: 1.0,
		strokeWidth:   DefaultStrokeWidth,
		fill:          colorful.Color{R: 1, G: 1, B: 1},
		fillOpacity:   0.0,
	}
	return p
}

// Polygon creates a closed Path through the given points.
func Polygon(points ...Vec2) Path {
	p := Polyline(points...)
	p.closed = true
	return p
}

// Rect creates a width x height rectangle centred on the origin.
func Rect(width, height float64) Path {
	w, h := width/2, height/2
	return Polygon(
		Vec2{X: -w, Y: -h},
		Vec2{X: w, Y: -h},
		Vec2{X: w, Y: h},
		Vec2{X: -w, Y: h},
	)
}

// Square creates a side x side square centred on the origin.
func Square(side float64) Path {
	return Rect(side, side)
}

const circleSegments = 32

// Circle creates a circle of the given radius centred on the origin,
// approximated by a fixed number of segments.
func Circle(radius float64) Path {
	points := make([]Vec2, circleSegments)
	for i := range points {
		a := 2 * math.Pi * float64(i) / circleSegments
		points[i] = Vec2{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return Polygon(points...)
}

// Points returns the anchor points of the path.
func (p Path) Points() []Vec2 {
	return p.points
}

// Closed reports whether the path is a closed shape.
func (p Path) Closed() bool {
	return p.closed
}

// IsEmpty reports whether the path has no geometry.
func (p Path) IsEmpty() bool {
	return len(p.points) == 0
}

// Clone returns an independently-owned copy of the path.
func (p Path) Clone() Path {
	out := p
	out.points = append([]Vec2(nil), p.points...)
	return out
}

// Empty returns a path with no geometry.
func (p Path) Empty() Path {
	return Path{}
}

// WithOpacity sets both the stroke and fill opacity.
func (p Path) WithOpacity(opacity float64) Path {
	out := p
	out.strokeOpacity = opacity
	out.fillOpacity = opacity
	return out
}

// FillColor returns the fill color.
func (p Path) FillColor() colorful.Color { return p.fill }

// FillOpacity returns the fill opacity.
func (p Path) FillOpacity() float64 { return p.fillOpacity }

// WithFillColor sets the fill color.
func (p Path) WithFillColor(c colorful.Color) Path {
	out := p
	out.fill = c
	return out
}

// WithFillOpacity sets the fill opacity.
func (p Path) WithFillOpacity(opacity float64) Path {
	out := p
	out.fillOpacity = opacity
	return out
}

// StrokeColor returns the stroke color.
func (p Path) StrokeColor() colorful.Color { return p.stroke }

// StrokeOpacity returns the stroke opacity.
func (p Path) StrokeOpacity() float64 { return p.strokeOpacity }

// WithStrokeColor sets the stroke color.
func (p Path) WithStrokeColor(c colorful.Color) Path {
	out := p
	out.stroke = c
	return out
}

// WithStrokeOpacity sets the stroke opacity.
func (p Path) WithStrokeOpacity(opacity float64) Path {
	out := p
	out.strokeOpacity = opacity
	return out
}

// StrokeWidth returns the stroke width.
func (p Path) StrokeWidth() float64 { return p.strokeWidth }

// WithStrokeWidth sets the stroke width.
func (p Path) WithStrokeWidth(width float64) Path {
	out := p
	out.strokeWidth = width
	return out
}

// chain returns the vertex chain the path parameter runs over; a closed
// path's chain loops back to the first point.
func (p Path) chain() []Vec2 {
	if p.closed && len(p.points) > 1 {
		return append(append([]Vec2(nil), p.points...), p.points[0])
	}
	return p.points
}

// Partial returns the portion of the path covered by the parameter
// range [from, to]. A trimmed result is an open path; the full range
// returns an unchanged copy, and a zero-length range yields an empty
// path.
func (p Path) Partial(from, to float64) Path {
	from = util.Clamp(from, 0, 1)
	to = util.Clamp(to, 0, 1)
	if p.IsEmpty() || to-from <= 1e-9 {
		return p.Empty()
	}
	if from <= 0 && to >= 1 {
		return p.Clone()
	}

	chain := p.chain()
	// A single point spans no parameter range to trim.
	if len(chain) < 2 {
		return p.Empty()
	}
	segs := float64(len(chain) - 1)
	start := from * segs
	end := to * segs

	out := p
	out.closed = false
	out.points = nil

	i0 := int(math.Floor(start))
	i1 := int(math.Min(math.Floor(end), segs-1))
	f0 := start - float64(i0)
	f1 := end - float64(i1)

	out.points = append(out.points, chain[i0].Lerp(chain[i0+1], f0))
	for i := i0 + 1; i <= i1; i++ {
		out.points = append(out.points, chain[i])
	}
	if f1 > 1e-9 {
		out.points = append(out.points, chain[i1].Lerp(chain[i1+1], f1))
	}
	return out
}

// PartialClosed is Partial with the resulting shape closed.
func (p Path) PartialClosed(from, to float64) Path {
	out := p.Partial(from, to)
	if len(out.points) > 1 {
		out.closed = true
	}
	return out
}

// IsAligned reports whether the two paths have the same number of
// anchor points, which is what makes Lerp meaningful between them.
func (p Path) IsAligned(other Path) bool {
	return len(p.points) == len(other.points)
}

// AlignWith returns aligned copies of both paths. The shorter point
// sequence is grown by repeating points evenly, preserving relative
// order. An empty side is replaced by a fully transparent copy of the
// other so that interpolation fades rather than collapses.
func (p Path) AlignWith(other Path) (Path, Path) {
	a, b := p.Clone(), other.Clone()
	if a.IsEmpty() && b.IsEmpty() {
		return a, b
	}
	if a.IsEmpty() {
		a = b.Clone().WithOpacity(0)
	}
	if b.IsEmpty() {
		b = a.Clone().WithOpacity(0)
	}
	n := len(a.points)
	if len(b.points) > n {
		n = len(b.points)
	}
	if len(a.points) != n {
		a.points, _ = util.ResizePreservingOrder(a.points, n)
	}
	if len(b.points) != n {
		b.points, _ = util.ResizePreservingOrder(b.points, n)
	}
	return a, b
}

// Lerp blends the path towards target by t. Paths with differing point
// counts are aligned first.
func (p Path) Lerp(target Path, t float64) Path {
	a, b := p, target
	if !a.IsAligned(b) {
		a, b = a.AlignWith(b)
	}
	out := a.Clone()
	for i := range out.points {
		out.points[i] = a.points[i].Lerp(b.points[i], t)
	}
	out.stroke = a.stroke.BlendRgb(b.stroke, t)
	out.strokeOpacity = util.Lerp(a.strokeOpacity, b.strokeOpacity, t)
	out.strokeWidth = util.Lerp(a.strokeWidth, b.strokeWidth, t)
	out.fill = a.fill.BlendRgb(b.fill, t)
	out.fillOpacity = util.Lerp(a.fillOpacity, b.fillOpacity, t)
	if t >= 0.5 {
		out.closed = b.closed
	}
	return out
}

// Primitives flattens the path into renderer-ready primitives.
func (p Path) Primitives() []Primitive {
	if p.IsEmpty() {
		return nil
	}
	return []Primitive{{
		Points:        append([]Vec2(nil), p.points...),
		Closed:        p.closed,
		Stroke:        p.stroke,
		StrokeOpacity: p.strokeOpacity,
		StrokeWidth:   p.strokeWidth,
		Fill:          p.fill,
		FillOpacity:   p.fillOpacity,
	}}
}
