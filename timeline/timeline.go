// Package timeline schedules animation spans onto per-item timelines
// and synchronizes an arbitrary number of them under one scene clock.
package timeline

import (
	"errors"
	"fmt"

	"github.com/matt-g-everett/vanim/anim"
	"github.com/matt-g-everett/vanim/item"
)

var (
	// ErrNegativeDuration reports a negative duration passed to Forward
	// or carried by a played span.
	ErrNegativeDuration = errors.New("timeline: negative duration")
	// ErrStaleID reports an ItemID whose slot has been reused or that
	// never belonged to the scene.
	ErrStaleID = errors.New("timeline: stale item id")
	// ErrTimelineBusy reports a second exclusive handle being taken for
	// a timeline that is already being mutated.
	ErrTimelineBusy = errors.New("timeline: timeline busy")
	// ErrItemType reports an access with the wrong item type for the id.
	ErrItemType = errors.New("timeline: item type mismatch")
)

// Item is what a type must provide to live on a timeline: an empty
// state for blank fills and primitive extraction for rendering.
type Item[T any] interface {
	item.Emptyable[T]
	item.Renderable
}

// SpanInfo describes one scheduled span for preview tooling.
type SpanInfo struct {
	Name     string  `json:"name"`
	StartSec float64 `json:"startSec"`
	EndSec   float64 `json:"endSec"`
}

// ItemTimeline is the ordered, gapless sequence of animation spans for
// a single item. Spans are contiguous and non-overlapping: each span
// starts where the previous one ended, and the elapsed seconds equal
// the sum of all span durations.
type ItemTimeline[T Item[T]] struct {
	spans       []*anim.AnimationSpan[T]
	elapsedSecs float64
	showing     bool

	// freeze is the shared snapshot reused by consecutive freeze spans;
	// it is invalidated by Play.
	freeze *anim.Static[T]
	blank  *anim.Static[T]
}

// NewItemTimeline creates a timeline whose first contents are a
// zero-duration static snapshot of the item's initial state, so
// evaluation at time zero is always well-defined.
func NewItemTimeline[T Item[T]](initial T) *ItemTimeline[T] {
	t := new(ItemTimeline[T])
	t.showing = true
	t.blank = anim.NewStatic(initial.Empty())
	t.spans = append(t.spans,
		anim.FromEvaluator[T](anim.NewStatic(initial)).WithDuration(0).WithName("Initial"))
	return t
}

// ElapsedSecs returns the total duration of all spans.
func (t *ItemTimeline[T]) ElapsedSecs() float64 {
	return t.elapsedSecs
}

// Showing reports whether future Forward calls freeze (true) or
// blank (false).
func (t *ItemTimeline[T]) Showing() bool {
	return t.showing
}

// Show makes future Forward calls hold the item's last state. It does
// not advance time.
func (t *ItemTimeline[T]) Show() {
	t.showing = true
}

// Hide makes future Forward calls fill with the item's empty state. It
// does not advance time.
func (t *ItemTimeline[T]) Hide() {
	t.showing = false
}

// Forward advances the timeline by secs, filling the gap with a freeze
// span while the item is shown or a blank span while it is hidden.
func (t *ItemTimeline[T]) Forward(secs float64) error {
	if secs < 0 {
		return fmt.Errorf("%w: forward by %v", ErrNegativeDuration, secs)
	}
	if secs == 0 {
		return nil
	}

	var span *anim.AnimationSpan[T]
	if t.showing {
		if t.freeze == nil {
			t.freeze = anim.NewStatic(t.lastState())
		}
		span = anim.FromEvaluator[T](t.freeze).WithName("Freeze")
	} else {
		span = anim.FromEvaluator[T](t.blank).WithName("Blank")
	}
	span.WithDuration(secs).At(t.elapsedSecs)
	t.spans = append(t.spans, span)
	t.elapsedSecs += secs
	return nil
}

// Play appends the span at the current end of the timeline and advances
// it by the span's duration. The span's end state becomes the source of
// subsequent freezes.
func (t *ItemTimeline[T]) Play(span *anim.AnimationSpan[T]) error {
	if span.Duration() < 0 {
		return fmt.Errorf("%w: play with duration %v", ErrNegativeDuration, span.Duration())
	}
	span.At(t.elapsedSecs)
	t.spans = append(t.spans, span)
	t.elapsedSecs += span.Duration()
	t.freeze = nil
	t.showing = true
	return nil
}

// EvaluateAt evaluates the timeline at a timestamp. Timestamps outside
// [0, ElapsedSecs] clamp to the nearest endpoint. A span covers
// [ShowSec, EndSec); the last span also covers its end point, which
// pins the boundary tie-break: at a shared boundary the later span
// wins, and a zero-duration span is only selected when it is last.
func (t *ItemTimeline[T]) EvaluateAt(sec float64) T {
	if sec < 0 {
		sec = 0
	}
	if sec > t.elapsedSecs {
		sec = t.elapsedSecs
	}
	last := len(t.spans) - 1
	for i, span := range t.spans {
		if span.ShowSec() <= sec && (sec < span.EndSec() || (sec == span.EndSec() && i == last)) {
			return span.EvalSec(sec)
		}
	}
	// Unreachable for a well-formed timeline; the spans are gapless.
	return t.spans[last].EvalSec(sec)
}

// SpanInfos returns the name and time range of every span.
func (t *ItemTimeline[T]) SpanInfos() []SpanInfo {
	infos := make([]SpanInfo, len(t.spans))
	for i, span := range t.spans {
		infos[i] = SpanInfo{Name: span.Name(), StartSec: span.ShowSec(), EndSec: span.EndSec()}
	}
	return infos
}

// lastState is the item's current state: the end state of the last
// span.
func (t *ItemTimeline[T]) lastState() T {
	return t.spans[len(t.spans)-1].EvalAlpha(1)
}

// timelineHandle is the type-erased view the scene registry keeps, so
// the registry need not know concrete item types.
type timelineHandle interface {
	elapsed() float64
	forward(secs float64) error
	show()
	hide()
	primitivesAt(sec float64) []item.Primitive
	spanInfos() []SpanInfo
}

func (t *ItemTimeline[T]) elapsed() float64          { return t.elapsedSecs }
func (t *ItemTimeline[T]) forward(secs float64) error { return t.Forward(secs) }
func (t *ItemTimeline[T]) show()                     { t.Show() }
func (t *ItemTimeline[T]) hide()                     { t.Hide() }
func (t *ItemTimeline[T]) spanInfos() []SpanInfo     { return t.SpanInfos() }

func (t *ItemTimeline[T]) primitivesAt(sec float64) []item.Primitive {
	return t.EvaluateAt(sec).Primitives()
}
