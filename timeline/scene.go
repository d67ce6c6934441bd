package timeline

import (
	"fmt"
	"sort"

	"github.com/matt-g-everett/vanim/anim"
	"github.com/matt-g-everett/vanim/item"
)

// ItemID is the opaque, stable handle of a registered item. It is a
// generational index: a slot reused for a new item bumps the
// generation, so stale ids are detected instead of silently aliasing.
type ItemID struct {
	index      int
	generation uint32
}

type slot struct {
	generation uint32
	busy       bool
	timeline   timelineHandle
}

// Scene owns every per-item timeline, keyed by ItemID, together with
// the common global elapsed time and the authored time marks.
type Scene struct {
	slots       []slot
	elapsedSecs float64
	timeMarks   []TimeMark
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return new(Scene)
}

// ElapsedSecs returns the scene clock; it is always at least the
// elapsed seconds of every timeline.
func (s *Scene) ElapsedSecs() float64 {
	return s.elapsedSecs
}

// Register creates a timeline for the item, seeded with a zero-duration
// snapshot of its initial state, and returns its id.
func Register[T Item[T]](s *Scene, initial T) ItemID {
	id := ItemID{index: len(s.slots), generation: 1}
	s.slots = append(s.slots, slot{
		generation: id.generation,
		timeline:   NewItemTimeline(initial),
	})
	return id
}

// Update runs f with the exclusive handle of the item's timeline. At
// most one handle may be outstanding per item: a reentrant Update on
// the same id fails with ErrTimelineBusy.
func Update[T Item[T]](s *Scene, id ItemID, f func(*ItemTimeline[T]) error) error {
	sl, err := s.slotFor(id)
	if err != nil {
		return err
	}
	tl, ok := sl.timeline.(*ItemTimeline[T])
	if !ok {
		return fmt.Errorf("%w: id %d holds a %T", ErrItemType, id.index, sl.timeline)
	}
	if sl.busy {
		return fmt.Errorf("%w: id %d", ErrTimelineBusy, id.index)
	}
	// Set and clear through the slice itself: f may register more items,
	// and the append can move the slots to a new backing array.
	s.slots[id.index].busy = true
	defer func() { s.slots[id.index].busy = false }()
	return f(tl)
}

// Play appends the span to the item's timeline and advances the scene
// clock to cover it.
func Play[T Item[T]](s *Scene, id ItemID, span *anim.AnimationSpan[T]) error {
	return Update(s, id, func(tl *ItemTimeline[T]) error {
		if err := tl.Play(span); err != nil {
			return err
		}
		if tl.ElapsedSecs() > s.elapsedSecs {
			s.elapsedSecs = tl.ElapsedSecs()
		}
		return nil
	})
}

// Show makes the item's future holds visible.
func (s *Scene) Show(id ItemID) error {
	sl, err := s.slotFor(id)
	if err != nil {
		return err
	}
	sl.timeline.show()
	return nil
}

// Hide makes the item's future holds blank.
func (s *Scene) Hide(id ItemID) error {
	sl, err := s.slotFor(id)
	if err != nil {
		return err
	}
	sl.timeline.hide()
	return nil
}

// Forward advances the scene clock and every timeline by secs.
func (s *Scene) Forward(secs float64) error {
	if secs < 0 {
		return fmt.Errorf("%w: forward by %v", ErrNegativeDuration, secs)
	}
	for i := range s.slots {
		if err := s.slots[i].timeline.forward(secs); err != nil {
			return err
		}
	}
	s.elapsedSecs += secs
	return nil
}

// ForwardTo advances the scene clock and every timeline to an absolute
// timestamp. Moving backwards is an error.
func (s *Scene) ForwardTo(sec float64) error {
	return s.Forward(sec - s.elapsedSecs)
}

// Sync holds every lagging timeline forward to the scene clock. After
// Sync all timelines have equal elapsed seconds, and no timeline's
// output changes at any previously-defined time.
func (s *Scene) Sync() {
	for i := range s.slots {
		if e := s.slots[i].timeline.elapsed(); e > s.elapsedSecs {
			s.elapsedSecs = e
		}
	}
	for i := range s.slots {
		tl := s.slots[i].timeline
		if gap := s.elapsedSecs - tl.elapsed(); gap > 0 {
			// forward only fails on negative durations.
			_ = tl.forward(gap)
		}
	}
}

// EvaluateAt evaluates every timeline at the given timestamp and
// flattens the resulting item states into renderer-ready primitives.
func (s *Scene) EvaluateAt(sec float64) []item.Primitive {
	var out []item.Primitive
	for i := range s.slots {
		out = append(out, s.slots[i].timeline.primitivesAt(sec)...)
	}
	return out
}

// TimelineInfo describes one timeline for preview tooling.
type TimelineInfo struct {
	ID    int        `json:"id"`
	Spans []SpanInfo `json:"spans"`
}

// TimelineInfos returns the span layout of every timeline.
func (s *Scene) TimelineInfos() []TimelineInfo {
	infos := make([]TimelineInfo, len(s.slots))
	for i := range s.slots {
		infos[i] = TimelineInfo{ID: i, Spans: s.slots[i].timeline.spanInfos()}
	}
	return infos
}

// InsertTimeMark records an out-of-band marker for the renderer. Marks
// carry no ordering or uniqueness constraint.
func (s *Scene) InsertTimeMark(atSec float64, kind MarkKind, name string) {
	s.timeMarks = append(s.timeMarks, TimeMark{AtSec: atSec, Kind: kind, Name: name})
}

// TimeMarks returns the marks ordered by time.
func (s *Scene) TimeMarks() []TimeMark {
	out := append([]TimeMark(nil), s.timeMarks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].AtSec < out[j].AtSec })
	return out
}

func (s *Scene) slotFor(id ItemID) (*slot, error) {
	if id.index < 0 || id.index >= len(s.slots) {
		return nil, fmt.Errorf("%w: id %d", ErrStaleID, id.index)
	}
	sl := &s.slots[id.index]
	if sl.generation != id.generation {
		return nil, fmt.Errorf("%w: id %d generation %d", ErrStaleID, id.index, id.generation)
	}
	return sl, nil
}
