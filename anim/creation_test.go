package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/vanim/item"
)

// pathLength sums the segment lengths of a path, the "covered
// parameter" measure used by the creation laws.
func pathLength(p item.Path) float64 {
	pts := p.Points()
	if p.Closed() && len(pts) > 1 {
		pts = append(append([]item.Vec2(nil), pts...), pts[0])
	}
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Dist(pts[i])
	}
	return total
}

func TestCreate(t *testing.T) {
	sq := item.Square(1.0)
	span := Create(sq).WithRateFunc(Linear)

	t.Run("starts empty", func(t *testing.T) {
		assert.True(t, span.EvalAlpha(0).IsEmpty())
	})

	t.Run("ends at the original", func(t *testing.T) {
		got := span.EvalAlpha(1)
		require.Len(t, got.Points(), 4)
		assert.Equal(t, sq.Points(), got.Points())
	})

	t.Run("midway is a proper sub-curve", func(t *testing.T) {
		got := span.EvalAlpha(0.5)
		assert.False(t, got.IsEmpty())
		assert.Less(t, pathLength(got), pathLength(sq))
	})

	t.Run("covered length is monotonic in alpha", func(t *testing.T) {
		prev := -1.0
		for _, alpha := range []float64{0, 0.1, 0.25, 0.4, 0.5, 0.75, 0.9, 1} {
			l := pathLength(span.EvalAlpha(alpha))
			assert.GreaterOrEqual(t, l, prev, "alpha %v", alpha)
			prev = l
		}
	})
}

func TestUnCreateMirrorsCreate(t *testing.T) {
	sq := item.Square(1.0)
	create := Create(sq).WithRateFunc(Linear)
	uncreate := UnCreate(sq).WithRateFunc(Linear)

	for _, alpha := range []float64{0, 0.25, 0.5, 0.75, 1} {
		a := uncreate.EvalAlpha(alpha)
		b := create.EvalAlpha(1 - alpha)
		assert.InDelta(t, pathLength(b), pathLength(a), 1e-9, "alpha %v", alpha)
	}
}

func TestCreationClampsOutOfRangeAlpha(t *testing.T) {
	sq := item.Square(1.0)

	overshoot := func(float64) float64 { return 1.5 }
	got := Create(sq).WithRateFunc(overshoot).EvalAlpha(0.5)
	assert.Equal(t, sq.Points(), got.Points())

	undershoot := func(float64) float64 { return -0.5 }
	assert.True(t, Create(sq).WithRateFunc(undershoot).EvalAlpha(0.5).IsEmpty())
}
