package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/vanim/item"
)

func TestWrite(t *testing.T) {
	sq := item.Square(1.0).WithFillOpacity(0.8).WithStrokeOpacity(0.6)
	span := Write(sq).WithRateFunc(Linear)

	t.Run("starts with nothing revealed", func(t *testing.T) {
		assert.True(t, span.EvalAlpha(0).IsEmpty())
	})

	t.Run("phase boundary is the outline form", func(t *testing.T) {
		got := span.EvalAlpha(0.5)
		assert.Equal(t, sq.Points(), got.Points())
		assert.Equal(t, 0.0, got.FillOpacity())
		assert.Equal(t, 1.0, got.StrokeOpacity())
	})

	t.Run("second phase lerps outline to original", func(t *testing.T) {
		got := span.EvalAlpha(0.75)
		assert.InDelta(t, 0.4, got.FillOpacity(), 1e-9)
		assert.InDelta(t, 0.8, got.StrokeOpacity(), 1e-9)
	})

	t.Run("ends at the original", func(t *testing.T) {
		got := span.EvalAlpha(1)
		assert.Equal(t, sq.Points(), got.Points())
		assert.Equal(t, 0.8, got.FillOpacity())
		assert.Equal(t, 0.6, got.StrokeOpacity())
	})
}

func TestWriteSubstitutesMissingStrokeWidth(t *testing.T) {
	sq := item.Square(1.0).WithStrokeWidth(0)
	got := Write(sq).WithRateFunc(Linear).EvalAlpha(0.5)
	assert.Equal(t, item.DefaultStrokeWidth, got.StrokeWidth())

	thick := item.Square(1.0).WithStrokeWidth(0.3)
	got = Write(thick).WithRateFunc(Linear).EvalAlpha(0.5)
	assert.Equal(t, 0.3, got.StrokeWidth())
}

func TestUnwrite(t *testing.T) {
	sq := item.Square(1.0).WithFillOpacity(0.8)
	span := Unwrite(sq).WithRateFunc(Linear)

	t.Run("starts at the original", func(t *testing.T) {
		got := span.EvalAlpha(0)
		assert.Equal(t, sq.Points(), got.Points())
		assert.Equal(t, 0.8, got.FillOpacity())
	})

	t.Run("phase boundary is the outline form", func(t *testing.T) {
		got := span.EvalAlpha(0.5)
		assert.Equal(t, sq.Points(), got.Points())
		assert.Equal(t, 0.0, got.FillOpacity())
	})

	t.Run("second phase shrinks the outline", func(t *testing.T) {
		got := span.EvalAlpha(0.75)
		assert.False(t, got.IsEmpty())
		require.NotEmpty(t, got.Points())
		assert.Less(t, pathLength(got), pathLength(sq))
	})

	t.Run("ends empty", func(t *testing.T) {
		assert.True(t, span.EvalAlpha(1).IsEmpty())
	})
}
