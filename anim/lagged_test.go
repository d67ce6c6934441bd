package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/vanim/item"
)

func fadeInLinear(p item.Path) *AnimationSpan[item.Path] {
	return FadeIn(p).WithRateFunc(Linear)
}

func TestLaggedStaggersSubAnimations(t *testing.T) {
	group := item.NewGroup(item.Square(1.0), item.Square(1.0), item.Square(1.0))
	span := Lagged(1.0, group, fadeInLinear)

	t.Run("all transparent at the start", func(t *testing.T) {
		got := span.EvalAlpha(0)
		require.Len(t, got, 3)
		for i, p := range got {
			assert.Equal(t, 0.0, p.StrokeOpacity(), "element %d", i)
		}
	})

	t.Run("with full lag each element finishes before the next starts", func(t *testing.T) {
		got := span.EvalAlpha(1.0 / 3.0)
		assert.InDelta(t, 1.0, got[0].StrokeOpacity(), 1e-9)
		assert.InDelta(t, 0.0, got[1].StrokeOpacity(), 1e-9)
		assert.InDelta(t, 0.0, got[2].StrokeOpacity(), 1e-9)
	})

	t.Run("all complete at the end", func(t *testing.T) {
		for i, p := range span.EvalAlpha(1) {
			assert.InDelta(t, 1.0, p.StrokeOpacity(), 1e-9, "element %d", i)
		}
	})
}

func TestLaggedZeroRatioAnimatesTogether(t *testing.T) {
	group := item.NewGroup(item.Square(1.0), item.Square(1.0))
	span := Lagged(0, group, fadeInLinear)

	got := span.EvalAlpha(0.5)
	assert.InDelta(t, 0.5, got[0].StrokeOpacity(), 1e-9)
	assert.InDelta(t, 0.5, got[1].StrokeOpacity(), 1e-9)
}

func TestLaggedEmptyGroup(t *testing.T) {
	span := Lagged(0.5, item.Group[item.Path]{}, fadeInLinear)
	assert.Empty(t, span.EvalAlpha(0.5))
}
