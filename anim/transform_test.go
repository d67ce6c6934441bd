package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matt-g-everett/vanim/item"
)

func TestTransform(t *testing.T) {
	sq := item.Square(1.0)
	c := item.Circle(1.0)
	span := Transform(sq, c).WithRateFunc(Linear)

	t.Run("endpoints are the exact src and dst", func(t *testing.T) {
		assert.Equal(t, sq.Points(), span.EvalAlpha(0).Points())
		assert.Equal(t, c.Points(), span.EvalAlpha(1).Points())
	})

	t.Run("intermediate states use the aligned cardinality", func(t *testing.T) {
		assert.Len(t, span.EvalAlpha(0.5).Points(), 32)
	})
}

func TestTransformAlreadyAligned(t *testing.T) {
	a := item.Square(1.0)
	b := item.Square(3.0)
	mid := Transform(a, b).WithRateFunc(Linear).EvalAlpha(0.5)
	assert.Len(t, mid.Points(), 4)
	assert.InDelta(t, -1.0, mid.Points()[0].X, 1e-9)
}

func TestTransformCameraFrame(t *testing.T) {
	src := item.NewCameraFrame(16, 9)
	dst := item.CameraFrame{Center: item.Vec2{X: 2, Y: 1}, Width: 8, Height: 4.5}
	mid := Transform(src, dst).WithRateFunc(Linear).EvalAlpha(0.5)

	assert.InDelta(t, 1.0, mid.Center.X, 1e-9)
	assert.InDelta(t, 0.5, mid.Center.Y, 1e-9)
	assert.InDelta(t, 12.0, mid.Width, 1e-9)
	assert.InDelta(t, 6.75, mid.Height, 1e-9)
}
