package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matt-g-everett/vanim/item"
)

func TestFunc(t *testing.T) {
	sq := item.Square(1.0)
	span := Func(sq, func(src item.Path, alpha float64) item.Path {
		return src.WithStrokeOpacity(alpha)
	}).WithRateFunc(Linear)

	assert.Equal(t, 0.0, span.EvalAlpha(0).StrokeOpacity())
	assert.Equal(t, 0.25, span.EvalAlpha(0.25).StrokeOpacity())
	assert.Equal(t, 1.0, span.EvalAlpha(1).StrokeOpacity())
	assert.Equal(t, "Func", span.Name())
}
