package stream

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/vanim/item"
)

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame(0.5, []item.Primitive{{
		Points:        []item.Vec2{{X: 1, Y: 2}, {X: -3, Y: 4}},
		Closed:        true,
		Stroke:        colorful.Color{R: 1, G: 0, B: 0},
		StrokeOpacity: 1.0,
		StrokeWidth:   0.02,
		Fill:          colorful.Color{R: 0, G: 0, B: 1},
		FillOpacity:   0.5,
	}})

	data, err := f.MarshalBinary()
	require.NoError(t, err)

	// Header (2) + flags (1) + stroke rgba (4) + width (4) +
	// fill rgba (4) + point count (2) + 2 points (16).
	require.Len(t, data, 33)

	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[0:2]))
	assert.Equal(t, byte(1), data[2], "closed flag")
	assert.Equal(t, []byte{255, 0, 0, 255}, data[3:7], "stroke rgba")
	assert.Equal(t, float32(0.02), math.Float32frombits(binary.LittleEndian.Uint32(data[7:11])))
	assert.Equal(t, []byte{0, 0, 255, 128}, data[11:15], "fill rgba")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(data[15:17]))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(data[17:21])))
	assert.Equal(t, float32(2), math.Float32frombits(binary.LittleEndian.Uint32(data[21:25])))
	assert.Equal(t, float32(-3), math.Float32frombits(binary.LittleEndian.Uint32(data[25:29])))
	assert.Equal(t, float32(4), math.Float32frombits(binary.LittleEndian.Uint32(data[29:33])))
}

func TestFrameMarshalBinaryEmpty(t *testing.T) {
	data, err := NewFrame(0, nil).MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(data))
}

func TestOpacityByteClamps(t *testing.T) {
	assert.Equal(t, byte(0), opacityByte(-1))
	assert.Equal(t, byte(255), opacityByte(2))
	assert.Equal(t, byte(128), opacityByte(0.5))
}
