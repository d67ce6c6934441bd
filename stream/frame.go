package stream

import (
	"encoding/binary"
	"math"

	"github.com/matt-g-everett/vanim/item"
)

// Frame is one rendered frame: the primitives extracted from a scene at
// a single timestamp.
type Frame struct {
	Sec        float64
	Primitives []item.Primitive
}

// NewFrame creates a new Frame instance.
func NewFrame(sec float64, primitives []item.Primitive) *Frame {
	f := new(Frame)
	f.Sec = sec
	f.Primitives = primitives
	return f
}

// MarshalBinary converts a Frame into binary data for the wire: a
// primitive count followed by each primitive's attributes and points,
// all little-endian.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, 2+len(f.Primitives)*64)
	binary.LittleEndian.PutUint16(data, uint16(len(f.Primitives)))

	for _, p := range f.Primitives {
		var flags byte
		if p.Closed {
			flags = 1
		}
		data = append(data, flags)

		sr, sg, sb := p.Stroke.Clamped().RGB255()
		data = append(data, sr, sg, sb, opacityByte(p.StrokeOpacity))
		data = appendFloat32(data, p.StrokeWidth)
		fr, fg, fb := p.Fill.Clamped().RGB255()
		data = append(data, fr, fg, fb, opacityByte(p.FillOpacity))

		var count [2]byte
		binary.LittleEndian.PutUint16(count[:], uint16(len(p.Points)))
		data = append(data, count[:]...)
		for _, pt := range p.Points {
			data = appendFloat32(data, pt.X)
			data = appendFloat32(data, pt.Y)
		}
	}

	return data, nil
}

func appendFloat32(data []byte, v float64) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
	return append(data, buf[:]...)
}

func opacityByte(opacity float64) byte {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return byte(math.Round(opacity * 255))
}
