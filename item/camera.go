package item

import "github.com/matt-g-everett/vanim/util"

// CameraFrame is the viewport item. Animating it produces camera moves;
// it contributes nothing drawable of its own.
type CameraFrame struct {
	Center Vec2
	Width  float64
	Height float64
}

// NewCameraFrame creates a camera frame of the given size centred on
// the origin.
func NewCameraFrame(width, height float64) CameraFrame {
	return CameraFrame{Width: width, Height: height}
}

// Clone returns a copy of the camera frame.
func (c CameraFrame) Clone() CameraFrame {
	return c
}

// Empty returns the zero camera frame.
func (c CameraFrame) Empty() CameraFrame {
	return CameraFrame{}
}

// Lerp blends the camera frame towards target by t.
func (c CameraFrame) Lerp(target CameraFrame, t float64) CameraFrame {
	return CameraFrame{
		Center: c.Center.Lerp(target.Center, t),
		Width:  util.Lerp(c.Width, target.Width, t),
		Height: util.Lerp(c.Height, target.Height, t),
	}
}

// IsAligned always holds; camera frames share a fixed structure.
func (c CameraFrame) IsAligned(CameraFrame) bool {
	return true
}

// AlignWith returns both frames unchanged.
func (c CameraFrame) AlignWith(other CameraFrame) (CameraFrame, CameraFrame) {
	return c, other
}

// Primitives returns nil; the viewport is consumed by the renderer
// directly rather than drawn.
func (c CameraFrame) Primitives() []Primitive {
	return nil
}
