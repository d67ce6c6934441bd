package timeline

// MarkKind identifies what a time mark instructs the renderer to do.
type MarkKind int

const (
	// Capture instructs the renderer to emit a still frame.
	Capture MarkKind = iota
)

// TimeMark is an out-of-band marker consumed by the renderer. The core
// evaluation logic never reads or mutates it.
type TimeMark struct {
	AtSec float64  `json:"atSec"`
	Kind  MarkKind `json:"kind"`
	Name  string   `json:"name"`
}
