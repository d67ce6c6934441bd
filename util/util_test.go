package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

func TestResizePreservingOrder(t *testing.T) {
	tests := []struct {
		name         string
		src          []int
		n            int
		want         []int
		wantRepeated []int
	}{
		{
			name: "same length is identity",
			src:  []int{1, 2, 3},
			n:    3,
			want: []int{1, 2, 3},
		},
		{
			name:         "grow repeats elements in order",
			src:          []int{1, 2, 3},
			n:            6,
			want:         []int{1, 1, 2, 2, 3, 3},
			wantRepeated: []int{1, 3, 5},
		},
		{
			name:         "grow single element",
			src:          []int{7},
			n:            3,
			want:         []int{7, 7, 7},
			wantRepeated: []int{1, 2},
		},
		{
			name: "shrink keeps order",
			src:  []int{1, 2, 3, 4},
			n:    2,
			want: []int{1, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, repeated := ResizePreservingOrder(tt.src, tt.n)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRepeated, repeated)
		})
	}
}
