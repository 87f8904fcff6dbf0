package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightmoor/proxsweep/point"
)

func TestNew_OrientsLeftRight(t *testing.T) {
	tests := map[string]struct {
		a, b       point.Point
		wantLeft   point.Point
		wantRight  point.Point
	}{
		"already ordered": {
			a: point.New(0, 0), b: point.New(2, 2),
			wantLeft: point.New(0, 0), wantRight: point.New(2, 2),
		},
		"reversed": {
			a: point.New(2, 2), b: point.New(0, 0),
			wantLeft: point.New(0, 0), wantRight: point.New(2, 2),
		},
		"vertical, smaller y is left": {
			a: point.New(1, 5), b: point.New(1, 0),
			wantLeft: point.New(1, 0), wantRight: point.New(1, 5),
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := New(7, tc.a, tc.b)
			assert.Equal(t, tc.wantLeft, s.Left)
			assert.Equal(t, tc.wantRight, s.Right)
			assert.Equal(t, 7, s.ID)
		})
	}
}

func TestIsVertical(t *testing.T) {
	assert.True(t, New(0, point.New(1, 0), point.New(1, 5)).IsVertical())
	assert.False(t, New(0, point.New(0, 0), point.New(1, 5)).IsVertical())
}

func TestSegment_MarshalUnmarshalJSON(t *testing.T) {
	s := New(3, point.New(2, 2), point.New(0, 0))
	b, err := s.MarshalJSON()
	assert.NoError(t, err)

	var got Segment
	assert.NoError(t, got.UnmarshalJSON(b))
	assert.Equal(t, s, got)
}
