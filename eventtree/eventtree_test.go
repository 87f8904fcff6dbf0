package eventtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightmoor/proxsweep/event"
	"github.com/brightmoor/proxsweep/point"
	"github.com/brightmoor/proxsweep/segment"
)

func TestInsert_NewKeyWhenNoneNearby(t *testing.T) {
	tr := New(1e-9)
	segs := []segment.Segment{segment.New(0, point.New(0, 0), point.New(1, 1))}
	k := tr.Insert(point.New(0, 0), event.Incidence{SegmentIndex: 0, Role: event.Left}, segs)
	assert.Equal(t, point.New(0, 0), k)
	assert.Equal(t, 1, tr.Len())
}

func TestInsert_CoalescesWithinTolerance(t *testing.T) {
	tr := New(0.01)
	segs := []segment.Segment{
		segment.New(0, point.New(0, 2), point.New(2, 2)),
		segment.New(1, point.New(1, 0), point.New(1, 2.005)),
	}
	tr.Insert(point.New(0, 2), event.Incidence{SegmentIndex: 0, Role: event.Left}, segs)
	tr.Insert(point.New(2, 2), event.Incidence{SegmentIndex: 0, Role: event.Right}, segs)
	// Put an endpoint key at (1,2) first, then insert an interior hit at
	// (1,2.005) and confirm it merges into that pre-existing endpoint key.
	key := tr.Insert(point.New(1, 2), event.Incidence{SegmentIndex: 1, Role: event.Right}, segs)
	assert.Equal(t, point.New(1, 2), key)

	key2 := tr.Insert(point.New(1, 2.005), event.Incidence{SegmentIndex: 0, Role: event.Interior}, segs)
	assert.Equal(t, point.New(1, 2), key2)
}

func TestInsert_VerticalTopCoalescesIntoExistingInteriorKey(t *testing.T) {
	tr := New(0.01)
	segs := []segment.Segment{
		segment.New(0, point.New(0, 2), point.New(2, 2)),
		segment.New(1, point.New(1, 0), point.New(1, 2.005)),
	}
	// An interior hit lands first at (1, 2).
	tr.Insert(point.New(1, 2), event.Incidence{SegmentIndex: 0, Role: event.Interior}, segs)
	// The vertical segment's top endpoint (its Right, since Left.Y<Right.Y)
	// arrives nearby. Snap priority ranks existing keys only, so the
	// incidence joins the existing key and that key is returned unchanged.
	key := tr.Insert(point.New(1, 2.005), event.Incidence{SegmentIndex: 1, Role: event.Right}, segs)
	assert.Equal(t, point.New(1, 2), key)

	entry, ok := tr.tree.Get(key)
	require.True(t, ok)
	assert.Len(t, entry.(*event.Entry).Incidences, 2)
}

func TestInsert_MergingKeysRewritesEndpoints(t *testing.T) {
	// An inserted point within tolerance of two separated keys merges both
	// into the winning key, and the segment endpoint behind the losing key
	// must be rewritten so every endpoint still names a live key exactly.
	const tol = 0.01
	segs := []segment.Segment{
		segment.New(0, point.New(0, 0), point.New(1, 1)),
		segment.New(1, point.New(1, 1.015), point.New(2, 2)),
	}
	tr := New(tol)
	tr.Insert(point.New(1, 1), event.Incidence{SegmentIndex: 0, Role: event.Right}, segs)
	tr.Insert(point.New(1, 1.015), event.Incidence{SegmentIndex: 1, Role: event.Left}, segs)
	require.Equal(t, 2, tr.Len(), "keys 0.015 apart stay separate")

	key := tr.Insert(point.New(1, 1.007), event.Incidence{SegmentIndex: 0, Role: event.Interior}, segs)
	assert.Equal(t, point.New(1, 1), key, "endpoint classes tie; lexicographically smaller key wins")
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, point.New(1, 1), segs[1].Left, "the merged key's endpoint incidence gloms onto the winner")

	entry, ok := tr.tree.Get(key)
	require.True(t, ok)
	// The new Interior incidence for segment 0 is pruned: the entry
	// already carries segment 0's Right endpoint.
	assert.Len(t, entry.(*event.Entry).Incidences, 2)
}

func TestPopMin_LexicographicOrder(t *testing.T) {
	tr := New(1e-9)
	segs := []segment.Segment{segment.New(0, point.New(0, 0), point.New(5, 5))}
	tr.Insert(point.New(2, -1), event.Incidence{SegmentIndex: 0, Role: event.Interior}, segs)
	tr.Insert(point.New(0, 5), event.Incidence{SegmentIndex: 0, Role: event.Interior}, segs)
	tr.Insert(point.New(0, 0), event.Incidence{SegmentIndex: 0, Role: event.Left}, segs)

	first, ok := tr.PopMin()
	require.True(t, ok)
	assert.Equal(t, point.New(0, 0), first.Point)

	second, ok := tr.PopMin()
	require.True(t, ok)
	assert.Equal(t, point.New(0, 5), second.Point)

	third, ok := tr.PopMin()
	require.True(t, ok)
	assert.Equal(t, point.New(2, -1), third.Point)

	_, ok = tr.PopMin()
	assert.False(t, ok)
}
